package coinselect

// driverEntry is a single group in priority order, tagged with
// whether it must be included regardless of whether the target has
// already been reached.
type driverEntry struct {
	mustUse bool
	group   []WeightedUtxo
}

// runDriver is the shared greedy accumulator behind LargestFirst,
// OldestFirst and SingleRandomDraw: it walks entries in the order
// given, includes a group whenever it is required or the target
// hasn't been reached yet, and otherwise skips it (rather than
// stopping outright, so that required groups further down the list are
// still picked up).
func runDriver(entries []driverEntry, feeRate FeeRate, targetAmount Amount,
	drainScript []byte) (*CoinSelectionResult, error) {

	var (
		selected       []Utxo
		selectedAmount Amount
		feeAmount      Amount
	)

	for _, entry := range entries {
		needed := selectedAmount < targetAmount+feeAmount
		if !entry.mustUse && !needed {
			continue
		}

		for _, wu := range entry.group {
			fee, _ := EffectiveValue(wu, feeRate)
			selected = append(selected, wu.Utxo)
			selectedAmount += wu.Value()
			feeAmount += fee
		}
	}

	if selectedAmount < targetAmount+feeAmount {
		return nil, &InsufficientFundsError{
			Needed:    targetAmount + feeAmount,
			Available: selectedAmount,
		}
	}

	remaining := selectedAmount - (targetAmount + feeAmount)
	excess := decideChange(remaining, feeRate, drainScript)

	return &CoinSelectionResult{
		Selected:  selected,
		FeeAmount: feeAmount,
		Excess:    excess,
	}, nil
}
