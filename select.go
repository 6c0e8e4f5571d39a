package coinselect

// CoinSelectionParams is a single selection request.
type CoinSelectionParams struct {
	// RequiredUtxos must be included in the result regardless of
	// target_amount.
	RequiredUtxos []WeightedUtxo

	// OptionalUtxos is the pool a policy may draw additional inputs
	// from.
	OptionalUtxos []WeightedUtxo

	// FeeRate is the fee rate input and change-output fees are
	// computed at.
	FeeRate FeeRate

	// TargetAmount is the recipient value plus whatever fees for
	// outputs and the header the builder has already accumulated;
	// this package adds only input fees on top.
	TargetAmount Amount

	// DrainScript is the script change would be paid to if a change
	// output is created.
	DrainScript []byte

	// Rand is consumed only by SingleRandomDraw (directly, or as
	// BranchAndBound's fallback).
	Rand RandSource

	// AvoidPartialSpends turns per-UTXO selection into per-address
	// selection.
	AvoidPartialSpends bool
}

// CoinSelectionResult is a completed selection.
type CoinSelectionResult struct {
	// Selected is the chosen UTXO set. Every required UTXO appears in
	// it and no OutPoint appears twice.
	Selected []Utxo

	// FeeAmount is the sum of input fees only, over Selected.
	FeeAmount Amount

	// Excess is the leftover verdict: a change output to add, or a
	// dust remainder folded into FeeAmount's surrounding transaction.
	Excess Excess
}

// DefaultPolicy returns the library's default selection policy:
// BranchAndBound with the default assumed change size, falling back to
// SingleRandomDraw on exhaustion.
func DefaultPolicy() Policy {
	return BranchAndBound{
		SizeOfChangeVBytes: DefaultSizeOfChangeVBytes,
		Fallback:           SingleRandomDraw{},
	}
}

// Select runs policy against params, deduplicating required/optional
// UTXOs first so that an OutPoint appearing in both lists is only ever
// considered as required.
func Select(params CoinSelectionParams, policy Policy) (*CoinSelectionResult, error) {
	log.Debugf("selecting coins for target=%v fee_rate=%v required=%d "+
		"optional=%d avoid_partial_spends=%v", params.TargetAmount,
		params.FeeRate, len(params.RequiredUtxos),
		len(params.OptionalUtxos), params.AvoidPartialSpends)

	dedupRequired, dedupOptional := filterDuplicates(
		params.RequiredUtxos, params.OptionalUtxos,
	)
	params.RequiredUtxos = dedupRequired
	params.OptionalUtxos = dedupOptional

	return policy.Select(params)
}
