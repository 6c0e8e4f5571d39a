package coinselect

import (
	"fmt"
	"sort"
)

// BNBTotalTries is the default ceiling on BranchAndBound search
// iterations, used when MaxTries is left at zero. Implementations must
// not exceed the ceiling silently; this package never does.
const BNBTotalTries = 100_000

// BranchAndBound performs a depth-first, exhaustive search for a
// selection whose total effective value lands in
// [target, target+cost_of_change], preferring the tightest fit and
// short-circuiting on an exact match. On exhaustion (no acceptable
// selection found within maxTries tries, or none exists) it
// re-invokes Fallback with the original, ungrouped, unfiltered
// CoinSelectionParams.
type BranchAndBound struct {
	// SizeOfChangeVBytes is the vbyte size assumed for the change
	// output the search hasn't created yet. Zero means
	// DefaultSizeOfChangeVBytes.
	SizeOfChangeVBytes int64

	// Fallback is invoked when the search can't find an acceptable
	// selection. It must be non-nil in practice; a nil Fallback
	// defaults to SingleRandomDraw.
	Fallback Policy

	// MaxTries lowers the try budget for this search. Zero, or a value
	// above BNBTotalTries, means BNBTotalTries.
	MaxTries int64
}

func (b BranchAndBound) sizeOfChangeVBytes() int64 {
	if b.SizeOfChangeVBytes > 0 {
		return b.SizeOfChangeVBytes
	}

	return DefaultSizeOfChangeVBytes
}

func (b BranchAndBound) maxTries() int64 {
	if b.MaxTries > 0 && b.MaxTries <= BNBTotalTries {
		return b.MaxTries
	}

	return BNBTotalTries
}

func (b BranchAndBound) fallback() Policy {
	if b.Fallback != nil {
		return b.Fallback
	}

	return SingleRandomDraw{}
}

// groupAgg is a group's BnB-internal view: the effective-value-filtered
// output groups it contains, and their precomputed sum so the search
// loop's per-iteration work stays O(1).
type groupAgg struct {
	ogs   []outputGroup
	value SignedAmount
}

func buildGroupAggs(groups [][]WeightedUtxo, feeRate FeeRate, dropNonPositive bool) []groupAgg {
	aggs := make([]groupAgg, len(groups))

	for i, group := range groups {
		var (
			ogs []outputGroup
			sum SignedAmount
		)
		for _, wu := range group {
			og := newOutputGroup(wu, feeRate)
			if dropNonPositive && og.effectiveValue <= 0 {
				continue
			}
			ogs = append(ogs, og)
			sum += og.effectiveValue
		}
		aggs[i] = groupAgg{ogs: ogs, value: sum}
	}

	return aggs
}

func flattenAggs(aggs []groupAgg) []Utxo {
	var out []Utxo
	for _, agg := range aggs {
		for _, og := range agg.ogs {
			out = append(out, og.weightedUtxo.Utxo)
		}
	}

	return out
}

func sumAggFees(aggs []groupAgg) Amount {
	var total Amount
	for _, agg := range aggs {
		for _, og := range agg.ogs {
			total += og.fee
		}
	}

	return total
}

// Select implements Policy.
func (b BranchAndBound) Select(p CoinSelectionParams) (*CoinSelectionResult, error) {
	requiredGroups := groupUtxos(p.RequiredUtxos, p.AvoidPartialSpends)
	optionalGroups := groupUtxos(p.OptionalUtxos, p.AvoidPartialSpends)

	requiredAggs := buildGroupAggs(requiredGroups, p.FeeRate, false)
	optionalAggs := buildGroupAggs(optionalGroups, p.FeeRate, true)

	var currValue SignedAmount
	for _, agg := range requiredAggs {
		currValue += agg.value
	}

	var currAvailableValue SignedAmount
	for _, agg := range optionalAggs {
		currAvailableValue += agg.value
	}

	costOfChange := SignedAmount(p.FeeRate.Fee(mustWeightFromVBytes(b.sizeOfChangeVBytes())))
	signedTarget := SignedAmount(p.TargetAmount)

	if currValue+currAvailableValue < signedTarget {
		allAggs := append(append([]groupAgg{}, requiredAggs...), optionalAggs...)
		utxoFees := sumAggFees(allAggs)

		var utxoValue Amount
		for _, agg := range allAggs {
			for _, og := range agg.ogs {
				utxoValue += og.weightedUtxo.Value()
			}
		}

		log.Tracef("branch and bound: infeasible even with all optional "+
			"utxos, falling through to insufficient funds: %v",
			newLogClosure(func() string {
				return fmt.Sprintf("needed=%d available=%d",
					p.TargetAmount+utxoFees, utxoValue)
			}),
		)

		return nil, &InsufficientFundsError{
			Needed:    p.TargetAmount + utxoFees,
			Available: utxoValue,
		}
	}

	if currValue > signedTarget {
		remaining := (currValue - signedTarget).ToAmount()
		excess := decideChange(remaining, p.FeeRate, p.DrainScript)

		return &CoinSelectionResult{
			Selected:  flattenAggs(requiredAggs),
			FeeAmount: sumAggFees(requiredAggs),
			Excess:    excess,
		}, nil
	}

	// Largest-first exploration order.
	sort.SliceStable(optionalAggs, func(i, j int) bool {
		return optionalAggs[i].value > optionalAggs[j].value
	})

	selection, bestValue, ok := bnbSearch(
		optionalAggs, currValue, currAvailableValue, signedTarget,
		costOfChange, b.maxTries(),
	)
	if !ok {
		log.Debugf("branch and bound: no acceptable selection found, "+
			"falling back: %v",
			newLogClosure(func() string {
				return fmt.Sprintf("no match within a budget of "+
					"%d tries", b.maxTries())
			}),
		)

		return b.fallback().Select(CoinSelectionParams{
			RequiredUtxos:      p.RequiredUtxos,
			OptionalUtxos:      p.OptionalUtxos,
			FeeRate:            p.FeeRate,
			TargetAmount:       p.TargetAmount,
			DrainScript:        p.DrainScript,
			Rand:               p.Rand,
			AvoidPartialSpends: p.AvoidPartialSpends,
		})
	}

	selected := flattenAggs(requiredAggs)
	feeAmount := sumAggFees(requiredAggs)
	for i, include := range selection {
		if !include {
			continue
		}
		for _, og := range optionalAggs[i].ogs {
			selected = append(selected, og.weightedUtxo.Utxo)
			feeAmount += og.fee
		}
	}

	remaining := (bestValue - signedTarget).ToAmount()
	excess := decideChange(remaining, p.FeeRate, p.DrainScript)

	return &CoinSelectionResult{
		Selected:  selected,
		FeeAmount: feeAmount,
		Excess:    excess,
	}, nil
}

// bnbSearch is the depth-first search over groups (already sorted
// descending by effective value), starting from the accumulators
// currValue/currAvailable and targeting signedTarget within tolerance
// costOfChange. It returns the chosen inclusion flags (one per group),
// the resulting total effective value, and whether a usable selection
// was found at all.
func bnbSearch(groups []groupAgg, currValue, currAvailable,
	target, costOfChange SignedAmount, maxTries int64) ([]bool, SignedAmount, bool) {

	n := len(groups)

	var (
		currentSelection []bool
		bestSelection    []bool
		bestValue        SignedAmount
		haveBest         bool
	)

	for tries := int64(0); tries < maxTries; tries++ {
		backtrack := false

		switch {
		case currValue+currAvailable < target:
			backtrack = true

		case currValue > target+costOfChange:
			backtrack = true

		case currValue >= target:
			if !haveBest || currValue < bestValue {
				bestSelection = append([]bool(nil), currentSelection...)
				bestValue = currValue
				haveBest = true
			}
			if currValue == target {
				return bestSelection, bestValue, true
			}
			backtrack = true

		case len(currentSelection) >= n:
			backtrack = true
		}

		if backtrack {
			for len(currentSelection) > 0 && !currentSelection[len(currentSelection)-1] {
				idx := len(currentSelection) - 1
				currentSelection = currentSelection[:idx]
				currAvailable += groups[idx].value
			}

			if len(currentSelection) == 0 {
				if haveBest {
					return bestSelection, bestValue, true
				}

				return nil, 0, false
			}

			idx := len(currentSelection) - 1
			currentSelection[idx] = false
			currValue -= groups[idx].value

			continue
		}

		idx := len(currentSelection)
		currAvailable -= groups[idx].value
		currentSelection = append(currentSelection, true)
		currValue += groups[idx].value
	}

	if haveBest {
		return bestSelection, bestValue, true
	}

	return nil, 0, false
}
