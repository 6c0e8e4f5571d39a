package coinselect

import "sort"

// Policy selects UTXOs to satisfy a CoinSelectionParams request. It is
// a capability interface rather than a class hierarchy: BranchAndBound
// embeds a Policy as its fallback, and callers may supply their own
// implementation.
type Policy interface {
	Select(params CoinSelectionParams) (*CoinSelectionResult, error)
}

// LargestFirst selects the largest-value optional UTXOs first,
// breaking ties in reverse input order (the later input first).
type LargestFirst struct{}

// Select implements Policy.
func (LargestFirst) Select(p CoinSelectionParams) (*CoinSelectionResult, error) {
	requiredGroups := groupUtxos(p.RequiredUtxos, p.AvoidPartialSpends)
	optionalGroups := groupUtxos(p.OptionalUtxos, p.AvoidPartialSpends)

	// Ascending then reversed, rather than a single descending sort,
	// the same two-step §4.5 calls for to make the tie-break
	// deterministic: the stable ascending sort keeps equal-value groups
	// in input order, so after the reverse they come out in reverse
	// input order.
	sort.SliceStable(optionalGroups, func(i, j int) bool {
		return groupValue(optionalGroups[i]) < groupValue(optionalGroups[j])
	})
	reverseGroups(optionalGroups)

	entries := buildEntries(requiredGroups, optionalGroups)

	return runDriver(entries, p.FeeRate, p.TargetAmount, p.DrainScript)
}

// OldestFirst selects confirmed optional UTXOs earliest-height-first,
// sinking unconfirmed and foreign UTXOs to the lowest priority.
type OldestFirst struct{}

// Select implements Policy.
func (OldestFirst) Select(p CoinSelectionParams) (*CoinSelectionResult, error) {
	requiredGroups := groupUtxos(p.RequiredUtxos, p.AvoidPartialSpends)
	optionalGroups := groupUtxos(p.OptionalUtxos, p.AvoidPartialSpends)

	sort.SliceStable(optionalGroups, func(i, j int) bool {
		return groupAgePriority(optionalGroups[i]).Less(groupAgePriority(optionalGroups[j]))
	})

	entries := buildEntries(requiredGroups, optionalGroups)

	return runDriver(entries, p.FeeRate, p.TargetAmount, p.DrainScript)
}

// agePriority is the sort key OldestFirst orders groups by: confirmed
// positions order by ascending height (tier 0); unconfirmed Local
// UTXOs come next (tier 1); Foreign UTXOs, which carry no chain
// position at all, sink to the lowest priority (tier 2).
//
// Per spec §9's open question, the group's priority is taken from its
// first member; this is implementation-defined and property tests
// must not depend on intra-group ordering.
type agePriority struct {
	tier   int
	height int32
}

func (a agePriority) Less(b agePriority) bool {
	if a.tier != b.tier {
		return a.tier < b.tier
	}
	if a.tier != 0 {
		return false
	}

	return a.height < b.height
}

func groupAgePriority(group []WeightedUtxo) agePriority {
	pos, ok := group[0].Utxo.ChainPosition()
	if !ok {
		return agePriority{tier: 2}
	}
	if !pos.Confirmed {
		return agePriority{tier: 1}
	}

	return agePriority{tier: 0, height: pos.Height}
}

// RandSource is the uniform-integer interface random policies consume
// their RNG through; *math/rand.Rand satisfies it directly.
type RandSource interface {
	// Intn returns, as an int, a uniform pseudo-random number in
	// [0,n).
	Intn(n int) int
}

// SingleRandomDraw selects optional UTXOs in a uniformly shuffled
// order.
type SingleRandomDraw struct{}

// Select implements Policy.
func (SingleRandomDraw) Select(p CoinSelectionParams) (*CoinSelectionResult, error) {
	requiredGroups := groupUtxos(p.RequiredUtxos, p.AvoidPartialSpends)
	optionalGroups := groupUtxos(p.OptionalUtxos, p.AvoidPartialSpends)

	if p.Rand == nil {
		panic("coinselect: SingleRandomDraw requires a non-nil Rand")
	}
	shuffleGroups(optionalGroups, p.Rand)

	entries := buildEntries(requiredGroups, optionalGroups)

	return runDriver(entries, p.FeeRate, p.TargetAmount, p.DrainScript)
}

// shuffleGroups performs a Fisher-Yates shuffle of groups using rnd.
func shuffleGroups(groups [][]WeightedUtxo, rnd RandSource) {
	for i := len(groups) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		groups[i], groups[j] = groups[j], groups[i]
	}
}

// reverseGroups reverses groups in place.
func reverseGroups(groups [][]WeightedUtxo) {
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
}

// buildEntries concatenates required (always must-use) ahead of
// optional (must-use only because the driver decides so) groups.
func buildEntries(required, optional [][]WeightedUtxo) []driverEntry {
	entries := make([]driverEntry, 0, len(required)+len(optional))
	for _, g := range required {
		entries = append(entries, driverEntry{mustUse: true, group: g})
	}
	for _, g := range optional {
		entries = append(entries, driverEntry{mustUse: false, group: g})
	}

	return entries
}
