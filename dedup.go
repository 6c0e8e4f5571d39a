package coinselect

// filterDuplicates walks required first and then optional, keeping
// only the first occurrence (by OutPoint) of each UTXO. An outpoint
// present in both sets is retained in required and removed from
// optional.
func filterDuplicates(required, optional []WeightedUtxo) (dedupRequired, dedupOptional []WeightedUtxo) {
	seen := make(map[OutPoint]struct{}, len(required)+len(optional))

	dedupRequired = make([]WeightedUtxo, 0, len(required))
	for _, u := range required {
		op := u.Utxo.OutPoint()
		if _, ok := seen[op]; ok {
			continue
		}
		seen[op] = struct{}{}
		dedupRequired = append(dedupRequired, u)
	}

	dedupOptional = make([]WeightedUtxo, 0, len(optional))
	for _, u := range optional {
		op := u.Utxo.OutPoint()
		if _, ok := seen[op]; ok {
			continue
		}
		seen[op] = struct{}{}
		dedupOptional = append(dedupOptional, u)
	}

	return dedupRequired, dedupOptional
}
