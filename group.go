package coinselect

// OutputGroupMaxEntries bounds how many UTXOs at the same script a
// single group may carry when avoid_partial_spends splits them; larger
// clusters are split into consecutive chunks of at most this many
// entries to bound worst-case input weight and BnB branching fan-out.
const OutputGroupMaxEntries = 100

// groupUtxos partitions utxos into groups treated atomically by every
// downstream selection step. With avoidPartialSpends false, every UTXO
// is its own singleton group in input order. With it true, UTXOs are
// partitioned by exact script_pubkey equality, and any partition
// larger than OutputGroupMaxEntries is split into consecutive chunks
// that preserve internal order.
func groupUtxos(utxos []WeightedUtxo, avoidPartialSpends bool) [][]WeightedUtxo {
	if !avoidPartialSpends {
		groups := make([][]WeightedUtxo, len(utxos))
		for i, u := range utxos {
			groups[i] = []WeightedUtxo{u}
		}

		return groups
	}

	byScript := make(map[string][]WeightedUtxo)
	order := make([]string, 0, len(utxos))

	for _, u := range utxos {
		key := string(u.Utxo.TxOut().PkScript)
		if _, ok := byScript[key]; !ok {
			order = append(order, key)
		}
		byScript[key] = append(byScript[key], u)
	}

	groups := make([][]WeightedUtxo, 0, len(order))
	for _, key := range order {
		remaining := byScript[key]
		for len(remaining) > OutputGroupMaxEntries {
			groups = append(groups, remaining[:OutputGroupMaxEntries])
			remaining = remaining[OutputGroupMaxEntries:]
		}
		groups = append(groups, remaining)
	}

	return groups
}

// groupValue returns a group's total output value.
func groupValue(group []WeightedUtxo) Amount {
	var total Amount
	for _, u := range group {
		total += u.Value()
	}

	return total
}
