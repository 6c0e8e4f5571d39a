package coinselect

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// testScript builds a deterministic, distinct pkScript for tag so
// tests can construct UTXOs at a handful of distinct "addresses"
// without pulling in address/descriptor machinery this package
// doesn't depend on.
func testScript(tag byte) []byte {
	return []byte{0x00, 0x14, tag, tag, tag, tag, tag, tag, tag, tag,
		tag, tag, tag, tag, tag, tag, tag, tag, tag, tag, tag, tag}
}

// testOutPoint builds a distinct OutPoint from a single index, so
// tests never have to hand-construct a txid.
func testOutPoint(index uint32) OutPoint {
	var hash chainhash.Hash
	hash[0] = byte(index)
	hash[1] = byte(index >> 8)

	return OutPoint{Hash: hash, Index: index}
}

// localUtxo builds a confirmed, wallet-owned WeightedUtxo worth value
// satoshis at height, with satisfactionWeight additional spending
// weight and script tag for its pkScript.
func localUtxo(index uint32, value int64, satisfactionWeight Weight,
	tag byte, height int32) WeightedUtxo {

	return WeightedUtxo{
		Utxo: LocalOutput{
			Outpoint: testOutPoint(index),
			Output:   TxOut{Value: value, PkScript: testScript(tag)},
			Position: ChainPosition{Confirmed: true, Height: height},
		},
		SatisfactionWeight: satisfactionWeight,
	}
}

// unconfirmedUtxo builds an unconfirmed, wallet-owned WeightedUtxo.
func unconfirmedUtxo(index uint32, value int64, satisfactionWeight Weight,
	tag byte) WeightedUtxo {

	return WeightedUtxo{
		Utxo: LocalOutput{
			Outpoint: testOutPoint(index),
			Output:   TxOut{Value: value, PkScript: testScript(tag)},
		},
		SatisfactionWeight: satisfactionWeight,
	}
}

// foreignUtxo builds a counterparty-contributed WeightedUtxo.
func foreignUtxo(index uint32, value int64, satisfactionWeight Weight,
	tag byte) WeightedUtxo {

	return WeightedUtxo{
		Utxo: ForeignOutput{
			Outpoint: testOutPoint(index),
			Output:   TxOut{Value: value, PkScript: testScript(tag)},
		},
		SatisfactionWeight: satisfactionWeight,
	}
}

// p2wpkhSatisfactionWeight is the witness weight (signature push +
// compressed pubkey push, WU) a standard P2WPKH input adds on top of
// DefaultSegwitInputWeight, the same figure EstimateSatisfactionWeight
// returns for a P2WPKH script.
const p2wpkhSatisfactionWeight Weight = 107
