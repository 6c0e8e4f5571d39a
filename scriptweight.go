package coinselect

import "github.com/btcsuite/btcd/txscript"

// EstimateSatisfactionWeight returns the witness/scriptSig weight
// needed to satisfy a standard output script, for callers that would
// rather not track a descriptor's exact satisfaction weight
// themselves. It covers the common wallet-controlled script classes;
// anything else returns errUnsupportedScript, the same way the
// teacher's own fee estimator refuses to guess at a script it doesn't
// recognize.
func EstimateSatisfactionWeight(pkScript []byte) (Weight, error) {
	switch {
	case txscript.IsPayToWitnessPubKeyHash(pkScript):
		// A single signature push (1 + 72) and a compressed pubkey
		// push (1 + 33), counted as witness weight (1 WU/byte).
		return 107, nil

	case txscript.IsPayToScriptHash(pkScript):
		// Nested P2WPKH: the same witness stack, plus the 23-byte
		// redeem script pushed to the scriptSig at 4 WU/byte.
		return 107 + 23*4, nil

	case txscript.IsPayToWitnessScriptHash(pkScript):
		return 0, errUnsupportedScript(pkScript)

	case txscript.IsPayToTaproot(pkScript):
		// A single Schnorr signature, counted as witness weight.
		return 65, nil

	default:
		return 0, errUnsupportedScript(pkScript)
	}
}
