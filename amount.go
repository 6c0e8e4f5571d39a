package coinselect

import "github.com/btcsuite/btcd/btcutil"

// Amount is an unsigned count of satoshis. It is the same type the
// rest of the btcsuite ecosystem uses, so a CoinSelectionResult's
// FeeAmount or an Excess's Amount can be handed straight to wire/
// txscript code without conversion.
type Amount = btcutil.Amount

// SignedAmount is the signed counterpart used for effective-value
// arithmetic, which can transiently go negative when a required UTXO
// costs more to spend than it is worth. Never narrow a SignedAmount to
// Amount before a feasibility check has confirmed it is non-negative.
type SignedAmount int64

// ToAmount converts a SignedAmount known to be non-negative to an
// Amount. It panics if the value is negative, since that indicates a
// contract violation by the caller (a fee rate or UTXO set that
// exceeds Bitcoin's 21-million-coin supply) rather than a condition
// this package can recover from.
func (s SignedAmount) ToAmount() Amount {
	if s < 0 {
		panic(errNegativeAmount(s))
	}

	return Amount(s)
}
