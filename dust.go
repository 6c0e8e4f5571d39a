package coinselect

import (
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txrules"
)

// dustThreshold returns the minimum non-dust value for an output
// carrying script, deferring to the Bitcoin primitives layer's
// standard relay-fee-based formula (three times the cost of spending
// the output at the default relay fee rate) rather than reimplementing
// it here.
func dustThreshold(script []byte) Amount {
	return txrules.GetDustThreshold(len(script), txrules.DefaultRelayFeePerKb)
}

// Excess is the verdict decideChange reaches about the leftover after
// selection: either a change output worth creating, or a remainder
// too small to avoid being dust that gets silently folded into the
// fee.
type Excess interface {
	isExcess()
}

// ChangeExcess means a change output should be added with the given
// amount and fee. Amount is always strictly greater than the dust
// threshold of the script it would be paid to.
type ChangeExcess struct {
	Amount Amount
	Fee    Amount
}

func (ChangeExcess) isExcess() {}

// NoChangeExcess means the leftover would be dust; it is added to the
// transaction's fee instead of becoming an output.
type NoChangeExcess struct {
	DustThreshold   Amount
	RemainingAmount Amount
	ChangeFee       Amount
}

func (NoChangeExcess) isExcess() {}

// decideChange decides whether the given leftover amount is worth
// turning into a change output paid to drainScript, or whether it
// should be folded into the fee as dust.
func decideChange(remaining Amount, feeRate FeeRate, drainScript []byte) Excess {
	drainOutputVBytes := int64(wire.VarIntSerializeSize(uint64(len(drainScript)))) +
		int64(len(drainScript)) + 8
	changeFee := feeRate.Fee(mustWeightFromVBytes(drainOutputVBytes))

	var drainValue Amount
	if remaining > changeFee {
		drainValue = remaining - changeFee
	}

	dust := dustThreshold(drainScript)
	if drainValue <= dust {
		return NoChangeExcess{
			DustThreshold:   dust,
			RemainingAmount: remaining,
			ChangeFee:       changeFee,
		}
	}

	return ChangeExcess{Amount: drainValue, Fee: changeFee}
}
