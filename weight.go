package coinselect

import (
	"math"

	goerrors "github.com/go-errors/errors"
)

// Weight measures transaction cost the same way Bitcoin consensus
// does: virtual bytes times four. Every weight quantity in this
// package - input weights, output weights, the assumed change size -
// is expressed in these units so that FeeRate arithmetic never has to
// special-case a vbyte/weight-unit distinction.
type Weight int64

// DefaultSegwitInputWeight is the weight of an empty segwit-spending
// input: outpoint (36 bytes), sequence (4 bytes), an empty
// scriptSig (1 byte) and the segwit marker/flag amortized across the
// transaction. Every policy and the BnB search add the caller-supplied
// satisfaction weight on top of this constant so that fee accounting
// is identical no matter which policy ran.
const DefaultSegwitInputWeight Weight = 164

// changeOutputBaseVBytes is the non-script portion of a change output:
// 8 bytes of value plus 1 byte for the (single-byte-varint) script
// length. DefaultSizeOfChangeVBytes below adds the 22-byte P2WPKH
// script on top, matching BranchAndBound's default assumption.
const changeOutputBaseVBytes = 8 + 1

// DefaultSizeOfChangeVBytes is the vbyte size BranchAndBound assumes
// for the change output it hasn't created yet, sized for a P2WPKH
// script (8 value + 1 varint + 22 script).
const DefaultSizeOfChangeVBytes = changeOutputBaseVBytes + 22

// WeightFromVBytes converts a vbyte count to weight units, failing on
// overflow the same way the Bitcoin primitives layer's
// weight_from_vbytes does.
func WeightFromVBytes(vbytes int64) (Weight, error) {
	if vbytes < 0 || vbytes > math.MaxInt64/4 {
		return 0, goerrors.Errorf("vbyte count %d overflows weight "+
			"conversion", vbytes)
	}

	return Weight(vbytes * 4), nil
}

// mustWeightFromVBytes is WeightFromVBytes for call sites where the
// vbyte count is a small compile-time constant and an overflow can
// only mean a contract violation elsewhere in the program.
func mustWeightFromVBytes(vbytes int64) Weight {
	w, err := WeightFromVBytes(vbytes)
	if err != nil {
		panic(err)
	}

	return w
}

// addWeight adds two weights, panicking on overflow. Weight addition
// overflowing is a fatal, unrecoverable programmer error per the
// core's error-handling design: it can only happen if a caller handed
// us a satisfaction weight larger than the entire remaining int64
// range.
func addWeight(a, b Weight) Weight {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		panic(goerrors.Errorf("weight overflow: %d + %d", a, b))
	}

	return sum
}

// FeeRate is a fee rate expressed in satoshis per 1000 weight units
// (sat/kwu), the same representation the teacher's chainfee package
// uses internally so that FeeRate x Weight never loses precision to
// vbyte rounding. NewFeeRate constructs one from the sat/vB rate the
// spec's external interface is expressed in.
type FeeRate int64

// NewFeeRate builds a FeeRate from a satoshi-per-virtual-byte rate.
func NewFeeRate(satPerVByte int64) FeeRate {
	return FeeRate(satPerVByte * 1000 / 4)
}

// Fee returns the fee for spending or creating something of the given
// weight at this fee rate, rounding up so that the resulting
// transaction never pays strictly less than the requested rate.
func (f FeeRate) Fee(w Weight) Amount {
	if w < 0 {
		panic(goerrors.Errorf("negative weight %d passed to FeeRate.Fee", w))
	}

	num := int64(w) * int64(f)
	fee := (num + 999) / 1000

	return Amount(fee)
}
