package coinselect

import "github.com/btcsuite/btcd/wire"

// OutPoint identifies a UTXO by the txid and index that created it.
type OutPoint = wire.OutPoint

// TxOut is the value/script pair a UTXO carries.
type TxOut = wire.TxOut

// ChainPosition locates a UTXO in the chain (or the mempool) for
// oldest-first ordering purposes. The zero value is Unconfirmed with
// LastSeen 0, the lowest-priority position of all.
type ChainPosition struct {
	// Confirmed is true if this position is a confirmed block
	// position rather than a mempool sighting.
	Confirmed bool

	// Height is the confirming block's height. Only meaningful when
	// Confirmed is true.
	Height int32

	// BlockHash is the confirming block's hash. Only meaningful when
	// Confirmed is true.
	BlockHash [32]byte

	// ConfirmationTime is the confirming block's timestamp. Only
	// meaningful when Confirmed is true.
	ConfirmationTime int64

	// Transitively, when non-nil, is the txid of an unconfirmed
	// parent this position is anchored to; the UTXO itself may still
	// be unconfirmed even though Confirmed reports the anchor's
	// state. Mirrors BDK's Confirmed{ transitively } variant.
	Transitively *[32]byte

	// LastSeen is the unix timestamp this output was last seen in
	// the mempool. Only meaningful when Confirmed is false.
	LastSeen int64
}

// Less reports whether c sorts before other for oldest-first
// selection: confirmed positions order by ascending height, and any
// unconfirmed position sorts after every confirmed one. Two
// unconfirmed positions, or two confirmed positions at equal height,
// have no defined relative order.
func (c ChainPosition) Less(other ChainPosition) bool {
	if c.Confirmed != other.Confirmed {
		return c.Confirmed
	}
	if !c.Confirmed {
		return false
	}

	return c.Height < other.Height
}

// Utxo is a spendable output, either one the wallet controls (Local,
// which carries a ChainPosition) or one it doesn't (Foreign, which
// does not).
type Utxo interface {
	// OutPoint identifies this UTXO.
	OutPoint() OutPoint

	// TxOut returns the value and script this UTXO carries.
	TxOut() TxOut

	// ChainPosition returns this UTXO's position and true if it is a
	// Local UTXO, or the zero value and false if it is Foreign.
	ChainPosition() (ChainPosition, bool)
}

// LocalOutput is a UTXO the wallet can sign for and therefore tracks a
// ChainPosition for.
type LocalOutput struct {
	Outpoint OutPoint
	Output   TxOut
	Position ChainPosition
}

// OutPoint implements Utxo.
func (l LocalOutput) OutPoint() OutPoint { return l.Outpoint }

// TxOut implements Utxo.
func (l LocalOutput) TxOut() TxOut { return l.Output }

// ChainPosition implements Utxo.
func (l LocalOutput) ChainPosition() (ChainPosition, bool) { return l.Position, true }

// ForeignOutput is a UTXO contributed by a counterparty (e.g. in a
// collaborative transaction) that the wallet cannot report a
// confirmation position for.
type ForeignOutput struct {
	Outpoint OutPoint
	Output   TxOut
}

// OutPoint implements Utxo.
func (f ForeignOutput) OutPoint() OutPoint { return f.Outpoint }

// TxOut implements Utxo.
func (f ForeignOutput) TxOut() TxOut { return f.Output }

// ChainPosition implements Utxo.
func (f ForeignOutput) ChainPosition() (ChainPosition, bool) { return ChainPosition{}, false }

// WeightedUtxo pairs a UTXO with the satisfaction weight (the
// witness/scriptSig weight) required to spend it. The satisfaction
// weight is descriptor-dependent and is always supplied by the
// caller; no selection policy derives it from the script itself
// (EstimateSatisfactionWeight is a separate helper a caller may use to
// fill it in).
type WeightedUtxo struct {
	Utxo               Utxo
	SatisfactionWeight Weight
}

// Value returns the UTXO's output value.
func (w WeightedUtxo) Value() Amount {
	return Amount(w.Utxo.TxOut().Value)
}

// InputWeight returns the total weight of spending this UTXO: the
// default segwit input weight plus its satisfaction weight.
func (w WeightedUtxo) InputWeight() Weight {
	return addWeight(DefaultSegwitInputWeight, w.SatisfactionWeight)
}

// EffectiveValue computes the fee to spend a UTXO at the given fee
// rate and its effective value (the UTXO's value minus that fee,
// which may be negative).
func EffectiveValue(wu WeightedUtxo, feeRate FeeRate) (fee Amount, effectiveValue SignedAmount) {
	fee = feeRate.Fee(wu.InputWeight())
	effectiveValue = SignedAmount(wu.Value()) - SignedAmount(fee)

	return fee, effectiveValue
}

// outputGroup is the BnB-internal, fee/effective-value-annotated view
// of a single WeightedUtxo. It is built once per UTXO at BnB entry so
// the search loop never recomputes fee arithmetic.
type outputGroup struct {
	weightedUtxo   WeightedUtxo
	fee            Amount
	effectiveValue SignedAmount
}

// newOutputGroup annotates a WeightedUtxo with its fee and effective
// value at feeRate.
func newOutputGroup(wu WeightedUtxo, feeRate FeeRate) outputGroup {
	fee, ev := EffectiveValue(wu, feeRate)

	return outputGroup{
		weightedUtxo:   wu,
		fee:            fee,
		effectiveValue: ev,
	}
}
