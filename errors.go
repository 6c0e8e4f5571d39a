package coinselect

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// InsufficientFundsError is the one error this package's public
// surface returns. Needed includes input fees; Available is the total
// value of every UTXO the policy was allowed to consider.
type InsufficientFundsError struct {
	Needed    Amount
	Available Amount
}

// Error satisfies the error interface.
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: need %v, have %v available",
		e.Needed, e.Available)
}

// errNegativeAmount builds the panic value used when a SignedAmount
// that the caller's contract guarantees to be non-negative turns out
// not to be. This is always a fatal, unrecoverable condition: either a
// fee rate or a UTXO set broke Bitcoin's supply invariant.
func errNegativeAmount(s SignedAmount) error {
	return goerrors.Errorf("amount %d is negative where the caller's "+
		"contract guarantees non-negative", int64(s))
}

// errUnsupportedScript is returned by EstimateSatisfactionWeight for a
// script class it doesn't recognize.
func errUnsupportedScript(pkScript []byte) error {
	return goerrors.Errorf("unsupported script for satisfaction weight "+
		"estimation: %x", pkScript)
}
