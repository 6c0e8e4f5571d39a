package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignedAmountToAmount(t *testing.T) {
	require.Equal(t, Amount(100), SignedAmount(100).ToAmount())
	require.Equal(t, Amount(0), SignedAmount(0).ToAmount())

	require.Panics(t, func() {
		SignedAmount(-1).ToAmount()
	})
}
