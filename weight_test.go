package coinselect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightFromVBytes(t *testing.T) {
	w, err := WeightFromVBytes(100)
	require.NoError(t, err)
	require.Equal(t, Weight(400), w)

	_, err = WeightFromVBytes(-1)
	require.Error(t, err)

	_, err = WeightFromVBytes(math.MaxInt64)
	require.Error(t, err)
}

func TestMustWeightFromVBytesPanics(t *testing.T) {
	require.Panics(t, func() {
		mustWeightFromVBytes(math.MaxInt64)
	})
}

func TestAddWeightOverflowPanics(t *testing.T) {
	require.Panics(t, func() {
		addWeight(math.MaxInt64, 1)
	})

	require.NotPanics(t, func() {
		addWeight(10, 20)
	})
}

func TestFeeRateFeeRoundsUp(t *testing.T) {
	// 1 sat/vB == 250 sat/kwu. A single weight unit's fee must round
	// up to 1 sat rather than truncate to 0.
	fr := NewFeeRate(1)
	require.Equal(t, Amount(1), fr.Fee(1))

	// An exact multiple (4 weight units == 1 vbyte) must not be
	// rounded up further.
	require.Equal(t, Amount(1), fr.Fee(Weight(4)))
}

func TestFeeRateFeeNegativeWeightPanics(t *testing.T) {
	fr := NewFeeRate(1)
	require.Panics(t, func() {
		fr.Fee(-1)
	})
}

func TestDefaultSizeOfChangeVBytes(t *testing.T) {
	// 8 byte value + 1 byte varint length + 22 byte P2WPKH script.
	require.Equal(t, int64(31), int64(DefaultSizeOfChangeVBytes))
}
