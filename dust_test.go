package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecideChangeAboveDust(t *testing.T) {
	feeRate := NewFeeRate(1)
	drainScript := testScript(0x01)

	remaining := Amount(100_000)
	excess := decideChange(remaining, feeRate, drainScript)

	change, ok := excess.(ChangeExcess)
	require.True(t, ok)
	require.True(t, change.Amount > 0)
	require.True(t, change.Amount < remaining)
}

func TestDecideChangeBelowDust(t *testing.T) {
	feeRate := NewFeeRate(1)
	drainScript := testScript(0x01)

	// A remaining amount only slightly larger than the change output's
	// own fee leaves a drain value well under the dust threshold.
	changeFee := feeRate.Fee(mustWeightFromVBytes(DefaultSizeOfChangeVBytes))
	remaining := changeFee + 1

	excess := decideChange(remaining, feeRate, drainScript)

	noChange, ok := excess.(NoChangeExcess)
	require.True(t, ok)
	require.Equal(t, remaining, noChange.RemainingAmount)
}

func TestDustThresholdMonotonicInScriptSize(t *testing.T) {
	small := dustThreshold(testScript(0x01)[:4])
	large := dustThreshold(testScript(0x01))

	require.True(t, large >= small)
}
