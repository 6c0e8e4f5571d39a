package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChainPositionLess(t *testing.T) {
	confirmed10 := ChainPosition{Confirmed: true, Height: 10}
	confirmed20 := ChainPosition{Confirmed: true, Height: 20}
	unconfirmed := ChainPosition{}

	require.True(t, confirmed10.Less(confirmed20))
	require.False(t, confirmed20.Less(confirmed10))
	require.True(t, confirmed10.Less(unconfirmed))
	require.False(t, unconfirmed.Less(confirmed10))
}

func TestUtxoChainPosition(t *testing.T) {
	local := localUtxo(0, 1000, p2wpkhSatisfactionWeight, 0x01, 100)
	pos, ok := local.Utxo.ChainPosition()
	require.True(t, ok)
	require.True(t, pos.Confirmed)
	require.Equal(t, int32(100), pos.Height)

	foreign := foreignUtxo(1, 1000, p2wpkhSatisfactionWeight, 0x02)
	_, ok = foreign.Utxo.ChainPosition()
	require.False(t, ok)
}

func TestWeightedUtxoInputWeight(t *testing.T) {
	wu := localUtxo(0, 1000, p2wpkhSatisfactionWeight, 0x01, 100)
	require.Equal(
		t, DefaultSegwitInputWeight+p2wpkhSatisfactionWeight,
		wu.InputWeight(),
	)
}

func TestEffectiveValue(t *testing.T) {
	wu := localUtxo(0, 100_000, p2wpkhSatisfactionWeight, 0x01, 100)
	feeRate := NewFeeRate(1)

	fee, ev := EffectiveValue(wu, feeRate)
	require.Equal(t, feeRate.Fee(wu.InputWeight()), fee)
	require.Equal(t, SignedAmount(wu.Value())-SignedAmount(fee), ev)
	require.True(t, ev > 0)
}

func TestEffectiveValueCanGoNegative(t *testing.T) {
	// A dust-sized UTXO costs more to spend than it's worth at a high
	// fee rate.
	wu := localUtxo(0, 10, p2wpkhSatisfactionWeight, 0x01, 100)
	feeRate := NewFeeRate(1000)

	_, ev := EffectiveValue(wu, feeRate)
	require.True(t, ev < 0)
}
