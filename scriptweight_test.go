package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func p2wpkhScript() []byte {
	script := make([]byte, 22)
	script[0] = 0x00
	script[1] = 0x14

	return script
}

func p2shScript() []byte {
	script := make([]byte, 23)
	script[0] = 0xa9
	script[1] = 0x14
	script[22] = 0x87

	return script
}

func p2wshScript() []byte {
	script := make([]byte, 34)
	script[0] = 0x00
	script[1] = 0x20

	return script
}

func TestEstimateSatisfactionWeightP2WPKH(t *testing.T) {
	w, err := EstimateSatisfactionWeight(p2wpkhScript())
	require.NoError(t, err)
	require.Equal(t, Weight(107), w)
}

func TestEstimateSatisfactionWeightNestedP2WPKH(t *testing.T) {
	w, err := EstimateSatisfactionWeight(p2shScript())
	require.NoError(t, err)
	require.True(t, w > 107)
}

func TestEstimateSatisfactionWeightUnsupported(t *testing.T) {
	_, err := EstimateSatisfactionWeight(p2wshScript())
	require.Error(t, err)
}
