package config_test

import (
	"testing"

	"github.com/ltcsuite/coinselect/internal/config"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	require.Equal(t, int64(config.DefaultBnBTotalTries), cfg.BnBTotalTries)
	require.Equal(t, int64(config.DefaultSizeOfChangeVBytes), cfg.SizeOfChangeVBytes)
	require.Equal(t, config.DefaultFallbackPolicy, cfg.FallbackPolicy)
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]string{
		"--bnbtotaltries=500",
		"--fallbackpolicy=largest_first",
	})
	require.NoError(t, err)

	require.Equal(t, int64(500), cfg.BnBTotalTries)
	require.Equal(t, int64(config.DefaultSizeOfChangeVBytes), cfg.SizeOfChangeVBytes)
	require.Equal(t, "largest_first", cfg.FallbackPolicy)
}

func TestParseRejectsUnknownFallbackPolicy(t *testing.T) {
	_, err := config.Parse([]string{"--fallbackpolicy=not_a_policy"})
	require.Error(t, err)
}
