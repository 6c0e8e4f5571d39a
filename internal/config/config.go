// Package config holds the tunable defaults coinselect's algorithms
// fall back to when a caller doesn't override them explicitly: the
// branch-and-bound try budget, the assumed vbyte size of a not-yet-
// created change output, and the name of the policy BnB falls back to
// on exhaustion.
package config

import (
	"github.com/jessevdk/go-flags"
)

// Config is the set of tunables loadable from a config file or the
// command line via go-flags struct tags, the same convention the
// teacher's daemon config uses.
type Config struct {
	BnBTotalTries int64 `long:"bnbtotaltries" description:"maximum branch-and-bound iterations to attempt before falling back"`

	SizeOfChangeVBytes int64 `long:"sizeofchangevbytes" description:"assumed vbyte size of the change output branch-and-bound hasn't created yet"`

	FallbackPolicy string `long:"fallbackpolicy" description:"policy branch-and-bound falls back to on exhaustion" choice:"single_random_draw" choice:"largest_first" choice:"oldest_first"`
}

// DefaultBnBTotalTries mirrors coinselect.BNBTotalTries; duplicated
// here rather than imported so this package never needs to depend on
// the core algorithms package just to describe its own defaults.
const DefaultBnBTotalTries = 100_000

// DefaultSizeOfChangeVBytes mirrors coinselect.DefaultSizeOfChangeVBytes.
const DefaultSizeOfChangeVBytes = 31

// DefaultFallbackPolicy is the fallback policy name used when none is
// configured.
const DefaultFallbackPolicy = "single_random_draw"

// DefaultConfig returns the tunables coinselect uses when a caller
// builds its own Config from scratch instead of parsing one.
func DefaultConfig() *Config {
	return &Config{
		BnBTotalTries:      DefaultBnBTotalTries,
		SizeOfChangeVBytes: DefaultSizeOfChangeVBytes,
		FallbackPolicy:     DefaultFallbackPolicy,
	}
}

// Parse reads args (typically os.Args[1:]) into a Config seeded with
// DefaultConfig's values, the same two-step default-then-override
// pattern the teacher's daemon config loader uses.
func Parse(args []string) (*Config, error) {
	cfg := DefaultConfig()

	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
