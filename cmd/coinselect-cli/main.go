// coinselect-cli is a debugging and demo aid for the coinselect
// library. It reads a JSON UTXO set, target amount, and fee rate from
// a file (or stdin), runs a selection, and prints the chosen set and
// leftover verdict as JSON. It performs no signing, persistence, or
// network I/O of its own.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ltcsuite/coinselect"
	"github.com/ltcsuite/coinselect/internal/config"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "coinselect-cli"
	app.Usage = "run coin selection against a JSON UTXO set"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "in",
			Usage: "path to a JSON request file; defaults to stdin",
		},
		cli.StringFlag{
			Name:  "policy",
			Value: "default",
			Usage: "largest_first, oldest_first, single_random_draw, or default (branch and bound)",
		},
		cli.BoolFlag{
			Name:  "avoid-partial-spends",
			Usage: "group same-script utxos and select them atomically",
		},
	}
	app.UsageText = "coinselect-cli [options] [-- bnb tunable flags]\n\n" +
		"   When --policy is default (or unset), arguments after a " +
		"bare -- are parsed as go-flags options into a\n" +
		"   config.Config (--bnbtotaltries, --sizeofchangevbytes, " +
		"--fallbackpolicy) that parameterizes the branch-and-bound\n" +
		"   search actually run."
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "coinselect-cli:", err)
		os.Exit(1)
	}
}

// request is the JSON shape the CLI reads. It is a thin, CLI-only
// wrapper around CoinSelectionParams; the core library never depends
// on encoding/json itself.
type request struct {
	Required []jsonUtxo `json:"required"`
	Optional []jsonUtxo `json:"optional"`

	TargetAmount int64  `json:"target_amount"`
	FeeRate      int64  `json:"fee_rate"`
	DrainScript  string `json:"drain_script_hex"`
}

type jsonUtxo struct {
	Txid               string `json:"txid"`
	Vout               uint32 `json:"vout"`
	Value              int64  `json:"value"`
	PkScript           string `json:"pk_script_hex"`
	SatisfactionWeight int64  `json:"satisfaction_weight"`
	Foreign            bool   `json:"foreign"`
	Confirmed          bool   `json:"confirmed"`
	Height             int32  `json:"height"`
}

type response struct {
	Selected  []string `json:"selected"`
	FeeAmount int64    `json:"fee_amount"`
	Excess    any      `json:"excess"`
}

func run(c *cli.Context) error {
	var (
		data []byte
		err  error
	)
	if path := c.String("in"); path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("reading request: %w", err)
	}

	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parsing request: %w", err)
	}

	required, err := toWeightedUtxos(req.Required)
	if err != nil {
		return fmt.Errorf("parsing required utxos: %w", err)
	}
	optional, err := toWeightedUtxos(req.Optional)
	if err != nil {
		return fmt.Errorf("parsing optional utxos: %w", err)
	}

	drainScript, err := decodeHex(req.DrainScript)
	if err != nil {
		return fmt.Errorf("parsing drain script: %w", err)
	}

	params := coinselect.CoinSelectionParams{
		RequiredUtxos:      required,
		OptionalUtxos:      optional,
		FeeRate:            coinselect.NewFeeRate(req.FeeRate),
		TargetAmount:       coinselect.Amount(req.TargetAmount),
		DrainScript:        drainScript,
		Rand:               rand.New(rand.NewSource(time.Now().UnixNano())),
		AvoidPartialSpends: c.Bool("avoid-partial-spends"),
	}

	policy, err := choosePolicy(c.String("policy"), []string(c.Args()))
	if err != nil {
		return err
	}

	result, err := coinselect.Select(params, policy)
	if err != nil {
		return err
	}

	return printResult(result)
}

// choosePolicy builds the Policy named by name. For "default" (branch
// and bound), tunableArgs — the CLI's trailing arguments after a bare
// "--" — are parsed with go-flags into a config.Config that actually
// parameterizes the search, instead of the library's bare defaults.
func choosePolicy(name string, tunableArgs []string) (coinselect.Policy, error) {
	switch name {
	case "", "default":
		cfg, err := config.Parse(tunableArgs)
		if err != nil {
			return nil, fmt.Errorf("parsing branch-and-bound tunables: %w", err)
		}

		fallback, err := choosePolicy(cfg.FallbackPolicy, nil)
		if err != nil {
			return nil, err
		}

		return coinselect.BranchAndBound{
			SizeOfChangeVBytes: cfg.SizeOfChangeVBytes,
			MaxTries:           cfg.BnBTotalTries,
			Fallback:           fallback,
		}, nil
	case "largest_first":
		return coinselect.LargestFirst{}, nil
	case "oldest_first":
		return coinselect.OldestFirst{}, nil
	case "single_random_draw":
		return coinselect.SingleRandomDraw{}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

func toWeightedUtxos(utxos []jsonUtxo) ([]coinselect.WeightedUtxo, error) {
	out := make([]coinselect.WeightedUtxo, 0, len(utxos))

	for _, u := range utxos {
		txid, err := decodeHex(u.Txid)
		if err != nil {
			return nil, fmt.Errorf("txid %q: %w", u.Txid, err)
		}
		pkScript, err := decodeHex(u.PkScript)
		if err != nil {
			return nil, fmt.Errorf("pk_script_hex %q: %w", u.PkScript, err)
		}

		var hash chainhash.Hash
		copy(hash[:], txid)

		op := coinselect.OutPoint{Hash: hash, Index: u.Vout}
		txOut := coinselect.TxOut{Value: u.Value, PkScript: pkScript}

		var utxo coinselect.Utxo
		if u.Foreign {
			utxo = coinselect.ForeignOutput{Outpoint: op, Output: txOut}
		} else {
			utxo = coinselect.LocalOutput{
				Outpoint: op,
				Output:   txOut,
				Position: coinselect.ChainPosition{
					Confirmed: u.Confirmed,
					Height:    u.Height,
				},
			}
		}

		satisfactionWeight := coinselect.Weight(u.SatisfactionWeight)
		if satisfactionWeight == 0 {
			satisfactionWeight, err = coinselect.EstimateSatisfactionWeight(pkScript)
			if err != nil {
				return nil, fmt.Errorf("utxo %s:%d has no "+
					"satisfaction_weight and its script "+
					"isn't one this tool can estimate: %w",
					u.Txid, u.Vout, err)
			}
		}

		out = append(out, coinselect.WeightedUtxo{
			Utxo:               utxo,
			SatisfactionWeight: satisfactionWeight,
		})
	}

	return out, nil
}

func printResult(result *coinselect.CoinSelectionResult) error {
	resp := response{
		FeeAmount: int64(result.FeeAmount),
		Excess:    result.Excess,
	}
	for _, u := range result.Selected {
		op := u.OutPoint()
		resp.Selected = append(resp.Selected, fmt.Sprintf("%s:%d", op.Hash, op.Index))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(resp)
}

func decodeHex(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}

	return hex.DecodeString(s)
}
