// Command coinselect-demo runs the coin-selection core against a
// JSON-described UTXO and goal list, printing the resulting transaction.
// It is a driver for the library, not the library itself — the core has no
// CLI or wire format of its own.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rawblock/coinselect-engine/internal/capimpl"
	"github.com/rawblock/coinselect-engine/internal/feeest"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
	"github.com/rawblock/coinselect-engine/pkg/coinselect"
	"github.com/rawblock/coinselect-engine/pkg/coinstats"
	"github.com/rawblock/coinselect-engine/pkg/coinutxo"
)

// utxoEntryJSON mirrors one spendable output in the input file.
type utxoEntryJSON struct {
	Txid    string `json:"txid"`
	Vout    uint32 `json:"vout"`
	Address string `json:"address"`
	Value   uint64 `json:"value"`
}

// goalJSON mirrors one payment goal.
type goalJSON struct {
	Address       string `json:"address"`
	Value         uint64 `json:"value"`
	RegulationBps uint32 `json:"regulationBps"`
}

type requestJSON struct {
	UTxO        []utxoEntryJSON `json:"utxo"`
	Goals       []goalJSON      `json:"goals"`
	Policy      string          `json:"policy"` // "exact" | "largest-first" | "random"
	Privacy     bool            `json:"privacy"`
	SatsPerByte uint64          `json:"satsPerByte"` // 0 = fee is always zero
}

func main() {
	path := "-"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	req, err := loadRequest(path)
	if err != nil {
		log.Fatalf("coinselect-demo: %v", err)
	}

	utxo, err := buildUTxO(req.UTxO)
	if err != nil {
		log.Fatalf("coinselect-demo: %v", err)
	}

	goals := buildGoals(req.Goals)

	policy, err := parsePolicy(req.Policy)
	if err != nil {
		log.Fatalf("coinselect-demo: %v", err)
	}

	privacy := coinselect.PrivacyModeOff
	if req.Privacy {
		privacy = coinselect.PrivacyModeOn
	}

	caps := capimpl.NewStringAddressCapabilities()
	caps.Verbose = true
	rng := capimpl.NewMathRandSource()

	var feeEstimator coinmodel.FeeEstimator
	if req.SatsPerByte == 0 {
		feeEstimator = feeest.Constant(0)
	} else {
		feeEstimator = feeest.VByteRate(coinmodel.Value(req.SatsPerByte), true)
	}

	tx, stats, err := coinselect.SelectInputs(policy, privacy, caps, rng, feeEstimator, utxo, goals)
	if err != nil {
		log.Fatalf("coinselect-demo: selection failed: %v", err)
	}

	printResult(tx, stats)
}

func loadRequest(path string) (requestJSON, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return requestJSON{}, fmt.Errorf("reading input: %w", err)
	}

	var req requestJSON
	if err := json.Unmarshal(data, &req); err != nil {
		return requestJSON{}, fmt.Errorf("parsing input: %w", err)
	}
	return req, nil
}

func buildUTxO(entries []utxoEntryJSON) (*coinutxo.UTxO[string], error) {
	utxo := coinutxo.Empty[string]()
	for _, e := range entries {
		h, err := chainhash.NewHashFromStr(e.Txid)
		if err != nil {
			return nil, fmt.Errorf("invalid txid %q: %w", e.Txid, err)
		}
		input := coinmodel.NewInput(*h, e.Vout)
		utxo.Insert(input, coinmodel.Output[string]{Addr: e.Address, Val: coinmodel.Value(e.Value)})
	}
	return utxo, nil
}

func buildGoals(entries []goalJSON) []coinmodel.Goal[string] {
	goals := make([]coinmodel.Goal[string], len(entries))
	for i, g := range entries {
		goals[i] = coinmodel.Goal[string]{
			Regulation: coinmodel.NewExpenseRegulation(g.RegulationBps),
			Output:     coinmodel.Output[string]{Addr: g.Address, Val: coinmodel.Value(g.Value)},
		}
	}
	return goals
}

func parsePolicy(name string) (coinselect.Policy, error) {
	switch name {
	case "", "exact":
		return coinselect.ExactSingleMatch, nil
	case "largest-first":
		return coinselect.LargestFirst, nil
	case "random":
		return coinselect.Random, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", name)
	}
}

func printResult(tx *coinmodel.Transaction[string], stats coinstats.TxStats) {
	log.Printf("selected %d input(s), fee=%d, hash=%s", len(tx.Inputs), tx.Fee, tx.Hash)
	for _, o := range tx.Outputs {
		log.Printf("  output: %s <- %d", o.Addr, o.Val)
	}
	log.Printf("stats: numInputsHist=%v ratios=%v", stats.NumInputsHist, stats.Ratios)
}
