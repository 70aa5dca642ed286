// Package coinselect is the public coin-selection library: the stateful
// selection runner (InputPolicyState and RunPolicy), the three concrete
// policies built on top of it (exact-single-match, largest-first, random
// with privacy-aware change sizing), and the SelectInputs facade that ties
// a policy choice to a single call.
package coinselect

import (
	"github.com/rawblock/coinselect-engine/internal/feedist"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
	"github.com/rawblock/coinselect-engine/pkg/coinstats"
	"github.com/rawblock/coinselect-engine/pkg/coinutxo"
)

// GeneratedOutput pairs an output produced during a run with the expense
// regulation of the goal it came from (needed later so fee distribution
// knows how to amend it).
type GeneratedOutput[A comparable] struct {
	Regulation coinmodel.ExpenseRegulation
	Output     coinmodel.Output[A]
}

// InputPolicyState is the mutable working set threaded through a single
// selection run: the remaining UTXO, the inputs chosen so far, and the
// outputs generated so far. A policy body holds an exclusive reference to
// it for the run's duration; no state outlives a run.
//
// Invariants maintained by every method in this package: SelectedInputs is
// always disjoint from UTxO.Domain(), and SelectedInputs is always a subset
// of the run's initial UTXO domain.
type InputPolicyState[A comparable] struct {
	UTxO             *coinutxo.UTxO[A]
	SelectedInputs   map[coinmodel.Input]struct{}
	GeneratedOutputs []GeneratedOutput[A]
}

func initState[A comparable](initial *coinutxo.UTxO[A]) *InputPolicyState[A] {
	return &InputPolicyState[A]{
		UTxO:           initial.Clone(),
		SelectedInputs: make(map[coinmodel.Input]struct{}),
	}
}

// Body is a stateful computation that drains InputPolicyState to cover its
// goals, producing the partial input/ratio statistics for what it selected.
// It raises a *coinmodel.ErrInputSelectionFailure (or panics, for
// programmer errors) rather than returning an ok=false.
type Body[A comparable] func(*InputPolicyState[A]) (coinstats.PartialTxStats, error)

// RunPolicy executes body against a fresh state seeded from initialUTxO,
// then distributes the fee across the generated outputs and checks that the
// selected inputs actually cover the fee-adjusted total.
func RunPolicy[A comparable](
	caps coinmodel.Capabilities[A],
	feeEstimator coinmodel.FeeEstimator,
	initialUTxO *coinutxo.UTxO[A],
	body Body[A],
) (*coinmodel.Transaction[A], coinstats.TxStats, error) {
	state := initState(initialUTxO)

	partial, err := body(state)
	if err != nil {
		return nil, coinstats.TxStats{}, err
	}

	treasury := caps.TreasuryAddress()
	generated := make([]feedist.Goal[A], 0, len(state.GeneratedOutputs))
	for _, g := range state.GeneratedOutputs {
		if g.Output.Addr == treasury {
			continue
		}
		generated = append(generated, feedist.Goal[A]{Regulation: g.Regulation, Output: g.Output})
	}

	distributed, err := feedist.Distribute(feeEstimator, generated, len(state.SelectedInputs))
	if err != nil {
		return nil, coinstats.TxStats{}, err
	}

	var amountNeeded coinmodel.Value
	finalOutputs := make([]coinmodel.Output[A], len(distributed))
	for i, g := range distributed {
		finalOutputs[i] = g.Output
		amountNeeded = amountNeeded.Add(g.Output.Val)
	}

	amountCovered := initialUTxO.RestrictTo(state.SelectedInputs).Balance()
	if amountCovered < amountNeeded {
		slack := amountNeeded - amountCovered
		return nil, coinstats.TxStats{}, &coinmodel.ErrNeedsExtraInputsToCover[A]{
			Regulation: coinmodel.SenderPaysFees(),
			Output:     coinmodel.Output[A]{Addr: treasury, Val: slack},
		}
	}

	outVals := make([]coinmodel.Value, len(finalOutputs))
	for i, o := range finalOutputs {
		outVals[i] = o.Val
	}
	fee := feeEstimator(len(state.SelectedInputs), outVals)

	tx := &coinmodel.Transaction[A]{
		Inputs:  cloneInputSet(state.SelectedInputs),
		Outputs: finalOutputs,
		Fee:     fee,
		Hash:    caps.GenerateFreshHash(),
	}

	return tx, coinstats.FromPartial(partial), nil
}

func cloneInputSet(s map[coinmodel.Input]struct{}) map[coinmodel.Input]struct{} {
	clone := make(map[coinmodel.Input]struct{}, len(s))
	for i := range s {
		clone[i] = struct{}{}
	}
	return clone
}
