package coinselect

import (
	"sort"

	"github.com/rawblock/coinselect-engine/pkg/coinstats"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

// LargestFirstBody builds a Body implementing the deterministic greedy policy:
// for each goal, sort the remaining UTXO descending by value and accumulate
// from the front until the running sum covers the goal, emitting a change
// output for any overshoot. Fails with ErrInputSelectionFailure if the
// entire remaining UTXO is exhausted before reaching the goal.
//
// Ties on value are broken by coinmodel.CompareInputs — any total order on
// Input is acceptable here; this implementation does not need to match
// any particular reference ordering.
func LargestFirstBody[A comparable](caps coinmodel.Capabilities[A], goals []coinmodel.Goal[A]) Body[A] {
	return func(state *InputPolicyState[A]) (coinstats.PartialTxStats, error) {
		acc := coinstats.EmptyPartial()

		for _, g := range goals {
			entries := state.UTxO.ToList()
			sort.Slice(entries, func(i, j int) bool {
				if entries[i].Output.Val != entries[j].Output.Val {
					return entries[i].Output.Val > entries[j].Output.Val
				}
				return coinmodel.CompareInputs(entries[i].Input, entries[j].Input) < 0
			})

			var sum coinmodel.Value
			var selected []coinmodel.Input
			for _, e := range entries {
				selected = append(selected, e.Input)
				sum = sum.Add(e.Output.Val)
				if sum >= g.Output.Val {
					break
				}
			}
			if sum < g.Output.Val {
				return coinstats.PartialTxStats{}, &coinmodel.ErrInputSelectionFailure{}
			}

			for _, i := range selected {
				state.UTxO.Delete(i)
				state.SelectedInputs[i] = struct{}{}
			}
			state.GeneratedOutputs = append(state.GeneratedOutputs, GeneratedOutput[A]{
				Regulation: g.Regulation,
				Output:     g.Output,
			})

			var ratio float64
			if sum > g.Output.Val {
				changeVal := sum - g.Output.Val
				state.GeneratedOutputs = append(state.GeneratedOutputs, GeneratedOutput[A]{
					Regulation: g.Regulation,
					Output:     coinmodel.Output[A]{Addr: caps.GenerateChangeAddress(), Val: changeVal},
				})
				ratio = float64(changeVal) / float64(g.Output.Val)
			}

			acc = acc.Combine(coinstats.PartialTxStats{
				NumInputs: len(selected),
				Ratios:    ratioMultiset(ratio),
			})
		}

		return acc, nil
	}
}
