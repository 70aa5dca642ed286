package coinselect

import (
	"github.com/rawblock/coinselect-engine/pkg/coinstats"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

// ExactSingleMatchBody builds a Body that, for each goal, takes the first UTXO
// entry (in deterministic input order) whose value equals the goal exactly.
// It never produces change and is intended for tests, not production use —
// any deterministic tie-break is acceptable since the policy never ships.
func ExactSingleMatchBody[A comparable](goals []coinmodel.Goal[A]) Body[A] {
	return func(state *InputPolicyState[A]) (coinstats.PartialTxStats, error) {
		acc := coinstats.EmptyPartial()

		for _, g := range goals {
			input, ok := findExactMatch(state, g.Output.Val)
			if !ok {
				return coinstats.PartialTxStats{}, &coinmodel.ErrInputSelectionFailure{}
			}

			state.UTxO.Delete(input)
			state.SelectedInputs[input] = struct{}{}
			state.GeneratedOutputs = append(state.GeneratedOutputs, GeneratedOutput[A]{
				Regulation: g.Regulation,
				Output:     g.Output,
			})

			acc = acc.Combine(coinstats.PartialTxStats{
				NumInputs: 1,
				Ratios:    ratioMultiset(0),
			})
		}

		return acc, nil
	}
}

func findExactMatch[A comparable](state *InputPolicyState[A], v coinmodel.Value) (coinmodel.Input, bool) {
	for _, e := range state.UTxO.ToList() {
		if e.Output.Val == v {
			return e.Input, true
		}
	}
	return coinmodel.Input{}, false
}
