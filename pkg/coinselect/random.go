package coinselect

import (
	"errors"

	"github.com/rawblock/coinselect-engine/pkg/coinstats"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

// PrivacyMode toggles the random policy's preference for a change-sized
// acceptance range before falling back to "whatever covers the goal".
type PrivacyMode bool

const (
	// PrivacyModeOn prefers a total input sum in [v+v/2, v+2v], so change
	// lands between 0.5x and 2x the payment — hard to distinguish from a
	// regular payment of similar scale.
	PrivacyModeOn PrivacyMode = true
	// PrivacyModeOff skips straight to the uncapped fallback range.
	PrivacyModeOff PrivacyMode = false
)

// RandomBody builds a Body implementing the randomized policy: for
// each goal, attempt to land the total input sum in a privacy-preserving
// ideal range before falling back to any sum that covers the goal.
func RandomBody[A comparable](caps coinmodel.Capabilities[A], rng coinmodel.RandSource, mode PrivacyMode, goals []coinmodel.Goal[A]) Body[A] {
	return func(state *InputPolicyState[A]) (coinstats.PartialTxStats, error) {
		acc := coinstats.EmptyPartial()

		for _, g := range goals {
			v := g.Output.Val
			fallbackLo, fallbackHi := v, coinmodel.MaxValue

			var used map[coinmodel.Input]struct{}
			var sum coinmodel.Value
			var err error

			if mode == PrivacyModeOn {
				idealLo := v + v/2
				idealHi := v + 2*v
				used, sum, err = randomInRange(state.UTxO, rng, idealLo, idealHi)
				if err != nil {
					var selErr *coinmodel.ErrInputSelectionFailure
					if !errors.As(err, &selErr) {
						return coinstats.PartialTxStats{}, err
					}
					used, sum, err = randomInRange(state.UTxO, rng, fallbackLo, fallbackHi)
				}
			} else {
				used, sum, err = randomInRange(state.UTxO, rng, fallbackLo, fallbackHi)
			}
			if err != nil {
				return coinstats.PartialTxStats{}, err
			}

			for i := range used {
				state.SelectedInputs[i] = struct{}{}
			}
			state.GeneratedOutputs = append(state.GeneratedOutputs, GeneratedOutput[A]{
				Regulation: g.Regulation,
				Output:     g.Output,
			})

			var ratio float64
			if sum > v {
				changeVal := sum - v
				state.GeneratedOutputs = append(state.GeneratedOutputs, GeneratedOutput[A]{
					Regulation: g.Regulation,
					Output:     coinmodel.Output[A]{Addr: caps.GenerateChangeAddress(), Val: changeVal},
				})
				ratio = float64(changeVal) / float64(v)
			}

			acc = acc.Combine(coinstats.PartialTxStats{
				NumInputs: len(used),
				Ratios:    ratioMultiset(ratio),
			})
		}

		return acc, nil
	}
}
