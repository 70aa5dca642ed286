// Package feedist implements fee distribution: amending each goal's output
// value according to its expense-regulation share of the estimated fee.
package feedist

import "github.com/rawblock/coinselect-engine/pkg/coinmodel"

// Goal pairs a regulation with the output it governs — the same shape as
// coinmodel.Goal, declared here as this package's own input and result
// type. The policy runner converts its generated outputs into it before
// calling Distribute.
type Goal[A comparable] struct {
	Regulation coinmodel.ExpenseRegulation
	Output     coinmodel.Output[A]
}

// Distribute amends each goal's output value by its share (epsilon) of
// upperBoundFee = feeEstimator(expectedInputsLen, outVal(goals)):
//
//   - a sender-pays (bps==0) goal's value grows by epsilon, since on the
//     input side of the ledger the sender is absorbing that cost;
//   - a partially-or-fully receiver-pays goal's value shrinks by
//     ceil(epsilon * bps / RegulationBpsMax), failing with
//     ErrInsufficientFundsToCoverFee if that would go negative.
//
// Goals whose amended value lands at exactly zero are dropped from the
// result — only nonzero outputs should contribute to the finalized
// transaction.
func Distribute[A comparable](feeEstimator coinmodel.FeeEstimator, goals []Goal[A], expectedInputsLen int) ([]Goal[A], error) {
	outVals := make([]coinmodel.Value, len(goals))
	for i, g := range goals {
		outVals[i] = g.Output.Val
	}
	upperBoundFee := feeEstimator(expectedInputsLen, outVals)

	var epsilon coinmodel.Value
	if len(goals) == 0 {
		epsilon = upperBoundFee
	} else {
		epsilon = upperBoundFee / coinmodel.Value(len(goals))
	}

	amended := make([]Goal[A], 0, len(goals))
	for _, g := range goals {
		bps := g.Regulation.Bps()
		v := g.Output.Val
		var newVal coinmodel.Value

		switch {
		case bps == 0:
			newVal = v.Add(epsilon)

		case bps <= coinmodel.RegulationBpsMax:
			d := ceilShare(epsilon, bps)
			if v < d {
				return nil, &coinmodel.ErrInsufficientFundsToCoverFee[A]{Regulation: g.Regulation, Output: g.Output}
			}
			newVal = v - d

		default:
			panic("feedist: expense regulation ratio above 1.0")
		}

		// Keep only outputs that still carry value. (The reference this
		// core is modeled on inverted this filter and kept the zero
		// outputs instead — almost certainly a bug, since it contradicts
		// both its own comment and the solvency check downstream.)
		if newVal == 0 {
			continue
		}
		amended = append(amended, Goal[A]{
			Regulation: g.Regulation,
			Output:     coinmodel.Output[A]{Addr: g.Output.Addr, Val: newVal},
		})
	}

	return amended, nil
}

// ceilShare computes ceil(epsilon * bps / RegulationBpsMax) using integer
// arithmetic throughout, so the result never drifts below the true
// mathematical ceiling the way a float64 round-trip could at the boundary.
func ceilShare(epsilon coinmodel.Value, bps uint32) coinmodel.Value {
	num := epsilon * coinmodel.Value(bps)
	den := coinmodel.Value(coinmodel.RegulationBpsMax)
	return (num + den - 1) / den
}
