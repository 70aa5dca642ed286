package coinselect

import (
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
	"github.com/rawblock/coinselect-engine/pkg/coinstats"
	"github.com/rawblock/coinselect-engine/pkg/coinutxo"
)

// Policy selects which of the three concrete selection algorithms
// SelectInputs runs.
type Policy int

const (
	// ExactSingleMatch takes, per goal, the one UTXO entry whose value
	// equals the goal exactly. Testing-only: fails on any goal without a
	// precise match.
	ExactSingleMatch Policy = iota
	// LargestFirst greedily accumulates the largest remaining entries
	// until the goal is covered, emitting change for any overshoot.
	LargestFirst
	// Random selects randomly per goal, with PrivacyMode shaping the
	// acceptable total input sum (and hence change size).
	Random
)

// SelectInputs is the library's single entry point: given a
// policy, a fee estimator, a snapshot of the wallet's UTXO, and an ordered
// list of payment goals, it returns a finalized unsigned Transaction plus
// the statistics describing how it was built, or a typed Failure.
//
// policyPrivacy is only consulted when policy == Random; pass
// PrivacyModeOff for the other two policies.
func SelectInputs[A comparable](
	policy Policy,
	policyPrivacy PrivacyMode,
	caps coinmodel.Capabilities[A],
	rng coinmodel.RandSource,
	feeEstimator coinmodel.FeeEstimator,
	utxo *coinutxo.UTxO[A],
	goals []coinmodel.Goal[A],
) (*coinmodel.Transaction[A], coinstats.TxStats, error) {
	var body Body[A]

	switch policy {
	case ExactSingleMatch:
		body = ExactSingleMatchBody(goals)
	case LargestFirst:
		body = LargestFirstBody(caps, goals)
	case Random:
		body = RandomBody(caps, rng, policyPrivacy, goals)
	default:
		panic("coinselect: unknown policy")
	}

	return RunPolicy(caps, feeEstimator, utxo, body)
}
