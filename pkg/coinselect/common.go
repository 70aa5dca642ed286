package coinselect

import "github.com/rawblock/coinselect-engine/pkg/coinhist"

// ratioMultiset is a one-element change-ratio multiset, shared by all three
// policies when they report PartialTxStats for a single goal.
func ratioMultiset(v float64) coinhist.MultiSet {
	return coinhist.SingletonRatio(v)
}
