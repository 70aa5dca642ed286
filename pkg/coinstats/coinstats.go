// Package coinstats implements the two transaction-statistics shapes used
// to evaluate policy behavior: PartialTxStats, accumulated goal-by-goal
// within a single run, and TxStats, the per-transaction aggregate suitable
// for combining across many finalized transactions.
package coinstats

import "github.com/rawblock/coinselect-engine/pkg/coinhist"

// PartialTxStats accumulates within a single selection run: a scalar input
// count and a multiset of per-goal change ratios. Composition is additive
// on the scalar — two goals needing 2 and 3 inputs combine to a partial of
// 5, not a histogram with bins at 2 and 3. That distinction only appears
// once the partial is finalized into a TxStats (see FromPartial).
type PartialTxStats struct {
	NumInputs int
	Ratios    coinhist.MultiSet
}

// EmptyPartial is the identity element for Combine.
func EmptyPartial() PartialTxStats {
	return PartialTxStats{NumInputs: 0, Ratios: coinhist.MultiSet{}}
}

// Combine adds p and other's input counts and unions their ratio
// multisets.
func (p PartialTxStats) Combine(other PartialTxStats) PartialTxStats {
	return PartialTxStats{
		NumInputs: p.NumInputs + other.NumInputs,
		Ratios:    p.Ratios.Union(other.Ratios),
	}
}

// TxStats is the per-transaction aggregate: a histogram of input counts
// (one bin per finalized transaction) and the multiset of all its goals'
// change ratios. Composition is additive on the histogram — aggregating
// transactions of sizes n and m yields bins {n, m}, never {n+m}.
type TxStats struct {
	NumInputsHist coinhist.Histogram
	Ratios        coinhist.MultiSet
}

// FromPartial finalizes one transaction's accumulated PartialTxStats into a
// TxStats: its total input count becomes a single histogram bin.
func FromPartial(p PartialTxStats) TxStats {
	return TxStats{
		NumInputsHist: coinhist.Singleton(p.NumInputs),
		Ratios:        p.Ratios,
	}
}

// Combine merges the statistics of two (separately finalized) transactions.
func (t TxStats) Combine(other TxStats) TxStats {
	return TxStats{
		NumInputsHist: t.NumInputsHist.Add(other.NumInputsHist),
		Ratios:        t.Ratios.Union(other.Ratios),
	}
}
