package coinstats

import (
	"testing"

	"github.com/rawblock/coinselect-engine/pkg/coinhist"
)

func TestPartialTxStatsCombineSumsScalars(t *testing.T) {
	a := PartialTxStats{NumInputs: 2, Ratios: coinhist.SingletonRatio(0.1)}
	b := PartialTxStats{NumInputs: 3, Ratios: coinhist.SingletonRatio(0.2)}

	combined := a.Combine(b)
	if combined.NumInputs != 5 {
		t.Errorf("NumInputs = %d, want 5", combined.NumInputs)
	}
	if combined.Ratios.Len() != 2 {
		t.Errorf("Ratios.Len() = %d, want 2", combined.Ratios.Len())
	}
}

// TestFromPartialIsASingleBin checks the core monoid distinction: a
// multi-goal run's accumulated PartialTxStats (scalar 5) finalizes into
// ONE histogram bin at 5, not two bins.
func TestFromPartialIsASingleBin(t *testing.T) {
	partial := EmptyPartial().
		Combine(PartialTxStats{NumInputs: 2, Ratios: coinhist.SingletonRatio(0)}).
		Combine(PartialTxStats{NumInputs: 3, Ratios: coinhist.SingletonRatio(0)})

	stats := FromPartial(partial)
	if len(stats.NumInputsHist) != 1 {
		t.Fatalf("NumInputsHist = %v, want a single bin", stats.NumInputsHist)
	}
	if stats.NumInputsHist[5] != 1 {
		t.Errorf("NumInputsHist[5] = %d, want 1", stats.NumInputsHist[5])
	}
}

// TestCombineAcrossTransactionsKeepsBinsSeparate checks the other half of
// the same distinction: TxStats.Combine (aggregating two *separate*
// finalized transactions of sizes 2 and 3) must produce bins {2, 3}, never
// collapse to bin 5.
func TestCombineAcrossTransactionsKeepsBinsSeparate(t *testing.T) {
	txA := FromPartial(PartialTxStats{NumInputs: 2, Ratios: coinhist.SingletonRatio(0)})
	txB := FromPartial(PartialTxStats{NumInputs: 3, Ratios: coinhist.SingletonRatio(0)})

	aggregate := txA.Combine(txB)
	if len(aggregate.NumInputsHist) != 2 {
		t.Fatalf("NumInputsHist = %v, want bins at 2 and 3", aggregate.NumInputsHist)
	}
	if aggregate.NumInputsHist[2] != 1 || aggregate.NumInputsHist[3] != 1 {
		t.Errorf("NumInputsHist = %v, want {2:1, 3:1}", aggregate.NumInputsHist)
	}
}
