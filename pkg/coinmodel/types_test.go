package coinmodel

import "testing"

func TestValueAddOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Add() did not panic on overflow")
		}
	}()
	MaxValue.Add(1)
}

func TestValueAdd(t *testing.T) {
	if got := Value(10).Add(5); got != 15 {
		t.Errorf("Add() = %d, want 15", got)
	}
}

func TestNewExpenseRegulationPanicsAboveMax(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewExpenseRegulation() did not panic for bps > max")
		}
	}()
	NewExpenseRegulation(RegulationBpsMax + 1)
}

func TestSenderPaysFeesIsZeroBps(t *testing.T) {
	if !SenderPaysFees().IsSenderPays() {
		t.Errorf("SenderPaysFees().IsSenderPays() = false, want true")
	}
	if ReceiverPaysFees().IsSenderPays() {
		t.Errorf("ReceiverPaysFees().IsSenderPays() = true, want false")
	}
	if ReceiverPaysFees().Bps() != RegulationBpsMax {
		t.Errorf("ReceiverPaysFees().Bps() = %d, want %d", ReceiverPaysFees().Bps(), RegulationBpsMax)
	}
}

func TestCompareInputsOrdersByHashThenIndex(t *testing.T) {
	var h1, h2 Hash
	h1[0] = 1
	h2[0] = 2

	a := NewInput(h1, 5)
	b := NewInput(h1, 6)
	c := NewInput(h2, 0)

	if CompareInputs(a, b) >= 0 {
		t.Errorf("CompareInputs(a, b) >= 0, want < 0 (same hash, lower index first)")
	}
	if CompareInputs(b, c) >= 0 {
		t.Errorf("CompareInputs(b, c) >= 0, want < 0 (lower hash byte first)")
	}
	if CompareInputs(a, a) != 0 {
		t.Errorf("CompareInputs(a, a) != 0")
	}
}
