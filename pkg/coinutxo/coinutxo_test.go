package coinutxo

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

func hashFromByte(b byte) coinmodel.Hash {
	var h chainhash.Hash
	h[0] = b
	return h
}

func input(b byte, idx uint32) coinmodel.Input {
	return coinmodel.NewInput(hashFromByte(b), idx)
}

func TestBalanceSumsValues(t *testing.T) {
	u := Empty[string]()
	u.Insert(input(1, 0), coinmodel.Output[string]{Addr: "A", Val: 100})
	u.Insert(input(2, 0), coinmodel.Output[string]{Addr: "A", Val: 50})

	if got := u.Balance(); got != 150 {
		t.Errorf("Balance() = %d, want 150", got)
	}
	if got := u.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	u := Empty[string]()
	i := input(1, 0)
	u.Insert(i, coinmodel.Output[string]{Addr: "A", Val: 100})
	u.Delete(i)

	if _, ok := u.Get(i); ok {
		t.Errorf("entry still present after Delete")
	}
	if u.Size() != 0 {
		t.Errorf("Size() = %d, want 0", u.Size())
	}
}

func TestRestrictToOnlyKeepsSetMembers(t *testing.T) {
	u := Empty[string]()
	i1, i2 := input(1, 0), input(2, 0)
	u.Insert(i1, coinmodel.Output[string]{Addr: "A", Val: 100})
	u.Insert(i2, coinmodel.Output[string]{Addr: "A", Val: 50})

	restricted := u.RestrictTo(map[coinmodel.Input]struct{}{i1: {}})
	if restricted.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", restricted.Size())
	}
	if _, ok := restricted.Get(i1); !ok {
		t.Errorf("i1 missing from restricted set")
	}
	if restricted.Balance() != 100 {
		t.Errorf("Balance() = %d, want 100", restricted.Balance())
	}
}

func TestRemoveInputsIsComplementOfRestrictTo(t *testing.T) {
	u := Empty[string]()
	i1, i2 := input(1, 0), input(2, 0)
	u.Insert(i1, coinmodel.Output[string]{Addr: "A", Val: 100})
	u.Insert(i2, coinmodel.Output[string]{Addr: "A", Val: 50})

	remaining := u.RemoveInputs(map[coinmodel.Input]struct{}{i1: {}})
	if remaining.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", remaining.Size())
	}
	if _, ok := remaining.Get(i2); !ok {
		t.Errorf("i2 missing from remaining set")
	}
}

func TestDomainMatchesInsertedInputs(t *testing.T) {
	u := Empty[string]()
	i1, i2 := input(1, 0), input(2, 0)
	u.Insert(i1, coinmodel.Output[string]{Addr: "A", Val: 100})
	u.Insert(i2, coinmodel.Output[string]{Addr: "A", Val: 50})

	domain := u.Domain()
	if len(domain) != 2 {
		t.Fatalf("len(Domain()) = %d, want 2", len(domain))
	}
	if _, ok := domain[i1]; !ok {
		t.Errorf("i1 missing from domain")
	}
}

func TestToListIsSortedDeterministically(t *testing.T) {
	u := Empty[string]()
	i1, i2, i3 := input(3, 0), input(1, 0), input(2, 0)
	u.Insert(i1, coinmodel.Output[string]{Addr: "A", Val: 1})
	u.Insert(i2, coinmodel.Output[string]{Addr: "A", Val: 2})
	u.Insert(i3, coinmodel.Output[string]{Addr: "A", Val: 3})

	list := u.ToList()
	for i := 1; i < len(list); i++ {
		if coinmodel.CompareInputs(list[i-1].Input, list[i].Input) >= 0 {
			t.Fatalf("ToList() not sorted ascending at index %d: %v", i, list)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	u := Empty[string]()
	i1 := input(1, 0)
	u.Insert(i1, coinmodel.Output[string]{Addr: "A", Val: 100})

	clone := u.Clone()
	clone.Delete(i1)

	if _, ok := u.Get(i1); !ok {
		t.Errorf("original mutated via clone")
	}
	if clone.Size() != 0 {
		t.Errorf("clone.Size() = %d, want 0", clone.Size())
	}
}

func TestUnionPrefersOtherOnCollision(t *testing.T) {
	i1 := input(1, 0)
	a := Empty[string]()
	a.Insert(i1, coinmodel.Output[string]{Addr: "A", Val: 100})
	b := Empty[string]()
	b.Insert(i1, coinmodel.Output[string]{Addr: "B", Val: 200})

	merged := a.Union(b)
	o, _ := merged.Get(i1)
	if o.Val != 200 || o.Addr != "B" {
		t.Errorf("Union() = %+v, want B/200", o)
	}
}

func TestFromMapRoundTrip(t *testing.T) {
	i1 := input(1, 0)
	m := map[coinmodel.Input]coinmodel.Output[string]{
		i1: {Addr: "A", Val: 42},
	}
	u := FromMap(m)
	if got, ok := u.Get(i1); !ok || got.Val != 42 {
		t.Errorf("FromMap round-trip failed: %+v", got)
	}
	out := u.ToMap()
	if len(out) != 1 || out[i1].Val != 42 {
		t.Errorf("ToMap() = %+v", out)
	}
}
