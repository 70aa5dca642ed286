package coinselect

import (
	"github.com/rawblock/coinselect-engine/pkg/coinutxo"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

// randomElement draws one entry uniformly at random from u and removes it,
// or reports ok=false if u is empty. The underlying map has no positional
// access, so each draw reifies it as the same deterministic (sorted-by-
// input) sequence and asks rng for an index into that sequence — this is
// what makes a deterministic RandSource double reproduce a run bit-exactly.
func randomElement[A comparable](u *coinutxo.UTxO[A], rng coinmodel.RandSource) (coinutxo.Entry[A], bool) {
	list := u.ToList()
	if len(list) == 0 {
		return coinutxo.Entry[A]{}, false
	}
	idx := rng.RandInt(0, int64(len(list)-1))
	entry := list[idx]
	u.Delete(entry.Input)
	return entry, true
}

// randomInRange implements an acc/discarded/used partition algorithm:
// draw random entries from u until the accumulated sum lands in
// [lo, hi]. Every draw — whether it ends up used or discarded as
// too-large — is tracked in drawn so it can be put back into u: discarded
// draws are restored as soon as the target is reached, and on failure
// (u runs dry before the sum lands in range) the used draws are restored
// too, since nothing was actually selected.
func randomInRange[A comparable](u *coinutxo.UTxO[A], rng coinmodel.RandSource, lo, hi coinmodel.Value) (map[coinmodel.Input]struct{}, coinmodel.Value, error) {
	used := make(map[coinmodel.Input]struct{})
	drawn := make(map[coinmodel.Input]coinmodel.Output[A])
	var acc coinmodel.Value

	for {
		if acc >= lo && acc <= hi {
			for i, o := range drawn {
				if _, ok := used[i]; !ok {
					u.Insert(i, o)
				}
			}
			return used, acc, nil
		}

		entry, ok := randomElement(u, rng)
		if !ok {
			for i, o := range drawn {
				u.Insert(i, o)
			}
			return nil, 0, &coinmodel.ErrInputSelectionFailure{}
		}
		drawn[entry.Input] = entry.Output

		next := acc.Add(entry.Output.Val)
		if next <= hi {
			used[entry.Input] = struct{}{}
			acc = next
		}
	}
}
