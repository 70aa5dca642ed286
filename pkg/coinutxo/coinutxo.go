// Package coinutxo implements the UTXO container: a finite mapping from
// input handle to the output it carries, with the domain/balance/filter
// operations the policy runner and the three selection policies need.
// Every operation is total and returns a new value rather than mutating in
// place, except where the policies explicitly want a working copy to drain
// (Delete, Insert) — those are documented per-method.
package coinutxo

import (
	"sort"

	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

// Entry pairs an input with the output it carries, used by ToList and by
// the policies that need to range over the set in a fixed order.
type Entry[A comparable] struct {
	Input  coinmodel.Input
	Output coinmodel.Output[A]
}

// UTxO is a mutable handle around a map from Input to Output[A]. Selection
// policies drain inputs from a working UTxO as they build a transaction;
// InputPolicyState owns the one live copy for the duration of a run: the
// core takes the initial UTXO by value and mutates a clone threaded
// through its state, leaving the caller's original untouched.
type UTxO[A comparable] struct {
	entries map[coinmodel.Input]coinmodel.Output[A]
}

// Empty returns a UTxO with no entries.
func Empty[A comparable]() *UTxO[A] {
	return &UTxO[A]{entries: make(map[coinmodel.Input]coinmodel.Output[A])}
}

// FromMap builds a UTxO from a plain map, copying it so the caller's map
// stays independent of the result.
func FromMap[A comparable](m map[coinmodel.Input]coinmodel.Output[A]) *UTxO[A] {
	u := Empty[A]()
	for i, o := range m {
		u.entries[i] = o
	}
	return u
}

// Insert adds or overwrites the output at i.
func (u *UTxO[A]) Insert(i coinmodel.Input, o coinmodel.Output[A]) {
	u.entries[i] = o
}

// Delete removes i, if present. A no-op if i is absent.
func (u *UTxO[A]) Delete(i coinmodel.Input) {
	delete(u.entries, i)
}

// RestrictTo returns a new UTxO containing only the entries whose input is
// in set.
func (u *UTxO[A]) RestrictTo(set map[coinmodel.Input]struct{}) *UTxO[A] {
	restricted := Empty[A]()
	for i := range set {
		if o, ok := u.entries[i]; ok {
			restricted.entries[i] = o
		}
	}
	return restricted
}

// RemoveInputs returns a new UTxO with every input in set removed.
func (u *UTxO[A]) RemoveInputs(set map[coinmodel.Input]struct{}) *UTxO[A] {
	remaining := Empty[A]()
	for i, o := range u.entries {
		if _, excluded := set[i]; !excluded {
			remaining.entries[i] = o
		}
	}
	return remaining
}

// Union returns a new UTxO holding every entry of u and other. Entries in
// other take precedence on input collision.
func (u *UTxO[A]) Union(other *UTxO[A]) *UTxO[A] {
	merged := Empty[A]()
	for i, o := range u.entries {
		merged.entries[i] = o
	}
	for i, o := range other.entries {
		merged.entries[i] = o
	}
	return merged
}

// Domain returns the set of inputs present.
func (u *UTxO[A]) Domain() map[coinmodel.Input]struct{} {
	domain := make(map[coinmodel.Input]struct{}, len(u.entries))
	for i := range u.entries {
		domain[i] = struct{}{}
	}
	return domain
}

// Balance returns the sum of every output's value.
func (u *UTxO[A]) Balance() coinmodel.Value {
	var total coinmodel.Value
	for _, o := range u.entries {
		total = total.Add(o.Val)
	}
	return total
}

// Size returns the number of entries.
func (u *UTxO[A]) Size() int {
	return len(u.entries)
}

// Get returns the output at i, and whether i is present.
func (u *UTxO[A]) Get(i coinmodel.Input) (coinmodel.Output[A], bool) {
	o, ok := u.entries[i]
	return o, ok
}

// ToMap returns a copy of the underlying map.
func (u *UTxO[A]) ToMap() map[coinmodel.Input]coinmodel.Output[A] {
	m := make(map[coinmodel.Input]coinmodel.Output[A], len(u.entries))
	for i, o := range u.entries {
		m[i] = o
	}
	return m
}

// ToList returns every entry sorted by input, giving policies a
// deterministic iteration order (map ranges are not, in Go).
func (u *UTxO[A]) ToList() []Entry[A] {
	list := make([]Entry[A], 0, len(u.entries))
	for i, o := range u.entries {
		list = append(list, Entry[A]{Input: i, Output: o})
	}
	sort.Slice(list, func(a, b int) bool {
		return coinmodel.CompareInputs(list[a].Input, list[b].Input) < 0
	})
	return list
}

// Clone returns an independent copy.
func (u *UTxO[A]) Clone() *UTxO[A] {
	return FromMap(u.entries)
}
