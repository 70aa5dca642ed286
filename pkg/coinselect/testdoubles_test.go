package coinselect

import (
	"fmt"

	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

// fakeCaps is a deterministic coinmodel.Capabilities[string] double: change
// addresses are "change-1", "change-2", ... in call order, and the hash is
// a fixed counter-derived value so tests can assert on it if they need to.
type fakeCaps struct {
	treasury  string
	nextIndex int
	hashes    int
}

func newFakeCaps() *fakeCaps {
	return &fakeCaps{treasury: "<treasury>"}
}

func (c *fakeCaps) GenerateChangeAddress() string {
	c.nextIndex++
	return fmt.Sprintf("change-%d", c.nextIndex)
}

func (c *fakeCaps) GenerateFreshHash() coinmodel.Hash {
	c.hashes++
	var h coinmodel.Hash
	h[0] = byte(c.hashes)
	return h
}

func (c *fakeCaps) TreasuryAddress() string { return c.treasury }

// fixedSequenceRand is a coinmodel.RandSource double that returns a fixed
// sequence of draws, one per call, clamped into the requested [lo, hi]
// range by taking the next value modulo the range width. Scenario E6 uses
// this to force i2 to be the first draw from a 2-element UTXO.
type fixedSequenceRand struct {
	seq []int64
	pos int
}

func newFixedSequenceRand(seq ...int64) *fixedSequenceRand {
	return &fixedSequenceRand{seq: seq}
}

func (r *fixedSequenceRand) RandInt(lo, hi int64) int64 {
	if r.pos >= len(r.seq) {
		panic("fixedSequenceRand: sequence exhausted")
	}
	v := r.seq[r.pos]
	r.pos++
	span := hi - lo + 1
	return lo + (v % span)
}
