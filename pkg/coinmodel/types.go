// Package coinmodel holds the value types shared by the coin-selection
// core: amounts, input handles, outputs, expense regulation, and the
// finalized transaction shape. Nothing in this package mutates; every
// operation returns a new value.
package coinmodel

import (
	"math"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Value is a non-negative coin amount. 64 bits is wide enough that a
// realistic wallet balance cannot overflow a single transaction's worth of
// additions.
type Value uint64

// MaxValue is the largest representable Value, used as the open upper bound
// of the random policy's fallback acceptance range.
const MaxValue Value = math.MaxUint64

// Add returns a+b. Callers that control both operands (the core does, since
// every addend traces back to UTXO balances or fee estimates) are expected
// not to overflow; this is asserted rather than silently wrapped.
func (v Value) Add(o Value) Value {
	sum := v + o
	if sum < v {
		panic("coinmodel: value overflow")
	}
	return sum
}

// Input identifies a previously produced output by (transaction hash,
// output index) — the same shape as a Bitcoin outpoint, reused directly
// rather than reinvented.
type Input = wire.OutPoint

// Hash is an opaque transaction identifier.
type Hash = chainhash.Hash

// NewInput builds an Input from a transaction hash and output index.
func NewInput(h Hash, index uint32) Input {
	return Input{Hash: h, Index: index}
}

// CompareInputs gives Input a total order: by hash bytes, then by index.
// Required so selection results (and UTXO iteration) are deterministic.
func CompareInputs(a, b Input) int {
	if c := compareBytes(a.Hash[:], b.Hash[:]); c != 0 {
		return c
	}
	switch {
	case a.Index < b.Index:
		return -1
	case a.Index > b.Index:
		return 1
	default:
		return 0
	}
}

func compareBytes(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Output is an immutable (address, value) pair. A is the wallet's address
// type; the core never inspects it beyond equality.
type Output[A comparable] struct {
	Addr A
	Val  Value
}

// ExpenseRegulation tags how the fee for one goal is apportioned between
// sender and receiver, as a ratio expressed in basis points (0 = sender
// pays everything, 10000 = receiver absorbs its whole epsilon share).
// Basis points avoid the floating-point drift a float64 ratio would
// introduce into the ceiling division in package feedist.
type ExpenseRegulation struct {
	bps uint32
}

// RegulationBpsMax is 1.0 expressed in basis points; the largest ratio the
// algorithm supports. A wider value is a programmer error, not a runtime
// failure.
const RegulationBpsMax uint32 = 10000

// SenderPaysFees is the regulation under which the sender's side absorbs
// the whole epsilon share: the goal output grows by epsilon rather than
// shrinking.
func SenderPaysFees() ExpenseRegulation { return ExpenseRegulation{bps: 0} }

// ReceiverPaysFees is the regulation under which the receiver absorbs its
// entire epsilon share.
func ReceiverPaysFees() ExpenseRegulation { return ExpenseRegulation{bps: RegulationBpsMax} }

// NewExpenseRegulation builds a partial regulation ratio expressed in basis
// points out of RegulationBpsMax. It panics for bps > RegulationBpsMax: an
// out-of-range ratio is a fatal programmer error, never a recoverable one.
func NewExpenseRegulation(bps uint32) ExpenseRegulation {
	if bps > RegulationBpsMax {
		panic("coinmodel: expense regulation ratio exceeds 1.0")
	}
	return ExpenseRegulation{bps: bps}
}

// Bps returns the regulation ratio as basis points out of RegulationBpsMax.
func (r ExpenseRegulation) Bps() uint32 { return r.bps }

// IsSenderPays reports whether this regulation leaves the whole epsilon
// share on the sender's side.
func (r ExpenseRegulation) IsSenderPays() bool { return r.bps == 0 }

// Goal is a desired payment: an output plus who is expected to bear its
// share of the transaction fee.
type Goal[A comparable] struct {
	Regulation ExpenseRegulation
	Output     Output[A]
}

// Transaction is the finalized, unsigned result of a selection run. Fresh
// is a caller-assigned disambiguation counter; the core never inspects it
// and leaves it at zero unless the caller bumps it between calls that
// reuse the same fee estimator and capabilities.
type Transaction[A comparable] struct {
	Fresh   uint64
	Inputs  map[Input]struct{}
	Outputs []Output[A]
	Fee     Value
	Hash    Hash
	Extra   [][]byte
}

// InputSet is a convenience constructor for a set of inputs, used by tests
// and callers building Transaction.Inputs by hand.
func InputSet(inputs ...Input) map[Input]struct{} {
	set := make(map[Input]struct{}, len(inputs))
	for _, i := range inputs {
		set[i] = struct{}{}
	}
	return set
}
