// Package capimpl provides reference implementations of
// coinmodel.Capabilities and coinmodel.RandSource: the non-core pieces a
// real wallet must supply. They lean on google/uuid for fresh identifiers
// and chainhash for transaction hashing, the same primitives used
// elsewhere in this repo.
package capimpl

import (
	"crypto/rand"
	"log"
	mathrand "math/rand/v2"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/google/uuid"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

// StringAddressCapabilities is a reference Capabilities implementation over
// plain string addresses: change addresses are fresh UUIDs, the treasury
// address is a fixed sentinel string no real wallet address can collide
// with, and fresh hashes are derived from 32 bytes of crypto/rand entropy.
type StringAddressCapabilities struct {
	// Treasury is the sentinel treasury address. Defaults to
	// DefaultTreasuryAddress if left zero-valued.
	Treasury string
	// Verbose logs each generated address/hash, tracing side-effecting
	// operations the way the rest of this repo's drivers do.
	Verbose bool
}

// DefaultTreasuryAddress is used when StringAddressCapabilities.Treasury is
// left unset. It is deliberately not a syntactically valid address so it
// can never collide with a real one.
const DefaultTreasuryAddress = "<treasury>"

// NewStringAddressCapabilities returns a StringAddressCapabilities using
// DefaultTreasuryAddress.
func NewStringAddressCapabilities() *StringAddressCapabilities {
	return &StringAddressCapabilities{Treasury: DefaultTreasuryAddress}
}

func (c *StringAddressCapabilities) GenerateChangeAddress() string {
	addr := uuid.New().String()
	if c.Verbose {
		log.Printf("capimpl: generated change address %s", addr)
	}
	return addr
}

func (c *StringAddressCapabilities) GenerateFreshHash() coinmodel.Hash {
	var entropy [chainhash.HashSize]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		panic("capimpl: failed to read entropy for fresh hash: " + err.Error())
	}
	hash := chainhash.HashH(entropy[:])
	if c.Verbose {
		log.Printf("capimpl: generated fresh transaction hash %s", hash)
	}
	return hash
}

func (c *StringAddressCapabilities) TreasuryAddress() string {
	if c.Treasury == "" {
		return DefaultTreasuryAddress
	}
	return c.Treasury
}

// MathRandSource implements coinmodel.RandSource over a math/rand/v2 PCG
// generator. Seed it explicitly (NewSeededMathRandSource) for
// reproducible test runs; the zero value draws from math/rand/v2's
// default, runtime-seeded source.
type MathRandSource struct {
	rng *mathrand.Rand
}

// NewMathRandSource returns a source seeded from the runtime's default,
// non-reproducible entropy.
func NewMathRandSource() *MathRandSource {
	return &MathRandSource{rng: mathrand.New(mathrand.NewPCG(mathrand.Uint64(), mathrand.Uint64()))}
}

// NewSeededMathRandSource returns a source that reproduces the same draw
// sequence for a given seed pair — used by deterministic tests.
func NewSeededMathRandSource(seed1, seed2 uint64) *MathRandSource {
	return &MathRandSource{rng: mathrand.New(mathrand.NewPCG(seed1, seed2))}
}

// RandInt returns a uniform random integer in [lo, hi], inclusive.
func (s *MathRandSource) RandInt(lo, hi int64) int64 {
	if hi < lo {
		panic("capimpl: RandInt called with hi < lo")
	}
	span := hi - lo + 1
	if s.rng == nil {
		return lo + mathrand.Int64N(span)
	}
	return lo + s.rng.Int64N(span)
}
