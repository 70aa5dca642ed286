package coinmodel

// FeeEstimator is a pure cost function: given the number of inputs and the
// list of output values a transaction would carry, it returns the fee the
// host's fee market demands. The core never estimates fees itself — it is
// parameterized by this function.
type FeeEstimator func(numInputs int, outputValues []Value) Value

// Capabilities is the small set of host-provided, side-effecting
// operations the core needs but does not implement itself: fresh change
// addresses, a fresh transaction hash, and the sender's treasury address.
// Modeled as an interface (rather than threaded function arguments) so a
// single value can be passed alongside the policy state and swapped for a
// deterministic test double.
type Capabilities[A comparable] interface {
	// GenerateChangeAddress returns a fresh address, distinct from any
	// previously returned one, owned by the sender.
	GenerateChangeAddress() A

	// GenerateFreshHash returns a transaction hash. Called at most once
	// per successful selection run, after all inputs/outputs are fixed.
	GenerateFreshHash() Hash

	// TreasuryAddress is a constant sentinel address used to represent a
	// virtual payment back to the sender for slack accounting; outputs
	// carrying it are filtered out of the finalized transaction.
	TreasuryAddress() A
}

// RandSource is the abstract source of uniform random integers the random
// policy and the random-element helper consume. A deterministic
// implementation (returning a fixed sequence) makes policy runs
// reproducible in tests.
type RandSource interface {
	// RandInt returns a uniform random integer in [lo, hi], inclusive.
	RandInt(lo, hi int64) int64
}
