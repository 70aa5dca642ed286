// Package feeest provides a reference coinmodel.FeeEstimator: a
// byte-size-based sat/vB cost function. Fee estimation is an external
// collaborator the core is merely parameterized by, so this is not part
// of the core — it exists so the demo driver has a realistic, non-constant
// cost function to exercise rather than only a constant-zero estimator.
// The policy tests use their own constant estimators.
//
// The per-input/per-output byte accounting below is grounded on
// chanfunding.CoinSelect's size-estimate-then-fee loop: it counts a fixed
// input size, a fixed output size, and a fixed overhead, rather than
// reaching for a package this module does not depend on.
package feeest

import (
	"log"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
)

// Byte-size constants for a single-signature P2WPKH-style input/output,
// close enough for a reference estimator that is never meant to be
// consensus-accurate.
const (
	txOverheadVBytes = 11
	p2wpkhInVBytes   = 68
	p2wpkhOutVBytes  = 31
)

// VByteRate returns a FeeEstimator charging satsPerVByte for the estimated
// virtual size of a transaction with numInputs inputs and len(outputValues)
// outputs. Verbose logging, when enabled, mirrors the plain log.Printf
// tracing used throughout this repo's reference components.
func VByteRate(satsPerVByte coinmodel.Value, verbose bool) coinmodel.FeeEstimator {
	return func(numInputs int, outputValues []coinmodel.Value) coinmodel.Value {
		vsize := coinmodel.Value(txOverheadVBytes) +
			coinmodel.Value(numInputs)*p2wpkhInVBytes +
			coinmodel.Value(len(outputValues))*p2wpkhOutVBytes

		fee := vsize * satsPerVByte
		if verbose {
			log.Printf("feeest: %d inputs, %d outputs -> %d vB @ %s/vB = %s",
				numInputs, len(outputValues), vsize,
				btcutil.Amount(satsPerVByte), btcutil.Amount(fee))
		}
		return fee
	}
}

// Constant returns a FeeEstimator that always charges fee, regardless of
// transaction shape.
func Constant(fee coinmodel.Value) coinmodel.FeeEstimator {
	return func(int, []coinmodel.Value) coinmodel.Value {
		return fee
	}
}
