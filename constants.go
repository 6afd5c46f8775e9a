// Package onesidedks computes thresholds for one-sided confidence
// sequences on the Kolmogorov-Smirnov statistic, for anytime-valid
// sequential hypothesis tests on streaming empirical distributions.
//
// Every function here is a pure, allocation-free function of its scalar
// arguments; none retains state across calls and all are safe to call
// concurrently from any number of goroutines. The threshold formula it
// evaluates is documented in package internal/kernel.
package onesidedks

import "math"

// Variant constants: additive log-probability corrections a caller adds
// to ln(eps) before calling a threshold function, letting one formula
// serve five hypothesis tests. Each is a Bonferroni-style correction,
// rounded away from zero so it never understates the true correction.
// CheckConstants pins the bit pattern of each against expectedBits so a
// miscompiled build (e.g. under aggressive floating-point flags) is
// detectable at startup.
var (
	// LE is for the two-sample, one-sided "first stream is
	// stochastically <= second" test (pair-le). It is the base case:
	// no adjustment to log_eps.
	LE = 0.0

	// EQ is for the two-sample, two-sided "distributions identical"
	// test (pair-eq): -ln 2, rounded away from zero.
	EQ = -0.6931471805599454

	// FixedLE is for the one-sample "<=" test against a specific
	// distribution: -ln(2*sqrt(2)), rounded away from zero.
	FixedLE = -1.039720770839918

	// FixedEQ is for the one-sample equality test against a specific
	// distribution: -ln(4*sqrt(2)), rounded away from zero.
	FixedEQ = -1.7328679513998635

	// Class is for the one-sample equality test against a minimizing
	// member of a parametric family (Darling & Robbins): same value as
	// FixedEQ.
	Class = -1.7328679513998635
)

// expectedBits holds the bit-exact sign-magnitude pattern each constant
// above must have, in check-bit order (bit 0 = LE, bit 1 = EQ, ...),
// transcribed from the signed-magnitude int64 literals in the reference
// implementation's own constant table.
var expectedBits = func() [5]uint64 {
	raw := [5]int64{
		0,
		-4618953502541334032,
		-4616010731606004876,
		-4612889074221922196,
		-4612889074221922196,
	}
	var out [5]uint64
	for i, v := range raw {
		out[i] = uint64(v)
	}
	return out
}()

// CheckConstants returns 0 iff the in-memory bit pattern of every
// variant constant matches its hard-coded expected value. A non-zero
// return is a bitmask with one bit set per mismatched constant, in the
// order LE, EQ, FixedLE, FixedEQ, Class; it is the embedder's
// responsibility to call this at startup and treat a non-zero result as
// fatal (see cmd/ksselfcheck).
func CheckConstants() int {
	values := [5]float64{LE, EQ, FixedLE, FixedEQ, Class}
	ret := 0
	for i, v := range values {
		if math.Float64bits(v) != expectedBits[i] {
			ret |= 1 << uint(i)
		}
	}
	return ret
}
