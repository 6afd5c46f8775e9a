package onesidedks

import (
	"math"

	"onesidedks/internal/kernel"
	"onesidedks/internal/validity"
)

// PairThreshold returns the threshold t such that, if n pairs of
// observations have been accumulated (minCount of them before any test
// was performed), and the supremum difference between the two streams'
// empirical CDFs exceeds t, the null hypothesis may be rejected with a
// lifetime false-positive probability of at most exp(logEps).
//
// logEps must be negative. If minCount is not valid for logEps (see
// MinCountValid), it is silently replaced by FindMinCount(logEps): this
// function always prefers correctness over argument fidelity. Callers
// that have already validated minCount and want to skip that check
// should use PairThresholdFast.
//
// DistributionThreshold is identical in every respect except the
// constant the caller is expected to have added to logEps before
// calling; the kernel itself does not distinguish the two tests.
func PairThreshold(n, minCount uint64, logEps float64) float64 {
	if !validity.MinCountValid(minCount, logEps) {
		minCount = validity.FindMinCount(logEps)
	}
	return PairThresholdFast(n, minCount, logEps)
}

// PairThresholdFast is PairThreshold without the minCount validity
// substitution: the caller is responsible for passing a minCount that is
// valid for logEps (see MinCountValid).
func PairThresholdFast(n, minCount uint64, logEps float64) float64 {
	if n < minCount {
		return math.Inf(1)
	}
	if logEps >= 0 {
		return math.Inf(-1)
	}
	lnBUp := kernel.LnBUp(minCount, logEps)
	return kernel.ThresholdUp(float64(n), lnBUp)
}

// DistributionThreshold is PairThreshold for the one-sample tests
// (fixed distribution or parametric family): the kernel math is
// identical, the only difference is the constant the caller has added
// to logEps (FixedLE, FixedEQ, or Class).
func DistributionThreshold(n, minCount uint64, logEps float64) float64 {
	return PairThreshold(n, minCount, logEps)
}

// DistributionThresholdFast is DistributionThreshold without the
// minCount validity substitution.
func DistributionThresholdFast(n, minCount uint64, logEps float64) float64 {
	return PairThresholdFast(n, minCount, logEps)
}

// MinCountValid reports whether minCount achieves a log error rate of at
// most logEps.
func MinCountValid(minCount uint64, logEps float64) bool {
	return validity.MinCountValid(minCount, logEps)
}

// FindMinCount returns the smallest minCount valid for logEps, which
// must be negative.
func FindMinCount(logEps float64) uint64 {
	return validity.FindMinCount(logEps)
}
