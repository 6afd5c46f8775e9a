package onesidedks

import (
	"math"

	"onesidedks/internal/kernel"
	"onesidedks/internal/rounding"
	"onesidedks/internal/validity"
)

// ExpectedIter upper-bounds the expected number of iterations (paired
// observations) to reject the null hypothesis if the true distance from
// it is delta, realizing E[N] <= g(delta - minCount/g(delta)) with
// directed rounding throughout so the result remains a conservative
// upper bound.
//
// Sentinels: 0 if logEps >= 0 (the threshold is already -Inf, so
// rejection happens immediately); math.MaxFloat64 if delta <= 0 or
// minCount == 0 (degenerate alternative); a negative value if minCount
// is not valid for logEps.
//
// minCount must otherwise be valid for logEps (see MinCountValid), and
// logEps must be negative.
func ExpectedIter(minCount uint64, logEps, delta float64) float64 {
	if logEps >= 0 {
		return 0
	}
	if minCount == 0 || delta <= 0 {
		return math.MaxFloat64
	}
	if !validity.MinCountValid(minCount, logEps) {
		return -1
	}

	// The closed-form bound only holds below the threshold at n =
	// minCount, so clamp delta well under it.
	firstThreshold := PairThreshold(minCount, minCount, logEps)
	if delta > firstThreshold/2 {
		delta = rounding.Prev(firstThreshold / 2)
	}

	lnBUp := kernel.LnBUp(minCount, logEps)
	lnBDown := kernel.LnBDown(minCount, logEps)

	gDelta := validity.InvertThresholdDown(delta, minCount, lnBDown, kernel.ThresholdDown)
	inner := delta - rounding.Next(float64(minCount)/gDelta)
	return validity.InvertThresholdUp(rounding.Prev(inner), minCount, lnBUp, kernel.ThresholdUp)
}
