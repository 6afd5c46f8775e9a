// Package kernel evaluates the one-sided KS confidence-sequence
// threshold formula t(x) = sqrt((x+1)(2 ln x + ln b)) / x, in both a
// proved-upper-bound and a proved-lower-bound variant, by directing the
// rounding of every sub-expression outward or inward respectively.
package kernel

import "onesidedks/internal/rounding"

// ThresholdUp evaluates f(x)/x with every sub-expression rounded
// outward, so the result is a proved upper bound on the real t(x).
func ThresholdUp(x, lnBUp float64) float64 {
	// x + 1 is exact for x up to 2^53.
	xp1 := x + 1
	// f(x)^2 = (x+1)(2 ln x + ln b); doubling is exact.
	fx2 := rounding.Next(xp1 * rounding.Next(2*rounding.LogUp(x)+lnBUp))
	return rounding.Next(rounding.SqrtUp(fx2) / x)
}

// ThresholdDown is the dual of ThresholdUp: every sub-expression rounds
// inward, so the result is a proved lower bound on the real t(x).
func ThresholdDown(x, lnBDown float64) float64 {
	xp1 := x + 1
	fx2 := rounding.Prev(xp1 * rounding.Prev(2*rounding.LogDown(x)+lnBDown))
	return rounding.Prev(rounding.SqrtDown(fx2) / x)
}

// LnBUp computes ln(b) = -ln(eps) - ln(minCount-1), rounded up, where
// b = 1/(eps*(minCount-1)).
func LnBUp(minCount uint64, logEps float64) float64 {
	return rounding.Next(-rounding.LogDown(float64(minCount)-1.0) - logEps)
}

// LnBDown is the dual of LnBUp, rounded down.
func LnBDown(minCount uint64, logEps float64) float64 {
	return rounding.Prev(-rounding.LogUp(float64(minCount)-1.0) - logEps)
}
