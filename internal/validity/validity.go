// Package validity implements the minimum-count validity check, the
// galloping-then-bisecting search for the smallest valid min_count, and
// the threshold inversion used by the expected-iteration estimator.
package validity

import "onesidedks/internal/rounding"

// MinCountValid reports whether minCount is high enough to achieve a
// log error rate of at most logEps: the formula requires
// eps*exp(minCount-1) >= minCount+1, i.e.
// logEps + (minCount-1) >= ln(minCount+1). The check is computed with
// directed rounding so borderline values are rejected rather than
// wrongly accepted.
func MinCountValid(minCount uint64, logEps float64) bool {
	if logEps >= 0 {
		return true
	}
	if minCount <= 2 {
		return false
	}
	return rounding.Prev(logEps+float64(minCount)-1) >= rounding.LogUp(float64(minCount)+1.0)
}

// FindMinCount returns the smallest min_count valid for logEps, via a
// galloping probe followed by bisection. Returns 0 if logEps >= 0 (no
// warm-up needed), and math.MaxUint64 if no count in [2, 2^63] validates
// (effectively infinite warm-up required).
func FindMinCount(logEps float64) uint64 {
	if logEps >= 0 {
		return 0
	}

	i := 1
	for ; i < 64; i++ {
		if MinCountValid(uint64(1)<<uint(i), logEps) {
			break
		}
	}

	if i == 1 {
		return 2
	}
	if i >= 64 {
		return ^uint64(0)
	}

	// Invariant: low invalid, high valid.
	low := uint64(1) << uint(i-1)
	high := uint64(1) << uint(i)
	for low+1 < high {
		pivot := low + (high-low)/2
		if MinCountValid(pivot, logEps) {
			high = pivot
		} else {
			low = pivot
		}
	}
	return high
}
