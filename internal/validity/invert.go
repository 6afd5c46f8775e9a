package validity

import (
	"math"

	"onesidedks/internal/rounding"
)

// thresholdFunc is either kernel.ThresholdUp or kernel.ThresholdDown,
// both monotonically decreasing in x.
type thresholdFunc func(x, lnB float64) float64

// invertThreshold finds where the monotonically decreasing threshold
// function crosses target, bisecting on the float bit-key so the
// midpoint computation is linear integer arithmetic. If up is true, the
// search returns the upper bracket (an over-approximation of the exact
// crossing point); otherwise it returns the lower bracket (an
// under-approximation).
func invertThreshold(minCount uint64, target float64, up bool, threshold thresholdFunc, lnB float64) float64 {
	low := float64(minCount)
	if threshold(low, lnB) <= target {
		return low
	}

	high := math.MaxFloat64
	if threshold(high, lnB) >= target {
		return high
	}

	// Invariant: threshold(low, lnB) > target, threshold(high, lnB) < target.
	for i := 0; i < 64; i++ {
		pivot := rounding.Midpoint(low, high)
		fx := threshold(pivot, lnB)
		if fx == target {
			return pivot
		}
		if fx < target {
			high = pivot
		} else {
			low = pivot
		}
	}

	if up {
		return high
	}
	return low
}

// InvertThresholdUp over-approximates g(target), the smallest x at which
// thresholdUp (expected to be kernel.ThresholdUp) drops to target.
func InvertThresholdUp(target float64, minCount uint64, lnBUp float64, thresholdUp thresholdFunc) float64 {
	return invertThreshold(minCount, target, true, thresholdUp, lnBUp)
}

// InvertThresholdDown under-approximates g(target) using thresholdDown
// (expected to be kernel.ThresholdDown).
func InvertThresholdDown(target float64, minCount uint64, lnBDown float64, thresholdDown thresholdFunc) float64 {
	return invertThreshold(minCount, target, false, thresholdDown, lnBDown)
}
