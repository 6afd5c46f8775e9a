package kernel

import (
	"math"
	"testing"
)

func TestThresholdUpMatchesClosedForm(t *testing.T) {
	// eps = 0.05, min_count = 6: ln b = ln 4 (the paper's golden case,
	// spec.md property P1).
	lnB := math.Log(4)
	for n := 6; n < 100; n++ {
		x := float64(n)
		want := math.Sqrt((x+1)*(2*math.Log(x)+lnB)) / x
		got := ThresholdUp(x, lnB)
		if math.Abs(got-want) > 1e-15 {
			t.Errorf("ThresholdUp(%v, ln4) = %v, want %v (diff %g)", x, got, want, got-want)
		}
	}
}

func TestThresholdUpIsUpperBound(t *testing.T) {
	lnB := math.Log(4)
	for n := 6; n < 1000; n += 7 {
		x := float64(n)
		exact := math.Sqrt((x+1)*(2*math.Log(x)+lnB)) / x
		if ThresholdUp(x, lnB) < exact {
			t.Errorf("ThresholdUp(%v) = %v < exact %v", x, ThresholdUp(x, lnB), exact)
		}
		if ThresholdDown(x, lnB) > exact {
			t.Errorf("ThresholdDown(%v) = %v > exact %v", x, ThresholdDown(x, lnB), exact)
		}
	}
}

func TestThresholdMonotoneDecreasingInX(t *testing.T) {
	lnB := math.Log(4)
	prev := ThresholdUp(6, lnB)
	for n := 7; n < 2000; n++ {
		cur := ThresholdUp(float64(n), lnB)
		if cur > prev {
			t.Errorf("ThresholdUp not non-increasing at n=%d: prev=%v cur=%v", n, prev, cur)
		}
		prev = cur
	}
}

func TestLnBUpDownBracketExact(t *testing.T) {
	logEps := math.Log(0.05)
	minCount := uint64(6)
	exact := -math.Log(float64(minCount)-1.0) - logEps
	if LnBUp(minCount, logEps) < exact {
		t.Errorf("LnBUp = %v < exact %v", LnBUp(minCount, logEps), exact)
	}
	if LnBDown(minCount, logEps) > exact {
		t.Errorf("LnBDown = %v > exact %v", LnBDown(minCount, logEps), exact)
	}
}
