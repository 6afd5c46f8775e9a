package onesidedks

import (
	"math"
	"testing"
)

// TestPreWarmup is property P3: for all n < m, the threshold is +Inf.
func TestPreWarmup(t *testing.T) {
	logEps := math.Log(0.01) + EQ
	m := uint64(50)
	for n := uint64(0); n < m; n++ {
		got := PairThreshold(n, m, logEps)
		if !math.IsInf(got, 1) {
			t.Errorf("PairThreshold(%d, %d, ...) = %v, want +Inf", n, m, got)
		}
	}
}

// TestMonotoneInN is the first clause of property P2.
func TestMonotoneInN(t *testing.T) {
	logEps := math.Log(0.01)
	m := uint64(10)
	prev := PairThreshold(m, m, logEps)
	for n := m + 1; n < m+2000; n++ {
		cur := PairThreshold(n, m, logEps)
		if cur > prev {
			t.Errorf("threshold increased at n=%d: prev=%v cur=%v", n, prev, cur)
		}
		prev = cur
	}
}

// TestMonotoneInMinCount is the second clause of property P2.
func TestMonotoneInMinCount(t *testing.T) {
	logEps := math.Log(0.01)
	n := uint64(5000)
	var prev float64
	first := true
	for m := uint64(10); m < 200; m++ {
		if !MinCountValid(m, logEps) {
			continue
		}
		cur := PairThreshold(n, m, logEps)
		if !first && cur > prev {
			t.Errorf("threshold increased as min_count grew to %d: prev=%v cur=%v", m, prev, cur)
		}
		prev = cur
		first = false
	}
}

// TestMonotoneInLogEps is the third clause of property P2.
func TestMonotoneInLogEps(t *testing.T) {
	n, m := uint64(1000), uint64(10)
	le1 := math.Log(1e-10)
	le2 := math.Log(1e-3)
	if !(le1 < le2 && le2 < 0) {
		t.Fatalf("test setup invariant broken: le1=%v le2=%v", le1, le2)
	}
	t1 := PairThreshold(n, m, le1)
	t2 := PairThreshold(n, m, le2)
	if t1 < t2 {
		t.Errorf("smaller log_eps (%v) should give larger threshold: t(le1)=%v, t(le2)=%v", le1, t1, t2)
	}
}

// TestMinCountValidSearchInvariant is property P4's closing clause.
func TestMinCountValidSearchInvariant(t *testing.T) {
	for _, logEps := range []float64{math.Log(0.05), math.Log(0.5), math.Log(1e-12), math.Log(0.01) + EQ} {
		m := FindMinCount(logEps)
		if m == math.MaxUint64 {
			continue
		}
		if !MinCountValid(m, logEps) {
			t.Errorf("FindMinCount(%v) = %d is not valid", logEps, m)
		}
		if m > 2 && MinCountValid(m-1, logEps) {
			t.Errorf("FindMinCount(%v) = %d, but m-1 = %d is also valid", logEps, m, m-1)
		}
	}
}

// TestConstantsSelfCheck is property P5.
func TestConstantsSelfCheck(t *testing.T) {
	if got := CheckConstants(); got != 0 {
		t.Errorf("CheckConstants() = %d, want 0", got)
	}
}

// TestSafeFastAgreeOnValidMinCount checks that the safe and fast
// variants produce identical results whenever min_count is already
// valid, matching the spec's resolved safe/fast open question.
func TestSafeFastAgreeOnValidMinCount(t *testing.T) {
	logEps := math.Log(0.05)
	m := FindMinCount(logEps)
	for n := m; n < m+50; n++ {
		safe := PairThreshold(n, m, logEps)
		fast := PairThresholdFast(n, m, logEps)
		if safe != fast {
			t.Errorf("PairThreshold and PairThresholdFast disagree at n=%d: %v vs %v", n, safe, fast)
		}
	}
}

// TestDistributionThresholdMatchesPair checks that the distribution
// variant is the same kernel as the pair variant; only the composed
// log_eps differs, and that composition is the caller's job.
func TestDistributionThresholdMatchesPair(t *testing.T) {
	logEps := math.Log(0.01) + FixedEQ
	m := FindMinCount(logEps)
	for n := m; n < m+20; n++ {
		if got, want := DistributionThreshold(n, m, logEps), PairThreshold(n, m, logEps); got != want {
			t.Errorf("DistributionThreshold(%d) = %v, want %v (same as PairThreshold)", n, got, want)
		}
	}
}
