// Package kstat provides the streaming collaborator the one-sided KS
// threshold kernel (package onesidedks) assumes but deliberately does
// not implement: an accumulator of one or two empirical CDFs and the
// running supremum difference between them, plus a thin orchestrator that
// wires an accumulator to the threshold kernel to realize the full
// reject-on-first-crossing sequential test.
//
// None of this carries the kernel's directed-rounding correctness
// guarantees; it exists so the library is demonstrably usable end to
// end, not as part of the threshold math itself.
package kstat

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
)

// Accumulator maintains either two running empirical CDFs from paired
// observations (the two-sample case, via Observe) or one empirical CDF
// against a fixed reference distribution (the one-sample case, via
// ObserveOne), and exposes the current KS statistic D_n = sup|F1 - F2|.
// This is the "trivial collaborator" spec.md treats as an interface
// contract external to the threshold kernel. An implementation only
// supports one of the two observation modes; calling the unsupported one
// returns an error rather than panicking.
type Accumulator interface {
	// Observe folds in one paired observation from each stream. Returns
	// an error if this accumulator is a one-sample accumulator.
	Observe(x, y float64) error
	// ObserveOne folds in one sample to be compared against a fixed
	// reference distribution. Returns an error if this accumulator is a
	// two-sample accumulator.
	ObserveOne(x float64) error
	// Statistic returns the current supremum absolute difference between
	// the accumulated empirical CDF(s).
	Statistic() float64
	// Count returns the number of observations folded in so far.
	Count() uint64
}

// HistogramAccumulator is a reference Accumulator over a fixed set of
// bucket boundaries: O(1) memory and O(log buckets) per observation,
// trading exactness for the bounded footprint spec.md's "maintaining
// two running histograms" language calls for.
type HistogramAccumulator struct {
	boundaries []float64
	countsX    []uint64
	countsY    []uint64
	n          uint64
}

// NewHistogramAccumulator builds an accumulator with the given sorted,
// strictly increasing bucket boundaries. len(boundaries)+1 buckets are
// maintained: (-Inf, b0], (b0, b1], ..., (bk, +Inf).
func NewHistogramAccumulator(boundaries []float64) (*HistogramAccumulator, error) {
	if len(boundaries) == 0 {
		return nil, fmt.Errorf("kstat: need at least one boundary")
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] <= boundaries[i-1] {
			return nil, fmt.Errorf("kstat: boundaries must be strictly increasing, got %v <= %v at index %d", boundaries[i], boundaries[i-1], i)
		}
	}
	return &HistogramAccumulator{
		boundaries: boundaries,
		countsX:    make([]uint64, len(boundaries)+1),
		countsY:    make([]uint64, len(boundaries)+1),
	}, nil
}

func (h *HistogramAccumulator) bucket(v float64) int {
	return sort.SearchFloat64s(h.boundaries, v)
}

// Observe folds in one paired observation.
func (h *HistogramAccumulator) Observe(x, y float64) error {
	h.countsX[h.bucket(x)]++
	h.countsY[h.bucket(y)]++
	h.n++
	return nil
}

// ObserveOne always fails: HistogramAccumulator is a two-sample
// accumulator and has no fixed reference distribution to compare against.
func (h *HistogramAccumulator) ObserveOne(x float64) error {
	return fmt.Errorf("kstat: ObserveOne called on a two-sample accumulator")
}

// Count returns the number of paired observations folded in so far.
func (h *HistogramAccumulator) Count() uint64 {
	return h.n
}

// Statistic returns sup_i |cumX(i)/n - cumY(i)/n| over all bucket
// boundaries, the running two-sample KS statistic.
func (h *HistogramAccumulator) Statistic() float64 {
	if h.n == 0 {
		return 0
	}

	cumX := make([]float64, len(h.countsX))
	cumY := make([]float64, len(h.countsY))
	for i, c := range h.countsX {
		cumX[i] = float64(c)
	}
	for i, c := range h.countsY {
		cumY[i] = float64(c)
	}
	floats.CumSum(cumX, cumX)
	floats.CumSum(cumY, cumY)

	n := float64(h.n)
	diffs := make([]float64, len(cumX))
	for i := range diffs {
		diffs[i] = (cumX[i] - cumY[i]) / n
	}

	maxAbs := 0.0
	for _, d := range diffs {
		if a := absFloat(d); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// FixedCDFAccumulator is the one-sample counterpart to
// HistogramAccumulator: it accumulates a single empirical CDF over a
// fixed set of bucket boundaries and compares it, at each boundary,
// against a supplied reference CDF, realizing the one-sample half of the
// Accumulator contract (testing a stream against a fixed distribution
// rather than against a second stream).
type FixedCDFAccumulator struct {
	boundaries []float64
	refCDF     func(float64) float64
	counts     []uint64
	n          uint64
}

// NewFixedCDFAccumulator builds a one-sample accumulator over the given
// sorted, strictly increasing bucket boundaries, comparing against the
// reference cumulative distribution function refCDF.
func NewFixedCDFAccumulator(boundaries []float64, refCDF func(float64) float64) (*FixedCDFAccumulator, error) {
	if len(boundaries) == 0 {
		return nil, fmt.Errorf("kstat: need at least one boundary")
	}
	for i := 1; i < len(boundaries); i++ {
		if boundaries[i] <= boundaries[i-1] {
			return nil, fmt.Errorf("kstat: boundaries must be strictly increasing, got %v <= %v at index %d", boundaries[i], boundaries[i-1], i)
		}
	}
	if refCDF == nil {
		return nil, fmt.Errorf("kstat: refCDF must not be nil")
	}
	return &FixedCDFAccumulator{
		boundaries: boundaries,
		refCDF:     refCDF,
		counts:     make([]uint64, len(boundaries)+1),
	}, nil
}

func (f *FixedCDFAccumulator) bucket(v float64) int {
	return sort.SearchFloat64s(f.boundaries, v)
}

// Observe always fails: FixedCDFAccumulator is a one-sample accumulator
// and has no second stream to pair observations against.
func (f *FixedCDFAccumulator) Observe(x, y float64) error {
	return fmt.Errorf("kstat: Observe called on a one-sample accumulator")
}

// ObserveOne folds in one sample from the stream under test.
func (f *FixedCDFAccumulator) ObserveOne(x float64) error {
	f.counts[f.bucket(x)]++
	f.n++
	return nil
}

// Count returns the number of samples folded in so far.
func (f *FixedCDFAccumulator) Count() uint64 {
	return f.n
}

// Statistic returns sup_i |F_n(b_i) - F_0(b_i)| over all bucket
// boundaries plus +Inf, the running one-sample KS statistic.
func (f *FixedCDFAccumulator) Statistic() float64 {
	if f.n == 0 {
		return 0
	}

	cum := make([]float64, len(f.counts))
	for i, c := range f.counts {
		cum[i] = float64(c)
	}
	floats.CumSum(cum, cum)

	n := float64(f.n)
	maxAbs := 0.0
	for i, c := range cum {
		boundary := math.Inf(1)
		if i < len(f.boundaries) {
			boundary = f.boundaries[i]
		}
		if a := absFloat(c/n - f.refCDF(boundary)); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

// SuggestBoundaries derives bucket boundaries for a HistogramAccumulator
// from a warm-up sample, by quantile-binning it into buckets roughly
// equal-occupancy buckets via stats.Percentile.
func SuggestBoundaries(warmup []float64, buckets int) ([]float64, error) {
	if buckets < 1 {
		return nil, fmt.Errorf("kstat: buckets must be >= 1, got %d", buckets)
	}
	if len(warmup) < buckets {
		return nil, fmt.Errorf("kstat: need at least %d warm-up samples, got %d", buckets, len(warmup))
	}

	boundaries := make([]float64, 0, buckets-1)
	for i := 1; i < buckets; i++ {
		p, err := stats.Percentile(warmup, 100*float64(i)/float64(buckets))
		if err != nil {
			return nil, fmt.Errorf("kstat: computing percentile %d/%d: %w", i, buckets, err)
		}
		if len(boundaries) > 0 && p <= boundaries[len(boundaries)-1] {
			// Degenerate (heavily repeated) data can produce
			// non-increasing quantiles; nudge forward to keep the
			// boundary slice strictly increasing.
			p = nextAfter(boundaries[len(boundaries)-1])
		}
		boundaries = append(boundaries, p)
	}
	return boundaries, nil
}

func nextAfter(x float64) float64 {
	// A small, fixed nudge is enough here: boundaries only need to be
	// strictly increasing, not ULP-adjacent.
	if x == 0 {
		return 1e-12
	}
	return x + absFloat(x)*1e-9
}
