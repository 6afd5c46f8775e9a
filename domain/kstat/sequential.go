package kstat

import "onesidedks"

// Verdict is the outcome of folding in one observation into a
// SequentialTest.
type Verdict int

const (
	// Continue means the statistic has not yet crossed the threshold;
	// keep observing.
	Continue Verdict = iota
	// Reject means the statistic exceeded the threshold: the null
	// hypothesis may be rejected with the configured false-positive
	// bound.
	Reject
)

func (v Verdict) String() string {
	if v == Reject {
		return "reject"
	}
	return "continue"
}

// SequentialTest composes an Accumulator with the onesidedks threshold
// kernel to realize the caller contract from spec.md section 6 end to
// end: observe, recompute the statistic, compare against the threshold,
// and report the first n at which it is crossed.
//
// LogEps must already have the appropriate variant constant (onesidedks.LE,
// .EQ, .FixedLE, .FixedEQ, or .Class) added by the caller; SequentialTest
// does not know which comparison it is running and performs no
// composition of its own.
type SequentialTest struct {
	Acc      Accumulator
	MinCount uint64
	LogEps   float64
}

// NewSequentialTest builds a SequentialTest over the given accumulator.
func NewSequentialTest(acc Accumulator, minCount uint64, logEps float64) *SequentialTest {
	return &SequentialTest{Acc: acc, MinCount: minCount, LogEps: logEps}
}

// Observe folds in one paired observation (the two-sample contract) and
// returns the verdict at the resulting sample count. It returns an error,
// leaving the verdict Continue, if Acc does not support two-sample
// observations.
func (s *SequentialTest) Observe(x, y float64) (Verdict, error) {
	if err := s.Acc.Observe(x, y); err != nil {
		return Continue, err
	}
	return s.verdict(onesidedks.PairThreshold), nil
}

// ObserveOne folds in one sample against a fixed reference distribution
// (the one-sample contract) and returns the verdict at the resulting
// sample count. It returns an error, leaving the verdict Continue, if Acc
// does not support one-sample observations.
func (s *SequentialTest) ObserveOne(x float64) (Verdict, error) {
	if err := s.Acc.ObserveOne(x); err != nil {
		return Continue, err
	}
	return s.verdict(onesidedks.DistributionThreshold), nil
}

func (s *SequentialTest) verdict(threshold func(n, minCount uint64, logEps float64) float64) Verdict {
	n := s.Acc.Count()
	d := s.Acc.Statistic()
	if d > threshold(n, s.MinCount, s.LogEps) {
		return Reject
	}
	return Continue
}

// Count returns the number of observations folded in so far.
func (s *SequentialTest) Count() uint64 {
	return s.Acc.Count()
}

// Statistic returns the current KS statistic from the underlying
// accumulator.
func (s *SequentialTest) Statistic() float64 {
	return s.Acc.Statistic()
}
