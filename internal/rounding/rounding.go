package rounding

import "math"

// LibmErrorULPs bounds how far the platform's math.Log may be from the
// correctly-rounded result, in ULPs. It is a compile-time constant, not a
// runtime argument, per the library's design notes: platforms known to
// have a tighter-bounded Log could use 1 for sharper thresholds, but 4 is
// the documented, conservative default.
const LibmErrorULPs = 4

// LogUp returns a value guaranteed to be >= the exact natural log of x,
// assuming math.Log is off by at most LibmErrorULPs.
func LogUp(x float64) float64 {
	return NextK(math.Log(x), LibmErrorULPs)
}

// LogDown returns a value guaranteed to be <= the exact natural log of x,
// assuming math.Log is off by at most LibmErrorULPs.
func LogDown(x float64) float64 {
	return PrevK(math.Log(x), LibmErrorULPs)
}

// SqrtUp returns a value guaranteed to be >= the exact square root of x.
// Relies on math.Sqrt being correctly rounded.
func SqrtUp(x float64) float64 {
	return Next(math.Sqrt(x))
}

// SqrtDown returns a value guaranteed to be <= the exact square root of x.
// Relies on math.Sqrt being correctly rounded.
func SqrtDown(x float64) float64 {
	return Prev(math.Sqrt(x))
}
