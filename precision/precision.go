// Package precision provides the arithmetic needed to compare a coarse
// floating point implementation of a function against a more precise
// reference.
//
// The coarse type is one of Go's native floating point types. The precise
// type P is anything a Field[P] can describe: float64 itself (when the
// coarse type is float32) or an arbitrary precision *big.Float.
package precision

import (
	"math"

	"golang.org/x/exp/rand"
)

// Coarse is the set of types a candidate implementation may work in.
type Coarse interface {
	float32 | float64
}

// Field describes the reference precision P. A Field must dominate the
// coarse type it is paired with: every value of the coarse type is exactly
// representable in P.
type Field[P any] interface {
	// FromFloat64 widens x to P. It must be exact.
	FromFloat64(x float64) P

	// Float64 and Float32 narrow x to the nearest float64 / float32.
	Float64(x P) float64
	Float32(x P) float32

	// Uniform draws a value uniformly distributed in [a,b] using the
	// full precision of P.
	Uniform(r *rand.Rand, a, b float64) P

	Sub(x, y P) P
	Abs(x P) P
	Cmp(x, y P) int
	Sign(x P) int

	// Bits reports the precision of P in mantissa bits.
	Bits() uint
}

// bits returns the mantissa bits of C.
func bits[C Coarse]() uint {
	var z C
	if _, ok := any(z).(float32); ok {
		return 24
	}
	return 53
}

// Dominates reports whether f is at least as precise as C.
func Dominates[C Coarse, P any](f Field[P]) bool {
	return f.Bits() >= bits[C]()
}

// Narrow rounds x to the nearest value of type C.
func Narrow[C Coarse, P any](f Field[P], x P) C {
	var z C
	if _, ok := any(z).(float32); ok {
		return C(f.Float32(x))
	}
	return C(f.Float64(x))
}

// ULP returns the distance from |x| to the next larger magnitude
// representable in C.
func ULP[C Coarse](x C) float64 {
	var z C
	if _, ok := any(z).(float32); ok {
		a := float32(math.Abs(float64(x)))
		return float64(math.Nextafter32(a, float32(math.Inf(1))) - a)
	}
	a := math.Abs(float64(x))
	return math.Nextafter(a, math.Inf(1)) - a
}

// Error returns the signed error of lo relative to hi in units of the last
// place of C: (lo - hi) / ULP(|hi| rounded to C). Positive values mean lo
// overestimates hi. The result is NaN if lo is NaN.
func Error[C Coarse, P any](f Field[P], lo C, hi P) float64 {
	l := float64(lo)
	switch {
	case math.IsNaN(l):
		return math.NaN()
	case math.IsInf(l, 0):
		return l
	}
	d := f.Float64(f.Sub(f.FromFloat64(l), hi))
	if d == 0 {
		return 0
	}
	return d / ULP(Narrow[C](f, f.Abs(hi)))
}
