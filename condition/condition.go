// Package condition computes relative condition numbers of function
// evaluation,
//
//	cond(f, x) = |x f'(x) / f(x)|,
//
// which bound the accuracy any implementation of f can attain in floating
// point arithmetic: an input perturbed by half an ulp moves the output by
// about cond(f, x) half ulps.
package condition

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/vdobler/fnplot/precision"
)

// Func returns the condition number of evaluating f at x.
type Func[P any] func(f func(P) P, x P) float64

// cbrtEps is the step size minimising truncation plus rounding error of a
// central difference in float64.
const cbrtEps = 6.055454452393343e-06

// FiniteDifference returns an oracle which estimates f' by a central
// difference on the float64 projection of f. The step is scaled to the
// magnitude of x.
func FiniteDifference[P any](field precision.Field[P]) Func[P] {
	return func(f func(P) P, x P) float64 {
		x64 := field.Float64(x)
		g := func(t float64) float64 {
			return field.Float64(f(field.FromFloat64(t)))
		}
		settings := &fd.Settings{
			Formula: fd.Central,
			Step:    cbrtEps * math.Max(1, math.Abs(x64)),
		}
		d := fd.Derivative(g, x64, settings)
		return relative(x64, d, field.Float64(f(x)))
	}
}

// Derivative returns an oracle using a known derivative df of f.
func Derivative[P any](field precision.Field[P], df func(P) P) Func[P] {
	return func(f func(P) P, x P) float64 {
		return relative(field.Float64(x), field.Float64(df(x)), field.Float64(f(x)))
	}
}

func relative(x, d, y float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Abs(x * d / y)
}
