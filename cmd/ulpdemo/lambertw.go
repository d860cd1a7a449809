package main

import (
	"math"

	"github.com/vdobler/fnplot/precision"
)

// lambertW0 evaluates the principal branch of the Lambert W function,
// the solution w >= -1 of w·exp(w) = x, by Halley iteration in the
// arithmetic of T. It is NaN below the branch point -1/e.
func lambertW0[T precision.Coarse](x T) T {
	switch {
	case math.IsNaN(float64(x)) || float64(x) < -1/math.E-1e-7:
		return T(math.NaN())
	case x == 0:
		return 0
	case math.IsInf(float64(x), 1):
		return x
	}

	var w T
	switch {
	case x < -0.25:
		// Series around the branch point.
		q := 2 * (T(math.E)*x + 1)
		if q < 0 {
			q = 0
		}
		p := T(math.Sqrt(float64(q)))
		w = -1 + p - p*p/3 + 11*p*p*p/72
	case x < 3:
		w = T(math.Log1p(float64(x)))
	default:
		l := T(math.Log(float64(x)))
		w = l - T(math.Log(float64(l)))
	}

	tol := precision.ULP(T(1))
	for i := 0; i < 64; i++ {
		wp1 := w + 1
		if wp1 == 0 {
			break
		}
		ew := T(math.Exp(float64(w)))
		f := w*ew - x
		dw := f / (ew*wp1 - (w+2)*f/(2*wp1))
		w -= dw
		if math.Abs(float64(dw)) <= tol*math.Abs(float64(w)) {
			break
		}
	}
	return w
}

// lambertW0Prime is W0'(x) = W0(x) / (x·(1+W0(x))), continued by 1 at 0.
func lambertW0Prime(x float64) float64 {
	if x == 0 {
		return 1
	}
	w := lambertW0(x)
	return w / (x * (1 + w))
}
