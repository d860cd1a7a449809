package main

import (
	"math"
	"testing"
)

func TestLambertW0(t *testing.T) {
	tests := []struct {
		x, w float64
	}{
		{0, 0},
		{math.E, 1},
		{-1 / math.E, -1},
		{1, 0.5671432904097838},
		{2 * math.Exp(2), 2},
		{-math.Log(2) / 2, -math.Log(2)},
	}
	for _, tc := range tests {
		got := lambertW0(tc.x)
		tol := 4e-15
		if tc.x == -1/math.E {
			// The branch point is ill conditioned.
			tol = 1e-7
		}
		if math.Abs(got-tc.w) > tol*math.Max(1, math.Abs(tc.w)) {
			t.Errorf("W0(%g) = %.17g, want %.17g", tc.x, got, tc.w)
		}
	}
	if w := lambertW0(-0.5); !math.IsNaN(w) {
		t.Errorf("W0(-0.5) = %g, want NaN", w)
	}
}

func TestLambertW0Inverse(t *testing.T) {
	for _, x := range []float64{-0.3667, -0.2, 0.001, 0.5, 2.9, 3, 10, 1e3, 1e6} {
		w := lambertW0(x)
		if got := w * math.Exp(w); math.Abs(got-x) > 1e-13*math.Max(1, math.Abs(x)) {
			t.Errorf("W0(%g) = %g, but w·exp(w) = %g", x, w, got)
		}
		w32 := float64(lambertW0(float32(x)))
		if math.Abs(w32-w) > 1e-5*math.Max(1, math.Abs(w)) {
			t.Errorf("float32 W0(%g) = %g, float64 %g", x, w32, w)
		}
	}
}

func TestLambertW0Prime(t *testing.T) {
	if d := lambertW0Prime(0); d != 1 {
		t.Errorf("W0'(0) = %g, want 1", d)
	}
	// W0'(e) = 1 / (2e)
	if d := lambertW0Prime(math.E); math.Abs(d-1/(2*math.E)) > 1e-15 {
		t.Errorf("W0'(e) = %g, want %g", d, 1/(2*math.E))
	}
}
