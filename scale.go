package fnplot

import (
	"fmt"
	"math"
)

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// -------------------------------------------------------------------------
// Interval

// Interval is a closed real interval. Both edges are NaN until the interval
// has been trained on data.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns an interval which has not seen any data.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Train widens i to include x. NaN and infinite values are ignored as they
// cannot be placed on a scale.
func (i *Interval) Train(x float64) {
	if !finite(x) {
		return
	}
	if !(i.Min <= x) {
		i.Min = x
	}
	if !(i.Max >= x) {
		i.Max = x
	}
}

// Set reports whether i has seen data.
func (i Interval) Set() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Proper reports whether Min < Max strictly, both finite.
func (i Interval) Proper() bool {
	return i.Set() && i.Min < i.Max && !math.IsInf(i.Min, 0) && !math.IsInf(i.Max, 0)
}

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// At returns the point dividing i in ratio k:(n-k).
func (i Interval) At(k, n int) float64 {
	if k == n {
		return i.Max
	}
	return i.Min + (i.Max-i.Min)*float64(k)/float64(n)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g,%g]", i.Min, i.Max)
}

// -------------------------------------------------------------------------
// Transform

// Transform maps data coordinates to pixel coordinates of a graph area whose
// origin is the top left corner. Larger y values map to smaller pixel rows.
type Transform struct {
	X, Y          Interval
	Width, Height float64
}

// NewTransform returns the transform of the data rectangle x × y onto a
// graph area of the given size. Both intervals must be proper.
func NewTransform(x, y Interval, width, height float64) (Transform, error) {
	if !x.Proper() {
		return Transform{}, domainErrorf("x range %s is empty or inverted", x)
	}
	if !y.Proper() {
		return Transform{}, domainErrorf("y range %s is empty or degenerate", y)
	}
	return Transform{X: x, Y: y, Width: width, Height: height}, nil
}

// XScale maps x to [0, Width].
func (t Transform) XScale(x float64) float64 {
	return (x - t.X.Min) / (t.X.Max - t.X.Min) * t.Width
}

// YScale maps y to [0, Height], inverted.
func (t Transform) YScale(y float64) float64 {
	return (t.Y.Max - y) / (t.Y.Max - t.Y.Min) * t.Height
}

// Map maps the data point (x,y).
func (t Transform) Map(x, y float64) Point {
	return Point{t.XScale(x), t.YScale(y)}
}
