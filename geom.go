package fnplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg/draw"
)

// Geom turns sampled data into grobs once the transform is known.
type Geom interface {
	Render(t Transform, th Theme) []Grob
}

// -------------------------------------------------------------------------
// Geom Lines

// GeomLines connects the samples (X[i], Y[i]) by polylines. Non-finite
// ordinates split the polyline.
type GeomLines struct {
	X, Y  []float64
	Color color.Color
}

var _ Geom = GeomLines{}

func (l GeomLines) Render(t Transform, th Theme) []Grob {
	valid := func(i int) bool { return finite(l.Y[i]) }
	sty := Stroke{Color: l.Color, Width: th.SeriesWidth, LineType: SolidLine}
	var grobs []Grob
	for _, sp := range Segments(len(l.Y), valid) {
		ps := make([]Point, 0, sp.End-sp.Start)
		for i := sp.Start; i < sp.End; i++ {
			ps = append(ps, t.Map(l.X[i], l.Y[i]))
		}
		grobs = append(grobs, GrobPath{Points: ps, Stroke: sty})
	}
	return grobs
}

// -------------------------------------------------------------------------
// Geom Scatter

// GeomScatter draws a symbol at every sample (X[i], Y[i]) with a finite
// ordinate. If Clip > 0 ordinates with |Y[i]| > Clip are left out.
type GeomScatter struct {
	X, Y  []float64
	Clip  float64
	Color color.Color
}

var _ Geom = GeomScatter{}

func (s GeomScatter) Render(t Transform, th Theme) []Grob {
	var grobs []Grob
	for i, y := range s.Y {
		if !finite(y) {
			continue
		}
		if clipped(s.Clip) && math.Abs(y) > s.Clip {
			continue
		}
		p := t.Map(s.X[i], y)
		grobs = append(grobs, GrobPoint{X: p.X, Y: p.Y, Size: th.PointRadius, Shape: th.PointShape, Color: s.Color})
	}
	return grobs
}

// -------------------------------------------------------------------------
// Geom Envelope

// GeomEnvelope draws the ±Cond band around zero, split at undefined or
// clipped values.
type GeomEnvelope struct {
	X, Cond []float64
	Clip    float64
}

var _ Geom = GeomEnvelope{}

func (e GeomEnvelope) Render(t Transform, th Theme) []Grob {
	sty := Stroke{Color: th.EnvelopeColor, Width: th.EnvelopeWidth, LineType: SolidLine}
	var grobs []Grob
	for _, sign := range []float64{1, -1} {
		for _, ps := range EnvelopePaths(e.X, e.Cond, e.Clip, sign, t) {
			grobs = append(grobs, GrobPath{Points: ps, Stroke: sty})
		}
	}
	return grobs
}

// -------------------------------------------------------------------------
// Axes

// axesGrobs draws the y-axis at the left edge and the x-axis at pixel row y.
func axesGrobs(t Transform, y float64, th Theme) []Grob {
	sty := th.axisStyle()
	return []Grob{
		GrobLine{X0: 0, Y0: 0, X1: 0, Y1: t.Height, Stroke: sty},
		GrobLine{X0: 0, Y0: y, X1: t.Width, Y1: y, Stroke: sty},
	}
}

// titleGrob centers title in the top margin of c.
func titleGrob(c Canvas, title string, th Theme) Grob {
	return GrobText{
		X:      math.Floor(float64(c.Width) / 2),
		Y:      math.Floor(float64(c.Top) / 2),
		Text:   title,
		Font:   th.TitleFont,
		Size:   th.TitleSize,
		Color:  th.Foreground,
		XAlign: draw.XCenter,
		YAlign: draw.YCenter,
	}
}
