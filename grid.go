package fnplot

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg/draw"
)

// Gridline is a horizontal or vertical line through the graph area at a
// data coordinate.
type Gridline struct {
	Horizontal bool
	Value      float64 // data coordinate
	Label      string
}

// formatLabel prints v with four significant digits.
func formatLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// EvenGridlines subdivides both ranges of t evenly into h and v parts and
// returns a gridline at every inner and the upper boundary.
func EvenGridlines(t Transform, h, v int) []Gridline {
	var lines []Gridline
	for i := 1; i <= h; i++ {
		y := t.Y.At(i, h)
		lines = append(lines, Gridline{Horizontal: true, Value: y, Label: formatLabel(y)})
	}
	return append(lines, verticalGridlines(t, v)...)
}

func verticalGridlines(t Transform, v int) []Gridline {
	var lines []Gridline
	for i := 1; i <= v; i++ {
		x := t.X.At(i, v)
		lines = append(lines, Gridline{Value: x, Label: formatLabel(x)})
	}
	return lines
}

// ulpLevels are the horizontal gridlines of a plot of small errors.
var ulpLevels = []float64{-3, -2.5, -2, -1.5, -1, -0.5, 0.5, 1, 1.5, 2, 2.5, 3}

// ULPGridlines returns horizontal gridlines at the half ulp steps up to ±3
// which lie in the value range of t and v evenly spaced vertical lines.
func ULPGridlines(t Transform, v int) []Gridline {
	var lines []Gridline
	for _, y := range ulpLevels {
		if t.Y.Contains(y) {
			lines = append(lines, Gridline{Horizontal: true, Value: y, Label: formatLabel(y)})
		}
	}
	return append(lines, verticalGridlines(t, v)...)
}

// TickerGridlines returns gridlines at the labelled ticks of xt and yt
// lying strictly inside the ranges of t. A nil ticker yields no lines.
func TickerGridlines(t Transform, xt, yt plot.Ticker) []Gridline {
	var lines []Gridline
	if yt != nil {
		for _, tick := range yt.Ticks(t.Y.Min, t.Y.Max) {
			if tick.IsMinor() || tick.Value <= t.Y.Min || tick.Value >= t.Y.Max {
				continue
			}
			lines = append(lines, Gridline{Horizontal: true, Value: tick.Value, Label: tick.Label})
		}
	}
	if xt != nil {
		for _, tick := range xt.Ticks(t.X.Min, t.X.Max) {
			if tick.IsMinor() || tick.Value <= t.X.Min || tick.Value >= t.X.Max {
				continue
			}
			lines = append(lines, Gridline{Value: tick.Value, Label: tick.Label})
		}
	}
	return lines
}

// gridGrobs renders gridlines and their labels. Horizontal labels sit in
// the left margin turned by -90°, vertical labels below the graph area.
func gridGrobs(t Transform, lines []Gridline, margin int, th Theme) []Grob {
	sty := th.gridStyle()
	var grobs []Grob
	for _, gl := range lines {
		label := GrobText{
			Text:  gl.Label,
			Font:  th.LabelFont,
			Size:  th.LabelSize,
			Color: th.Foreground,
		}
		if gl.Horizontal {
			y := t.YScale(gl.Value)
			grobs = append(grobs, GrobLine{X0: 0, Y0: y, X1: t.Width, Y1: y, Stroke: sty})
			label.X, label.Y = -float64(margin)/2, y
			label.Angle = -90
			label.XAlign, label.YAlign = draw.XCenter, draw.YTop
		} else {
			x := t.XScale(gl.Value)
			grobs = append(grobs, GrobLine{X0: x, Y0: 0, X1: x, Y1: t.Height, Stroke: sty})
			label.X, label.Y = x, t.Height+10
			label.XAlign, label.YAlign = draw.XCenter, draw.YBottom
		}
		grobs = append(grobs, label)
	}
	return grobs
}
