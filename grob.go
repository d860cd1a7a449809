package fnplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Grob is a graphical object. Its coordinates are pixels relative to the
// origin of the viewport it is drawn in, y growing downwards.
type Grob interface {
	Draw(vp Viewport)
}

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Stroke describes how lines are drawn.
type Stroke struct {
	Color    color.Color
	Width    float64
	LineType LineType
}

func (s Stroke) lineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  s.Color,
		Width:  vg.Length(s.Width),
		Dashes: s.LineType.Dashes(),
	}
}

// -------------------------------------------------------------------------
// Grob Rect

// GrobRect is a filled rectangle.
type GrobRect struct {
	X0, Y0, X1, Y1 float64
	Fill           color.Color
}

func (r GrobRect) Draw(vp Viewport) {
	vp.Canvas.FillPolygon(r.Fill, []vg.Point{
		vp.Map(r.X0, r.Y0), vp.Map(r.X1, r.Y0),
		vp.Map(r.X1, r.Y1), vp.Map(r.X0, r.Y1),
	})
}

// -------------------------------------------------------------------------
// Grob Line

// GrobLine is a straight line segment.
type GrobLine struct {
	X0, Y0, X1, Y1 float64
	Stroke
}

func (line GrobLine) Draw(vp Viewport) {
	if line.LineType == BlankLine {
		return
	}
	p0, p1 := vp.Map(line.X0, line.Y0), vp.Map(line.X1, line.Y1)
	vp.Canvas.StrokeLine2(line.lineStyle(), p0.X, p0.Y, p1.X, p1.Y)
}

// -------------------------------------------------------------------------
// Grob Path

// GrobPath is an open polyline: a move to the first point followed by a
// line to each further point.
type GrobPath struct {
	Points []Point
	Stroke
}

func (path GrobPath) Draw(vp Viewport) {
	if path.LineType == BlankLine || len(path.Points) == 0 {
		return
	}
	ps := make([]vg.Point, len(path.Points))
	for i, p := range path.Points {
		ps[i] = vp.Map(p.X, p.Y)
	}
	vp.Canvas.StrokeLines(path.lineStyle(), ps)
}

// -------------------------------------------------------------------------
// Grob Point

// GrobPoint is a single plot symbol centered at X, Y.
type GrobPoint struct {
	X, Y  float64
	Size  float64 // radius
	Shape PointShape
	Color color.Color
}

func (point GrobPoint) Draw(vp Viewport) {
	glyph := point.Shape.Glyph()
	if glyph == nil {
		return
	}
	sty := draw.GlyphStyle{
		Color:  point.Color,
		Radius: vg.Length(point.Size),
		Shape:  glyph,
	}
	vp.Canvas.DrawGlyph(sty, vp.Map(point.X, point.Y))
}

// -------------------------------------------------------------------------
// Grob Text

// GrobText is a single line of text anchored at X, Y. Angle is in degrees,
// positive angles turn clockwise on screen.
type GrobText struct {
	X, Y   float64
	Text   string
	Font   string
	Size   float64
	Angle  float64
	Color  color.Color
	XAlign draw.XAlignment
	YAlign draw.YAlignment
}

func (text GrobText) Draw(vp Viewport) {
	font, err := vg.MakeFont(text.Font, vg.Length(text.Size))
	if err != nil {
		Warnf("Cannot draw text %q: %s", text.Text, err)
		return
	}
	sty := draw.TextStyle{
		Color:    text.Color,
		Font:     font,
		Rotation: -text.Angle * math.Pi / 180,
		XAlign:   text.XAlign,
		YAlign:   text.YAlign,
	}
	vp.Canvas.FillText(sty, vp.Map(text.X, text.Y), text.Text)
}
