package fnplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Set alpha to a in color c. Any alpha of c is replaced.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a *= float64(0xff)
	return color.NRGBA{n.R, n.G, n.B, uint8(a)}
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DeltaPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDeltaPoint
	CrossPoint
	PlusPoint
)

// Glyph returns the vg glyph drawing shape s.
func (s PointShape) Glyph() draw.GlyphDrawer {
	switch s {
	case CirclePoint:
		return draw.RingGlyph{}
	case SquarePoint:
		return draw.SquareGlyph{}
	case DeltaPoint:
		return draw.TriangleGlyph{}
	case SolidCirclePoint:
		return draw.CircleGlyph{}
	case SolidSquarePoint:
		return draw.BoxGlyph{}
	case SolidDeltaPoint:
		return draw.PyramidGlyph{}
	case CrossPoint:
		return draw.CrossGlyph{}
	case PlusPoint:
		return draw.PlusGlyph{}
	}
	return nil
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
)

// Dashes returns the dash pattern of lt.
func (lt LineType) Dashes() []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{4, 4}
	case DottedLine:
		return []vg.Length{1, 3}
	case DotDashLine:
		return []vg.Length{1, 3, 4, 3}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

// BuiltinColors are color names understood in addition to the SVG color
// keywords.
var BuiltinColors = map[string]color.RGBA{
	"gray20": {0x33, 0x33, 0x33, 0xff},
	"gray40": {0x66, 0x66, 0x66, 0xff},
	"gray60": {0x99, 0x99, 0x99, 0xff},
	"gray80": {0xcc, 0xcc, 0xcc, 0xff},
}

// DefaultColor is used for an empty color name.
const DefaultColor = "steelblue"

// AutoColor is the color name selecting the i'th color of the default
// palette for the i'th series of a plot.
const AutoColor = "auto"

// ParseColor interprets s as "#rrggbb", "#rrggbbaa", one of the
// BuiltinColors or an SVG color keyword like "steelblue". The color "auto"
// yields the idx'th color of the gonum default palette, the empty string
// DefaultColor.
func ParseColor(s string, idx int) (color.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		s = DefaultColor
	}
	if s == AutoColor {
		return plotutil.Color(idx), nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s)
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	if col, ok := colornames.Map[s]; ok {
		return col, nil
	}
	return nil, domainErrorf("unknown color %q", s)
}

func parseHexColor(s string) (color.Color, error) {
	if len(s) != 7 && len(s) != 9 {
		return nil, domainErrorf("malformed color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, domainErrorf("malformed color %q: %v", s, err)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// colorString renders c for log output.
func colorString(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
