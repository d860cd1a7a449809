package fnplot

import (
	"image/color"
)

// Theme collects the fixed visual attributes of a plot.
type Theme struct {
	Background color.Color
	Foreground color.Color // title and labels

	AxisColor color.Color
	AxisWidth float64

	GridColor color.Color // drawn at GridAlpha opacity
	GridAlpha float64
	GridWidth float64
	GridLine  LineType

	SeriesWidth float64 // graph plot polylines

	PointRadius float64 // ULP plot scatter
	PointShape  PointShape

	EnvelopeColor color.Color
	EnvelopeWidth float64

	TitleFont string
	TitleSize float64
	LabelFont string
	LabelSize float64
}

var DefaultTheme = Theme{
	Background: color.Black,
	Foreground: color.White,

	AxisColor: color.RGBA{0x80, 0x80, 0x80, 0xff},
	AxisWidth: 1,

	GridColor: color.RGBA{0x80, 0x80, 0x80, 0xff},
	GridAlpha: 0.5,
	GridWidth: 1,
	GridLine:  DashedLine,

	SeriesWidth: 3,

	PointRadius: 1,
	PointShape:  SolidCirclePoint,

	EnvelopeColor: color.RGBA{0x7f, 0xff, 0x00, 0xff}, // chartreuse
	EnvelopeWidth: 1,

	TitleFont: "Times-Roman",
	TitleSize: 25,
	LabelFont: "Times-Roman",
	LabelSize: 10,
}

func (th Theme) axisStyle() Stroke {
	return Stroke{Color: th.AxisColor, Width: th.AxisWidth, LineType: SolidLine}
}

func (th Theme) gridStyle() Stroke {
	return Stroke{Color: SetAlpha(th.GridColor, th.GridAlpha), Width: th.GridWidth, LineType: th.GridLine}
}
