package fnplot

import (
	"image/color"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestGrobs(t *testing.T) {
	c := vgimg.NewWith(vgimg.UseWH(200, 100), vgimg.UseDPI(72))
	dc := draw.New(c)

	full := Viewport{Canvas: dc}
	inner := Viewport{Canvas: dc, X0: 20, Y0: 10}

	GrobRect{X0: 0, Y0: 0, X1: 200, Y1: 100, Fill: color.Black}.Draw(full)
	red := Stroke{Color: color.RGBA{0xff, 0, 0, 0xff}, Width: 6, LineType: SolidLine}
	GrobLine{X0: 0, Y0: 40, X1: 100, Y1: 40, Stroke: red}.Draw(inner)
	blue := Stroke{Color: color.RGBA{0, 0, 0xff, 0xff}, Width: 6, LineType: SolidLine}
	GrobPath{Points: []Point{{130, 10}, {130, 80}}, Stroke: blue}.Draw(inner)
	GrobPoint{X: 170, Y: 20, Size: 5, Shape: SolidSquarePoint, Color: color.White}.Draw(full)
	blank := Stroke{Color: color.White, Width: 6, LineType: BlankLine}
	GrobLine{X0: 0, Y0: 90, X1: 200, Y1: 90, Stroke: blank}.Draw(full)

	img := c.Image()
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 5, 5, color.RGBA{0, 0, 0, 0xff}},
		{"line offset by viewport", 70, 50, color.RGBA{0xff, 0, 0, 0xff}},
		{"path offset by viewport", 150, 60, color.RGBA{0, 0, 0xff, 0xff}},
		{"point", 170, 20, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"blank line", 100, 90, color.RGBA{0, 0, 0, 0xff}},
	}
	for _, tc := range tests {
		got := color.RGBAModel.Convert(img.At(tc.x, tc.y)).(color.RGBA)
		if got != tc.want {
			t.Errorf("%s: pixel (%d,%d) = %v, want %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestViewportMap(t *testing.T) {
	c := vgimg.New(vg.Length(300), vg.Length(200))
	vp := Viewport{Canvas: draw.New(c), X0: 25, Y0: 40}
	got := vp.Map(10, 30)
	want := vg.Point{X: 35, Y: 130}
	if got != want {
		t.Errorf("Map(10,30) = %v, want %v", got, want)
	}
}
