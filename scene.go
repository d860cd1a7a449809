package fnplot

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Viewport places grobs on a vg canvas. Grob coordinates are offset by
// X0, Y0 from the top left corner of the canvas and flipped so that y grows
// downwards.
type Viewport struct {
	Canvas draw.Canvas
	X0, Y0 float64
}

// Map converts the grob coordinate (x,y) to a canvas point.
func (vp Viewport) Map(x, y float64) vg.Point {
	return vg.Point{
		X: vp.Canvas.Min.X + vg.Length(vp.X0+x),
		Y: vp.Canvas.Max.Y - vg.Length(vp.Y0+y),
	}
}

// Scene is the complete geometric content of a rendered plot.
type Scene struct {
	Canvas     Canvas
	Background color.Color

	// Header grobs are positioned relative to the canvas.
	Header []Grob

	// Grobs are positioned relative to the graph area and drawn in order.
	Grobs []Grob
}

// Add appends grobs to the graph area.
func (s *Scene) Add(g ...Grob) {
	s.Grobs = append(s.Grobs, g...)
}

// Draw draws s onto dc.
func (s *Scene) Draw(dc draw.Canvas) {
	full := Viewport{Canvas: dc}
	if s.Background != nil {
		GrobRect{X1: float64(s.Canvas.Width), Y1: float64(s.Canvas.Height), Fill: s.Background}.Draw(full)
	}
	for _, g := range s.Header {
		g.Draw(full)
	}
	graph := Viewport{Canvas: dc, X0: float64(s.Canvas.Left), Y0: float64(s.Canvas.Top)}
	for _, g := range s.Grobs {
		g.Draw(graph)
	}
}

// rasterDPI makes one canvas unit one pixel in raster output.
const rasterDPI = 72

// Encode draws s onto a new canvas for the given output format, one of
// "svg", "pdf", "eps", "png", "jpg", "jpeg", "tif" or "tiff". Raster
// images are Canvas.Width × Canvas.Height pixels; the vector formats
// measure the canvas in points.
func (s *Scene) Encode(format string) (vg.CanvasWriterTo, error) {
	w, h := vg.Length(s.Canvas.Width), vg.Length(s.Canvas.Height)
	var c vg.CanvasWriterTo
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(rasterDPI))
		switch format {
		case "png":
			c = vgimg.PngCanvas{Canvas: img}
		case "jpg", "jpeg":
			c = vgimg.JpegCanvas{Canvas: img}
		default:
			c = vgimg.TiffCanvas{Canvas: img}
		}
	default:
		var err error
		c, err = draw.NewFormattedCanvas(w, h, format)
		if err != nil {
			return nil, domainErrorf("%v", err)
		}
	}
	s.Draw(draw.New(c))
	return c, nil
}

// Paths returns the polylines of s in draw order.
func (s *Scene) Paths() []GrobPath {
	var paths []GrobPath
	for _, g := range s.Grobs {
		if p, ok := g.(GrobPath); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// Points returns the plot symbols of s in draw order.
func (s *Scene) Points() []GrobPoint {
	var points []GrobPoint
	for _, g := range s.Grobs {
		if p, ok := g.(GrobPoint); ok {
			points = append(points, p)
		}
	}
	return points
}

// Lines returns the straight lines (axes and gridlines) of s in draw order.
func (s *Scene) Lines() []GrobLine {
	var lines []GrobLine
	for _, g := range s.Grobs {
		if l, ok := g.(GrobLine); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// FormatOf derives the output format from the extension of path. Paths
// without extension are written as SVG.
func FormatOf(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "svg"
	}
	return ext
}

// render encodes s and writes it to w.
func (s *Scene) render(w io.Writer, format string) error {
	c, err := s.Encode(format)
	if err != nil {
		return err
	}
	_, err = c.WriteTo(w)
	return err
}

// save encodes s and writes it to path. The file is created only once
// encoding succeeded.
func (s *Scene) save(path string) (err error) {
	c, err := s.Encode(FormatOf(path))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(f)
	return err
}
