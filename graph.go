package fnplot

import (
	"io"
)

// Graph plots one or more functions over a common domain.
//
// Functions are sampled as they are added; the plot is rendered once, by
// Write or Render, after all functions are known. A written Graph accepts
// no further functions.
type Graph struct {
	title    string
	filename string
	cfg      config
	canvas   Canvas

	x      []float64 // shared abscissas
	yRange Interval
	series []GeomLines

	life *lifecycle
}

// NewGraph returns a graph over [xmin, xmax] which will be written to
// filename. The output format follows the extension of filename.
func NewGraph(xmin, xmax float64, title, filename string, opts ...Option) (*Graph, error) {
	cfg := defaultConfig(100)
	cfg.apply(opts)

	dom := Interval{xmin, xmax}
	if !dom.Proper() {
		return nil, domainErrorf("graph domain %s: xmax > xmin required", dom)
	}
	if cfg.samples < 2 {
		return nil, domainErrorf("must have at least 2 samples, samples = %d", cfg.samples)
	}
	canvas, err := NewCanvas(cfg.width, true)
	if err != nil {
		return nil, err
	}

	x := make([]float64, cfg.samples)
	step := (xmax - xmin) / float64(cfg.samples-1)
	for i := range x {
		x[i] = xmin + step*float64(i)
	}
	x[len(x)-1] = xmax

	return &Graph{
		title:    title,
		filename: filename,
		cfg:      cfg,
		canvas:   canvas,
		x:        x,
		yRange:   UnsetInterval(),
		life:     newLifecycle("graph", title),
	}, nil
}

// AddFn samples f and adds it in the given color on top of all previously
// added functions.
func (g *Graph) AddFn(f func(float64) float64, colorName string) error {
	if err := g.life.check("add function to graph"); err != nil {
		return err
	}
	if f == nil {
		return domainErrorf("nil function added to graph %q", g.title)
	}
	col, err := ParseColor(colorName, len(g.series))
	if err != nil {
		return err
	}

	y := make([]float64, len(g.x))
	for i, x := range g.x {
		y[i] = f(x)
		g.yRange.Train(y[i])
	}
	g.series = append(g.series, GeomLines{X: g.x, Y: y, Color: col})
	Logger().Debug("graph: added function", "title", g.title, "series", len(g.series),
		"color", colorString(col), "range", g.yRange.String())
	return nil
}

// Domain returns the x-range of g.
func (g *Graph) Domain() Interval {
	return Interval{g.x[0], g.x[len(g.x)-1]}
}

// Range returns the range of all finite samples seen so far.
func (g *Graph) Range() Interval {
	return g.yRange
}

// Canvas returns the canvas dimensions of g.
func (g *Graph) Canvas() Canvas {
	return g.canvas
}

// Scene returns the rendered geometry, nil before g is written.
func (g *Graph) Scene() *Scene {
	return g.life.scene
}

// Write renders g to the filename given to NewGraph.
func (g *Graph) Write() error {
	if err := g.life.check("write graph"); err != nil {
		return err
	}
	scene, err := g.build()
	if err != nil {
		return err
	}
	if err := scene.save(g.filename); err != nil {
		return err
	}
	g.life.finish(scene)
	Logger().Info("graph: written", "file", g.filename, "series", len(g.series))
	return nil
}

// Render renders g in the given format to w instead of the file.
func (g *Graph) Render(w io.Writer, format string) error {
	if err := g.life.check("render graph"); err != nil {
		return err
	}
	scene, err := g.build()
	if err != nil {
		return err
	}
	if err := scene.render(w, format); err != nil {
		return err
	}
	g.life.finish(scene)
	Logger().Info("graph: rendered", "format", format, "series", len(g.series))
	return nil
}

// build computes the final transform and lays out the scene.
func (g *Graph) build() (*Scene, error) {
	if len(g.series) == 0 {
		return nil, domainErrorf("no functions added to graph %q", g.title)
	}
	t, err := NewTransform(g.Domain(), g.yRange,
		float64(g.canvas.GraphWidth()), float64(g.canvas.GraphHeight()))
	if err != nil {
		return nil, err
	}
	th := g.cfg.theme

	scene := &Scene{Canvas: g.canvas, Background: th.Background}
	if g.title != "" {
		scene.Header = append(scene.Header, titleGrob(g.canvas, g.title, th))
	}

	// The x-axis runs through zero if zero is in range, else along the bottom.
	xAxis := t.Height
	if g.yRange.Contains(0) {
		xAxis = t.YScale(0)
	}
	scene.Add(axesGrobs(t, xAxis, th)...)

	lines := EvenGridlines(t, g.cfg.hlines, g.cfg.vlines)
	if g.cfg.xticker != nil || g.cfg.yticker != nil {
		lines = TickerGridlines(t, g.cfg.xticker, g.cfg.yticker)
	}
	scene.Add(gridGrobs(t, lines, g.canvas.Left, th)...)

	for _, s := range g.series {
		scene.Add(s.Render(t, th)...)
	}
	Logger().Debug("graph: scene built", "title", g.title, "grobs", len(scene.Grobs),
		"x", t.X.String(), "y", t.Y.String())
	return scene, nil
}
