package fnplot

import (
	"image/color"
	"io"
	"math"
	"time"

	"github.com/vdobler/fnplot/condition"
	"github.com/vdobler/fnplot/precision"
)

// Reference is a high precision implementation of the function under test.
type Reference[P any] struct {
	// Field describes the precision P.
	Field precision.Field[P]

	// Fn evaluates the function.
	Fn func(P) P

	// Condition is the condition number oracle. Nil means
	// condition.FiniteDifference(Field).
	Condition condition.Func[P]
}

// ULPPlot compares implementations working in the coarse type C against
// a reference in precision P and plots their errors in ulps together with
// the error envelope derived from the conditioning of the reference.
//
// The design follows Cleve Moler's ULP plots,
// https://blogs.mathworks.com/cleve/2017/01/23/ulps-plots-reveal-math-function-accurary/
type ULPPlot[C precision.Coarse, P any] struct {
	ref  Reference[P]
	a, b C
	cfg  config

	precise   []P
	coarse    []C
	ordinates []P       // reference values at precise
	cond      []float64 // envelope in ulps, NaN where the reference is zero

	ulps   [][]float64
	colors []color.Color

	worst float64
	life  *lifecycle
}

// NewULPPlot samples ref on [a,b]. It evaluates the reference and its
// condition number at every abscissa; candidates are added by AddFn.
func NewULPPlot[C precision.Coarse, P any](ref Reference[P], a, b C, opts ...Option) (*ULPPlot[C, P], error) {
	cfg := defaultConfig(10000)
	cfg.apply(opts)

	if ref.Field == nil || ref.Fn == nil {
		return nil, domainErrorf("reference needs a field and a function")
	}
	if !precision.Dominates[C](ref.Field) {
		return nil, domainErrorf("reference precision of %d bits is coarser than the candidates'", ref.Field.Bits())
	}
	if cfg.samples < 10 {
		return nil, domainErrorf("must have at least 10 samples, samples = %d", cfg.samples)
	}
	if !(b > a) || !finite(float64(a)) || !finite(float64(b)) {
		return nil, domainErrorf("on interval [%g,%g], b > a is required", a, b)
	}
	if ref.Condition == nil {
		ref.Condition = condition.FiniteDifference(ref.Field)
	}

	start := time.Now()
	p := &ULPPlot[C, P]{ref: ref, a: a, b: b, cfg: cfg, life: newLifecycle("ulp", "")}
	r := newSource(cfg.seed, cfg.seeded)
	p.precise, p.coarse = abscissas[C](ref.Field, cfg.sampling, r, a, b, cfg.samples)

	n := cfg.samples
	p.ordinates = make([]P, n)
	p.cond = make([]float64, n)
	for i, x := range p.precise {
		y := ref.Fn(x)
		p.ordinates[i] = y
		p.cond[i] = math.NaN()
		if ref.Field.Sign(y) == 0 {
			continue
		}
		c := ref.Condition(ref.Fn, x)
		// A correctly rounded result is within half an ulp, the envelope
		// cannot be tighter.
		if c < 0.5 {
			c = 0.5
		}
		p.cond[i] = c
	}
	Logger().Debug("ulp: sampled reference", "a", float64(a), "b", float64(b), "samples", n,
		"sampling", cfg.sampling.String(), "elapsed", time.Since(start))
	return p, nil
}

// AddFn computes the error in ulps of the candidate g at every abscissa.
// Candidates are drawn in the order they are added.
func (p *ULPPlot[C, P]) AddFn(g func(C) C, colorName string) error {
	if err := p.life.check("add function to ulp plot"); err != nil {
		return err
	}
	if g == nil {
		return domainErrorf("nil function added for comparison")
	}
	col, err := ParseColor(colorName, len(p.ulps))
	if err != nil {
		return err
	}
	ulps := make([]float64, len(p.coarse))
	for i, x := range p.coarse {
		ulps[i] = precision.Error[C](p.ref.Field, g(x), p.ordinates[i])
	}
	p.ulps = append(p.ulps, ulps)
	p.colors = append(p.colors, col)
	Logger().Debug("ulp: added function", "candidates", len(p.ulps), "color", colorString(col))
	return nil
}

// Abscissas returns the coarse abscissas in ascending order.
func (p *ULPPlot[C, P]) Abscissas() []C { return p.coarse }

// Conditioning returns the condition numbers, floored at 0.5 and NaN where
// the reference vanishes.
func (p *ULPPlot[C, P]) Conditioning() []float64 { return p.cond }

// Errors returns the errors in ulps of the i'th candidate.
func (p *ULPPlot[C, P]) Errors(i int) []float64 { return p.ulps[i] }

// Worst returns the largest absolute error of all candidates. It is valid
// once p has been written.
func (p *ULPPlot[C, P]) Worst() float64 { return p.worst }

// Scene returns the rendered geometry, nil before p is written.
func (p *ULPPlot[C, P]) Scene() *Scene { return p.life.scene }

// Write renders p to path; the format follows the extension of path.
func (p *ULPPlot[C, P]) Write(path string, opts ...Option) error {
	if err := p.life.check("write ulp plot"); err != nil {
		return err
	}
	scene, err := p.build(opts)
	if err != nil {
		return err
	}
	if err := scene.save(path); err != nil {
		return err
	}
	p.life.finish(scene)
	Logger().Info("ulp: written", "file", path, "candidates", len(p.ulps), "worst", p.worst)
	return nil
}

// Render renders p in the given format to w.
func (p *ULPPlot[C, P]) Render(w io.Writer, format string, opts ...Option) error {
	if err := p.life.check("render ulp plot"); err != nil {
		return err
	}
	scene, err := p.build(opts)
	if err != nil {
		return err
	}
	if err := scene.render(w, format); err != nil {
		return err
	}
	p.life.finish(scene)
	Logger().Info("ulp: rendered", "format", format, "candidates", len(p.ulps), "worst", p.worst)
	return nil
}

// errorRange returns the largest absolute error and the range of all finite
// errors, widened to contain the half ulp band.
func (p *ULPPlot[C, P]) errorRange() (float64, Interval) {
	worst := 0.0
	r := Interval{-0.5, 0.5}
	for _, ulps := range p.ulps {
		for _, u := range ulps {
			if !finite(u) {
				continue
			}
			worst = math.Max(worst, math.Abs(u))
			r.Train(u)
		}
	}
	return worst, r
}

func (p *ULPPlot[C, P]) build(opts []Option) (*Scene, error) {
	cfg := p.cfg
	cfg.apply(opts)

	if len(p.ulps) == 0 {
		return nil, domainErrorf("no functions added for comparison")
	}
	canvas, err := NewCanvas(cfg.width, cfg.title != "")
	if err != nil {
		return nil, err
	}

	worst, yr := p.errorRange()
	if clipped(cfg.clip) {
		yr.Max = math.Min(yr.Max, cfg.clip)
		yr.Min = math.Max(yr.Min, -cfg.clip)
	}
	t, err := NewTransform(Interval{float64(p.a), float64(p.b)}, yr,
		float64(canvas.GraphWidth()), float64(canvas.GraphHeight()))
	if err != nil {
		return nil, err
	}
	p.worst = worst
	th := cfg.theme

	scene := &Scene{Canvas: canvas, Background: th.Background}
	if cfg.title != "" {
		scene.Header = append(scene.Header, titleGrob(canvas, cfg.title, th))
	}
	scene.Add(axesGrobs(t, t.YScale(0), th)...)

	var lines []Gridline
	switch {
	case cfg.xticker != nil || cfg.yticker != nil:
		lines = TickerGridlines(t, cfg.xticker, cfg.yticker)
	case worst > 3:
		lines = EvenGridlines(t, cfg.hlines, cfg.vlines)
	default:
		lines = ULPGridlines(t, cfg.vlines)
	}
	scene.Add(gridGrobs(t, lines, canvas.Left, th)...)

	x := make([]float64, len(p.coarse))
	for i, c := range p.coarse {
		x[i] = float64(c)
	}
	for i, ulps := range p.ulps {
		scene.Add(GeomScatter{X: x, Y: ulps, Clip: cfg.clip, Color: p.colors[i]}.Render(t, th)...)
	}
	if cfg.envelope {
		scene.Add(GeomEnvelope{X: x, Cond: p.cond, Clip: cfg.clip}.Render(t, th)...)
	}
	Logger().Debug("ulp: scene built", "grobs", len(scene.Grobs), "worst", worst,
		"y", t.Y.String(), "clip", cfg.clip)
	return scene, nil
}
