package fnplot

import (
	"gonum.org/v1/plot"
)

// Sampling selects how the abscissas of a ULP plot are generated.
type Sampling int

const (
	// Perturbed abscissas are drawn uniformly in the reference precision
	// and then rounded to the coarse type.
	Perturbed Sampling = iota
	// Unperturbed abscissas are drawn uniformly in the coarse type.
	Unperturbed
	// Even abscissas are evenly spaced over the domain.
	Even
)

func (s Sampling) String() string {
	switch s {
	case Perturbed:
		return "perturbed"
	case Unperturbed:
		return "unperturbed"
	case Even:
		return "even"
	}
	return "unknown"
}

// Option configures the construction or the writing of a plot. Options
// not applicable to an operation are ignored.
//
// Example:
//
//	g, err := fnplot.NewGraph(0, 10, "sin", "sin.svg", fnplot.Samples(500))
//	...
//	err = u.Write("ulp.svg", fnplot.Clip(3), fnplot.Title("exp"))
type Option func(*config)

type config struct {
	samples  int
	width    int
	theme    Theme
	sampling Sampling
	seed     uint64
	seeded   bool

	clip     float64
	envelope bool
	title    string
	hlines   int
	vlines   int
	xticker  plot.Ticker
	yticker  plot.Ticker
}

func defaultConfig(samples int) config {
	return config{
		samples:  samples,
		width:    1100,
		theme:    DefaultTheme,
		sampling: Perturbed,
		clip:     -1,
		envelope: true,
		hlines:   8,
		vlines:   10,
	}
}

func (c *config) apply(opts []Option) {
	for _, o := range opts {
		o(c)
	}
}

// Samples sets the number of abscissas. Graph plots default to 100 and need
// at least 2, ULP plots default to 10000 and need at least 10.
func Samples(n int) Option {
	return func(c *config) { c.samples = n }
}

// Width sets the canvas width in pixels; the height follows from the golden
// ratio. Defaults to 1100.
func Width(w int) Option {
	return func(c *config) { c.width = w }
}

// WithTheme replaces DefaultTheme.
func WithTheme(th Theme) Option {
	return func(c *config) { c.theme = th }
}

// Perturb chooses between Perturbed (the default) and Unperturbed
// abscissas of a ULP plot.
func Perturb(on bool) Option {
	return func(c *config) {
		if on {
			c.sampling = Perturbed
		} else {
			c.sampling = Unperturbed
		}
	}
}

// EvenlySpaced places the abscissas of a ULP plot evenly.
func EvenlySpaced() Option {
	return func(c *config) { c.sampling = Even }
}

// Seed makes random abscissas reproducible. Without a seed the random
// source is seeded from the system's entropy source.
func Seed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// Clip limits a ULP plot to errors in [-clip, clip]. Errors and envelope
// values beyond are not drawn. A clip <= 0 disables clipping.
func Clip(clip float64) Option {
	return func(c *config) { c.clip = clip }
}

// Envelope toggles drawing of the conditioning envelope. Defaults to on.
func Envelope(on bool) Option {
	return func(c *config) { c.envelope = on }
}

// Title sets the title of a ULP plot. Without a title the margins shrink.
func Title(title string) Option {
	return func(c *config) { c.title = title }
}

// Gridlines sets the number of horizontal and vertical gridlines.
// Defaults to 8 and 10.
func Gridlines(horizontal, vertical int) Option {
	return func(c *config) {
		c.hlines = horizontal
		c.vlines = vertical
	}
}

// Ticks places gridlines at the major ticks of xt and yt instead of evenly,
// e.g. Ticks(plot.DefaultTicks{}, plot.DefaultTicks{}).
func Ticks(xt, yt plot.Ticker) Option {
	return func(c *config) {
		c.xticker = xt
		c.yticker = yt
	}
}
