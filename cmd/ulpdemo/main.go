// Command ulpdemo writes a set of example function graphs and ULP accuracy
// plots.
//
// Usage:
//
//	ulpdemo [options]
//
// The plots are written to the directory given by -out, in the format given
// by -format.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/vdobler/fnplot"
	"github.com/vdobler/fnplot/condition"
	"github.com/vdobler/fnplot/precision"
)

var (
	outDir  = flag.String("out", "examples", "output directory")
	format  = flag.String("format", "svg", "output format: svg, pdf, eps, png, jpg or tif")
	samples = flag.Int("samples", 15000, "number of samples of the ULP plots")
	seed    = flag.Uint64("seed", 0, "random seed of the abscissas, 0 for a random seed")
	clip    = flag.Float64("clip", 3, "clip ULP plots at this many ulps, <= 0 disables clipping")
	width   = flag.Int("width", 1100, "width of the plots in pixels")
	verbose = flag.Bool("v", false, "log sampling and rendering details")
)

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Printf("Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	fnplot.SetLogger(newLogger(*verbose))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	demos := []struct {
		name string
		run  func(path string) error
	}{
		{"bessel", besselGraph},
		{"lambert_w0", lambertGraph},
		{"ulp_exp_float", expULP},
		{"ulp_log1p_float", log1pULP},
		{"ulp_sin_float", sinULP},
		{"ulp_lambert_w0_float", lambertULP},
		{"ulp_sqrt_double", sqrtULP},
		{"ulp_septic_double", septicULP},
	}
	failed := 0
	for _, d := range demos {
		path := filepath.Join(*outDir, d.name+"."+*format)
		if err := d.run(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("Wrote %s\n", path)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// newLogger logs human readable text to a terminal and JSON otherwise.
func newLogger(verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

// ulpOptions are the sampling options shared by all ULP plots.
func ulpOptions() []fnplot.Option {
	opts := []fnplot.Option{fnplot.Samples(*samples), fnplot.Width(*width)}
	if *seed != 0 {
		opts = append(opts, fnplot.Seed(*seed))
	}
	return opts
}

func writeOptions(title string) []fnplot.Option {
	return []fnplot.Option{fnplot.Clip(*clip), fnplot.Title(title), fnplot.Width(*width)}
}

// -------------------------------------------------------------------------
// Graphs

func besselGraph(path string) error {
	g, err := fnplot.NewGraph(0, 20, "Bessel functions J₀, J₁ and Y₀", path,
		fnplot.Samples(500), fnplot.Width(*width))
	if err != nil {
		return err
	}
	for _, f := range []func(float64) float64{math.J0, math.J1, math.Y0} {
		if err := g.AddFn(f, fnplot.AutoColor); err != nil {
			return err
		}
	}
	return g.Write()
}

func lambertGraph(path string) error {
	g, err := fnplot.NewGraph(-1/math.E, 3, "Lambert W₀ and its derivative", path,
		fnplot.Samples(500), fnplot.Width(*width))
	if err != nil {
		return err
	}
	if err := g.AddFn(lambertW0[float64], "steelblue"); err != nil {
		return err
	}
	// The derivative has a pole at the branch point.
	if err := g.AddFn(lambertW0Prime, "orange"); err != nil {
		return err
	}
	return g.Write()
}

// -------------------------------------------------------------------------
// float32 candidates against float64 references

var float64Field = precision.Float64{}

func expULP(path string) error {
	ref := fnplot.Reference[float64]{Field: float64Field, Fn: math.Exp}
	p, err := fnplot.NewULPPlot[float32](ref, -10, 10, ulpOptions()...)
	if err != nil {
		return err
	}
	if err := p.AddFn(func(x float32) float32 { return float32(math.Exp(float64(x))) }, "steelblue"); err != nil {
		return err
	}
	return p.Write(path, writeOptions("ULP accuracy of float32 exp")...)
}

func log1pULP(path string) error {
	ref := fnplot.Reference[float64]{Field: float64Field, Fn: math.Log1p}
	p, err := fnplot.NewULPPlot[float32](ref, -0.5, 0.5, ulpOptions()...)
	if err != nil {
		return err
	}
	naive := func(x float32) float32 { return float32(math.Log(float64(1 + x))) }
	careful := func(x float32) float32 { return float32(math.Log1p(float64(x))) }
	if err := p.AddFn(naive, "orange"); err != nil {
		return err
	}
	if err := p.AddFn(careful, "steelblue"); err != nil {
		return err
	}
	// The naive errors grow without bound towards 0.
	return p.Write(path, writeOptions("ULP accuracy of float32 log(1+x) and log1p")...)
}

func sinULP(path string) error {
	ref := fnplot.Reference[float64]{
		Field:     float64Field,
		Fn:        math.Sin,
		Condition: condition.Derivative[float64](float64Field, math.Cos),
	}
	// Evenly spaced abscissas hit the zero of sin at 0 exactly.
	opts := append(ulpOptions(), fnplot.EvenlySpaced(), fnplot.Samples(1001))
	p, err := fnplot.NewULPPlot[float32](ref, -math.Pi, math.Pi, opts...)
	if err != nil {
		return err
	}
	if err := p.AddFn(func(x float32) float32 { return float32(math.Sin(float64(x))) }, "steelblue"); err != nil {
		return err
	}
	return p.Write(path, writeOptions("ULP accuracy of float32 sin")...)
}

func lambertULP(path string) error {
	ref := fnplot.Reference[float64]{
		Field:     float64Field,
		Fn:        lambertW0[float64],
		Condition: condition.Derivative[float64](float64Field, lambertW0Prime),
	}
	p, err := fnplot.NewULPPlot[float32](ref, -0.3667, 10, ulpOptions()...)
	if err != nil {
		return err
	}
	if err := p.AddFn(lambertW0[float32], "steelblue"); err != nil {
		return err
	}
	return p.Write(path, writeOptions("ULP accuracy of float32 Lambert W₀ on [-0.3667, 10]")...)
}

// -------------------------------------------------------------------------
// float64 candidates against big.Float references

var bigField = precision.Big{}

func sqrtULP(path string) error {
	ref := fnplot.Reference[*big.Float]{
		Field: bigField,
		Fn:    func(x *big.Float) *big.Float { return bigField.New().Sqrt(x) },
	}
	p, err := fnplot.NewULPPlot[float64](ref, 0.25, 4, ulpOptions()...)
	if err != nil {
		return err
	}
	if err := p.AddFn(math.Sqrt, "steelblue"); err != nil {
		return err
	}
	if err := p.AddFn(func(x float64) float64 { return math.Exp(math.Log(x) / 2) }, "orange"); err != nil {
		return err
	}
	return p.Write(path, writeOptions("ULP accuracy of sqrt(x) and exp(log(x)/2)")...)
}

// septicCoeffs are the coefficients of (x-1)⁷, highest power first.
var septicCoeffs = []float64{1, -7, 21, -35, 35, -21, 7, -1}

func septicULP(path string) error {
	one := big.NewFloat(1)
	ref := fnplot.Reference[*big.Float]{
		Field: bigField,
		Fn: func(x *big.Float) *big.Float {
			d := bigField.New().Sub(x, one)
			r := bigField.New().Set(d)
			for i := 1; i < 7; i++ {
				r.Mul(r, d)
			}
			return r
		},
		Condition: func(_ func(*big.Float) *big.Float, x *big.Float) float64 {
			// cond((x-1)⁷, x) = |7x / (x-1)|
			v := bigField.Float64(x)
			return math.Abs(7 * v / (v - 1))
		},
	}
	p, err := fnplot.NewULPPlot[float64](ref, 0.9, 1.1, ulpOptions()...)
	if err != nil {
		return err
	}
	horner := func(x float64) float64 {
		r := 0.0
		for _, c := range septicCoeffs {
			r = r*x + c
		}
		return r
	}
	if err := p.AddFn(horner, "steelblue"); err != nil {
		return err
	}
	if err := p.AddFn(func(x float64) float64 { return math.Pow(x-1, 7) }, "orange"); err != nil {
		return err
	}
	return p.Write(path, writeOptions("ULP accuracy of (x-1)⁷ expanded and factored")...)
}
