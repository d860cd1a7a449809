// Package fnplot draws two kinds of diagnostic plots of numerical
// functions as vector graphics.
//
// # Graph Plots
//
// A Graph samples one or more functions of float64 at evenly spaced
// abscissas over a common domain and connects the samples by polylines:
//
//	g, err := fnplot.NewGraph(0, 10, "Bessel", "bessel.svg")
//	g.AddFn(math.J0, "steelblue")
//	g.AddFn(math.J1, "orange")
//	err = g.Write()
//
// Samples which are NaN or infinite break the polyline instead of being
// connected across.
//
// # ULP Plots
//
// A ULPPlot measures the accuracy of implementations working in float32 or
// float64 against a reference computed in a wider precision P. The
// reference precision is described by a precision.Field, e.g.
// precision.Float64 for float32 candidates or precision.Big for float64
// candidates:
//
//	ref := fnplot.Reference[float64]{Field: precision.Float64{}, Fn: math.Exp}
//	u, err := fnplot.NewULPPlot[float32](ref, 0, 10, fnplot.Seed(1))
//	u.AddFn(myExp32, "steelblue")
//	err = u.Write("exp.svg", fnplot.Clip(5), fnplot.Title("exp"))
//
// Every candidate error is shown as a point in units of the last place of
// the candidate's type. The envelope ±cond(f,x), floored at half an ulp,
// shows the accuracy attainable given the conditioning of f; it has a gap
// wherever the reference is zero and the condition number undefined.
//
// # Lifecycle
//
// Plots collect data until they are written, either to a file by Write or
// to an io.Writer by Render. Writing happens exactly once: afterwards
// AddFn, Write and Render fail with ErrState. Invalid configurations fail
// with ErrDomain before any output is produced.
//
// The output format (svg, pdf, eps, png, jpg, tif) is chosen by the file
// extension; the drawing is done by the gonum vg backends.
package fnplot
