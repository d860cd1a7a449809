package fnplot

import "math"

// Span is the half open index range [Start, End) of a run of valid samples.
type Span struct {
	Start, End int
}

// Segments splits 0..n-1 into the maximal runs of indices for which valid
// holds. Invalid indices never belong to a span, so a polyline drawn per
// span never bridges a gap.
func Segments(n int, valid func(i int) bool) []Span {
	var spans []Span
	i := 0
	for i < n {
		for i < n && !valid(i) {
			i++
		}
		if i == n {
			break
		}
		start := i
		for i < n && valid(i) {
			i++
		}
		spans = append(spans, Span{start, i})
	}
	return spans
}

// clipped reports whether clipping at c is active.
func clipped(c float64) bool {
	return c > 0 && !math.IsInf(c, 1)
}

// envelopeValid reports whether conditioning value v is drawable under clip.
func envelopeValid(v, clip float64) bool {
	if !finite(v) {
		return false
	}
	return !clipped(clip) || v <= clip
}

// EnvelopePaths returns the polylines through (x[j], sign*cond[j]) for the runs
// of conditioning values which are defined and, if clip > 0, not above
// clip. The upper (sign = +1) and lower (sign = -1) envelope share their
// gaps.
func EnvelopePaths(x, cond []float64, clip, sign float64, t Transform) [][]Point {
	spans := Segments(len(cond), func(j int) bool { return envelopeValid(cond[j], clip) })
	paths := make([][]Point, 0, len(spans))
	for _, sp := range spans {
		path := make([]Point, 0, sp.End-sp.Start)
		for j := sp.Start; j < sp.End; j++ {
			path = append(path, t.Map(x[j], sign*cond[j]))
		}
		paths = append(paths, path)
	}
	return paths
}
