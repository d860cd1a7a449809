package fnplot

import (
	crand "crypto/rand"
	"encoding/binary"
	"slices"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vdobler/fnplot/precision"
)

// newSource returns a random number generator seeded with seed or, if not
// seeded, from the system's entropy source.
func newSource(seed uint64, seeded bool) *rand.Rand {
	if !seeded {
		var b [8]byte
		if _, err := crand.Read(b[:]); err == nil {
			seed = binary.LittleEndian.Uint64(b[:])
		} else {
			Warnf("No system entropy (%s), seeding from clock", err)
			seed = uint64(time.Now().UnixNano())
		}
	}
	return rand.New(rand.NewSource(seed))
}

// abscissas returns n sorted abscissas in [a,b] in both precisions. The
// coarse abscissas are the precise ones rounded to C; rounding is monotone,
// so both are sorted.
func abscissas[C precision.Coarse, P any](field precision.Field[P], sampling Sampling, r *rand.Rand, a, b C, n int) ([]P, []C) {
	precise := make([]P, n)
	coarse := make([]C, n)

	switch sampling {
	case Perturbed:
		for i := range precise {
			precise[i] = field.Uniform(r, float64(a), float64(b))
		}
		slices.SortFunc(precise, field.Cmp)
		for i, p := range precise {
			coarse[i] = precision.Narrow[C](field, p)
		}
		return precise, coarse

	case Unperturbed:
		u := distuv.Uniform{Min: float64(a), Max: float64(b), Src: r}
		for i := range coarse {
			coarse[i] = C(u.Rand())
		}
		slices.Sort(coarse)

	case Even:
		dom := Interval{float64(a), float64(b)}
		for i := range coarse {
			coarse[i] = C(dom.At(i, n-1))
		}
	}

	for i, c := range coarse {
		precise[i] = field.FromFloat64(float64(c))
	}
	return precise, coarse
}
