package precision

import (
	"math"
	"math/big"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Float64 is the Field of native float64 values. It serves as reference
// precision for float32 candidates.
type Float64 struct{}

var _ Field[float64] = Float64{}

func (Float64) FromFloat64(x float64) float64 { return x }
func (Float64) Float64(x float64) float64     { return x }
func (Float64) Float32(x float64) float32     { return float32(x) }
func (Float64) Sub(x, y float64) float64      { return x - y }
func (Float64) Abs(x float64) float64         { return math.Abs(x) }
func (Float64) Bits() uint                    { return 53 }

func (Float64) Uniform(r *rand.Rand, a, b float64) float64 {
	u := distuv.Uniform{Min: a, Max: b, Src: r}
	return u.Rand()
}

func (Float64) Cmp(x, y float64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Sign returns 0 for zero and NaN.
func (Float64) Sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Big is the Field of *big.Float values with Prec mantissa bits. A zero
// Prec means 113 bits, the precision of IEEE quadruple floats.
//
// Values returned by a Big field are never modified afterwards, so
// reference functions may keep or share them.
type Big struct {
	Prec uint
}

var _ Field[*big.Float] = Big{}

// DefaultBigPrec is the precision used by a Big field with zero Prec.
const DefaultBigPrec = 113

func (f Big) Bits() uint {
	if f.Prec == 0 {
		return DefaultBigPrec
	}
	return f.Prec
}

// New returns a zero value with the precision of f.
func (f Big) New() *big.Float {
	return new(big.Float).SetPrec(f.Bits())
}

// FromFloat64 panics for NaN, as big.Float cannot represent it.
func (f Big) FromFloat64(x float64) *big.Float {
	return f.New().SetFloat64(x)
}

func (f Big) Float64(x *big.Float) float64 {
	v, _ := x.Float64()
	return v
}

func (f Big) Float32(x *big.Float) float32 {
	v, _ := x.Float32()
	return v
}

func (f Big) Sub(x, y *big.Float) *big.Float { return f.New().Sub(x, y) }
func (f Big) Abs(x *big.Float) *big.Float    { return f.New().Abs(x) }
func (f Big) Cmp(x, y *big.Float) int        { return x.Cmp(y) }
func (f Big) Sign(x *big.Float) int          { return x.Sign() }

// Uniform builds a uniform variate in [0,1) from enough random words to fill
// the mantissa and maps it affinely onto [a,b].
func (f Big) Uniform(r *rand.Rand, a, b float64) *big.Float {
	prec := f.Bits()
	words := int(prec+63) / 64
	mant := new(big.Int)
	for i := 0; i < words; i++ {
		mant.Lsh(mant, 64)
		mant.Or(mant, new(big.Int).SetUint64(r.Uint64()))
	}
	u := f.New().SetInt(mant)
	u.SetMantExp(u, -64*words)

	lo, hi := f.FromFloat64(a), f.FromFloat64(b)
	x := f.New().Sub(hi, lo)
	x.Mul(x, u)
	x.Add(x, lo)
	if x.Cmp(hi) > 0 {
		x.Set(hi)
	}
	return x
}
