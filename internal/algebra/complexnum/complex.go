// Package complexnum implements the immutable complex number value used by the
// polynomial and division engines, and its canonical text form.
package complexnum

import (
	"math"
	"math/cmplx"
	"strconv"

	"github.com/algebralab/algebralab/internal/algebra"
)

// Epsilon is the tolerance below which a component counts as zero.
const Epsilon = 1e-10

// DefaultPrecision is the number of decimals used by String.
const DefaultPrecision = 4

// Number is a complex number. The zero value is 0.
type Number struct {
	Re float64
	Im float64
}

var (
	Zero = Number{}
	One  = Number{Re: 1}
	I    = Number{Im: 1}
)

// New returns re + im·i.
func New(re, im float64) Number { return Number{Re: re, Im: im} }

// Real returns a number with no imaginary part.
func Real(re float64) Number { return Number{Re: re} }

// FromComplex128 converts a builtin complex value.
func FromComplex128(c complex128) Number { return Number{Re: real(c), Im: imag(c)} }

// FromPolar returns modulus·(cos θ + i·sin θ).
func FromPolar(modulus, angle float64) Number {
	return FromComplex128(cmplx.Rect(modulus, angle))
}

// Complex128 converts to the builtin complex type.
func (n Number) Complex128() complex128 { return complex(n.Re, n.Im) }

func (n Number) Add(o Number) Number { return Number{Re: n.Re + o.Re, Im: n.Im + o.Im} }

func (n Number) Sub(o Number) Number { return Number{Re: n.Re - o.Re, Im: n.Im - o.Im} }

func (n Number) Mul(o Number) Number {
	return Number{
		Re: n.Re*o.Re - n.Im*o.Im,
		Im: n.Re*o.Im + n.Im*o.Re,
	}
}

// Div returns n/o, or algebra.ErrDivisionByZero when o is zero.
func (n Number) Div(o Number) (Number, error) {
	d := o.Re*o.Re + o.Im*o.Im
	if d == 0 {
		return Zero, algebra.ErrDivisionByZero
	}
	return Number{
		Re: (n.Re*o.Re + n.Im*o.Im) / d,
		Im: (n.Im*o.Re - n.Re*o.Im) / d,
	}, nil
}

func (n Number) Neg() Number { return Number{Re: -n.Re, Im: -n.Im} }

func (n Number) Conj() Number { return Number{Re: n.Re, Im: -n.Im} }

// Abs returns the modulus.
func (n Number) Abs() float64 { return math.Hypot(n.Re, n.Im) }

// Arg returns the argument in (-π, π].
func (n Number) Arg() float64 { return math.Atan2(n.Im, n.Re) }

// IsReal reports whether the imaginary part is negligible.
func (n Number) IsReal() bool { return math.Abs(n.Im) < Epsilon }

// IsZero reports whether both parts are negligible.
func (n Number) IsZero() bool { return math.Abs(n.Re) < Epsilon && math.Abs(n.Im) < Epsilon }

// ApproxEqual compares component-wise within eps.
func (n Number) ApproxEqual(o Number, eps float64) bool {
	return math.Abs(n.Re-o.Re) <= eps && math.Abs(n.Im-o.Im) <= eps
}

// String formats with DefaultPrecision.
func (n Number) String() string { return n.Format(DefaultPrecision) }

// Format renders n with at most precision decimals and trailing zeros trimmed:
// "2", "0.3333", "3 + 2i", "1 - 1.5i", "-2i".
func (n Number) Format(precision int) string {
	if n.IsReal() {
		return FormatReal(n.Re, precision)
	}
	im := FormatReal(math.Abs(n.Im), precision) + "i"
	if math.Abs(n.Re) < Epsilon {
		if n.Im < 0 {
			return "-" + im
		}
		return im
	}
	sign := " + "
	if n.Im < 0 {
		sign = " - "
	}
	return FormatReal(n.Re, precision) + sign + im
}

// FormatReal rounds x to precision decimals and trims trailing zeros.
// Negative zero prints as "0".
func FormatReal(x float64, precision int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	scale := math.Pow(10, float64(precision))
	r := math.Round(x*scale) / scale
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
