// Package converter converts complex numbers between cartesian, polar and
// exponential form and formats the parts the way a worked exercise shows
// them: angles as multiples of pi, moduli as √n where they are.
package converter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/algebralab/algebralab/internal/algebra/expr"
)

const tolerance = 1e-8

// Form names one of the three representations.
type Form int

const (
	Cartesian Form = iota
	Polar
	Exponential
)

func (f Form) String() string {
	switch f {
	case Cartesian:
		return "cartesian"
	case Polar:
		return "polar"
	case Exponential:
		return "exponential"
	}
	return "unknown"
}

// ParseForm accepts the names returned by Form.String and their initials.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cartesian", "c", "":
		return Cartesian, nil
	case "polar", "p":
		return Polar, nil
	case "exponential", "exp", "e":
		return Exponential, nil
	}
	return Cartesian, fmt.Errorf("unknown form %q", s)
}

// Representation holds one complex number in all three forms.
type Representation struct {
	Real    float64
	Imag    float64
	Modulus float64
	Angle   float64 // radians in (-π, π]

	RealText    string
	ImagText    string
	ModulusText string
	AngleText   string

	Cartesian   string // 1 + √3i
	Polar       string // 2(cos(pi/3) + i sin(pi/3))
	Exponential string // 2 e^(i pi/3)
}

// FromCartesian builds the representation of re + im·i.
func FromCartesian(re, im float64) Representation {
	return build(re, im, math.Hypot(re, im), math.Atan2(im, re))
}

// FromPolar builds the representation of modulus·(cos θ + i sin θ). A
// negative modulus is folded into the angle.
func FromPolar(modulus, angle float64) Representation {
	if modulus < 0 {
		modulus, angle = -modulus, angle+math.Pi
	}
	angle = NormalizeAngle(angle)
	return build(modulus*math.Cos(angle), modulus*math.Sin(angle), modulus, angle)
}

// FromExponential is FromPolar; r·e^(iθ) and r(cos θ + i sin θ) are the same number.
func FromExponential(modulus, angle float64) Representation {
	return FromPolar(modulus, angle)
}

// Convert parses the two parts of the given form and converts them. Parts
// are restricted expressions such as "sqrt(3)" or "pi/4"; an empty part
// reads as 0.
func Convert(from Form, first, second string) (Representation, error) {
	a, err := ParseValue(first)
	if err != nil {
		return Representation{}, err
	}
	b, err := ParseValue(second)
	if err != nil {
		return Representation{}, err
	}
	switch from {
	case Polar:
		return FromPolar(a, b), nil
	case Exponential:
		return FromExponential(a, b), nil
	default:
		return FromCartesian(a, b), nil
	}
}

// ParseValue evaluates a real-valued part.
func ParseValue(text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, nil
	}
	return expr.EvaluateReal(text, nil)
}

func build(re, im, modulus, angle float64) Representation {
	if modulus < 1e-10 {
		angle = 0
	}
	r := Representation{
		Real:        re,
		Imag:        im,
		Modulus:     modulus,
		Angle:       angle,
		RealText:    FormatNumber(re),
		ImagText:    FormatNumber(im),
		ModulusText: FormatNumber(modulus),
		AngleText:   AngleToPi(angle),
	}
	if im >= 0 || math.Abs(im) < 1e-10 {
		r.Cartesian = r.RealText + " + " + FormatNumber(math.Abs(im)) + "i"
	} else {
		r.Cartesian = r.RealText + " - " + FormatNumber(math.Abs(im)) + "i"
	}
	r.Polar = fmt.Sprintf("%s(cos(%s) + i sin(%s))", r.ModulusText, r.AngleText, r.AngleText)
	r.Exponential = fmt.Sprintf("%s e^(i %s)", r.ModulusText, r.AngleText)
	return r
}

// NormalizeAngle maps an angle to (-π, π].
func NormalizeAngle(angle float64) float64 {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return angle
	}
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	if angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

var piDenominators = []int{2, 3, 4, 6}

// AngleToPi writes an angle in radians as a multiple of pi when it is one
// with denominator 1, 2, 3, 4 or 6 (pi/2, -3*pi/4, 2*pi), and with four
// decimals otherwise.
func AngleToPi(angle float64) string {
	if math.Abs(angle) < tolerance {
		return "0"
	}
	ratio := angle / math.Pi
	if n := math.Round(ratio); math.Abs(ratio-n) < tolerance {
		return piTerm(int(n), 1)
	}
	for _, d := range piDenominators {
		num := ratio * float64(d)
		if n := math.Round(num); math.Abs(num-n) < tolerance {
			return piTerm(int(n), d)
		}
	}
	return strconv.FormatFloat(angle, 'f', 4, 64)
}

func piTerm(num, den int) string {
	var s string
	switch num {
	case 1:
		s = "pi"
	case -1:
		s = "-pi"
	default:
		s = strconv.Itoa(num) + "*pi"
	}
	if den != 1 {
		s += "/" + strconv.Itoa(den)
	}
	return s
}

var roots = []int{2, 3, 5, 7}

// FormatNumber prints integers bare, √2 √3 √5 √7 with the radical sign and
// everything else with at most four decimals.
func FormatNumber(v float64) string {
	if math.Abs(v) < 1e-10 {
		return "0"
	}
	for _, s := range roots {
		if math.Abs(math.Abs(v)-math.Sqrt(float64(s))) < tolerance {
			if v < 0 {
				return "-√" + strconv.Itoa(s)
			}
			return "√" + strconv.Itoa(s)
		}
	}
	if n := math.Round(v); math.Abs(v-n) < tolerance {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
