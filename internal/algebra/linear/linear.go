// Package linear solves single-variable linear equations such as
// "3x + 5 = 8" or "2(x - 1) = x/2 + 4".
//
// An equation lhs = rhs is rewritten as (lhs) - (rhs), reduced to the
// normal form a*x + b, printed, and the coefficients are read back from that
// text. The root is -b/a.
package linear

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/complexnum"
	"github.com/algebralab/algebralab/internal/algebra/expr"
	"github.com/algebralab/algebralab/internal/algebra/terms"
)

// DefaultVariable is the unknown solved for by Solve and ExtractCoefficients.
const DefaultVariable = "x"

// normalFormDigits is the precision of coefficients in the printed normal form.
const normalFormDigits = 12

// Coefficients of a·x + b = 0.
type Coefficients struct {
	A float64
	B float64
}

// Root returns -B/A.
func (c Coefficients) Root() float64 {
	return -c.B / c.A
}

// Solution is the outcome of Solve.
type Solution struct {
	Equation     string
	Variable     string
	Simplified   string // normal form, "= 0" implied
	Coefficients Coefficients
	X            float64
}

// FormatX prints integral roots bare and others with four decimals. Roots
// within 1e-9 of an integer, relative for large roots, count as integral.
func (s Solution) FormatX() string {
	r := math.Round(s.X)
	if math.Abs(s.X-r) < 1e-9*math.Max(1, math.Abs(s.X)) {
		if r == 0 {
			r = 0
		}
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
	return strconv.FormatFloat(s.X, 'f', 4, 64)
}

func (s Solution) String() string {
	return s.Variable + " = " + s.FormatX()
}

// coefficientPattern is an optional signed decimal with optional exponent.
const coefficientPattern = `([+-]?\d*\.?\d*(?:[eE][+-]?\d+)?)\*?`

var defaultPattern = regexp.MustCompile(coefficientPattern + DefaultVariable)

func termPattern(variable string) *regexp.Regexp {
	if variable == DefaultVariable {
		return defaultPattern
	}
	return regexp.MustCompile(coefficientPattern + regexp.QuoteMeta(variable))
}

// ExtractCoefficients reads a and b from a simplified linear expression in x
// such as "3*x - 3" or "-x+2.5".
func ExtractCoefficients(simplified string) (Coefficients, error) {
	return ExtractFor(simplified, DefaultVariable)
}

// ExtractFor is ExtractCoefficients for another variable name. Every
// occurrence of [sign][number][*]variable adds its coefficient to a (an
// empty or '+' coefficient counts 1, '-' counts -1). What remains is
// evaluated as b; a remainder that does not evaluate counts as 0.
// a = 0 fails with an *algebra.EquationError: "no solution" when b ≠ 0,
// "infinite solutions" when b = 0.
func ExtractFor(simplified, variable string) (Coefficients, error) {
	s := terms.StripSpace(simplified)
	pattern := termPattern(variable)

	var c Coefficients
	for _, m := range pattern.FindAllStringSubmatch(s, -1) {
		coef := m[1]
		switch coef {
		case "", "+":
			coef = "1"
		case "-":
			coef = "-1"
		}
		v, err := strconv.ParseFloat(coef, 64)
		if err != nil {
			return Coefficients{}, algebra.NewParseError(simplified, m[0], "invalid coefficient")
		}
		c.A += v
	}

	if rest := pattern.ReplaceAllString(s, ""); rest != "" {
		if b, err := expr.EvaluateReal(rest, nil); err == nil {
			c.B = b
		}
	}

	if c.A == 0 {
		kind := algebra.ErrNoSolution
		if c.B == 0 {
			kind = algebra.ErrInfiniteSolutions
		}
		return c, &algebra.EquationError{Equation: simplified, Kind: kind}
	}
	return c, nil
}

// Simplify rewrites lhs = rhs into the normal form "a*x + b" of
// (lhs) - (rhs). Zero parts are omitted; 0 = 0 prints as "0".
func Simplify(equation string) (string, error) {
	return SimplifyFor(equation, DefaultVariable)
}

// SimplifyFor is Simplify for another variable name.
func SimplifyFor(equation, variable string) (string, error) {
	lhs, rhs, err := terms.SplitEquation(equation)
	if err != nil {
		return "", err
	}
	n, err := expr.Parse("(" + lhs + ") - (" + rhs + ")")
	if err != nil {
		return "", err
	}
	a, b, err := expr.LinearCoefficients(n, variable)
	if err != nil {
		if eqErr, ok := err.(*algebra.EquationError); ok {
			eqErr.Equation = equation
		}
		return "", err
	}
	return NormalForm(a, b, variable), nil
}

// NormalForm prints a·variable + b: "3*x - 3", "-x", "0.5*x + 2", "7", "0".
func NormalForm(a, b float64, variable string) string {
	var sb strings.Builder
	switch {
	case a == 1:
		sb.WriteString(variable)
	case a == -1:
		sb.WriteString("-" + variable)
	case a != 0:
		sb.WriteString(formatCoefficient(a) + "*" + variable)
	}

	bs := formatCoefficient(math.Abs(b))
	switch {
	case bs == "0":
		if sb.Len() == 0 {
			return "0"
		}
	case sb.Len() == 0:
		if b < 0 {
			return "-" + bs
		}
		return bs
	case b < 0:
		sb.WriteString(" - " + bs)
	default:
		sb.WriteString(" + " + bs)
	}
	return sb.String()
}

// formatCoefficient rounds to normalFormDigits decimals. Non-zero values
// below 1e-8, which that rounding would truncate or zero, keep all their
// digits in exponent notation.
func formatCoefficient(v float64) string {
	if v != 0 && math.Abs(v) < 1e-8 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return complexnum.FormatReal(v, normalFormDigits)
}

// Solve solves a linear equation in x.
func Solve(equation string) (Solution, error) {
	return SolveFor(equation, DefaultVariable)
}

// SolveFor solves a linear equation in variable.
func SolveFor(equation, variable string) (Solution, error) {
	simplified, err := SimplifyFor(equation, variable)
	if err != nil {
		return Solution{}, err
	}
	c, err := ExtractFor(simplified, variable)
	if err != nil {
		if eqErr, ok := err.(*algebra.EquationError); ok {
			eqErr.Equation = equation
		}
		return Solution{}, err
	}
	return Solution{
		Equation:     equation,
		Variable:     variable,
		Simplified:   simplified,
		Coefficients: c,
		X:            c.Root(),
	}, nil
}
