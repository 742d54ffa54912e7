// Package classify sorts real numbers into ℕ, ℤ, ℚ and ℝ−ℚ and places
// them on a bounded number line.
package classify

import (
	"fmt"
	"math"

	"github.com/algebralab/algebralab/internal/algebra/expr"
)

// Class is the smallest number set a value belongs to.
type Class int

const (
	Natural Class = iota
	Integer
	Rational
	Irrational
)

func (c Class) String() string {
	switch c {
	case Natural:
		return "natural"
	case Integer:
		return "integer"
	case Rational:
		return "rational"
	case Irrational:
		return "irrational"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Symbol returns the set symbol, ℕ ℤ ℚ or ℝ−ℚ.
func (c Class) Symbol() string {
	switch c {
	case Natural:
		return "ℕ"
	case Integer:
		return "ℤ"
	case Rational:
		return "ℚ"
	}
	return "ℝ−ℚ"
}

// Constant is a named irrational the classifier knows.
type Constant struct {
	Symbol string
	Name   string
	Value  float64
}

// Constants lists the named values accepted in input, in display order.
func Constants() []Constant {
	return []Constant{
		{"π", "pi", math.Pi},
		{"e", "Euler's number", math.E},
		{"φ", "golden ratio", expr.Phi},
		{"τ", "tau", 2 * math.Pi},
		{"ln2", "natural log of 2", math.Ln2},
		{"ln10", "natural log of 10", math.Ln10},
		{"√2", "square root of 2", math.Sqrt2},
		{"√3", "square root of 3", math.Sqrt(3)},
		{"√5", "square root of 5", math.Sqrt(5)},
	}
}

// irrational functions whose result is irrational for most rational arguments
var transcendental = map[string]bool{
	"sqrt": true, "exp": true, "ln": true, "log": true,
	"sin": true, "cos": true, "tan": true,
}

const maxDenominator = 1000

// Result is a classified value.
type Result struct {
	Input string
	Value float64
	Class Class
}

// Classify evaluates input ("3", "-7/2", "√2", "pi/2", "sqrt(9/4)") and
// classifies the value.
func Classify(input string) (Result, error) {
	n, err := expr.Parse(input)
	if err != nil {
		return Result{}, err
	}
	v, err := expr.EvalReal(n, nil)
	if err != nil {
		return Result{}, err
	}
	return Result{Input: input, Value: v, Class: ClassOf(v, mayBeIrrational(n))}, nil
}

// ClassOf classifies v. A non-integral value is irrational when symbolic
// is set and no fraction with denominator up to 1000 matches it; a plain
// decimal literal is always rational.
func ClassOf(v float64, symbolic bool) Class {
	if isIntegral(v) {
		if math.Round(v) > 0 {
			return Natural
		}
		return Integer
	}
	if symbolic && !nearFraction(v) {
		return Irrational
	}
	return Rational
}

func isIntegral(v float64) bool {
	return math.Abs(v-math.Round(v)) < 1e-9
}

func nearFraction(v float64) bool {
	for d := 2; d <= maxDenominator; d++ {
		x := v * float64(d)
		if math.Abs(x-math.Round(x)) < 1e-9*float64(d) {
			return true
		}
	}
	return false
}

// mayBeIrrational reports whether the tree involves an irrational constant,
// a root or a transcendental function, or a non-integral power.
func mayBeIrrational(n expr.Node) bool {
	switch v := n.(type) {
	case expr.Var:
		return expr.IsConstant(v.Name)
	case expr.Neg:
		return mayBeIrrational(v.X)
	case expr.Call:
		return transcendental[v.Func] || mayBeIrrational(v.Arg)
	case expr.Binary:
		if v.Op == '^' {
			if num, ok := v.R.(expr.Num); !ok || !isIntegral(num.Value) {
				return true
			}
		}
		return mayBeIrrational(v.L) || mayBeIrrational(v.R)
	}
	return false
}
