// Package products expands the notable products taught in a first algebra
// course, either with numbers (every step evaluated and checked against the
// unexpanded product) or with monomials such as 3x and 5y.
package products

import (
	"fmt"
	"strings"

	"github.com/algebralab/algebralab/internal/algebra"
)

// Kind identifies a notable product.
type Kind int

const (
	SquareSum  Kind = iota // (a + b)²
	SquareDiff             // (a - b)²
	CubeSum                // (a + b)³
	CubeDiff               // (a - b)³
	CommonTerm             // (x + a)(x + b)
	Conjugates             // (a + b)(a - b)
)

var kindNames = map[Kind]string{
	SquareSum:  "square-sum",
	SquareDiff: "square-diff",
	CubeSum:    "cube-sum",
	CubeDiff:   "cube-diff",
	CommonTerm: "common-term",
	Conjugates: "conjugates",
}

var formulas = map[Kind]string{
	SquareSum:  "(a + b)² = a² + 2ab + b²",
	SquareDiff: "(a - b)² = a² - 2ab + b²",
	CubeSum:    "(a + b)³ = a³ + 3a²b + 3ab² + b³",
	CubeDiff:   "(a - b)³ = a³ - 3a²b + 3ab² - b³",
	CommonTerm: "(x + a)(x + b) = x² + (a + b)x + ab",
	Conjugates: "(a + b)(a - b) = a² - b²",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Formula returns the identity the product expands by.
func (k Kind) Formula() string { return formulas[k] }

// Kinds lists all products in display order.
func Kinds() []Kind {
	return []Kind{SquareSum, SquareDiff, CubeSum, CubeDiff, CommonTerm, Conjugates}
}

// ParseKind accepts the names returned by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown product %q", s)
}

// Mode selects numeric or algebraic expansion.
type Mode int

const (
	Numeric Mode = iota
	Algebraic
)

func (m Mode) String() string {
	if m == Algebraic {
		return "algebraic"
	}
	return "numeric"
}

// ParseMode accepts "numeric" and "algebraic"; empty means numeric.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "numeric":
		return Numeric, nil
	case "algebraic":
		return Algebraic, nil
	}
	return Numeric, fmt.Errorf("unknown mode %q", s)
}

// Result is an expanded product.
type Result struct {
	Kind       Kind
	Mode       Mode
	Expression string   // the product as entered, (3 + 2)²
	Formula    string   // identity used
	Steps      []string // worked steps
	Expanded   string   // expanded form, 9 + 12 + 4 or 9x^2 + 30xy + 25y^2
	Value      string   // numeric value with four decimals, "" in algebraic mode
	Direct     string   // value of the unexpanded product, or the expansion again
	Verified   bool     // expansion and direct product agree
}

// Calculate expands the product of the given kind for operands a and b.
func Calculate(kind Kind, mode Mode, a, b string) (Result, error) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return Result{}, algebra.NewParseError(a+", "+b, "", "both operands are required")
	}
	if _, ok := kindNames[kind]; !ok {
		return Result{}, fmt.Errorf("unknown product %v", kind)
	}
	if mode == Algebraic {
		return ExpandAlgebraic(kind, a, b), nil
	}
	return CalculateNumeric(kind, a, b)
}
