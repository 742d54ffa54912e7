package poly

import (
	"errors"
	"testing"

	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/complexnum"
)

func nums(values ...complexnum.Number) []complexnum.Number { return values }

func re(v float64) complexnum.Number { return complexnum.Real(v) }

func equalCoeffs(a, b []complexnum.Number) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].ApproxEqual(b[i], 1e-9) {
			return false
		}
	}
	return true
}

func TestParsePolynomial(t *testing.T) {
	tests := []struct {
		input string
		want  []complexnum.Number
	}{
		{"x^2-1", nums(re(1), re(0), re(-1))},
		{"2x+3", nums(re(2), re(3))},
		{"x", nums(re(1), re(0))},
		{"-x^3 + x", nums(re(-1), re(0), re(1), re(0))},
		{"5", nums(re(5))},
		{"x^2 + x^2 - 4", nums(re(2), re(0), re(-4))},
		{"x^2 + (1+i)x - 2i", nums(re(1), complexnum.New(1, 1), complexnum.New(0, -2))},
		{"3*x^2 - 0.5x", nums(re(3), re(-0.5), re(0))},
		{" 2 x ^ 2 - 3 ", nums(re(2), re(0), re(-3))},
		{"ix + 1", nums(complexnum.I, re(1))},
		{"x^4 - 1", nums(re(1), re(0), re(0), re(0), re(-1))},
		{"1e-3x+1", nums(re(0.001), re(1))},
		{"2.5e2x^2 - 1E-1", nums(re(250), re(0), re(-0.1))},
		{"x^1000", append(nums(re(1)), make([]complexnum.Number, 1000)...)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePolynomial(tt.input)
			if err != nil {
				t.Fatalf("ParsePolynomial(%q): %v", tt.input, err)
			}
			if !equalCoeffs(got, tt.want) {
				t.Errorf("ParsePolynomial(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePolynomialErrors(t *testing.T) {
	tests := []string{
		"",
		"x^2 + abc",
		"x^2.5",
		"x^",
		"2xy",
		"(x+1",
		"x^2 + 3$",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePolynomial(input)
			var pe *algebra.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParsePolynomial(%q) error = %v, want *ParseError", input, err)
			}
		})
	}
}

func TestParseErrorNamesTerm(t *testing.T) {
	_, err := ParsePolynomial("x^2 + abc")
	var pe *algebra.ParseError
	if !errors.As(err, &pe) || pe.Term != "+abc" {
		t.Errorf("error = %#v, want term +abc", err)
	}
}

func TestParsePolynomialDegreeLimit(t *testing.T) {
	for _, input := range []string{"x^99999999999999999+1", "x^1001", "x^1000000000 - x"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePolynomial(input)
			var pe *algebra.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("ParsePolynomial(%q) error = %v, want *ParseError", input, err)
			}
			if pe.Reason != "degree too large" {
				t.Errorf("Reason = %q", pe.Reason)
			}
		})
	}
}

func TestParseComplexLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  complexnum.Number
	}{
		{"3", re(3)},
		{"-2.5", re(-2.5)},
		{"i", complexnum.I},
		{"-i", complexnum.New(0, -1)},
		{"3+2i", complexnum.New(3, 2)},
		{"3 - 2i", complexnum.New(3, -2)},
		{"-1.5-i", complexnum.New(-1.5, -1)},
		{"2i", complexnum.New(0, 2)},
		{"(1+i)/2", complexnum.New(0.5, 0.5)},
		{"sqrt(-9)", complexnum.New(0, 3)},
		{"5.", re(5)},
		{"1e-3+2i", complexnum.New(0.001, 2)},
		{"2.5e2", re(250)},
		{"-1E+1i", complexnum.New(0, -10)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComplexLiteral(tt.input)
			if err != nil {
				t.Fatalf("ParseComplexLiteral(%q): %v", tt.input, err)
			}
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("ParseComplexLiteral(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "abc", "3+", "1/0"} {
		if _, err := ParseComplexLiteral(bad); err == nil {
			t.Errorf("ParseComplexLiteral(%q) should fail", bad)
		}
	}
}

func TestParseComplexHeuristic(t *testing.T) {
	tests := []struct {
		input string
		want  complexnum.Number
	}{
		{"4", re(4)},
		{"3+2i", complexnum.New(3, 2)},
		{"3-i", complexnum.New(3, -1)},
		{"-2i", complexnum.New(0, -2)},
		{"i", complexnum.I},
		{"-i", complexnum.New(0, -1)},
		{"-1+i", complexnum.New(-1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseComplexHeuristic(tt.input)
			if err != nil {
				t.Fatalf("ParseComplexHeuristic(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseComplexHeuristic(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
	if _, err := ParseComplexHeuristic("(1+i)*2"); err == nil {
		t.Error("heuristic should reject nested expressions")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	values := []complexnum.Number{
		re(2), re(-0.25), complexnum.New(3, 2), complexnum.New(1, -1.5),
		complexnum.New(0, -2), complexnum.New(-4.125, 0.0625),
	}
	for _, v := range values {
		text := v.String()
		got, err := ParseComplexLiteral(text)
		if err != nil {
			t.Fatalf("ParseComplexLiteral(%q): %v", text, err)
		}
		if !got.ApproxEqual(v, 1e-8) {
			t.Errorf("round trip %v -> %q -> %v", v, text, got)
		}
	}
}

func TestSyntheticDivide(t *testing.T) {
	tests := []struct {
		name      string
		coeffs    []complexnum.Number
		root      complexnum.Number
		result    []complexnum.Number
		exact     bool
		remainder complexnum.Number
	}{
		{"x^2-1 by x-1", nums(re(1), re(0), re(-1)), re(1), nums(re(1), re(1), re(0)), true, re(0)},
		{"x^2-3x+2 by x-1", nums(re(1), re(-3), re(2)), re(1), nums(re(1), re(-2), re(0)), true, re(0)},
		{"x^2+1 by x-i", nums(re(1), re(0), re(1)), complexnum.I, nums(re(1), complexnum.I, re(0)), true, re(0)},
		{"x^2+1 by x-2", nums(re(1), re(0), re(1)), re(2), nums(re(1), re(2), re(5)), false, re(5)},
		{"constant", nums(re(7)), re(3), nums(re(7)), false, re(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := SyntheticDivide(tt.coeffs, tt.root)
			if err != nil {
				t.Fatalf("SyntheticDivide: %v", err)
			}
			if !equalCoeffs(res.QuotientAndRemainder, tt.result) {
				t.Errorf("QuotientAndRemainder = %v, want %v", res.QuotientAndRemainder, tt.result)
			}
			if res.IsExact() != tt.exact {
				t.Errorf("IsExact() = %v, want %v", res.IsExact(), tt.exact)
			}
			if !res.Remainder().ApproxEqual(tt.remainder, 1e-12) {
				t.Errorf("Remainder() = %v, want %v", res.Remainder(), tt.remainder)
			}
			if len(res.Quotient()) != len(tt.coeffs)-1 {
				t.Errorf("len(Quotient()) = %d", len(res.Quotient()))
			}
			if !res.Remainder().ApproxEqual(Evaluate(tt.coeffs, tt.root), 1e-9) {
				t.Errorf("remainder %v differs from P(root) %v", res.Remainder(), Evaluate(tt.coeffs, tt.root))
			}
		})
	}
}

func TestSyntheticDivideInvariants(t *testing.T) {
	coeffs := nums(re(2), complexnum.New(-1, 3), re(0), complexnum.New(4, -4))
	root := complexnum.New(0.5, -2)
	orig := append([]complexnum.Number(nil), coeffs...)

	res, err := SyntheticDivide(coeffs, root)
	if err != nil {
		t.Fatal(err)
	}
	if !equalCoeffs(coeffs, orig) {
		t.Error("input coefficients were modified")
	}
	if res.QuotientAndRemainder[0] != coeffs[0] {
		t.Error("first result must equal the leading coefficient")
	}
	for i := 1; i < len(coeffs); i++ {
		if res.Multipliers[i] != res.QuotientAndRemainder[i-1].Mul(root) {
			t.Errorf("multiplier %d mismatch", i)
		}
		if res.QuotientAndRemainder[i] != coeffs[i].Add(res.Multipliers[i]) {
			t.Errorf("result %d mismatch", i)
		}
	}

	again, _ := SyntheticDivide(coeffs, root)
	if !equalCoeffs(again.QuotientAndRemainder, res.QuotientAndRemainder) {
		t.Error("division is not deterministic")
	}
}

func TestSyntheticDivideEmpty(t *testing.T) {
	if _, err := SyntheticDivide(nil, complexnum.One); !errors.Is(err, algebra.ErrEmptyPolynomial) {
		t.Errorf("error = %v, want ErrEmptyPolynomial", err)
	}
}

func TestFormatPolynomial(t *testing.T) {
	tests := []struct {
		coeffs []complexnum.Number
		want   string
	}{
		{nums(re(1), complexnum.New(1, 2), re(3)), "x^2 + (1 + 2i)x + 3"},
		{nums(re(1), re(-2)), "x + (-2)"},
		{nums(re(-1), re(0), re(4)), "-x^2 + 4"},
		{nums(re(0), re(0)), "0"},
		{nil, "0"},
		{nums(re(2.5), re(0)), "2.5x"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatPolynomial(tt.coeffs, 4); got != tt.want {
				t.Errorf("FormatPolynomial = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRowsAndQuotient(t *testing.T) {
	res, err := SyntheticDivide(nums(re(1), re(-3), re(2)), re(1))
	if err != nil {
		t.Fatal(err)
	}
	c, m, r := res.Rows(4)
	if c[1] != "-3" || m[0] != "" || m[1] != "1" || r[2] != "0" {
		t.Errorf("Rows = %v %v %v", c, m, r)
	}
	if got := res.FormatQuotient(4); got != "x + (-2)" {
		t.Errorf("FormatQuotient = %q", got)
	}
}
