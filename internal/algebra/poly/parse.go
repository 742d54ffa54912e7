package poly

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/complexnum"
	"github.com/algebralab/algebralab/internal/algebra/terms"
)

// Variable is the polynomial indeterminate.
const Variable = "x"

// MaxPolynomialDegree bounds the degree ParsePolynomial accepts; the
// coefficient vector is allocated from it.
const MaxPolynomialDegree = 1000

var (
	exponentPattern = regexp.MustCompile(`x\^(\d+)`)
	signedXPattern  = regexp.MustCompile(`([+-])x`)
)

// ParsePolynomial reads text such as "x^3 - 2x + (1+i)" into a coefficient
// vector, highest degree first. Unreadable terms fail with *algebra.ParseError
// naming the term.
func ParsePolynomial(text string) ([]complexnum.Number, error) {
	s := terms.StripSpace(text)
	if s == "" {
		return nil, algebra.NewParseError(text, "", "empty polynomial")
	}
	if !terms.Balanced(s) {
		return nil, algebra.NewParseError(text, "", "unbalanced parentheses")
	}

	maxDegree := MaxDegree(s)
	if maxDegree > MaxPolynomialDegree {
		return nil, algebra.NewParseError(text, Variable+"^"+strconv.Itoa(maxDegree), "degree too large")
	}

	s = signedXPattern.ReplaceAllString(s, "${1}1x")
	if strings.HasPrefix(s, Variable) {
		s = "1" + s
	}

	coeffs := make([]complexnum.Number, maxDegree+1)
	for _, term := range terms.Split(s) {
		coef, degree, err := parseTerm(term)
		if err != nil {
			err.Input = text
			return nil, err
		}
		if degree > maxDegree {
			return nil, algebra.NewParseError(text, term.String(), "degree above the detected maximum")
		}
		idx := maxDegree - degree
		coeffs[idx] = coeffs[idx].Add(coef)
	}
	return coeffs, nil
}

// MaxDegree returns the largest exponent written as x^n in s, 1 if s contains
// a bare x, 0 otherwise.
func MaxDegree(s string) int {
	maxDegree := -1
	for _, m := range exponentPattern.FindAllStringSubmatch(s, -1) {
		if d, err := strconv.Atoi(m[1]); err == nil && d > maxDegree {
			maxDegree = d
		}
	}
	if maxDegree >= 0 {
		return maxDegree
	}
	if strings.Contains(s, Variable) {
		return 1
	}
	return 0
}

func parseTerm(term terms.Term) (complexnum.Number, int, *algebra.ParseError) {
	body := term.Text
	fail := func(reason string) (complexnum.Number, int, *algebra.ParseError) {
		return complexnum.Zero, 0, algebra.NewParseError("", term.String(), reason)
	}
	if body == "" {
		return fail("empty term")
	}

	degree := 0
	coefText := body
	if idx := strings.Index(body, Variable); idx >= 0 {
		coefText = strings.TrimSuffix(body[:idx], "*")
		after := body[idx+len(Variable):]
		switch {
		case after == "":
			degree = 1
		case strings.HasPrefix(after, "^"):
			d, err := strconv.Atoi(after[1:])
			if err != nil || d < 0 {
				return fail("exponent must be a non-negative integer")
			}
			degree = d
		default:
			return fail("unexpected text after " + Variable)
		}
	}

	var coef complexnum.Number
	switch coefText {
	case "", "+":
		coef = complexnum.One
	case "-":
		coef = complexnum.One.Neg()
	default:
		c, err := ParseComplexLiteral(coefText)
		if err != nil {
			return fail(reason(err))
		}
		coef = c
	}
	if term.Negative() {
		coef = coef.Neg()
	}
	return coef, degree, nil
}
