package poly

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/complexnum"
	"github.com/algebralab/algebralab/internal/algebra/expr"
	"github.com/algebralab/algebralab/internal/algebra/terms"
)

// trivialLiteral matches literals built only from digits, dots, one inner
// sign and an optional trailing i.
var trivialLiteral = regexp.MustCompile(`^[+-]?[0-9.]*([+-][0-9.]*)?i?$`)

// ParseComplexLiteral reads a complex coefficient such as "3", "-2.5", "3+2i",
// "-i", "(1+i)/2", "sqrt(2)i" or "2pi". The text is evaluated by the
// restricted expression evaluator; trivial literals the evaluator rejects
// ("5.", "1.+2.i") fall back to ParseComplexHeuristic.
func ParseComplexLiteral(text string) (complexnum.Number, error) {
	s := terms.StripSpace(text)
	if s == "" {
		return complexnum.Zero, algebra.NewParseError(text, "", "empty complex literal")
	}

	v, err := expr.Evaluate(s, nil)
	if err == nil {
		return complexnum.FromComplex128(v), nil
	}
	if trivialLiteral.MatchString(s) {
		if n, herr := ParseComplexHeuristic(s); herr == nil {
			return n, nil
		}
	}
	return complexnum.Zero, &algebra.ParseError{Input: text, Term: text, Position: -1, Reason: reason(err)}
}

// ParseComplexHeuristic is the last-sign split used by the first version of
// the division page. Without an i the text is a real float. Otherwise every i
// is removed, an empty or bare-sign rest means ±1i, and the text is split at
// the last '+' or '-' that is not the leading sign: left is the real part,
// right the imaginary part (a bare sign meaning ±1).
//
// It does not understand parentheses, products or exponent notation ("1e-3i");
// use ParseComplexLiteral for anything but plain literals.
func ParseComplexHeuristic(text string) (complexnum.Number, error) {
	s := terms.StripSpace(text)
	fail := func(reason string) (complexnum.Number, error) {
		return complexnum.Zero, algebra.NewParseError(text, text, reason)
	}
	if s == "" {
		return fail("empty complex literal")
	}

	if !strings.Contains(s, "i") {
		re, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fail("not a number")
		}
		return complexnum.Real(re), nil
	}

	s = strings.ReplaceAll(s, "i", "")
	switch s {
	case "", "+":
		return complexnum.I, nil
	case "-":
		return complexnum.I.Neg(), nil
	}

	split := strings.LastIndexAny(s, "+-")
	if split <= 0 {
		im, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fail("imaginary part is not a number")
		}
		return complexnum.New(0, im), nil
	}

	re, err := strconv.ParseFloat(s[:split], 64)
	if err != nil {
		return fail("real part is not a number")
	}
	imText := s[split:]
	var im float64
	switch imText {
	case "+":
		im = 1
	case "-":
		im = -1
	default:
		if im, err = strconv.ParseFloat(imText, 64); err != nil {
			return fail("imaginary part is not a number")
		}
	}
	return complexnum.New(re, im), nil
}

func reason(err error) string {
	if pe, ok := err.(*algebra.ParseError); ok {
		return pe.Reason
	}
	return err.Error()
}
