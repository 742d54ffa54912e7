// Package terms splits infix text into its top-level additive terms.
package terms

import (
	"strings"
	"unicode"

	"github.com/algebralab/algebralab/internal/algebra"
)

// Term is one additive term with its sign.
type Term struct {
	Sign byte // '+' or '-'
	Text string
}

func (t Term) String() string {
	return string(t.Sign) + t.Text
}

// Negative reports whether the term is subtracted.
func (t Term) Negative() bool { return t.Sign == '-' }

// Split breaks expression at every '+' or '-' that sits at parenthesis depth
// zero and is not a unary sign (directly after another operator, '(' or '^')
// or the sign of an exponent ("1e-3").
// Whitespace is removed first. Empty input yields no terms.
//
//	Split("x^2-(1+i)x+3")  → [+x^2 -(1+i)x +3]
//	Split("-a*b+c/(d-e)")  → [-a*b +c/(d-e)]
func Split(expression string) []Term {
	s := stripSpace(expression)
	if s == "" {
		return nil
	}

	var out []Term
	sign := byte('+')
	start := 0
	if s[0] == '+' || s[0] == '-' {
		sign = s[0]
		start = 1
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch c := s[i]; c {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '+', '-':
			if depth != 0 || i == start || isOperator(s[i-1]) || inExponent(s, i) {
				continue
			}
			out = append(out, Term{Sign: sign, Text: s[start:i]})
			sign = c
			start = i + 1
		}
	}
	return append(out, Term{Sign: sign, Text: s[start:]})
}

// Join reassembles terms; a leading '+' is dropped.
func Join(terms []Term) string {
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 || t.Sign == '-' {
			sb.WriteByte(t.Sign)
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// Balanced reports whether every '(' in s is closed and no ')' comes first.
func Balanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

// inExponent reports whether the sign at i belongs to exponent notation such
// as 1e-3: it follows an e or E that closes a number literal and a digit
// comes next.
func inExponent(s string, i int) bool {
	if i < 2 || i+1 >= len(s) || (s[i-1] != 'e' && s[i-1] != 'E') || !isDigitByte(s[i+1]) {
		return false
	}
	j := i - 2
	digits := false
	for j >= 0 && (isDigitByte(s[j]) || s[j] == '.') {
		digits = digits || isDigitByte(s[j])
		j--
	}
	return digits && (j < 0 || !isIdentByte(s[j]))
}

func isDigitByte(c byte) bool { return '0' <= c && c <= '9' }

func isIdentByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c >= 0x80
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '^', '(':
		return true
	}
	return false
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// StripSpace removes every whitespace rune from s.
func StripSpace(s string) string { return stripSpace(s) }

// SplitEquation splits lhs = rhs at its single '=' and trims both sides.
func SplitEquation(equation string) (lhs, rhs string, err error) {
	parts := strings.Split(equation, "=")
	if len(parts) != 2 {
		return "", "", algebra.NewParseError(equation, "", "equation needs exactly one '='")
	}
	lhs, rhs = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if lhs == "" || rhs == "" {
		return "", "", algebra.NewParseError(equation, "", "both sides of '=' must be non-empty")
	}
	return lhs, rhs, nil
}
