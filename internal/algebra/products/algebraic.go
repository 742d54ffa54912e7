package products

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/algebralab/algebralab/internal/algebra/complexnum"
	"github.com/algebralab/algebralab/internal/algebra/terms"
)

// Monomial is c·x1^e1·x2^e2… over single-letter variables.
type Monomial struct {
	Coef   float64
	Powers map[string]int
}

var (
	monomialPattern = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)?)((?:[a-zA-Z](?:\^\d+)?)*)$`)
	factorPattern   = regexp.MustCompile(`([a-zA-Z])(?:\^(\d+))?`)
)

// ParseMonomial reads "3x", "-y", "2.5x^2y", "4" or "3*x". ok is false for
// anything that is not a single monomial.
func ParseMonomial(s string) (Monomial, bool) {
	s = strings.ReplaceAll(terms.StripSpace(s), "*", "")
	m := monomialPattern.FindStringSubmatch(s)
	if m == nil || s == "" {
		return Monomial{}, false
	}
	coefText, factors := m[1], m[2]

	mono := Monomial{Coef: 1, Powers: map[string]int{}}
	switch coefText {
	case "", "+":
		if factors == "" {
			return Monomial{}, false
		}
	case "-":
		if factors == "" {
			return Monomial{}, false
		}
		mono.Coef = -1
	default:
		c, err := strconv.ParseFloat(coefText, 64)
		if err != nil {
			return Monomial{}, false
		}
		mono.Coef = c
	}

	for _, f := range factorPattern.FindAllStringSubmatch(factors, -1) {
		exp := 1
		if f[2] != "" {
			e, err := strconv.Atoi(f[2])
			if err != nil {
				return Monomial{}, false
			}
			exp = e
		}
		mono.Powers[f[1]] += exp
	}
	return mono, true
}

// Mul multiplies two monomials.
func (m Monomial) Mul(o Monomial) Monomial {
	out := Monomial{Coef: m.Coef * o.Coef, Powers: make(map[string]int, len(m.Powers)+len(o.Powers))}
	for v, e := range m.Powers {
		out.Powers[v] += e
	}
	for v, e := range o.Powers {
		out.Powers[v] += e
	}
	return out
}

// Pow raises m to a non-negative integer power.
func (m Monomial) Pow(k int) Monomial {
	out := Monomial{Coef: 1, Powers: map[string]int{}}
	for i := 0; i < k; i++ {
		out = out.Mul(m)
	}
	return out
}

// Scale multiplies the coefficient by c.
func (m Monomial) Scale(c float64) Monomial {
	out := m.Mul(Monomial{Coef: 1})
	out.Coef *= c
	return out
}

func (m Monomial) variables() []string {
	vars := make([]string, 0, len(m.Powers))
	for v, e := range m.Powers {
		if e != 0 {
			vars = append(vars, v)
		}
	}
	sort.Strings(vars)
	return vars
}

// key identifies like terms.
func (m Monomial) key() string {
	var sb strings.Builder
	for _, v := range m.variables() {
		sb.WriteString(v)
		if e := m.Powers[v]; e != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(e))
		}
	}
	return sb.String()
}

func (m Monomial) String() string {
	vars := m.key()
	switch {
	case vars == "":
		return complexnum.FormatReal(m.Coef, 6)
	case m.Coef == 1:
		return vars
	case m.Coef == -1:
		return "-" + vars
	}
	return complexnum.FormatReal(m.Coef, 6) + vars
}

// Collect folds like terms, keeping the order of first appearance and
// dropping zero terms.
func Collect(ms []Monomial) []Monomial {
	var out []Monomial
	index := map[string]int{}
	for _, m := range ms {
		k := m.key()
		if i, ok := index[k]; ok {
			out[i].Coef += m.Coef
			continue
		}
		index[k] = len(out)
		out = append(out, m.Scale(1))
	}
	kept := out[:0]
	for _, m := range out {
		if math.Abs(m.Coef) > 1e-12 {
			kept = append(kept, m)
		}
	}
	return kept
}

// FormatPolynomial joins monomials with explicit signs: 9x^2 - 30xy + 25y^2.
func FormatPolynomial(ms []Monomial) string {
	if len(ms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, m := range ms {
		switch {
		case i == 0:
			sb.WriteString(m.String())
		case m.Coef < 0:
			sb.WriteString(" - ")
			sb.WriteString(m.Scale(-1).String())
		default:
			sb.WriteString(" + ")
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}

// binomial expands (a + b)^n.
func binomial(a, b Monomial, n int) []Monomial {
	out := make([]Monomial, 0, n+1)
	c := 1.0
	for k := 0; k <= n; k++ {
		out = append(out, a.Pow(n-k).Mul(b.Pow(k)).Scale(c))
		c = c * float64(n-k) / float64(k+1)
	}
	return out
}

// ExpandAlgebraic expands the product symbolically. Monomial operands are
// multiplied out and like terms folded; other operands are substituted
// into the identity in parentheses.
func ExpandAlgebraic(kind Kind, a, b string) Result {
	res := Result{Kind: kind, Mode: Algebraic, Formula: kind.Formula(), Expression: expression(kind, a, b), Verified: true}

	ma, okA := ParseMonomial(a)
	mb, okB := ParseMonomial(b)
	if !okA || !okB {
		res.Expanded = template(kind, a, b)
		res.Steps = []string{"substitute a = " + a + " and b = " + b + " into " + res.Formula}
		res.Direct = res.Expanded
		return res
	}

	var expanded []Monomial
	x := Monomial{Coef: 1, Powers: map[string]int{"x": 1}}
	switch kind {
	case SquareSum, SquareDiff:
		if kind == SquareDiff {
			mb = mb.Scale(-1)
		}
		expanded = binomial(ma, mb, 2)
		res.Steps = []string{
			"square of the first: (" + a + ")^2 = " + ma.Pow(2).String(),
			"twice the first times the second: 2(" + a + ")(" + mb.String() + ") = " + ma.Mul(mb).Scale(2).String(),
			"square of the second: (" + b + ")^2 = " + mb.Pow(2).String(),
		}
	case CubeSum, CubeDiff:
		if kind == CubeDiff {
			mb = mb.Scale(-1)
		}
		expanded = binomial(ma, mb, 3)
		res.Steps = []string{
			"cube of the first: " + ma.Pow(3).String(),
			"three times the square of the first times the second: " + ma.Pow(2).Mul(mb).Scale(3).String(),
			"three times the first times the square of the second: " + ma.Mul(mb.Pow(2)).Scale(3).String(),
			"cube of the second: " + mb.Pow(3).String(),
		}
	case CommonTerm:
		expanded = []Monomial{x.Pow(2), ma.Mul(x), mb.Mul(x), ma.Mul(mb)}
		res.Steps = []string{
			"sum of the non-common terms: " + FormatPolynomial(Collect([]Monomial{ma, mb})),
			"product of the non-common terms: " + ma.Mul(mb).String(),
		}
	case Conjugates:
		expanded = []Monomial{ma.Pow(2), mb.Pow(2).Scale(-1)}
		res.Steps = []string{
			"square of the first minus square of the second: " + ma.Pow(2).String() + " - " + mb.Pow(2).String(),
		}
	}

	res.Expanded = FormatPolynomial(Collect(expanded))
	res.Direct = res.Expanded
	return res
}

func expression(kind Kind, a, b string) string {
	switch kind {
	case SquareSum:
		return "(" + a + " + " + b + ")^2"
	case SquareDiff:
		return "(" + a + " - " + b + ")^2"
	case CubeSum:
		return "(" + a + " + " + b + ")^3"
	case CubeDiff:
		return "(" + a + " - " + b + ")^3"
	case CommonTerm:
		return "(x + " + a + ")(x + " + b + ")"
	case Conjugates:
		return "(" + a + " + " + b + ")(" + a + " - " + b + ")"
	}
	return ""
}

func template(kind Kind, a, b string) string {
	pa, pb := "("+a+")", "("+b+")"
	switch kind {
	case SquareSum:
		return pa + "^2 + 2" + pa + pb + " + " + pb + "^2"
	case SquareDiff:
		return pa + "^2 - 2" + pa + pb + " + " + pb + "^2"
	case CubeSum:
		return pa + "^3 + 3" + pa + "^2" + pb + " + 3" + pa + pb + "^2 + " + pb + "^3"
	case CubeDiff:
		return pa + "^3 - 3" + pa + "^2" + pb + " + 3" + pa + pb + "^2 - " + pb + "^3"
	case CommonTerm:
		return "x^2 + (" + pa + " + " + pb + ")x + " + pa + pb
	case Conjugates:
		return pa + "^2 - " + pb + "^2"
	}
	return ""
}
