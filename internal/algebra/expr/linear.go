package expr

import (
	"github.com/algebralab/algebralab/internal/algebra"
)

// Linear decomposes n as coef·name + rest where neither coef nor rest
// contains name. ok is false when name occurs non-linearly (x·x, 1/x, x^2,
// sqrt(x), ...).
func Linear(n Node, name string) (coef, rest Node, ok bool) {
	coef, rest, ok = linear(n, name)
	if !ok {
		return nil, nil, false
	}
	return Simplify(coef), Simplify(rest), true
}

func linear(n Node, name string) (Node, Node, bool) {
	zero := Num{Value: 0}
	if !Contains(n, name) {
		return zero, n, true
	}
	switch v := n.(type) {
	case Var:
		return Num{Value: 1}, zero, true

	case Neg:
		c, r, ok := linear(v.X, name)
		return Neg{X: c}, Neg{X: r}, ok

	case Binary:
		switch v.Op {
		case '+', '-':
			lc, lr, lok := linear(v.L, name)
			rc, rr, rok := linear(v.R, name)
			if !lok || !rok {
				return nil, nil, false
			}
			return Binary{Op: v.Op, L: lc, R: rc}, Binary{Op: v.Op, L: lr, R: rr}, true
		case '*':
			switch {
			case !Contains(v.L, name):
				c, r, ok := linear(v.R, name)
				return mul(v.L, c), mul(v.L, r), ok
			case !Contains(v.R, name):
				c, r, ok := linear(v.L, name)
				return mul(c, v.R), mul(r, v.R), ok
			}
		case '/':
			if !Contains(v.R, name) {
				c, r, ok := linear(v.L, name)
				return div(c, v.R), div(r, v.R), ok
			}
		case '^':
			if isNum(v.R, 1) {
				return linear(v.L, name)
			}
		}
	}
	return nil, nil, false
}

// LinearCoefficients returns a and b with n ≡ a·name + b, both numeric.
// Other free identifiers or non-linear occurrences are errors.
func LinearCoefficients(n Node, name string) (a, b float64, err error) {
	coef, rest, ok := Linear(n, name)
	if !ok {
		return 0, 0, &algebra.EquationError{Kind: algebra.ErrNotLinear, Detail: "non-linear in " + name}
	}
	if a, err = EvalReal(coef, nil); err != nil {
		return 0, 0, err
	}
	if b, err = EvalReal(rest, nil); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
