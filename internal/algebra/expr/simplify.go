package expr

import "math"

// Simplify applies local identities bottom-up: numeric folding where the
// result stays exact, neutral elements (x+0, x*1, x/1, x^1), x*0, x^0,
// double negation, sign absorption (a + -b → a - b) and a / b / c → a / (b * c).
func Simplify(n Node) Node {
	switch v := n.(type) {
	case Neg:
		x := Simplify(v.X)
		switch xv := x.(type) {
		case Num:
			return Num{Value: -xv.Value}
		case Neg:
			return xv.X
		}
		return Neg{X: x}

	case Call:
		return Call{Func: v.Func, Arg: Simplify(v.Arg)}

	case Binary:
		return simplifyBinary(v.Op, Simplify(v.L), Simplify(v.R))
	}
	return n
}

func simplifyBinary(op byte, l, r Node) Node {
	ln, lok := l.(Num)
	rn, rok := r.(Num)
	if lok && rok {
		if folded, ok := fold(op, ln.Value, rn.Value); ok {
			return Num{Value: folded}
		}
	}

	switch op {
	case '+':
		switch {
		case isNum(l, 0):
			return r
		case isNum(r, 0):
			return l
		}
		if neg, ok := r.(Neg); ok {
			return Binary{Op: '-', L: l, R: neg.X}
		}
		if rok && rn.Value < 0 {
			return Binary{Op: '-', L: l, R: Num{Value: -rn.Value}}
		}
	case '-':
		switch {
		case isNum(r, 0):
			return l
		case isNum(l, 0):
			return Simplify(Neg{X: r})
		}
		if neg, ok := r.(Neg); ok {
			return Binary{Op: '+', L: l, R: neg.X}
		}
		if rok && rn.Value < 0 {
			return Binary{Op: '+', L: l, R: Num{Value: -rn.Value}}
		}
	case '*':
		switch {
		case isNum(l, 0) || isNum(r, 0):
			return Num{Value: 0}
		case isNum(l, 1):
			return r
		case isNum(r, 1):
			return l
		case isNum(l, -1):
			return Simplify(Neg{X: r})
		case isNum(r, -1):
			return Simplify(Neg{X: l})
		}
	case '/':
		if inner, ok := l.(Binary); ok && inner.Op == '/' {
			return Binary{Op: '/', L: inner.L, R: simplifyBinary('*', inner.R, r)}
		}
		switch {
		case isNum(r, 1):
			return l
		case isNum(r, -1):
			return Simplify(Neg{X: l})
		case isNum(l, 0) && !isNum(r, 0):
			return Num{Value: 0}
		}
	case '^':
		switch {
		case isNum(r, 1):
			return l
		case isNum(r, 0):
			return Num{Value: 1}
		}
	}
	return Binary{Op: op, L: l, R: r}
}

// fold evaluates op on two literals when the result is exact enough to be
// printed back without surprising the reader (no 0.333333 from 1/3).
func fold(op byte, a, b float64) (float64, bool) {
	var r float64
	switch op {
	case '+':
		r = a + b
	case '-':
		r = a - b
	case '*':
		r = a * b
	case '/':
		if b == 0 {
			return 0, false
		}
		r = a / b
		if math.Abs(r*1e6-math.Round(r*1e6)) > 1e-6 {
			return 0, false
		}
	case '^':
		r = math.Pow(a, b)
		if r != math.Trunc(r) {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

func isNum(n Node, v float64) bool {
	num, ok := n.(Num)
	return ok && num.Value == v
}
