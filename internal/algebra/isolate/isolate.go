// Package isolate rearranges formulas so that a chosen variable stands alone.
//
// The expression is parsed into a tree and the equation target = expression
// is rewritten by applying the inverse of the outermost operation on the
// variable's side until only the variable is left:
//
//	A + B = t  →  A = t - B        A * B = t  →  A = t / B
//	A - B = t  →  A = t + B        A / B = t  →  A = t * B
//	          or  B = A - t                  or  B = A / t
//	-A    = t  →  A = -t           A ^ n = t  →  A = t^(1 / n), sqrt(t) for n = 2
//	sqrt(A) = t → A = t^2          n ^ A = t  →  A = ln(t) / ln(n)
//
// A variable occurring more than once is collected into coef·v + rest first,
// which works whenever the expression is linear in v.
package isolate

import (
	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/expr"
)

// Step is one rewrite applied while isolating.
type Step struct {
	Description string
	Equation    string // state after the step, variable side first
}

// Result is an isolated variable with the rewrites that produced it.
type Result struct {
	Variable   string
	Expression string
	Target     string
	Value      string
	Steps      []Step
}

func (r Result) String() string {
	return r.Variable + " = " + r.Value
}

// IsolateVariable solves target = expression for variable and returns the
// right-hand side of "variable = ...". IsolateVariable("v*i*t", "t", "d")
// returns "d / (v * i)".
func IsolateVariable(expression, variable, target string) (string, error) {
	res, err := Isolate(expression, variable, target)
	if err != nil {
		return "", err
	}
	return res.Value, nil
}

// Isolate is IsolateVariable with the list of applied steps.
func Isolate(expression, variable, target string) (Result, error) {
	res := Result{Variable: variable, Expression: expression, Target: target}

	e, err := expr.Parse(expression)
	if err != nil {
		return res, err
	}
	t, err := expr.Parse(target)
	if err != nil {
		return res, err
	}

	iso := &isolator{variable: variable, expression: expression}
	value, err := iso.solve(e, t)
	if err != nil {
		return res, err
	}
	res.Value = expr.String(value)
	res.Steps = iso.steps
	return res, nil
}

// Render returns value, or "Error: <message>" when err is set.
func Render(value string, err error) string {
	if err != nil {
		return "Error: " + err.Error()
	}
	return value
}

type isolator struct {
	variable   string
	expression string
	steps      []Step
}

func (iso *isolator) fail(reason string) error {
	return &algebra.IsolationError{Variable: iso.variable, Expression: iso.expression, Reason: reason}
}

func (iso *isolator) record(description string, e, t expr.Node) {
	iso.steps = append(iso.steps, Step{
		Description: description,
		Equation:    expr.String(e) + " = " + expr.String(expr.Simplify(t)),
	})
}

func (iso *isolator) solve(e, t expr.Node) (expr.Node, error) {
	v := iso.variable

	if expr.Contains(t, v) {
		e = expr.Sub(e, t)
		t = expr.Num{Value: 0}
		iso.record("move every term with "+v+" to one side", e, t)
	}

	switch expr.Count(e, v) {
	case 0:
		return nil, iso.fail("variable does not occur")
	case 1:
		return iso.peel(e, t)
	}

	coef, rest, ok := expr.Linear(e, v)
	if !ok {
		return nil, iso.fail("variable occurs more than once and not linearly")
	}
	if num, isNum := coef.(expr.Num); isNum && num.Value == 0 {
		return nil, iso.fail("variable cancels out")
	}
	collected := expr.Mul(coef, expr.Var{Name: v})
	if num, isNum := rest.(expr.Num); !isNum || num.Value != 0 {
		collected = expr.Add(collected, rest)
	}
	iso.record("collect the terms with "+v, collected, t)
	return iso.peel(expr.Simplify(collected), t)
}

func (iso *isolator) peel(e, t expr.Node) (expr.Node, error) {
	v := iso.variable
	for {
		switch n := e.(type) {
		case expr.Var:
			if n.Name == v {
				return expr.Simplify(t), nil
			}
			return nil, iso.fail("variable does not occur")

		case expr.Neg:
			e, t = n.X, expr.Simplify(expr.Neg{X: t})
			iso.record("change the sign of both sides", e, t)

		case expr.Binary:
			inL := expr.Contains(n.L, v)
			var desc string
			switch n.Op {
			case '+':
				if inL {
					e, t, desc = n.L, expr.Sub(t, n.R), "subtract "+expr.String(n.R)+" from both sides"
				} else {
					e, t, desc = n.R, expr.Sub(t, n.L), "subtract "+expr.String(n.L)+" from both sides"
				}
			case '-':
				if inL {
					e, t, desc = n.L, expr.Add(t, n.R), "add "+expr.String(n.R)+" to both sides"
				} else {
					e, t, desc = n.R, expr.Sub(n.L, t), "exchange "+expr.String(n.R)+" and the other side"
				}
			case '*':
				if (inL && isZero(n.R)) || (!inL && isZero(n.L)) {
					return nil, iso.fail("variable is multiplied by 0")
				}
				if inL {
					e, t, desc = n.L, expr.Div(t, n.R), "divide both sides by "+expr.String(n.R)
				} else {
					e, t, desc = n.R, expr.Div(t, n.L), "divide both sides by "+expr.String(n.L)
				}
			case '/':
				if inL && isZero(n.R) {
					return nil, iso.fail("division by 0")
				}
				if inL {
					e, t, desc = n.L, expr.Mul(t, n.R), "multiply both sides by "+expr.String(n.R)
				} else {
					e, t, desc = n.R, expr.Div(n.L, t), "exchange "+expr.String(n.R)+" and the other side"
				}
			case '^':
				switch {
				case !inL:
					e, t, desc = n.R, expr.Div(expr.Call{Func: "ln", Arg: t}, expr.Call{Func: "ln", Arg: n.L}),
						"take logarithms of both sides"
				case isZero(n.R):
					return nil, iso.fail("exponent 0 removes the variable")
				case isTwo(n.R):
					e, t, desc = n.L, expr.Call{Func: "sqrt", Arg: t}, "take the square root of both sides"
				default:
					e, t, desc = n.L, expr.Pow(t, expr.Div(expr.Num{Value: 1}, n.R)),
						"take the root of index "+expr.String(n.R)+" of both sides"
				}
			default:
				return nil, iso.fail("unsupported operator " + string(n.Op))
			}
			t = expr.Simplify(t)
			iso.record(desc, e, t)

		case expr.Call:
			var desc string
			switch n.Func {
			case "sqrt":
				t, desc = expr.Pow(t, expr.Num{Value: 2}), "square both sides"
			case "exp":
				t, desc = expr.Call{Func: "ln", Arg: t}, "take logarithms of both sides"
			case "ln":
				t, desc = expr.Call{Func: "exp", Arg: t}, "exponentiate both sides"
			default:
				return nil, iso.fail("cannot invert " + n.Func)
			}
			e, t = n.Arg, expr.Simplify(t)
			iso.record(desc, e, t)

		default:
			return nil, iso.fail("variable does not occur")
		}
	}
}

// isZero reports whether n simplifies to the number 0.
func isZero(n expr.Node) bool {
	num, ok := expr.Simplify(n).(expr.Num)
	return ok && num.Value == 0
}

func isTwo(n expr.Node) bool {
	num, ok := n.(expr.Num)
	return ok && num.Value == 2
}
