package expr

import (
	"math"
	"math/cmplx"

	"github.com/algebralab/algebralab/internal/algebra"
)

// Env binds identifier names to values. Bindings shadow constants, so a
// formula may use i as an interest rate.
type Env map[string]complex128

const realTolerance = 1e-10

// Phi is the golden ratio.
var Phi = (1 + math.Sqrt(5)) / 2

var constants = map[string]complex128{
	"pi":   complex(math.Pi, 0),
	"π":    complex(math.Pi, 0),
	"e":    complex(math.E, 0),
	"phi":  complex(Phi, 0),
	"φ":    complex(Phi, 0),
	"tau":  complex(2*math.Pi, 0),
	"τ":    complex(2*math.Pi, 0),
	"ln2":  complex(math.Ln2, 0),
	"ln10": complex(math.Ln10, 0),
	"i":    complex(0, 1),
}

// IsConstant reports whether name is a built-in constant.
func IsConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

// Evaluate parses and evaluates input over the complex numbers.
func Evaluate(input string, env Env) (complex128, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	v, err := Eval(n, env)
	if err != nil {
		return 0, withInput(err, input)
	}
	return v, nil
}

// EvaluateReal is Evaluate restricted to real results.
func EvaluateReal(input string, env Env) (float64, error) {
	v, err := Evaluate(input, env)
	if err != nil {
		return 0, err
	}
	if math.Abs(imag(v)) > realTolerance {
		return 0, algebra.NewParseError(input, "", "result is not a real number")
	}
	return real(v), nil
}

// Eval evaluates n. Unbound identifiers fail with a ParseError naming the
// first one.
func Eval(n Node, env Env) (complex128, error) {
	v, err := eval(n, env)
	if err != nil {
		return 0, err
	}
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return 0, &algebra.ParseError{Position: -1, Reason: "result is not a finite number"}
	}
	return v, nil
}

// EvalReal is Eval restricted to real results.
func EvalReal(n Node, env Env) (float64, error) {
	v, err := Eval(n, env)
	if err != nil {
		return 0, err
	}
	if math.Abs(imag(v)) > realTolerance {
		return 0, &algebra.ParseError{Position: -1, Reason: "result is not a real number"}
	}
	return real(v), nil
}

func eval(n Node, env Env) (complex128, error) {
	switch v := n.(type) {
	case Num:
		return complex(v.Value, 0), nil

	case Var:
		if val, ok := env[v.Name]; ok {
			return val, nil
		}
		if val, ok := constants[v.Name]; ok {
			return val, nil
		}
		return 0, &algebra.ParseError{Term: v.Name, Position: -1, Reason: "undefined variable " + v.Name}

	case Neg:
		x, err := eval(v.X, env)
		return -x, err

	case Binary:
		l, err := eval(v.L, env)
		if err != nil {
			return 0, err
		}
		r, err := eval(v.R, env)
		if err != nil {
			return 0, err
		}
		return apply(v.Op, l, r)

	case Call:
		x, err := eval(v.Arg, env)
		if err != nil {
			return 0, err
		}
		return call(v.Func, x)
	}
	return 0, &algebra.ParseError{Position: -1, Reason: "unknown node"}
}

func apply(op byte, l, r complex128) (complex128, error) {
	switch op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, &algebra.ParseError{Position: -1, Reason: algebra.ErrDivisionByZero.Error()}
		}
		return l / r, nil
	case '^':
		return power(l, r)
	}
	return 0, &algebra.ParseError{Position: -1, Reason: "unknown operator " + string(op)}
}

// power keeps integer exponents and real roots of non-negative bases exact
// instead of going through the complex logarithm.
func power(base, exp complex128) (complex128, error) {
	if imag(exp) == 0 {
		e := real(exp)
		if e == math.Trunc(e) && math.Abs(e) <= 64 {
			n := int(math.Abs(e))
			result := complex(1, 0)
			b := base
			for n > 0 {
				if n&1 == 1 {
					result *= b
				}
				b *= b
				n >>= 1
			}
			if e < 0 {
				if result == 0 {
					return 0, &algebra.ParseError{Position: -1, Reason: algebra.ErrDivisionByZero.Error()}
				}
				result = 1 / result
			}
			return result, nil
		}
		if imag(base) == 0 && real(base) >= 0 {
			return complex(math.Pow(real(base), e), 0), nil
		}
	}
	return cmplx.Pow(base, exp), nil
}

func call(name string, x complex128) (complex128, error) {
	switch name {
	case "sqrt":
		if imag(x) == 0 && real(x) >= 0 {
			return complex(math.Sqrt(real(x)), 0), nil
		}
		if imag(x) == 0 {
			return complex(0, math.Sqrt(-real(x))), nil
		}
		return cmplx.Sqrt(x), nil
	case "abs":
		return complex(cmplx.Abs(x), 0), nil
	case "sin":
		return cmplx.Sin(x), nil
	case "cos":
		return cmplx.Cos(x), nil
	case "tan":
		return cmplx.Tan(x), nil
	case "exp":
		return cmplx.Exp(x), nil
	case "ln", "log":
		if x == 0 {
			return 0, &algebra.ParseError{Position: -1, Reason: "logarithm of zero"}
		}
		if name == "ln" {
			return cmplx.Log(x), nil
		}
		return cmplx.Log10(x), nil
	}
	return 0, &algebra.ParseError{Term: name, Position: -1, Reason: "unknown function " + name}
}

func withInput(err error, input string) error {
	if pe, ok := err.(*algebra.ParseError); ok && pe.Input == "" {
		cp := *pe
		cp.Input = input
		return &cp
	}
	return err
}
