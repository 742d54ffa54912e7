package products

import (
	"math"
	"strconv"

	"github.com/algebralab/algebralab/internal/algebra/complexnum"
	"github.com/algebralab/algebralab/internal/algebra/expr"
)

// CommonTermX is the value of x used for (x + a)(x + b) in numeric mode.
const CommonTermX = 10

const verifyTolerance = 1e-4

// CalculateNumeric evaluates a and b and expands the product step by step.
func CalculateNumeric(kind Kind, a, b string) (Result, error) {
	av, err := expr.EvaluateReal(a, nil)
	if err != nil {
		return Result{}, err
	}
	bv, err := expr.EvaluateReal(b, nil)
	if err != nil {
		return Result{}, err
	}
	return ExpandNumeric(kind, av, bv), nil
}

// ExpandNumeric expands the product for numbers a and b.
func ExpandNumeric(kind Kind, a, b float64) Result {
	res := Result{Kind: kind, Mode: Numeric, Formula: kind.Formula()}
	a2, b2, ab2 := a*a, b*b, 2*a*b
	var final, direct float64

	switch kind {
	case SquareSum:
		final, direct = a2+ab2+b2, math.Pow(a+b, 2)
		res.Expression = "(" + n(a) + " + " + n(b) + ")²"
		res.Expanded = n(a2) + " + " + n(ab2) + " + " + n(b2)
		res.Steps = []string{
			"identify a = " + n(a) + ", b = " + n(b),
			"a² = " + n(a) + "² = " + n(a2),
			"2ab = 2(" + n(a) + ")(" + n(b) + ") = " + n(ab2),
			"b² = " + n(b) + "² = " + n(b2),
			"sum: " + res.Expanded + " = " + n(final),
		}
	case SquareDiff:
		final, direct = a2-ab2+b2, math.Pow(a-b, 2)
		res.Expression = "(" + n(a) + " - " + n(b) + ")²"
		res.Expanded = n(a2) + " - " + n(ab2) + " + " + n(b2)
		res.Steps = []string{
			"identify a = " + n(a) + ", b = " + n(b),
			"a² = " + n(a) + "² = " + n(a2),
			"2ab = 2(" + n(a) + ")(" + n(b) + ") = " + n(ab2),
			"b² = " + n(b) + "² = " + n(b2),
			"combine: " + res.Expanded + " = " + n(final),
		}
	case CubeSum, CubeDiff:
		a3, b3 := a*a*a, b*b*b
		a2b3, ab23 := 3*a2*b, 3*a*b2
		if kind == CubeSum {
			final, direct = a3+a2b3+ab23+b3, math.Pow(a+b, 3)
			res.Expression = "(" + n(a) + " + " + n(b) + ")³"
			res.Expanded = n(a3) + " + " + n(a2b3) + " + " + n(ab23) + " + " + n(b3)
		} else {
			final, direct = a3-a2b3+ab23-b3, math.Pow(a-b, 3)
			res.Expression = "(" + n(a) + " - " + n(b) + ")³"
			res.Expanded = n(a3) + " - " + n(a2b3) + " + " + n(ab23) + " - " + n(b3)
		}
		res.Steps = []string{
			"a³ = " + n(a3),
			"3a²b = " + n(a2b3),
			"3ab² = " + n(ab23),
			"b³ = " + n(b3),
			"total: " + n(final),
		}
	case CommonTerm:
		x := float64(CommonTermX)
		final = (x + a) * (x + b)
		direct = final
		res.Expression = "(" + n(x) + " + " + n(a) + ")(" + n(x) + " + " + n(b) + ")"
		res.Expanded = n(x*x) + " + " + n((a+b)*x) + " + " + n(a*b)
		res.Steps = []string{
			"take x = " + n(x),
			"x² = " + n(x*x),
			"sum a + b = " + n(a+b),
			"product ab = " + n(a*b),
			"result: " + n(final),
		}
	case Conjugates:
		final, direct = a2-b2, (a+b)*(a-b)
		res.Expression = "(" + n(a) + " + " + n(b) + ")(" + n(a) + " - " + n(b) + ")"
		res.Expanded = n(a2) + " - " + n(b2)
		res.Steps = []string{
			"a² = " + n(a2),
			"b² = " + n(b2),
			"difference: " + n(final),
		}
	}

	res.Value = strconv.FormatFloat(final, 'f', 4, 64)
	res.Direct = strconv.FormatFloat(direct, 'f', 4, 64)
	res.Verified = math.Abs(final-direct) < verifyTolerance
	return res
}

func n(v float64) string {
	return complexnum.FormatReal(v, 6)
}
