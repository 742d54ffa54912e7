package isolate

import (
	"strings"

	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/expr"
	"github.com/algebralab/algebralab/internal/algebra/terms"
)

// Row is the rearrangement of a formula for one variable. Text is
// "v = ..." or "Error: <message>" when Err is set.
type Row struct {
	Variable string
	Text     string
	Err      error
	Steps    []Step
}

// FormulaResult lists a formula rearranged for each of its variables.
type FormulaResult struct {
	Formula   string
	Left      string
	Right     string
	Variables []string
	Terms     []terms.Term // additive terms of the right side
	Rows      []Row
}

// SolveFormula rearranges a formula such as "d = v*i*t" for every variable
// it contains, in order of appearance. A formula needs exactly one '=' and
// at least two variables. A variable that cannot be isolated produces an
// error row; the other rows are still computed.
func SolveFormula(formula string) (FormulaResult, error) {
	res := FormulaResult{Formula: formula}

	left, right, err := terms.SplitEquation(formula)
	if err != nil {
		return res, err
	}
	res.Left, res.Right = left, right

	lt, err := expr.Parse(left)
	if err != nil {
		return res, err
	}
	rt, err := expr.Parse(right)
	if err != nil {
		return res, err
	}

	res.Variables = Variables(lt, rt)
	if len(res.Variables) < 2 {
		return res, &algebra.IsolationError{Expression: formula, Reason: "at least two variables are needed"}
	}
	res.Terms = terms.Split(right)

	for _, v := range res.Variables {
		row := Row{Variable: v}
		var result Result
		switch {
		case left == v:
			result = Result{Variable: v, Value: strings.TrimSpace(right)}
		case expr.Contains(rt, v):
			result, row.Err = Isolate(right, v, left)
		default:
			result, row.Err = Isolate(left, v, right)
		}
		if row.Err != nil {
			row.Text = Render("", row.Err)
		} else {
			row.Text = result.String()
			row.Steps = result.Steps
		}
		res.Rows = append(res.Rows, row)
	}
	return res, nil
}

// Variables returns the identifiers of the given trees in order of first
// appearance, excluding π.
func Variables(nodes ...expr.Node) []string {
	var out []string
	seen := map[string]bool{"pi": true, "π": true}
	for _, n := range nodes {
		for _, name := range expr.Identifiers(n) {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}
