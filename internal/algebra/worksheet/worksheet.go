// Package worksheet evaluates a block of variable assignments followed by
// equations, the way a student fills in a worksheet:
//
//	variables:  x = 10, y = 5
//	equations:  total = x * y
//	            total / 2
//
// Assignments are comma or newline separated and may use variables defined
// before them. An equation "name = expr" stores its value under name; a bare
// expression is only evaluated.
package worksheet

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/complexnum"
	"github.com/algebralab/algebralab/internal/algebra/expr"
)

// Precision used for values in Line.Text.
const Precision = 10

var assignment = regexp.MustCompile(`^([A-Za-z_]\w*)\s*=\s*(.+)$`)

// Assignment is a defined variable.
type Assignment struct {
	Name  string
	Value complexnum.Number
}

// Line is one evaluated equation.
type Line struct {
	Source string
	Name   string // empty for a bare expression
	Value  complexnum.Number
	Text   string // "total = 50" or "total / 2 = 25"
}

// Result holds the variables in definition order and the evaluated lines.
type Result struct {
	Variables []Assignment
	Lines     []Line
}

// Env returns the variables as an evaluation environment.
func (r Result) Env() expr.Env {
	env := make(expr.Env, len(r.Variables))
	for _, a := range r.Variables {
		env[a.Name] = a.Value.Complex128()
	}
	return env
}

// Evaluate runs the assignments and then the equations. Evaluation stops at
// the first failing entry; the returned Result holds everything before it.
func Evaluate(variables, equations string) (Result, error) {
	var res Result
	env := expr.Env{}

	set := func(name string, v complex128) {
		for i := range res.Variables {
			if res.Variables[i].Name == name {
				res.Variables[i].Value = complexnum.FromComplex128(v)
				env[name] = v
				return
			}
		}
		res.Variables = append(res.Variables, Assignment{Name: name, Value: complexnum.FromComplex128(v)})
		env[name] = v
	}

	for _, part := range splitAssignments(variables) {
		m := assignment.FindStringSubmatch(part)
		if m == nil {
			return res, algebra.NewParseError(part, part, `expected "name = value"`)
		}
		v, err := evaluate(m[2], env)
		if err != nil {
			return res, fmt.Errorf("variable %q: %w", m[1], err)
		}
		set(m[1], v)
	}

	for _, line := range strings.Split(equations, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := assignment.FindStringSubmatch(line); m != nil {
			v, err := evaluate(m[2], env)
			if err != nil {
				return res, fmt.Errorf("equation %q: %w", line, err)
			}
			set(m[1], v)
			n := complexnum.FromComplex128(v)
			res.Lines = append(res.Lines, Line{Source: line, Name: m[1], Value: n, Text: m[1] + " = " + n.Format(Precision)})
			continue
		}
		v, err := evaluate(line, env)
		if err != nil {
			return res, fmt.Errorf("equation %q: %w", line, err)
		}
		n := complexnum.FromComplex128(v)
		res.Lines = append(res.Lines, Line{Source: line, Value: n, Text: line + " = " + n.Format(Precision)})
	}
	return res, nil
}

func splitAssignments(text string) []string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		for _, part := range strings.Split(line, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
	}
	return parts
}

// evaluate reports every undefined variable at once before evaluating.
func evaluate(text string, env expr.Env) (complex128, error) {
	n, err := expr.Parse(text)
	if err != nil {
		return 0, err
	}
	var undefined []string
	for _, name := range expr.FreeVariables(n) {
		if _, ok := env[name]; !ok {
			undefined = append(undefined, name)
		}
	}
	if len(undefined) > 0 {
		sort.Strings(undefined)
		return 0, algebra.NewParseError(text, "", "undefined variables: "+strings.Join(undefined, ", "))
	}
	v, err := expr.Eval(n, env)
	if err != nil {
		return 0, err
	}
	return v, nil
}
