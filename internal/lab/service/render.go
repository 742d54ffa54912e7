package service

import (
	"fmt"
	"strings"
)

// Lines renders the division table and its reading.
func (r *DivideResponse) Lines() []string {
	return []string{
		fmt.Sprintf("(%s) / (x - %s)", r.Polynomial, r.Root),
		"",
		tableRow(r.Root+" |", r.Coefficients),
		tableRow("|", r.Multipliers),
		tableRow("", r.Results),
		"",
		"quotient:  " + r.Quotient,
		"remainder: " + r.Remainder,
	}
}

func tableRow(lead string, cells []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%8s", lead))
	for _, c := range cells {
		sb.WriteString(fmt.Sprintf("%12s", c))
	}
	return strings.TrimRight(sb.String(), " ")
}

// Lines renders the three forms and the parts.
func (r *ConvertResponse) Lines() []string {
	return []string{
		"cartesian:   " + r.Cartesian,
		"polar:       " + r.Polar,
		"exponential: " + r.Exponential,
		fmt.Sprintf("re = %s, im = %s, r = %s, θ = %s", r.RealText, r.ImagText, r.ModulusText, r.AngleText),
	}
}

// Lines renders the equation, its reduced form and the solution.
func (r *SolveResponse) Lines() []string {
	return []string{
		r.Equation,
		r.Simplified + " = 0",
		r.Text,
	}
}

// Lines renders one row per variable; failed rows show their error inline.
func (r *FormulaResponse) Lines() []string {
	lines := []string{
		fmt.Sprintf("%s = %s", r.Left, r.Right),
		"terms: " + strings.Join(r.Terms, "  "),
		"",
	}
	for _, row := range r.Rows {
		if row.Error != "" {
			lines = append(lines, fmt.Sprintf("%s: Error: %s", row.Variable, row.Error))
			continue
		}
		lines = append(lines, row.Text)
	}
	return lines
}

// Lines renders the numbered steps followed by the result.
func (r *IsolateResponse) Lines() []string {
	var lines []string
	for i, st := range r.Steps {
		lines = append(lines, fmt.Sprintf("%d. %-28s %s", i+1, st.Description, st.Equation))
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return append(lines, r.Text)
}

// Lines renders the variables and then the evaluated equations.
func (r *EvaluateResponse) Lines() []string {
	var lines []string
	for _, nv := range r.Variables {
		lines = append(lines, fmt.Sprintf("%s = %s", nv.Name, nv.Value))
	}
	if len(r.EvaluatedLines) > 0 && len(lines) > 0 {
		lines = append(lines, "")
	}
	for _, l := range r.EvaluatedLines {
		lines = append(lines, l.Text)
	}
	return lines
}

// Lines renders the product, its identity, the steps and the check.
func (r *ProductResponse) Lines() []string {
	lines := []string{r.Expression, r.Formula, ""}
	lines = append(lines, r.Steps...)
	lines = append(lines, "", "= "+r.Expanded)
	if r.Value != "" {
		check := "✗"
		if r.Verified {
			check = "✓"
		}
		lines = append(lines, fmt.Sprintf("value %s, direct %s %s", r.Value, r.Direct, check))
	}
	return lines
}

// Lines renders the classification on one line.
func (r *ClassifyResponse) Lines() []string {
	return []string{fmt.Sprintf("%s ≈ %g is %s (%s)", r.Input, r.Value, r.Class, r.Symbol)}
}

// Lines renders the translation and the pattern that produced it.
func (r *TranslateResponse) Lines() []string {
	return []string{
		r.Output,
		fmt.Sprintf("pattern %d (%s)", r.PatternID, r.Category),
	}
}

// Lines renders one entry per line, newest first.
func (r *HistoryResponse) Lines() []string {
	if r.Cleared > 0 {
		return []string{fmt.Sprintf("%d entries removed", r.Cleared)}
	}
	if len(r.Entries) == 0 {
		return []string{"no entries"}
	}
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		lines = append(lines, fmt.Sprintf("%s  %-16s %s  ->  %s",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Book, e.Input, e.Output))
	}
	return lines
}
