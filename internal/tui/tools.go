package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/algebralab/algebralab/internal/lab/service"
)

// field is one input of a tool
type field struct {
	label       string
	placeholder string
	value       string
}

// tool is one tab of the TUI. run returns the lines to show; on error the
// lines computed so far are shown above the error.
type tool struct {
	name   string
	fields []field
	run    func(ctx context.Context, svc *service.Service, v []string) ([]string, error)
}

func defaultTools() []tool {
	return []tool{
		{
			name: "Divide",
			fields: []field{
				{label: "P(x)", placeholder: "x^3 - 6x^2 + 11x - 6"},
				{label: "root", placeholder: "1"},
			},
			run: runDivide,
		},
		{
			name: "Complex",
			fields: []field{
				{label: "form", placeholder: "cartesian | polar | exponential", value: "cartesian"},
				{label: "first", placeholder: "real part or modulus"},
				{label: "second", placeholder: "imaginary part or angle (pi/3)"},
			},
			run: runConvert,
		},
		{
			name:   "Solve",
			fields: []field{{label: "equation", placeholder: "2(x + 3) = 5x - 3"}, {label: "variable", placeholder: "x", value: "x"}},
			run:    runSolve,
		},
		{
			name:   "Formula",
			fields: []field{{label: "formula", placeholder: "d = v*i*t"}},
			run:    runFormula,
		},
		{
			name: "Isolate",
			fields: []field{
				{label: "expression", placeholder: "v*i*t"},
				{label: "variable", placeholder: "t"},
				{label: "equals", placeholder: "d"},
			},
			run: runIsolate,
		},
		{
			name: "Worksheet",
			fields: []field{
				{label: "variables", placeholder: "x = 10, y = 5"},
				{label: "equations", placeholder: "total = x * y; total / 2"},
			},
			run: runEvaluate,
		},
		{
			name: "Products",
			fields: []field{
				{label: "kind", placeholder: "square-sum | square-diff | cube-sum | cube-diff | common-term | conjugates", value: "square-sum"},
				{label: "mode", placeholder: "numeric | algebraic", value: "numeric"},
				{label: "a", placeholder: "3x"},
				{label: "b", placeholder: "5y"},
			},
			run: runProduct,
		},
		{
			name:   "Classify",
			fields: []field{{label: "number", placeholder: "-7/2, √2, pi"}},
			run:    runClassify,
		},
		{
			name: "Translate",
			fields: []field{
				{label: "direction", placeholder: "natural | algebraic", value: "natural"},
				{label: "input", placeholder: "the sum of x and y"},
			},
			run: runTranslate,
		},
		{
			name:   "History",
			fields: []field{{label: "book", placeholder: "empty for all books"}},
			run:    runHistory,
		},
	}
}

func runDivide(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.Divide(ctx, &service.DivideRequest{Polynomial: v[0], Root: v[1]})
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}

func runConvert(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.ConvertComplex(ctx, &service.ConvertRequest{From: v[0], First: v[1], Second: v[2]})
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}

func runSolve(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.SolveLinear(ctx, &service.SolveRequest{Equation: v[0], Variable: v[1]})
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}

func runFormula(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.SolveFormula(ctx, &service.FormulaRequest{Formula: v[0]})
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}

func runIsolate(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.Isolate(ctx, &service.IsolateRequest{Expression: v[0], Variable: v[1], Target: v[2]})
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}

// runEvaluate accepts ";" between equations since a field holds one line.
func runEvaluate(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	equations := strings.ReplaceAll(v[1], ";", "\n")
	resp, err := svc.Evaluate(ctx, &service.EvaluateRequest{Variables: v[0], Equations: equations})
	if resp == nil {
		return nil, err
	}
	return resp.Lines(), err
}

func runProduct(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.NotableProduct(ctx, &service.ProductRequest{Kind: v[0], Mode: v[1], A: v[2], B: v[3]})
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}

func runClassify(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.Classify(ctx, &service.ClassifyRequest{Input: v[0]})
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}

func runTranslate(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.Translate(ctx, &service.TranslateRequest{Direction: v[0], Input: v[1]})
	if err != nil {
		return nil, err
	}
	stats := svc.Translator().Stats()
	return append(resp.Lines(), fmt.Sprintf("%d patterns from %s, %d conversions", stats.Patterns, stats.Source, stats.Conversions)), nil
}

func runHistory(ctx context.Context, svc *service.Service, v []string) ([]string, error) {
	resp, err := svc.History(ctx, &service.HistoryRequest{Book: strings.TrimSpace(v[0])})
	if err != nil {
		return nil, err
	}
	return resp.Lines(), nil
}
