package service

import (
	"context"
	"strings"

	mdwerror "github.com/algebralab/algebralab/foundation/core/error"
	"github.com/algebralab/algebralab/internal/algebra/classify"
	"github.com/algebralab/algebralab/internal/algebra/converter"
	"github.com/algebralab/algebralab/internal/algebra/isolate"
	"github.com/algebralab/algebralab/internal/algebra/linear"
	"github.com/algebralab/algebralab/internal/algebra/poly"
	"github.com/algebralab/algebralab/internal/algebra/products"
	"github.com/algebralab/algebralab/internal/algebra/translate"
	"github.com/algebralab/algebralab/internal/algebra/worksheet"
	"github.com/algebralab/algebralab/internal/history/store"
)

// Divide parses the polynomial and the root and divides synthetically.
func (s *Service) Divide(ctx context.Context, req *DivideRequest) (*DivideResponse, error) {
	timer := s.start("divide", req.Polynomial)

	coeffs, err := poly.ParsePolynomial(req.Polynomial)
	if err != nil {
		return nil, s.finish(timer, "divide", err)
	}
	root, err := poly.ParseComplexLiteral(req.Root)
	if err != nil {
		return nil, s.finish(timer, "divide", err)
	}
	res, err := poly.SyntheticDivide(coeffs, root)
	if err != nil {
		return nil, s.finish(timer, "divide", err)
	}
	s.finish(timer, "divide", nil)

	coefficients, multipliers, results := res.Rows(s.precision)
	resp := &DivideResponse{
		Polynomial:   poly.FormatPolynomial(coeffs, s.precision),
		Root:         root.Format(s.precision),
		Coefficients: coefficients,
		Multipliers:  multipliers,
		Results:      results,
		Quotient:     res.FormatQuotient(s.precision),
		Remainder:    res.Remainder().Format(s.precision),
		Exact:        res.IsExact(),
	}
	s.record(ctx, BookDivision, "synthetic-division",
		"("+resp.Polynomial+") / (x - "+resp.Root+")",
		resp.Quotient+", remainder "+resp.Remainder)
	return resp, nil
}

// ConvertComplex converts a complex number between cartesian, polar and
// exponential form.
func (s *Service) ConvertComplex(ctx context.Context, req *ConvertRequest) (*ConvertResponse, error) {
	timer := s.start("convert", req.From+" "+req.First+", "+req.Second)

	form, err := converter.ParseForm(req.From)
	if err != nil {
		return nil, s.finish(timer, "convert", err)
	}
	r, err := converter.Convert(form, req.First, req.Second)
	if err != nil {
		return nil, s.finish(timer, "convert", err)
	}
	s.finish(timer, "convert", nil)

	s.record(ctx, BookComplex, form.String(), req.First+", "+req.Second, r.Cartesian+" = "+r.Exponential)
	return NewConvertResponse(r), nil
}

// ConvertInSession is ConvertComplex through a converter session owned by
// one client. An update the session skips answers with the last
// representation and is not recorded.
func (s *Service) ConvertInSession(ctx context.Context, session *converter.Session, req *ConvertRequest) (*ConvertResponse, error) {
	timer := s.start("convert", req.From+" "+req.First+", "+req.Second)

	form, err := converter.ParseForm(req.From)
	if err != nil {
		return nil, s.finish(timer, "convert", err)
	}
	r, applied, err := session.Update(form, req.First, req.Second)
	if err != nil {
		return nil, s.finish(timer, "convert", err)
	}
	s.finish(timer, "convert", nil)

	if !applied {
		if last, ok := session.Last(); ok {
			r = last
		}
		return NewConvertResponse(r), nil
	}
	s.record(ctx, BookComplex, form.String(), req.First+", "+req.Second, r.Cartesian+" = "+r.Exponential)
	return NewConvertResponse(r), nil
}

// NewConvertResponse copies a converter representation.
func NewConvertResponse(r converter.Representation) *ConvertResponse {
	return &ConvertResponse{
		Real:        r.Real,
		Imag:        r.Imag,
		Modulus:     r.Modulus,
		Angle:       r.Angle,
		RealText:    r.RealText,
		ImagText:    r.ImagText,
		ModulusText: r.ModulusText,
		AngleText:   r.AngleText,
		Cartesian:   r.Cartesian,
		Polar:       r.Polar,
		Exponential: r.Exponential,
	}
}

// SolveLinear solves a linear equation in one variable.
func (s *Service) SolveLinear(ctx context.Context, req *SolveRequest) (*SolveResponse, error) {
	timer := s.start("solve", req.Equation)

	variable := req.Variable
	if variable == "" {
		variable = linear.DefaultVariable
	}
	sol, err := linear.SolveFor(req.Equation, variable)
	if err := s.finish(timer, "solve", err); err != nil {
		return nil, err
	}

	s.record(ctx, BookLinear, "linear", req.Equation, sol.String())
	return &SolveResponse{
		Equation:   sol.Equation,
		Variable:   sol.Variable,
		Simplified: sol.Simplified,
		A:          sol.Coefficients.A,
		B:          sol.Coefficients.B,
		Value:      sol.X,
		Text:       sol.String(),
	}, nil
}

// SolveFormula rearranges a formula for every variable. Variables that
// cannot be isolated come back as error rows.
func (s *Service) SolveFormula(ctx context.Context, req *FormulaRequest) (*FormulaResponse, error) {
	timer := s.start("formula", req.Formula)

	res, err := isolate.SolveFormula(req.Formula)
	if err := s.finish(timer, "formula", err); err != nil {
		return nil, err
	}

	resp := &FormulaResponse{
		Formula:   res.Formula,
		Left:      res.Left,
		Right:     res.Right,
		Variables: res.Variables,
	}
	for _, t := range res.Terms {
		resp.Terms = append(resp.Terms, t.String())
	}
	var texts []string
	for _, row := range res.Rows {
		out := FormulaRow{Variable: row.Variable, Text: row.Text}
		if row.Err != nil {
			out.Error = row.Err.Error()
			s.logger.Debug("variable not isolated", "variable", row.Variable, "error", row.Err)
		}
		for _, step := range row.Steps {
			out.Steps = append(out.Steps, step.Description+": "+step.Equation)
		}
		resp.Rows = append(resp.Rows, out)
		texts = append(texts, row.Text)
	}

	s.record(ctx, BookFormula, "formula", req.Formula, strings.Join(texts, "; "))
	return resp, nil
}

// Isolate solves Expression = Target for Variable.
func (s *Service) Isolate(ctx context.Context, req *IsolateRequest) (*IsolateResponse, error) {
	timer := s.start("isolate", req.Expression)

	res, err := isolate.Isolate(req.Expression, req.Variable, req.Target)
	if err := s.finish(timer, "isolate", err); err != nil {
		return nil, err
	}

	resp := &IsolateResponse{
		Variable: res.Variable,
		Value:    res.Value,
		Text:     res.String(),
	}
	for _, step := range res.Steps {
		resp.Steps = append(resp.Steps, Step{Description: step.Description, Equation: step.Equation})
	}
	s.record(ctx, BookIsolate, req.Variable, req.Target+" = "+req.Expression, resp.Text)
	return resp, nil
}

// Evaluate runs a worksheet. On failure the lines evaluated so far are
// returned together with the error.
func (s *Service) Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluateResponse, error) {
	timer := s.start("evaluate", req.Equations)

	res, err := worksheet.Evaluate(req.Variables, req.Equations)
	resp := &EvaluateResponse{
		Variables:      []NamedValue{},
		EvaluatedLines: []EvaluatedLine{},
	}
	for _, a := range res.Variables {
		resp.Variables = append(resp.Variables, NamedValue{Name: a.Name, Value: a.Value.Format(worksheet.Precision)})
	}
	var texts []string
	for _, l := range res.Lines {
		resp.EvaluatedLines = append(resp.EvaluatedLines, EvaluatedLine{
			Source: l.Source,
			Name:   l.Name,
			Value:  l.Value.Format(worksheet.Precision),
			Text:   l.Text,
		})
		texts = append(texts, l.Text)
	}
	if err := s.finish(timer, "evaluate", err); err != nil {
		return resp, err
	}

	s.record(ctx, BookWorksheet, "worksheet", strings.TrimSpace(req.Variables+"\n"+req.Equations), strings.Join(texts, "; "))
	return resp, nil
}

// NotableProduct expands a notable product numerically or algebraically.
func (s *Service) NotableProduct(ctx context.Context, req *ProductRequest) (*ProductResponse, error) {
	timer := s.start("product", req.Kind+" "+req.A+", "+req.B)

	kind, err := products.ParseKind(req.Kind)
	if err != nil {
		return nil, s.finish(timer, "product", err)
	}
	mode, err := products.ParseMode(req.Mode)
	if err != nil {
		return nil, s.finish(timer, "product", err)
	}
	res, err := products.Calculate(kind, mode, req.A, req.B)
	if err := s.finish(timer, "product", err); err != nil {
		return nil, err
	}

	output := res.Expanded
	if res.Value != "" {
		output += " = " + res.Value
	}
	s.record(ctx, BookProducts, kind.String(), res.Expression, output)
	return &ProductResponse{
		Kind:       kind.String(),
		Mode:       mode.String(),
		Expression: res.Expression,
		Formula:    res.Formula,
		Steps:      res.Steps,
		Expanded:   res.Expanded,
		Value:      res.Value,
		Direct:     res.Direct,
		Verified:   res.Verified,
	}, nil
}

// Classify places a number in ℕ, ℤ, ℚ or ℝ−ℚ.
func (s *Service) Classify(ctx context.Context, req *ClassifyRequest) (*ClassifyResponse, error) {
	timer := s.start("classify", req.Input)

	res, err := classify.Classify(req.Input)
	if err := s.finish(timer, "classify", err); err != nil {
		return nil, err
	}

	s.record(ctx, BookClassify, res.Class.String(), req.Input, res.Class.Symbol())
	return &ClassifyResponse{
		Input:  res.Input,
		Value:  res.Value,
		Class:  res.Class.String(),
		Symbol: res.Class.Symbol(),
	}, nil
}

// Translate converts between natural language and algebra.
func (s *Service) Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error) {
	timer := s.start("translate", req.Input)

	dir, err := translate.ParseDirection(req.Direction)
	if err != nil {
		return nil, s.finish(timer, "translate", err)
	}
	c, err := s.translator.Translate(dir, req.Input)
	if err := s.finish(timer, "translate", err); err != nil {
		return nil, err
	}

	s.record(ctx, BookTranslate, c.Category, c.Input, c.Output)
	return &TranslateResponse{
		Direction: c.Direction.String(),
		Input:     c.Input,
		Output:    c.Output,
		PatternID: c.PatternID,
		Category:  c.Category,
	}, nil
}

// History lists a book, newest first, or clears it when Clear is set.
func (s *Service) History(ctx context.Context, req *HistoryRequest) (*HistoryResponse, error) {
	st, err := s.RequireHistory()
	if err != nil {
		return nil, err
	}

	if req.Clear {
		n, err := st.Clear(ctx, req.Book)
		if err != nil {
			return nil, mdwerror.Wrap(err, "history").
				WithCode(mdwerror.CodeDatabaseError).
				WithOperation("service.history")
		}
		s.logger.Info("history cleared", "book", req.Book, "entries", n)
		return &HistoryResponse{Entries: []*store.Entry{}, Cleared: n}, nil
	}

	entries, err := st.List(ctx, req.Book, req.Limit)
	if err != nil {
		return nil, mdwerror.Wrap(err, "history").
			WithCode(mdwerror.CodeDatabaseError).
			WithOperation("service.history")
	}
	if entries == nil {
		entries = []*store.Entry{}
	}
	return &HistoryResponse{Entries: entries}, nil
}
