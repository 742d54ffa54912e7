package service

import (
	"github.com/algebralab/algebralab/internal/history/store"
)

// DivideRequest divides Polynomial by (x - Root).
type DivideRequest struct {
	Polynomial string `json:"polynomial"`
	Root       string `json:"root"`
}

// DivideResponse is the synthetic-division table and its reading.
type DivideResponse struct {
	Polynomial   string   `json:"polynomial"`
	Root         string   `json:"root"`
	Coefficients []string `json:"coefficients"`
	Multipliers  []string `json:"multipliers"`
	Results      []string `json:"results"`
	Quotient     string   `json:"quotient"`
	Remainder    string   `json:"remainder"`
	Exact        bool     `json:"exact"`
}

// ConvertRequest converts a complex number given in one form. For the
// cartesian form First and Second are the real and imaginary parts, for the
// polar and exponential forms the modulus and the angle in radians.
type ConvertRequest struct {
	From   string `json:"from"`
	First  string `json:"first"`
	Second string `json:"second"`
}

// ConvertResponse holds the number in all three forms.
type ConvertResponse struct {
	Real        float64 `json:"real"`
	Imag        float64 `json:"imag"`
	Modulus     float64 `json:"modulus"`
	Angle       float64 `json:"angle"`
	RealText    string  `json:"real_text"`
	ImagText    string  `json:"imag_text"`
	ModulusText string  `json:"modulus_text"`
	AngleText   string  `json:"angle_text"`
	Cartesian   string  `json:"cartesian"`
	Polar       string  `json:"polar"`
	Exponential string  `json:"exponential"`
}

// SolveRequest solves a linear equation; Variable defaults to x.
type SolveRequest struct {
	Equation string `json:"equation"`
	Variable string `json:"variable,omitempty"`
}

// SolveResponse is the solved equation.
type SolveResponse struct {
	Equation   string  `json:"equation"`
	Variable   string  `json:"variable"`
	Simplified string  `json:"simplified"`
	A          float64 `json:"a"`
	B          float64 `json:"b"`
	Value      float64 `json:"value"`
	Text       string  `json:"text"`
}

// FormulaRequest rearranges a formula for each of its variables.
type FormulaRequest struct {
	Formula string `json:"formula"`
}

// FormulaRow is one rearrangement; Error is set instead of failing the call.
type FormulaRow struct {
	Variable string   `json:"variable"`
	Text     string   `json:"text"`
	Error    string   `json:"error,omitempty"`
	Steps    []string `json:"steps,omitempty"`
}

// FormulaResponse lists the rearrangements.
type FormulaResponse struct {
	Formula   string       `json:"formula"`
	Left      string       `json:"left"`
	Right     string       `json:"right"`
	Variables []string     `json:"variables"`
	Terms     []string     `json:"terms"`
	Rows      []FormulaRow `json:"rows"`
}

// IsolateRequest isolates Variable in Expression, where Expression equals
// Target.
type IsolateRequest struct {
	Expression string `json:"expression"`
	Variable   string `json:"variable"`
	Target     string `json:"target"`
}

// Step is one rewrite of an isolation.
type Step struct {
	Description string `json:"description"`
	Equation    string `json:"equation"`
}

// IsolateResponse is the isolated variable.
type IsolateResponse struct {
	Variable string `json:"variable"`
	Value    string `json:"value"`
	Text     string `json:"text"`
	Steps    []Step `json:"steps"`
}

// EvaluateRequest runs a worksheet: assignments, then equations.
type EvaluateRequest struct {
	Variables string `json:"variables"`
	Equations string `json:"equations"`
}

// NamedValue is a variable and its formatted value.
type NamedValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EvaluatedLine is one evaluated equation of a worksheet.
type EvaluatedLine struct {
	Source string `json:"source"`
	Name   string `json:"name,omitempty"`
	Value  string `json:"value"`
	Text   string `json:"text"`
}

// EvaluateResponse is the evaluated worksheet.
type EvaluateResponse struct {
	Variables      []NamedValue    `json:"variables"`
	EvaluatedLines []EvaluatedLine `json:"lines"`
}

// ProductRequest expands a notable product.
type ProductRequest struct {
	Kind string `json:"kind"`
	Mode string `json:"mode,omitempty"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// ProductResponse is the expanded product.
type ProductResponse struct {
	Kind       string   `json:"kind"`
	Mode       string   `json:"mode"`
	Expression string   `json:"expression"`
	Formula    string   `json:"formula"`
	Steps      []string `json:"steps"`
	Expanded   string   `json:"expanded"`
	Value      string   `json:"value,omitempty"`
	Direct     string   `json:"direct,omitempty"`
	Verified   bool     `json:"verified"`
}

// ClassifyRequest classifies a number such as "-7/2" or "√2".
type ClassifyRequest struct {
	Input string `json:"input"`
}

// ClassifyResponse is the classified value.
type ClassifyResponse struct {
	Input  string  `json:"input"`
	Value  float64 `json:"value"`
	Class  string  `json:"class"`
	Symbol string  `json:"symbol"`
}

// TranslateRequest translates between words and algebra.
type TranslateRequest struct {
	Direction string `json:"direction,omitempty"`
	Input     string `json:"input"`
}

// TranslateResponse is one conversion.
type TranslateResponse struct {
	Direction string `json:"direction"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	PatternID int    `json:"pattern_id"`
	Category  string `json:"category"`
}

// HistoryRequest lists (or clears) a history book; an empty Book means all.
type HistoryRequest struct {
	Book  string `json:"book,omitempty"`
	Limit int    `json:"limit,omitempty"`
	Clear bool   `json:"clear,omitempty"`
}

// HistoryResponse holds the entries, newest first.
type HistoryResponse struct {
	Entries []*store.Entry `json:"entries"`
	Cleared int64          `json:"cleared,omitempty"`
}
