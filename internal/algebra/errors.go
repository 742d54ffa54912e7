// Package algebra holds the error taxonomy shared by the algebra engines.
//
// Engines return these values; the service layer classifies them into coded
// errors and the presentation layer renders them inline.
package algebra

import (
	"errors"
	"fmt"
)

// ParseError reports malformed numeric, complex or polynomial text.
type ParseError struct {
	Input    string // full input text
	Term     string // offending term, if known
	Position int    // byte offset in Input, -1 if unknown
	Reason   string
}

func (e *ParseError) Error() string {
	switch {
	case e.Term != "" && e.Term != e.Input:
		return fmt.Sprintf("cannot parse term %q: %s", e.Term, e.Reason)
	case e.Position >= 0 && e.Input != "":
		return fmt.Sprintf("cannot parse %q at position %d: %s", e.Input, e.Position, e.Reason)
	case e.Input != "":
		return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
	default:
		return "cannot parse input: " + e.Reason
	}
}

// NewParseError returns a ParseError without position information.
func NewParseError(input, term, reason string) *ParseError {
	return &ParseError{Input: input, Term: term, Position: -1, Reason: reason}
}

// Equation error kinds.
var (
	ErrNoSolution        = errors.New("no solution")
	ErrInfiniteSolutions = errors.New("infinite solutions")
	ErrNotLinear         = errors.New("equation is not linear")
)

// EquationError reports a degenerate or unsupported linear equation.
// errors.Is matches the Kind sentinel.
type EquationError struct {
	Equation string
	Kind     error
	Detail   string
}

func (e *EquationError) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *EquationError) Unwrap() error { return e.Kind }

// IsolationError reports that a variable cannot be isolated in an expression.
type IsolationError struct {
	Variable   string
	Expression string
	Reason     string
}

func (e *IsolationError) Error() string {
	if e.Variable == "" {
		return fmt.Sprintf("cannot rearrange %s: %s", e.Expression, e.Reason)
	}
	if e.Expression == "" {
		return fmt.Sprintf("cannot isolate %s: %s", e.Variable, e.Reason)
	}
	return fmt.Sprintf("cannot isolate %s in %s: %s", e.Variable, e.Expression, e.Reason)
}

// ErrEmptyPolynomial is returned by operations that need at least one coefficient.
var ErrEmptyPolynomial = errors.New("polynomial has no coefficients")

// ErrDivisionByZero is returned by complex division and evaluation.
var ErrDivisionByZero = errors.New("division by zero")
