package algebra

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{"term", NewParseError("2x+abc", "+abc", "not a number"), `cannot parse term "+abc": not a number`},
		{"position", &ParseError{Input: "2 $ 3", Position: 2, Reason: "illegal character"}, `cannot parse "2 $ 3" at position 2: illegal character`},
		{"input only", NewParseError("", "", "empty input"), "cannot parse input: empty input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEquationErrorIs(t *testing.T) {
	err := error(&EquationError{Equation: "0x+5", Kind: ErrNoSolution})
	if !errors.Is(err, ErrNoSolution) {
		t.Error("errors.Is(err, ErrNoSolution) = false")
	}
	if errors.Is(err, ErrInfiniteSolutions) {
		t.Error("errors.Is(err, ErrInfiniteSolutions) = true")
	}
	var eqErr *EquationError
	if !errors.As(err, &eqErr) || eqErr.Error() != "no solution" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestIsolationErrorMessage(t *testing.T) {
	err := &IsolationError{Variable: "z", Expression: "a*b", Reason: "variable does not occur"}
	if !strings.Contains(err.Error(), "cannot isolate z in a*b") {
		t.Errorf("Error() = %q", err.Error())
	}
}
