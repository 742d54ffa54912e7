package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	err := New("boom")
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("unexpected token")
	err := Wrap(base, "polynomial could not be read").WithCode(CodeParse)

	if got := err.Error(); got != "polynomial could not be read: unexpected token" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, base) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if err.Severity() != SeverityLow {
		t.Errorf("parse errors should default to low severity, got %v", err.Severity())
	}
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapPreservesClassification(t *testing.T) {
	inner := New("no solution").WithCode(CodeEquation).WithDetail("a", 0)
	outer := Wrap(inner, "solve failed")

	if outer.Code() != CodeEquation {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeEquation)
	}
	if outer.Details()["a"] != 0 {
		t.Errorf("details not copied: %v", outer.Details())
	}
	if outer.RootCause() != inner {
		t.Errorf("RootCause() = %v, want inner error", outer.RootCause())
	}
}

func TestGetCodeThroughFmtWrap(t *testing.T) {
	inner := New("bad").WithCode(CodeIsolation)
	wrapped := errors.Join(errors.New("context"), inner)

	if !HasCode(wrapped, CodeIsolation) {
		t.Errorf("HasCode() should see through joined errors, got %v", GetCode(wrapped))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("plain errors should map to CodeUnknown")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeParse, "algebra"},
		{CodeEquation, "algebra"},
		{CodeIsolation, "algebra"},
		{CodeDatabaseError, "storage"},
		{CodeConfigError, "configuration"},
		{CodeServiceInitialization, "service"},
		{CodeUnknown, "generic"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %v, want %v", got, tt.want)
			}
			if !tt.code.IsValid() {
				t.Errorf("%v should be valid", tt.code)
			}
		})
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestExplicitSeverityWins(t *testing.T) {
	err := New("disk").WithSeverity(SeverityCritical).WithCode(CodeDatabaseError)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want critical", err.Severity())
	}
}

func TestStringAndJSON(t *testing.T) {
	err := New("no solution").
		WithCode(CodeEquation).
		WithOperation("linear.Solve").
		WithDetail("b", 5)

	s := err.String()
	for _, want := range []string{"Error: no solution", "Code: EQUATION_ERROR", "Operation: linear.Solve", "b=5"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal: %v", jerr)
	}
	var m map[string]interface{}
	if jerr := json.Unmarshal(raw, &m); jerr != nil {
		t.Fatalf("json.Unmarshal: %v", jerr)
	}
	if m["code"] != "EQUATION_ERROR" || m["operation"] != "linear.Solve" {
		t.Errorf("unexpected JSON: %s", raw)
	}
}
