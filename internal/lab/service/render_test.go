package service

import (
	"context"
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	svc := New(DefaultConfig())
	ctx := context.Background()

	div, err := svc.Divide(ctx, &DivideRequest{Polynomial: "x^2-1", Root: "1"})
	if err != nil {
		t.Fatal(err)
	}
	lines := div.Lines()
	if lines[len(lines)-2] != "quotient:  x + 1" || lines[len(lines)-1] != "remainder: 0" {
		t.Errorf("DivideResponse.Lines() = %q", lines)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), "1 |") {
		t.Errorf("first table row = %q", lines[2])
	}

	iso, err := svc.Isolate(ctx, &IsolateRequest{Expression: "v*i*t", Variable: "t", Target: "d"})
	if err != nil {
		t.Fatal(err)
	}
	lines = iso.Lines()
	if lines[len(lines)-1] != iso.Text || !strings.HasPrefix(lines[0], "1. ") {
		t.Errorf("IsolateResponse.Lines() = %q", lines)
	}
}

func TestHistoryLines(t *testing.T) {
	tests := []struct {
		name string
		resp HistoryResponse
		want string
	}{
		{"empty", HistoryResponse{}, "no entries"},
		{"cleared", HistoryResponse{Cleared: 3}, "3 entries removed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.resp.Lines()
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
		})
	}
}
