package complexnum

import (
	"errors"
	"math"
	"testing"

	"github.com/algebralab/algebralab/internal/algebra"
)

func TestArithmetic(t *testing.T) {
	a := New(3, 2)
	b := New(1, -4)

	if got := a.Add(b); got != New(4, -2) {
		t.Errorf("Add = %v, want 4 - 2i", got)
	}
	if got := a.Sub(b); got != New(2, 6) {
		t.Errorf("Sub = %v, want 2 + 6i", got)
	}
	// (3+2i)(1-4i) = 3 - 12i + 2i - 8i² = 11 - 10i
	if got := a.Mul(b); got != New(11, -10) {
		t.Errorf("Mul = %v, want 11 - 10i", got)
	}
	if got := I.Mul(I); got != New(-1, 0) {
		t.Errorf("i*i = %v, want -1", got)
	}
}

func TestDiv(t *testing.T) {
	q, err := New(11, -10).Div(New(1, -4))
	if err != nil {
		t.Fatalf("Div: %v", err)
	}
	if !q.ApproxEqual(New(3, 2), 1e-12) {
		t.Errorf("Div = %v, want 3 + 2i", q)
	}
	if _, err := One.Div(Zero); !errors.Is(err, algebra.ErrDivisionByZero) {
		t.Errorf("Div by zero error = %v", err)
	}
}

func TestImmutability(t *testing.T) {
	a := New(1, 1)
	_ = a.Add(New(5, 5))
	_ = a.Mul(New(2, 0))
	if a != New(1, 1) {
		t.Errorf("operand changed to %v", a)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		n    Number
		prec int
		want string
	}{
		{New(2, 0), 4, "2"},
		{New(1.0/3.0, 0), 4, "0.3333"},
		{New(2.50000, 0), 4, "2.5"},
		{New(-0.00001, 0), 4, "0"},
		{New(3, 2), 4, "3 + 2i"},
		{New(1, -1.5), 4, "1 - 1.5i"},
		{New(0, -2), 4, "-2i"},
		{New(0, 1), 4, "1i"},
		{New(1e-12, 3), 4, "3i"},
		{New(4, 1e-11), 4, "4"},
		{New(2.71828, 0), 2, "2.72"},
		{New(-1.25, 0.5), 1, "-1.3 + 0.5i"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.n.Format(tt.prec); got != tt.want {
				t.Errorf("Format(%d) = %q, want %q", tt.prec, got, tt.want)
			}
		})
	}
}

func TestStringUsesDefaultPrecision(t *testing.T) {
	if got := New(math.Pi, 0).String(); got != "3.1416" {
		t.Errorf("String() = %q, want 3.1416", got)
	}
}

func TestPolar(t *testing.T) {
	n := FromPolar(2, math.Pi/2)
	if !n.ApproxEqual(New(0, 2), 1e-12) {
		t.Errorf("FromPolar(2, π/2) = %v", n)
	}
	if got := New(0, 2).Arg(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Arg = %v", got)
	}
	if got := New(3, 4).Abs(); got != 5 {
		t.Errorf("Abs = %v, want 5", got)
	}
}
