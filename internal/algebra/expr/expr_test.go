package expr

import (
	"errors"
	"math"
	"math/cmplx"
	"strings"
	"testing"

	"github.com/algebralab/algebralab/internal/algebra"
)

func TestTokenize(t *testing.T) {
	tokens, err := NewLexer("2x² − √3·π ÷ (1.5)").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []TokenType{
		TokenNumber, TokenIdent, TokenSquare, TokenMinus, TokenRoot, TokenNumber,
		TokenStar, TokenIdent, TokenSlash, TokenLeftParen, TokenNumber, TokenRightParen, TokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d = %v, want %v", i, tokens[i], tt)
		}
	}
}

func TestTokenizeExponent(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"1e-3x", []string{"1e-3", "x"}},
		{"2.5E2", []string{"2.5E2"}},
		{"3ex", []string{"3", "ex"}},
		{"4e-y", []string{"4", "e", "-", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, err := NewLexer(tt.input).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.input, err)
			}
			var got []string
			for _, tok := range tokens {
				if tok.Type != TokenEOF {
					got = append(got, tok.Value)
				}
			}
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeIllegal(t *testing.T) {
	if _, err := NewLexer("2 $ 3").Tokenize(); err == nil {
		t.Error("expected error for '$'")
	}
}

func TestEvaluateReal(t *testing.T) {
	tests := []struct {
		input string
		env   Env
		want  float64
	}{
		{"1 + 2 * 3", nil, 7},
		{"(1 + 2) * 3", nil, 9},
		{"2^3^2", nil, 512},
		{"-2^2", nil, -4},
		{"(-2)^2", nil, 4},
		{"2x + 1", Env{"x": 3}, 7},
		{"3(x - 1)", Env{"x": 3}, 6},
		{"(x + 1)(x - 1)", Env{"x": 3}, 8},
		{"2pi", nil, 2 * math.Pi},
		{"√16 + 3²", nil, 13},
		{"sqrt(2)^2", nil, 2},
		{"10 / 4", nil, 2.5},
		{"v*i*t", Env{"v": 2, "i": 3, "t": 4}, 24},
		{"abs(-3)", nil, 3},
		{"ln(e)", nil, 1},
		{"2^-1", nil, 0.5},
		{"4 ÷ 2 × 3", nil, 6},
		{"1e-3", nil, 0.001},
		{"2.5e2", nil, 250},
		{"1E+2 + 1", nil, 101},
		{"2e", nil, 2 * math.E},
		{"2e-1", nil, 0.2},
		{"2e - 1", nil, 2*math.E - 1},
		{"2e^2", nil, 2 * math.E * math.E},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := EvaluateReal(tt.input, tt.env)
			if err != nil {
				t.Fatalf("EvaluateReal(%q): %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EvaluateReal(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluateComplex(t *testing.T) {
	tests := []struct {
		input string
		want  complex128
	}{
		{"i", 1i},
		{"2i", 2i},
		{"3 + 2i", 3 + 2i},
		{"3 - i", 3 - 1i},
		{"i^2", -1},
		{"(1 + i)(1 - i)", 2},
		{"sqrt(-4)", 2i},
		{"(1+i)/i", 1 - 1i},
		{"-2i", -2i},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Evaluate(tt.input, nil)
			if err != nil {
				t.Fatalf("Evaluate(%q): %v", tt.input, err)
			}
			if cmplx.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []string{
		"",
		"1 +",
		"(1 + 2",
		"1 + 2)",
		"2 $ 3",
		"1 / 0",
		"y + 1",
		"a = b",
		"sqrt(",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Evaluate(input, nil)
			var pe *algebra.ParseError
			if !errors.As(err, &pe) {
				t.Errorf("Evaluate(%q) error = %v, want *ParseError", input, err)
			}
		})
	}
}

func TestEvaluateRealRejectsComplex(t *testing.T) {
	if _, err := EvaluateReal("sqrt(-1)", nil); err == nil {
		t.Error("EvaluateReal(sqrt(-1)) should fail")
	}
}

func TestEnvShadowsConstants(t *testing.T) {
	got, err := EvaluateReal("i * 2", Env{"i": 0.05})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.1 {
		t.Errorf("got %v, want 0.1", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"v*i*t", "v * i * t"},
		{"d / (v*i)", "d / (v * i)"},
		{"(a+b)^2", "(a + b)^2"},
		{"a - (b + c)", "a - (b + c)"},
		{"a - b + c", "a - b + c"},
		{"-(x + 1)", "-(x + 1)"},
		{"2x", "2 * x"},
		{"x^(1/2)", "x^(1 / 2)"},
		{"sqrt(x+1)", "sqrt(x + 1)"},
		{"a / (b / c)", "a / (b / c)"},
		{"(-2)^2", "(-2)^2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := String(MustParse(tt.input)); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x * 1", "x"},
		{"0 + x", "x"},
		{"x - 0", "x"},
		{"--x", "x"},
		{"2 + 3", "5"},
		{"x + -3", "x - 3"},
		{"x - (-y)", "x + y"},
		{"x / 1", "x"},
		{"x^1", "x"},
		{"1 / 3", "1 / 3"},
		{"9 / 3", "3"},
		{"0 * x + 5", "5"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := String(Simplify(MustParse(tt.input))); got != tt.want {
				t.Errorf("Simplify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearCoefficients(t *testing.T) {
	tests := []struct {
		input string
		a, b  float64
	}{
		{"(3x + 5) - (8)", 3, -3},
		{"(2x + 3) - (x + 7)", 1, -4},
		{"x/2 - 1", 0.5, -1},
		{"(5 - 2(x - 1))", -2, 7},
		{"4", 0, 4},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			a, b, err := LinearCoefficients(MustParse(tt.input), "x")
			if err != nil {
				t.Fatalf("LinearCoefficients: %v", err)
			}
			if math.Abs(a-tt.a) > 1e-12 || math.Abs(b-tt.b) > 1e-12 {
				t.Errorf("got a=%v b=%v, want a=%v b=%v", a, b, tt.a, tt.b)
			}
		})
	}
}

func TestLinearRejectsNonLinear(t *testing.T) {
	for _, input := range []string{"x*x", "1/x", "x^2", "sqrt(x)"} {
		_, _, err := LinearCoefficients(MustParse(input), "x")
		if !errors.Is(err, algebra.ErrNotLinear) {
			t.Errorf("LinearCoefficients(%q) error = %v, want ErrNotLinear", input, err)
		}
	}
}

func TestFreeVariables(t *testing.T) {
	got := FreeVariables(MustParse("2*pi*r + h*r + e"))
	want := []string{"r", "h"}
	if len(got) != len(want) {
		t.Fatalf("FreeVariables = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FreeVariables[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if Count(MustParse("x + x*y"), "x") != 2 {
		t.Error("Count(x) should be 2")
	}
}
