package terms

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		input string
		want  []Term
	}{
		{"x^2-1", []Term{{'+', "x^2"}, {'-', "1"}}},
		{"x^2 - (1+i)x + 3", []Term{{'+', "x^2"}, {'-', "(1+i)x"}, {'+', "3"}}},
		{"-a*b+c/(d-e)", []Term{{'-', "a*b"}, {'+', "c/(d-e)"}}},
		{"2*-3+x^-2", []Term{{'+', "2*-3"}, {'+', "x^-2"}}},
		{"v*i*t", []Term{{'+', "v*i*t"}}},
		{"+5", []Term{{'+', "5"}}},
		{"((a+b)-c)-d", []Term{{'+', "((a+b)-c)"}, {'-', "d"}}},
		{"1e-3+2i", []Term{{'+', "1e-3"}, {'+', "2i"}}},
		{"2.5E+2x-1", []Term{{'+', "2.5E+2x"}, {'-', "1"}}},
		{"x2e-3", []Term{{'+', "x2e"}, {'-', "3"}}},
		{"2e-x", []Term{{'+', "2e"}, {'-', "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Split(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
	if got := Split("   "); got != nil {
		t.Errorf("Split(blank) = %v, want nil", got)
	}
}

func TestJoinReconstructs(t *testing.T) {
	for _, input := range []string{"x^2-(1+i)x+3", "-a*b+c/(d-e)", "a-b-c"} {
		if got := Join(Split(input)); got != input {
			t.Errorf("Join(Split(%q)) = %q", input, got)
		}
	}
}

func TestBalanced(t *testing.T) {
	tests := map[string]bool{
		"(a+b)*(c)": true,
		"((a)":      false,
		")(":        false,
		"":          true,
	}
	for input, want := range tests {
		if got := Balanced(input); got != want {
			t.Errorf("Balanced(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSplitEquation(t *testing.T) {
	lhs, rhs, err := SplitEquation(" C = 5(F-32)/9 ")
	if err != nil || lhs != "C" || rhs != "5(F-32)/9" {
		t.Errorf("SplitEquation = %q, %q, %v", lhs, rhs, err)
	}
	for _, bad := range []string{"a + b", "a = b = c", "= b", "a ="} {
		if _, _, err := SplitEquation(bad); err == nil {
			t.Errorf("SplitEquation(%q) should fail", bad)
		}
	}
}
