package translate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNaturalToAlgebraic(t *testing.T) {
	tr := New()
	tests := []struct {
		input string
		want  string
	}{
		{"the sum of x and y", "x + y"},
		{"The Sum of  a  and 3", "a + 3"},
		{"the square root of 16", "sqrt(16)"},
		{"the square of n", "n^2"},
		{"the square of the sum of a and b", "(a + b)^2"},
		{"twice x", "2 * x"},
		{"  half of 10 ", "10 / 2"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			conv, err := tr.NaturalToAlgebraic(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if conv.Output != tt.want {
				t.Errorf("got %q, want %q", conv.Output, tt.want)
			}
		})
	}
}

func TestAlgebraicToNatural(t *testing.T) {
	tr := New()
	tests := []struct {
		input string
		want  string
	}{
		{"x + y", "the sum of x and y"},
		{"a*b", "the product of a and b"},
		{"n²", "the square of n"},
		{"sqrt( 2 )", "the square root of 2"},
		{"(a+b)^2", "the square of the sum of a and b"},
		{"p ÷ q", "the quotient of p and q"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			conv, err := tr.AlgebraicToNatural(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if conv.Output != tt.want {
				t.Errorf("got %q, want %q", conv.Output, tt.want)
			}
			if !conv.Matched || conv.Direction != ToNatural {
				t.Errorf("conversion = %+v", conv)
			}
		})
	}
}

func TestNoMatch(t *testing.T) {
	tr := New()
	conv, err := tr.NaturalToAlgebraic("the integral of x")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
	if conv.Matched {
		t.Error("Matched set without a match")
	}
	if _, err := tr.NaturalToAlgebraic("   "); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestStatsAndHistory(t *testing.T) {
	tr := New()
	for i := 0; i < HistorySize+2; i++ {
		if _, err := tr.NaturalToAlgebraic("twice x"); err != nil {
			t.Fatal(err)
		}
	}
	_, _ = tr.NaturalToAlgebraic("nothing matches this")
	tr.MarkSatisfactory()

	st := tr.Stats()
	if st.Conversions != HistorySize+3 || st.Satisfactory != 1 {
		t.Errorf("stats = %+v", st)
	}
	if st.Patterns != len(DefaultPatterns()) || st.Source != "default" {
		t.Errorf("stats = %+v", st)
	}

	h := tr.History()
	if len(h) != HistorySize {
		t.Fatalf("history length = %d", len(h))
	}
	if h[0].Input != "nothing matches this" {
		t.Errorf("newest entry = %+v", h[0])
	}

	tr.ClearHistory()
	if len(tr.History()) != 0 {
		t.Error("history not cleared")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "patterns.yaml")
	yamlData := "patterns:\n  - id: 1\n    natural: \"la suma de {var1} y {var2}\"\n    algebraic: \"{var1} + {var2}\"\n    category: basico\n"
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}

	tr := New()
	if err := tr.LoadFile(yamlPath); err != nil {
		t.Fatal(err)
	}
	conv, err := tr.NaturalToAlgebraic("La suma de a y b")
	if err != nil || conv.Output != "a + b" {
		t.Errorf("got %q, %v", conv.Output, err)
	}
	st := tr.Stats()
	if st.Source != yamlPath || st.FileSize != int64(len(yamlData)) || st.Patterns != 1 {
		t.Errorf("stats = %+v", st)
	}

	jsonPath := filepath.Join(dir, "patterns.json")
	jsonData := `{"patterns": [{"id": 7, "natural": "el doble de {x}", "algebraic": "2*{x}", "category": "basico"}]}`
	if err := os.WriteFile(jsonPath, []byte(jsonData), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := tr.LoadFile(jsonPath); err != nil {
		t.Fatal(err)
	}
	conv, err = tr.AlgebraicToNatural("2 * z")
	if err != nil || conv.Output != "el doble de z" || conv.PatternID != 7 {
		t.Errorf("got %+v, %v", conv, err)
	}

	tr.Reset()
	if tr.Stats().Source != "default" {
		t.Error("Reset did not restore defaults")
	}
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()
	tr := New()

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, []byte("patterns: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := tr.LoadFile(empty); err == nil {
		t.Error("expected error for empty pattern list")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("patterns: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := tr.LoadFile(broken); err == nil {
		t.Error("expected error for malformed file")
	}

	if err := tr.LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if tr.Stats().Source != "default" {
		t.Error("failed load replaced the pattern set")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := WriteFile(path, DefaultPatterns()); err != nil {
		t.Fatal(err)
	}
	tr := New()
	if err := tr.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if got := len(tr.Patterns()); got != len(DefaultPatterns()) {
		t.Errorf("loaded %d patterns", got)
	}
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "patterns.yaml")
	write := func(natural string) {
		t.Helper()
		data := "patterns:\n  - id: 1\n    natural: \"" + natural + "\"\n    algebraic: \"{a} + {b}\"\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("{a} plus {b}")

	tr := New()
	w := NewWatcher(tr, path)
	w.SetDebounce(20 * time.Millisecond)
	reloaded := make(chan error, 4)
	w.SetOnReload(func(_ Stats, err error) { reloaded <- err })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if conv, err := tr.NaturalToAlgebraic("x plus y"); err != nil || conv.Output != "x + y" {
		t.Fatalf("initial load: %+v, %v", conv, err)
	}

	write("{a} and also {b}")
	select {
	case err := <-reloaded:
		if err != nil {
			t.Fatalf("reload: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after file change")
	}

	if conv, err := tr.NaturalToAlgebraic("x and also y"); err != nil || conv.Output != "x + y" {
		t.Errorf("after reload: %+v, %v", conv, err)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"", ToAlgebraic, false},
		{"natural", ToAlgebraic, false},
		{"To-Natural", ToNatural, false},
		{"algebraic", ToNatural, false},
		{"sideways", ToAlgebraic, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
