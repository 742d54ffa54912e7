package translate

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// HistorySize is the number of conversions kept by a Translator.
const HistorySize = 10

// ErrNoMatch is returned when no pattern matches the input.
var ErrNoMatch = errors.New("no pattern matches; try a simpler phrase")

// Direction of a conversion.
type Direction int

const (
	ToAlgebraic Direction = iota
	ToNatural
)

func (d Direction) String() string {
	if d == ToNatural {
		return "algebraic -> natural"
	}
	return "natural -> algebraic"
}

// ParseDirection accepts the name of the source side ("natural",
// "algebraic") or of the target ("to-algebraic", "to-natural").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "natural", "to-algebraic", "n2a":
		return ToAlgebraic, nil
	case "algebraic", "to-natural", "a2n":
		return ToNatural, nil
	}
	return ToAlgebraic, fmt.Errorf("unknown direction %q", s)
}

// Conversion is one translated input.
type Conversion struct {
	Direction Direction
	Input     string
	Output    string
	Matched   bool
	PatternID int
	Category  string
	Time      time.Time
}

// Stats summarises the loaded patterns and the conversions made.
type Stats struct {
	Patterns     int
	Conversions  int
	Satisfactory int
	Source       string // "default" or the pattern file path
	FileSize     int64
	LastUpdate   time.Time
}

// Translator holds a pattern set. It is safe for concurrent use.
type Translator struct {
	mu       sync.RWMutex
	patterns []compiled
	stats    Stats
	history  []Conversion
	now      func() time.Time
}

// New returns a translator with the default patterns.
func New() *Translator {
	t := &Translator{now: time.Now}
	if err := t.Load(DefaultPatterns(), "default", 0); err != nil {
		panic(err) // built-in patterns always compile
	}
	return t
}

// Load replaces the pattern set. On error the previous set is kept.
func (t *Translator) Load(patterns []Pattern, source string, size int64) error {
	if len(patterns) == 0 {
		return fmt.Errorf("no patterns to load")
	}
	set := make([]compiled, 0, len(patterns))
	for _, p := range patterns {
		c, err := compile(p)
		if err != nil {
			return err
		}
		set = append(set, c)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.patterns = set
	t.stats.Patterns = len(set)
	t.stats.Source = source
	t.stats.FileSize = size
	t.stats.LastUpdate = t.now()
	return nil
}

// LoadFile loads patterns from a YAML or JSON file.
func (t *Translator) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	patterns, err := ParseFile(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return t.Load(patterns, path, int64(len(data)))
}

// Reset restores the default patterns.
func (t *Translator) Reset() {
	_ = t.Load(DefaultPatterns(), "default", 0)
}

// Patterns returns a copy of the loaded patterns.
func (t *Translator) Patterns() []Pattern {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Pattern, len(t.patterns))
	for i, c := range t.patterns {
		out[i] = c.Pattern
	}
	return out
}

// NaturalToAlgebraic translates a phrase such as "the sum of x and y" to
// "x + y". The first matching pattern wins.
func (t *Translator) NaturalToAlgebraic(input string) (Conversion, error) {
	return t.convert(ToAlgebraic, input)
}

// AlgebraicToNatural translates an expression such as "x + y" back to a
// phrase. Whitespace, ² ³ × and ÷ in the input are normalised first.
func (t *Translator) AlgebraicToNatural(input string) (Conversion, error) {
	return t.convert(ToNatural, input)
}

// Translate converts in the given direction.
func (t *Translator) Translate(d Direction, input string) (Conversion, error) {
	return t.convert(d, input)
}

func (t *Translator) convert(d Direction, input string) (Conversion, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Conversion{}, fmt.Errorf("empty input")
	}
	conv := Conversion{Direction: d, Input: input, Time: t.now()}

	t.mu.Lock()
	defer t.mu.Unlock()

	subject := input
	if d == ToNatural {
		subject = NormalizeAlgebraic(input)
	}
	for _, p := range t.patterns {
		re, target := p.natural, p.Algebraic
		if d == ToNatural {
			re, target = p.algebraic, p.Natural
		}
		m := re.FindStringSubmatch(subject)
		if m == nil {
			continue
		}
		vars := make(map[string]string)
		for i, name := range re.SubexpNames() {
			if name != "" {
				if _, seen := vars[name]; !seen {
					vars[name] = m[i]
				}
			}
		}
		conv.Output = substitute(target, vars)
		conv.Matched = true
		conv.PatternID = p.ID
		conv.Category = p.Category
		break
	}

	t.stats.Conversions++
	t.record(conv)
	if !conv.Matched {
		return conv, ErrNoMatch
	}
	return conv, nil
}

func (t *Translator) record(c Conversion) {
	t.history = append([]Conversion{c}, t.history...)
	if len(t.history) > HistorySize {
		t.history = t.history[:HistorySize]
	}
}

// MarkSatisfactory counts the last conversion as a good one.
func (t *Translator) MarkSatisfactory() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats.Satisfactory++
}

// Stats returns a snapshot of the statistics.
func (t *Translator) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.stats
}

// History returns the last conversions, newest first.
func (t *Translator) History() []Conversion {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Conversion(nil), t.history...)
}

// ClearHistory forgets all conversions.
func (t *Translator) ClearHistory() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = nil
}
