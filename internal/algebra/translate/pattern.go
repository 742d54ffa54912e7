// Package translate converts between natural-language phrases and
// algebraic expressions using {var} templates such as
//
//	natural:   the sum of {a} and {b}
//	algebraic: {a} + {b}
//
// Patterns come from a built-in set or from a YAML or JSON file, which a
// Watcher can reload while the program runs.
package translate

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pattern pairs a natural phrase with its algebraic form.
type Pattern struct {
	ID        int    `yaml:"id" json:"id"`
	Natural   string `yaml:"natural" json:"natural"`
	Algebraic string `yaml:"algebraic" json:"algebraic"`
	Category  string `yaml:"category" json:"category"`
}

// File is the layout of a pattern file.
type File struct {
	Patterns []Pattern `yaml:"patterns" json:"patterns"`
}

// DefaultPatterns returns the built-in pattern set.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{ID: 1, Natural: "the sum of {a} and {b}", Algebraic: "{a} + {b}", Category: "basic"},
		{ID: 2, Natural: "the difference of {a} and {b}", Algebraic: "{a} - {b}", Category: "basic"},
		{ID: 3, Natural: "the product of {a} and {b}", Algebraic: "{a} * {b}", Category: "basic"},
		{ID: 4, Natural: "the quotient of {a} and {b}", Algebraic: "{a} / {b}", Category: "basic"},
		{ID: 5, Natural: "the square of {a}", Algebraic: "{a}^2", Category: "power"},
		{ID: 6, Natural: "the cube of {a}", Algebraic: "{a}^3", Category: "power"},
		{ID: 7, Natural: "the square root of {a}", Algebraic: "sqrt({a})", Category: "root"},
		{ID: 8, Natural: "twice {a}", Algebraic: "2 * {a}", Category: "basic"},
		{ID: 9, Natural: "half of {a}", Algebraic: "{a} / 2", Category: "basic"},
		{ID: 10, Natural: "{a} increased by {b}", Algebraic: "{a} + {b}", Category: "basic"},
		{ID: 11, Natural: "{a} decreased by {b}", Algebraic: "{a} - {b}", Category: "basic"},
		{ID: 12, Natural: "the square of the sum of {a} and {b}", Algebraic: "({a} + {b})^2", Category: "power"},
	}
}

var (
	placeholder = regexp.MustCompile(`\{(\w+)\}`)
	spaces      = regexp.MustCompile(`\s+`)
)

// operand matched by a placeholder
const operand = `[a-zA-Z0-9_.]+`

type compiled struct {
	Pattern
	natural   *regexp.Regexp
	algebraic *regexp.Regexp
}

func compile(p Pattern) (compiled, error) {
	if strings.TrimSpace(p.Natural) == "" || strings.TrimSpace(p.Algebraic) == "" {
		return compiled{}, fmt.Errorf("pattern %d: natural and algebraic forms are required", p.ID)
	}
	nat, err := templateRegexp(strings.ToLower(p.Natural), func(lit string) string {
		return spaces.ReplaceAllString(regexp.QuoteMeta(lit), `\s+`)
	}, "(?i)")
	if err != nil {
		return compiled{}, fmt.Errorf("pattern %d: %w", p.ID, err)
	}
	alg, err := templateRegexp(NormalizeAlgebraic(p.Algebraic), regexp.QuoteMeta, "")
	if err != nil {
		return compiled{}, fmt.Errorf("pattern %d: %w", p.ID, err)
	}
	return compiled{Pattern: p, natural: nat, algebraic: alg}, nil
}

func templateRegexp(tmpl string, literal func(string) string, flags string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString(flags)
	sb.WriteString(`^\s*`)
	last := 0
	for _, m := range placeholder.FindAllStringSubmatchIndex(tmpl, -1) {
		sb.WriteString(literal(tmpl[last:m[0]]))
		sb.WriteString("(?P<" + tmpl[m[2]:m[3]] + ">" + operand + ")")
		last = m[1]
	}
	sb.WriteString(literal(tmpl[last:]))
	sb.WriteString(`\s*$`)
	return regexp.Compile(sb.String())
}

// NormalizeAlgebraic removes whitespace, spells ² ³ × ÷ as ^2 ^3 * / and
// lowercases the expression.
func NormalizeAlgebraic(s string) string {
	s = strings.Join(strings.Fields(s), "")
	s = strings.NewReplacer("²", "^2", "³", "^3", "×", "*", "÷", "/").Replace(s)
	return strings.ToLower(s)
}

func substitute(tmpl string, vars map[string]string) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := strings.ToLower(m[1 : len(m)-1])
		if v, ok := vars[name]; ok {
			return v
		}
		return m
	})
}

// ParseFile reads patterns from YAML or JSON; JSON is read as YAML.
func ParseFile(data []byte) ([]Pattern, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid pattern file: %w", err)
	}
	if len(f.Patterns) == 0 {
		return nil, fmt.Errorf("invalid pattern file: no patterns")
	}
	return f.Patterns, nil
}

// WriteFile stores patterns as YAML.
func WriteFile(path string, patterns []Pattern) error {
	data, err := yaml.Marshal(File{Patterns: patterns})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
