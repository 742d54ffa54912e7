package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/algebralab/algebralab/internal/lab/service"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(service.New(service.DefaultConfig()))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

// runTab fills the fields of a tab, runs its tool and applies the result.
func runTab(t *testing.T, m Model, tab int, values ...string) Model {
	t.Helper()
	for i, v := range values {
		m.panes[tab].inputs[i].SetValue(v)
	}
	msg := m.run(tab)()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if len(m.tools) != 10 || len(m.panes) != 10 {
		t.Fatalf("tools = %d, panes = %d, want 10", len(m.tools), len(m.panes))
	}
	if m.tools[TabHistory].name != "History" {
		t.Errorf("last tab = %q, want History", m.tools[TabHistory].name)
	}
	if !m.ready {
		t.Error("model not ready after WindowSizeMsg")
	}
	if !strings.Contains(m.View(), "algebralab") {
		t.Error("View() does not contain the title")
	}
}

func TestModel_SwitchTab(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if m.active != TabHistory {
		t.Errorf("shift+tab from first tab = %d, want %d", m.active, TabHistory)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if m.active != TabDivide {
		t.Errorf("tab from last tab = %d, want %d", m.active, TabDivide)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.panes[TabDivide].focus != 1 {
		t.Errorf("focus after down = %d, want 1", m.panes[TabDivide].focus)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.panes[TabDivide].focus != 0 {
		t.Errorf("focus wraps to %d, want 0", m.panes[TabDivide].focus)
	}
}

func TestModel_Typing(t *testing.T) {
	m := newTestModel(t)
	m.switchTab(TabClassify)

	for _, r := range "-7/2" {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	if got := m.panes[TabClassify].inputs[0].Value(); got != "-7/2" {
		t.Errorf("input = %q, want -7/2", got)
	}
}

func TestModel_RunTools(t *testing.T) {
	tests := []struct {
		name   string
		tab    int
		values []string
		want   []string
	}{
		{"divide", TabDivide, []string{"x^2-1", "1"}, []string{"quotient:  x + 1", "remainder: 0"}},
		{"solve", TabSolve, []string{"3x - 3 = 0", "x"}, []string{"x = 1"}},
		{"formula", TabFormula, []string{"d = v*i*t"}, []string{"t = d / (v * i)"}},
		{"isolate", TabIsolate, []string{"v*i*t", "t", "d"}, []string{"t = d / (v * i)"}},
		{"classify", TabClassify, []string{"-7/2"}, []string{"rational", "ℚ"}},
		{"translate", TabTranslate, []string{"natural", "the sum of x and y"}, []string{"x + y"}},
		{"product", TabProducts, []string{"square-sum", "algebraic", "3x", "5y"}, []string{"9x^2 + 30xy + 25y^2"}},
		{"worksheet", TabWorksheet, []string{"x = 10, y = 5", "total = x * y; total / 2"}, []string{"total = 50", "total / 2 = 25"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := runTab(t, newTestModel(t), tt.tab, tt.values...)
			out := m.Output(tt.tab)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q does not contain %q", out, w)
				}
			}
			if strings.Contains(out, "Error:") {
				t.Errorf("unexpected error in output %q", out)
			}
		})
	}
}

func TestModel_InlineErrors(t *testing.T) {
	tests := []struct {
		name   string
		tab    int
		values []string
	}{
		{"parse", TabDivide, []string{"x^2+3y", "1"}},
		{"no solution", TabSolve, []string{"x + 1 = x + 3", "x"}},
		{"unknown product", TabProducts, []string{"square-root", "numeric", "1", "2"}},
		{"history disabled", TabHistory, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := runTab(t, newTestModel(t), tt.tab, tt.values...)
			if m.loading {
				t.Error("still loading after result")
			}
			out := m.Output(tt.tab)
			if !strings.HasPrefix(out, "Error: ") {
				t.Errorf("output = %q, want inline error", out)
			}
		})
	}
}

func TestModel_WorksheetKeepsPartialResult(t *testing.T) {
	m := runTab(t, newTestModel(t), TabWorksheet, "x = 10", "y = x * 2; z + 1")
	out := m.Output(TabWorksheet)

	if !strings.Contains(out, "y = 20") {
		t.Errorf("output %q lost the evaluated line", out)
	}
	if !strings.Contains(out, "Error: ") || !strings.Contains(out, "z") {
		t.Errorf("output %q does not report the undefined variable", out)
	}
}

func TestModel_LiveConvert(t *testing.T) {
	m := newTestModel(t)
	m.switchTab(TabComplex)
	m.panes[TabComplex].inputs[0].SetValue("polar")
	m.panes[TabComplex].inputs[1].SetValue("2")
	m.panes[TabComplex].inputs[2].SetValue("pi/3")

	m.liveConvert()

	out := m.Output(TabComplex)
	if !strings.Contains(out, "1 + √3i") || !strings.Contains(out, "2 e^(i pi/3)") {
		t.Errorf("output = %q", out)
	}

	// incomplete input leaves the last result in place
	m.panes[TabComplex].inputs[2].SetValue("")
	m.liveConvert()
	if m.Output(TabComplex) != out {
		t.Errorf("output changed on incomplete input: %q", m.Output(TabComplex))
	}
}

func TestModel_ClearOutput(t *testing.T) {
	m := runTab(t, newTestModel(t), TabDivide, "x^2-1", "1")
	if m.Output(TabDivide) == "" {
		t.Fatal("no output")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = updated.(Model)
	if m.Output(TabDivide) != "" {
		t.Errorf("output after ctrl+l = %q", m.Output(TabDivide))
	}
}
