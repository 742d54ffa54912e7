// Package tui is the terminal front end: one tab per tool, each with its own
// input fields and output pane.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/algebralab/algebralab/internal/algebra/converter"
	"github.com/algebralab/algebralab/internal/lab/service"
)

// Tab indexes, in display order
const (
	TabDivide = iota
	TabComplex
	TabSolve
	TabFormula
	TabIsolate
	TabWorksheet
	TabProducts
	TabClassify
	TabTranslate
	TabHistory
)

const callTimeout = 10 * time.Second

// pane is the state of one tab
type pane struct {
	inputs []textinput.Model
	focus  int
	lines  []string
	err    error
}

// Model is the main TUI model
type Model struct {
	svc   *service.Service
	tools []tool
	panes []pane

	active  int
	width   int
	height  int
	ready   bool
	loading bool

	// live conversion for the Complex tab
	session *converter.Session

	viewport viewport.Model
	spinner  spinner.Model
}

// NewModel creates a TUI model backed by svc
func NewModel(svc *service.Service) Model {
	tools := defaultTools()
	panes := make([]pane, len(tools))
	for i, t := range tools {
		for _, f := range t.fields {
			ti := textinput.New()
			ti.Placeholder = f.placeholder
			ti.SetValue(f.value)
			ti.CharLimit = 256
			ti.Width = 60
			panes[i].inputs = append(panes[i].inputs, ti)
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	m := Model{
		svc:     svc,
		tools:   tools,
		panes:   panes,
		session: converter.NewSession(),
		spinner: sp,
	}
	m.focusField(0)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// resultMsg carries the outcome of a tool run back to Update
type resultMsg struct {
	tab   int
	lines []string
	err   error
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.switchTab(m.active + 1)
			return m, nil

		case "shift+tab":
			m.switchTab(m.active - 1)
			return m, nil

		case "up":
			m.focusField(m.panes[m.active].focus - 1)
			return m, nil

		case "down":
			m.focusField(m.panes[m.active].focus + 1)
			return m, nil

		case "enter":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.run(m.active))

		case "ctrl+l":
			p := &m.panes[m.active]
			p.lines, p.err = nil, nil
			m.updateContent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := max(3, msg.Height-m.chromeHeight())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		for i := range m.panes {
			for j := range m.panes[i].inputs {
				m.panes[i].inputs[j].Width = max(10, msg.Width-20)
			}
		}
		m.updateContent()

	case resultMsg:
		m.loading = false
		p := &m.panes[msg.tab]
		p.lines, p.err = msg.lines, msg.err
		m.updateContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	p := &m.panes[m.active]
	if len(p.inputs) > 0 {
		before := p.inputs[p.focus].Value()
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		cmds = append(cmds, cmd)
		if m.active == TabComplex && p.inputs[p.focus].Value() != before {
			m.liveConvert()
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// run executes the active tool asynchronously
func (m Model) run(tab int) tea.Cmd {
	values := m.values(tab)
	t := m.tools[tab]
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		lines, err := t.run(ctx, svc, values)
		return resultMsg{tab: tab, lines: lines, err: err}
	}
}

// liveConvert refreshes the Complex tab while typing. Incomplete input is
// not an error until Enter is pressed.
func (m *Model) liveConvert() {
	v := m.values(TabComplex)
	if strings.TrimSpace(v[1]) == "" || strings.TrimSpace(v[2]) == "" {
		return
	}
	form, err := converter.ParseForm(v[0])
	if err != nil {
		return
	}
	r, applied, err := m.session.Update(form, v[1], v[2])
	if !applied || err != nil {
		return
	}
	p := &m.panes[TabComplex]
	p.lines, p.err = service.NewConvertResponse(r).Lines(), nil
	m.updateContent()
}

func (m Model) values(tab int) []string {
	inputs := m.panes[tab].inputs
	out := make([]string, len(inputs))
	for i, in := range inputs {
		out[i] = in.Value()
	}
	return out
}

func (m *Model) switchTab(tab int) {
	n := len(m.tools)
	m.active = ((tab % n) + n) % n
	m.focusField(m.panes[m.active].focus)
	m.updateContent()
}

func (m *Model) focusField(i int) {
	p := &m.panes[m.active]
	if len(p.inputs) == 0 {
		return
	}
	n := len(p.inputs)
	p.focus = ((i % n) + n) % n
	for j := range p.inputs {
		if j == p.focus {
			p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
}

// chromeHeight is the number of rows used by everything but the output pane
func (m Model) chromeHeight() int {
	fields := 0
	for _, t := range m.tools {
		fields = max(fields, len(t.fields))
	}
	// title, tabs, box border and padding, fields, spinner, footer
	return 2 + 4 + fields + 1 + 1
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.renderInputs())
	s.WriteString("\n")

	if m.loading {
		s.WriteString(m.spinner.View())
		s.WriteString(" Calculating...\n")
	}
	s.WriteString(m.viewport.View())

	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m Model) renderHeader() string {
	var renderedTabs []string
	for i, t := range m.tools {
		if i == m.active {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(t.name))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(t.name))
		}
	}

	title := TitleStyle.Render("algebralab")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m Model) renderInputs() string {
	t := m.tools[m.active]
	p := m.panes[m.active]

	var s strings.Builder
	for i, f := range t.fields {
		label := LabelStyle.Render(fmt.Sprintf("%-11s", f.label))
		if i == p.focus {
			label = FocusedLabelStyle.Render(fmt.Sprintf("%-11s", f.label))
		}
		s.WriteString(label)
		s.WriteString(p.inputs[i].View())
		if i < len(t.fields)-1 {
			s.WriteString("\n")
		}
	}
	return FocusedBoxStyle.Render(s.String())
}

func (m Model) renderFooter() string {
	help := "Tab: next tool • ↑/↓: field • Enter: calculate • Ctrl+L: clear • Esc: quit"
	info := fmt.Sprintf("precision %d", m.svc.Precision())

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-len(info)-4)),
			info,
		),
	)
}

// Output returns the text of a tab's output pane as rendered, without styles
func (m Model) Output(tab int) string {
	p := m.panes[tab]
	lines := append([]string(nil), p.lines...)
	if p.err != nil {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, service.Render(p.err))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) updateContent() {
	p := m.panes[m.active]
	var content strings.Builder
	for _, l := range p.lines {
		content.WriteString(ResultStyle.Render(l))
		content.WriteString("\n")
	}
	if p.err != nil {
		if len(p.lines) > 0 {
			content.WriteString("\n")
		}
		content.WriteString(RenderError(service.Message(p.err)))
		content.WriteString("\n")
	}
	m.viewport.SetContent(content.String())
	m.viewport.GotoTop()
}

// Run starts the TUI on the terminal and blocks until the user quits
func Run(svc *service.Service) error {
	p := tea.NewProgram(NewModel(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
