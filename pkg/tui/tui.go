// Package tui implements the full-screen Bubble Tea frontend: an entry
// list over the walked address space with value reads, writes and
// substring filtering. Procedures show their signature here; invocation
// stays with the console navigator.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/variant"
	"github.com/ormasoftchile/nodescope/pkg/walker"
)

// --- Tea messages ---

// walkDoneMsg delivers a fresh walk of the address space.
type walkDoneMsg struct {
	entries []walker.Entry
	report  walker.Report
}

// readDoneMsg delivers a data point read or a procedure signature.
type readDoneMsg struct {
	detail string
	tag    variant.TypeTag
	err    error
}

// writeDoneMsg delivers the outcome of a write.
type writeDoneMsg struct{ err error }

// inputMode says what the text input is currently collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputFilter
	inputWrite
)

// Model is the top-level Bubble Tea model.
type Model struct {
	ctx context.Context
	s   session.Session

	entries []walker.Entry
	visible []walker.Entry
	report  walker.Report
	cursor  int

	filter   string
	input    textinput.Model
	entering inputMode

	detail   string
	writeTag variant.TypeTag

	width, height int
}

// New builds the model over a connected session.
func New(ctx context.Context, s session.Session) Model {
	ti := textinput.New()
	ti.CharLimit = 256
	return Model{ctx: ctx, s: s, input: ti}
}

func (m Model) Init() tea.Cmd {
	return m.walkCmd()
}

// --- Commands (one outstanding remote call at a time) ---

func (m Model) walkCmd() tea.Cmd {
	ctx, s := m.ctx, m.s
	return func() tea.Msg {
		entries, report := walker.Walk(ctx, s, s.Root())
		return walkDoneMsg{entries: entries, report: report}
	}
}

func (m Model) readCmd(e walker.Entry) tea.Cmd {
	ctx, s := m.ctx, m.s
	return func() tea.Msg {
		switch e.Kind {
		case session.DataPoint:
			v, err := s.ReadValue(ctx, e.Handle)
			if err != nil {
				return readDoneMsg{err: err}
			}
			return readDoneMsg{
				detail: fmt.Sprintf("/%s = %v (%s)", e.JoinedPath(), v.Data, v.Tag),
				tag:    v.Tag,
			}
		case session.Procedure:
			descs, err := s.InputArguments(ctx, e.Handle)
			if err != nil {
				descs = nil
			}
			parts := make([]string, len(descs))
			for i, d := range descs {
				parts[i] = fmt.Sprintf("%s %s", d.Name, d.Type)
			}
			return readDoneMsg{
				detail: fmt.Sprintf("/%s(%s) — invoke from the console browser", e.JoinedPath(), strings.Join(parts, ", ")),
			}
		}
		return readDoneMsg{detail: fmt.Sprintf("%s /%s", e.Kind, e.JoinedPath())}
	}
}

func (m Model) writeCmd(e walker.Entry, text string, tag variant.TypeTag) tea.Cmd {
	ctx, s := m.ctx, m.s
	return func() tea.Msg {
		v, err := variant.Convert(text, tag)
		if err != nil {
			return writeDoneMsg{err: err}
		}
		return writeDoneMsg{err: s.WriteValue(ctx, e.Handle, v)}
	}
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case walkDoneMsg:
		m.entries = msg.entries
		m.report = msg.report
		m.applyFilter()
		return m, nil

	case readDoneMsg:
		if msg.err != nil {
			m.detail = errStyle.Render(msg.err.Error())
			return m, nil
		}
		m.detail = msg.detail
		m.writeTag = msg.tag
		return m, nil

	case writeDoneMsg:
		if msg.err != nil {
			m.detail = errStyle.Render(msg.err.Error())
			return m, nil
		}
		// Re-read so the pane shows the value the server now holds.
		if e, ok := m.current(); ok {
			return m, m.readCmd(e)
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.entering != inputNone {
		switch msg.String() {
		case "enter":
			text := m.input.Value()
			mode := m.entering
			m.entering = inputNone
			m.input.Blur()
			if mode == inputFilter {
				m.filter = text
				m.applyFilter()
				return m, nil
			}
			if e, ok := m.current(); ok {
				return m, m.writeCmd(e, text, m.writeTag)
			}
			return m, nil
		case "esc":
			m.entering = inputNone
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Open):
		if e, ok := m.current(); ok {
			return m, m.readCmd(e)
		}
	case key.Matches(msg, keys.Write):
		if e, ok := m.current(); ok && e.Kind == session.DataPoint {
			m.entering = inputWrite
			m.input.SetValue("")
			m.input.Placeholder = fmt.Sprintf("new value (%s)", m.writeTag)
			m.input.Focus()
		}
	case key.Matches(msg, keys.Search):
		m.entering = inputFilter
		m.input.SetValue(m.filter)
		m.input.Placeholder = "substring filter"
		m.input.Focus()
	case key.Matches(msg, keys.Rewalk):
		return m, m.walkCmd()
	}
	return m, nil
}

func (m *Model) current() (walker.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return walker.Entry{}, false
	}
	return m.visible[m.cursor], true
}

// applyFilter rebuilds the visible list from the substring filter.
func (m *Model) applyFilter() {
	if m.filter == "" {
		m.visible = m.entries
	} else {
		needle := strings.ToLower(m.filter)
		m.visible = nil
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.JoinedPath()), needle) {
				m.visible = append(m.visible, e)
			}
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// --- View ---

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("nodescope — %d entries", len(m.visible))
	if m.report.Unreadable > 0 || m.report.EnumerationFailures > 0 {
		title += fmt.Sprintf(" (skipped %d)", m.report.Unreadable+m.report.EnumerationFailures)
	}
	b.WriteString(headerStyle.Render(title) + "\n")

	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	for i := start; i < len(m.visible) && i < start+rows; i++ {
		e := m.visible[i]
		line := fmt.Sprintf("%s /%s", glyph(e.Kind.String()), e.JoinedPath())
		switch {
		case i == m.cursor:
			line = rowCurrent.Render("▸ " + line)
		case e.Kind == session.Other:
			line = rowDim.Render("  " + line)
		default:
			line = rowNormal.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}

	if m.detail != "" {
		b.WriteString(panelBorder.Render(valueStyle.Render(m.detail)) + "\n")
	}
	if m.entering != inputNone {
		b.WriteString(m.input.View() + "\n")
	}
	b.WriteString(keyBarText(m.entering != inputNone))
	return b.String()
}

// Run starts the program and blocks until quit.
func Run(ctx context.Context, s session.Session) error {
	p := tea.NewProgram(New(ctx, s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
