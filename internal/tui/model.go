// Package tui implements the full-screen dashboard mode. The user types a
// sequence of numbers, each run compares the scalar and vectorized engines and
// the results accumulate in a session history.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/datakit/internal/cli"
	"github.com/agbru/datakit/internal/config"
	apperrors "github.com/agbru/datakit/internal/errors"
	"github.com/agbru/datakit/internal/format"
	"github.com/agbru/datakit/internal/orchestration"
)

// historyEntry is one completed comparison kept in the session history.
type historyEntry struct {
	input string
	comp  orchestration.Comparison
}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	input  textinput.Model
	keymap KeyMap

	history   []historyEntry
	recall    []string // raw inputs, for up/down recall
	recallPos int

	lastErr error
	running bool

	width  int
	height int

	ctx       context.Context
	tolerance float64
	timeout   time.Duration

	exitCode int
	version  string
}

// comparisonMsg carries a finished comparison back to the model.
type comparisonMsg struct {
	input string
	comp  orchestration.Comparison
}

// compareErrMsg carries a failed comparison back to the model.
type compareErrMsg struct {
	input string
	err   error
}

// NewModel creates a dashboard model from the application configuration.
func NewModel(ctx context.Context, cfg config.AppConfig, version string) Model {
	ti := textinput.New()
	ti.Placeholder = "1, 2, 3.5, -4"
	ti.Prompt = "values> "
	ti.CharLimit = 1024
	ti.Focus()

	return Model{
		input:     ti,
		keymap:    DefaultKeyMap(),
		ctx:       ctx,
		tolerance: cfg.Tolerance,
		timeout:   cfg.Timeout,
		exitCode:  apperrors.ExitSuccess,
		version:   version,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Run):
			raw := strings.TrimSpace(m.input.Value())
			if raw == "" || m.running {
				return m, nil
			}
			m.running = true
			m.lastErr = nil
			m.recall = append(m.recall, raw)
			m.recallPos = len(m.recall)
			m.input.SetValue("")
			return m, compareCmd(m.ctx, raw, m.tolerance, m.timeout)

		case key.Matches(msg, m.keymap.Clear):
			m.history = nil
			m.lastErr = nil
			return m, nil

		case key.Matches(msg, m.keymap.Up):
			if m.recallPos > 0 {
				m.recallPos--
				m.input.SetValue(m.recall[m.recallPos])
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, m.keymap.Down):
			if m.recallPos < len(m.recall)-1 {
				m.recallPos++
				m.input.SetValue(m.recall[m.recallPos])
				m.input.CursorEnd()
			} else {
				m.recallPos = len(m.recall)
				m.input.SetValue("")
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case comparisonMsg:
		m.running = false
		m.history = append(m.history, historyEntry{input: msg.input, comp: msg.comp})
		return m, nil

	case compareErrMsg:
		m.running = false
		m.lastErr = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("datakit %s - engine comparison", m.version)))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.running:
		b.WriteString(dimStyle.Render("comparing..."))
		b.WriteString("\n")
	case m.lastErr != nil:
		b.WriteString(errorStyle.Render("error: " + m.lastErr.Error()))
		b.WriteString("\n")
	}

	if last, ok := m.latest(); ok {
		b.WriteString(m.renderComparison(last))
		b.WriteString("\n")
	}

	if n := len(m.history); n > 1 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d comparisons this session", n)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// latest returns the most recent history entry.
func (m Model) latest() (historyEntry, bool) {
	if len(m.history) == 0 {
		return historyEntry{}, false
	}
	return m.history[len(m.history)-1], true
}

func (m Model) renderComparison(e historyEntry) string {
	scalar := panelStyle.Render(orchestration.FormatResult(e.comp.Scalar))
	vectorized := panelStyle.Render(orchestration.FormatResult(e.comp.Vectorized))
	panels := lipgloss.JoinHorizontal(lipgloss.Top, scalar, " ", vectorized)

	verdict := matchStyle.Render("results match")
	if !e.comp.AreEqual {
		verdict = mismatchStyle.Render("results DIFFER")
	}

	timings := fmt.Sprintf("%s %s   %s %s",
		labelStyle.Render("scalar:"),
		valueStyle.Render(format.Seconds(e.comp.ScalarTime)),
		labelStyle.Render("vectorized:"),
		valueStyle.Render(format.Seconds(e.comp.VectorizedTime)),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		dimStyle.Render("input: "+e.input),
		panels,
		verdict,
		timings,
	)
}

func (m Model) renderFooter() string {
	bindings := []key.Binding{m.keymap.Run, m.keymap.Up, m.keymap.Clear, m.keymap.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+dimStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// compareCmd runs one comparison off the UI goroutine and reports the outcome
// as a message.
func compareCmd(parent context.Context, raw string, tolerance float64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		values, err := cli.ParseNumbers(raw)
		if err != nil {
			return compareErrMsg{input: raw, err: err}
		}

		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		comp, err := orchestration.CompareWithTolerance(ctx, values, tolerance)
		if err != nil {
			return compareErrMsg{input: raw, err: err}
		}
		return comparisonMsg{input: raw, comp: comp}
	}
}

// Run is the entry point for the dashboard mode. It runs the bubbletea
// program and returns the process exit code.
func Run(ctx context.Context, cfg config.AppConfig, version string) int {
	// Rebuild styles from the active ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	p := tea.NewProgram(NewModel(ctx, cfg, version), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
