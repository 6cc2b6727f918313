package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/datakit/internal/ui"
)

// Style variables for the dashboard, initialized from the ui theme system via
// initTUIStyles().
var (
	titleStyle     lipgloss.Style
	panelStyle     lipgloss.Style
	labelStyle     lipgloss.Style
	valueStyle     lipgloss.Style
	matchStyle     lipgloss.Style
	mismatchStyle  lipgloss.Style
	errorStyle     lipgloss.Style
	dimStyle       lipgloss.Style
	footerKeyStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all dashboard styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has run.
func initTUIStyles() {
	t := ui.CurrentTUITheme()

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	matchStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	mismatchStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)
}
