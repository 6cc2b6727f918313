// Package ui holds the color theme registry shared by the CLI and the TUI.
package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for terminal output. Each color field contains
// a raw ANSI escape code; empty strings disable coloring entirely.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes (engines agree).
	Success string
	// Warning is used for caution messages.
	Warning string
	// Error indicates failures (validation errors, mismatches).
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output. Used when NO_COLOR is set or
	// -no-color is provided.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		"dark":  DarkTheme,
		"light": LightTheme,
		"none":  NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme defines the lipgloss palette for the full-screen dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the default dashboard palette.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#3B82F6"),
		Accent:  lipgloss.Color("#60A5FA"),
		Success: lipgloss.Color("#9ECE6A"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	// NoColorTUITheme renders the dashboard with the terminal defaults.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// CurrentTUITheme returns the TUI palette matching the active theme.
func CurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	if currentTheme.Name == "none" {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// CurrentTheme returns the active theme in a thread-safe manner.
func CurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetTheme changes the active theme by name. Unknown names fall back to the
// dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	if t, ok := themes[name]; ok {
		currentTheme = t
		return
	}
	currentTheme = DarkTheme
}

// SetCurrentThemeForTest installs a theme directly, bypassing name lookup.
// Used by tests to restore state.
func SetCurrentThemeForTest(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme from the configuration and environment. It
// respects the NO_COLOR convention (https://no-color.org/): when noColor is
// true or NO_COLOR is set, colors are disabled regardless of the named theme.
func InitTheme(name string, noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme("none")
		return
	}
	SetTheme(name)
}

// Color accessors return the escape code of the active theme, so call sites
// stay oblivious to theme switching.

// ColorPrimary returns the primary accent escape code.
func ColorPrimary() string { return CurrentTheme().Primary }

// ColorSecondary returns the secondary escape code.
func ColorSecondary() string { return CurrentTheme().Secondary }

// ColorSuccess returns the success escape code.
func ColorSuccess() string { return CurrentTheme().Success }

// ColorWarning returns the warning escape code.
func ColorWarning() string { return CurrentTheme().Warning }

// ColorError returns the error escape code.
func ColorError() string { return CurrentTheme().Error }

// ColorBold returns the bold escape code.
func ColorBold() string { return CurrentTheme().Bold }

// ColorReset returns the reset escape code.
func ColorReset() string { return CurrentTheme().Reset }
