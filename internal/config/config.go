// Package config defines the application configuration and its resolution
// chain: CLI flags take precedence over DATAKIT_-prefixed environment
// variables, which take precedence over the built-in defaults.
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/datakit/internal/errors"
	"github.com/agbru/datakit/internal/stats"
)

// Default values for configuration options.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultListenAddr = ":8080"
	DefaultTheme      = "dark"
)

// AppConfig holds the full application configuration.
type AppConfig struct {
	// Values is a raw comma/whitespace-separated number list for one-shot mode.
	Values string
	// InputFile is a path to a file of numbers for one-shot mode.
	InputFile string
	// OutputFile is the path to save the comparison report (empty for none).
	OutputFile string
	// Tolerance is the absolute comparison tolerance.
	Tolerance float64
	// Timeout bounds a single run.
	Timeout time.Duration
	// ListenAddr is the HTTP listen address for serve mode.
	ListenAddr string
	// Theme selects the color theme ("dark", "light", "none").
	Theme string

	// Interactive starts the text menu.
	Interactive bool
	// TUI starts the full-screen dashboard.
	TUI bool
	// Serve starts the HTTP endpoint.
	Serve bool
	// JSON emits the comparison as JSON instead of the text report.
	JSON bool
	// Quiet reduces output to a single summary line.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// Details prints a process memory snapshot after the run.
	Details bool
	// NoColor disables colored output.
	NoColor bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags not explicitly set, and validates the
// result.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for flag-parsing and usage messages.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig
	fs.StringVar(&cfg.Values, "values", "", "Comma- or space-separated numbers to analyze")
	fs.StringVar(&cfg.InputFile, "input", "", "Path to a file of numbers to analyze")
	fs.StringVar(&cfg.OutputFile, "output", "", "Path to save the comparison report")
	fs.StringVar(&cfg.OutputFile, "o", "", "Path to save the comparison report (shorthand)")
	fs.Float64Var(&cfg.Tolerance, "tolerance", stats.DefaultTolerance, "Absolute tolerance for the engine comparison")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum duration of a run")
	fs.StringVar(&cfg.ListenAddr, "listen", DefaultListenAddr, "HTTP listen address for -serve")
	fs.StringVar(&cfg.Theme, "theme", DefaultTheme, "Color theme: dark, light or none")

	fs.BoolVar(&cfg.Interactive, "interactive", false, "Start the interactive menu")
	fs.BoolVar(&cfg.Interactive, "i", false, "Start the interactive menu (shorthand)")
	fs.BoolVar(&cfg.TUI, "tui", false, "Start the full-screen dashboard")
	fs.BoolVar(&cfg.Serve, "serve", false, "Start the HTTP comparison endpoint")
	fs.BoolVar(&cfg.JSON, "json", false, "Emit the comparison as JSON")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print a single summary line only")
	fs.BoolVar(&cfg.Quiet, "q", false, "Print a single summary line only (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging (shorthand)")
	fs.BoolVar(&cfg.Details, "details", false, "Show memory details after the run")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions and out-of-range
// values, returning a ConfigError describing the first problem found.
func (c AppConfig) Validate() error {
	if c.Tolerance < 0 {
		return apperrors.NewConfigError("tolerance must be non-negative, got %g", c.Tolerance)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}

	modes := 0
	for _, on := range []bool{c.Interactive, c.TUI, c.Serve} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("at most one of -interactive, -tui and -serve may be set")
	}
	if c.Values != "" && c.InputFile != "" {
		return apperrors.NewConfigError("-values and -input are mutually exclusive")
	}
	if modes > 0 && (c.Values != "" || c.InputFile != "") {
		return apperrors.NewConfigError("-values/-input apply to one-shot mode only")
	}

	switch c.Theme {
	case "dark", "light", "none":
	default:
		return apperrors.NewConfigError("unknown theme %q (valid: dark, light, none)", c.Theme)
	}
	return nil
}
