// Package cli provides the command-line front end: the interactive menu,
// number parsing, presenters and file/JSON output.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/datakit/internal/orchestration"
	"github.com/agbru/datakit/internal/textutil"
	"github.com/agbru/datakit/internal/ui"
)

// MenuConfig holds configuration for an interactive menu session.
type MenuConfig struct {
	// Tolerance is the absolute comparison tolerance for stats commands.
	Tolerance float64
	// Timeout is the maximum duration for each comparison.
	Timeout time.Duration
}

// Menu represents an interactive session. It reads commands from its input,
// dispatches them to the statistics core and the text utilities, and writes
// colorized results to its output.
type Menu struct {
	config    MenuConfig
	presenter CLIPresenter
	in        io.Reader
	out       io.Writer
}

// NewMenu creates a new interactive menu bound to stdin/stdout.
func NewMenu(config MenuConfig) *Menu {
	return &Menu{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (m *Menu) SetInput(in io.Reader) { m.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (m *Menu) SetOutput(out io.Writer) { m.out = out }

// Start begins the interactive session. It continuously reads user input and
// processes commands until the user exits or EOF is reached.
func (m *Menu) Start(ctx context.Context) {
	m.printBanner()
	m.printHelp()
	fmt.Fprintln(m.out)

	reader := bufio.NewReader(m.in)

	for {
		fmt.Fprint(m.out, ui.ColorSuccess()+"datakit> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(m.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !m.processCommand(ctx, input) {
			return // Exit command received
		}
	}
}

// printBanner displays the welcome banner.
func (m *Menu) printBanner() {
	fmt.Fprintf(m.out, "\n%s── datakit · interactive mode ──%s\n\n", ui.ColorPrimary(), ui.ColorReset())
}

// printHelp displays available commands.
func (m *Menu) printHelp() {
	type entry struct{ cmd, desc string }
	for _, e := range []entry{
		{"stats <numbers>", "Compare scalar and vectorized statistics"},
		{"clean <name>", "Clean a single product name"},
		{"cleanlist <a, b, c>", "Clean a comma-separated list of product names"},
		{"unique <a, b, c>", "Deduplicate a list, preserving order"},
		{"tolerance <t>", "Set the comparison tolerance for this session"},
		{"status", "Display the current session configuration"},
		{"help", "Display this help"},
		{"exit / quit", "Leave interactive mode"},
	} {
		fmt.Fprintf(m.out, "  %s%-20s%s - %s\n", ui.ColorWarning(), e.cmd, ui.ColorReset(), e.desc)
	}
}

// processCommand parses and executes one command line.
// Returns false if the session should end.
func (m *Menu) processCommand(ctx context.Context, input string) bool {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "stats", "s":
		m.cmdStats(ctx, rest)
	case "clean", "c":
		m.cmdClean(rest)
	case "cleanlist", "cl":
		m.cmdCleanList(rest)
	case "unique", "u":
		m.cmdUnique(rest)
	case "tolerance", "tol":
		m.cmdTolerance(rest)
	case "status", "st":
		m.cmdStatus()
	case "help", "h", "?":
		m.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(m.out, "%sGoodbye!%s\n", ui.ColorSuccess(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(m.out, "%sUnknown command: %s%s\n", ui.ColorError(), cmd, ui.ColorReset())
		fmt.Fprintf(m.out, "Type %shelp%s to see available commands.\n", ui.ColorWarning(), ui.ColorReset())
	}

	return true
}

// cmdStats parses the number list, runs both engines and prints the full
// comparison report.
func (m *Menu) cmdStats(ctx context.Context, raw string) {
	if raw == "" {
		fmt.Fprintf(m.out, "%sUsage: stats <numbers> (e.g. 'stats 1, 2, 3')%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	values, err := ParseNumbers(raw)
	if err != nil {
		fmt.Fprintf(m.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	comp, err := orchestration.CompareWithTolerance(ctx, values, m.config.Tolerance)
	if err != nil {
		fmt.Fprintf(m.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}

	fmt.Fprintln(m.out)
	m.presenter.PresentComparison(comp, m.out)
	fmt.Fprintln(m.out)
}

// cmdClean cleans a single product name.
func (m *Menu) cmdClean(raw string) {
	if raw == "" {
		fmt.Fprintf(m.out, "%sUsage: clean <name>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	fmt.Fprintf(m.out, "Original: %q\n", raw)
	fmt.Fprintf(m.out, "Cleaned : %s%q%s\n", ui.ColorSuccess(), textutil.CleanProductName(raw), ui.ColorReset())
}

// cmdCleanList cleans a comma-separated list of product names.
func (m *Menu) cmdCleanList(raw string) {
	names := ParseNames(raw)
	if len(names) == 0 {
		fmt.Fprintf(m.out, "%sUsage: cleanlist <a, b, c>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	cleaned := textutil.CleanProductNames(names)
	for i, original := range names {
		fmt.Fprintf(m.out, "- %q -> %s%q%s\n", original, ui.ColorSuccess(), cleaned[i], ui.ColorReset())
	}
}

// cmdUnique deduplicates a comma-separated list, preserving first-seen order.
func (m *Menu) cmdUnique(raw string) {
	items := ParseNames(raw)
	if len(items) == 0 {
		fmt.Fprintf(m.out, "%sUsage: unique <a, b, c>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}
	unique := textutil.UniquePreserveOrder(items)
	fmt.Fprintf(m.out, "%s\n", strings.Join(unique, ", "))
}

// cmdTolerance updates the session tolerance.
func (m *Menu) cmdTolerance(raw string) {
	if raw == "" {
		fmt.Fprintf(m.out, "Current tolerance: %s%g%s\n", ui.ColorPrimary(), m.config.Tolerance, ui.ColorReset())
		return
	}
	tol, err := strconv.ParseFloat(raw, 64)
	if err != nil || tol < 0 {
		fmt.Fprintf(m.out, "%sInvalid tolerance: %s%s\n", ui.ColorError(), raw, ui.ColorReset())
		return
	}
	m.config.Tolerance = tol
	fmt.Fprintf(m.out, "Tolerance set to %s%g%s\n", ui.ColorSuccess(), tol, ui.ColorReset())
}

// cmdStatus displays the current session configuration.
func (m *Menu) cmdStatus() {
	fmt.Fprintf(m.out, "\nCurrent configuration:\n")
	fmt.Fprintf(m.out, "  Tolerance: %s%g%s\n", ui.ColorPrimary(), m.config.Tolerance, ui.ColorReset())
	fmt.Fprintf(m.out, "  Timeout  : %s%s%s\n", ui.ColorPrimary(), m.config.Timeout, ui.ColorReset())
	fmt.Fprintln(m.out)
}
