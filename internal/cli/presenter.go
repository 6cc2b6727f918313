package cli

import (
	"fmt"
	"io"

	apperrors "github.com/agbru/datakit/internal/errors"
	"github.com/agbru/datakit/internal/format"
	"github.com/agbru/datakit/internal/orchestration"
	"github.com/agbru/datakit/internal/stats"
	"github.com/agbru/datakit/internal/ui"
)

// CLIPresenter implements the orchestration presentation interfaces for
// colorized command-line output.
type CLIPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ComparisonPresenter = CLIPresenter{}
	_ orchestration.ErrorHandler        = CLIPresenter{}
)

// PresentComparison displays the full comparison report: one block per
// engine, the match indicator, and both timings.
func (CLIPresenter) PresentComparison(comp orchestration.Comparison, out io.Writer) {
	writeResultBlock(out, "Scalar implementation", comp.Scalar)
	fmt.Fprintln(out)
	writeResultBlock(out, "Vectorized implementation", comp.Vectorized)
	fmt.Fprintln(out)

	match := ui.ColorSuccess() + "true" + ui.ColorReset()
	if !comp.AreEqual {
		match = ui.ColorError() + "false" + ui.ColorReset()
	}
	fmt.Fprintf(out, "Results match (within tolerance): %s\n", match)
	fmt.Fprintf(out, "Scalar time    : %s%s%s (%s)\n",
		ui.ColorWarning(), format.Seconds(comp.ScalarTime), ui.ColorReset(),
		format.ExecutionDuration(comp.ScalarTime))
	fmt.Fprintf(out, "Vectorized time: %s%s%s (%s)\n",
		ui.ColorWarning(), format.Seconds(comp.VectorizedTime), ui.ColorReset(),
		format.ExecutionDuration(comp.VectorizedTime))
}

func writeResultBlock(out io.Writer, title string, res stats.Result) {
	fmt.Fprintf(out, "%s=== %s ===%s\n", ui.ColorBold(), title, ui.ColorReset())
	fmt.Fprintf(out, "Implementation: %s%s%s\n", ui.ColorPrimary(), res.Impl, ui.ColorReset())
	fmt.Fprintf(out, "Count         : %d\n", res.Count)
	fmt.Fprintf(out, "Total         : %s\n", format.Float(res.Total))
	fmt.Fprintf(out, "Mean          : %s\n", format.Float(res.Mean))
	fmt.Fprintf(out, "Min           : %s\n", format.Float(res.Minimum))
	fmt.Fprintf(out, "Max           : %s\n", format.Float(res.Maximum))
}

// PresentQuiet prints the single-line summary used in quiet mode:
// count, total, mean, min, max and the agreement flag.
func (CLIPresenter) PresentQuiet(comp orchestration.Comparison, out io.Writer) {
	fmt.Fprintf(out, "count=%d total=%s mean=%s min=%s max=%s match=%v\n",
		comp.Scalar.Count,
		format.Float(comp.Scalar.Total),
		format.Float(comp.Scalar.Mean),
		format.Float(comp.Scalar.Minimum),
		format.Float(comp.Scalar.Maximum),
		comp.AreEqual)
}

// HandleError prints a colorized description of err and returns the process
// exit code it maps to.
func (CLIPresenter) HandleError(err error, out io.Writer) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	return apperrors.ExitCodeFor(err)
}
