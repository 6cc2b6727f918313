package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/datakit/internal/cli"
	apperrors "github.com/agbru/datakit/internal/errors"
	"github.com/agbru/datakit/internal/format"
	"github.com/agbru/datakit/internal/metrics"
	"github.com/agbru/datakit/internal/orchestration"
	"github.com/agbru/datakit/internal/ui"
)

// runCompare executes the one-shot mode: load values, compare the engines and
// report the outcome in the configured output shape.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	presenter := cli.CLIPresenter{}

	values, err := a.loadValues(out)
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	comp, err := orchestration.CompareWithTolerance(ctx, values, a.Config.Tolerance)
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	switch {
	case a.Config.JSON:
		if err := cli.EncodeComparisonJSON(out, comp); err != nil {
			return presenter.HandleError(err, a.ErrWriter)
		}
	case a.Config.Quiet:
		presenter.PresentQuiet(comp, out)
	default:
		presenter.PresentComparison(comp, out)
	}

	if a.Config.Details && !a.Config.JSON {
		writeMemoryDetails(out)
	}

	if a.Config.OutputFile != "" {
		if err := cli.WriteReportToFile(comp, a.Config.OutputFile); err != nil {
			return presenter.HandleError(err, a.ErrWriter)
		}
		if !a.Config.Quiet && !a.Config.JSON {
			fmt.Fprintf(out, "\n%sReport saved to: %s%s\n",
				ui.ColorSuccess(), a.Config.OutputFile, ui.ColorReset())
		}
	}

	if !comp.AreEqual {
		return apperrors.ExitErrorMismatch
	}
	return apperrors.ExitSuccess
}

// loadValues resolves the one-shot input: an explicit -values list or a
// -input file.
func (a *Application) loadValues(out io.Writer) ([]float64, error) {
	if a.Config.InputFile != "" {
		return cli.LoadValuesFile(a.Config.InputFile, out)
	}
	return cli.ParseNumbers(a.Config.Values)
}

// writeMemoryDetails prints a process memory snapshot for -details.
func writeMemoryDetails(out io.Writer) {
	snap := metrics.Snapshot()
	fmt.Fprintf(out, "\nMemory: heap=%s sys=%s objects=%d gc=%d\n",
		format.Bytes(snap.HeapAlloc), format.Bytes(snap.Sys),
		snap.HeapObjects, snap.NumGC)
}
