// Package app wires configuration, logging and the execution modes together.
// It owns the process lifecycle: signal handling, timeouts and exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/datakit/internal/cli"
	"github.com/agbru/datakit/internal/config"
	apperrors "github.com/agbru/datakit/internal/errors"
	"github.com/agbru/datakit/internal/logging"
	"github.com/agbru/datakit/internal/server"
	"github.com/agbru/datakit/internal/tui"
	"github.com/agbru/datakit/internal/ui"
)

// Application represents the datakit application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "datakit"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	logging.SetVerbose(a.Config.Verbose)
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	switch {
	case a.Config.Serve:
		return a.runServe(ctx)
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.Interactive:
		return a.runInteractive(ctx)
	}
	return a.runCompare(ctx, out)
}

// runServe starts the HTTP comparison endpoint and blocks until a signal
// arrives or the listener fails.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	log := logging.New(os.Stderr)
	srv := server.New(a.Config.ListenAddr, a.Config.Tolerance, log)
	if err := srv.Run(ctx); err != nil {
		log.Error("server failed", logging.Err(err))
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runTUI launches the full-screen dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config, Version)
}

// runInteractive starts the text menu on stdin/stdout.
func (a *Application) runInteractive(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	menu := cli.NewMenu(cli.MenuConfig{
		Tolerance: a.Config.Tolerance,
		Timeout:   a.Config.Timeout,
	})
	menu.Start(ctx)
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
