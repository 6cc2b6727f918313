package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	apperrors "github.com/agbru/datakit/internal/errors"
	"github.com/agbru/datakit/internal/orchestration"
)

// newApp builds an application from CLI args with colors disabled so output
// assertions stay byte-exact.
func newApp(t *testing.T, args ...string) *Application {
	t.Helper()
	full := append([]string{"datakit", "-no-color"}, args...)
	a, err := New(full, io.Discard)
	if err != nil {
		t.Fatalf("New(%v) failed: %v", args, err)
	}
	return a
}

func TestNew_ParsesArguments(t *testing.T) {
	a := newApp(t, "-values", "1, 2, 3", "-tolerance", "1e-6", "-quiet")

	if a.Config.Values != "1, 2, 3" {
		t.Errorf("Values = %q", a.Config.Values)
	}
	if a.Config.Tolerance != 1e-6 {
		t.Errorf("Tolerance = %g", a.Config.Tolerance)
	}
	if !a.Config.Quiet {
		t.Error("Quiet not set")
	}
}

func TestNew_HelpFlag(t *testing.T) {
	_, err := New([]string{"datakit", "-h"}, io.Discard)
	if !IsHelpError(err) {
		t.Errorf("expected a help error, got %v", err)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New([]string{"datakit", "-tolerance", "-1"}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for a negative tolerance")
	}
	if IsHelpError(err) {
		t.Error("a config error must not look like a help request")
	}
	// The entry point maps this error straight to the process exit code, so a
	// configuration mistake must produce the dedicated config status.
	if code := apperrors.ExitCodeFor(err); code != apperrors.ExitErrorConfig {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
}

func TestRun_OneShotReport(t *testing.T) {
	a := newApp(t, "-values", "1, 2, 3")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want %d; output:\n%s", code, apperrors.ExitSuccess, out.String())
	}
	for _, want := range []string{
		"=== Scalar implementation ===",
		"=== Vectorized implementation ===",
		"Count         : 3",
		"Total         : 6",
		"Results match (within tolerance): true",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_QuietMode(t *testing.T) {
	a := newApp(t, "-values", "1, 2, 3", "-quiet")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d; output:\n%s", code, out.String())
	}
	want := "count=3 total=6 mean=2 min=1 max=3 match=true\n"
	if out.String() != want {
		t.Errorf("quiet output = %q, want %q", out.String(), want)
	}
}

func TestRun_JSONMode(t *testing.T) {
	a := newApp(t, "-values", "1.5, 2.5", "-json")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d; output:\n%s", code, out.String())
	}

	var doc orchestration.ComparisonDocument
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("decoding JSON output: %v\n%s", err, out.String())
	}
	if doc.Scalar.Count != 2 || doc.Scalar.Mean != 2 || doc.Scalar.Total != 4 {
		t.Errorf("scalar = %+v, want count=2 mean=2 total=4", doc.Scalar)
	}
	if !doc.AreEqual {
		t.Error("are_equal = false, want true")
	}
}

func TestRun_EmptyInputIsValidationError(t *testing.T) {
	a := newApp(t, "-values", "")
	var errOut bytes.Buffer
	a.ErrWriter = &errOut

	code := a.Run(context.Background(), io.Discard)

	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(errOut.String(), "non-empty") {
		t.Errorf("error output = %q, expected the empty-sequence message", errOut.String())
	}
}

func TestRun_ParseErrorNamesToken(t *testing.T) {
	a := newApp(t, "-values", "1, abc, 3")
	var errOut bytes.Buffer
	a.ErrWriter = &errOut

	code := a.Run(context.Background(), io.Discard)

	if code != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(errOut.String(), `"abc"`) {
		t.Errorf("error output = %q, expected the offending token", errOut.String())
	}
}

func TestRun_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	if err := os.WriteFile(path, []byte("5\n10\n15\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := newApp(t, "-input", path, "-quiet")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d; output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "count=3 total=30 mean=10") {
		t.Errorf("unexpected quiet output: %q", out.String())
	}
}

func TestRun_SavesReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.txt")

	a := newApp(t, "-values", "1, 2, 3", "-o", path)
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d; output:\n%s", code, out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if !strings.Contains(string(data), "# Statistics Comparison Report") {
		t.Error("report file missing its header")
	}
	if !strings.Contains(out.String(), "Report saved to: "+path) {
		t.Errorf("confirmation line missing from output:\n%s", out.String())
	}
}

func TestRun_DetailsPrintsMemorySnapshot(t *testing.T) {
	a := newApp(t, "-values", "1, 2, 3", "-details")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d; output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "Memory: heap=") {
		t.Errorf("details output missing memory snapshot:\n%s", out.String())
	}
}

func TestIsHelpError(t *testing.T) {
	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp not recognized")
	}
	if IsHelpError(errors.New("boom")) {
		t.Error("arbitrary error misclassified as help")
	}
	if IsHelpError(nil) {
		t.Error("nil misclassified as help")
	}
}

func TestHasVersionFlag(t *testing.T) {
	cases := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"-values", "1"}, false},
		{[]string{"-version"}, true},
		{[]string{"--version"}, true},
		{[]string{"-quiet", "--version"}, true},
	}
	for _, c := range cases {
		if got := HasVersionFlag(c.args); got != c.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", c.args, got, c.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)

	if !strings.Contains(out.String(), "datakit") || !strings.Contains(out.String(), Version) {
		t.Errorf("version banner = %q", out.String())
	}
}
