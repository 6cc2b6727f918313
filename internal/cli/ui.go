package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"

	apperrors "github.com/agbru/datakit/internal/errors"
)

// SpinnerRefreshRate defines the animation interval of the loading spinner.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner abstracts the behavior of a terminal spinner, decoupling callers
// from the concrete spinner implementation and making progress display
// testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a seam for tests to substitute a fake spinner.
var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// LoadValuesFile reads a whitespace/comma-separated file of numbers,
// displaying a spinner on out while the file is read and parsed. Datasets
// big enough to need this tool's vectorized path can take a moment to parse;
// the spinner keeps the terminal from looking stalled.
func LoadValuesFile(path string, out io.Writer) ([]float64, error) {
	sp := newSpinner(out)
	sp.UpdateSuffix(" reading " + path)
	sp.Start()
	defer sp.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.WrapError(err, "reading input file")
	}

	sp.UpdateSuffix(" parsing " + path)
	values, err := ParseNumbers(string(data))
	if err != nil {
		return nil, err
	}
	return values, nil
}
