package orchestration

import "io"

// ComparisonPresenter defines the interface for presenting a comparison to
// the user. This decouples orchestration from presentation concerns, allowing
// different output formats (colorized CLI, JSON, plain report) without
// modifying the comparison logic.
type ComparisonPresenter interface {
	// PresentComparison displays the full comparison report.
	PresentComparison(comp Comparison, out io.Writer)
}

// ErrorHandler handles comparison errors and returns the process exit code.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
