package orchestration

import (
	"fmt"
	"strings"

	"github.com/agbru/datakit/internal/stats"
)

// FormatResult renders a single engine result as a fixed-format multi-line
// block. Floating-point fields use 6 significant digits. Presentation only:
// it has no effect on the data model or correctness checks.
func FormatResult(res stats.Result) string {
	return fmt.Sprintf(
		"Implementation: %s\n"+
			"Count         : %d\n"+
			"Total         : %.6g\n"+
			"Mean          : %.6g\n"+
			"Min           : %.6g\n"+
			"Max           : %.6g",
		res.Impl, res.Count, res.Total, res.Mean, res.Minimum, res.Maximum)
}

// FormatComparison renders a full comparison report: both result blocks, a
// match indicator, and both timings in seconds with sub-millisecond
// precision.
func FormatComparison(comp Comparison) string {
	lines := []string{
		"=== Scalar implementation ===",
		FormatResult(comp.Scalar),
		"",
		"=== Vectorized implementation ===",
		FormatResult(comp.Vectorized),
		"",
		fmt.Sprintf("Results match (within tolerance): %v", comp.AreEqual),
		fmt.Sprintf("Scalar time    : %.6f s", comp.ScalarTime.Seconds()),
		fmt.Sprintf("Vectorized time: %.6f s", comp.VectorizedTime.Seconds()),
	}
	return strings.Join(lines, "\n")
}
