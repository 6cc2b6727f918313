// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their
// behavior:
//
//   - Parse* functions turn raw user text into typed values.
//   - Present*/write* functions write formatted output to an [io.Writer].
//   - Write* functions write data to files on the filesystem.
//   - Encode* functions serialize values onto a writer.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/agbru/datakit/internal/orchestration"
)

// WriteReportToFile writes a comparison report to a file, creating parent
// directories as needed.
func WriteReportToFile(comp orchestration.Comparison, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Statistics Comparison Report\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Observations: %d\n", comp.Scalar.Count)
	fmt.Fprintf(file, "\n%s\n", orchestration.FormatComparison(comp))

	return nil
}

// EncodeComparisonJSON serializes a comparison as indented JSON onto w.
func EncodeComparisonJSON(w io.Writer, comp orchestration.Comparison) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(orchestration.NewComparisonDocument(comp))
}
