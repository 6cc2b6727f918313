// Package format holds small presentation helpers shared by the CLI, TUI and
// server layers.
package format

import (
	"fmt"
	"time"
)

// ExecutionDuration formats a time.Duration for display. It shows
// microseconds for durations under a millisecond and milliseconds for
// durations under a second; longer durations fall back to the default string
// representation. Engine runs in this tool are usually well under a
// millisecond, so the short forms matter.
func ExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Seconds renders a duration as seconds with six decimal places, the
// precision used by the comparison report for engine timings.
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.6f s", d.Seconds())
}

// Float renders a floating-point statistic with six significant digits.
func Float(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

// Bytes formats a byte count using binary units (KiB, MiB, ...).
func Bytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
