package display

import (
	"fmt"
	"time"

	"github.com/mnrn/VKGraphics/internal/pipeline"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatDuration rounds d for display: milliseconds under a second, tenths
// of a second above.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}

// Summary returns the one-line end-of-run report, e.g.
// "12 files: 11 ok, 1 failed, 340.2 KiB written in 2.4s".
func Summary(s pipeline.RunStats, elapsed time.Duration) string {
	return fmt.Sprintf("%d files: %d ok, %d failed, %s written in %s",
		s.Total, s.Succeeded, s.Failed, FormatBytes(s.TotalOutputBytes), FormatDuration(elapsed))
}
