package media

import (
	"context"
	"strconv"
	"strings"
)

// ProbeDuration queries the container duration via ffprobe. Failures are
// reported as 0 ("unknown") so a bad file never aborts the batch; the caller
// treats 0 as a skip signal.
func (m *implMedia) ProbeDuration(ctx context.Context, videoPath string) float64 {
	args := []string{
		"-v", "quiet",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		videoPath,
	}

	out, err := m.executor.Execute(ctx, m.tools.FFprobe, args...)
	if err != nil {
		m.logger.Warn(ctx, "ffprobe failed for %s: %v", videoPath, err)
		return 0
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		m.logger.Warn(ctx, "unparsable duration for %s: %q", videoPath, strings.TrimSpace(out))
		return 0
	}
	if duration < 0 {
		return 0
	}

	return duration
}
