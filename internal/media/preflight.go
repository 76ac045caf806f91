package media

import (
	"context"
	"fmt"
)

// CheckTools runs a version query against ffmpeg and ffprobe. The whole run
// must abort before any scanning when either tool is missing.
func (m *implMedia) CheckTools(ctx context.Context) error {
	if _, err := m.executor.Execute(ctx, m.tools.FFmpeg, "-version"); err != nil {
		return fmt.Errorf("ffmpeg is not installed or not in PATH: %w", err)
	}
	if _, err := m.executor.Execute(ctx, m.tools.FFprobe, "-version"); err != nil {
		return fmt.Errorf("ffprobe is not installed or not in PATH: %w", err)
	}
	return nil
}
