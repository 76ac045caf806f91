package media

import "context"

// Media wraps the external ffmpeg/ffprobe tooling used by the pipeline.
type Media interface {
	// CheckTools verifies ffmpeg and ffprobe respond to a version query.
	CheckTools(ctx context.Context) error
	// ProbeDuration returns the container duration in seconds, or 0 when
	// the duration cannot be determined.
	ProbeDuration(ctx context.Context, videoPath string) float64
	// ExtractAudio demuxes the video into a mono 16kHz PCM WAV file in
	// scratchDir and returns its path.
	ExtractAudio(ctx context.Context, videoPath, scratchDir string) (string, error)
}
