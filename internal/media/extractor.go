package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// ExtractAudio extracts audio from a video file into scratchDir as a
// mono 16kHz 16-bit PCM WAV, the format Whisper expects.
func (m *implMedia) ExtractAudio(ctx context.Context, videoPath, scratchDir string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(scratchDir, stem+".wav")

	// -vn: no video
	// -acodec pcm_s16le: PCM 16-bit little-endian
	// -ar 16000: 16kHz sample rate
	// -ac 1: mono
	// -y: overwrite output file if exists
	args := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		audioPath,
	}

	if _, err := m.executor.Execute(ctx, m.tools.FFmpeg, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	m.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
