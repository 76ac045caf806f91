package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
)

// fakeExecutor scripts per-command stdout/err and records every invocation.
type fakeExecutor struct {
	calls [][]string
	out   map[string]string
	err   map[string]error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if err := f.err[name]; err != nil {
		return "", err
	}
	return f.out[name], nil
}

func testTools() config.ToolsConfig {
	return config.ToolsConfig{FFmpeg: "ffmpeg", FFprobe: "ffprobe"}
}

func TestProbeDuration(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		err    error
		want   float64
	}{
		{"bare float", "5.0\n", nil, 5.0},
		{"fractional", "123.456000", nil, 123.456},
		{"unparsable output", "N/A", nil, 0},
		{"empty output", "", nil, 0},
		{"negative duration", "-3.0", nil, 0},
		{"subprocess failure", "", fmt.Errorf("exit status 1"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{
				out: map[string]string{"ffprobe": tt.stdout},
				err: map[string]error{"ffprobe": tt.err},
			}
			m := New(testTools(), exec, logger.New("error"))

			got := m.ProbeDuration(context.Background(), "clip.mp4")
			if got != tt.want {
				t.Errorf("ProbeDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProbeDurationArgs(t *testing.T) {
	exec := &fakeExecutor{out: map[string]string{"ffprobe": "5.0"}}
	m := New(testTools(), exec, logger.New("error"))

	m.ProbeDuration(context.Background(), "clip.mp4")

	if len(exec.calls) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(exec.calls))
	}
	got := strings.Join(exec.calls[0], " ")
	want := "ffprobe -v quiet -show_entries format=duration -of csv=p=0 clip.mp4"
	if got != want {
		t.Errorf("ffprobe invocation = %q, want %q", got, want)
	}
}

func TestExtractAudio(t *testing.T) {
	exec := &fakeExecutor{}
	m := New(testTools(), exec, logger.New("error"))

	audioPath, err := m.ExtractAudio(context.Background(), "/videos/clip.mp4", "/scratch")
	if err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}

	if audioPath != filepath.Join("/scratch", "clip.wav") {
		t.Errorf("audioPath = %v, want /scratch/clip.wav", audioPath)
	}

	got := strings.Join(exec.calls[0], " ")
	for _, fragment := range []string{
		"-vn",
		"-acodec pcm_s16le",
		"-ar 16000",
		"-ac 1",
		"-y",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("ffmpeg invocation %q missing %q", got, fragment)
		}
	}
}

func TestExtractAudioFailure(t *testing.T) {
	exec := &fakeExecutor{err: map[string]error{"ffmpeg": fmt.Errorf("exit status 1")}}
	m := New(testTools(), exec, logger.New("error"))

	if _, err := m.ExtractAudio(context.Background(), "clip.mp4", t.TempDir()); err == nil {
		t.Error("ExtractAudio() should return error on subprocess failure")
	}
}

func TestCheckTools(t *testing.T) {
	t.Run("both present", func(t *testing.T) {
		exec := &fakeExecutor{out: map[string]string{
			"ffmpeg":  "ffmpeg version 7.0",
			"ffprobe": "ffprobe version 7.0",
		}}
		m := New(testTools(), exec, logger.New("error"))
		if err := m.CheckTools(context.Background()); err != nil {
			t.Errorf("CheckTools() error = %v", err)
		}
	})

	t.Run("ffmpeg missing", func(t *testing.T) {
		exec := &fakeExecutor{err: map[string]error{"ffmpeg": fmt.Errorf("executable file not found")}}
		m := New(testTools(), exec, logger.New("error"))
		if err := m.CheckTools(context.Background()); err == nil {
			t.Error("CheckTools() should fail when ffmpeg is missing")
		}
	})

	t.Run("ffprobe missing", func(t *testing.T) {
		exec := &fakeExecutor{err: map[string]error{"ffprobe": fmt.Errorf("executable file not found")}}
		m := New(testTools(), exec, logger.New("error"))
		if err := m.CheckTools(context.Background()); err == nil {
			t.Error("CheckTools() should fail when ffprobe is missing")
		}
	})
}
