package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Load resolves the whisper.cpp binary and the model file for the selected
// size. Model files follow the whisper.cpp naming convention
// (ggml-<size>.bin) under the configured model directory.
func (w *implWhisperCPP) Load(ctx context.Context) error {
	if _, err := exec.LookPath(w.cfg.BinaryPath); err != nil {
		return fmt.Errorf("whisper binary %s: %w", w.cfg.BinaryPath, err)
	}

	modelPath := filepath.Join(w.cfg.ModelDir, "ggml-"+w.modelSize+".bin")
	if _, err := os.Stat(modelPath); err != nil {
		return fmt.Errorf("whisper model %s: %w", modelPath, err)
	}

	w.logger.Info(ctx, "Loading Whisper model: %s", w.modelSize)
	w.modelPath = modelPath
	return nil
}

// whisperOut mirrors the JSON file whisper.cpp emits with -oj.
// Offsets are milliseconds from the start of the audio.
type whisperOut struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp on the audio file and parses the JSON it
// writes next to the audio. Segments with empty trimmed text are dropped.
func (w *implWhisperCPP) Transcribe(ctx context.Context, audioPath string, opts Options) ([]Segment, error) {
	if w.modelPath == "" {
		return nil, fmt.Errorf("model not loaded")
	}

	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	language := opts.Language
	if language == "" {
		language = "auto"
	} else {
		w.logger.Info(ctx, "Forcing transcription in %s", strings.ToUpper(language))
	}

	// -oj: JSON output; -ojf additionally carries word-level timing
	args := []string{
		"-m", w.modelPath,
		"-f", audioPath,
		"-l", language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-oj",
		"--output-file", outputPrefix,
	}
	if opts.WordTimestamps {
		args = append(args, "-ojf")
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	defer os.Remove(jsonPath)

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	return parseSegments(data)
}

func parseSegments(data []byte) ([]Segment, error) {
	var out whisperOut
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	var segments []Segment
	for _, s := range out.Transcription {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start: float64(s.Offsets.From) / 1000.0,
			End:   float64(s.Offsets.To) / 1000.0,
			Text:  text,
		})
	}

	return segments, nil
}
