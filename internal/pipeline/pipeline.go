package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-transcriber/internal/output"
	"github.com/nguyentantai21042004/video-transcriber/internal/scanner"
	"github.com/nguyentantai21042004/video-transcriber/internal/transcribe"
	"github.com/nguyentantai21042004/video-transcriber/internal/watcher"
)

// Run orchestrates the whole batch: scan, load the model once, then probe,
// extract, transcribe and write per file, skipping on any per-file failure.
// An invalid folder and an empty scan both terminate the run; only the
// former is an error. With watch mode on, the run keeps going after the
// batch pass and handles videos created later.
func (p *implPipeline) Run(ctx context.Context) error {
	videos, err := scanner.Scan(p.opts.Folder)
	if err != nil {
		return fmt.Errorf("scan folder: %w", err)
	}

	if len(videos) == 0 && !p.opts.Watch {
		p.logger.Info(ctx, "No video files found in %s", p.opts.Folder)
		return nil
	}

	p.logger.Info(ctx, "Found %d video files to process", len(videos))

	if err := p.transcriber.Load(ctx); err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	// Scratch dir teardown is the backstop guarantee for audio artifacts;
	// per-file removal below is best-effort.
	scratchDir, err := os.MkdirTemp("", "video-transcriber-*")
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratchDir)

	csvw, err := output.NewCSVWriter(p.opts.OutputCSV)
	if err != nil {
		return err
	}
	defer csvw.Close()

	for i, videoPath := range videos {
		p.logger.Info(ctx, "Processing %d/%d: %s", i+1, len(videos), filepath.Base(videoPath))
		p.logOutcome(ctx, videoPath, p.processFile(ctx, videoPath, scratchDir, csvw))
	}

	if p.opts.Watch {
		if err := p.watchLoop(ctx, scratchDir, csvw); err != nil && err != context.Canceled {
			return err
		}
	}

	p.logger.Info(ctx, "Transcription complete! Results saved to %s", p.opts.OutputCSV)
	return nil
}

// processFile runs the per-file stages and reports a tagged outcome instead
// of an error: every failure here is local to the file.
func (p *implPipeline) processFile(ctx context.Context, videoPath, scratchDir string, csvw *output.CSVWriter) Outcome {
	videoName := filepath.Base(videoPath)

	duration := p.media.ProbeDuration(ctx, videoPath)
	if duration == 0 {
		return skipped("could not determine duration")
	}

	audioPath, err := p.media.ExtractAudio(ctx, videoPath, scratchDir)
	if err != nil {
		p.logger.Warn(ctx, "Audio extraction failed for %s: %v", videoName, err)
		return skipped("could not extract audio")
	}
	defer p.removeScratchFile(ctx, audioPath)

	segments, err := p.transcriber.Transcribe(ctx, audioPath, transcribe.Options{
		Language:       p.opts.LanguageHint(),
		WordTimestamps: true,
	})
	if err != nil {
		p.logger.Warn(ctx, "Transcription failed for %s: %v", videoName, err)
		return skipped("transcription failed")
	}

	if len(segments) == 0 {
		return Outcome{Rows: 0}
	}

	if err := csvw.WriteSegments(videoName, segments); err != nil {
		p.logger.Warn(ctx, "Failed to write rows for %s: %v", videoName, err)
		return skipped("could not write csv rows")
	}

	if p.opts.Docx {
		p.writeDocx(ctx, videoName, segments)
	}

	return Outcome{Rows: len(segments)}
}

func (p *implPipeline) writeDocx(ctx context.Context, videoName string, segments []transcribe.Segment) {
	stem := strings.TrimSuffix(videoName, filepath.Ext(videoName))
	docxPath := filepath.Join(filepath.Dir(p.opts.OutputCSV), stem+".docx")

	if err := output.WriteTranscriptDocx(videoName, segments, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx for %s: %v", videoName, err)
		return
	}
	p.logger.Debug(ctx, "Transcript docx written: %s", docxPath)
}

func (p *implPipeline) logOutcome(ctx context.Context, videoPath string, o Outcome) {
	videoName := filepath.Base(videoPath)
	switch {
	case o.Skipped:
		p.logger.Warn(ctx, "Skipping %s - %s", videoName, o.Reason)
	case o.Rows == 0:
		p.logger.Info(ctx, "No transcription generated for %s", videoName)
	default:
		p.logger.Info(ctx, "Transcribed %d segments from %s", o.Rows, videoName)
	}
}

// removeScratchFile removes a per-file audio artifact, logging only; the
// scratch dir teardown catches anything left behind.
func (p *implPipeline) removeScratchFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.logger.Debug(ctx, "Failed to remove scratch file %s: %v", path, err)
	}
}

// watchLoop keeps the CSV open and transcribes videos created in the folder
// after the batch pass, until the context is cancelled.
func (p *implPipeline) watchLoop(ctx context.Context, scratchDir string, csvw *output.CSVWriter) error {
	handler := func(ctx context.Context, videoPath string) error {
		p.logger.Info(ctx, "Processing new video: %s", filepath.Base(videoPath))
		p.logOutcome(ctx, videoPath, p.processFile(ctx, videoPath, scratchDir, csvw))
		return nil
	}

	w, err := watcher.New(p.opts.Folder, handler, p.logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	p.logger.Info(ctx, "Watching %s for new videos, press Ctrl+C to stop", p.opts.Folder)
	return w.Start(ctx)
}
