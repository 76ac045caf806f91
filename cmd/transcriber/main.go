package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/media"
	"github.com/nguyentantai21042004/video-transcriber/internal/pipeline"
	"github.com/nguyentantai21042004/video-transcriber/internal/summarizer"
	"github.com/nguyentantai21042004/video-transcriber/internal/transcribe"
	"github.com/nguyentantai21042004/video-transcriber/pkg/executor"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <folder>\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Transcribe every MOV/MP4 video in <folder> to a CSV of timestamped segments.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}

func main() {
	ctx := context.Background()

	var (
		outputCSV    string
		language     string
		modelSize    string
		configPath   string
		watch        bool
		docx         bool
		summariesDir string
	)

	flag.StringVar(&outputCSV, "o", config.DefaultOutputCSV, "Output CSV file path")
	flag.StringVar(&language, "l", "auto", "Transcription language: 'th' for Thai, 'en' for English, 'auto' for automatic detection")
	flag.StringVar(&modelSize, "m", "base", "Whisper model size: tiny (fastest), base, small, medium, large (most accurate)")
	flag.StringVar(&configPath, "c", "", "YAML config file with tool paths (default: config.yaml if present)")
	flag.BoolVar(&watch, "watch", false, "Keep running and transcribe videos added to the folder later")
	flag.BoolVar(&docx, "docx", false, "Also write one transcript .docx per video next to the CSV")
	flag.StringVar(&summariesDir, "summaries", "", "Generate Gemini summaries into this directory after the batch")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	opts := config.Options{
		Folder:       flag.Arg(0),
		OutputCSV:    outputCSV,
		Language:     language,
		ModelSize:    modelSize,
		Watch:        watch,
		Docx:         docx,
		SummariesDir: summariesDir,
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(cfg.Logging.Level)
	exec := executor.New()
	m := media.New(cfg.Tools, exec, log)

	// Preflight: the whole run aborts before any scanning when ffmpeg or
	// ffprobe is absent.
	if err := m.CheckTools(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Please install ffmpeg (includes ffprobe): https://ffmpeg.org/download.html")
		os.Exit(1)
	}

	tr := transcribe.NewWhisperCPP(cfg.Whisper, opts.ModelSize, exec, log)
	p := pipeline.New(opts, m, tr, log)

	if opts.Watch {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Info(ctx, "Shutdown signal received")
			cancel()
		}()
	}

	if err := p.Run(ctx); err != nil {
		log.Error(ctx, "Run failed: %v", err)
		os.Exit(1)
	}

	if opts.SummariesDir != "" {
		if _, err := os.Stat(opts.OutputCSV); err != nil {
			log.Info(ctx, "No CSV to summarize")
			return
		}
		s := summarizer.New(geminiKeys(cfg), cfg.Gemini.Model, log)
		if err := s.SummarizeAll(ctx, opts.OutputCSV, opts.SummariesDir); err != nil {
			log.Error(ctx, "Summaries failed: %v", err)
			os.Exit(1)
		}
	}
}

// loadConfig reads the given config file, or config.yaml when present,
// falling back to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return config.Load("config.yaml")
	}
	return config.Default(), nil
}

// geminiKeys resolves API keys from config, falling back to the
// GEMINI_API_KEYS (comma-separated) or GEMINI_API_KEY environment variables.
func geminiKeys(cfg *config.Config) []string {
	if len(cfg.Gemini.APIKeys) > 0 {
		return cfg.Gemini.APIKeys
	}
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		return keys
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		return []string{v}
	}
	return nil
}
