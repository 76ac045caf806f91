package transcribe

import (
	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/pkg/executor"
)

type implWhisperCPP struct {
	cfg       config.WhisperConfig
	modelSize string
	executor  executor.Executor
	logger    logger.Logger

	modelPath string // resolved by Load
}

// NewWhisperCPP creates a Transcriber backed by the whisper.cpp CLI.
// Load must be called before the first Transcribe.
func NewWhisperCPP(cfg config.WhisperConfig, modelSize string, exec executor.Executor, log logger.Logger) Transcriber {
	return &implWhisperCPP{
		cfg:       cfg,
		modelSize: modelSize,
		executor:  exec,
		logger:    log,
	}
}
