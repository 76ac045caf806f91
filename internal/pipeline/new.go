package pipeline

import (
	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/internal/media"
	"github.com/nguyentantai21042004/video-transcriber/internal/transcribe"
)

type implPipeline struct {
	opts        config.Options
	media       media.Media
	transcriber transcribe.Transcriber
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(opts config.Options, m media.Media, tr transcribe.Transcriber, log logger.Logger) Pipeline {
	return &implPipeline{
		opts:        opts,
		media:       m,
		transcriber: tr,
		logger:      log,
	}
}
