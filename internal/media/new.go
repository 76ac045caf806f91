package media

import (
	"github.com/nguyentantai21042004/video-transcriber/internal/config"
	"github.com/nguyentantai21042004/video-transcriber/internal/logger"
	"github.com/nguyentantai21042004/video-transcriber/pkg/executor"
)

type implMedia struct {
	tools    config.ToolsConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Media instance
func New(tools config.ToolsConfig, exec executor.Executor, log logger.Logger) Media {
	return &implMedia{
		tools:    tools,
		executor: exec,
		logger:   log,
	}
}
