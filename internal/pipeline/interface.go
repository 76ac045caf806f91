package pipeline

import "context"

// Pipeline runs the batch transcription over one folder.
type Pipeline interface {
	Run(ctx context.Context) error
}
