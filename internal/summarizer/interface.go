package summarizer

import "context"

// Summarizer reads the transcript CSV and produces one LLM-generated
// markdown + docx summary per video.
type Summarizer interface {
	SummarizeAll(ctx context.Context, csvPath, destDir string) error
}
