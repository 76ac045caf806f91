package transcribe

import "context"

// Segment is one contiguous span of recognized speech.
type Segment struct {
	Start float64 // seconds
	End   float64 // seconds
	Text  string
}

// Options carries per-call transcription settings.
type Options struct {
	// Language forces recognition in the given language code.
	// Empty means automatic detection.
	Language string
	// WordTimestamps requests word-level timing from the model.
	WordTimestamps bool
}

// Transcriber defines the interface to the speech-recognition model.
type Transcriber interface {
	// Load prepares the model once per run, before the per-file loop.
	Load(ctx context.Context) error
	// Transcribe converts an audio file into ordered segments with
	// trimmed, non-empty text.
	Transcribe(ctx context.Context, audioPath string, opts Options) ([]Segment, error)
}
