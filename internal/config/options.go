package config

import "fmt"

// DefaultOutputCSV is written when no -o flag is given.
const DefaultOutputCSV = "transcription_output.csv"

// Options carries the per-run settings resolved from the command line.
// It is built once at the process boundary and never mutated afterwards.
type Options struct {
	Folder       string
	OutputCSV    string
	Language     string // "th", "en" or "auto"
	ModelSize    string // "tiny", "base", "small", "medium" or "large"
	Watch        bool
	Docx         bool
	SummariesDir string
}

var languages = map[string]bool{
	"th":   true,
	"en":   true,
	"auto": true,
}

var modelSizes = map[string]bool{
	"tiny":   true,
	"base":   true,
	"small":  true,
	"medium": true,
	"large":  true,
}

func (o Options) Validate() error {
	if o.Folder == "" {
		return fmt.Errorf("folder is required")
	}
	if !languages[o.Language] {
		return fmt.Errorf("invalid language %q (allowed: th, en, auto)", o.Language)
	}
	if !modelSizes[o.ModelSize] {
		return fmt.Errorf("invalid model size %q (allowed: tiny, base, small, medium, large)", o.ModelSize)
	}
	return nil
}

// LanguageHint returns the language code to force on the model,
// or "" when automatic detection was requested.
func (o Options) LanguageHint() string {
	if o.Language == "auto" {
		return ""
	}
	return o.Language
}
