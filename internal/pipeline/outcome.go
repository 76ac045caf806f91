package pipeline

// Outcome is the tagged result of processing one video file. A skipped file
// contributed zero rows and carries the reason for the single diagnostic
// line; it never halts the batch.
type Outcome struct {
	Rows    int
	Skipped bool
	Reason  string
}

func skipped(reason string) Outcome {
	return Outcome{Skipped: true, Reason: reason}
}
