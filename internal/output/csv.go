package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/video-transcriber/internal/transcribe"
)

// csvHeader is the fixed three-column header of the transcript CSV.
var csvHeader = []string{"File Name", "Time (mins)", "Transcribed Text"}

// CSVWriter appends transcript rows to a single CSV file kept open for the
// whole run. Rows are flushed per file so a crash mid-run still leaves a
// syntactically valid CSV.
type CSVWriter struct {
	file *os.File
	w    *csv.Writer
}

// NewCSVWriter creates (or truncates) the output file and writes the header.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output csv: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("flush csv header: %w", err)
	}

	return &CSVWriter{file: f, w: w}, nil
}

// WriteSegments appends one row per segment: the video's display name, the
// segment start time in minutes to two decimals, and the text.
func (c *CSVWriter) WriteSegments(videoName string, segments []transcribe.Segment) error {
	for _, s := range segments {
		row := []string{videoName, fmt.Sprintf("%.2f", s.Start/60.0), s.Text}
		if err := c.w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("flush csv rows: %w", err)
	}
	return nil
}

func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.file.Close()
		return fmt.Errorf("flush csv: %w", err)
	}
	return c.file.Close()
}
