package output

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/nguyentantai21042004/video-transcriber/internal/transcribe"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestCSVWriterHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	rows := readAll(t, path)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want header only", len(rows))
	}
	want := []string{"File Name", "Time (mins)", "Transcribed Text"}
	for i, col := range want {
		if rows[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], col)
		}
	}
}

func TestCSVWriterSegments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}

	segments := []transcribe.Segment{
		{Start: 0.0, End: 2.0, Text: "hello"},
		{Start: 75.0, End: 80.0, Text: "a minute in"},
	}
	if err := w.WriteSegments("clip.mp4", segments); err != nil {
		t.Fatalf("WriteSegments() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	rows := readAll(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}

	if rows[1][0] != "clip.mp4" || rows[1][1] != "0.00" || rows[1][2] != "hello" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][1] != "1.25" {
		t.Errorf("row 2 time = %q, want 1.25", rows[2][1])
	}

	// round-trip: parsed minutes stay within half of the printed precision
	for i, s := range segments {
		got, err := strconv.ParseFloat(rows[i+1][1], 64)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-s.Start/60.0) > 0.005 {
			t.Errorf("row %d time %v drifts from %v", i+1, got, s.Start/60.0)
		}
	}
}

func TestCSVWriterFlushPerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.WriteSegments("a.mp4", []transcribe.Segment{{Start: 1, Text: "x"}}); err != nil {
		t.Fatal(err)
	}

	// rows must be on disk before Close
	rows := readAll(t, path)
	if len(rows) != 2 {
		t.Errorf("got %d rows before Close, want 2", len(rows))
	}
}
