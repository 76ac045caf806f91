package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"clip.mp4", true},
		{"clip.MP4", true},
		{"clip.mov", true},
		{"clip.MOV", true},
		{"clip.Mp4", false}, // only the four literal extensions count
		{"clip.mkv", false},
		{"clip.avi", false},
		{"clip.mp4.txt", false},
		{"notes.txt", false},
		{"mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsVideoFile(tt.path); got != tt.want {
				t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()

	files := []string{"a.mp4", "b.MOV", "c.txt", "d.mkv"}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.mp4"), 0755); err != nil {
		t.Fatal(err)
	}

	videos, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	if len(videos) != 2 {
		t.Fatalf("Scan() = %v, want 2 videos", videos)
	}
	for _, v := range videos {
		if !IsVideoFile(v) {
			t.Errorf("Scan() returned non-video %s", v)
		}
		if filepath.Dir(v) != dir {
			t.Errorf("Scan() returned path outside dir: %s", v)
		}
	}
}

func TestScanEmptyFolder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	videos, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("Scan() = %v, want empty", videos)
	}
}

func TestScanInvalidFolder(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Scan() should return error for missing directory")
	}

	file := filepath.Join(t.TempDir(), "file.mp4")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Scan(file); err == nil {
		t.Error("Scan() should return error for non-directory path")
	}
}
