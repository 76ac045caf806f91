package scanner

import (
	"fmt"
	"os"
	"path/filepath"
)

// videoExtensions is the exact allow-set of recognized video files.
// Matching is by literal extension, not lowercased first.
var videoExtensions = map[string]bool{
	".mov": true,
	".mp4": true,
	".MOV": true,
	".MP4": true,
}

// IsVideoFile reports whether the path carries a recognized video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[filepath.Ext(path)]
}

// Scan lists the directory and returns the full paths of recognized video
// files in directory-listing order. A missing or non-directory path is an
// error; an empty result is not.
func Scan(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a valid directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}

	var videos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsVideoFile(e.Name()) {
			videos = append(videos, filepath.Join(dir, e.Name()))
		}
	}

	return videos, nil
}
