package content

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ImageExtensions are matched case-insensitively against file names.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"}

func IsImage(name string) bool {
	return slices.Contains(ImageExtensions, strings.ToLower(filepath.Ext(name)))
}

// ScanFolder returns the image file names in dir, sorted by name.
// An existing folder without images yields an empty, non-nil slice.
func ScanFolder(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &PathError{Path: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Err: err}
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImage(e.Name()) {
			continue
		}
		images = append(images, e.Name())
	}
	slices.Sort(images)

	return images, nil
}
