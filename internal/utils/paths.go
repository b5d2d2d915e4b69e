package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePath resolves path relative to baseDir. Absolute paths, and any
// path when baseDir is empty, are returned unchanged.
func ResolvePath(path, baseDir string) string {
	if baseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ListFiles returns the files directly inside dir whose names satisfy keep,
// in directory order. Subdirectories are not descended into.
func ListFiles(dir string, keep func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !keep(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}
