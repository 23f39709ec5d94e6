// Package input locates and reads the test output file to analyze.
package input

import (
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/triage/internal/errors"
)

// FindLatest returns the most recently modified regular file in dir whose
// name matches pattern. Files with equal modification times are ordered by
// name, the greatest winning.
func FindLatest(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", errors.WrapConfig(err, "invalid input pattern")
	}

	var latest string
	var latestInfo os.FileInfo
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if latestInfo == nil || newer(info, path, latestInfo, latest) {
			latest, latestInfo = path, info
		}
	}

	if latest == "" {
		return "", errors.NoInput(dir, pattern)
	}
	return latest, nil
}

func newer(info os.FileInfo, path string, than os.FileInfo, thanPath string) bool {
	if !info.ModTime().Equal(than.ModTime()) {
		return info.ModTime().After(than.ModTime())
	}
	return path > thanPath
}

// Matches reports whether the base name of path matches pattern.
func Matches(pattern, path string) bool {
	ok, err := filepath.Match(pattern, filepath.Base(path))
	return err == nil && ok
}

// Read loads the whole file into memory.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &errors.TriageError{
			Kind:    errors.KindRuntime,
			Message: "failed to read test output",
			Path:    path,
			Cause:   err,
		}
	}
	return string(data), nil
}
