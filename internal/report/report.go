// Package report renders an analysis into the spreadsheet and Markdown artifacts.
package report

import (
	"fmt"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/AndreyAkinshin/triage/internal/triage"
)

// Options tunes report content.
type Options struct {
	TopPatterns    int // Most frequent messages considered for "common patterns"
	MessagePreview int // Messages longer than this many runes are truncated in the document
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		TopPatterns:    triage.DefaultTopPatterns,
		MessagePreview: 100,
	}
}

// Artifacts holds the paths of the files produced by one run.
type Artifacts struct {
	Spreadsheet string
	Document    string
}

// ArtifactPaths names both artifacts in dir from the run timestamp.
func ArtifactPaths(dir string, now time.Time, layout string) Artifacts {
	stamp := now.Format(layout)
	return Artifacts{
		Spreadsheet: filepath.Join(dir, fmt.Sprintf("test-analysis-%s.xlsx", stamp)),
		Document:    filepath.Join(dir, fmt.Sprintf("TEST-ANALYSIS-REPORT-%s.md", stamp)),
	}
}

// truncate shortens s to max runes, appending "..." when cut.
func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
