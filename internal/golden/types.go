// Package golden loads recorded PHPUnit runs together with the analysis they
// are expected to produce, and compares a fresh analysis against them.
package golden

import "github.com/AndreyAkinshin/triage/internal/triage"

// Case is one recorded run.
type Case struct {
	Name     string   // Case name (from filename)
	Suite    string   // Suite name (parent directory)
	Path     string   // Full path to the case file
	Input    string   // Raw console output
	Expected Snapshot // Expected analysis
}

// Snapshot is the comparable digest of an analysis.
type Snapshot struct {
	Records        int               `json:"records"`
	Classes        []ClassSnapshot   `json:"classes"`
	CommonPatterns []PatternSnapshot `json:"common_patterns"`
	UniqueMessages int               `json:"unique_messages"`
}

// ClassSnapshot is one class of a Snapshot, in presentation order.
type ClassSnapshot struct {
	Name     string `json:"name"`
	Errors   int    `json:"errors"`
	Failures int    `json:"failures"`
	Total    int    `json:"total"`
	Tier     string `json:"tier"`
}

// PatternSnapshot is one recurring message.
type PatternSnapshot struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// TakeSnapshot digests a, keeping the common patterns among the topPatterns
// most frequent messages.
func TakeSnapshot(a *triage.Analysis, topPatterns int) Snapshot {
	s := Snapshot{Records: a.Records()}
	for _, c := range a.Sorted() {
		s.Classes = append(s.Classes, ClassSnapshot{
			Name:     c.Name,
			Errors:   c.ErrorCount(),
			Failures: c.FailureCount(),
			Total:    c.TotalCount(),
			Tier:     c.Tier().String(),
		})
	}

	freqs := a.MessageFrequencies()
	for _, p := range triage.CommonPatterns(freqs, topPatterns) {
		s.CommonPatterns = append(s.CommonPatterns, PatternSnapshot{Message: p.Message, Count: p.Count})
	}
	s.UniqueMessages = len(triage.UniqueMessages(freqs))
	return s
}
