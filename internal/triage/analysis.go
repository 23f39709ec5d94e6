package triage

import (
	"sort"

	"github.com/AndreyAkinshin/triage/internal/logging"
	"github.com/AndreyAkinshin/triage/internal/testparser"
)

// Analysis is the read-only result of one run: the per-class summaries and
// everything derived from them.
type Analysis struct {
	classes map[string]*ClassSummary
	sorted  []*ClassSummary
}

func newAnalysis(classes map[string]*ClassSummary) *Analysis {
	sorted := make([]*ClassSummary, 0, len(classes))
	for _, s := range classes {
		sorted = append(sorted, s)
	}
	// Map order is random; the name tie-break keeps output deterministic.
	sort.Slice(sorted, func(i, j int) bool {
		ti, tj := sorted[i].TotalCount(), sorted[j].TotalCount()
		if ti != tj {
			return ti > tj
		}
		return sorted[i].Name < sorted[j].Name
	})
	return &Analysis{classes: classes, sorted: sorted}
}

// Analyze runs the full pipeline over output: section extraction and entry
// parsing through p, then aggregation.
func Analyze(output string, p testparser.Parser) *Analysis {
	outcomes := p.Parse(output)

	agg := NewAggregator()
	agg.AddAll(outcomes)

	logging.Debug("parsed test output",
		"parser", p.Name(),
		"bytes", len(output),
		"records", agg.Records(),
		"classes", agg.Len(),
	)

	return agg.Analysis()
}

// Len returns the number of classes with at least one problem.
func (a *Analysis) Len() int {
	return len(a.classes)
}

// Empty reports whether no record was extracted.
func (a *Analysis) Empty() bool {
	return len(a.classes) == 0
}

// Records returns the total number of records across all classes.
func (a *Analysis) Records() int {
	n := 0
	for _, s := range a.classes {
		n += s.TotalCount()
	}
	return n
}

// Class returns the summary for a fully-qualified class name.
func (a *Analysis) Class(name string) (*ClassSummary, bool) {
	s, ok := a.classes[name]
	return s, ok
}

// Sorted returns the summaries in presentation order: total count descending,
// then class name ascending.
func (a *Analysis) Sorted() []*ClassSummary {
	return append([]*ClassSummary(nil), a.sorted...)
}

// Stats returns the run-wide statistics.
func (a *Analysis) Stats() Statistics {
	return ComputeStatistics(a.sorted)
}

// MessageFrequencies returns the frequency table of all messages, scanned in
// presentation order.
func (a *Analysis) MessageFrequencies() []PatternCount {
	return MessageFrequencies(a.sorted)
}

// CommonPatterns returns the recurring messages among the n most frequent.
func (a *Analysis) CommonPatterns(n int) []PatternCount {
	return CommonPatterns(a.MessageFrequencies(), n)
}
