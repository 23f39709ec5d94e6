package triage

import "github.com/AndreyAkinshin/triage/internal/testparser"

// Aggregator groups outcomes into per-class summaries.
// A summary is created the first time its class name is seen.
type Aggregator struct {
	classes map[string]*ClassSummary
	records int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		classes: make(map[string]*ClassSummary),
	}
}

// getOrCreate returns the summary for name, inserting a new one if needed.
// created reports whether the summary was inserted by this call.
func (a *Aggregator) getOrCreate(name string) (summary *ClassSummary, created bool) {
	if s, ok := a.classes[name]; ok {
		return s, false
	}
	s := newClassSummary(name)
	a.classes[name] = s
	return s, true
}

// Add attributes o to its class. Outcomes of an unknown kind are ignored.
func (a *Aggregator) Add(o testparser.Outcome) {
	if o.Kind != testparser.KindError && o.Kind != testparser.KindFailure {
		return
	}
	s, _ := a.getOrCreate(o.Class)
	s.add(o)
	a.records++
}

// AddAll adds every outcome in order.
func (a *Aggregator) AddAll(outcomes []testparser.Outcome) {
	for _, o := range outcomes {
		a.Add(o)
	}
}

// Len returns the number of distinct classes seen so far.
func (a *Aggregator) Len() int {
	return len(a.classes)
}

// Records returns the number of outcomes accepted so far.
func (a *Aggregator) Records() int {
	return a.records
}

// Analysis returns a snapshot of the aggregated data. Later calls to Add
// do not affect the returned Analysis.
func (a *Aggregator) Analysis() *Analysis {
	classes := make(map[string]*ClassSummary, len(a.classes))
	for name, s := range a.classes {
		classes[name] = &ClassSummary{
			Name:     s.Name,
			errors:   s.Errors(),
			failures: s.Failures(),
		}
	}
	return newAnalysis(classes)
}
