// Package triage aggregates parsed test outcomes per class, classifies
// classes by severity and analyzes recurring failure messages.
package triage

import (
	"strings"

	"github.com/AndreyAkinshin/triage/internal/testparser"
)

// ClassSummary collects every error and failure attributed to one test class.
//
// Counts are derived from the record slices, so TotalCount always equals
// ErrorCount + FailureCount.
type ClassSummary struct {
	Name string // Fully-qualified class name

	errors   []testparser.Outcome
	failures []testparser.Outcome
}

func newClassSummary(name string) *ClassSummary {
	return &ClassSummary{Name: name}
}

// add appends o to the list matching its kind.
func (s *ClassSummary) add(o testparser.Outcome) {
	switch o.Kind {
	case testparser.KindError:
		s.errors = append(s.errors, o)
	case testparser.KindFailure:
		s.failures = append(s.failures, o)
	}
}

// Errors returns a copy of the class's errors in source order.
func (s *ClassSummary) Errors() []testparser.Outcome {
	return append([]testparser.Outcome(nil), s.errors...)
}

// Failures returns a copy of the class's failures in source order.
func (s *ClassSummary) Failures() []testparser.Outcome {
	return append([]testparser.Outcome(nil), s.failures...)
}

// ErrorCount returns the number of errors.
func (s *ClassSummary) ErrorCount() int {
	return len(s.errors)
}

// FailureCount returns the number of failures.
func (s *ClassSummary) FailureCount() int {
	return len(s.failures)
}

// TotalCount returns errors plus failures.
func (s *ClassSummary) TotalCount() int {
	return len(s.errors) + len(s.failures)
}

// Tier returns the class's priority tier.
func (s *ClassSummary) Tier() Tier {
	return Classify(s.TotalCount())
}

// ShortName returns the last namespace segment of the class name
// ("Tests\Unit\UserTest" -> "UserTest").
func (s *ClassSummary) ShortName() string {
	if idx := strings.LastIndex(s.Name, `\`); idx != -1 {
		return s.Name[idx+1:]
	}
	return s.Name
}
