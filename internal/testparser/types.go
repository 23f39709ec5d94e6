// Package testparser extracts error and failure entries from test runner console output.
package testparser

// Kind distinguishes the two sections a test problem can be reported in.
type Kind int

const (
	// KindError is a test whose code raised unexpectedly.
	KindError Kind = iota
	// KindFailure is a test whose assertion did not hold.
	KindFailure
)

// String returns the upper-case label used in reports ("ERROR", "FAILURE").
func (k Kind) String() string {
	switch k {
	case KindError:
		return "ERROR"
	case KindFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// Outcome holds a single reported error or failure.
type Outcome struct {
	Kind    Kind
	Class   string // Fully-qualified class name (e.g., "Tests\Unit\UserTest")
	Method  string // Test method name
	Message string // First line of the diagnostic, trimmed
	Details string // Continuation lines after the message (stack frames, diffs)
}

// Parser defines the interface for test output parsers.
type Parser interface {
	// Parse extracts every well-formed error and failure entry from output.
	// Malformed entries are skipped; Parse never fails.
	Parse(output string) []Outcome
	// Name returns the name of the parser.
	Name() string
}
