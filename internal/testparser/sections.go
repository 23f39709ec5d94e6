package testparser

import "regexp"

// Static regexes for locating PHPUnit report sections.
// Compiled once at package init for performance.
var (
	errorsMarkerRegex   = regexp.MustCompile(`(?i)There (?:was|were) \d+ errors?:`)
	failuresMarkerRegex = regexp.MustCompile(`(?i)There (?:was|were) \d+ failures?:`)
	// The run summary closes whichever section is still open.
	terminalMarkerRegex = regexp.MustCompile(`(?im)FAILURES!|ERRORS!|^[ \t]*Tests: \d+`)
)

// Region is the span of output dedicated to one kind of problem.
// Start and End are byte offsets into the original output; Text is output[Start:End].
type Region struct {
	Kind  Kind
	Found bool // false when the section marker is absent
	Start int
	End   int
	Text  string
}

// Sections holds the errors and failures regions of one test run.
type Sections struct {
	Errors   Region
	Failures Region
}

// ExtractSections locates the errors and failures regions in output.
//
// A region starts right after its marker line ("There were 3 errors:") and ends
// at the first of: the run summary ("FAILURES!", "Tests: N, ..."), the other
// section's marker, or end of text. A missing marker yields an empty region.
// The two regions never overlap.
func ExtractSections(output string) Sections {
	errLoc := errorsMarkerRegex.FindStringIndex(output)
	failLoc := failuresMarkerRegex.FindStringIndex(output)

	return Sections{
		Errors:   buildRegion(output, KindError, errLoc, failLoc),
		Failures: buildRegion(output, KindFailure, failLoc, errLoc),
	}
}

// buildRegion cuts the region opened by marker, stopping early at the other
// section's marker when it appears after this one.
func buildRegion(output string, kind Kind, marker, other []int) Region {
	if marker == nil {
		return Region{Kind: kind}
	}

	start := marker[1]
	end := len(output)
	if m := terminalMarkerRegex.FindStringIndex(output[start:]); m != nil {
		end = start + m[0]
	}
	if other != nil && other[0] >= start && other[0] < end {
		end = other[0]
	}

	return Region{
		Kind:  kind,
		Found: true,
		Start: start,
		End:   end,
		Text:  output[start:end],
	}
}
