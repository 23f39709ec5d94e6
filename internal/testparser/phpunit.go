package testparser

import (
	"regexp"
	"strings"

	"github.com/AndreyAkinshin/triage/internal/logging"
)

// entryHeaderRegex matches the first line of a numbered PHPUnit entry:
//
//	1) Tests\Unit\UserTest::testCreate
//
// The class must contain at least one namespace separator and the method
// must be a bare identifier. Trailing horizontal whitespace is tolerated.
var entryHeaderRegex = regexp.MustCompile(`(?m)^[ \t]*\d+[.)][ \t]+([^\s:\\]+(?:\\[^\s:\\]+)+)::(\w+)[ \t]*\r?$`)

// PHPUnitParser parses the errors and failures sections of PHPUnit output.
type PHPUnitParser struct{}

// Name returns the parser name.
func (p *PHPUnitParser) Name() string {
	return "phpunit"
}

// Parse extracts outcomes from PHPUnit console output.
// PHPUnit reports problems like:
//
//	There were 2 errors:
//
//	1) Tests\Unit\UserTest::testCreate
//	Error: Call to undefined method App\User::make()
//
//	/app/tests/Unit/UserTest.php:15
//
//	2) Tests\Unit\OrderTest::testTotal
//	TypeError: Argument #1 must be of type int
//
//	There was 1 failure:
//
//	1) Tests\Feature\LoginTest::testRedirect
//	Failed asserting that 500 is identical to 302.
//
//	FAILURES!
//	Tests: 120, Assertions: 340, Errors: 2, Failures: 1.
//
// Errors are returned before failures, each in source order.
func (p *PHPUnitParser) Parse(output string) []Outcome {
	sections := ExtractSections(output)

	var outcomes []Outcome
	for _, region := range []Region{sections.Errors, sections.Failures} {
		parsed := ParseRegion(region)
		logging.Debug("parsed section",
			"kind", region.Kind.String(),
			"found", region.Found,
			"start", region.Start,
			"end", region.End,
			"entries", len(parsed),
		)
		outcomes = append(outcomes, parsed...)
	}
	return outcomes
}

// ParseRegion extracts the entries of a single region, in source order.
// Entries without a message line directly below the header are skipped.
func ParseRegion(region Region) []Outcome {
	if !region.Found || region.Text == "" {
		return nil
	}

	text := region.Text
	headers := entryHeaderRegex.FindAllStringSubmatchIndex(text, -1)

	var outcomes []Outcome
	for i, h := range headers {
		// Entry body runs until the next header or the end of the region.
		bodyEnd := len(text)
		if i+1 < len(headers) {
			bodyEnd = headers[i+1][0]
		}

		message, details, ok := splitEntryBody(text, h[1], bodyEnd)
		if !ok {
			continue
		}

		outcomes = append(outcomes, Outcome{
			Kind:    region.Kind,
			Class:   text[h[2]:h[3]],
			Method:  text[h[4]:h[5]],
			Message: message,
			Details: details,
		})
	}

	return outcomes
}

// splitEntryBody reads the line right after a header ending at headerEnd and
// returns it as the message, with everything up to bodyEnd as details.
// ok is false when there is no non-blank message line inside the body.
func splitEntryBody(text string, headerEnd, bodyEnd int) (message, details string, ok bool) {
	if headerEnd >= bodyEnd || text[headerEnd] != '\n' {
		return "", "", false
	}

	lineStart := headerEnd + 1
	if lineStart >= bodyEnd {
		return "", "", false
	}

	lineEnd := bodyEnd
	if idx := strings.IndexByte(text[lineStart:bodyEnd], '\n'); idx != -1 {
		lineEnd = lineStart + idx
	}

	message = strings.TrimSpace(text[lineStart:lineEnd])
	if message == "" {
		return "", "", false
	}

	return message, strings.TrimSpace(text[lineEnd:bodyEnd]), true
}
