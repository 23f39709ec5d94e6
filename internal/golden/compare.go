package golden

import (
	"fmt"
	"strings"
)

// Compare reports whether actual matches expected. On mismatch the second
// result lists every difference, one per line, each prefixed with its path.
func Compare(expected, actual Snapshot) (bool, string) {
	var diffs []string
	diff := func(path string, want, got interface{}) {
		diffs = append(diffs, fmt.Sprintf("%s: expected %v, got %v", path, want, got))
	}

	if expected.Records != actual.Records {
		diff("records", expected.Records, actual.Records)
	}
	if expected.UniqueMessages != actual.UniqueMessages {
		diff("unique_messages", expected.UniqueMessages, actual.UniqueMessages)
	}

	if len(expected.Classes) != len(actual.Classes) {
		diff("classes: length", len(expected.Classes), len(actual.Classes))
	}
	for i := 0; i < min(len(expected.Classes), len(actual.Classes)); i++ {
		want, got := expected.Classes[i], actual.Classes[i]
		path := fmt.Sprintf("classes[%d]", i)
		if want.Name != got.Name {
			diff(path+".name", want.Name, got.Name)
			continue
		}
		if want.Errors != got.Errors {
			diff(path+".errors", want.Errors, got.Errors)
		}
		if want.Failures != got.Failures {
			diff(path+".failures", want.Failures, got.Failures)
		}
		if want.Total != got.Total {
			diff(path+".total", want.Total, got.Total)
		}
		if want.Tier != got.Tier {
			diff(path+".tier", want.Tier, got.Tier)
		}
	}

	if len(expected.CommonPatterns) != len(actual.CommonPatterns) {
		diff("common_patterns: length", len(expected.CommonPatterns), len(actual.CommonPatterns))
	}
	for i := 0; i < min(len(expected.CommonPatterns), len(actual.CommonPatterns)); i++ {
		want, got := expected.CommonPatterns[i], actual.CommonPatterns[i]
		path := fmt.Sprintf("common_patterns[%d]", i)
		if want.Message != got.Message {
			diff(path+".message", fmt.Sprintf("%q", want.Message), fmt.Sprintf("%q", got.Message))
		}
		if want.Count != got.Count {
			diff(path+".count", want.Count, got.Count)
		}
	}

	return len(diffs) == 0, strings.Join(diffs, "\n")
}
