// Package triage provides public constants for external tools integrating
// with the triage CLI.
package triage

// Exit codes returned by the triage CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates both artifacts were produced.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (unreadable input, artifact write failed, etc.).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config file, bad flag value, etc.).
	ExitConfigError = 2

	// ExitNoInput indicates that no test output file was found.
	ExitNoInput = 3

	// ExitEmptyResult indicates that the test output held no errors or failures.
	ExitEmptyResult = 4
)
