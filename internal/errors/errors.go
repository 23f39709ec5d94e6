// Package errors provides structured error types and exit codes for triage.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (I/O failure, artifact write failed, etc.)
	ExitConfigError  = 2 // Configuration error (invalid config file, bad flags, etc.)
	ExitNoInput      = 3 // No test output file found
	ExitEmptyResult  = 4 // Test output contained no errors or failures
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindNoInput
	KindEmptyResult
)

// TriageError is the base error type for triage.
type TriageError struct {
	Kind    ErrorKind
	Message string
	Path    string // Input file or directory if applicable
	Cause   error  // Underlying error
}

func (e *TriageError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *TriageError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *TriageError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindNoInput:
		return ExitNoInput
	case KindEmptyResult:
		return ExitEmptyResult
	default:
		return ExitRuntimeError
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *TriageError {
	return &TriageError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, message string) *TriageError {
	return &TriageError{
		Kind:    KindConfig,
		Message: message,
		Cause:   err,
	}
}

// WrapValidation wraps a failed semantic check of the configuration.
func WrapValidation(err error, message string) *TriageError {
	return &TriageError{
		Kind:    KindValidation,
		Message: message,
		Cause:   err,
	}
}

// NoInput reports that no file matching pattern exists in dir.
func NoInput(dir, pattern string) *TriageError {
	return &TriageError{
		Kind:    KindNoInput,
		Message: fmt.Sprintf("no file matching %s found", pattern),
		Path:    dir,
	}
}

// EmptyResult reports that path was read but yielded no errors or failures.
func EmptyResult(path string) *TriageError {
	return &TriageError{
		Kind:    KindEmptyResult,
		Message: "no errors or failures detected",
		Path:    path,
	}
}

// Is reports whether err is a TriageError of the given kind.
func Is(err error, kind ErrorKind) bool {
	var te *TriageError
	if stderrors.As(err, &te) {
		return te.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var te *TriageError
	if stderrors.As(err, &te) {
		return te.ExitCode()
	}
	return ExitRuntimeError
}
