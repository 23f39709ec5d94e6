package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// referenceTime formats timestamp layouts during validation.
var referenceTime = time.Date(2025, time.December, 31, 23, 59, 58, 0, time.UTC)

// Validate checks semantic constraints the schema cannot express.
func Validate(cfg *Config) error {
	if err := validateInput(cfg); err != nil {
		return err
	}
	if err := validateOutput(cfg); err != nil {
		return err
	}
	return validateReport(cfg)
}

func validateInput(cfg *Config) error {
	if cfg.Input.Pattern == "" {
		return &ValidationError{Field: "input.pattern", Message: "must not be empty"}
	}
	if _, err := filepath.Match(cfg.Input.Pattern, ""); err != nil {
		return &ValidationError{
			Field:   "input.pattern",
			Message: fmt.Sprintf("invalid glob pattern %q", cfg.Input.Pattern),
		}
	}
	if strings.ContainsRune(cfg.Input.Pattern, '/') || strings.ContainsRune(cfg.Input.Pattern, filepath.Separator) {
		return &ValidationError{
			Field:   "input.pattern",
			Message: "must be a file name pattern; use input.directory for the location",
		}
	}
	return nil
}

func validateOutput(cfg *Config) error {
	stamp := referenceTime.Format(cfg.Output.TimestampFormat)
	if stamp == cfg.Output.TimestampFormat {
		return &ValidationError{
			Field:   "output.timestamp_format",
			Message: "layout contains no time fields; use a Go reference layout such as " + DefaultTimestampFormat,
		}
	}
	if strings.ContainsAny(stamp, `/\:`) {
		return &ValidationError{
			Field:   "output.timestamp_format",
			Message: fmt.Sprintf("layout produces %q, which is not safe in a file name", stamp),
		}
	}
	return nil
}

// validateReport repeats the schema bounds for values that flags can set.
func validateReport(cfg *Config) error {
	if cfg.Report.TopClasses != nil && *cfg.Report.TopClasses < 0 {
		return &ValidationError{Field: "report.top_classes", Message: "must not be negative"}
	}
	return nil
}
