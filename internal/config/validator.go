package config

import (
	"fmt"
	"slices"
	"strings"

	"chorus/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tags.max_rows")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// validLogLevels lowercases the logger's level names for comparison with
// config values, which are conventionally lowercase.
func validLogLevels() []string {
	levels := logging.ValidLevels()
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = strings.ToLower(l)
	}
	return out
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.Tags.MaxRows < 1 {
		errors = append(errors, ValidationError{
			Field:   "tags.max_rows",
			Value:   c.Tags.MaxRows,
			Message: "must be at least 1",
		})
	}
	if c.Tags.DebounceMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "tags.debounce_ms",
			Value:   c.Tags.DebounceMs,
			Message: "must not be negative",
		})
	}

	if c.Playback.TickRateMs < 1 {
		errors = append(errors, ValidationError{
			Field:   "playback.tick_rate_ms",
			Value:   c.Playback.TickRateMs,
			Message: "must be at least 1",
		})
	}
	if c.Playback.SeekStep <= 0 || c.Playback.SeekStep > 1 {
		errors = append(errors, ValidationError{
			Field:   "playback.seek_step",
			Value:   c.Playback.SeekStep,
			Message: "must be in (0, 1]",
		})
	}

	if level := strings.ToLower(c.Logging.Level); !slices.Contains(validLogLevels(), level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels(), ", ")),
		})
	}

	if len(c.Library.Extensions) == 0 {
		errors = append(errors, ValidationError{
			Field:   "library.extensions",
			Value:   c.Library.Extensions,
			Message: "must list at least one media extension",
		})
	}

	return errors
}
