package config

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/primebench/internal/benchmark/strategy"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the benchmark configuration.
//
// Returns nil if valid, or a ValidationErrors containing all validation
// errors.
func (c *BenchConfig) Validate() error {
	errs := &ValidationErrors{}

	if c.Bound < 0 {
		errs.Add("bound", "bound must be >= 0")
	}
	if c.Repetitions < 0 {
		errs.Add("repetitions", "repetitions must be >= 0")
	}
	if c.Warmup < 0 {
		errs.Add("warmup", "warmup must be >= 0")
	}
	if c.Workers < 0 {
		errs.Add("workers", "workers must be >= 0")
	}
	if c.MaxInFlight < 0 {
		errs.Add("maxInFlight", "maxInFlight must be >= 0")
	}

	for _, name := range c.Strategies {
		if !strategy.IsValidType(name) {
			errs.Add("strategies", fmt.Sprintf("unknown strategy type: %s", name))
		}
	}

	if _, err := ParseDurationString(c.Timeout); err != nil {
		errs.Add("timeout", err.Error())
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
