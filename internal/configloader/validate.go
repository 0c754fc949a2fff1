package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/dailyreport/pkg/config"
)

// ErrSlidesOutputWithoutSlides is the cause of a ValidationError for a
// slides_output set while slides are disabled.
var ErrSlidesOutputWithoutSlides = errors.New("slides_output requires slides to be enabled")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "slides_output").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Err is the sentinel cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// Unwrap returns the sentinel cause.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.SlidesOutput != "" && !cfg.SlidesEnabled() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "slides_output",
			Value:   cfg.SlidesOutput,
			Message: ErrSlidesOutputWithoutSlides.Error(),
			Err:     ErrSlidesOutputWithoutSlides,
		})
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.LogLevel != "" && !config.IsValidLogLevel(cfg.LogLevel) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	validateOutputs(cfg, result)

	return result
}

// validateOutputs rejects two outputs sharing a file and warns about
// unexpected extensions.
func validateOutputs(cfg *config.Config, result *ValidationResult) {
	outputs := []struct {
		field string
		path  string
		exts  []string
	}{
		{"markdown_output", cfg.MarkdownOutput, []string{".md", ".markdown", ".txt"}},
		{"html_output", cfg.HTMLOutput, []string{".html", ".htm"}},
		{"slides_output", cfg.SlidesOutput, []string{".pptx"}},
	}

	seen := make(map[string]string, len(outputs))
	for _, out := range outputs {
		if out.path == "" {
			continue
		}

		clean := filepath.Clean(out.path)
		if other, ok := seen[clean]; ok {
			result.Errors = append(result.Errors, ValidationError{
				Field:   out.field,
				Value:   out.path,
				Message: fmt.Sprintf("same file as %s", other),
			})
			continue
		}
		seen[clean] = out.field

		ext := strings.ToLower(filepath.Ext(out.path))
		known := false
		for _, e := range out.exts {
			if ext == e {
				known = true
				break
			}
		}
		if !known {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   out.field,
				Value:   out.path,
				Message: fmt.Sprintf("unexpected extension %q; expected %s", ext, strings.Join(out.exts, ", ")),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
