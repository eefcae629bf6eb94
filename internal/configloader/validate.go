package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomdkit/pkg/config"
	"github.com/yaklabco/gomdkit/pkg/ext"
	"github.com/yaklabco/gomdkit/pkg/ext/headingid"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// ValidationError is one invalid configuration value.
type ValidationError struct {
	// Field is the path of the field, e.g. "html.unsafe".
	Field string

	// Value is the offending value.
	Value any

	// Message describes the problem.
	Message string

	// FilePath is the config file the value came from, when known.
	FilePath string
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

// ValidationResult collects every finding of one validation.
type ValidationResult struct {
	// Errors prevent the configuration from being used.
	Errors []ValidationError

	// Warnings are reported but not fatal.
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err joins all errors, or returns nil when the configuration is valid.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}
	return errors.Join(errs...)
}

// AllMessages returns every error and warning message.
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

func (r *ValidationResult) addError(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

//nolint:gochecknoglobals // read-only lookup table
var knownColorModes = map[string]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

//nolint:gochecknoglobals // read-only lookup table
var knownReports = map[string]bool{
	config.ReportText: true,
	config.ReportJSON: true,
	config.ReportNone: true,
}

// Validate checks cfg and collects all problems.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" {
		if _, err := markdown.ParseFormat(string(cfg.Format)); err != nil {
			result.addError("format", cfg.Format, "invalid format %q; must be one of: html, text", cfg.Format)
		}
	}

	if _, err := headingid.ParseStyle(cfg.HeadingID.Style); err != nil {
		result.addError("heading_id.style", cfg.HeadingID.Style,
			"invalid heading id style %q; must be one of: github, slug", cfg.HeadingID.Style)
	}

	validateExtensions(cfg, result)

	if cfg.Jobs < 0 {
		result.addError("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}
	if cfg.Text.Indent < 0 {
		result.addError("text.indent", cfg.Text.Indent, "indent must be >= 0")
	}
	if cfg.Text.WrapWidth < 0 {
		result.addError("text.wrap_width", cfg.Text.WrapWidth, "wrap_width must be >= 0 (0 means off)")
	}
	if cfg.Color != "" && !knownColorModes[cfg.Color] {
		result.addError("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}
	if cfg.Report != "" && !knownReports[cfg.Report] {
		result.addError("report", cfg.Report, "invalid report format %q; must be one of: text, json, none", cfg.Report)
	}

	for i, pattern := range cfg.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			result.addError(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}

func validateExtensions(cfg *config.Config, result *ValidationResult) {
	registry := ext.NewRegistry(ext.Settings{})

	seen := make(map[string]bool, len(cfg.Extensions))
	for i, name := range cfg.Extensions {
		field := fmt.Sprintf("extensions[%d]", i)

		found, ok := registry.Get(name)
		if !ok {
			result.addError(field, name, "unknown extension %q; available: %s",
				name, strings.Join(registry.Names(), ", "))
			continue
		}
		if seen[found.Name()] {
			result.addWarning(field, name, "extension %q is listed more than once", found.Name())
		}
		seen[found.Name()] = true
	}
}

// ValidateWithFile validates cfg and attributes findings to filePath.
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
