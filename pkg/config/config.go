// Package config defines the gomdkit configuration: the output format, the
// enabled extensions and the renderer settings. These are plain data types;
// loading and merging live in internal/configloader.
package config

import (
	"github.com/yaklabco/gomdkit/pkg/ext/headingid"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// DefaultIndentWidth is the text renderer's indentation unit in columns.
const DefaultIndentWidth = 3

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Report formats for batch run summaries.
const (
	ReportText = "text"
	ReportJSON = "json"
	ReportNone = "none"
)

// HTMLConfig holds HTML renderer settings. Pointer fields distinguish
// "unset" from false when configs are merged.
type HTMLConfig struct {
	// SoftBreak is written for soft line breaks. Empty means "\n".
	SoftBreak string `yaml:"soft_break,omitempty"`

	// Unsafe keeps raw HTML and script-capable URLs.
	Unsafe *bool `yaml:"unsafe,omitempty"`

	// XHTML self-closes void elements.
	XHTML *bool `yaml:"xhtml,omitempty"`

	// DetectLanguage labels unlabeled fenced code with a guessed language.
	DetectLanguage *bool `yaml:"detect_language,omitempty"`
}

// TextConfig holds plain-text renderer settings.
type TextConfig struct {
	// Indent is the indentation unit in columns. Zero means DefaultIndentWidth.
	Indent int `yaml:"indent,omitempty"`

	// WrapWidth reflows paragraphs. Zero disables wrapping.
	WrapWidth int `yaml:"wrap_width,omitempty"`
}

// HeadingIDConfig configures the heading-id extension.
type HeadingIDConfig struct {
	// Style is "github" or "slug".
	Style string `yaml:"style,omitempty"`
}

// Config is the root configuration.
type Config struct {
	// Format is the output format, "html" or "text".
	Format markdown.Format `yaml:"format"`

	// Extensions lists extension names to enable.
	Extensions []string `yaml:"extensions"`

	HTML      HTMLConfig      `yaml:"html"`
	Text      TextConfig      `yaml:"text"`
	HeadingID HeadingIDConfig `yaml:"heading_id"`

	// Ignore holds glob patterns of files the batch runner skips.
	Ignore []string `yaml:"ignore,omitempty"`

	// CLI-level options (not persisted to config files).

	// Jobs is the number of parallel workers; 0 means one per CPU.
	Jobs int `yaml:"-"`

	// OutDir receives rendered files. Empty means stdout.
	OutDir string `yaml:"-"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"-"`

	// Report selects the batch summary format.
	Report string `yaml:"-"`
}

// NewConfig returns a Config with the defaults.
func NewConfig() *Config {
	return &Config{
		Format:     markdown.FormatHTML,
		Extensions: []string{},
		HTML: HTMLConfig{
			SoftBreak:      "\n",
			Unsafe:         boolPtr(true),
			XHTML:          boolPtr(true),
			DetectLanguage: boolPtr(false),
		},
		Text: TextConfig{
			Indent: DefaultIndentWidth,
		},
		HeadingID: HeadingIDConfig{
			Style: string(headingid.StyleGitHub),
		},
		Color:  ColorAuto,
		Report: ReportText,
	}
}

// HasExtension reports whether name is in the extension list.
func (c *Config) HasExtension(name string) bool {
	for _, n := range c.Extensions {
		if n == name {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool { return &b }

func boolValue(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}
