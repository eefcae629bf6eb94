package config

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdkit/pkg/ext"
	"github.com/yaklabco/gomdkit/pkg/ext/headingid"
	"github.com/yaklabco/gomdkit/pkg/markdown"
	"github.com/yaklabco/gomdkit/pkg/render/html"
	"github.com/yaklabco/gomdkit/pkg/render/text"
)

// HTMLOptions converts the HTML settings, filling unset fields with the
// renderer defaults.
func (c *Config) HTMLOptions() html.Options {
	opts := html.DefaultOptions()
	if c.HTML.SoftBreak != "" {
		opts.SoftBreak = c.HTML.SoftBreak
	}
	opts.Unsafe = boolValue(c.HTML.Unsafe, opts.Unsafe)
	opts.XHTML = boolValue(c.HTML.XHTML, opts.XHTML)
	opts.DetectLanguage = boolValue(c.HTML.DetectLanguage, opts.DetectLanguage)
	return opts
}

// TextOptions converts the text settings.
func (c *Config) TextOptions() text.Options {
	indent := c.Text.Indent
	if indent <= 0 {
		indent = DefaultIndentWidth
	}
	return text.Options{
		Indent:    strings.Repeat(" ", indent),
		WrapWidth: c.Text.WrapWidth,
	}
}

// Registry returns the built-in extensions configured from c.
func (c *Config) Registry() (*markdown.Registry, error) {
	style, err := headingid.ParseStyle(c.HeadingID.Style)
	if err != nil {
		return nil, fmt.Errorf("heading_id.style: %w", err)
	}
	return ext.NewRegistry(ext.Settings{HeadingIDStyle: style}), nil
}

// EngineOptions converts c into engine options. Unknown extension names
// are an error.
func (c *Config) EngineOptions() ([]markdown.Option, error) {
	registry, err := c.Registry()
	if err != nil {
		return nil, err
	}
	exts, err := registry.Resolve(c.Extensions)
	if err != nil {
		return nil, fmt.Errorf("extensions: %w", err)
	}

	return []markdown.Option{
		markdown.WithExtensions(exts...),
		markdown.WithHTMLOptions(c.HTMLOptions()),
		markdown.WithTextOptions(c.TextOptions()),
	}, nil
}
