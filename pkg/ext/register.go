// Package ext collects the built-in extensions so they can be selected by
// name from configuration and the command line.
package ext

import (
	"github.com/yaklabco/gomdkit/pkg/ext/frontmatter"
	"github.com/yaklabco/gomdkit/pkg/ext/headingid"
	"github.com/yaklabco/gomdkit/pkg/ext/strikethrough"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// Settings configures extensions that take options.
type Settings struct {
	HeadingIDStyle headingid.Style
}

// RegisterAll registers every built-in extension with registry.
func RegisterAll(registry *markdown.Registry, settings Settings) {
	registry.Register(strikethrough.New())
	registry.Register(headingid.New(headingid.WithStyle(settings.HeadingIDStyle)))
	registry.Register(frontmatter.New())

	registry.RegisterAlias("strike", strikethrough.Name)
	registry.RegisterAlias("heading-ids", headingid.Name)
	registry.RegisterAlias("front-matter", frontmatter.Name)
}

// NewRegistry returns a registry holding the built-in extensions.
func NewRegistry(settings Settings) *markdown.Registry {
	registry := markdown.NewRegistry()
	RegisterAll(registry, settings)
	return registry
}

// Names returns the canonical names of the built-in extensions, sorted.
func Names() []string {
	return NewRegistry(Settings{HeadingIDStyle: headingid.StyleGitHub}).Names()
}

// Description returns a one-line description of a built-in extension.
func Description(name string) string {
	switch name {
	case strikethrough.Name:
		return "~~text~~ renders as deleted text"
	case headingid.Name:
		return "id attributes on headings, GitHub style or slug"
	case frontmatter.Name:
		return "YAML (---) or TOML (+++) metadata block at the top of a document"
	default:
		return ""
	}
}
