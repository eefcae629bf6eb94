// Package headingid gives every heading an id attribute so it can be
// linked to with a fragment.
//
// The github style lower-cases the heading text, drops punctuation other
// than '-' and '_', and turns spaces into hyphens. The slug style uses
// go-slug normalization. Either way a repeated id gets a "-1", "-2", ...
// suffix.
package headingid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-slug"

	"github.com/yaklabco/gomdkit/pkg/markdown"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// Name is the extension name.
const Name = "heading-id"

// ExtKey is the mdast.Node.Ext key holding a heading's id.
const ExtKey = "id"

// Style selects how heading text becomes an id.
type Style string

// Id styles.
const (
	StyleGitHub Style = "github"
	StyleSlug   Style = "slug"
)

// ErrUnknownStyle is returned by ParseStyle.
var ErrUnknownStyle = errors.New("unknown heading id style")

// ParseStyle parses a style name. The empty string means StyleGitHub.
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case "", StyleGitHub:
		return StyleGitHub, nil
	case StyleSlug:
		return StyleSlug, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

// Extension implements markdown.Extension.
type Extension struct {
	style Style
}

// Option configures the extension.
type Option func(*Extension)

// WithStyle selects the id style. The empty style keeps the default.
func WithStyle(style Style) Option {
	return func(e *Extension) {
		if style != "" {
			e.style = style
		}
	}
}

// New returns the heading id extension, github style by default.
func New(opts ...Option) *Extension {
	e := &Extension{style: StyleGitHub}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name returns "heading-id".
func (*Extension) Name() string { return Name }

// Style returns the configured style.
func (e *Extension) Style() Style { return e.style }

// Extend registers the post-processor assigning ids.
func (e *Extension) Extend(b *markdown.Builder) {
	b.PostProcessor(markdown.PostProcessorFunc(e.assign))
}

func (e *Extension) assign(doc *markdown.Document) {
	gen := NewGenerator(e.style)
	for _, heading := range mdast.FindByKind(doc.Root, mdast.NodeHeading) {
		if id, ok := heading.ExtString(ExtKey); ok {
			gen.Reserve(id)
			continue
		}
		if id := gen.Generate(mdast.TextContent(heading)); id != "" {
			heading.SetExt(ExtKey, id)
		}
	}
}

// Generator produces unique ids for one document.
type Generator struct {
	style Style
	seen  map[string]int
	used  map[string]bool
}

// NewGenerator returns a Generator for the given style.
func NewGenerator(style Style) *Generator {
	return &Generator{
		style: style,
		seen:  make(map[string]int),
		used:  make(map[string]bool),
	}
}

// Reserve marks id as taken without generating it.
func (g *Generator) Reserve(id string) {
	g.used[id] = true
}

// Generate returns the id for a heading with the given text. Repeated
// bases get "-1", "-2" suffixes, skipping ids already taken. Text without
// any id characters yields "".
func (g *Generator) Generate(text string) string {
	base := g.base(text)
	if base == "" {
		return ""
	}

	for {
		count := g.seen[base]
		g.seen[base] = count + 1

		id := base
		if count > 0 {
			id = base + "-" + strconv.Itoa(count)
		}
		if !g.used[id] {
			g.used[id] = true
			return id
		}
	}
}

func (g *Generator) base(text string) string {
	if g.style == StyleSlug {
		if id, err := slug.Normalize(text); err == nil && id != "" {
			return id
		}
	}
	return GitHubBase(text)
}

// GitHubBase converts heading text to an id the way GitHub does: lower
// case, letters, digits, '-' and '_' kept, spaces to hyphens, other
// characters dropped, hyphen runs collapsed and trimmed.
func GitHubBase(text string) string {
	var buf strings.Builder
	buf.Grow(len(text))

	prevHyphen := false
	for _, ch := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsLetter(ch) || unicode.IsNumber(ch):
			buf.WriteRune(ch)
			prevHyphen = false
		case ch == '_':
			buf.WriteRune(ch)
			prevHyphen = false
		case ch == '-' || unicode.IsSpace(ch):
			if !prevHyphen && buf.Len() > 0 {
				buf.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(buf.String(), "-")
}
