// Package strikethrough adds GitHub-style ~~deleted~~ text.
//
// One or two tildes open and close a span; opener and closer must be the
// same length. Longer runs stay literal.
package strikethrough

import (
	"strings"

	"github.com/yaklabco/gomdkit/pkg/inline"
	"github.com/yaklabco/gomdkit/pkg/markdown"
	"github.com/yaklabco/gomdkit/pkg/mdast"
	"github.com/yaklabco/gomdkit/pkg/render"
	"github.com/yaklabco/gomdkit/pkg/render/html"
	"github.com/yaklabco/gomdkit/pkg/render/text"
)

// Name is the extension name.
const Name = "strikethrough"

// Kind is the node kind of a strikethrough span.
var Kind = mdast.RegisterKind("Strikethrough", false)

// Extension implements markdown.Extension.
type Extension struct{}

// New returns the strikethrough extension.
func New() *Extension { return &Extension{} }

// Name returns "strikethrough".
func (*Extension) Name() string { return Name }

// Extend registers the '~' delimiter and both renderers.
func (*Extension) Extend(b *markdown.Builder) {
	b.DelimiterProcessor(Processor{}).
		HTMLRenderer(newHTMLRenderer).
		TextRenderer(newTextRenderer)
}

// Processor is the delimiter processor for '~'.
type Processor struct{}

// Char returns '~'.
func (Processor) Char() byte { return '~' }

// MinLength returns 1.
func (Processor) MinLength() int { return 1 }

// Delimiters matches runs of equal length up to two.
func (Processor) Delimiters(opener, closer inline.DelimiterRun) int {
	if opener.Length() == closer.Length() && opener.Length() <= 2 {
		return opener.Length()
	}
	return 0
}

// Wrap returns an empty strikethrough node.
func (Processor) Wrap(used int) *mdast.Node {
	n := mdast.NewNode(Kind)
	n.Inline.Delimiter = strings.Repeat("~", used)
	return n
}

type htmlRenderer struct {
	render.Hooks
	ctx *html.Context
}

func newHTMLRenderer(ctx *html.Context) render.NodeRenderer {
	return &htmlRenderer{ctx: ctx}
}

func (r *htmlRenderer) Kinds() []mdast.NodeKind { return []mdast.NodeKind{Kind} }

func (r *htmlRenderer) Render(n *mdast.Node) {
	w := r.ctx.Writer()
	w.Tag("del")
	r.ctx.RenderChildren(n)
	w.Tag("/del")
}

type textRenderer struct {
	render.Hooks
	ctx *text.Context
}

func newTextRenderer(ctx *text.Context) render.NodeRenderer {
	return &textRenderer{ctx: ctx}
}

func (r *textRenderer) Kinds() []mdast.NodeKind { return []mdast.NodeKind{Kind} }

func (r *textRenderer) Render(n *mdast.Node) {
	r.ctx.RenderChildren(n)
}
