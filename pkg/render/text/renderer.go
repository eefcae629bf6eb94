// Package text renders a document tree to plain text.
//
// Block structure survives as layout: blank lines between blocks, "> "
// before quoted lines, list markers with nested lists indented by a fixed
// unit, and code blocks indented by the same unit. Inline markup is
// dropped; link destinations follow the link text in parentheses.
package text

import (
	"io"

	"github.com/yaklabco/gomdkit/pkg/mdast"
	"github.com/yaklabco/gomdkit/pkg/render"
)

// DefaultIndent is the indentation unit for nested lists and code.
const DefaultIndent = "   "

// Options configures text output.
type Options struct {
	// Indent is the indentation unit. Empty means DefaultIndent.
	Indent string
	// WrapWidth reflows paragraphs to at most this many columns,
	// including prefixes. Zero disables wrapping.
	WrapWidth int
}

// DefaultOptions returns the default text options.
func DefaultOptions() Options {
	return Options{Indent: DefaultIndent}
}

// Context is shared by the node renderers of one render pass.
type Context struct {
	w        *Writer
	opts     Options
	dispatch *render.Map

	// reflowing is set while a paragraph is captured for wrapping.
	reflowing bool
}

// Writer returns the output writer.
func (c *Context) Writer() *Writer { return c.w }

// Options returns the render options.
func (c *Context) Options() Options { return c.opts }

// Render renders n through the dispatch map.
func (c *Context) Render(n *mdast.Node) { c.dispatch.Render(n) }

// RenderChildren renders the children of n through the dispatch map.
func (c *Context) RenderChildren(n *mdast.Node) { c.dispatch.RenderChildren(n) }

// EndBlock finishes block n: it ends the line and, unless n is part of a
// tight list, separates it from the next block with an empty line.
func (c *Context) EndBlock(n *mdast.Node) {
	c.w.EnsureNewline()
	if n.Next != nil && !inTightList(n) {
		c.w.BlankLine()
	}
}

func inTightList(n *mdast.Node) bool {
	item := n
	if n.Kind != mdast.NodeListItem {
		item = n.Parent
	}
	if item == nil || item.Kind != mdast.NodeListItem || item.Parent == nil {
		return false
	}
	list := item.Parent.Block.List
	return list != nil && list.Tight
}

// Factory creates a renderer bound to the context of one render pass.
type Factory func(ctx *Context) render.NodeRenderer

// Renderer renders documents to plain text. It is immutable and safe for
// concurrent use; list render state is allocated per call to Render.
type Renderer struct {
	opts      Options
	factories []Factory
}

// New creates a Renderer. Factories are consulted in order, before the
// core renderer.
func New(opts Options, factories ...Factory) *Renderer {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	return &Renderer{opts: opts, factories: append([]Factory(nil), factories...)}
}

// Render writes the text for doc to w.
func (r *Renderer) Render(w io.Writer, doc *mdast.Node) error {
	ctx := &Context{
		w:        newWriter(w),
		opts:     r.opts,
		dispatch: &render.Map{},
	}
	for _, factory := range r.factories {
		ctx.dispatch.Add(factory(ctx))
	}
	ctx.dispatch.Add(newCoreRenderer(ctx))

	ctx.dispatch.Document(doc)
	ctx.w.EnsureNewline()
	return ctx.w.Flush()
}
