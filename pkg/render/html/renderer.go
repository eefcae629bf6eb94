// Package html renders a document tree to HTML.
//
// Output for the built-in node kinds follows the CommonMark reference
// renderer. Extensions contribute NodeRenderers through Factory; a
// factory's renderer takes precedence over the core one for any kind both
// declare, because factories are registered first.
package html

import (
	"io"

	"github.com/yaklabco/gomdkit/pkg/mdast"
	"github.com/yaklabco/gomdkit/pkg/render"
)

// Context is shared by the node renderers of one render pass.
type Context struct {
	w        *Writer
	opts     Options
	dispatch *render.Map
}

// Writer returns the output writer.
func (c *Context) Writer() *Writer { return c.w }

// Options returns the render options.
func (c *Context) Options() Options { return c.opts }

// Render renders n through the dispatch map.
func (c *Context) Render(n *mdast.Node) { c.dispatch.Render(n) }

// RenderChildren renders the children of n through the dispatch map.
func (c *Context) RenderChildren(n *mdast.Node) { c.dispatch.RenderChildren(n) }

// URL prepares a link or image destination for an attribute value:
// dangerous schemes are dropped unless Unsafe is set, and the rest is
// percent-encoded.
func (c *Context) URL(dest string) string {
	if !c.opts.Unsafe && isDangerousURL(dest) {
		return ""
	}
	return EncodeURL(dest)
}

// Factory creates a renderer bound to the context of one render pass.
type Factory func(ctx *Context) render.NodeRenderer

// Renderer renders documents to HTML. It is immutable and safe for
// concurrent use; every call to Render builds fresh node renderers.
type Renderer struct {
	opts      Options
	factories []Factory
}

// New creates a Renderer. Factories are consulted in order, before the
// core renderer.
func New(opts Options, factories ...Factory) *Renderer {
	return &Renderer{
		opts:      opts,
		factories: append([]Factory(nil), factories...),
	}
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options { return r.opts }

// Render writes the HTML for doc to w.
func (r *Renderer) Render(w io.Writer, doc *mdast.Node) error {
	ctx := &Context{
		w:        newWriter(w, r.opts.XHTML),
		opts:     r.opts,
		dispatch: &render.Map{},
	}
	for _, factory := range r.factories {
		ctx.dispatch.Add(factory(ctx))
	}
	ctx.dispatch.Add(newCoreRenderer(ctx))

	ctx.dispatch.Document(doc)
	return ctx.w.Flush()
}
