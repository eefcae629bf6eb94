package html

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdkit/pkg/langdetect"
	"github.com/yaklabco/gomdkit/pkg/mdast"
	"github.com/yaklabco/gomdkit/pkg/render"
)

// coreRenderer renders every built-in node kind.
type coreRenderer struct {
	render.Hooks
	ctx *Context
	w   *Writer
}

func newCoreRenderer(ctx *Context) render.NodeRenderer {
	return &coreRenderer{ctx: ctx, w: ctx.Writer()}
}

func (r *coreRenderer) Kinds() []mdast.NodeKind {
	return []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeParagraph,
		mdast.NodeHeading,
		mdast.NodeList,
		mdast.NodeListItem,
		mdast.NodeBlockquote,
		mdast.NodeCodeBlock,
		mdast.NodeThematicBreak,
		mdast.NodeHTMLBlock,
		mdast.NodeText,
		mdast.NodeEmphasis,
		mdast.NodeStrong,
		mdast.NodeCodeSpan,
		mdast.NodeLink,
		mdast.NodeImage,
		mdast.NodeSoftBreak,
		mdast.NodeHardBreak,
		mdast.NodeHTMLInline,
	}
}

func (r *coreRenderer) Render(n *mdast.Node) {
	switch n.Kind {
	case mdast.NodeDocument:
		r.ctx.RenderChildren(n)
	case mdast.NodeParagraph:
		r.paragraph(n)
	case mdast.NodeHeading:
		r.heading(n)
	case mdast.NodeList:
		r.list(n)
	case mdast.NodeListItem:
		r.w.Tag("li")
		r.ctx.RenderChildren(n)
		r.w.Tag("/li")
		r.w.Line()
	case mdast.NodeBlockquote:
		r.w.Line()
		r.w.Tag("blockquote")
		r.w.Line()
		r.ctx.RenderChildren(n)
		r.w.Line()
		r.w.Tag("/blockquote")
		r.w.Line()
	case mdast.NodeCodeBlock:
		r.codeBlock(n)
	case mdast.NodeThematicBreak:
		r.w.Line()
		r.w.VoidTag("hr")
		r.w.Line()
	case mdast.NodeHTMLBlock:
		r.w.Line()
		r.rawHTML(n.Block.Literal)
		r.w.Line()
	case mdast.NodeText:
		r.w.Text(n.Inline.Text)
	case mdast.NodeEmphasis:
		r.wrapInline("em", n)
	case mdast.NodeStrong:
		r.wrapInline("strong", n)
	case mdast.NodeCodeSpan:
		r.w.Tag("code")
		r.w.Text(n.Inline.Text)
		r.w.Tag("/code")
	case mdast.NodeLink:
		r.link(n)
	case mdast.NodeImage:
		r.image(n)
	case mdast.NodeSoftBreak:
		r.w.Raw(r.ctx.Options().SoftBreak)
	case mdast.NodeHardBreak:
		r.w.VoidTag("br")
		r.w.Line()
	case mdast.NodeHTMLInline:
		r.rawHTML(n.Inline.Text)
	}
}

func (r *coreRenderer) wrapInline(tag string, n *mdast.Node) {
	r.w.Tag(tag)
	r.ctx.RenderChildren(n)
	r.w.Tag("/" + tag)
}

func (r *coreRenderer) rawHTML(literal []byte) {
	if r.ctx.Options().Unsafe {
		r.w.Raw(string(literal))
		return
	}
	r.w.Raw(rawHTMLOmitted)
}

func (r *coreRenderer) paragraph(n *mdast.Node) {
	if inTightList(n) {
		r.ctx.RenderChildren(n)
		return
	}
	r.w.Line()
	r.w.Tag("p")
	r.ctx.RenderChildren(n)
	r.w.Tag("/p")
	r.w.Line()
}

// inTightList reports whether paragraph n sits directly in an item of a
// tight list, where paragraphs render without <p>.
func inTightList(n *mdast.Node) bool {
	item := n.Parent
	if item == nil || item.Kind != mdast.NodeListItem {
		return false
	}
	list := item.Parent
	return list != nil && list.Kind == mdast.NodeList && list.Block.List != nil && list.Block.List.Tight
}

func (r *coreRenderer) heading(n *mdast.Node) {
	tag := "h" + strconv.Itoa(n.Block.HeadingLevel)

	var attrs []Attr
	if id, ok := n.ExtString("id"); ok && id != "" {
		attrs = append(attrs, Attr{Key: "id", Value: id})
	}

	r.w.Line()
	r.w.Tag(tag, attrs...)
	r.ctx.RenderChildren(n)
	r.w.Tag("/" + tag)
	r.w.Line()
}

func (r *coreRenderer) list(n *mdast.Node) {
	tag := "ul"
	var attrs []Attr
	if list := n.Block.List; list != nil && list.Ordered {
		tag = "ol"
		if list.StartNumber != 1 {
			attrs = append(attrs, Attr{Key: "start", Value: strconv.Itoa(list.StartNumber)})
		}
	}

	r.w.Line()
	r.w.Tag(tag, attrs...)
	r.w.Line()
	r.ctx.RenderChildren(n)
	r.w.Line()
	r.w.Tag("/" + tag)
	r.w.Line()
}

func (r *coreRenderer) codeBlock(n *mdast.Node) {
	var attrs []Attr
	if class := codeClass(n, r.ctx.Options().DetectLanguage); class != "" {
		attrs = append(attrs, Attr{Key: "class", Value: class})
	}

	r.w.Line()
	r.w.Tag("pre")
	r.w.Tag("code", attrs...)
	r.w.Text(n.Block.Literal)
	r.w.Tag("/code")
	r.w.Tag("/pre")
	r.w.Line()
}

func codeClass(n *mdast.Node, detect bool) string {
	cb := n.Block.CodeBlock
	if cb != nil {
		if lang := cb.Language(); lang != "" {
			return "language-" + lang
		}
	}
	// Indented code is never guessed.
	if detect && cb != nil && !cb.Indented {
		return langdetect.ClassName(n.Block.Literal)
	}
	return ""
}

func (r *coreRenderer) link(n *mdast.Node) {
	link := n.Inline.Link
	attrs := []Attr{{Key: "href", Value: r.ctx.URL(link.Destination)}}
	if link.Title != "" {
		attrs = append(attrs, Attr{Key: "title", Value: link.Title})
	}
	r.w.Tag("a", attrs...)
	r.ctx.RenderChildren(n)
	r.w.Tag("/a")
}

func (r *coreRenderer) image(n *mdast.Node) {
	link := n.Inline.Link
	attrs := []Attr{
		{Key: "src", Value: r.ctx.URL(link.Destination)},
		{Key: "alt", Value: altText(n)},
	}
	if link.Title != "" {
		attrs = append(attrs, Attr{Key: "title", Value: link.Title})
	}
	r.w.VoidTag("img", attrs...)
}

// altText flattens the image description to plain text.
func altText(n *mdast.Node) string {
	var sb strings.Builder
	mdast.Walk(n, func(c *mdast.Node, entering bool) mdast.WalkStatus {
		if !entering {
			return mdast.WalkContinue
		}
		switch c.Kind {
		case mdast.NodeText, mdast.NodeCodeSpan:
			sb.Write(c.Inline.Text)
		case mdast.NodeSoftBreak, mdast.NodeHardBreak:
			sb.WriteByte('\n')
		}
		return mdast.WalkContinue
	})
	return sb.String()
}
