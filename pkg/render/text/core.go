package text

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gomdkit/pkg/mdast"
	"github.com/yaklabco/gomdkit/pkg/render"
)

type coreRenderer struct {
	render.Hooks
	ctx *Context
	w   *Writer

	lists *listHolder
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
	case mdast.NodeDocument, mdast.NodeEmphasis, mdast.NodeStrong:
		r.ctx.RenderChildren(n)
	case mdast.NodeParagraph:
		r.paragraph(n)
	case mdast.NodeHeading:
		r.ctx.RenderChildren(n)
		r.ctx.EndBlock(n)
	case mdast.NodeList:
		r.list(n)
	case mdast.NodeListItem:
		r.listItem(n)
	case mdast.NodeBlockquote:
		r.blockquote(n)
	case mdast.NodeCodeBlock:
		r.codeBlock(n)
	case mdast.NodeThematicBreak:
		r.w.Write("***")
		r.ctx.EndBlock(n)
	case mdast.NodeHTMLBlock:
		r.w.Write(strings.TrimRight(string(n.Block.Literal), "\n"))
		r.ctx.EndBlock(n)
	case mdast.NodeText, mdast.NodeCodeSpan, mdast.NodeHTMLInline:
		r.w.Write(string(n.Inline.Text))
	case mdast.NodeLink, mdast.NodeImage:
		r.link(n)
	case mdast.NodeSoftBreak:
		if r.ctx.reflowing {
			r.w.Write(" ")
		} else {
			r.w.Write("\n")
		}
	case mdast.NodeHardBreak:
		r.w.Write("\n")
	}
}

func (r *coreRenderer) paragraph(n *mdast.Node) {
	width := r.ctx.Options().WrapWidth
	if width <= 0 {
		r.ctx.RenderChildren(n)
		r.ctx.EndBlock(n)
		return
	}

	r.ctx.reflowing = true
	content := r.w.Capture(func() { r.ctx.RenderChildren(n) })
	r.ctx.reflowing = false

	available := width - utf8.RuneCountInString(r.w.Prefix())
	r.w.Write(wrap(content, available))
	r.ctx.EndBlock(n)
}

// wrap reflows each line of s to at most width runes. Words longer than
// width get a line of their own.
func wrap(s string, width int) string {
	var out strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			out.WriteByte('\n')
		}
		col := 0
		for _, word := range strings.Fields(line) {
			n := utf8.RuneCountInString(word)
			switch {
			case col == 0:
			case col+1+n > width:
				out.WriteByte('\n')
				col = 0
			default:
				out.WriteByte(' ')
				col++
			}
			out.WriteString(word)
			col += n
		}
	}
	return out.String()
}

func (r *coreRenderer) list(n *mdast.Node) {
	r.lists = newListHolder(r.lists, n.Block.List, r.ctx.Options().Indent, r.w.Prefix())
	r.ctx.RenderChildren(n)
	r.lists = r.lists.parent
	r.ctx.EndBlock(n)
}

func (r *coreRenderer) listItem(n *mdast.Node) {
	holder := r.lists
	if holder == nil {
		// An item outside a list; render it as a one-item bullet list.
		holder = newListHolder(nil, nil, r.ctx.Options().Indent, r.w.Prefix())
	}

	marker := holder.nextMarker() + " "
	r.w.EnsureNewline()
	if r.w.HasLinePrefix() {
		// First block of an enclosing item is this list: share its line.
		r.w.ExtendLinePrefix(marker)
	} else {
		r.w.SetLinePrefix(holder.base + holder.indent + marker)
	}

	r.w.PushPrefix(holder.base + holder.indent + r.ctx.Options().Indent)
	if n.FirstChild == nil {
		r.w.Newline()
	} else {
		r.ctx.RenderChildren(n)
	}
	r.w.PopPrefix()
	r.ctx.EndBlock(n)
}

func (r *coreRenderer) blockquote(n *mdast.Node) {
	// Lists inside the quote start a fresh chain at the quote's prefix.
	saved := r.lists
	r.lists = nil

	r.w.EnsureNewline()
	if r.w.HasLinePrefix() {
		r.w.ExtendLinePrefix("> ")
	}
	r.w.PushPrefix(r.w.Prefix() + "> ")
	r.ctx.RenderChildren(n)
	r.w.PopPrefix()

	r.lists = saved
	r.ctx.EndBlock(n)
}

func (r *coreRenderer) codeBlock(n *mdast.Node) {
	indent := r.ctx.Options().Indent
	body := strings.TrimSuffix(string(n.Block.Literal), "\n")
	if body == "" {
		r.ctx.EndBlock(n)
		return
	}
	for _, line := range strings.Split(body, "\n") {
		if line != "" {
			r.w.Write(indent + line)
		}
		r.w.Newline()
	}
	r.ctx.EndBlock(n)
}

func (r *coreRenderer) link(n *mdast.Node) {
	r.ctx.RenderChildren(n)

	link := n.Inline.Link
	if link == nil || link.Destination == "" {
		return
	}
	if link.ReferenceStyle == mdast.RefStyleAutolink || link.Destination == mdast.TextContent(n) {
		return
	}
	r.w.Write(" (" + link.Destination + ")")
}
