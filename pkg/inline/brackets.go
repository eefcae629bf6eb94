package inline

import (
	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// bracket is an entry in the bracket stack, created for every '[' or '!['.
type bracket struct {
	node  *mdast.Node // the Text node holding "[" or "!["
	index int         // position just after the opening bracket
	image bool

	prev          *bracket
	prevDelimiter *delimiter

	// active is cleared on link openers enclosing a resolved link.
	active bool
	// bracketAfter records a later '[' so the content cannot be a label.
	bracketAfter bool
}

func (ip *inlineParser) pushBracket(node *mdast.Node, index int, image bool) {
	if ip.lastBracket != nil {
		ip.lastBracket.bracketAfter = true
	}
	ip.lastBracket = &bracket{
		node:          node,
		index:         index,
		image:         image,
		prev:          ip.lastBracket,
		prevDelimiter: ip.lastDelimiter,
		active:        true,
	}
}

func (ip *inlineParser) popBracket() {
	ip.lastBracket = ip.lastBracket.prev
}

func (ip *inlineParser) parseOpenBracket() *mdast.Node {
	ip.pos++
	node := text([]byte("["))
	ip.pushBracket(node, ip.pos, false)
	return node
}

func (ip *inlineParser) parseBang() *mdast.Node {
	if ip.pos+1 >= len(ip.src) || ip.src[ip.pos+1] != '[' {
		return nil
	}
	ip.pos += 2
	node := text([]byte("!["))
	ip.pushBracket(node, ip.pos, true)
	return node
}

// parseCloseBracket tries, in order, an inline link, a full reference, a
// collapsed reference and a shortcut reference for the nearest opener.
func (ip *inlineParser) parseCloseBracket() *mdast.Node {
	ip.pos++
	afterClose := ip.pos

	opener := ip.lastBracket
	if opener == nil {
		return text([]byte("]"))
	}
	if !opener.active {
		ip.popBracket()
		return text([]byte("]"))
	}

	attrs, ok := ip.inlineLinkTail()
	if !ok {
		ip.pos = afterClose
		attrs, ok = ip.referenceLinkTail(opener, afterClose)
	}
	if !ok {
		ip.pos = afterClose
		ip.popBracket()
		return text([]byte("]"))
	}

	kind := mdast.NodeLink
	if opener.image {
		kind = mdast.NodeImage
	}
	link := mdast.NewNode(kind)
	link.Inline.Link = attrs

	for node := opener.node.Next; node != nil; {
		next := node.Next
		mdast.AppendChild(link, node)
		node = next
	}

	ip.processDelimiters(opener.prevDelimiter)
	mergeText(link)
	mdast.Unlink(opener.node)
	ip.popBracket()

	// No links inside links: every enclosing link opener is now dead.
	if !opener.image {
		for b := ip.lastBracket; b != nil; b = b.prev {
			if !b.image {
				b.active = false
			}
		}
	}
	return link
}

// inlineLinkTail parses `(destination "title")` directly after ']'.
func (ip *inlineParser) inlineLinkTail() (*mdast.LinkAttrs, bool) {
	if ip.peek() != '(' {
		return nil, false
	}
	ip.pos++
	ip.skipSpaceAndNewline()

	var dest string
	if ip.peek() != ')' {
		d, end, ok := linkref.ScanDestination(ip.src, ip.pos)
		if !ok {
			return nil, false
		}
		dest = d
		ip.pos = end
	}

	beforeSpace := ip.pos
	ip.skipSpaceAndNewline()

	var title string
	if ip.pos > beforeSpace {
		// A title must be separated from the destination by whitespace.
		if t, end, ok := linkref.ScanTitle(ip.src, ip.pos); ok {
			title = t
			ip.pos = end
			ip.skipSpaceAndNewline()
		}
	}

	if ip.peek() != ')' {
		return nil, false
	}
	ip.pos++
	return &mdast.LinkAttrs{Destination: dest, Title: title, ReferenceStyle: mdast.RefStyleInline}, true
}

// referenceLinkTail resolves `[label]`, `[]` or nothing after ']' against
// the definition table.
func (ip *inlineParser) referenceLinkTail(opener *bracket, afterClose int) (*mdast.LinkAttrs, bool) {
	label, end, hasLabel := linkref.ScanLabel(ip.src, ip.pos)

	var style mdast.ReferenceStyle
	switch {
	case hasLabel && label != "":
		style = mdast.RefStyleFull
		ip.pos = end
	case opener.bracketAfter:
		// The bracketed text contains another bracket, so it cannot
		// double as a label.
		return nil, false
	case hasLabel:
		style = mdast.RefStyleCollapsed
		label = string(ip.src[opener.index : afterClose-1])
		ip.pos = end
	default:
		style = mdast.RefStyleShortcut
		label = string(ip.src[opener.index : afterClose-1])
	}

	if len(label) > linkref.MaxLabelLength {
		return nil, false
	}
	def, ok := ip.refs.Lookup(label)
	if !ok {
		return nil, false
	}
	return &mdast.LinkAttrs{
		Destination:    def.Destination,
		Title:          def.Title,
		ReferenceLabel: label,
		ReferenceStyle: style,
	}, true
}

// skipSpaceAndNewline skips spaces and tabs with at most one line ending.
func (ip *inlineParser) skipSpaceAndNewline() {
	seenNewline := false
	for ip.pos < len(ip.src) {
		switch ip.src[ip.pos] {
		case ' ', '\t':
		case '\n':
			if seenNewline {
				return
			}
			seenNewline = true
		default:
			return
		}
		ip.pos++
	}
}
