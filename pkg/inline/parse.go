package inline

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// inlineParser holds the state for resolving a single leaf block.
type inlineParser struct {
	proc  *Processor
	src   []byte
	pos   int
	block *mdast.Node
	refs  *linkref.Table

	lastDelimiter *delimiter
	lastBracket   *bracket
}

func (ip *inlineParser) parse() {
	for ip.pos < len(ip.src) {
		if node := ip.parseInline(); node != nil {
			mdast.AppendChild(ip.block, node)
		}
	}
	ip.processDelimiters(nil)
	mergeText(ip.block)
}

func (ip *inlineParser) peek() byte {
	if ip.pos < len(ip.src) {
		return ip.src[ip.pos]
	}
	return 0
}

// parseInline consumes one construct and returns its node, or nil when the
// construct produced nothing to append (trimmed whitespace).
func (ip *inlineParser) parseInline() *mdast.Node {
	c := ip.src[ip.pos]

	var node *mdast.Node
	switch c {
	case '\n':
		node = ip.parseLineBreak()
	case '\\':
		node = ip.parseBackslash()
	case '`':
		node = ip.parseBackticks()
	case '[':
		node = ip.parseOpenBracket()
	case '!':
		node = ip.parseBang()
	case ']':
		node = ip.parseCloseBracket()
	case '<':
		node = ip.parseAngle()
	case '&':
		node = ip.parseEntity()
	default:
		if dp, ok := ip.proc.delimiters[c]; ok {
			node = ip.parseDelimiters(dp)
		} else {
			return ip.parseText()
		}
	}

	if node == nil {
		// Not a construct after all; the character is literal.
		ip.pos++
		node = text(ip.src[ip.pos-1 : ip.pos])
	}
	return node
}

func text(b []byte) *mdast.Node {
	return mdast.NewText(append([]byte(nil), b...))
}

// parseText consumes plain text up to the next special character. Spaces
// before a line ending, and spaces or tabs at the end of the content, are
// dropped.
func (ip *inlineParser) parseText() *mdast.Node {
	start := ip.pos
	ip.pos++
	for ip.pos < len(ip.src) && !ip.proc.specials.TestByte(ip.src[ip.pos]) {
		ip.pos++
	}

	content := ip.src[start:ip.pos]
	switch {
	case ip.pos == len(ip.src):
		content = bytes.TrimRight(content, " \t")
	case ip.src[ip.pos] == '\n':
		content = bytes.TrimRight(content, " ")
	}
	if len(content) == 0 {
		return nil
	}
	return text(content)
}

func (ip *inlineParser) parseLineBreak() *mdast.Node {
	spaces := 0
	for i := ip.pos - 1; i >= 0 && ip.src[i] == ' '; i-- {
		spaces++
	}
	ip.pos++
	ip.skipLeadingSpaces()

	if spaces >= 2 {
		return mdast.NewNode(mdast.NodeHardBreak)
	}
	return mdast.NewNode(mdast.NodeSoftBreak)
}

func (ip *inlineParser) skipLeadingSpaces() {
	for ip.pos < len(ip.src) && ip.src[ip.pos] == ' ' {
		ip.pos++
	}
}

func (ip *inlineParser) parseBackslash() *mdast.Node {
	ip.pos++
	switch next := ip.peek(); {
	case next == '\n':
		ip.pos++
		ip.skipLeadingSpaces()
		return mdast.NewNode(mdast.NodeHardBreak)
	case ip.pos < len(ip.src) && linkref.IsEscapable(next):
		ip.pos++
		return text([]byte{next})
	default:
		return text([]byte{'\\'})
	}
}

func (ip *inlineParser) parseBackticks() *mdast.Node {
	start := ip.pos
	run := ip.backtickRun(start)
	after := start + run

	for i := after; i < len(ip.src); {
		if ip.src[i] != '`' {
			i++
			continue
		}
		n := ip.backtickRun(i)
		if n == run {
			ip.pos = i + n
			code := mdast.NewNode(mdast.NodeCodeSpan)
			code.Inline.Text = codeSpanContent(ip.src[after:i])
			return code
		}
		i += n
	}

	// No matching closer: the whole opening run is literal.
	ip.pos = after
	return text(ip.src[start:after])
}

func (ip *inlineParser) backtickRun(i int) int {
	n := 0
	for i+n < len(ip.src) && ip.src[i+n] == '`' {
		n++
	}
	return n
}

// codeSpanContent converts line endings to spaces and strips one space from
// each side when both sides have one and the content is not all spaces.
func codeSpanContent(raw []byte) []byte {
	content := bytes.ReplaceAll(raw, []byte{'\n'}, []byte{' '})
	if len(content) >= 2 && content[0] == ' ' && content[len(content)-1] == ' ' &&
		len(bytes.Trim(content, " ")) > 0 {
		content = content[1 : len(content)-1]
	}
	return content
}

func (ip *inlineParser) parseEntity() *mdast.Node {
	decoded, end, ok := linkref.DecodeEntity(ip.src, ip.pos)
	if !ok {
		return nil
	}
	ip.pos = end
	return text([]byte(decoded))
}

func (ip *inlineParser) parseAngle() *mdast.Node {
	rest := ip.src[ip.pos:]
	if m := autolinkURI.Find(rest); m != nil {
		ip.pos += len(m)
		dest := string(m[1 : len(m)-1])
		return autolink(dest, dest)
	}
	if m := autolinkEmail.Find(rest); m != nil {
		ip.pos += len(m)
		addr := string(m[1 : len(m)-1])
		return autolink("mailto:"+addr, addr)
	}
	if m := inlineHTML.Find(rest); m != nil {
		ip.pos += len(m)
		node := mdast.NewNode(mdast.NodeHTMLInline)
		node.Inline.Text = append([]byte(nil), m...)
		return node
	}
	return nil
}

func autolink(dest, label string) *mdast.Node {
	link := mdast.NewNode(mdast.NodeLink)
	link.Inline.Link = &mdast.LinkAttrs{Destination: dest, ReferenceStyle: mdast.RefStyleAutolink}
	mdast.AppendChild(link, text([]byte(label)))
	return link
}

// parseDelimiters scans a delimiter run and pushes it on the stack. Runs
// shorter than the processor's minimum are left to parseInline as text.
func (ip *inlineParser) parseDelimiters(dp DelimiterProcessor) *mdast.Node {
	start := ip.pos
	c := ip.src[start]
	end := start
	for end < len(ip.src) && ip.src[end] == c {
		end++
	}
	length := end - start
	if length < dp.MinLength() {
		return nil
	}

	before := '\n'
	if start > 0 {
		before, _ = utf8.DecodeLastRune(ip.src[:start])
	}
	after := '\n'
	if end < len(ip.src) {
		after, _ = utf8.DecodeRune(ip.src[end:])
	}

	beforeSpace, beforePunct := isUnicodeSpace(before), isPunctuation(before)
	afterSpace, afterPunct := isUnicodeSpace(after), isPunctuation(after)

	leftFlanking := !afterSpace && (!afterPunct || beforeSpace || beforePunct)
	rightFlanking := !beforeSpace && (!beforePunct || afterSpace || afterPunct)

	canOpen, canClose := leftFlanking, rightFlanking
	if c == '_' {
		canOpen = leftFlanking && (!rightFlanking || beforePunct)
		canClose = rightFlanking && (!leftFlanking || afterPunct)
	}

	ip.pos = end
	node := text(ip.src[start:end])
	ip.pushDelimiter(&delimiter{
		node:       node,
		char:       c,
		length:     length,
		origLength: length,
		canOpen:    canOpen,
		canClose:   canClose,
	})
	return node
}

func isUnicodeSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isPunctuation(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// mergeText joins adjacent Text children of n, recursively, and drops
// empty ones left behind by consumed delimiters.
func mergeText(n *mdast.Node) {
	for child := n.FirstChild; child != nil; {
		next := child.Next
		if child.Kind != mdast.NodeText {
			mergeText(child)
			child = next
			continue
		}
		for next != nil && next.Kind == mdast.NodeText {
			child.Inline.Text = append(child.Inline.Text, next.Inline.Text...)
			after := next.Next
			mdast.Unlink(next)
			next = after
		}
		if len(child.Inline.Text) == 0 {
			mdast.Unlink(child)
		}
		child = next
	}
}
