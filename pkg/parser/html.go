package parser

import (
	"bytes"
	"regexp"

	"github.com/yaklabco/gomdkit/pkg/mdast"
)

const (
	htmlTagName       = `[A-Za-z][A-Za-z0-9-]*`
	htmlAttributeName = `[a-zA-Z_:][a-zA-Z0-9_.:-]*`
	htmlAttrValue     = `(?:[^"'=<>` + "`" + `\x00-\x20]+|'[^']*'|"[^"]*")`
	htmlAttribute     = `(?:\s+` + htmlAttributeName + `(?:\s*=\s*` + htmlAttrValue + `)?)`
	htmlOpenTag       = `<` + htmlTagName + htmlAttribute + `*\s*/?>`
	htmlCloseTag      = `</` + htmlTagName + `\s*>`
)

// htmlBlockKind pairs the start condition of one of the seven HTML block
// kinds with its end condition. A nil closer means the block ends at a
// blank line.
type htmlBlockKind struct {
	opener *regexp.Regexp
	closer *regexp.Regexp
}

var htmlBlockKinds = []htmlBlockKind{
	{
		opener: regexp.MustCompile(`(?i)^<(?:script|pre|style|textarea)(?:\s|>|$)`),
		closer: regexp.MustCompile(`(?i)</(?:script|pre|style|textarea)>`),
	},
	{
		opener: regexp.MustCompile(`^<!--`),
		closer: regexp.MustCompile(`-->`),
	},
	{
		opener: regexp.MustCompile(`^<[?]`),
		closer: regexp.MustCompile(`\?>`),
	},
	{
		opener: regexp.MustCompile(`^<![A-Za-z]`),
		closer: regexp.MustCompile(`>`),
	},
	{
		opener: regexp.MustCompile(`^<!\[CDATA\[`),
		closer: regexp.MustCompile(`\]\]>`),
	},
	{
		opener: regexp.MustCompile(`(?i)^</?(?:address|article|aside|base|basefont|blockquote|body|caption|center|` +
			`col|colgroup|dd|details|dialog|dir|div|dl|dt|fieldset|figcaption|figure|footer|form|frame|frameset|` +
			`h1|h2|h3|h4|h5|h6|head|header|hr|html|iframe|legend|li|link|main|menu|menuitem|nav|noframes|ol|` +
			`optgroup|option|p|param|search|section|summary|table|tbody|td|tfoot|th|thead|title|tr|track|ul)` +
			`(?:\s|/?>|$)`),
	},
	{
		opener: regexp.MustCompile(`^(?:` + htmlOpenTag + `|` + htmlCloseTag + `)\s*$`),
	},
}

// htmlBlockInterruptible is the number of kinds allowed to interrupt a
// paragraph; the last kind (any complete tag) is not.
const htmlBlockInterruptible = 6

type htmlBlockParser struct {
	BlockBase
	node     *mdast.Node
	closer   *regexp.Regexp
	finished bool
	body     bytes.Buffer
}

func (b *htmlBlockParser) Node() *mdast.Node { return b.node }

func (b *htmlBlockParser) TryContinue(s State) (Continue, bool) {
	if b.finished {
		return Continue{}, false
	}
	if s.IsBlank() && b.closer == nil {
		return Continue{}, false
	}
	return ContinueAtIndex(s.Index()), true
}

func (b *htmlBlockParser) AddLine(line []byte) {
	b.body.Write(line)
	b.body.WriteByte('\n')

	if b.closer != nil && b.closer.Match(line) {
		b.finished = true
	}
}

func (b *htmlBlockParser) Close() {
	b.node.Block.Literal = bytes.TrimRight(b.body.Bytes(), "\n")
	b.node.Block.Literal = append(b.node.Block.Literal, '\n')
}

func startHTMLBlock(s State) (Start, bool) {
	line, nns := s.Line(), s.NextNonSpace()
	if s.Indent() >= codeIndent || nns >= len(line) || line[nns] != '<' {
		return Start{}, false
	}

	rest := line[nns:]
	inParagraph := s.ParagraphContent() != nil
	for i, kind := range htmlBlockKinds {
		if inParagraph && i >= htmlBlockInterruptible {
			break
		}
		if kind.opener.Match(rest) {
			block := &htmlBlockParser{node: mdast.NewNode(mdast.NodeHTMLBlock), closer: kind.closer}
			return StartOf(block).AtIndex(s.Index()), true
		}
	}
	return Start{}, false
}
