package parser

import (
	"bytes"

	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

type documentBlock struct {
	BlockBase
	node *mdast.Node
}

func (b *documentBlock) Node() *mdast.Node           { return b.node }
func (b *documentBlock) IsContainer() bool           { return true }
func (b *documentBlock) CanContain(*mdast.Node) bool { return true }

func (b *documentBlock) TryContinue(s State) (Continue, bool) {
	return ContinueAtIndex(s.Index()), true
}

// paragraphParser collects paragraph lines. Leading link reference
// definitions are stripped into the document's table when it closes.
type paragraphParser struct {
	BlockBase
	node  *mdast.Node
	doc   *documentParser
	lines [][]byte
}

func newParagraph(doc *documentParser) *paragraphParser {
	return &paragraphParser{node: mdast.NewNode(mdast.NodeParagraph), doc: doc}
}

func (b *paragraphParser) Node() *mdast.Node     { return b.node }
func (b *paragraphParser) CanLazyContinue() bool { return true }

func (b *paragraphParser) TryContinue(s State) (Continue, bool) {
	if s.IsBlank() {
		return Continue{}, false
	}
	return ContinueAtIndex(s.Index()), true
}

func (b *paragraphParser) AddLine(line []byte) {
	b.lines = append(b.lines, bytes.TrimLeft(line, " \t"))
}

func (b *paragraphParser) content() []byte {
	return bytes.Join(b.lines, []byte{'\n'})
}

func (b *paragraphParser) Close() {
	defs, rest := linkref.ParseDefinitions(b.content())
	b.doc.addDefinitions(defs, b.node.Pos.StartLine)

	rest = bytes.TrimRight(rest, " \t\n")
	if len(rest) == 0 {
		mdast.Unlink(b.node)
		return
	}
	b.node.Block.Raw = rest
}

type blockquoteParser struct {
	BlockBase
	node *mdast.Node
}

func (b *blockquoteParser) Node() *mdast.Node           { return b.node }
func (b *blockquoteParser) IsContainer() bool           { return true }
func (b *blockquoteParser) CanContain(*mdast.Node) bool { return true }

func (b *blockquoteParser) TryContinue(s State) (Continue, bool) {
	if column, ok := quoteMarker(s); ok {
		return ContinueAtColumn(column), true
	}
	return Continue{}, false
}

// quoteMarker checks for '>' and returns the column after it and an
// optional following space or tab.
func quoteMarker(s State) (int, bool) {
	line, nns := s.Line(), s.NextNonSpace()
	if s.Indent() >= codeIndent || nns >= len(line) || line[nns] != '>' {
		return 0, false
	}
	column := s.Column() + s.Indent() + 1
	if isSpaceOrTab(line, nns+1) {
		column++
	}
	return column, true
}

func startBlockquote(s State) (Start, bool) {
	column, ok := quoteMarker(s)
	if !ok {
		return Start{}, false
	}
	return StartOf(&blockquoteParser{node: mdast.NewNode(mdast.NodeBlockquote)}).AtColumn(column), true
}

// headingParser holds a single-line ATX heading or a setext heading built
// from the paragraph it replaces.
type headingParser struct {
	BlockBase
	node *mdast.Node
}

func newHeading(level int, setext bool, content []byte) *headingParser {
	node := mdast.NewNode(mdast.NodeHeading)
	node.Block.HeadingLevel = level
	node.Block.Setext = setext
	node.Block.Raw = content
	return &headingParser{node: node}
}

func (b *headingParser) Node() *mdast.Node { return b.node }

func (b *headingParser) TryContinue(State) (Continue, bool) {
	return Continue{}, false
}

func startATXHeading(s State) (Start, bool) {
	if s.Indent() >= codeIndent {
		return Start{}, false
	}

	line, i := s.Line(), s.NextNonSpace()
	level := 0
	for i+level < len(line) && line[i+level] == '#' {
		level++
	}
	if level == 0 || level > 6 || !isSpaceTabOrEnd(line, i+level) {
		return Start{}, false
	}

	content := bytes.Trim(line[i+level:], " \t")

	// Optional closing sequence: a run of '#' preceded by a space or tab,
	// or a line made only of '#'.
	end := len(content)
	for end > 0 && content[end-1] == '#' {
		end--
	}
	switch {
	case end == 0:
		content = nil
	case end < len(content) && (content[end-1] == ' ' || content[end-1] == '\t'):
		content = bytes.TrimRight(content[:end], " \t")
	}

	return StartOf(newHeading(level, false, content)).AtIndex(len(line)), true
}

func startSetextHeading(s State) (Start, bool) {
	if s.Indent() >= codeIndent {
		return Start{}, false
	}

	para := s.ParagraphContent()
	if para == nil {
		return Start{}, false
	}

	level := setextLevel(s.Line()[s.NextNonSpace():])
	if level == 0 {
		return Start{}, false
	}

	// Definitions at the start of the paragraph are not heading text.
	_, rest := linkref.ParseDefinitions(para)
	rest = bytes.TrimRight(rest, " \t\n")
	if len(rest) == 0 {
		return Start{}, false
	}

	heading := newHeading(level, true, rest)
	return StartOf(heading).AtIndex(len(s.Line())).ReplaceActive(), true
}

func setextLevel(rest []byte) int {
	if len(rest) == 0 || (rest[0] != '=' && rest[0] != '-') {
		return 0
	}
	marker := rest[0]
	i := 0
	for i < len(rest) && rest[i] == marker {
		i++
	}
	if !isBlankLine(rest[i:]) {
		return 0
	}
	if marker == '=' {
		return 1
	}
	return 2
}

type thematicBreakParser struct {
	BlockBase
	node *mdast.Node
}

func (b *thematicBreakParser) Node() *mdast.Node { return b.node }

func (b *thematicBreakParser) TryContinue(State) (Continue, bool) {
	return Continue{}, false
}

func startThematicBreak(s State) (Start, bool) {
	if s.Indent() >= codeIndent || !isThematicBreak(s.Line()[s.NextNonSpace():]) {
		return Start{}, false
	}
	brk := &thematicBreakParser{node: mdast.NewNode(mdast.NodeThematicBreak)}
	return StartOf(brk).AtIndex(len(s.Line())), true
}

// isThematicBreak reports whether rest is three or more of the same '*',
// '-' or '_', optionally separated by spaces or tabs.
func isThematicBreak(rest []byte) bool {
	if len(rest) == 0 {
		return false
	}
	marker := rest[0]
	if marker != '*' && marker != '-' && marker != '_' {
		return false
	}

	count := 0
	for _, c := range rest {
		switch c {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}
