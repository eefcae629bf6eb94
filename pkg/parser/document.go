package parser

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// codeIndent is the indentation that turns a line into indented code.
const codeIndent = 4

// documentParser is the per-parse state machine. It implements State.
type documentParser struct {
	starters []Starter
	src      []byte
	lines    []mdast.LineInfo

	line       []byte
	lineIdx    int
	lineNumber int

	index         int
	column        int
	columnIsInTab bool

	nextNonSpace       int
	nextNonSpaceColumn int
	indent             int
	blank              bool

	open    []BlockParser
	matched BlockParser
	refs    linkref.Builder
}

func newDocumentParser(starters []Starter, src []byte) *documentParser {
	return &documentParser{
		starters: starters,
		src:      src,
		lines:    mdast.BuildLines(src),
	}
}

func (p *documentParser) parse() (*mdast.Node, *linkref.Table) {
	root := &documentBlock{node: mdast.NewDocument()}
	root.node.Pos = mdast.SourcePosition{StartLine: 1, StartColumn: 1, EndLine: 1, EndColumn: 1}
	p.open = []BlockParser{root}

	for i, info := range p.lines {
		p.lineIdx = i
		p.parseLine(info.Content(p.src))
	}

	p.closeBlocks(len(p.open))
	return root.node, p.refs.Build()
}

func (p *documentParser) parseLine(raw []byte) {
	p.setLine(raw)

	// Continue the open blocks, root first. matches counts the blocks that
	// accepted the line; the document always does.
	matches := 1
	for _, block := range p.open[1:] {
		p.findNextNonSpace()

		cont, ok := block.TryContinue(p)
		if !ok {
			break
		}
		if cont.finished {
			p.extendEnd(block.Node())
			p.closeBlocks(len(p.open) - matches)
			return
		}
		p.applyPosition(cont.index, cont.column)
		matches++
	}

	unmatched := len(p.open) - matches
	blockParser := p.open[matches-1]
	startedNewBlock := false

	// Unless the last matched block is a leaf such as code, look for new
	// block starts inside it.
	tryStarts := blockParser.IsContainer() || isParagraph(blockParser)
	for tryStarts {
		p.findNextNonSpace()

		if p.blank || (p.indent < codeIndent && isLetter(p.line, p.nextNonSpace)) {
			p.setNewIndex(p.nextNonSpace)
			break
		}

		p.matched = blockParser
		start, ok := p.findBlockStart()
		if !ok {
			p.setNewIndex(p.nextNonSpace)
			break
		}

		startedNewBlock = true
		startColumn := p.nextNonSpace + 1

		if unmatched > 0 {
			p.closeBlocks(unmatched)
			unmatched = 0
		}

		p.applyPosition(start.index, start.column)

		startLine := p.lineNumber
		if start.replaceActive {
			replaced := p.replaceActiveBlock()
			startLine, startColumn = replaced.Pos.StartLine, replaced.Pos.StartColumn
		}

		for _, next := range start.parsers {
			next.Node().Pos.StartLine = startLine
			next.Node().Pos.StartColumn = startColumn
			p.addChild(next)
			blockParser = next
			tryStarts = next.IsContainer()
		}
	}
	p.matched = nil

	// What remains of the line is text for the deepest block.
	switch {
	case !startedNewBlock && !p.blank && p.activeBlock().CanLazyContinue():
		p.addLine()
	default:
		if unmatched > 0 {
			p.closeBlocks(unmatched)
		}

		switch {
		case !blockParser.IsContainer():
			p.addLine()
		case !p.blank:
			para := newParagraph(p)
			para.node.Pos.StartLine = p.lineNumber
			para.node.Pos.StartColumn = p.index + 1
			p.addChild(para)
			p.addLine()
		}
	}

	if !isBlankLine(p.line) {
		for _, block := range p.open {
			p.extendEnd(block.Node())
		}
	}
}

func (p *documentParser) setLine(raw []byte) {
	if bytes.IndexByte(raw, 0) >= 0 {
		raw = bytes.ReplaceAll(raw, []byte{0}, []byte("�"))
	}
	p.line = raw
	p.lineNumber = p.lineIdx + 1
	p.index = 0
	p.column = 0
	p.columnIsInTab = false
}

func (p *documentParser) findBlockStart() (Start, bool) {
	for _, starter := range p.starters {
		if start, ok := starter.Starter.TryStart(p); ok {
			return start, true
		}
	}
	return Start{}, false
}

func (p *documentParser) applyPosition(index, column int) {
	switch {
	case index >= 0:
		p.setNewIndex(index)
	case column >= 0:
		p.setNewColumn(column)
	}
}

// findNextNonSpace scans spaces and tabs from index, computing the
// indentation in columns.
func (p *documentParser) findNextNonSpace() {
	i := p.index
	cols := p.column

	p.blank = true
	for i < len(p.line) {
		c := p.line[i]
		if c == ' ' {
			i++
			cols++
			continue
		}
		if c == '\t' {
			i++
			cols += columnsToNextTabStop(cols)
			continue
		}
		p.blank = false
		break
	}

	p.nextNonSpace = i
	p.nextNonSpaceColumn = cols
	p.indent = cols - p.column
}

func (p *documentParser) setNewIndex(newIndex int) {
	if newIndex >= p.nextNonSpace {
		// Skip the scan findNextNonSpace already did.
		p.index = p.nextNonSpace
		p.column = p.nextNonSpaceColumn
	}
	for p.index < newIndex && p.index != len(p.line) {
		p.advance()
	}
	p.columnIsInTab = false
}

func (p *documentParser) setNewColumn(newColumn int) {
	if newColumn >= p.nextNonSpaceColumn {
		p.index = p.nextNonSpace
		p.column = p.nextNonSpaceColumn
	}
	for p.column < newColumn && p.index != len(p.line) {
		p.advance()
	}
	if p.column > newColumn {
		// The last character was a tab and we overshot the target column:
		// stay on the tab and remember it is partially consumed.
		p.index--
		p.column = newColumn
		p.columnIsInTab = true
	} else {
		p.columnIsInTab = false
	}
}

func (p *documentParser) advance() {
	c := p.line[p.index]
	p.index++
	if c == '\t' {
		p.column += columnsToNextTabStop(p.column)
	} else {
		p.column++
	}
}

// addLine hands the rest of the line to the active block, expanding a
// partially consumed tab into the spaces that remain of it.
func (p *documentParser) addLine() {
	var content []byte
	switch {
	case p.columnIsInTab:
		rest := p.line[p.index+1:]
		spaces := columnsToNextTabStop(p.column)
		content = make([]byte, 0, spaces+len(rest))
		content = append(content, bytes.Repeat([]byte{' '}, spaces)...)
		content = append(content, rest...)
	default:
		content = p.line[p.index:]
	}
	p.activeBlock().AddLine(content)
}

func (p *documentParser) addChild(child BlockParser) {
	for !p.activeBlock().CanContain(child.Node()) {
		p.closeBlocks(1)
	}
	mdast.AppendChild(p.activeBlock().Node(), child.Node())
	p.open = append(p.open, child)
}

func (p *documentParser) activeBlock() BlockParser {
	return p.open[len(p.open)-1]
}

func (p *documentParser) closeBlocks(count int) {
	if count > len(p.open) {
		panic("parser: closing more blocks than are open")
	}
	for range count {
		last := len(p.open) - 1
		block := p.open[last]
		p.open[last] = nil
		p.open = p.open[:last]
		block.Close()
	}
}

// replaceActiveBlock removes the active block from the stack and the tree.
// A paragraph contributes its link reference definitions first.
func (p *documentParser) replaceActiveBlock() *mdast.Node {
	old := p.activeBlock()
	p.closeBlocks(1)
	mdast.Unlink(old.Node())
	return old.Node()
}

func (p *documentParser) extendEnd(node *mdast.Node) {
	node.Pos.EndLine = p.lineNumber
	node.Pos.EndColumn = max(len(p.line), 1)
}

func (p *documentParser) addDefinitions(defs []linkref.Definition, firstLine int) {
	for _, def := range defs {
		def.Line += firstLine
		p.refs.Add(def)
	}
}

// State implementation.

func (p *documentParser) Line() []byte             { return p.line }
func (p *documentParser) LineNumber() int          { return p.lineNumber }
func (p *documentParser) Index() int               { return p.index }
func (p *documentParser) Column() int              { return p.column }
func (p *documentParser) NextNonSpace() int        { return p.nextNonSpace }
func (p *documentParser) Indent() int              { return p.indent }
func (p *documentParser) IsBlank() bool            { return p.blank }
func (p *documentParser) ActiveBlock() BlockParser { return p.activeBlock() }

func (p *documentParser) MatchedBlock() BlockParser {
	if p.matched == nil {
		return p.activeBlock()
	}
	return p.matched
}

func (p *documentParser) ParagraphContent() []byte {
	if para, ok := p.MatchedBlock().(*paragraphParser); ok {
		return para.content()
	}
	return nil
}

func (p *documentParser) LookAhead(n int) ([]byte, bool) {
	idx := p.lineIdx + n
	if n < 1 || idx >= len(p.lines) {
		return nil, false
	}
	return p.lines[idx].Content(p.src), true
}

func columnsToNextTabStop(column int) int {
	return 4 - column%4
}

func isParagraph(block BlockParser) bool {
	_, ok := block.(*paragraphParser)
	return ok
}

func isLetter(line []byte, i int) bool {
	if i >= len(line) {
		return false
	}
	c := line[i]
	if c < utf8.RuneSelf {
		return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
	}
	r, _ := utf8.DecodeRune(line[i:])
	return unicode.IsLetter(r)
}

func isBlankLine(line []byte) bool {
	for _, c := range line {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

func isSpaceOrTab(line []byte, i int) bool {
	return i < len(line) && (line[i] == ' ' || line[i] == '\t')
}

func isSpaceTabOrEnd(line []byte, i int) bool {
	return i >= len(line) || line[i] == ' ' || line[i] == '\t'
}
