package parser

import (
	"bytes"

	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

type fencedCodeParser struct {
	BlockBase
	node *mdast.Node

	fenceChar   byte
	fenceLength int
	fenceIndent int

	info      []byte
	firstLine bool
	body      bytes.Buffer
}

func (b *fencedCodeParser) Node() *mdast.Node { return b.node }

func (b *fencedCodeParser) TryContinue(s State) (Continue, bool) {
	line, nns := s.Line(), s.NextNonSpace()
	if s.Indent() < codeIndent && b.isClosingFence(line[nns:]) {
		return ContinueFinished(), true
	}

	// Strip up to the opening fence's indentation.
	index := s.Index()
	for i := b.fenceIndent; i > 0 && index < len(line) && line[index] == ' '; i-- {
		index++
	}
	return ContinueAtIndex(index), true
}

func (b *fencedCodeParser) isClosingFence(rest []byte) bool {
	n := 0
	for n < len(rest) && rest[n] == b.fenceChar {
		n++
	}
	return n >= b.fenceLength && isBlankLine(rest[n:])
}

func (b *fencedCodeParser) AddLine(line []byte) {
	if b.firstLine {
		b.info = bytes.Trim(line, " \t")
		b.firstLine = false
		return
	}
	b.body.Write(line)
	b.body.WriteByte('\n')
}

func (b *fencedCodeParser) Close() {
	attrs := b.node.Block.CodeBlock
	attrs.Info = linkref.Unescape(string(b.info))
	b.node.Block.Literal = b.body.Bytes()
	if b.node.Block.Literal == nil {
		b.node.Block.Literal = []byte{}
	}
}

func startFencedCode(s State) (Start, bool) {
	if s.Indent() >= codeIndent {
		return Start{}, false
	}

	line, nns := s.Line(), s.NextNonSpace()
	if nns >= len(line) || (line[nns] != '`' && line[nns] != '~') {
		return Start{}, false
	}

	fenceChar := line[nns]
	n := 0
	for nns+n < len(line) && line[nns+n] == fenceChar {
		n++
	}
	if n < 3 {
		return Start{}, false
	}
	if fenceChar == '`' && bytes.IndexByte(line[nns+n:], '`') >= 0 {
		return Start{}, false
	}

	node := mdast.NewNode(mdast.NodeCodeBlock)
	node.Block.CodeBlock = &mdast.CodeBlockAttrs{
		FenceChar:   fenceChar,
		FenceLength: n,
		FenceIndent: s.Indent(),
	}
	code := &fencedCodeParser{
		node:        node,
		fenceChar:   fenceChar,
		fenceLength: n,
		fenceIndent: s.Indent(),
		firstLine:   true,
	}
	return StartOf(code).AtIndex(nns + n), true
}

type indentedCodeParser struct {
	BlockBase
	node  *mdast.Node
	lines [][]byte
}

func (b *indentedCodeParser) Node() *mdast.Node { return b.node }

func (b *indentedCodeParser) TryContinue(s State) (Continue, bool) {
	switch {
	case s.Indent() >= codeIndent:
		return ContinueAtColumn(s.Column() + codeIndent), true
	case s.IsBlank():
		return ContinueAtIndex(s.NextNonSpace()), true
	default:
		return Continue{}, false
	}
}

func (b *indentedCodeParser) AddLine(line []byte) {
	b.lines = append(b.lines, line)
}

func (b *indentedCodeParser) Close() {
	last := len(b.lines)
	for last > 0 && isBlankLine(b.lines[last-1]) {
		last--
	}

	var body bytes.Buffer
	for _, line := range b.lines[:last] {
		body.Write(line)
		body.WriteByte('\n')
	}
	b.node.Block.Literal = body.Bytes()
}

func startIndentedCode(s State) (Start, bool) {
	if s.Indent() < codeIndent || s.IsBlank() || isParagraph(s.ActiveBlock()) {
		return Start{}, false
	}

	node := mdast.NewNode(mdast.NodeCodeBlock)
	node.Block.CodeBlock = &mdast.CodeBlockAttrs{Indented: true}
	return StartOf(&indentedCodeParser{node: node}).AtColumn(s.Column() + codeIndent), true
}
