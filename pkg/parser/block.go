package parser

import "github.com/yaklabco/gomdkit/pkg/mdast"

// State is the view of the current line that block parsers and starters
// work from. Indices are byte offsets into Line; columns account for tabs
// expanding to the next multiple of four.
type State interface {
	// Line returns the current line without its terminator.
	Line() []byte

	// LineNumber returns the 1-based number of the current line.
	LineNumber() int

	// Index is the current byte offset in Line.
	Index() int

	// Column is the column of Index.
	Column() int

	// NextNonSpace is the offset of the next non-space, non-tab byte.
	NextNonSpace() int

	// Indent is the number of columns between Column and NextNonSpace.
	Indent() int

	// IsBlank reports whether the rest of the line is spaces or tabs.
	IsBlank() bool

	// ActiveBlock returns the deepest open block.
	ActiveBlock() BlockParser

	// MatchedBlock returns the deepest block that the line continued or
	// that was opened on this line so far.
	MatchedBlock() BlockParser

	// ParagraphContent returns the raw content of MatchedBlock when it is a
	// paragraph, and nil otherwise.
	ParagraphContent() []byte

	// LookAhead returns the n-th line after the current one (n >= 1).
	LookAhead(n int) ([]byte, bool)
}

// BlockParser parses one open block. The document parser keeps a stack of
// them from the root to the deepest open block.
type BlockParser interface {
	// Node returns the block node being built.
	Node() *mdast.Node

	// IsContainer reports whether other blocks can start inside this one.
	IsContainer() bool

	// CanContain reports whether child may be appended to this block.
	CanContain(child *mdast.Node) bool

	// CanLazyContinue reports whether an unmatched text line may extend
	// this block.
	CanLazyContinue() bool

	// TryContinue checks whether the current line continues the block.
	TryContinue(s State) (Continue, bool)

	// AddLine appends line content to a leaf block.
	AddLine(line []byte)

	// Close finalizes the block.
	Close()
}

// BlockStarter recognizes the start of a block on the current line.
type BlockStarter interface {
	TryStart(s State) (Start, bool)
}

// StarterFunc adapts a function to BlockStarter.
type StarterFunc func(s State) (Start, bool)

// TryStart calls f(s).
func (f StarterFunc) TryStart(s State) (Start, bool) {
	return f(s)
}

// BlockBase provides the defaults of a leaf block that accepts no lines.
// Embed it and override what differs.
type BlockBase struct{}

// IsContainer returns false.
func (BlockBase) IsContainer() bool { return false }

// CanContain returns false.
func (BlockBase) CanContain(*mdast.Node) bool { return false }

// CanLazyContinue returns false.
func (BlockBase) CanLazyContinue() bool { return false }

// AddLine ignores the line.
func (BlockBase) AddLine([]byte) {}

// Close does nothing.
func (BlockBase) Close() {}

// Continue tells the document parser how a block continues on a line.
type Continue struct {
	index    int
	column   int
	finished bool
}

// ContinueAtIndex continues the block with the line consumed up to index.
func ContinueAtIndex(index int) Continue {
	return Continue{index: index, column: -1}
}

// ContinueAtColumn continues the block with the line consumed up to column.
func ContinueAtColumn(column int) Continue {
	return Continue{index: -1, column: column}
}

// ContinueFinished consumes the line and closes the block, as a closing
// code fence does.
func ContinueFinished() Continue {
	return Continue{index: -1, column: -1, finished: true}
}

// Start describes blocks opened on the current line.
type Start struct {
	parsers       []BlockParser
	index         int
	column        int
	replaceActive bool
}

// StartOf opens the given blocks, outermost first.
func StartOf(parsers ...BlockParser) Start {
	return Start{parsers: parsers, index: -1, column: -1}
}

// AtIndex continues matching the line at byte offset index.
func (s Start) AtIndex(index int) Start {
	s.index = index
	return s
}

// AtColumn continues matching the line at column.
func (s Start) AtColumn(column int) Start {
	s.column = column
	return s
}

// ReplaceActive replaces the active block (a paragraph turning into a
// setext heading) instead of nesting inside it.
func (s Start) ReplaceActive() Start {
	s.replaceActive = true
	return s
}
