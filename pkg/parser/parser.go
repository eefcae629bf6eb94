// Package parser implements the CommonMark block-structure phase: the
// source is consumed line by line against a stack of open blocks, producing
// a document tree whose paragraphs and headings still hold raw inline text,
// plus the table of link reference definitions.
package parser

import (
	"slices"

	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// Priorities of the built-in block starters. Lower runs first.
const (
	PriorityBlockquote    = 100
	PriorityATXHeading    = 200
	PriorityFencedCode    = 300
	PriorityHTMLBlock     = 400
	PrioritySetextHeading = 500
	PriorityThematicBreak = 600
	PriorityListItem      = 700
	PriorityIndentedCode  = 800
)

// Starter is a block starter registered under a name and priority.
type Starter struct {
	Name     string
	Priority int
	Starter  BlockStarter
}

// Parser is an immutable block parser configuration. It is safe for
// concurrent use; every Parse call builds fresh state.
type Parser struct {
	starters []Starter
}

// Option configures a Parser.
type Option func(*Parser)

// WithBlockStarter registers an additional block starter.
//
// Starters are not consulted for a line whose first non-space character,
// indented less than four columns, is a letter: such a line always
// continues or starts a paragraph. A starter's trigger must therefore
// begin with a non-letter, as in "!!! note" or ":::name".
func WithBlockStarter(name string, priority int, starter BlockStarter) Option {
	return func(p *Parser) {
		p.starters = append(p.starters, Starter{Name: name, Priority: priority, Starter: starter})
	}
}

// WithoutBlockStarter removes a previously registered starter by name,
// for example "html-block" to disable raw HTML blocks.
func WithoutBlockStarter(name string) Option {
	return func(p *Parser) {
		p.starters = slices.DeleteFunc(p.starters, func(s Starter) bool {
			return s.Name == name
		})
	}
}

// New returns a parser with the CommonMark starters plus any registered by opts.
func New(opts ...Option) *Parser {
	p := &Parser{starters: DefaultStarters()}
	for _, opt := range opts {
		opt(p)
	}
	slices.SortStableFunc(p.starters, func(a, b Starter) int {
		return a.Priority - b.Priority
	})
	return p
}

// DefaultStarters returns the CommonMark block starters.
func DefaultStarters() []Starter {
	return []Starter{
		{Name: "blockquote", Priority: PriorityBlockquote, Starter: StarterFunc(startBlockquote)},
		{Name: "atx-heading", Priority: PriorityATXHeading, Starter: StarterFunc(startATXHeading)},
		{Name: "fenced-code", Priority: PriorityFencedCode, Starter: StarterFunc(startFencedCode)},
		{Name: "html-block", Priority: PriorityHTMLBlock, Starter: StarterFunc(startHTMLBlock)},
		{Name: "setext-heading", Priority: PrioritySetextHeading, Starter: StarterFunc(startSetextHeading)},
		{Name: "thematic-break", Priority: PriorityThematicBreak, Starter: StarterFunc(startThematicBreak)},
		{Name: "list-item", Priority: PriorityListItem, Starter: StarterFunc(startListItem)},
		{Name: "indented-code", Priority: PriorityIndentedCode, Starter: StarterFunc(startIndentedCode)},
	}
}

// Starters returns the registered starters in matching order.
func (p *Parser) Starters() []Starter {
	return slices.Clone(p.starters)
}

// Parse builds the block tree of src. It never fails: every input has a
// CommonMark parse. Leaf text is left in Block.Raw for the inline phase.
func (p *Parser) Parse(src []byte) (*mdast.Node, *linkref.Table) {
	doc := newDocumentParser(p.starters, src)
	return doc.parse()
}
