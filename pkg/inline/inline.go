// Package inline turns the raw content of leaf blocks (paragraphs and
// headings) into inline nodes: text, code spans, emphasis, links, images,
// autolinks, raw HTML and line breaks.
//
// Emphasis-like constructs are resolved with a delimiter stack; links and
// images with a bracket stack consulted at every ']'. Additional delimiter
// characters are supplied through DelimiterProcessor.
package inline

import (
	"fmt"

	"github.com/yaklabco/gomdkit/pkg/charclass"
	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// baseSpecials are the characters that may start an inline construct.
var baseSpecials = charclass.Of(charclass.ASCII, '\n', '`', '\\', '!', '&', '<', '[', ']')

// Processor resolves inline content. It is immutable after New and safe for
// concurrent use.
type Processor struct {
	specials   *charclass.Set
	delimiters map[byte]DelimiterProcessor
}

// Option configures a Processor.
type Option func(*Processor)

// WithDelimiterProcessor registers an additional delimiter character.
// The first processor registered for a character wins.
func WithDelimiterProcessor(dp DelimiterProcessor) Option {
	return func(p *Processor) {
		p.addDelimiterProcessor(dp)
	}
}

// New creates a Processor handling emphasis plus any extra delimiters.
func New(opts ...Option) *Processor {
	p := &Processor{
		specials:   baseSpecials.Clone(),
		delimiters: make(map[byte]DelimiterProcessor),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.addDelimiterProcessor(EmphasisProcessor('*'))
	p.addDelimiterProcessor(EmphasisProcessor('_'))
	return p
}

func (p *Processor) addDelimiterProcessor(dp DelimiterProcessor) {
	c := dp.Char()
	if c >= charclass.ASCII {
		panic(fmt.Sprintf("inline: delimiter %q is not ASCII", c))
	}
	if _, exists := p.delimiters[c]; exists {
		return
	}
	p.delimiters[c] = dp
	p.specials.Set(rune(c))
}

// DelimiterChars returns the registered delimiter characters.
func (p *Processor) DelimiterChars() []byte {
	chars := make([]byte, 0, len(p.delimiters))
	for _, r := range p.specials.Runes() {
		if _, ok := p.delimiters[byte(r)]; ok {
			chars = append(chars, byte(r))
		}
	}
	return chars
}

// Resolve parses leaf.Block.Raw into inline children appended to leaf and
// clears Raw. Leaves without raw content are left untouched.
func (p *Processor) Resolve(leaf *mdast.Node, refs *linkref.Table) {
	if leaf == nil || leaf.Block == nil || leaf.Block.Raw == nil {
		return
	}

	ip := &inlineParser{
		proc:  p,
		src:   leaf.Block.Raw,
		block: leaf,
		refs:  refs,
	}
	ip.parse()
	leaf.Block.Raw = nil
}

// ResolveTree resolves every leaf block under root that still holds raw
// inline content.
func (p *Processor) ResolveTree(root *mdast.Node, refs *linkref.Table) {
	var leaves []*mdast.Node
	mdast.Walk(root, func(n *mdast.Node, entering bool) mdast.WalkStatus {
		if !entering {
			return mdast.WalkContinue
		}
		if !n.IsBlock() {
			return mdast.WalkSkipChildren
		}
		if n.Block.Raw != nil {
			leaves = append(leaves, n)
		}
		return mdast.WalkContinue
	})
	for _, leaf := range leaves {
		p.Resolve(leaf, refs)
	}
}
