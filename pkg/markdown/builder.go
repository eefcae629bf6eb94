package markdown

import (
	"github.com/yaklabco/gomdkit/pkg/inline"
	"github.com/yaklabco/gomdkit/pkg/parser"
	"github.com/yaklabco/gomdkit/pkg/render/html"
	"github.com/yaklabco/gomdkit/pkg/render/text"
)

// Extension adds syntax, tree processing or rendering to an Engine.
type Extension interface {
	// Name identifies the extension, e.g. "strikethrough".
	Name() string

	// Extend registers the extension's parts with b.
	Extend(b *Builder)
}

// PostProcessor runs once over a fully resolved document, in registration
// order, before it is returned from Parse.
type PostProcessor interface {
	Process(doc *Document)
}

// PostProcessorFunc adapts a function to PostProcessor.
type PostProcessorFunc func(doc *Document)

// Process calls f(doc).
func (f PostProcessorFunc) Process(doc *Document) { f(doc) }

// Builder collects the parts contributed by extensions while an Engine is
// constructed. It is not used after New returns.
type Builder struct {
	parserOpts []parser.Option
	inlineOpts []inline.Option
	post       []PostProcessor
	html       []html.Factory
	text       []text.Factory
}

// BlockStarter registers a block starter. Lower priorities are tried
// first; the built-in starters use 100 to 800. Lines starting with a letter
// never reach a starter; see parser.WithBlockStarter.
func (b *Builder) BlockStarter(name string, priority int, starter parser.BlockStarter) *Builder {
	b.parserOpts = append(b.parserOpts, parser.WithBlockStarter(name, priority, starter))
	return b
}

// DisableBlockStarter removes a block starter by name.
func (b *Builder) DisableBlockStarter(name string) *Builder {
	b.parserOpts = append(b.parserOpts, parser.WithoutBlockStarter(name))
	return b
}

// DelimiterProcessor registers an inline delimiter character. The first
// processor for a character wins; '*' and '_' are always emphasis unless an
// extension claims them first.
func (b *Builder) DelimiterProcessor(dp inline.DelimiterProcessor) *Builder {
	b.inlineOpts = append(b.inlineOpts, inline.WithDelimiterProcessor(dp))
	return b
}

// PostProcessor registers a document post-processor.
func (b *Builder) PostProcessor(pp PostProcessor) *Builder {
	b.post = append(b.post, pp)
	return b
}

// HTMLRenderer registers an HTML node renderer factory. Extension renderers
// are consulted before the core renderer.
func (b *Builder) HTMLRenderer(f html.Factory) *Builder {
	b.html = append(b.html, f)
	return b
}

// TextRenderer registers a plain-text node renderer factory.
func (b *Builder) TextRenderer(f text.Factory) *Builder {
	b.text = append(b.text, f)
	return b
}
