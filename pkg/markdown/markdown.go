// Package markdown is the entry point of the engine. It runs the three
// phases of a conversion in order (block parsing, inline resolution with
// post-processing, rendering) and lets extensions hook into each of them.
//
//	engine := markdown.New(markdown.WithExtensions(strikethrough.New()))
//	err := engine.Convert(src, os.Stdout, markdown.FormatHTML)
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdkit/internal/logging"
	"github.com/yaklabco/gomdkit/pkg/inline"
	"github.com/yaklabco/gomdkit/pkg/linkref"
	"github.com/yaklabco/gomdkit/pkg/mdast"
	"github.com/yaklabco/gomdkit/pkg/parser"
	"github.com/yaklabco/gomdkit/pkg/render/html"
	"github.com/yaklabco/gomdkit/pkg/render/text"
)

// Document is a parsed and resolved Markdown document.
type Document struct {
	// Root is the Document node.
	Root *mdast.Node

	// Refs holds the link reference definitions.
	Refs *linkref.Table

	// Source is the input the tree was built from.
	Source []byte
}

// Option configures an Engine.
type Option func(*settings)

type settings struct {
	extensions []Extension
	htmlOpts   html.Options
	textOpts   text.Options
	logger     *log.Logger
}

// WithExtensions adds extensions. They are applied in order.
func WithExtensions(exts ...Extension) Option {
	return func(s *settings) {
		s.extensions = append(s.extensions, exts...)
	}
}

// WithHTMLOptions sets the HTML render options.
func WithHTMLOptions(opts html.Options) Option {
	return func(s *settings) {
		s.htmlOpts = opts
	}
}

// WithTextOptions sets the plain-text render options.
func WithTextOptions(opts text.Options) Option {
	return func(s *settings) {
		s.textOpts = opts
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// Engine parses and renders Markdown. It is immutable after New and safe
// for concurrent use.
type Engine struct {
	parser *parser.Parser
	inline *inline.Processor
	post   []PostProcessor
	html   *html.Renderer
	text   *text.Renderer

	extensions []string
	logger     *log.Logger
}

// New creates an Engine with CommonMark syntax plus the given extensions.
func New(opts ...Option) *Engine {
	s := settings{
		htmlOpts: html.DefaultOptions(),
		textOpts: text.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}

	var b Builder
	names := make([]string, 0, len(s.extensions))
	for _, ext := range s.extensions {
		ext.Extend(&b)
		names = append(names, ext.Name())
		s.logger.Debug("extension registered", logging.FieldExtension, ext.Name())
	}

	return &Engine{
		parser:     parser.New(b.parserOpts...),
		inline:     inline.New(b.inlineOpts...),
		post:       b.post,
		html:       html.New(s.htmlOpts, b.html...),
		text:       text.New(s.textOpts, b.text...),
		extensions: names,
		logger:     s.logger,
	}
}

// Extensions returns the names of the installed extensions, in order.
func (e *Engine) Extensions() []string {
	return append([]string(nil), e.extensions...)
}

// Parse builds the resolved document tree of src. It never fails.
func (e *Engine) Parse(src []byte) *Document {
	start := time.Now()
	root, refs := e.parser.Parse(src)
	blocks := time.Since(start)

	e.inline.ResolveTree(root, refs)
	doc := &Document{Root: root, Refs: refs, Source: src}
	for _, pp := range e.post {
		pp.Process(doc)
	}

	e.logger.Debug("parsed",
		logging.FieldBytes, len(src),
		logging.FieldPhase, "blocks",
		logging.FieldDuration, blocks,
		"total", time.Since(start),
	)
	return doc
}

// RenderHTML writes doc as HTML.
func (e *Engine) RenderHTML(w io.Writer, doc *Document) error {
	return e.render(w, doc, FormatHTML)
}

// RenderText writes doc as plain text.
func (e *Engine) RenderText(w io.Writer, doc *Document) error {
	return e.render(w, doc, FormatText)
}

// Render writes doc in the given format.
func (e *Engine) Render(w io.Writer, doc *Document, format Format) error {
	return e.render(w, doc, format)
}

func (e *Engine) render(w io.Writer, doc *Document, format Format) error {
	start := time.Now()

	var err error
	switch format {
	case FormatHTML:
		err = e.html.Render(w, doc.Root)
	case FormatText:
		err = e.text.Render(w, doc.Root)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	e.logger.Debug("rendered",
		logging.FieldFormat, format,
		logging.FieldDuration, time.Since(start),
	)
	return nil
}

// Convert parses src and writes it to w in the given format.
func (e *Engine) Convert(src []byte, w io.Writer, format Format) error {
	return e.Render(w, e.Parse(src), format)
}

// ConvertString is Convert for in-memory use.
func (e *Engine) ConvertString(src string, format Format) (string, error) {
	var buf bytes.Buffer
	if err := e.Convert([]byte(src), &buf, format); err != nil {
		return "", err
	}
	return buf.String(), nil
}
