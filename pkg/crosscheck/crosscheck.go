// Package crosscheck compares gomdkit output with goldmark, a separate
// CommonMark implementation. A check renders the same source through both
// and reports the first HTML line and the first block-structure line that
// differ. Insignificant whitespace is normalized away first.
package crosscheck

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdkit/pkg/ext/frontmatter"
	"github.com/yaklabco/gomdkit/pkg/ext/headingid"
	"github.com/yaklabco/gomdkit/pkg/ext/strikethrough"
	"github.com/yaklabco/gomdkit/pkg/fsutil"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// Options mirror the HTML options of the engine under test so both sides
// render raw HTML and void tags the same way.
type Options struct {
	Unsafe bool
	XHTML  bool
}

// DefaultOptions matches the engine's default HTML options.
func DefaultOptions() Options {
	return Options{Unsafe: true, XHTML: true}
}

// Diff locates the first differing line of two normalized outputs. Line is
// 1-based; a missing line is "".
type Diff struct {
	Line      int
	Ours      string
	Reference string
}

// Result is the outcome of checking one source.
type Result struct {
	Path string
	// HTML is nil when the normalized HTML matches.
	HTML *Diff
	// Blocks is nil when the block structure matches.
	Blocks *Diff
}

// Equal reports whether both comparisons matched.
func (r *Result) Equal() bool {
	return r.HTML == nil && r.Blocks == nil
}

// Checker runs comparisons. It is safe for concurrent use.
type Checker struct {
	engine   *markdown.Engine
	ref      goldmark.Markdown
	stripsFM bool
}

// New creates a Checker for engine. The goldmark side enables the
// counterparts of the engine's extensions: strikethrough, automatic
// heading ids, and front matter (removed from goldmark's input since
// goldmark core has no front matter support).
func New(engine *markdown.Engine, opts Options) *Checker {
	names := engine.Extensions()

	var gmOpts []goldmark.Option
	if slices.Contains(names, strikethrough.Name) {
		gmOpts = append(gmOpts, goldmark.WithExtensions(extension.Strikethrough))
	}
	if slices.Contains(names, headingid.Name) {
		gmOpts = append(gmOpts, goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	}

	var rendererOpts []goldmark.Option
	if opts.Unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	if opts.XHTML {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithXHTML()))
	}

	return &Checker{
		engine:   engine,
		ref:      goldmark.New(append(gmOpts, rendererOpts...)...),
		stripsFM: slices.Contains(names, frontmatter.Name),
	}
}

// Check compares the two renderings of src.
func (c *Checker) Check(src []byte) (*Result, error) {
	doc := c.engine.Parse(src)

	var ours bytes.Buffer
	if err := c.engine.RenderHTML(&ours, doc); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	refSrc := src
	if c.stripsFM {
		refSrc = stripFrontMatter(doc, src)
	}

	var reference bytes.Buffer
	if err := c.ref.Convert(refSrc, &reference); err != nil {
		return nil, fmt.Errorf("goldmark: %w", err)
	}

	refTree := c.ref.Parser().Parse(text.NewReader(refSrc))

	return &Result{
		HTML:   compare(normalizeHTML(ours.String()), normalizeHTML(reference.String())),
		Blocks: compare(skeleton(doc.Root), skeleton(mapDocument(refTree, refSrc))),
	}, nil
}

// CheckFile reads path and checks it.
func (c *Checker) CheckFile(ctx context.Context, path string) (*Result, error) {
	src, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	result, err := c.Check(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.Path = path
	return result, nil
}

// stripFrontMatter drops the lines of the front-matter block of doc from
// src: the content lines plus the two delimiter lines.
func stripFrontMatter(doc *markdown.Document, src []byte) []byte {
	raw, ok := frontmatter.Raw(doc)
	if !ok {
		return src
	}

	lines := bytes.Count(raw, []byte("\n")) + 2
	if len(raw) > 0 && raw[len(raw)-1] != '\n' {
		lines++
	}
	rest := src
	for range lines {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			return nil
		}
		rest = rest[i+1:]
	}
	return rest
}

// normalizeHTML splits s into lines with trailing whitespace removed and
// blank lines dropped.
func normalizeHTML(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func compare(ours, reference []string) *Diff {
	for i := range max(len(ours), len(reference)) {
		var a, b string
		if i < len(ours) {
			a = ours[i]
		}
		if i < len(reference) {
			b = reference[i]
		}
		if a != b {
			return &Diff{Line: i + 1, Ours: a, Reference: b}
		}
	}
	return nil
}
