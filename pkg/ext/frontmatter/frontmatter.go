// Package frontmatter recognizes a metadata block at the very top of a
// document and decodes it.
//
// A YAML block opens with "---" on the first line and closes with "---" or
// "..."; a TOML block uses "+++" for both. Without a closing line the
// opening line is ordinary Markdown (usually a thematic break).
//
// The block becomes a FrontMatter node holding the raw text. No renderer is
// registered for it, so it does not appear in the output. The decoded
// values are stored on the document node and read back with Data.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/yaklabco/gomdkit/pkg/markdown"
	"github.com/yaklabco/gomdkit/pkg/mdast"
	"github.com/yaklabco/gomdkit/pkg/parser"
)

// Name is the extension name.
const Name = "frontmatter"

// Priority places the starter ahead of every built-in block.
const Priority = 50

// Ext keys on the Document node.
const (
	ExtData  = "frontmatter"
	ExtError = "frontmatter.error"
)

// Kind is the node kind of the front matter block.
var Kind = mdast.RegisterKind("FrontMatter", true)

// ErrDecode wraps front matter that could not be decoded.
var ErrDecode = errors.New("decode front matter")

// Extension implements markdown.Extension.
type Extension struct{}

// New returns the front matter extension.
func New() *Extension { return &Extension{} }

// Name returns "frontmatter".
func (*Extension) Name() string { return Name }

// Extend registers the block starter and the decoding post-processor.
func (*Extension) Extend(b *markdown.Builder) {
	b.BlockStarter(Name, Priority, parser.StarterFunc(start)).
		PostProcessor(markdown.PostProcessorFunc(decode))
}

type fence struct {
	open   string
	closes []string
}

var fences = []fence{
	{open: "---", closes: []string{"---", "..."}},
	{open: "+++", closes: []string{"+++"}},
}

func matchFence(line []byte) (fence, bool) {
	trimmed := string(bytes.TrimRight(line, " \t"))
	for _, f := range fences {
		if trimmed == f.open {
			return f, true
		}
	}
	return fence{}, false
}

func (f fence) isClose(line []byte) bool {
	trimmed := string(bytes.TrimRight(line, " \t"))
	for _, c := range f.closes {
		if trimmed == c {
			return true
		}
	}
	return false
}

func start(s parser.State) (parser.Start, bool) {
	if s.LineNumber() != 1 || s.Index() != 0 || s.ActiveBlock().Node().Kind != mdast.NodeDocument {
		return parser.Start{}, false
	}
	f, ok := matchFence(s.Line())
	if !ok {
		return parser.Start{}, false
	}

	for n := 1; ; n++ {
		line, ok := s.LookAhead(n)
		if !ok {
			return parser.Start{}, false
		}
		if f.isClose(line) {
			break
		}
	}

	node := mdast.NewNode(Kind)
	block := &blockParser{node: node, fence: f, firstLine: true}
	return parser.StartOf(block).AtIndex(len(s.Line())), true
}

type blockParser struct {
	parser.BlockBase
	node  *mdast.Node
	fence fence

	firstLine bool
	body      bytes.Buffer
}

func (b *blockParser) Node() *mdast.Node { return b.node }

func (b *blockParser) TryContinue(s parser.State) (parser.Continue, bool) {
	if b.fence.isClose(s.Line()) {
		return parser.ContinueFinished(), true
	}
	return parser.ContinueAtIndex(s.Index()), true
}

func (b *blockParser) AddLine(line []byte) {
	if b.firstLine {
		b.firstLine = false
		return
	}
	b.body.Write(line)
	b.body.WriteByte('\n')
}

func (b *blockParser) Close() {
	b.node.Block.Literal = b.body.Bytes()
	if b.node.Block.Literal == nil {
		b.node.Block.Literal = []byte{}
	}
	b.node.SetExt("delimiter", b.fence.open)
}

func decode(doc *markdown.Document) {
	node := doc.Root.FirstChild
	if node == nil || node.Kind != Kind {
		return
	}

	delim, _ := node.ExtString("delimiter")
	var src bytes.Buffer
	src.WriteString(delim + "\n")
	src.Write(node.Block.Literal)
	src.WriteString(delim + "\n")

	data := make(map[string]any)
	if _, err := frontmatter.Parse(&src, &data); err != nil {
		doc.Root.SetExt(ExtError, fmt.Errorf("%w: %w", ErrDecode, err))
		return
	}
	doc.Root.SetExt(ExtData, data)
}

// Data returns the decoded front matter of doc.
func Data(doc *markdown.Document) (map[string]any, bool) {
	data, ok := doc.Root.Ext[ExtData].(map[string]any)
	return data, ok
}

// Err returns the error from decoding the front matter of doc, if any.
func Err(doc *markdown.Document) error {
	err, _ := doc.Root.Ext[ExtError].(error)
	return err
}

// Raw returns the undecoded front matter text.
func Raw(doc *markdown.Document) ([]byte, bool) {
	node := doc.Root.FirstChild
	if node == nil || node.Kind != Kind {
		return nil, false
	}
	return node.Block.Literal, true
}
