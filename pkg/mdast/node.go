// Package mdast defines the Markdown document tree produced by the parser
// and consumed by the renderers.
//
// Children are owned by their parent through an intrusive first/last/next/prev
// list. Parent and sibling pointers are navigation links only; every mutation
// goes through the helpers in builder.go so the tree stays acyclic and every
// non-root node has exactly one parent.
package mdast

import (
	"fmt"
	"sync"
)

// NodeKind classifies the type of a tree node.
type NodeKind uint16

// Built-in node kinds for CommonMark block and inline elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock

	// Inline-level nodes.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeSoftBreak
	NodeHardBreak
	NodeHTMLInline

	numBuiltinKinds
)

type kindInfo struct {
	name  string
	block bool
}

var (
	kindMu sync.RWMutex
	kinds  = []kindInfo{
		NodeDocument:      {"Document", true},
		NodeParagraph:     {"Paragraph", true},
		NodeHeading:       {"Heading", true},
		NodeList:          {"List", true},
		NodeListItem:      {"ListItem", true},
		NodeBlockquote:    {"Blockquote", true},
		NodeCodeBlock:     {"CodeBlock", true},
		NodeThematicBreak: {"ThematicBreak", true},
		NodeHTMLBlock:     {"HTMLBlock", true},
		NodeText:          {"Text", false},
		NodeEmphasis:      {"Emphasis", false},
		NodeStrong:        {"Strong", false},
		NodeCodeSpan:      {"CodeSpan", false},
		NodeLink:          {"Link", false},
		NodeImage:         {"Image", false},
		NodeSoftBreak:     {"SoftBreak", false},
		NodeHardBreak:     {"HardBreak", false},
		NodeHTMLInline:    {"HTMLInline", false},
	}
	kindByName = func() map[string]NodeKind {
		m := make(map[string]NodeKind, len(kinds))
		for i, k := range kinds {
			m[k.name] = NodeKind(i)
		}
		return m
	}()
)

// RegisterKind allocates a node kind for an extension.
// Registering an already known name returns the existing kind, so extensions
// may be installed into several engines.
func RegisterKind(name string, block bool) NodeKind {
	kindMu.Lock()
	defer kindMu.Unlock()

	if kind, ok := kindByName[name]; ok {
		if kinds[kind].block != block {
			panic(fmt.Sprintf("mdast: kind %q re-registered with different block flag", name))
		}
		return kind
	}

	kind := NodeKind(len(kinds))
	kinds = append(kinds, kindInfo{name: name, block: block})
	kindByName[name] = kind
	return kind
}

// String returns the kind name.
func (k NodeKind) String() string {
	kindMu.RLock()
	defer kindMu.RUnlock()

	if int(k) < len(kinds) {
		return kinds[k].name
	}
	return fmt.Sprintf("NodeKind(%d)", uint16(k))
}

// IsBlock reports whether nodes of this kind are block-level.
func (k NodeKind) IsBlock() bool {
	kindMu.RLock()
	defer kindMu.RUnlock()

	return int(k) < len(kinds) && kinds[k].block
}

// IsBuiltin reports whether k is one of the CommonMark kinds.
func (k NodeKind) IsBuiltin() bool {
	return k < numBuiltinKinds
}

// Node represents a single node in the document tree.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree links. Only the child list of the parent owns a node.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Pos is the source span. Zero for synthetic nodes.
	Pos SourcePosition

	// Block holds attributes for block-level nodes.
	Block *BlockAttrs

	// Inline holds attributes for inline-level nodes.
	Inline *InlineAttrs

	// Ext holds extension-specific attributes (heading ids, front matter).
	Ext map[string]any
}

// IsBlock returns true if this is a block-level node.
func (n *Node) IsBlock() bool {
	return n.Kind.IsBlock()
}

// IsInline returns true if this is an inline-level node.
func (n *Node) IsInline() bool {
	return !n.Kind.IsBlock()
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// Literal returns the literal content of the node: the text of Text,
// CodeSpan and HTMLInline nodes, or the body of CodeBlock and HTMLBlock nodes.
func (n *Node) Literal() []byte {
	if n.Inline != nil && n.Inline.Text != nil {
		return n.Inline.Text
	}
	if n.Block != nil {
		return n.Block.Literal
	}
	return nil
}

// SetExt stores an extension attribute on the node.
func (n *Node) SetExt(key string, value any) {
	if n.Ext == nil {
		n.Ext = make(map[string]any)
	}
	n.Ext[key] = value
}

// ExtString returns an extension attribute as a string.
func (n *Node) ExtString(key string) (string, bool) {
	value, ok := n.Ext[key]
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}
