package crosscheck

import (
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// mapDocument converts the block structure of a goldmark document into an
// mdast tree. Inline content is not mapped.
func mapDocument(gmDoc ast.Node, src []byte) *mdast.Node {
	doc := mdast.NewDocument()
	mapChildren(gmDoc, doc, src)
	return doc
}

func mapChildren(gmParent ast.Node, parent *mdast.Node, src []byte) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if child.Type() != ast.TypeBlock {
			continue
		}
		if node := mapBlock(child, src); node != nil {
			mdast.AppendChild(parent, node)
		}
	}
}

func mapBlock(gmNode ast.Node, src []byte) *mdast.Node {
	var node *mdast.Node

	switch gmn := gmNode.(type) {
	case *ast.Heading:
		node = mdast.NewNode(mdast.NodeHeading)
		node.Block.HeadingLevel = gmn.Level

	case *ast.Paragraph, *ast.TextBlock:
		// goldmark uses TextBlock for paragraphs of tight list items.
		node = mdast.NewNode(mdast.NodeParagraph)

	case *ast.List:
		node = mdast.NewNode(mdast.NodeList)
		node.Block.List = mapList(gmn)

	case *ast.ListItem:
		node = mdast.NewNode(mdast.NodeListItem)

	case *ast.Blockquote:
		node = mdast.NewNode(mdast.NodeBlockquote)

	case *ast.FencedCodeBlock:
		node = mdast.NewNode(mdast.NodeCodeBlock)
		info := ""
		if gmn.Info != nil {
			info = strings.TrimSpace(string(gmn.Info.Segment.Value(src)))
		}
		node.Block.CodeBlock = &mdast.CodeBlockAttrs{Info: info}

	case *ast.CodeBlock:
		node = mdast.NewNode(mdast.NodeCodeBlock)
		node.Block.CodeBlock = &mdast.CodeBlockAttrs{Indented: true}

	case *ast.ThematicBreak:
		node = mdast.NewNode(mdast.NodeThematicBreak)

	case *ast.HTMLBlock:
		node = mdast.NewNode(mdast.NodeHTMLBlock)

	default:
		return nil
	}

	mapChildren(gmNode, node, src)
	return node
}

func mapList(list *ast.List) *mdast.ListAttrs {
	attrs := &mdast.ListAttrs{Tight: list.IsTight}
	if list.IsOrdered() {
		attrs.Ordered = true
		attrs.StartNumber = list.Start
		attrs.Delimiter = string(list.Marker)
		return attrs
	}
	attrs.BulletMarker = string(list.Marker)
	return attrs
}

// skeleton lists the built-in block nodes under root in pre-order, one
// line each, indented two spaces per level with Dump-style attributes.
// Extension blocks are skipped with their subtrees.
func skeleton(root *mdast.Node) []string {
	var lines []string
	var walk func(n *mdast.Node, depth int)
	walk = func(n *mdast.Node, depth int) {
		for child := n.FirstChild; child != nil; child = child.Next {
			if !child.IsBlock() || !child.Kind.IsBuiltin() {
				continue
			}
			line := strings.Repeat("  ", depth) + child.Kind.String()
			if attrs := mdast.Attrs(child); attrs != "" {
				line += "[" + attrs + "]"
			}
			lines = append(lines, line)
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return lines
}
