package mdast

import (
	"strconv"
	"strings"
)

// Dump renders the subtree rooted at n in a compact, single-line form such as
//
//	Strong(Text("a "), Emphasis(Text("b")), Text(" c"))
//
// Attributes appear in square brackets after the kind name:
// Heading[2], Link[/u "t"], List[ordered start=3 tight].
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n)
	return sb.String()
}

// DumpChildren dumps each child of n, separated by ", ".
func DumpChildren(n *Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.Next {
		if child != n.FirstChild {
			sb.WriteString(", ")
		}
		dump(&sb, child)
	}
	return sb.String()
}

func dump(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}

	sb.WriteString(n.Kind.String())
	if attrs := Attrs(n); attrs != "" {
		sb.WriteByte('[')
		sb.WriteString(attrs)
		sb.WriteByte(']')
	}

	literal := n.Literal()
	if literal == nil && n.Block != nil {
		// Unresolved inline content of a freshly block-parsed leaf.
		literal = n.Block.Raw
	}
	if !n.HasChildren() && literal == nil {
		return
	}

	sb.WriteByte('(')
	if literal != nil {
		sb.WriteString(strconv.Quote(string(literal)))
	}
	for child := n.FirstChild; child != nil; child = child.Next {
		if child != n.FirstChild || literal != nil {
			sb.WriteString(", ")
		}
		dump(sb, child)
	}
	sb.WriteByte(')')
}

// Attrs returns the attribute text Dump shows in brackets after the kind
// name, or "" when n has none.
func Attrs(n *Node) string {
	switch n.Kind {
	case NodeHeading:
		return strconv.Itoa(n.Block.HeadingLevel)
	case NodeLink, NodeImage:
		link := n.Inline.Link
		if link == nil {
			return ""
		}
		if link.Title == "" {
			return link.Destination
		}
		return link.Destination + " " + strconv.Quote(link.Title)
	case NodeList:
		return dumpListAttrs(n.Block.List)
	case NodeCodeBlock:
		if cb := n.Block.CodeBlock; cb != nil && cb.Info != "" {
			return cb.Info
		}
	}
	return ""
}

func dumpListAttrs(list *ListAttrs) string {
	if list == nil {
		return ""
	}

	var parts []string
	if list.Ordered {
		parts = append(parts, "ordered", "start="+strconv.Itoa(list.StartNumber))
		if list.Delimiter != "." {
			parts = append(parts, "delim="+list.Delimiter)
		}
	} else {
		parts = append(parts, "bullet", list.BulletMarker)
	}
	if list.Tight {
		parts = append(parts, "tight")
	} else {
		parts = append(parts, "loose")
	}
	return strings.Join(parts, " ")
}
