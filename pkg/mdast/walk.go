package mdast

// WalkStatus tells Walk how to continue after a visit.
type WalkStatus int

// Walk statuses.
const (
	WalkContinue WalkStatus = iota
	// WalkSkipChildren, returned on entering, skips the node's children.
	// The node is still left.
	WalkSkipChildren
	// WalkStop ends the walk.
	WalkStop
)

// Visitor is called for every node twice: entering before its children
// and leaving after them.
type Visitor func(n *Node, entering bool) WalkStatus

// Walk visits root and its descendants depth first. It reports false when
// a visitor stopped the walk. A visitor may unlink the node it is visiting.
func Walk(root *Node, visit Visitor) bool {
	if root == nil {
		return true
	}
	return walk(root, visit) != WalkStop
}

func walk(n *Node, visit Visitor) WalkStatus {
	switch visit(n, true) {
	case WalkStop:
		return WalkStop
	case WalkSkipChildren:
	default:
		for child := n.FirstChild; child != nil; {
			next := child.Next
			if walk(child, visit) == WalkStop {
				return WalkStop
			}
			child = next
		}
	}
	if visit(n, false) == WalkStop {
		return WalkStop
	}
	return WalkContinue
}

// FindByKind returns the nodes of the given kind in document order. When
// kind is a block kind, inline subtrees are not entered.
func FindByKind(root *Node, kind NodeKind) []*Node {
	var found []*Node
	Walk(root, func(n *Node, entering bool) WalkStatus {
		if !entering {
			return WalkContinue
		}
		if n.Kind == kind {
			found = append(found, n)
		}
		if kind.IsBlock() && !n.IsBlock() {
			return WalkSkipChildren
		}
		return WalkContinue
	})
	return found
}

// TextContent concatenates the literal text of the Text and CodeSpan
// descendants of n, the way heading anchors see it. Soft and hard breaks
// contribute a single space.
func TextContent(n *Node) string {
	var buf []byte
	Walk(n, func(node *Node, entering bool) WalkStatus {
		if !entering {
			return WalkContinue
		}
		switch node.Kind {
		case NodeText, NodeCodeSpan:
			buf = append(buf, node.Inline.Text...)
		case NodeSoftBreak, NodeHardBreak:
			buf = append(buf, ' ')
		}
		return WalkContinue
	})
	return string(buf)
}
