package mdast

// NewNode creates a detached node of the given kind. Block kinds get an
// empty BlockAttrs, inline kinds an empty InlineAttrs.
func NewNode(kind NodeKind) *Node {
	node := &Node{Kind: kind}
	if kind.IsBlock() {
		node.Block = &BlockAttrs{}
	} else {
		node.Inline = &InlineAttrs{}
	}
	return node
}

// NewDocument creates an empty document root.
func NewDocument() *Node {
	return NewNode(NodeDocument)
}

// NewText creates a Text node holding text.
func NewText(text []byte) *Node {
	node := NewNode(NodeText)
	node.Inline.Text = text
	return node
}

// AppendChild makes child the last child of parent, detaching it from any
// previous position first.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}
	Unlink(child)

	child.Parent = parent
	child.Prev = parent.LastChild
	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// InsertBefore places n immediately before sibling, which must be attached.
func InsertBefore(sibling, n *Node) {
	if sibling == nil || n == nil || sibling == n || sibling.Parent == nil {
		return
	}
	Unlink(n)

	n.Parent = sibling.Parent
	n.Prev = sibling.Prev
	n.Next = sibling
	if sibling.Prev != nil {
		sibling.Prev.Next = n
	} else {
		sibling.Parent.FirstChild = n
	}
	sibling.Prev = n
}

// InsertAfter places n immediately after sibling, which must be attached.
func InsertAfter(sibling, n *Node) {
	if sibling == nil || n == nil || sibling == n || sibling.Parent == nil {
		return
	}
	Unlink(n)

	n.Parent = sibling.Parent
	n.Prev = sibling
	n.Next = sibling.Next
	if sibling.Next != nil {
		sibling.Next.Prev = n
	} else {
		sibling.Parent.LastChild = n
	}
	sibling.Next = n
}

// Unlink detaches n from its parent and siblings. Its own children stay.
func Unlink(n *Node) {
	if n == nil || n.Parent == nil {
		return
	}
	parent := n.Parent
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else {
		parent.FirstChild = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else {
		parent.LastChild = n.Prev
	}
	n.Parent, n.Prev, n.Next = nil, nil, nil
}

// Wrap moves the siblings from first up to, but excluding, end into wrapper,
// which takes first's place. A nil end wraps through the last sibling. This
// is how delimiter and bracket matches become Emphasis and Link nodes.
func Wrap(wrapper, first, end *Node) {
	if wrapper == nil || first == nil || first.Parent == nil {
		return
	}
	InsertBefore(first, wrapper)
	for node := first; node != nil && node != end; {
		next := node.Next
		AppendChild(wrapper, node)
		node = next
	}
}
