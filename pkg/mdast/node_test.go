package mdast_test

import (
	"testing"

	"github.com/yaklabco/gomdkit/pkg/mdast"
)

func TestNode_IsBlock(t *testing.T) {
	t.Parallel()

	blockKinds := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeParagraph,
		mdast.NodeHeading,
		mdast.NodeList,
		mdast.NodeListItem,
		mdast.NodeBlockquote,
		mdast.NodeCodeBlock,
		mdast.NodeThematicBreak,
		mdast.NodeHTMLBlock,
	}

	for _, kind := range blockKinds {
		node := &mdast.Node{Kind: kind}
		if !node.IsBlock() {
			t.Errorf("expected %s to be block", kind)
		}
	}

	inlineKinds := []mdast.NodeKind{
		mdast.NodeText,
		mdast.NodeEmphasis,
		mdast.NodeStrong,
		mdast.NodeCodeSpan,
		mdast.NodeLink,
	}

	for _, kind := range inlineKinds {
		node := &mdast.Node{Kind: kind}
		if node.IsBlock() {
			t.Errorf("expected %s to not be block", kind)
		}
	}
}

func TestNode_IsInline(t *testing.T) {
	t.Parallel()

	inlineKinds := []mdast.NodeKind{
		mdast.NodeText,
		mdast.NodeEmphasis,
		mdast.NodeStrong,
		mdast.NodeCodeSpan,
		mdast.NodeLink,
		mdast.NodeImage,
		mdast.NodeSoftBreak,
		mdast.NodeHardBreak,
		mdast.NodeHTMLInline,
	}

	for _, kind := range inlineKinds {
		node := &mdast.Node{Kind: kind}
		if !node.IsInline() {
			t.Errorf("expected %s to be inline", kind)
		}
	}

	blockKinds := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeParagraph,
		mdast.NodeHeading,
	}

	for _, kind := range blockKinds {
		node := &mdast.Node{Kind: kind}
		if node.IsInline() {
			t.Errorf("expected %s to not be inline", kind)
		}
	}
}

func TestNode_HasChildren(t *testing.T) {
	t.Parallel()

	parent := mdast.NewNode(mdast.NodeDocument)
	child := mdast.NewNode(mdast.NodeParagraph)

	if parent.HasChildren() {
		t.Error("expected empty node to have no children")
	}

	mdast.AppendChild(parent, child)

	if !parent.HasChildren() {
		t.Error("expected node with child to have children")
	}
}

func TestNode_ChildCount(t *testing.T) {
	t.Parallel()

	parent := mdast.NewNode(mdast.NodeDocument)

	if parent.ChildCount() != 0 {
		t.Errorf("expected 0 children, got %d", parent.ChildCount())
	}

	mdast.AppendChild(parent, mdast.NewNode(mdast.NodeParagraph))
	if parent.ChildCount() != 1 {
		t.Errorf("expected 1 child, got %d", parent.ChildCount())
	}

	mdast.AppendChild(parent, mdast.NewNode(mdast.NodeParagraph))
	mdast.AppendChild(parent, mdast.NewNode(mdast.NodeParagraph))
	if parent.ChildCount() != 3 {
		t.Errorf("expected 3 children, got %d", parent.ChildCount())
	}
}

func TestNode_Children(t *testing.T) {
	t.Parallel()

	parent := mdast.NewNode(mdast.NodeDocument)
	child1 := mdast.NewNode(mdast.NodeParagraph)
	child2 := mdast.NewNode(mdast.NodeHeading)
	child3 := mdast.NewNode(mdast.NodeCodeBlock)

	mdast.AppendChild(parent, child1)
	mdast.AppendChild(parent, child2)
	mdast.AppendChild(parent, child3)

	children := parent.Children()

	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}

	if children[0] != child1 || children[1] != child2 || children[2] != child3 {
		t.Error("children not in expected order")
	}
}

func TestNodeKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     mdast.NodeKind
		expected string
	}{
		{mdast.NodeDocument, "Document"},
		{mdast.NodeBlockquote, "Blockquote"},
		{mdast.NodeHTMLBlock, "HTMLBlock"},
		{mdast.NodeText, "Text"},
		{mdast.NodeHardBreak, "HardBreak"},
		{mdast.NodeKind(60000), "NodeKind(60000)"},
	}

	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, want %q", tc.kind, got, tc.expected)
		}
	}
}

func TestRegisterKind(t *testing.T) {
	t.Parallel()

	callout := mdast.RegisterKind("TestCallout", true)
	mark := mdast.RegisterKind("TestMark", false)

	if callout.IsBuiltin() || mark.IsBuiltin() {
		t.Error("registered kinds must not be builtin")
	}
	if callout == mark {
		t.Fatal("distinct names must get distinct kinds")
	}
	if !callout.IsBlock() || mark.IsBlock() {
		t.Error("block flag not recorded")
	}
	if callout.String() != "TestCallout" {
		t.Errorf("String() = %q", callout.String())
	}
	if again := mdast.RegisterKind("TestCallout", true); again != callout {
		t.Errorf("re-registering returned %d, want %d", again, callout)
	}

	node := mdast.NewNode(mark)
	if !node.IsInline() || node.Inline == nil {
		t.Error("inline extension node should carry inline attributes")
	}
}

func TestRegisterKind_ConflictingBlockFlagPanics(t *testing.T) {
	t.Parallel()

	mdast.RegisterKind("TestConflict", true)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	mdast.RegisterKind("TestConflict", false)
}

func TestNode_Literal(t *testing.T) {
	t.Parallel()

	text := mdast.NewText([]byte("hi"))
	if string(text.Literal()) != "hi" {
		t.Errorf("text literal = %q", text.Literal())
	}

	code := mdast.NewNode(mdast.NodeCodeBlock)
	code.Block.Literal = []byte("x := 1\n")
	if string(code.Literal()) != "x := 1\n" {
		t.Errorf("code literal = %q", code.Literal())
	}

	if mdast.NewNode(mdast.NodeParagraph).Literal() != nil {
		t.Error("paragraph has no literal")
	}
}

func TestNode_Ext(t *testing.T) {
	t.Parallel()

	node := mdast.NewNode(mdast.NodeHeading)
	if _, ok := node.ExtString("id"); ok {
		t.Error("unexpected id on fresh node")
	}

	node.SetExt("id", "intro")
	node.SetExt("count", 3)

	if id, ok := node.ExtString("id"); !ok || id != "intro" {
		t.Errorf("ExtString(id) = %q, %v", id, ok)
	}
	if _, ok := node.ExtString("count"); ok {
		t.Error("non-string value must not be returned as string")
	}
}
