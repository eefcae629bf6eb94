package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/mdast"
)

// texts returns the text of each child of parent, in order, and checks
// that the sibling links agree in both directions.
func texts(t *testing.T, parent *mdast.Node) []string {
	t.Helper()

	var out []string
	var prev *mdast.Node
	for c := parent.FirstChild; c != nil; c = c.Next {
		require.Same(t, parent, c.Parent)
		require.Same(t, prev, c.Prev)
		out = append(out, string(c.Inline.Text))
		prev = c
	}
	require.Same(t, prev, parent.LastChild)
	return out
}

func paragraphOf(words ...string) (*mdast.Node, []*mdast.Node) {
	para := mdast.NewNode(mdast.NodeParagraph)
	nodes := make([]*mdast.Node, len(words))
	for i, w := range words {
		nodes[i] = mdast.NewText([]byte(w))
		mdast.AppendChild(para, nodes[i])
	}
	return para, nodes
}

func TestNewNode_Attrs(t *testing.T) {
	t.Parallel()

	block := mdast.NewNode(mdast.NodeBlockquote)
	assert.NotNil(t, block.Block)
	assert.Nil(t, block.Inline)

	inl := mdast.NewNode(mdast.NodeLink)
	assert.Nil(t, inl.Block)
	assert.NotNil(t, inl.Inline)

	assert.Equal(t, mdast.NodeDocument, mdast.NewDocument().Kind)
	assert.Equal(t, "x", string(mdast.NewText([]byte("x")).Inline.Text))
}

func TestAppendChild(t *testing.T) {
	t.Parallel()

	para, _ := paragraphOf("a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, texts(t, para))

	mdast.AppendChild(nil, mdast.NewText(nil))
	mdast.AppendChild(para, nil)
	assert.Equal(t, 3, para.ChildCount())
}

func TestAppendChild_Moves(t *testing.T) {
	t.Parallel()

	from, nodes := paragraphOf("a", "b")
	to, _ := paragraphOf("x")

	mdast.AppendChild(to, nodes[0])

	assert.Equal(t, []string{"b"}, texts(t, from))
	assert.Equal(t, []string{"x", "a"}, texts(t, to))
}

func TestInsertBefore(t *testing.T) {
	t.Parallel()

	para, nodes := paragraphOf("b", "d")
	mdast.InsertBefore(nodes[0], mdast.NewText([]byte("a")))
	mdast.InsertBefore(nodes[1], mdast.NewText([]byte("c")))
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts(t, para))

	detached := mdast.NewText([]byte("z"))
	mdast.InsertBefore(detached, mdast.NewText([]byte("y")))
	assert.Nil(t, detached.Prev)
}

func TestInsertAfter(t *testing.T) {
	t.Parallel()

	para, nodes := paragraphOf("a", "c")
	mdast.InsertAfter(nodes[0], mdast.NewText([]byte("b")))
	mdast.InsertAfter(nodes[1], mdast.NewText([]byte("d")))
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts(t, para))

	mdast.InsertAfter(nodes[0], nodes[0])
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts(t, para))
}

func TestUnlink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		remove int
		want   []string
	}{
		{name: "first", remove: 0, want: []string{"b", "c"}},
		{name: "middle", remove: 1, want: []string{"a", "c"}},
		{name: "last", remove: 2, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			para, nodes := paragraphOf("a", "b", "c")
			mdast.Unlink(nodes[tt.remove])

			assert.Equal(t, tt.want, texts(t, para))
			assert.Nil(t, nodes[tt.remove].Parent)
			assert.Nil(t, nodes[tt.remove].Prev)
			assert.Nil(t, nodes[tt.remove].Next)
		})
	}

	mdast.Unlink(nil)
	mdast.Unlink(mdast.NewText(nil))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	para, nodes := paragraphOf("a", "b", "c", "d")
	emph := mdast.NewNode(mdast.NodeEmphasis)

	mdast.Wrap(emph, nodes[1], nodes[3])

	require.Equal(t, 3, para.ChildCount())
	assert.Same(t, emph, nodes[0].Next)
	assert.Same(t, nodes[3], emph.Next)
	assert.Equal(t, []string{"b", "c"}, texts(t, emph))
}

func TestWrap_ThroughLast(t *testing.T) {
	t.Parallel()

	para, nodes := paragraphOf("a", "b", "c")
	link := mdast.NewNode(mdast.NodeLink)

	mdast.Wrap(link, nodes[1], nil)

	assert.Same(t, link, para.LastChild)
	assert.Equal(t, []string{"b", "c"}, texts(t, link))
}

func TestWrap_Detached(t *testing.T) {
	t.Parallel()

	emph := mdast.NewNode(mdast.NodeEmphasis)
	mdast.Wrap(emph, mdast.NewText([]byte("x")), nil)
	assert.Nil(t, emph.FirstChild)
}
