package strikethrough_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/ext/strikethrough"
	"github.com/yaklabco/gomdkit/pkg/markdown"
	"github.com/yaklabco/gomdkit/pkg/mdast"
)

func TestStrikethrough_HTML(t *testing.T) {
	t.Parallel()

	engine := markdown.New(markdown.WithExtensions(strikethrough.New()))

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "double", src: "~~gone~~", want: "<p><del>gone</del></p>\n"},
		{name: "single", src: "~gone~", want: "<p><del>gone</del></p>\n"},
		{name: "mismatched lengths", src: "~~a~", want: "<p>~~a~</p>\n"},
		{name: "triple is literal", src: "~~~a~~~", want: "<p>~~~a~~~</p>\n"},
		{name: "nested emphasis", src: "~~a *b*~~", want: "<p><del>a <em>b</em></del></p>\n"},
		{name: "inside emphasis", src: "*~~a~~*", want: "<p><em><del>a</del></em></p>\n"},
		{name: "unclosed", src: "~~a", want: "<p>~~a</p>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := engine.ConvertString(tt.src, markdown.FormatHTML)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStrikethrough_Text(t *testing.T) {
	t.Parallel()

	engine := markdown.New(markdown.WithExtensions(strikethrough.New()))
	got, err := engine.ConvertString("a ~~b~~ c", markdown.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "a b c\n", got)
}

func TestStrikethrough_Tree(t *testing.T) {
	t.Parallel()

	engine := markdown.New(markdown.WithExtensions(strikethrough.New()))
	doc := engine.Parse([]byte("~~a~~"))

	para := doc.Root.FirstChild
	require.NotNil(t, para)
	assert.Equal(t, `Strikethrough(Text("a"))`, mdast.DumpChildren(para))
	assert.Equal(t, "~~", para.FirstChild.Inline.Delimiter)
}

func TestStrikethrough_DisabledByDefault(t *testing.T) {
	t.Parallel()

	got, err := markdown.New().ConvertString("~~a~~", markdown.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "<p>~~a~~</p>\n", got)
}
