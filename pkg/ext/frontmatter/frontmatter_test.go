package frontmatter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/ext/frontmatter"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

func newEngine() *markdown.Engine {
	return markdown.New(markdown.WithExtensions(frontmatter.New()))
}

func TestFrontMatter_YAML(t *testing.T) {
	t.Parallel()

	engine := newEngine()
	doc := engine.Parse([]byte("---\ntitle: Hi\ntags: [a, b]\n---\n# Body\n"))

	data, ok := frontmatter.Data(doc)
	require.True(t, ok)
	require.NoError(t, frontmatter.Err(doc))
	assert.Equal(t, "Hi", data["title"])
	assert.Equal(t, []any{"a", "b"}, data["tags"])

	raw, ok := frontmatter.Raw(doc)
	require.True(t, ok)
	assert.Equal(t, "title: Hi\ntags: [a, b]\n", string(raw))
}

func TestFrontMatter_NotRendered(t *testing.T) {
	t.Parallel()

	engine := newEngine()

	got, err := engine.ConvertString("---\ntitle: Hi\n---\n# Body", markdown.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Body</h1>\n", got)

	got, err = engine.ConvertString("---\ntitle: Hi\n---\n# Body", markdown.FormatText)
	require.NoError(t, err)
	assert.Equal(t, "Body\n", got)
}

func TestFrontMatter_DotsClose(t *testing.T) {
	t.Parallel()

	doc := newEngine().Parse([]byte("---\nn: 1\n...\ntext"))
	data, ok := frontmatter.Data(doc)
	require.True(t, ok)
	assert.Equal(t, 1, data["n"])
}

func TestFrontMatter_TOML(t *testing.T) {
	t.Parallel()

	doc := newEngine().Parse([]byte("+++\ntitle = \"Hi\"\n+++\ntext"))
	data, ok := frontmatter.Data(doc)
	require.True(t, ok)
	assert.Equal(t, "Hi", data["title"])
}

func TestFrontMatter_NotFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "unclosed", src: "---\nfoo", want: "<hr />\n<p>foo</p>\n"},
		{name: "not on first line", src: "a\n\n---\nb: 1\n---", want: "<p>a</p>\n<hr />\n<h2>b: 1</h2>\n"},
		{name: "indented", src: " ---\nb\n---", want: "<hr />\n<h2>b</h2>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			engine := newEngine()
			got, err := engine.ConvertString(tt.src, markdown.FormatHTML)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, ok := frontmatter.Data(engine.Parse([]byte(tt.src)))
			assert.False(t, ok)
		})
	}
}

func TestFrontMatter_DecodeError(t *testing.T) {
	t.Parallel()

	doc := newEngine().Parse([]byte("---\nkey: [unclosed\n---\nbody"))

	_, ok := frontmatter.Data(doc)
	assert.False(t, ok)
	require.ErrorIs(t, frontmatter.Err(doc), frontmatter.ErrDecode)
}
