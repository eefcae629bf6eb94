package ext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/ext"
	"github.com/yaklabco/gomdkit/pkg/ext/headingid"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"frontmatter", "heading-id", "strikethrough"}, ext.Names())
	for _, name := range ext.Names() {
		assert.NotEmpty(t, ext.Description(name), name)
	}
}

func TestNewRegistry_Aliases(t *testing.T) {
	t.Parallel()

	registry := ext.NewRegistry(ext.Settings{})

	got, ok := registry.Get("strike")
	require.True(t, ok)
	assert.Equal(t, "strikethrough", got.Name())
	assert.True(t, registry.Has("front-matter"))
	assert.False(t, registry.Has("tables"))
}

func TestNewRegistry_HeadingStyle(t *testing.T) {
	t.Parallel()

	registry := ext.NewRegistry(ext.Settings{HeadingIDStyle: headingid.StyleSlug})
	got, ok := registry.Get(headingid.Name)
	require.True(t, ok)

	hid, ok := got.(*headingid.Extension)
	require.True(t, ok)
	assert.Equal(t, headingid.StyleSlug, hid.Style())
}

func TestAllExtensionsTogether(t *testing.T) {
	t.Parallel()

	exts, err := ext.NewRegistry(ext.Settings{}).Resolve(ext.Names())
	require.NoError(t, err)

	engine := markdown.New(markdown.WithExtensions(exts...))
	got, err := engine.ConvertString("---\na: 1\n---\n# A ~~b~~\n", markdown.FormatHTML)
	require.NoError(t, err)
	assert.Equal(t, "<h1 id=\"a-b\">A <del>b</del></h1>\n", got)
}
