package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/config"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies slices and pointers", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.Extensions = []string{"strikethrough"}
		original.Ignore = []string{"vendor/**"}
		original.Jobs = 4
		original.OutDir = "out"

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		clone.Extensions[0] = "heading-id"
		clone.Ignore[0] = "x"
		*clone.HTML.Unsafe = false

		assert.Equal(t, "strikethrough", original.Extensions[0])
		assert.Equal(t, "vendor/**", original.Ignore[0])
		assert.True(t, *original.HTML.Unsafe)
	})
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(`
format: text
extensions: [strikethrough, heading-id]
html:
  unsafe: false
text:
  indent: 2
  wrap_width: 72
heading_id:
  style: slug
`))
	require.NoError(t, err)

	assert.Equal(t, markdown.FormatText, cfg.Format)
	assert.Equal(t, []string{"strikethrough", "heading-id"}, cfg.Extensions)
	require.NotNil(t, cfg.HTML.Unsafe)
	assert.False(t, *cfg.HTML.Unsafe)
	assert.Nil(t, cfg.HTML.XHTML)
	assert.Equal(t, 2, cfg.Text.Indent)
	assert.Equal(t, 72, cfg.Text.WrapWidth)
	assert.Equal(t, "slug", cfg.HeadingID.Style)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("format: [unclosed"))
	require.Error(t, err)
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.Extensions = []string{"frontmatter"}
	original.Jobs = 8

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "jobs")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original.Format, parsed.Format)
	assert.Equal(t, original.Extensions, parsed.Extensions)
	assert.Equal(t, original.HTML, parsed.HTML)
	assert.Equal(t, original.Text, parsed.Text)
	assert.Zero(t, parsed.Jobs)
}

func TestToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	data, err := config.NewConfig().ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# header\n\nformat: html\n"))
}
