package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/config"
)

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	defaults := config.NewConfig()

	for _, full := range []bool{false, true} {
		data := config.GenerateTemplate(config.TemplateOptions{Full: full})

		cfg, err := config.FromYAML(data)
		require.NoError(t, err, "full=%v", full)

		assert.Equal(t, defaults.Format, cfg.Format)
		assert.Empty(t, cfg.Extensions)
		assert.Equal(t, defaults.HTMLOptions().Unsafe, cfg.HTMLOptions().Unsafe)
		assert.Equal(t, defaults.TextOptions(), cfg.TextOptions())
	}
}

func TestGenerateTemplate_FullListsExtensions(t *testing.T) {
	t.Parallel()

	data := string(config.GenerateTemplate(config.TemplateOptions{Full: true}))
	assert.Contains(t, data, "#   - strikethrough")
	assert.Contains(t, data, "#   - heading-id")
	assert.Contains(t, data, "#   - frontmatter")
	assert.Contains(t, data, "heading_id:")

	minimal := string(config.GenerateTemplate(config.TemplateOptions{}))
	assert.NotContains(t, minimal, "heading_id:")
}
