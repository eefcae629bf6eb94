package crosscheck_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/crosscheck"
	"github.com/yaklabco/gomdkit/pkg/ext/frontmatter"
	"github.com/yaklabco/gomdkit/pkg/ext/headingid"
	"github.com/yaklabco/gomdkit/pkg/ext/strikethrough"
	"github.com/yaklabco/gomdkit/pkg/fsutil"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

func TestCheck_Agrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "heading and list", src: "# T\n\n- a\n- b\n"},
		{name: "ordered paren", src: "3) a\n4) b\n"},
		{name: "emphasis", src: "**a *b* c**\n"},
		{name: "reference link", src: "[x]\n\n[x]: /u \"t\"\n"},
		{name: "blockquote code", src: "> ```go\n> x\n> ```\n"},
		{name: "loose list", src: "- a\n\n- b\n"},
		{name: "hard break", src: "a  \nb\n"},
	}

	checker := crosscheck.New(markdown.New(), crosscheck.DefaultOptions())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := checker.Check([]byte(tt.src))
			require.NoError(t, err)
			assert.Nil(t, result.HTML)
			assert.Nil(t, result.Blocks)
			assert.True(t, result.Equal())
		})
	}
}

func TestCheck_Extensions(t *testing.T) {
	t.Parallel()

	engine := markdown.New(markdown.WithExtensions(strikethrough.New(), headingid.New(), frontmatter.New()))
	checker := crosscheck.New(engine, crosscheck.DefaultOptions())

	result, err := checker.Check([]byte("---\ntitle: x\n---\n# Intro\n\n~~gone~~\n"))
	require.NoError(t, err)
	assert.True(t, result.Equal(), "html: %+v blocks: %+v", result.HTML, result.Blocks)
}

func TestCheck_ReportsFirstDifference(t *testing.T) {
	t.Parallel()

	// The engine keeps raw HTML; the reference is told to omit it.
	checker := crosscheck.New(markdown.New(), crosscheck.Options{XHTML: true})

	result, err := checker.Check([]byte("# T\n\n<div>x</div>\n"))
	require.NoError(t, err)
	require.NotNil(t, result.HTML)
	assert.Equal(t, 2, result.HTML.Line)
	assert.Equal(t, "<div>x</div>", result.HTML.Ours)
	assert.Equal(t, "<!-- raw HTML omitted -->", result.HTML.Reference)
	assert.Nil(t, result.Blocks, "block structure still agrees")
	assert.False(t, result.Equal())
}

func TestCheckFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.md")
	require.NoError(t, os.WriteFile(path, []byte("*a*\n"), 0o644))

	checker := crosscheck.New(markdown.New(), crosscheck.DefaultOptions())
	result, err := checker.CheckFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.True(t, result.Equal())

	_, err = checker.CheckFile(context.Background(), filepath.Join(dir, "missing.md"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)
}
