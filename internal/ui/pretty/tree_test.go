package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdkit/internal/ui/pretty"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

func TestFormatTree(t *testing.T) {
	t.Parallel()

	doc := markdown.New().Parse([]byte("# T\n\n- a\n- *b*\n"))
	got := pretty.NewStyles(false).FormatTree(doc.Root, pretty.TreeOptions{})

	want := strings.Join([]string{
		"Document",
		"├── Heading[1]",
		"│   └── Text \"T\"",
		"└── List[bullet - tight]",
		"    ├── ListItem",
		"    │   └── Paragraph",
		"    │       └── Text \"a\"",
		"    └── ListItem",
		"        └── Paragraph",
		"            └── Emphasis",
		"                └── Text \"b\"",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatTree_Positions(t *testing.T) {
	t.Parallel()

	doc := markdown.New().Parse([]byte("para\n"))
	got := pretty.NewStyles(false).FormatTree(doc.Root, pretty.TreeOptions{Positions: true})
	assert.Contains(t, got, "Paragraph @1:1-")
}

func TestFormatTree_TruncatesLongLiterals(t *testing.T) {
	t.Parallel()

	doc := markdown.New().Parse([]byte(strings.Repeat("x", 200)))
	got := pretty.NewStyles(false).FormatTree(doc.Root, pretty.TreeOptions{})
	assert.Contains(t, got, "…")
	assert.Less(t, len(got), 150)
}

func TestFormatMismatch(t *testing.T) {
	t.Parallel()

	got := pretty.NewStyles(false).FormatMismatch("a.md", 3, "<p>a</p>", "")
	assert.Equal(t, "a.md:3\n  - gomdkit   \"<p>a</p>\"\n  + goldmark  (end of output)\n", got)
}
