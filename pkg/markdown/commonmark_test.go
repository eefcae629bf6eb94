package markdown_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// conformanceFile holds the examples of CommonMark 0.31.2 with their
// reference HTML.
const conformanceFile = "commonmark-0.31.2.json"

type conformanceExample struct {
	Example  int    `json:"example"`
	Section  string `json:"section"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// testdataDir returns the absolute path to the testdata directory.
func testdataDir(t *testing.T) string {
	t.Helper()

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get test file path")
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

func loadConformance(t *testing.T) []conformanceExample {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(testdataDir(t), conformanceFile))
	require.NoError(t, err)

	var examples []conformanceExample
	require.NoError(t, json.Unmarshal(data, &examples))
	require.NotEmpty(t, examples)
	return examples
}

func runConformance(t *testing.T, examples []conformanceExample) {
	t.Helper()

	engine := markdown.New()
	for _, ex := range examples {
		name := strings.ReplaceAll(ex.Section, " ", "_") + "/" + strconv.Itoa(ex.Example)
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := engine.ConvertString(ex.Markdown, markdown.FormatHTML)
			require.NoError(t, err)
			assert.Equal(t, ex.HTML, got, "markdown: %q", ex.Markdown)
		})
	}
}

func TestCommonMark(t *testing.T) {
	t.Parallel()

	examples := loadConformance(t)
	assert.Len(t, examples, 652)
	runConformance(t, examples)
}

// The emphasis section pins the delimiter rules: left/right flanking runs,
// intraword '_', the rule of 3, and the openers-bottom search limits.
func TestCommonMark_Emphasis(t *testing.T) {
	t.Parallel()

	var emphasis []conformanceExample
	for _, ex := range loadConformance(t) {
		if ex.Section == "Emphasis and strong emphasis" {
			emphasis = append(emphasis, ex)
		}
	}
	require.Len(t, emphasis, 132)
	assert.Equal(t, 350, emphasis[0].Example)
	assert.Equal(t, 481, emphasis[len(emphasis)-1].Example)

	runConformance(t, emphasis)
}
