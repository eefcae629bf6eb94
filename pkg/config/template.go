package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yaklabco/gomdkit/pkg/ext"
)

// commentWrapWidth is the maximum width of wrapped template comments.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full documents every setting and extension. Otherwise only the
	// common settings are shown.
	Full bool
}

// DefaultTemplateHeader returns the header of generated config files.
func DefaultTemplateHeader() string {
	return `# gomdkit configuration
# See: https://github.com/yaklabco/gomdkit`
}

// GenerateTemplate creates a commented .gomdkit.yml. Every value in it is
// the default, so loading it changes nothing until it is edited.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Output format: html or text
format: html

# Extensions to enable
extensions: []
`)
	if opts.Full {
		for _, name := range ext.Names() {
			fmt.Fprintf(&buf, "#   - %s  # %s\n", name, wrapComment(ext.Description(name), commentWrapWidth))
		}
	}

	buf.WriteString(`
html:
  # Keep raw HTML; when false it is replaced by a comment
  unsafe: true
  # Self-close void elements such as <br />
  xhtml: true
`)
	if opts.Full {
		buf.WriteString(`  # String written for soft line breaks
  soft_break: "\n"
  # Guess the language of unlabeled fenced code
  detect_language: false
`)
	}

	buf.WriteString(`
text:
  # Indentation of nested lists and code, in columns
  indent: 3
  # Reflow paragraphs to this width (0 = off)
  wrap_width: 0
`)

	if opts.Full {
		buf.WriteString(`
heading_id:
  # github or slug
  style: github

# File patterns the batch renderer skips
# ignore:
#   - "vendor/**"
#   - "node_modules/**"
`)
	}

	return buf.Bytes()
}

// wrapComment wraps text to width, continuing on indented comment lines.
func wrapComment(text string, width int) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n#     ")
}
