package pretty

import (
	"fmt"
	"strings"
)

// FormatMismatch shows where two renderings of path first differ: the
// differing line number and both versions of that line.
func (s *Styles) FormatMismatch(path string, line int, ours, reference string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", s.FilePath.Render(path), s.Dim.Render(fmt.Sprintf(":%d", line)))
	fmt.Fprintf(&b, "  %s %s\n", s.DiffRemove.Render("- gomdkit  "), s.DiffRemove.Render(printable(ours)))
	fmt.Fprintf(&b, "  %s %s\n", s.DiffAdd.Render("+ goldmark "), s.DiffAdd.Render(printable(reference)))
	return b.String()
}

func printable(line string) string {
	if line == "" {
		return "(end of output)"
	}
	return quoteTruncated(line)
}
