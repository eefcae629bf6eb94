package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/gomdkit/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatBytes formats a byte count with a binary unit, e.g. "1.5 KiB".
func FormatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return strconv.Itoa(n) + " B"
	}
	div, exp := unit, 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatSummaryOneLine formats run statistics as a single line, e.g.
// "Rendered 3 files (2.0 KiB → 3.1 KiB) in 4ms, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	parts := []string{
		s.Success.Render(fmt.Sprintf("Rendered %d %s", stats.FilesRendered, plural(stats.FilesRendered))) +
			s.Dim.Render(fmt.Sprintf(" (%s → %s) in %s",
				FormatBytes(stats.BytesIn), FormatBytes(stats.BytesOut), stats.Duration.Round(time.Millisecond))),
	}
	if stats.FilesUnchanged > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d unchanged", stats.FilesUnchanged)))
	}
	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var b strings.Builder

	row := func(label string, value string) {
		fmt.Fprintf(&b, "  %-18s %s\n", label+":", value)
	}

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	row("Files found", s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)))
	row("Files rendered", s.SummaryValue.Render(strconv.Itoa(stats.FilesRendered)))
	if stats.FilesUnchanged > 0 {
		row("Files unchanged", s.Dim.Render(strconv.Itoa(stats.FilesUnchanged)))
	}
	if stats.FilesFailed > 0 {
		row("Files failed", s.Failure.Render(strconv.Itoa(stats.FilesFailed)))
	}
	row("Input", s.SummaryValue.Render(FormatBytes(stats.BytesIn)))
	row("Output", s.SummaryValue.Render(FormatBytes(stats.BytesOut)))
	row("Duration", s.SummaryValue.Render(stats.Duration.Round(time.Millisecond).String()))

	b.WriteString("\n")
	if stats.FilesFailed > 0 {
		b.WriteString(s.Failure.Render("Render failed"))
	} else {
		b.WriteString(s.Success.Render("Render complete"))
	}
	b.WriteString("\n")
	return b.String()
}
