// Package pretty provides Lipgloss-based styled output for the gomdkit
// command: tree dumps, run summaries and crosscheck mismatches.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// Tree dump
	BlockKind  lipgloss.Style
	InlineKind lipgloss.Style
	Attr       lipgloss.Style
	Literal    lipgloss.Style
	Position   lipgloss.Style
	Guide      lipgloss.Style

	// Crosscheck
	DiffAdd    lipgloss.Style
	DiffRemove lipgloss.Style

	// Summary
	FilePath     lipgloss.Style
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates Styles; with colorEnabled false every style renders
// its input unchanged.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

	return &Styles{
		Error:   fg("9").Bold(true),
		Warning: fg("11").Bold(true),
		Success: fg("10").Bold(true),
		Failure: fg("9").Bold(true),

		BlockKind:  fg("12").Bold(true),
		InlineKind: fg("14"),
		Attr:       fg("11"),
		Literal:    fg("10"),
		Position:   fg("8"),
		Guide:      fg("8"),

		DiffAdd:    fg("10"),
		DiffRemove: fg("9"),

		FilePath:     lipgloss.NewStyle().Bold(true),
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),

		Dim:  fg("8"),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:        plain,
		Warning:      plain,
		Success:      plain,
		Failure:      plain,
		BlockKind:    plain,
		InlineKind:   plain,
		Attr:         plain,
		Literal:      plain,
		Position:     plain,
		Guide:        plain,
		DiffAdd:      plain,
		DiffRemove:   plain,
		FilePath:     plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
