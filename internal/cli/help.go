package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdkit/internal/ui/pretty"
)

// helpStyles styles the parts of command help.
type helpStyles struct {
	command lipgloss.Style
	heading lipgloss.Style
	name    lipgloss.Style
	flag    lipgloss.Style
	dim     lipgloss.Style
}

func newHelpStyles(colorEnabled bool) helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return helpStyles{command: plain, heading: plain, name: plain, flag: plain, dim: plain}
	}
	return helpStyles{
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		heading: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ name (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

// applyHelp installs lipgloss-styled help and usage output on cmd and its
// subcommands. Color follows the same auto/always/never rules as the rest
// of the output.
func applyHelp(cmd *cobra.Command, colorMode string, w io.Writer) {
	styles := newHelpStyles(pretty.IsColorEnabled(colorMode, w))

	tmpl := template.Must(template.New("help").Funcs(template.FuncMap{
		"heading":   styles.heading.Render,
		"command":   styles.command.Render,
		"name":      styles.name.Render,
		"dim":       styles.dim.Render,
		"flags":     func(usages string) string { return styleFlagUsages(styles, usages) },
		"rpad":      rpad,
		"trimRight": trimTrailingWhitespace,
	}).Parse(helpTemplate))

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := tmpl.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return tmpl.Execute(c.OutOrStderr(), c)
	})
}

// styleFlagUsages colors the flag names in pflag's usage text. A usage line
// looks like "  -f, --format string   output format"; the flag column ends
// at the first run of two or more spaces.
func styleFlagUsages(styles helpStyles, usages string) string {
	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]

		flagPart, desc, ok := strings.Cut(trimmed, "  ")
		if !ok {
			continue
		}

		var b strings.Builder
		for j, tok := range strings.Fields(flagPart) {
			if j > 0 {
				b.WriteByte(' ')
			}
			if strings.HasPrefix(tok, "-") {
				b.WriteString(styles.flag.Render(strings.TrimSuffix(tok, ",")))
				if strings.HasSuffix(tok, ",") {
					b.WriteByte(',')
				}
			} else {
				b.WriteString(styles.dim.Render(tok))
			}
		}
		lines[i] = indent + b.String() + "   " + strings.TrimLeft(desc, " ")
	}
	return strings.Join(lines, "\n")
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
