package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdkit/internal/ui/pretty"
	"github.com/yaklabco/gomdkit/pkg/ext"
)

func newExtensionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "extensions",
		Aliases: []string{"ext"},
		Short:   "List the available syntax extensions",
		Long: `List the syntax extensions that can be enabled with the extensions
setting or the --extension flag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}

			out := cmd.OutOrStdout()
			name := lipgloss.NewStyle()
			if pretty.IsColorEnabled(colorMode, out) {
				name = name.Bold(true).Foreground(lipgloss.Color("6"))
			}

			names := ext.Names()
			width := 0
			for _, n := range names {
				width = max(width, len(n))
			}
			for _, n := range names {
				if _, err := fmt.Fprintf(out, "%s  %s\n", name.Render(rpad(n, width)), ext.Description(n)); err != nil {
					return fmt.Errorf("write: %w", err)
				}
			}
			return nil
		},
	}
}
