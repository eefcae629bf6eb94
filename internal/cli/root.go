// Package cli provides the Cobra command structure for gomdkit.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdkit/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root gomdkit command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "gomdkit",
		Short: "A CommonMark Markdown renderer",
		Long: `gomdkit parses Markdown following CommonMark and renders it to HTML or
plain text.

Optional extensions add strikethrough, heading ids and front matter. Whole
directory trees can be rendered in parallel, and the crosscheck command
compares the output against goldmark as a reference renderer.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if global.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&global.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newRenderCommand(global))
	rootCmd.AddCommand(newASTCommand(global))
	rootCmd.AddCommand(newCrosscheckCommand(global))
	rootCmd.AddCommand(newExtensionsCommand())
	rootCmd.AddCommand(newConfigCommand(global))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	applyHelp(rootCmd, global.color, os.Stdout)

	return rootCmd
}
