package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdkit/internal/ui/pretty"
	"github.com/yaklabco/gomdkit/pkg/config"
)

type astFlags struct {
	extensions []string
	positions  bool
}

func newASTCommand(global *globalFlags) *cobra.Command {
	flags := &astFlags{}

	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Print the document tree of a Markdown file",
		Long: `Parse a Markdown file and print its document tree: one line per node
with the node kind, its attributes and, for leaves, the literal text.

Reads stdin when no file or "-" is given.

Examples:
  gomdkit ast README.md
  gomdkit ast --positions README.md
  echo '~~gone~~' | gomdkit ast -e strikethrough`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.extensions, "extension", "e", nil,
		"syntax extensions to enable (replaces the configured list)")
	cmd.Flags().BoolVarP(&flags.positions, "positions", "p", false, "show source positions")

	return cmd
}

func runAST(cmd *cobra.Command, args []string, global *globalFlags, flags *astFlags) error {
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("extension") {
		cliCfg.Extensions = flags.extensions
	}
	cfg, _, err := loadConfig(cmd, global, cliCfg)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	src, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	doc := engine.Parse(src)
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, out))
	if _, err := fmt.Fprint(out, styles.FormatTree(doc.Root, pretty.TreeOptions{Positions: flags.positions})); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}
