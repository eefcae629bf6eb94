package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gomdkit/internal/configloader"
	"github.com/yaklabco/gomdkit/internal/logging"
	"github.com/yaklabco/gomdkit/pkg/config"
)

// defaultConfigFile is the file name written by init.
const defaultConfigFile = ".gomdkit.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gomdkit configuration file",
		Long: `Create a new .gomdkit.yml configuration file in the current directory.
Every value in the generated file is the default, so it changes nothing
until edited.

When the file exists, init asks before overwriting it on an interactive
terminal and fails otherwise, unless --force is given.

Examples:
  gomdkit init                       Create minimal .gomdkit.yml
  gomdkit init --full                Document every setting and extension
  gomdkit init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with all settings documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.Default()

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !isInteractive() {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		ok, err := confirm(cmd, fmt.Sprintf("%s exists. Overwrite? [y/N] ", flags.output))
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("left existing file unchanged", logging.FieldFile, flags.output)
			return nil
		}
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err := configloader.WriteConfig(commandContext(cmd), absPath, content); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldFile, flags.output)
	logger.Info("run 'gomdkit extensions' to see the available extensions")

	return nil
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// confirm asks a yes/no question on stderr and reads the answer from stdin.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprint(cmd.ErrOrStderr(), question)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
