package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdkit/internal/logging"
	"github.com/yaklabco/gomdkit/pkg/config"
	"github.com/yaklabco/gomdkit/pkg/crosscheck"
	"github.com/yaklabco/gomdkit/pkg/reporter"
	"github.com/yaklabco/gomdkit/pkg/runner"
)

type crosscheckFlags struct {
	extensions []string
	ignore     []string
	report     string
	verbose    bool
}

func newCrosscheckCommand(global *globalFlags) *cobra.Command {
	flags := &crosscheckFlags{}

	cmd := &cobra.Command{
		Use:   "crosscheck [paths...]",
		Short: "Compare rendered HTML against goldmark",
		Long: `Render each Markdown file with gomdkit and with goldmark and report the
first line where the outputs differ.

Two comparisons are made per file: the block structure of both parse
trees, and the HTML with blank lines and trailing space ignored. The
command exits with status 1 when any file differs.

Examples:
  gomdkit crosscheck docs/
  gomdkit crosscheck -e strikethrough README.md
  gomdkit crosscheck --report json .`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrosscheck(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.extensions, "extension", "e", nil,
		"syntax extensions to enable (replaces the configured list)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.report, "report", "", "output format: text, json")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list matching files too")

	return cmd
}

func runCrosscheck(cmd *cobra.Command, args []string, global *globalFlags, flags *crosscheckFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)

	cliCfg := &config.Config{Report: flags.report}
	if cmd.Flags().Changed("extension") {
		cliCfg.Extensions = flags.extensions
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}
	cfg, _, err := loadConfig(cmd, global, cliCfg)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	files, err := runner.Discover(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
	})
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	htmlOpts := cfg.HTMLOptions()
	checker := crosscheck.New(engine, crosscheck.Options{Unsafe: htmlOpts.Unsafe, XHTML: htmlOpts.XHTML})

	results := make([]*crosscheck.Result, 0, len(files))
	for _, path := range files {
		result, err := checker.CheckFile(ctx, path)
		if err != nil {
			return fmt.Errorf("crosscheck: %w", err)
		}
		results = append(results, result)
	}

	format, err := reporter.ParseFormat(cfg.Report)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	rep, err := reporter.New(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Format:     format,
		Color:      cfg.Color,
		Verbose:    flags.verbose,
		WorkingDir: workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	mismatches, err := rep.ReportCrosscheck(ctx, results)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	logger.Debug("crosscheck complete",
		logging.FieldFiles, len(results),
		logging.FieldMismatches, mismatches,
	)

	if mismatches > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrMismatches, mismatches, len(results))
	}
	return nil
}
