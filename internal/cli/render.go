package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdkit/internal/logging"
	"github.com/yaklabco/gomdkit/pkg/config"
	"github.com/yaklabco/gomdkit/pkg/markdown"
	"github.com/yaklabco/gomdkit/pkg/reporter"
	"github.com/yaklabco/gomdkit/pkg/runner"
)

type renderFlags struct {
	format     string
	outDir     string
	jobs       int
	extensions []string
	ignore     []string
	report     string
	safe       bool
	verbose    bool
}

func newRenderCommand(global *globalFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown files to HTML or text",
		Long:  renderLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: html, text (default from config, else html)")
	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "write one file per source into this directory instead of stdout")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVarP(&flags.extensions, "extension", "e", nil,
		"syntax extensions to enable (replaces the configured list)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringVar(&flags.report, "report", "", "run summary on stderr: text, json, none")
	cmd.Flags().BoolVar(&flags.safe, "safe", false, "omit raw HTML and unsafe link destinations")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list every rendered file in the summary")

	return cmd
}

const renderLongDescription = `Render Markdown files to HTML or plain text.

With no paths, renders every .md and .markdown file below the current
directory. A path of "-" reads a single document from stdin.

Rendered documents are written to stdout in discovery order unless
--out-dir is given, in which case the source tree is mirrored there and
files whose content has not changed are left untouched. A summary of the
run is written to stderr.

Examples:
  gomdkit render README.md                  # HTML to stdout
  gomdkit render -f text README.md          # Plain text
  cat doc.md | gomdkit render -             # From stdin
  gomdkit render -o site docs/              # Mirror docs/ into site/
  gomdkit render -e strikethrough,heading-id docs/
  gomdkit render --report json -o site .    # Machine-readable summary`

// cliConfig collects the values set by flags into a config layer.
func (f *renderFlags) cliConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{
		Jobs:   f.jobs,
		OutDir: f.outDir,
		Report: f.report,
	}
	if f.format != "" {
		format, err := markdown.ParseFormat(f.format)
		if err != nil {
			return nil, fmt.Errorf("%w: --format: %w", ErrUsage, err)
		}
		cfg.Format = format
	}
	if cmd.Flags().Changed("extension") {
		cfg.Extensions = f.extensions
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if f.safe {
		cfg.HTML.Unsafe = boolPtr(false)
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string, global *globalFlags, flags *renderFlags) error {
	logger := logging.Default()
	ctx := commandContext(cmd)

	cliCfg, err := flags.cliConfig(cmd)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig(cmd, global, cliCfg)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == "-" {
		src, err := readInput(cmd, "-")
		if err != nil {
			return err
		}
		if err := engine.Convert(src, cmd.OutOrStdout(), cfg.Format); err != nil {
			return fmt.Errorf("render stdin: %w", err)
		}
		return nil
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Format:       cfg.Format,
		OutDir:       cfg.OutDir,
	}

	logger.Debug("starting render run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldWorkers, runOpts.Jobs,
	)

	result, err := runner.New(engine, runner.WithLogger(logger)).Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("render run failed: %w", err)
	}

	if cfg.OutDir == "" {
		out := cmd.OutOrStdout()
		for _, file := range result.Files {
			if file.Error != nil {
				continue
			}
			if _, err := out.Write(file.Output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	format, err := reporter.ParseFormat(cfg.Report)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	rep, err := reporter.New(reporter.Options{
		Writer:     cmd.ErrOrStderr(),
		Format:     format,
		Color:      cfg.Color,
		Verbose:    flags.verbose,
		WorkingDir: workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasFailures() {
		return fmt.Errorf("%w: %w", ErrRenderFailed, result.Err())
	}
	return nil
}
