package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdkit/internal/configloader"
	"github.com/yaklabco/gomdkit/internal/logging"
	"github.com/yaklabco/gomdkit/pkg/config"
	"github.com/yaklabco/gomdkit/pkg/fsutil"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// commandContext returns the command's context, or a background context
// when the command runs without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the configuration for the current directory with
// cliCfg, the values set by flags, on top.
func loadConfig(cmd *cobra.Command, global *globalFlags, cliCfg *config.Config) (*config.Config, *configloader.LoadResult, error) {
	logger := logging.Default()

	workDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	if cliCfg == nil {
		cliCfg = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		cliCfg.Color = global.color
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: global.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldConfig, result.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldFormat, result.Config.Format,
		logging.FieldExtension, result.Config.Extensions,
	)

	return result.Config, result, nil
}

// newEngine builds the engine described by cfg.
func newEngine(cfg *config.Config) (*markdown.Engine, error) {
	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	opts = append(opts, markdown.WithLogger(logging.Default()))
	return markdown.New(opts...), nil
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return src, nil
	}
	return fsutil.ReadFile(commandContext(cmd), path)
}

func boolPtr(b bool) *bool { return &b }
