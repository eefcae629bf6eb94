// Package configloader resolves the gomdkit configuration: it discovers
// config files, merges them over the defaults in precedence order, applies
// GOMDKIT_* environment variables and CLI flags, and validates the result.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gomdkit/pkg/config"
	"github.com/yaklabco/gomdkit/pkg/fsutil"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config search starts. Defaults to
	// the current directory.
	WorkingDir string

	// ExplicitPath is a config file given with --config.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// CLIConfig holds values set by flags. It has the highest precedence.
	CLIConfig *config.Config
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config

	// Paths are the discovered config files.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were loaded, lowest precedence first.
	LoadedFrom []string

	// Warnings are non-fatal findings.
	Warnings []string
}

// Load resolves the configuration. Precedence, highest first:
//  1. CLI flags (opts.CLIConfig)
//  2. GOMDKIT_* environment variables
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gomdkit.yml, searched upward)
//  5. User config ($XDG_CONFIG_HOME/gomdkit/config.yml)
//  6. System config (/etc/gomdkit/config.yml)
//  7. Defaults
//
// An invalid result is reported with every validation error joined.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		if validation := ValidateWithFile(fileCfg, layer.path); !validation.Valid() {
			return nil, validation.Err()
		}

		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		getenv := opts.Getenv
		if getenv == nil {
			getenv = os.Getenv
		}
		if err := loadFromEnv(cfg, getenv); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if err := validation.Err(); err != nil {
		return nil, err
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes content to path atomically.
func WriteConfig(ctx context.Context, path string, content []byte) error {
	if err := fsutil.WriteAtomic(ctx, path, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
