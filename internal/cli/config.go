package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdkit/internal/configloader"
)

type configFlags struct {
	env   bool
	paths bool
}

func newConfigCommand(global *globalFlags) *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration that render would use in the current directory,
after merging config files and GOMDKIT_* environment variables over the
defaults.

Examples:
  gomdkit config            Effective configuration as YAML
  gomdkit config --paths    Which config files were found and loaded
  gomdkit config --env      Supported environment variables`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if flags.env {
				return writeEnvVars(out)
			}

			cfg, result, err := loadConfig(cmd, global, nil)
			if err != nil {
				return err
			}
			if flags.paths {
				return writeConfigPaths(out, result)
			}

			data, err := cfg.ToYAMLWithHeader("# Effective gomdkit configuration")
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&flags.env, "env", false, "list supported environment variables")
	cmd.Flags().BoolVar(&flags.paths, "paths", false, "list discovered config files")

	return cmd
}

func writeEnvVars(w io.Writer) error {
	vars := configloader.ListEnvVars()
	width := 0
	for _, v := range vars {
		width = max(width, len(v.Name))
	}
	for _, v := range vars {
		if _, err := fmt.Fprintf(w, "%s  %s\n", rpad(v.Name, width), v.Description); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}

func writeConfigPaths(w io.Writer, result *configloader.LoadResult) error {
	loaded := make(map[string]bool, len(result.LoadedFrom))
	for _, p := range result.LoadedFrom {
		loaded[p] = true
	}

	rows := []struct{ name, path string }{
		{"system", result.Paths.System},
		{"user", result.Paths.User},
		{"project", result.Paths.Project},
		{"explicit", result.Paths.Explicit},
	}
	for _, row := range rows {
		path, note := row.path, ""
		switch {
		case path == "":
			path = "-"
		case loaded[path]:
			note = " (loaded)"
		}
		if _, err := fmt.Fprintf(w, "%-9s %s%s\n", row.name+":", path, note); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}
