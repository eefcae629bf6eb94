// Package runner renders batches of Markdown files with a shared engine.
package runner

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// Options controls discovery and rendering of a batch.
type Options struct {
	// Paths are files or directories to render. Empty means ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob matching and the
	// output tree. Empty means the process working directory.
	WorkingDir string

	// Extensions lists the file extensions (with leading dot) treated as
	// Markdown. Empty means DefaultExtensions().
	Extensions []string

	// IncludeGlobs, when set, restricts discovery to matching paths.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories.
	ExcludeGlobs []string

	// FollowSymlinks walks into symlinked directories.
	FollowSymlinks bool

	// Jobs bounds the worker pool. Zero or negative means runtime.NumCPU().
	Jobs int

	// Format selects the output format. Empty means markdown.FormatHTML.
	Format markdown.Format

	// OutDir, when set, receives one output file per source, mirroring the
	// source layout below WorkingDir. Otherwise output stays in memory on
	// each FileOutcome.
	OutDir string
}

// DefaultExtensions returns the file extensions treated as Markdown.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveFormat() markdown.Format {
	if o.Format == "" {
		return markdown.FormatHTML
	}
	return o.Format
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for per-file debug output.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}
