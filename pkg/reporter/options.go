package reporter

import (
	"io"
	"os"
	"path/filepath"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for the report (typically os.Stderr, since
	// rendered documents may be streaming to stdout).
	Writer io.Writer

	// Format selects the report format.
	Format Format

	// Color is "auto" (default), "always" or "never".
	Color string

	// Verbose lists every file, not only failures.
	Verbose bool

	// Compact disables JSON indentation.
	Compact bool

	// WorkingDir makes reported paths relative. Empty keeps them as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stderr,
		Format: FormatText,
		Color:  "auto",
	}
}

func (o Options) displayPath(path string) string {
	if o.WorkingDir == "" || path == "" {
		return path
	}
	rel, err := filepath.Rel(o.WorkingDir, path)
	if err != nil {
		return path
	}
	return rel
}
