package runner

import (
	"errors"
	"fmt"
	"time"
)

// FileOutcome is the result of rendering one file.
type FileOutcome struct {
	// Path is the absolute source path.
	Path string

	// OutputPath is where the output was written; empty without OutDir.
	OutputPath string

	// Output holds the rendered bytes when no OutDir is set.
	Output []byte

	// BytesIn and BytesOut are the source and output sizes.
	BytesIn  int
	BytesOut int

	// Written is false when OutDir already held identical output.
	Written bool

	Duration time.Duration

	// Error is set if the file could not be read, rendered or written.
	Error error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered int
	FilesRendered   int
	FilesFailed     int
	// FilesUnchanged counts outputs that already held identical content.
	FilesUnchanged int
	BytesIn        int
	BytesOut       int
	Duration       time.Duration
}

// Result is the outcome of a run. Files are in discovery (sorted path)
// order regardless of which worker finished first.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

// Err joins the per-file errors, each prefixed with its path. It returns
// nil when every file rendered.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Path, f.Error))
		}
	}
	return errors.Join(errs...)
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}
	r.Stats.FilesRendered++
	r.Stats.BytesIn += outcome.BytesIn
	r.Stats.BytesOut += outcome.BytesOut
	if outcome.OutputPath != "" && !outcome.Written {
		r.Stats.FilesUnchanged++
	}
}
