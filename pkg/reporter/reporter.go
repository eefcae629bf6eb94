// Package reporter writes summaries of batch runs and crosscheck results.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomdkit/pkg/crosscheck"
	"github.com/yaklabco/gomdkit/pkg/runner"
)

// Reporter formats and writes results.
type Reporter interface {
	// Report writes a summary of a render run.
	Report(ctx context.Context, result *runner.Result) error

	// ReportCrosscheck writes crosscheck results and returns the number of
	// mismatching files.
	ReportCrosscheck(ctx context.Context, results []*crosscheck.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatNone:
		return nopReporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, *runner.Result) error { return nil }

func (nopReporter) ReportCrosscheck(_ context.Context, results []*crosscheck.Result) (int, error) {
	return countMismatches(results), nil
}

func countMismatches(results []*crosscheck.Result) int {
	n := 0
	for _, r := range results {
		if !r.Equal() {
			n++
		}
	}
	return n
}
