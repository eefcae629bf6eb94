package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gomdkit/pkg/crosscheck"
	"github.com/yaklabco/gomdkit/pkg/runner"
)

// jsonVersion is the schema version of the JSON reports.
const jsonVersion = "1"

// JSONRunOutput is the JSON report of a render run.
type JSONRunOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONRunSummary   `json:"summary"`
}

// JSONFileResult is one rendered file.
type JSONFileResult struct {
	Path       string  `json:"path"`
	OutputPath string  `json:"outputPath,omitempty"`
	BytesIn    int     `json:"bytesIn"`
	BytesOut   int     `json:"bytesOut"`
	DurationMS float64 `json:"durationMs"`
	Written    bool    `json:"written,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// JSONRunSummary holds the run statistics.
type JSONRunSummary struct {
	FilesDiscovered int     `json:"filesDiscovered"`
	FilesRendered   int     `json:"filesRendered"`
	FilesFailed     int     `json:"filesFailed"`
	FilesUnchanged  int     `json:"filesUnchanged"`
	BytesIn         int     `json:"bytesIn"`
	BytesOut        int     `json:"bytesOut"`
	DurationMS      float64 `json:"durationMs"`
}

// JSONCrosscheckOutput is the JSON report of a crosscheck.
type JSONCrosscheckOutput struct {
	Version    string                `json:"version"`
	Files      []JSONCrosscheckEntry `json:"files"`
	Checked    int                   `json:"checked"`
	Mismatches int                   `json:"mismatches"`
}

// JSONCrosscheckEntry is the result for one file.
type JSONCrosscheckEntry struct {
	Path   string    `json:"path"`
	Equal  bool      `json:"equal"`
	HTML   *JSONDiff `json:"html,omitempty"`
	Blocks *JSONDiff `json:"blocks,omitempty"`
}

// JSONDiff is the first differing line.
type JSONDiff struct {
	Line      int    `json:"line"`
	Ours      string `json:"ours"`
	Reference string `json:"reference"`
}

// JSONReporter writes machine-readable reports.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

func (r *JSONReporter) encode(v any) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	output := JSONRunOutput{Version: jsonVersion, Files: []JSONFileResult{}}
	if result != nil {
		for _, f := range result.Files {
			entry := JSONFileResult{
				Path:       r.opts.displayPath(f.Path),
				OutputPath: r.opts.displayPath(f.OutputPath),
				BytesIn:    f.BytesIn,
				BytesOut:   f.BytesOut,
				DurationMS: milliseconds(f.Duration.Seconds()),
				Written:    f.Written,
			}
			if f.Error != nil {
				entry.Error = f.Error.Error()
			}
			output.Files = append(output.Files, entry)
		}

		s := result.Stats
		output.Summary = JSONRunSummary{
			FilesDiscovered: s.FilesDiscovered,
			FilesRendered:   s.FilesRendered,
			FilesFailed:     s.FilesFailed,
			FilesUnchanged:  s.FilesUnchanged,
			BytesIn:         s.BytesIn,
			BytesOut:        s.BytesOut,
			DurationMS:      milliseconds(s.Duration.Seconds()),
		}
	}
	return r.encode(output)
}

// ReportCrosscheck implements Reporter.
func (r *JSONReporter) ReportCrosscheck(_ context.Context, results []*crosscheck.Result) (int, error) {
	output := JSONCrosscheckOutput{
		Version:    jsonVersion,
		Files:      make([]JSONCrosscheckEntry, 0, len(results)),
		Checked:    len(results),
		Mismatches: countMismatches(results),
	}
	for _, res := range results {
		output.Files = append(output.Files, JSONCrosscheckEntry{
			Path:   r.opts.displayPath(res.Path),
			Equal:  res.Equal(),
			HTML:   jsonDiff(res.HTML),
			Blocks: jsonDiff(res.Blocks),
		})
	}
	return output.Mismatches, r.encode(output)
}

func jsonDiff(d *crosscheck.Diff) *JSONDiff {
	if d == nil {
		return nil
	}
	return &JSONDiff{Line: d.Line, Ours: d.Ours, Reference: d.Reference}
}

// milliseconds converts seconds to milliseconds rounded to microseconds.
func milliseconds(seconds float64) float64 {
	return float64(int64(seconds*1e6)) / 1e3
}
