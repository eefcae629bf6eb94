package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strconv"

	"github.com/yaklabco/gomdkit/internal/ui/pretty"
	"github.com/yaklabco/gomdkit/pkg/crosscheck"
	"github.com/yaklabco/gomdkit/pkg/runner"
)

// TextReporter writes styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Failed files are always listed; with Verbose
// every rendered file is listed with its output path and size.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	for _, file := range result.Files {
		path := r.styles.FilePath.Render(r.opts.displayPath(file.Path))
		switch {
		case file.Error != nil:
			fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
		case r.opts.Verbose:
			dest := "stdout"
			if file.OutputPath != "" {
				dest = r.opts.displayPath(file.OutputPath)
			}
			note := ""
			if file.OutputPath != "" && !file.Written {
				note = " (unchanged)"
			}
			fmt.Fprintf(r.bw, "%s → %s %s\n", path, dest,
				r.styles.Dim.Render(pretty.FormatBytes(file.BytesOut)+note))
		}
	}

	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	return nil
}

// ReportCrosscheck implements Reporter.
func (r *TextReporter) ReportCrosscheck(_ context.Context, results []*crosscheck.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	mismatches := 0
	for _, res := range results {
		if res.Equal() {
			if r.opts.Verbose {
				fmt.Fprintf(r.bw, "%s %s\n", r.styles.FilePath.Render(r.opts.displayPath(res.Path)), r.styles.Success.Render("ok"))
			}
			continue
		}
		mismatches++

		path := r.opts.displayPath(res.Path)
		if res.Blocks != nil {
			fmt.Fprint(r.bw, r.styles.FormatMismatch(path+" (blocks)", res.Blocks.Line, res.Blocks.Ours, res.Blocks.Reference))
		}
		if res.HTML != nil {
			fmt.Fprint(r.bw, r.styles.FormatMismatch(path, res.HTML.Line, res.HTML.Ours, res.HTML.Reference))
		}
	}

	checked := strconv.Itoa(len(results)) + " " + plural(len(results))
	if mismatches == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No differences")+r.styles.Dim.Render(" ("+checked+" checked)"))
	} else {
		fmt.Fprintln(r.bw, r.styles.Failure.Render(fmt.Sprintf("%d of %s differ", mismatches, checked)))
	}
	return mismatches, nil
}

func plural(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
