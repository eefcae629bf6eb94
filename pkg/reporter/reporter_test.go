package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdkit/pkg/crosscheck"
	"github.com/yaklabco/gomdkit/pkg/reporter"
	"github.com/yaklabco/gomdkit/pkg/runner"
)

func sampleResult(root string) *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: filepath.Join(root, "a.md"), OutputPath: filepath.Join(root, "site", "a.html"),
				BytesIn: 10, BytesOut: 20, Written: true, Duration: 1500 * time.Microsecond,
			},
			{Path: filepath.Join(root, "b.md"), Error: errors.New("boom")},
		},
		Stats: runner.Stats{FilesDiscovered: 2, FilesRendered: 1, FilesFailed: 1, BytesIn: 10, BytesOut: 20},
	}
}

func sampleCrosscheck(root string) []*crosscheck.Result {
	return []*crosscheck.Result{
		{Path: filepath.Join(root, "a.md")},
		{Path: filepath.Join(root, "b.md"), HTML: &crosscheck.Diff{Line: 2, Ours: "<p>x</p>", Reference: "<p>y</p>"}},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "json", want: reporter.FormatJSON},
		{input: "none", want: reporter.FormatNone},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		got, err := reporter.ParseFormat(tt.input)
		if tt.wantErr {
			require.Error(t, err)
			assert.False(t, reporter.Format(tt.input).IsValid())
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.True(t, got.IsValid())
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, format := range []reporter.Format{"", reporter.FormatText, reporter.FormatJSON, reporter.FormatNone} {
		rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: format})
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, rep)
	}

	_, err := reporter.New(reporter.Options{Format: "xml"})
	require.Error(t, err)
}

func TestTextReporter_Report(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", WorkingDir: root})
	require.NoError(t, rep.Report(context.Background(), sampleResult(root)))

	out := buf.String()
	assert.Contains(t, out, "b.md: error: boom\n")
	assert.NotContains(t, out, "a.md", "successful files are listed only when verbose")
	assert.Contains(t, out, "Rendered 1 file")
	assert.Contains(t, out, "1 failed")
}

func TestTextReporter_Verbose(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", WorkingDir: root, Verbose: true})
	require.NoError(t, rep.Report(context.Background(), sampleResult(root)))

	assert.Contains(t, buf.String(), "a.md → "+filepath.Join("site", "a.html")+" 20 B\n")
}

func TestTextReporter_ReportCrosscheck(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", WorkingDir: root})

	n, err := rep.ReportCrosscheck(context.Background(), sampleCrosscheck(root))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), "b.md:2\n")
	assert.Contains(t, buf.String(), "1 of 2 files differ\n")

	buf.Reset()
	n, err = rep.ReportCrosscheck(context.Background(), sampleCrosscheck(root)[:1])
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "No differences (1 file checked)\n", buf.String())
}

func TestJSONReporter_Report(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: root, Compact: true})
	require.NoError(t, rep.Report(context.Background(), sampleResult(root)))

	var got reporter.JSONRunOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Files, 2)
	assert.Equal(t, "a.md", got.Files[0].Path)
	assert.Equal(t, filepath.Join("site", "a.html"), got.Files[0].OutputPath)
	assert.InDelta(t, 1.5, got.Files[0].DurationMS, 0.001)
	assert.Equal(t, "boom", got.Files[1].Error)
	assert.Equal(t, 1, got.Summary.FilesFailed)
}

func TestJSONReporter_NilResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, reporter.NewJSONReporter(reporter.Options{Writer: &buf}).Report(context.Background(), nil))
	assert.Contains(t, buf.String(), `"files": []`)
}

func TestJSONReporter_ReportCrosscheck(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: root})

	n, err := rep.ReportCrosscheck(context.Background(), sampleCrosscheck(root))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var got reporter.JSONCrosscheckOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Checked)
	assert.True(t, got.Files[0].Equal)
	require.NotNil(t, got.Files[1].HTML)
	assert.Equal(t, 2, got.Files[1].HTML.Line)
	assert.Nil(t, got.Files[1].Blocks)
}

func TestNopReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatNone})
	require.NoError(t, err)

	require.NoError(t, rep.Report(context.Background(), sampleResult("/")))
	n, err := rep.ReportCrosscheck(context.Background(), sampleCrosscheck("/"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReporter_WriteError(t *testing.T) {
	t.Parallel()

	err := reporter.NewTextReporter(reporter.Options{Writer: failingWriter{}, Color: "never"}).
		Report(context.Background(), sampleResult("/"))
	require.ErrorContains(t, err, "disk full")
}
