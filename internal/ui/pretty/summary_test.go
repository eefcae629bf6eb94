package pretty_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdkit/internal/ui/pretty"
	"github.com/yaklabco/gomdkit/pkg/runner"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0:               "0 B",
		1023:            "1023 B",
		1024:            "1.0 KiB",
		1536:            "1.5 KiB",
		5 * 1024 * 1024: "5.0 MiB",
	}
	for n, want := range tests {
		assert.Equal(t, want, pretty.FormatBytes(n), "FormatBytes(%d)", n)
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name: "nothing found",
			want: "No Markdown files found\n",
		},
		{
			name: "all rendered",
			stats: runner.Stats{
				FilesDiscovered: 3, FilesRendered: 3,
				BytesIn: 2048, BytesOut: 3072, Duration: 4 * time.Millisecond,
			},
			want: "Rendered 3 files (2.0 KiB → 3.0 KiB) in 4ms\n",
		},
		{
			name: "one file with failures and unchanged",
			stats: runner.Stats{
				FilesDiscovered: 3, FilesRendered: 1, FilesFailed: 2, FilesUnchanged: 1,
				BytesIn: 10, BytesOut: 20,
			},
			want: "Rendered 1 file (10 B → 20 B) in 0s, 1 unchanged, 2 failed\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	ok := styles.FormatSummary(runner.Stats{FilesDiscovered: 2, FilesRendered: 2, BytesIn: 100})
	assert.Contains(t, ok, "Summary")
	assert.Contains(t, ok, "Files rendered:")
	assert.Contains(t, ok, "100 B")
	assert.Contains(t, ok, "Render complete")
	assert.NotContains(t, ok, "Files failed")

	failed := styles.FormatSummary(runner.Stats{FilesDiscovered: 2, FilesRendered: 1, FilesFailed: 1})
	assert.Contains(t, failed, "Files failed:")
	assert.Contains(t, failed, "Render failed")
}
