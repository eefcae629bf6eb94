package runner

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gomdkit/internal/logging"
	"github.com/yaklabco/gomdkit/pkg/fsutil"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// Runner renders files concurrently with one shared Engine.
type Runner struct {
	engine *markdown.Engine
	logger *log.Logger
}

// New creates a Runner around engine.
func New(engine *markdown.Engine, opts ...Option) *Runner {
	r := &Runner{engine: engine, logger: logging.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run discovers the files selected by opts and renders them with a bounded
// worker pool. Per-file failures are recorded on the outcomes (see
// Result.Err); the returned error covers discovery failure and
// cancellation only. A cancelled run still returns the outcomes gathered
// so far.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))
	r.logger.Debug("rendering", logging.FieldFiles, len(files), logging.FieldWorkers, jobs)

	job := renderJob{format: opts.effectiveFormat(), outDir: opts.OutDir, workDir: workDir}
	if job.outDir != "" && !filepath.IsAbs(job.outDir) {
		job.outDir = filepath.Join(workDir, job.outDir)
	}
	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, job, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}
	result.Stats.Duration = time.Since(start)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

type renderJob struct {
	format  markdown.Format
	outDir  string
	workDir string
}

func (r *Runner) worker(ctx context.Context, job renderJob, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := r.render(ctx, job, path)
		if outcome.Error != nil {
			r.logger.Debug("render failed", logging.FieldFile, path, logging.FieldError, outcome.Error)
		} else {
			r.logger.Debug("rendered", logging.FieldFile, path,
				logging.FieldBytes, outcome.BytesOut, logging.FieldDuration, outcome.Duration)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func (r *Runner) render(ctx context.Context, job renderJob, path string) (outcome FileOutcome) {
	start := time.Now()
	outcome.Path = path
	defer func() { outcome.Duration = time.Since(start) }()

	src, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.BytesIn = len(src)

	var buf bytes.Buffer
	if err := r.engine.Convert(src, &buf, job.format); err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.BytesOut = buf.Len()

	if job.outDir == "" {
		outcome.Output = buf.Bytes()
		return outcome
	}

	outPath, err := fsutil.OutputPath(job.workDir, path, job.outDir, job.format.Extension())
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.OutputPath = outPath
	outcome.Written, outcome.Error = fsutil.WriteOutput(ctx, outPath, buf.Bytes())
	return outcome
}
