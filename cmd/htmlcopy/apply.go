package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-htmlcopy"
	"github.com/alnah/go-htmlcopy/internal/config"
	"github.com/alnah/go-htmlcopy/internal/fileutil"
	"github.com/alnah/go-htmlcopy/internal/hints"
)

// Sentinel errors for the apply command.
var (
	ErrNoTarget           = errors.New("no target specified")
	ErrUnknownTarget      = errors.New("unknown target")
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrApplyFailed        = errors.New("some inputs failed")
)

// MaxWorkers caps the number of concurrent file workers.
const MaxWorkers = 64

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// ApplyResult holds the outcome of rewriting a single input.
type ApplyResult struct {
	InputPath  string
	OutputPath string
	Changed    bool
	Err        error
	Duration   time.Duration
}

// applyJob carries what every worker shares.
type applyJob struct {
	pipeline *htmlcopy.Pipeline
	target   string
	base     *url.URL // nil: each file's directory
	env      *Environment
}

// runApply orchestrates the apply command.
func runApply(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseApplyFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(logger, env.Environ())

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(&flags.common, envCfg)
	if err != nil {
		return err
	}
	mergeApplyFlags(flags, cfg)

	settings, err := resolveAssets(cfg)
	if err != nil {
		return err
	}
	p := htmlcopy.New(settings.pipelineOptions(logger)...)

	target := flags.target
	if target == "" {
		target = envCfg.Target
	}
	if target == "" {
		return fmt.Errorf("%w: use --target or HTMLCOPY_TARGET%s", ErrNoTarget, hints.ForTargetNotFound(p.TargetNames()))
	}
	if _, ok := p.Target(target); !ok {
		return fmt.Errorf("%w: %q%s", ErrUnknownTarget, target, hints.ForTargetNotFound(p.TargetNames()))
	}

	base, err := config.ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForBaseURL())
	}

	inputs := positional
	if len(inputs) == 0 && cfg.Input.DefaultDir != "" {
		inputs = []string{cfg.Input.DefaultDir}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInputs())
	}

	output := flags.output
	if output == "" {
		output = cfg.Output.DefaultDir
	}
	files, err := discoverFiles(inputs, output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no HTML or Markdown files in %v%s", ErrNoInput, inputs, hints.ForNoInputs())
	}

	undo, _ := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))
	defer undo()

	workers := resolveWorkers(flags.workers, envCfg.Workers, len(files))
	logger.Debug().Int("files", len(files)).Int("workers", workers).Str("target", target).Msg("applying")

	job := &applyJob{pipeline: p, target: target, base: base, env: env}
	results := applyBatch(ctx, job, files, workers)

	if failed := printResults(results, flags.common.quiet, flags.common.verbose, env, logger); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrApplyFailed, failed, len(results))
	}
	return nil
}

// mergeApplyFlags merges CLI flags into config. CLI values override config values.
func mergeApplyFlags(flags *applyFlags, cfg *config.Config) {
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}
	if flags.palette != "" {
		cfg.Palette = flags.palette
	}
	if flags.sanitize {
		cfg.Sanitize = true
	}
	if flags.highlight != "" {
		cfg.HighlightStyle = flags.highlight
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers picks the worker count: flag, then environment, then
// GOMAXPROCS, never more than there are files.
func resolveWorkers(flagWorkers, envWorkers, files int) int {
	n := flagWorkers
	if n <= 0 {
		n = envWorkers
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	n = min(n, MaxWorkers, files)
	return max(n, 1)
}

// applyBatch processes files concurrently. The pipeline is shared: it is
// read-only after construction.
func applyBatch(ctx context.Context, job *applyJob, files []FileToApply, workers int) []ApplyResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ApplyResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for range min(workers, len(files)) {
		wg.Go(func() {
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = ApplyResult{InputPath: files[idx].InputPath, Err: err}
					continue
				}
				results[idx] = applyFile(ctx, job, files[idx])
			}
		})
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// applyFile rewrites a single input and writes the result.
func applyFile(ctx context.Context, job *applyJob, f FileToApply) ApplyResult {
	start := time.Now()
	result := ApplyResult{InputPath: f.InputPath, OutputPath: f.OutputPath}
	finish := func(err error) ApplyResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := readInput(f.InputPath, job.env.Stdin)
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	base := job.base
	if base == nil && f.InputPath != stdinInput {
		// Relative images resolve next to the note they belong to.
		if base, err = config.ParseBaseURL(filepath.Dir(f.InputPath)); err != nil {
			return finish(err)
		}
	}

	var html string
	if f.Kind == fileutil.KindMarkdown {
		html, result.Changed, err = job.pipeline.ApplyMarkdown(ctx, base, string(content), job.target)
		if err != nil {
			return finish(err)
		}
	} else {
		html, result.Changed = job.pipeline.Apply(base, string(content), job.target)
	}

	if err := writeOutput(f.OutputPath, html, job.env.Stdout); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}
	return finish(nil)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == stdinInput {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path) // #nosec G304 -- discovered path
}

// writeOutput writes html to path, or to stdout when path is empty.
func writeOutput(path, html string, stdout io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, html)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}
	// #nosec G306 -- output HTML is meant to be readable
	return os.WriteFile(path, []byte(html), filePermissions)
}

// ResultSummary holds the count of succeeded and failed inputs.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Unchanged int
}

// countResults tallies succeeded, unchanged and failed inputs.
func countResults(results []ApplyResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case !r.Changed:
			summary.Succeeded++
			summary.Unchanged++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults reports each file written and returns the failure count.
// Nothing is reported for stdout output, which would interleave with it.
func printResults(results []ApplyResult, quiet, verbose bool, env *Environment, logger zerolog.Logger) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			logger.Error().Err(r.Err).Str("input", r.InputPath).Msg("failed")
			continue
		}
		if quiet || r.OutputPath == "" {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stderr, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stderr, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stderr, "\n%d succeeded (%d unchanged), %d failed\n", summary.Succeeded, summary.Unchanged, summary.Failed)
	}
	return summary.Failed
}
