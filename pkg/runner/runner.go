package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/razorlex/internal/logging"
	"github.com/yaklabco/razorlex/pkg/config"
	"github.com/yaklabco/razorlex/pkg/fsutil"
	"github.com/yaklabco/razorlex/pkg/langdetect"
	"github.com/yaklabco/razorlex/pkg/segment"
)

// Runner tokenizes and segments files concurrently.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in discovery order regardless of completion order.
// A file that cannot be read is recorded in its outcome and does not stop
// the run; only cancellation does.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)
	logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	cfg := opts.config()
	outcomes := make([]FileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, path := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.processFile(groupCtx, path, cfg)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithErrors, result.Stats.FilesWithErrors,
		logging.FieldErrorsTotal, result.Stats.ErrorsTotal,
	)
	return result, nil
}

func (r *Runner) processFile(ctx context.Context, path string, cfg *config.Config) FileOutcome {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return FileOutcome{Path: path, Error: err}
	}
	return Analyze(ctx, path, content, cfg)
}

// Analyze tokenizes and segments content. The language comes from the
// configuration when it names one for path and is detected from path and
// content otherwise. An outcome without a language means no engine applies.
func Analyze(ctx context.Context, path string, content []byte, cfg *config.Config) FileOutcome {
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{Path: path}

	lang := ResolveLanguage(cfg, path, content)
	if lang == "" {
		logger.Debug("no engine for file", logging.FieldPath, path)
		return outcome
	}

	engine, err := segment.ForLanguage(lang, cfg.ShouldValidateRegex())
	if err != nil {
		outcome.Error = err
		return outcome
	}

	doc := segment.Parse(engine, string(content))
	spans := doc.Spans()

	outcome.Language = doc.Language()
	outcome.Spans = len(spans)
	for _, span := range spans {
		outcome.Symbols += len(span.Symbols())
	}
	outcome.Errors = doc.Errors.Errors()
	if len(outcome.Errors) > 0 {
		outcome.Content = doc.Content
	}

	logger.Debug("segmented file",
		logging.FieldPath, path,
		logging.FieldLanguage, outcome.Language,
		logging.FieldSymbols, outcome.Symbols,
		logging.FieldSpans, outcome.Spans,
		logging.FieldErrors, len(outcome.Errors),
	)
	return outcome
}

// ResolveLanguage returns the engine language for path, or "" when none
// applies.
func ResolveLanguage(cfg *config.Config, path string, content []byte) string {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if lang, ok := cfg.LanguageFor(path); ok {
		return string(lang)
	}
	return langdetect.Detect(path, content)
}
