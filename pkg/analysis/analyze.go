// Package analysis aggregates runner results into the views reporters render.
package analysis

import (
	"cmp"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/razorlex/pkg/runner"
	"github.com/yaklabco/razorlex/pkg/source"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	fileMap      map[string]*FileAnalysis
	messageMap   map[string]*MessageAnalysis
	fileMessages map[string]map[string]bool
	messageFiles map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		fileMap:      make(map[string]*FileAnalysis),
		messageMap:   make(map[string]*MessageAnalysis),
		fileMessages: make(map[string]map[string]bool),
		messageFiles: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) getOrCreateFileAnalysis(path, language string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path, Language: language}
		ctx.fileMessages[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) getOrCreateMessageAnalysis(message string) *MessageAnalysis {
	if _, ok := ctx.messageMap[message]; !ok {
		ctx.messageMap[message] = &MessageAnalysis{Message: message}
		ctx.messageFiles[message] = make(map[string]bool)
	}
	return ctx.messageMap[message]
}

func createErrorEntry(path, language string, err source.Error) ErrorEntry {
	return ErrorEntry{
		FilePath: path,
		Language: language,
		Message:  err.Message,
		Line:     err.Location.Line + 1,
		Column:   err.Location.Character + 1,
		Offset:   err.Location.Absolute,
		Length:   err.Length,
	}
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	result := make([]FileAnalysis, 0, len(ctx.fileMap))
	for path, fa := range ctx.fileMap {
		fa.Messages = slices.Sorted(maps.Keys(ctx.fileMessages[path]))
		result = append(result, *fa)
	}
	sortBy(result, opts, func(fa FileAnalysis) (string, int) { return fa.Path, fa.Errors })
	return result
}

func (ctx *analysisContext) buildByMessage(opts Options) []MessageAnalysis {
	result := make([]MessageAnalysis, 0, len(ctx.messageMap))
	for message, ma := range ctx.messageMap {
		ma.Files = slices.Sorted(maps.Keys(ctx.messageFiles[message]))
		result = append(result, *ma)
	}
	sortBy(result, opts, func(ma MessageAnalysis) (string, int) { return ma.Message, ma.Errors })
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through the errors to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Files:     []FileEntry{},
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}

	report.Totals = Totals{
		Files:           result.Stats.FilesProcessed,
		FilesSkipped:    result.Stats.FilesSkipped,
		FilesFailed:     result.Stats.FilesErrored,
		FilesWithErrors: result.Stats.FilesWithErrors,
		Errors:          result.Stats.ErrorsTotal,
		Symbols:         result.Stats.SymbolsTotal,
		Spans:           result.Stats.SpansTotal,
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		entry := FileEntry{
			Path:     displayPath,
			Language: file.Language,
			Symbols:  file.Symbols,
			Spans:    file.Spans,
			Errors:   len(file.Errors),
		}
		if file.Error != nil {
			entry.Failure = file.Error.Error()
		}
		report.Files = append(report.Files, entry)

		if len(file.Errors) == 0 {
			continue
		}

		fa := ctx.getOrCreateFileAnalysis(displayPath, file.Language)
		for _, err := range file.Errors {
			fa.Errors++
			ctx.fileMessages[displayPath][err.Message] = true

			ma := ctx.getOrCreateMessageAnalysis(err.Message)
			ma.Errors++
			ctx.messageFiles[err.Message][displayPath] = true

			if opts.IncludeErrors {
				report.Errors = append(report.Errors, createErrorEntry(displayPath, file.Language, err))
			}
		}
	}

	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}
	if opts.IncludeByMessage {
		report.ByMessage = ctx.buildByMessage(opts)
	}

	return report
}

// sortBy orders items by key or count. Ties in count fall back to the key
// so the order is stable across runs.
func sortBy[T any](items []T, opts Options, fields func(T) (string, int)) {
	slices.SortFunc(items, func(left, right T) int {
		leftKey, leftCount := fields(left)
		rightKey, rightCount := fields(right)

		if opts.SortBy == SortByAlpha {
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(leftKey, rightKey)
		}

		result := cmp.Compare(leftCount, rightCount)
		if opts.SortDesc {
			result = -result
		}
		if result == 0 {
			result = cmp.Compare(leftKey, rightKey)
		}
		return result
	})
}
