package runner

import (
	"github.com/yaklabco/razorlex/pkg/source"
)

// FileOutcome is the result of tokenizing and segmenting one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string `json:"path"`

	// Language is the engine the file was processed with.
	Language string `json:"language,omitempty"`

	// Symbols is the number of symbols in the file.
	Symbols int `json:"symbols"`

	// Spans is the number of leaf spans in the syntax tree.
	Spans int `json:"spans"`

	// Errors are the lexical errors found in the file.
	Errors []source.Error `json:"errors,omitempty"`

	// Content is the file text. It is kept only when Errors is not empty so
	// reporters can show the offending lines.
	Content string `json:"-"`

	// Error is set if the file could not be processed.
	Error error `json:"-"`
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int `json:"files_discovered"`

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int `json:"files_processed"`

	// FilesSkipped is the number of files skipped because no engine handles
	// their language.
	FilesSkipped int `json:"files_skipped"`

	// FilesErrored is the number of files that could not be read.
	FilesErrored int `json:"files_errored"`

	// FilesWithErrors is the number of files with at least one lexical error.
	FilesWithErrors int `json:"files_with_errors"`

	// ErrorsTotal is the total number of lexical errors across all files.
	ErrorsTotal int `json:"errors_total"`

	// SymbolsTotal is the total number of symbols across all files.
	SymbolsTotal int `json:"symbols_total"`

	// SpansTotal is the total number of spans across all files.
	SpansTotal int `json:"spans_total"`

	// ByLanguage maps language names to processed file counts.
	ByLanguage map[string]int `json:"by_language"`
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file.
	// Files are ordered deterministically (by path).
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasErrors reports whether any file contained lexical errors.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.ErrorsTotal > 0
}

// HasFailures reports whether any file could not be processed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func newStats() Stats {
	return Stats{ByLanguage: make(map[string]int)}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
		return
	case outcome.Language == "":
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.ByLanguage[outcome.Language]++
	r.Stats.SymbolsTotal += outcome.Symbols
	r.Stats.SpansTotal += outcome.Spans
	r.Stats.ErrorsTotal += len(outcome.Errors)
	if len(outcome.Errors) > 0 {
		r.Stats.FilesWithErrors++
	}
}
