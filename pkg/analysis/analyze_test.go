package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/razorlex/pkg/runner"
	"github.com/yaklabco/razorlex/pkg/source"
)

const (
	msgString  = "Unterminated string literal"
	msgComment = "Unterminated block comment"
)

func lexErr(message string, absolute, line, character int) source.Error {
	return source.NewError(message, source.NewLocation(absolute, line, character), 1)
}

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:     "/work/a.js",
				Language: "javascript",
				Symbols:  10,
				Spans:    3,
				Errors: []source.Error{
					lexErr(msgString, 8, 0, 8),
					lexErr(msgString, 20, 1, 4),
					lexErr(msgComment, 30, 2, 0),
				},
			},
			{Path: "/work/b.html", Language: "html", Symbols: 5, Spans: 2},
			{
				Path:     "/work/c.js",
				Language: "javascript",
				Errors:   []source.Error{lexErr(msgString, 0, 0, 0)},
			},
			{Path: "/work/d.js", Error: errors.New("binary content")},
		},
		Stats: runner.Stats{
			FilesProcessed:  3,
			FilesErrored:    1,
			FilesWithErrors: 2,
			ErrorsTotal:     4,
			SymbolsTotal:    15,
			SpansTotal:      5,
		},
	}
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, ReportVersion, report.Version)
	assert.NotNil(t, report.Files)
	assert.Empty(t, report.Errors)
	assert.False(t, report.Totals.HasErrors())
}

func TestAnalyze_Totals(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	assert.Equal(t, Totals{
		Files:           3,
		FilesFailed:     1,
		FilesWithErrors: 2,
		Errors:          4,
		Symbols:         15,
		Spans:           5,
	}, report.Totals)
	assert.True(t, report.Totals.HasErrors())
}

func TestAnalyze_FilesAndErrors(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/work"
	report := Analyze(sampleResult(), opts)

	require.Len(t, report.Files, 4)
	assert.Equal(t, FileEntry{Path: "a.js", Language: "javascript", Symbols: 10, Spans: 3, Errors: 3}, report.Files[0])
	assert.Equal(t, "binary content", report.Files[3].Failure)

	require.Len(t, report.Errors, 4)
	assert.Equal(t, ErrorEntry{
		FilePath: "a.js",
		Language: "javascript",
		Message:  msgString,
		Line:     2,
		Column:   5,
		Offset:   20,
		Length:   1,
	}, report.Errors[1])
}

func TestAnalyze_GroupsByMessage(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/work"
	report := Analyze(sampleResult(), opts)

	assert.Equal(t, []MessageAnalysis{
		{Message: msgString, Errors: 3, Files: []string{"a.js", "c.js"}},
		{Message: msgComment, Errors: 1, Files: []string{"a.js"}},
	}, report.ByMessage)
}

func TestAnalyze_GroupsByFile(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/work"
	report := Analyze(sampleResult(), opts)

	assert.Equal(t, []FileAnalysis{
		{Path: "a.js", Language: "javascript", Errors: 3, Messages: []string{msgComment, msgString}},
		{Path: "c.js", Language: "javascript", Errors: 1, Messages: []string{msgString}},
	}, report.ByFile)
}

func TestAnalyze_Sorting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"count descending", Options{IncludeByMessage: true, SortBy: SortByCount, SortDesc: true}, []string{msgString, msgComment}},
		{"count ascending", Options{IncludeByMessage: true, SortBy: SortByCount}, []string{msgComment, msgString}},
		{"alphabetical", Options{IncludeByMessage: true, SortBy: SortByAlpha, SortDesc: true}, []string{msgComment, msgString}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := Analyze(sampleResult(), tt.opts)
			got := make([]string, 0, len(report.ByMessage))
			for _, ma := range report.ByMessage {
				got = append(got, ma.Message)
			}
			assert.Equal(t, tt.want, got)
			assert.Empty(t, report.Errors, "errors not requested")
			assert.Empty(t, report.ByFile, "files not requested")
		})
	}
}
