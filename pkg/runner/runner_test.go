package runner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/razorlex/pkg/config"
	"github.com/yaklabco/razorlex/pkg/fsutil"
	"github.com/yaklabco/razorlex/pkg/runner"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"notes.txt": "hello"})

	result, err := runner.New().Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.False(t, result.HasErrors())
	assert.False(t, result.HasFailures())
}

func TestRunner_Run_MixedFiles(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"index.html":    "<p>Hello @name!</p>\n",
		"app.js":        "let s = 'open\nfoo();\n",
		"page.tpl":      "<!DOCTYPE html>\n<p>@* note *@</p>\n",
		"notes.txt":     "plain words\n",
		"broken.html":   "<p>\x00</p>",
		"views/a.razor": "@model Foo\n<div></div>\n",
	})

	result, err := runner.New().Run(context.Background(), runner.Options{
		Paths:      []string{".", "page.tpl", "notes.txt"},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	byName := make(map[string]runner.FileOutcome, len(result.Files))
	var names []string
	for _, outcome := range result.Files {
		name, relErr := filepath.Rel(dir, outcome.Path)
		require.NoError(t, relErr)
		name = filepath.ToSlash(name)
		names = append(names, name)
		byName[name] = outcome
	}
	assert.Equal(t, []string{"app.js", "broken.html", "index.html", "notes.txt", "page.tpl", "views/a.razor"}, names)

	assert.Equal(t, "javascript", byName["app.js"].Language)
	require.Len(t, byName["app.js"].Errors, 1)
	assert.Equal(t, 8, byName["app.js"].Errors[0].Location.Absolute)
	assert.Equal(t, "let s = 'open\nfoo();\n", byName["app.js"].Content)

	assert.Equal(t, "html", byName["index.html"].Language)
	assert.Empty(t, byName["index.html"].Errors)
	assert.Empty(t, byName["index.html"].Content, "content is kept only for files with errors")
	assert.Positive(t, byName["index.html"].Symbols)
	assert.Positive(t, byName["index.html"].Spans)

	assert.Equal(t, "html", byName["page.tpl"].Language, "detected from content")
	assert.Empty(t, byName["notes.txt"].Language)
	require.ErrorIs(t, byName["broken.html"].Error, fsutil.ErrBinary)

	stats := result.Stats
	assert.Equal(t, 6, stats.FilesDiscovered)
	assert.Equal(t, 4, stats.FilesProcessed)
	assert.Equal(t, 1, stats.FilesSkipped)
	assert.Equal(t, 1, stats.FilesErrored)
	assert.Equal(t, 1, stats.FilesWithErrors)
	assert.Equal(t, 1, stats.ErrorsTotal)
	assert.Equal(t, map[string]int{"html": 3, "javascript": 1}, stats.ByLanguage)

	symbols, spans := 0, 0
	for _, outcome := range result.Files {
		symbols += outcome.Symbols
		spans += outcome.Spans
	}
	assert.Equal(t, symbols, stats.SymbolsTotal)
	assert.Equal(t, spans, stats.SpansTotal)

	assert.True(t, result.HasErrors())
	assert.True(t, result.HasFailures())
}

func TestRunner_Run_ForcedLanguage(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"script.html": "let a = 1;\n"})

	cfg := config.NewConfig()
	cfg.Language = config.LanguageJavaScript

	result, err := runner.New().Run(context.Background(), runner.Options{WorkingDir: dir, Config: cfg})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "javascript", result.Files[0].Language)
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	files := make(map[string]string)
	for i := range 40 {
		if i%2 == 0 {
			files[fmt.Sprintf("dir%d/page%02d.html", i%4, i)] = fmt.Sprintf("<p>@item%d</p>\n@* %d *@\n", i, i)
		} else {
			files[fmt.Sprintf("dir%d/code%02d.js", i%4, i)] = fmt.Sprintf("const x%d = '%d;\n", i, i)
		}
	}
	dir := writeFiles(t, files)

	serial, err := runner.New().Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := runner.New().Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	require.Len(t, serial.Files, 40)
	if diff := cmp.Diff(serial, parallel); diff != "" {
		t.Errorf("serial and parallel runs differ (-serial +parallel):\n%s", diff)
	}
	assert.Equal(t, 20, serial.Stats.ErrorsTotal)
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"a.html": "<p></p>", "b.js": "x;"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.New().Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		content  string
		language string
		errors   int
	}{
		{name: "markup by extension", path: "a.cshtml", content: "<b>@x</b>", language: "html"},
		{name: "script by extension", path: "a.mjs", content: "'open", language: "javascript", errors: 1},
		{name: "script by shebang", path: "run", content: "#!/usr/bin/env node\nx();\n", language: "javascript"},
		{name: "stdin markup", path: fsutil.StdinPath, content: "<html><body></body></html>", language: "html"},
		{name: "unknown", path: "a.dat", content: "12 34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcome := runner.Analyze(context.Background(), tt.path, []byte(tt.content), nil)
			require.NoError(t, outcome.Error)
			assert.Equal(t, tt.language, outcome.Language)
			assert.Len(t, outcome.Errors, tt.errors)
		})
	}
}

func TestResult_NilSafe(t *testing.T) {
	t.Parallel()

	var result *runner.Result
	assert.False(t, result.HasErrors())
	assert.False(t, result.HasFailures())
}
