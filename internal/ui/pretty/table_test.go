package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/razorlex/internal/ui/pretty"
	"github.com/yaklabco/razorlex/pkg/runner"
	"github.com/yaklabco/razorlex/pkg/source"
)

func TestFormatTable(t *testing.T) {
	styles := pretty.NewStyles(false)
	formatter := pretty.NewTableFormatter(styles, 0)

	assert.Empty(t, formatter.FormatTable(nil))
	assert.Empty(t, formatter.FormatTable(&runner.Result{Files: []runner.FileOutcome{{Path: "clean.html"}}}))

	result := &runner.Result{Files: []runner.FileOutcome{
		{Path: "clean.html", Language: "html"},
		{Path: "app.js", Language: "javascript", Errors: []source.Error{
			source.NewError("Unterminated string literal", source.NewLocation(8, 0, 8), 1),
			source.NewError("Unterminated block comment", source.NewLocation(20, 2, 0), 1),
		}},
		{Path: "other.js", Language: "javascript", Errors: []source.Error{
			source.NewError("Unterminated string literal", source.NewLocation(0, 0, 0), 1),
		}},
	}}

	got := formatter.FormatTable(result)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 7, "header, rule, two rows, divider, one row, rule")

	assert.True(t, strings.HasPrefix(lines[0], " FILE"))
	assert.Contains(t, lines[0], "LOC")
	assert.Contains(t, lines[0], "MESSAGE")
	assert.True(t, strings.HasPrefix(lines[1], "====="))
	assert.Contains(t, lines[2], "app.js")
	assert.Contains(t, lines[2], "1:9")
	assert.Contains(t, lines[3], "3:1")
	assert.True(t, strings.HasPrefix(lines[4], "-----"))
	assert.Contains(t, lines[5], "other.js")
	assert.NotContains(t, got, "clean.html")
}

func TestFormatTable_TruncatesToTerminal(t *testing.T) {
	styles := pretty.NewStyles(false)
	formatter := pretty.NewTableFormatter(styles, 80)

	long := strings.Repeat("m", 200)
	result := &runner.Result{Files: []runner.FileOutcome{{
		Path:   "dir/" + strings.Repeat("d", 60) + "/file.html",
		Errors: []source.Error{source.NewError(long, source.Zero, 1)},
	}}}

	got := formatter.FormatTable(result)
	assert.Contains(t, got, "...")
	assert.Contains(t, got, "file.html")
	assert.NotContains(t, got, long)
}

func TestFormatTableSummary(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)

	got := formatter.FormatTableSummary(runner.Stats{FilesProcessed: 3, ErrorsTotal: 2, SymbolsTotal: 40}, "12ms")
	assert.Equal(t, " 3 files checked | 2 errors | 40 symbols | 12ms", got)
}
