package pretty

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/razorlex/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 errors in 2 files (12 files checked)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := s.Dim.Render(fmt.Sprintf(" (%d %s checked)",
		stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles)))

	var line string
	if stats.ErrorsTotal == 0 {
		line = s.Success.Render("No lexical errors") + checked
	} else {
		line = s.Failure.Render(fmt.Sprintf("%d %s", stats.ErrorsTotal, plural(stats.ErrorsTotal, "error", "errors"))) +
			fmt.Sprintf(" in %d %s", stats.FilesWithErrors, plural(stats.FilesWithErrors, wordFile, wordFiles)) +
			checked
	}

	if stats.FilesErrored > 0 {
		line += ", " + s.Error.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored))
	}
	return line + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	row := func(label string, value string) {
		fmt.Fprintf(&builder, "  %-19s%s\n", label+":", value)
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files checked", s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)))
	if stats.FilesSkipped > 0 {
		row("Files skipped", s.Dim.Render(strconv.Itoa(stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		row("Files unreadable", s.Failure.Render(strconv.Itoa(stats.FilesErrored)))
	}
	if stats.FilesWithErrors > 0 {
		row("Files with errors", s.Failure.Render(strconv.Itoa(stats.FilesWithErrors)))
	}

	builder.WriteString("\n")
	row("Symbols", s.SummaryValue.Render(strconv.Itoa(stats.SymbolsTotal)))
	row("Spans", s.SummaryValue.Render(strconv.Itoa(stats.SpansTotal)))
	row("Lexical errors", s.SummaryValue.Render(strconv.Itoa(stats.ErrorsTotal)))

	if len(stats.ByLanguage) > 0 {
		builder.WriteString("\n")
		for _, lang := range slices.Sorted(maps.Keys(stats.ByLanguage)) {
			row("  "+lang, s.SummaryValue.Render(strconv.Itoa(stats.ByLanguage[lang])))
		}
	}

	builder.WriteString("\n")
	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Some files could not be read"))
	case stats.ErrorsTotal > 0:
		builder.WriteString(s.Failure.Render("Lexical errors found"))
	default:
		builder.WriteString(s.Success.Render("All files tokenized cleanly"))
	}
	builder.WriteString("\n")

	return builder.String()
}
