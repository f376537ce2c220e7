package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/razorlex/pkg/runner"
	"github.com/yaklabco/razorlex/pkg/source"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // FILE, LOC, LANG, MESSAGE
	minFileWidth     = 20
	minLocWidth      = 8
	minLangWidth     = 10
	minMessageWidth  = 30
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
)

// TableRow represents a single row in the error table.
type TableRow struct {
	File     string
	Location string
	Language string
	Message  string
}

// TableFormatter formats lexical errors as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats runner results as a styled table. Files without
// errors are left out; the result is empty when no file has any.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil {
		return ""
	}

	groups := collectRows(result)
	if len(groups) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(groups)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for i, group := range groups {
		if i > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		for _, row := range group {
			builder.WriteString(t.formatRow(row, widths))
			builder.WriteString("\n")
		}
	}

	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// collectRows collects error rows grouped by file.
func collectRows(result *runner.Result) [][]TableRow {
	var groups [][]TableRow
	for _, file := range result.Files {
		if len(file.Errors) == 0 {
			continue
		}
		rows := make([]TableRow, 0, len(file.Errors))
		for _, err := range file.Errors {
			rows = append(rows, ErrorToTableRow(file.Path, file.Language, err))
		}
		groups = append(groups, rows)
	}
	return groups
}

type columnWidths struct {
	file    int
	loc     int
	lang    int
	message int
}

func (w columnWidths) total() int {
	return w.file + w.loc + w.lang + w.message + tablePadding*tableColumnCount
}

// calculateColumnWidths determines column widths from the content and
// shrinks the message and then the file column to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(groups [][]TableRow) columnWidths {
	widths := columnWidths{
		file:    minFileWidth,
		loc:     minLocWidth,
		lang:    minLangWidth,
		message: minMessageWidth,
	}

	for _, group := range groups {
		for _, row := range group {
			widths.file = max(widths.file, len(row.File))
			widths.loc = max(widths.loc, len(row.Location))
			widths.lang = max(widths.lang, len(row.Language))
			widths.message = max(widths.message, len(row.Message))
		}
	}

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.message = max(minMessageWidth, widths.message-excess)
	}
	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.file = max(minFileWidth, widths.file-excess)
	}

	return widths
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.file, "FILE",
		widths.loc, "LOC",
		widths.lang, "LANG",
		widths.message, "MESSAGE",
	)
	return t.styles.TableHeader.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, widths.total()))
}

func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.file, truncateFilePath(row.File, widths.file),
		widths.loc, truncateString(row.Location, widths.loc),
		widths.lang, truncateString(row.Language, widths.lang),
		widths.message, truncateString(row.Message, widths.message),
	)
	return t.styles.TableErrorRow.Render(content)
}

// FormatTableSummary formats a summary line for table output.
func (t *TableFormatter) FormatTableSummary(stats runner.Stats, duration string) string {
	parts := []string{fmt.Sprintf("%d files checked", stats.FilesProcessed)}

	if stats.ErrorsTotal > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d errors", stats.ErrorsTotal)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, t.styles.Error.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored)))
	}
	parts = append(parts, fmt.Sprintf("%d symbols", stats.SymbolsTotal))

	if duration != "" {
		parts = append(parts, t.styles.Dim.Render(duration))
	}

	return " " + strings.Join(parts, " | ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[len(path)-maxLen:]
	}
	return "..." + path[len(path)-maxLen+3:]
}

// ErrorToTableRow converts a lexical error to a table row.
func ErrorToTableRow(path, language string, err source.Error) TableRow {
	return TableRow{
		File:     path,
		Location: fmt.Sprintf("%d:%d", err.Location.Line+1, err.Location.Character+1),
		Language: language,
		Message:  err.Message,
	}
}
