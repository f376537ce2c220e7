package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/razorlex/internal/ui/pretty"
	"github.com/yaklabco/razorlex/pkg/analysis"
)

// Table layout constants for summary output.
// Both tables use the same width for visual consistency.
const (
	tableWidth       = 80
	messageColWidth  = 50
	fileColWidth     = 50
	langColWidth     = 12
	numColWidth      = 8
	maxMessageLength = 48
	maxFilePathLen   = 48
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryRenderer formats reports as aggregated tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if !report.Totals.HasErrors() {
		fmt.Fprintln(r.out, r.styles.Success.Render("No lexical errors")+
			r.styles.Dim.Render(fmt.Sprintf(" (%d files checked)", report.Totals.Files)))
		return nil
	}

	r.renderMessageTable(report.ByMessage)
	fmt.Fprintln(r.out)
	r.renderFileTable(report.ByFile)
	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals)

	return nil
}

func (r *SummaryRenderer) separator() {
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("-", tableWidth)))
}

func (r *SummaryRenderer) renderMessageTable(messages []analysis.MessageAnalysis) {
	if len(messages) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Errors by Message"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("Message", messageColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
		r.styles.TableHeader.Render(padLeft("Files", numColWidth)),
	)
	r.separator()

	for _, msg := range messages {
		text := msg.Message
		if len(text) > maxMessageLength {
			text = text[:maxMessageLength-3] + "..."
		}
		fmt.Fprintf(r.out, "%s %s %s\n",
			r.styles.TableErrorRow.Render(padRight(text, messageColWidth)),
			padLeft(strconv.Itoa(msg.Errors), numColWidth),
			padLeft(strconv.Itoa(len(msg.Files)), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderFileTable(files []analysis.FileAnalysis) {
	if len(files) == 0 {
		return
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Errors by File"))
	r.separator()
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.TableHeader.Render(padRight("File", fileColWidth)),
		r.styles.TableHeader.Render(padRight("Language", langColWidth)),
		r.styles.TableHeader.Render(padLeft("Count", numColWidth)),
	)
	r.separator()

	for _, file := range files {
		path := file.Path
		if len(path) > maxFilePathLen {
			path = "..." + path[len(path)-(maxFilePathLen-3):]
		}
		fmt.Fprintf(r.out, "%s %s %s\n",
			r.styles.TableErrorRow.Render(padRight(path, fileColWidth)),
			padRight(file.Language, langColWidth),
			padLeft(strconv.Itoa(file.Errors), numColWidth),
		)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals) {
	errorWord := "errors"
	if totals.Errors == 1 {
		errorWord = "error"
	}
	fileWord := "files"
	if totals.FilesWithErrors == 1 {
		fileWord = "file"
	}
	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+
		r.styles.Error.Render(fmt.Sprintf("%d %s", totals.Errors, errorWord))+
		fmt.Sprintf(" in %d %s (%d checked)", totals.FilesWithErrors, fileWord, totals.Files))
}
