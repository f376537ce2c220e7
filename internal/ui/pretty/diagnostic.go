package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/razorlex/pkg/source"
)

// FormatError formats a lexical error as "path:line:col  error  message".
// Lines and columns are shown one-based.
func (s *Styles) FormatError(path string, err source.Error, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		err.Location.Line+1,
		err.Location.Character+1,
	)

	fmt.Fprintf(&builder, "  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(err.Message),
	)

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, err.Location.Character+1, err.Length))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a marker under length
// characters starting at the one-based column.
func (s *Styles) FormatSourceContext(line string, column, length int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		marker := "^"
		if length > 1 {
			marker += strings.Repeat("~", length-1)
		}
		builder.WriteString(indent + strings.Repeat(" ", column-1) + s.Caret.Render(marker) + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, errorCount int) string {
	header := s.FilePath.Render(path)
	switch {
	case errorCount == 1:
		header += s.Dim.Render(" (1 error)")
	case errorCount > 1:
		header += s.Dim.Render(fmt.Sprintf(" (%d errors)", errorCount))
	}
	return header
}

// SourceLine returns the zero-based line of content without its line
// terminator, or "" when the line does not exist.
func SourceLine(content string, line int) string {
	for i := 0; content != ""; i++ {
		current, rest, found := strings.Cut(content, "\n")
		if i == line {
			return strings.TrimSuffix(current, "\r")
		}
		if !found {
			break
		}
		content = rest
	}
	return ""
}
