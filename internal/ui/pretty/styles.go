// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/tree"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Error components
	Error      lipgloss.Style
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableErrorRow  lipgloss.Style
	TableSeparator lipgloss.Style

	// Symbol classes
	Keyword    lipgloss.Style
	Identifier lipgloss.Style
	Transition lipgloss.Style
	Comment    lipgloss.Style

	// Tree nodes
	BlockName lipgloss.Style
	SpanName  lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableErrorRow:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Keyword:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Identifier: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Transition: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Comment:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		BlockName: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		SpanName:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		FilePath:       plain,
		Location:       plain,
		Message:        plain,
		SourceLine:     plain,
		Caret:          plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableErrorRow:  plain,
		TableSeparator: plain,
		Keyword:        plain,
		Identifier:     plain,
		Transition:     plain,
		Comment:        plain,
		BlockName:      plain,
		SpanName:       plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// ForSymbol returns the style for a classified symbol.
func (s *Styles) ForSymbol(known symbol.KnownType) lipgloss.Style {
	switch known {
	case symbol.KnownKeyword:
		return s.Keyword
	case symbol.KnownIdentifier:
		return s.Identifier
	case symbol.KnownTransition, symbol.KnownCommentStart, symbol.KnownCommentStar:
		return s.Transition
	case symbol.KnownCommentBody:
		return s.Comment
	default:
		return s.Message
	}
}

// ForSpan returns the style for a span kind.
func (s *Styles) ForSpan(kind tree.SpanKind) lipgloss.Style {
	switch kind {
	case tree.SpanTransition, tree.SpanMetaCode:
		return s.Transition
	case tree.SpanComment:
		return s.Comment
	case tree.SpanCode:
		return s.Identifier
	default:
		return s.Message
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
