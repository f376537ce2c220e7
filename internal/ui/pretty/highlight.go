package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/tree"
)

// Classifier maps a symbol onto its language-independent category.
type Classifier func(sym symbol.Interface) symbol.KnownType

// Highlight renders the symbols back to source text, styled by class.
func (s *Styles) Highlight(symbols []symbol.Interface, classify Classifier) string {
	var builder strings.Builder
	for _, sym := range symbols {
		builder.WriteString(s.ForSymbol(classify(sym)).Render(sym.Content()))
	}
	return builder.String()
}

// FormatSymbols lists one symbol per line with its one-based position,
// type and quoted content. Errors follow the symbol they belong to.
func (s *Styles) FormatSymbols(symbols []symbol.Interface, classify Classifier) string {
	width := 0
	for _, sym := range symbols {
		width = max(width, len(sym.TypeName()))
	}

	var builder strings.Builder
	for _, sym := range symbols {
		start := sym.Start()
		position := fmt.Sprintf("%d:%d", start.Line+1, start.Character+1)
		fmt.Fprintf(&builder, "%s  %s  %s\n",
			s.Location.Render(fmt.Sprintf("%-7s", position)),
			s.ForSymbol(classify(sym)).Render(fmt.Sprintf("%-*s", width, sym.TypeName())),
			strconv.Quote(sym.Content()),
		)
		for _, err := range sym.Errors() {
			fmt.Fprintf(&builder, "         %s %s\n", s.Error.Render("error:"), err.Message)
		}
	}
	return builder.String()
}

// FormatTree renders a block and its descendants, one node per line,
// indented by depth.
func (s *Styles) FormatTree(root *tree.Block) string {
	var builder strings.Builder
	s.writeNode(&builder, root, 0)
	return builder.String()
}

func (s *Styles) writeNode(builder *strings.Builder, node tree.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n := node.(type) {
	case *tree.Block:
		fmt.Fprintf(builder, "%s%s %s\n",
			indent,
			s.BlockName.Render(n.Type().String()+" Block"),
			s.Dim.Render(fmt.Sprintf("%s::%d gen=%s", n.Start(), n.Length(), n.Generator())),
		)
		for _, child := range n.Children() {
			s.writeNode(builder, child, depth+1)
		}
	case *tree.Span:
		fmt.Fprintf(builder, "%s%s %s %s\n",
			indent,
			s.SpanName.Render(n.Kind().String()+" Span"),
			s.ForSpan(n.Kind()).Render(strconv.Quote(n.Content())),
			s.Dim.Render(fmt.Sprintf("%s::%d accepts=%s", n.Start(), n.Length(), n.Accepts())),
		)
	}
}
