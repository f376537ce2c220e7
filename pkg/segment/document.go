package segment

import (
	"errors"
	"unicode/utf8"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/text"
	"github.com/yaklabco/razorlex/pkg/tree"
)

// ErrNotMarkupParser is returned when a whole document is requested from an
// engine that only builds code blocks.
var ErrNotMarkupParser = errors.New("engine does not parse markup documents")

// Document is a segmented text together with its tree and lexical errors.
type Document struct {
	engine Engine

	// Content is the full text the tree was built from.
	Content string
	Root    *tree.Block
	Errors  *source.ErrorSink
}

// Parse segments content with engine.
func Parse(engine Engine, content string) *Document {
	doc := &Document{engine: engine}
	doc.reset(content)
	return doc
}

// ParseDocument segments content as a markup document. Code engines return
// ErrNotMarkupParser; use Parse for them.
func ParseDocument(engine Engine, content string) (*Document, error) {
	if engine.Role() != tree.RoleMarkup {
		return nil, ErrNotMarkupParser
	}
	return Parse(engine, content), nil
}

func (d *Document) reset(content string) {
	d.Content = content
	d.Root, d.Errors = d.engine.segment(content)
}

// Language returns the engine language name.
func (d *Document) Language() string {
	return d.engine.Language()
}

// Role returns the kind of document the engine builds.
func (d *Document) Role() tree.Role {
	return d.engine.Role()
}

// Spans returns the leaf spans in source order.
func (d *Document) Spans() []*tree.Span {
	return d.Root.Flatten()
}

// Results packages the tree and errors for a visitor.
func (d *Document) Results() *tree.Results {
	return tree.NewResults(d.Root, d.Errors)
}

// Edit describes replacing oldLength characters at position with newText.
// Position and length are clamped to the content.
func (d *Document) Edit(position, oldLength int, newText string) text.Change {
	runes := []rune(d.Content)
	position = min(max(position, 0), len(runes))
	end := min(position+max(oldLength, 0), len(runes))

	updated := string(runes[:position]) + newText + string(runes[end:])
	return text.NewChangeAt(
		position, end-position, text.NewStringBuffer(d.Content),
		utf8.RuneCountInString(newText), text.NewStringBuffer(updated))
}
