package text

import "github.com/yaklabco/razorlex/pkg/source"

// DocumentReader adapts any Document to the sequential LookaheadReader
// contract. Lookahead saves the document position and restores it on
// Close unless accepted.
type DocumentReader struct {
	document  Document
	backtrack backtrackStack
}

var (
	_ Document        = (*DocumentReader)(nil)
	_ LookaheadReader = (*DocumentReader)(nil)
)

// NewDocumentReader wraps document.
func NewDocumentReader(document Document) *DocumentReader {
	return &DocumentReader{document: document}
}

// Document returns the wrapped document.
func (r *DocumentReader) Document() Document { return r.document }

// Len implements Buffer.
func (r *DocumentReader) Len() int { return r.document.Len() }

// Position implements Buffer.
func (r *DocumentReader) Position() int { return r.document.Position() }

// SetPosition implements Buffer.
func (r *DocumentReader) SetPosition(position int) { r.document.SetPosition(position) }

// Seek moves the position by count characters.
func (r *DocumentReader) Seek(count int) { r.SetPosition(r.Position() + count) }

// Location implements Document.
func (r *DocumentReader) Location() source.Location { return r.document.Location() }

// CurrentLocation implements LookaheadReader.
func (r *DocumentReader) CurrentLocation() source.Location { return r.document.Location() }

// Peek implements Reader.
func (r *DocumentReader) Peek() rune { return r.document.Peek() }

// Read implements Reader.
func (r *DocumentReader) Read() rune { return r.document.Read() }

// Close closes the document when it is closable.
func (r *DocumentReader) Close() error {
	if closer, ok := r.document.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// BeginLookahead implements LookaheadReader.
func (r *DocumentReader) BeginLookahead() *Lookahead {
	ctx := &backtrackContext{location: r.Location(), position: r.Position()}
	r.backtrack.push(ctx)
	return newLookahead(
		func() bool {
			if !r.backtrack.popIfTop(ctx) {
				return false
			}
			r.SetPosition(ctx.position)
			return true
		},
		func() bool { return r.backtrack.popIfTop(ctx) },
	)
}

// CancelBacktrack implements LookaheadReader.
func (r *DocumentReader) CancelBacktrack() {
	r.backtrack.pop()
}
