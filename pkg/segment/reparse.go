package segment

import (
	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/text"
	"github.com/yaklabco/razorlex/pkg/tree"
)

// ReparseResult reports how Reparse applied a change.
type ReparseResult struct {
	// Owner is the span that owned the change in the old tree.
	Owner *tree.Span
	// Reparsed is true when the whole document was segmented again and
	// false when only Owner was rebuilt in place.
	Reparsed bool
}

// Reparse applies change to doc. When the edit stays inside one span and
// leaves the tree shape unchanged, only that span is rebuilt and the spans
// after it are moved. Otherwise the whole document is segmented again.
func Reparse(doc *Document, change text.Change) ReparseResult {
	change = change.Normalize()
	content := change.Apply(doc.Content, 0)

	owner := doc.Root.LocateOwner(change)
	if owner == nil || !doc.respan(owner, change, content) {
		doc.reset(content)
		return ReparseResult{Owner: owner, Reparsed: true}
	}
	return ReparseResult{Owner: owner}
}

func (d *Document) respan(owner *tree.Span, change text.Change, content string) bool {
	start := owner.Start().Absolute
	end := start + owner.Length()
	changeEnd := change.OldPosition + change.OldLength

	if change.OldPosition < start || changeEnd > end {
		return false
	}
	if owner.Accepts() == tree.AcceptsNone || !owner.Accepts().AllowsText(change.NewText()) {
		return false
	}

	// Text touching a boundary can merge with the neighbouring span unless a
	// line break separates them.
	if prev := owner.Prev(); change.OldPosition == start && prev != nil && !d.engine.endsLine(prev) {
		return false
	}
	if changeEnd == end && owner.Next() != nil && !d.engine.endsLine(owner) {
		return false
	}

	builder, ok := d.engine.respan(owner, change.Apply(owner.Content(), start))
	if !ok {
		return false
	}

	owner.ReplaceWith(builder)
	owner.ChangeStart(owner.Start())

	d.Content = content
	d.Errors = relocateErrors(d.Errors, start, end, change.NewLength-change.OldLength, content)
	return true
}

// relocateErrors drops the errors inside [start, end) and moves the ones
// after it by delta characters in content.
func relocateErrors(sink *source.ErrorSink, start, end, delta int, content string) *source.ErrorSink {
	buffer := text.NewLineTrackingBuffer()
	buffer.Append(content)

	relocated := source.NewErrorSink()
	for _, err := range sink.Errors() {
		switch position := err.Location.Absolute; {
		case position < start:
			relocated.OnError(err)
		case position < end:
			// Rebuilt with the owner.
		default:
			err.Location = locate(buffer, position+delta)
			relocated.OnError(err)
		}
	}
	return relocated
}

func locate(buffer *text.LineTrackingBuffer, position int) source.Location {
	if position >= buffer.Len() {
		return buffer.EndLocation()
	}
	return buffer.CharAt(position).Location
}
