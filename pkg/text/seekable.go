package text

import "github.com/yaklabco/razorlex/pkg/source"

// SeekableReader is a random-access reader over fully materialized text.
// Its position can be set directly and every character's location comes
// from the line index of a LineTrackingBuffer.
type SeekableReader struct {
	buffer    *LineTrackingBuffer
	position  int
	current   rune
	location  source.Location
	backtrack backtrackStack
}

var (
	_ Document        = (*SeekableReader)(nil)
	_ LookaheadReader = (*SeekableReader)(nil)
)

// NewSeekableReader creates a reader over content.
func NewSeekableReader(content string) *SeekableReader {
	r := &SeekableReader{buffer: NewLineTrackingBuffer()}
	r.buffer.Append(content)
	r.updateState()
	return r
}

// NewSeekableReaderFrom drains r and creates a reader over what it read.
func NewSeekableReaderFrom(r Reader) *SeekableReader {
	return NewSeekableReader(ReadToEnd(r))
}

// Buffer returns the underlying line-tracking buffer.
func (r *SeekableReader) Buffer() *LineTrackingBuffer {
	return r.buffer
}

// Len implements Buffer.
func (r *SeekableReader) Len() int {
	return r.buffer.Len()
}

// Position implements Buffer.
func (r *SeekableReader) Position() int {
	return r.position
}

// SetPosition implements Buffer.
func (r *SeekableReader) SetPosition(position int) {
	if r.position != position {
		r.position = position
		r.updateState()
	}
}

// Seek moves the position by count characters.
func (r *SeekableReader) Seek(count int) {
	r.SetPosition(r.position + count)
}

// Location implements Document.
func (r *SeekableReader) Location() source.Location {
	return r.location
}

// CurrentLocation implements LookaheadReader.
func (r *SeekableReader) CurrentLocation() source.Location {
	return r.location
}

// Peek implements Reader.
func (r *SeekableReader) Peek() rune {
	return r.current
}

// Read implements Reader.
func (r *SeekableReader) Read() rune {
	ch := r.current
	if ch == EOF {
		return EOF
	}
	r.position++
	r.updateState()
	return ch
}

// Close implements Reader.
func (r *SeekableReader) Close() error {
	return nil
}

// BeginLookahead implements LookaheadReader.
func (r *SeekableReader) BeginLookahead() *Lookahead {
	ctx := &backtrackContext{location: r.location, position: r.position}
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
func (r *SeekableReader) CancelBacktrack() {
	r.backtrack.pop()
}

func (r *SeekableReader) updateState() {
	switch {
	case r.position >= 0 && r.position < r.buffer.Len():
		ref := r.buffer.CharAt(r.position)
		r.current = ref.Character
		r.location = ref.Location
	case r.buffer.Len() == 0:
		r.current = EOF
		r.location = source.Zero
	default:
		r.current = EOF
		r.location = r.buffer.EndLocation()
	}
}
