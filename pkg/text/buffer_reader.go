package text

import "github.com/yaklabco/razorlex/pkg/source"

// BufferReader reads a Buffer sequentially from its current position,
// tracking locations as it goes. Rolling back a lookahead moves the buffer
// cursor back to the saved absolute offset.
type BufferReader struct {
	buffer    Buffer
	tracker   *source.Tracker
	backtrack backtrackStack
}

var _ LookaheadReader = (*BufferReader)(nil)

// NewBufferReader wraps buffer. Locations are counted from source.Zero.
func NewBufferReader(buffer Buffer) *BufferReader {
	return &BufferReader{buffer: buffer, tracker: source.NewTracker(source.Zero)}
}

// Buffer returns the wrapped buffer.
func (r *BufferReader) Buffer() Buffer {
	return r.buffer
}

// CurrentLocation implements LookaheadReader.
func (r *BufferReader) CurrentLocation() source.Location {
	return r.tracker.Location()
}

// Peek implements Reader.
func (r *BufferReader) Peek() rune {
	return r.buffer.Peek()
}

// Read implements Reader.
func (r *BufferReader) Read() rune {
	ch := r.buffer.Read()
	if ch != EOF {
		next := r.buffer.Peek()
		if next == EOF {
			next = 0
		}
		r.tracker.Update(ch, next)
	}
	return ch
}

// Close closes the buffer when it is closable.
func (r *BufferReader) Close() error {
	if closer, ok := r.buffer.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// BeginLookahead implements LookaheadReader.
func (r *BufferReader) BeginLookahead() *Lookahead {
	ctx := &backtrackContext{location: r.CurrentLocation()}
	r.backtrack.push(ctx)
	return newLookahead(
		func() bool {
			if !r.backtrack.popIfTop(ctx) {
				return false
			}
			r.tracker.SetLocation(ctx.location)
			r.buffer.SetPosition(ctx.location.Absolute)
			return true
		},
		func() bool { return r.backtrack.popIfTop(ctx) },
	)
}

// CancelBacktrack implements LookaheadReader.
func (r *BufferReader) CancelBacktrack() {
	r.backtrack.pop()
}
