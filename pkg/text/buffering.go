package text

import "github.com/yaklabco/razorlex/pkg/source"

// BufferingReader adds nested lookahead to a sequential Reader that cannot
// seek. Characters read while a lookahead is open are kept in a replay
// buffer; the buffer is dropped once no lookahead is open and the cursor has
// caught up with its end.
type BufferingReader struct {
	inner     Reader
	tracker   *source.Tracker
	current   rune
	buffer    []rune
	position  int
	buffering bool
	backtrack backtrackStack
}

var _ LookaheadReader = (*BufferingReader)(nil)

// NewBufferingReader wraps inner.
func NewBufferingReader(inner Reader) *BufferingReader {
	r := &BufferingReader{
		inner:   inner,
		tracker: source.NewTracker(source.Zero),
	}
	r.updateCurrent()
	return r
}

// CurrentLocation implements LookaheadReader.
func (r *BufferingReader) CurrentLocation() source.Location {
	return r.tracker.Location()
}

// Peek implements Reader.
func (r *BufferingReader) Peek() rune {
	return r.current
}

// Read implements Reader.
func (r *BufferingReader) Read() rune {
	ch := r.current
	r.nextCharacter()
	return ch
}

// Close closes the wrapped reader.
func (r *BufferingReader) Close() error {
	return r.inner.Close()
}

// BeginLookahead implements LookaheadReader.
func (r *BufferingReader) BeginLookahead() *Lookahead {
	if !r.buffering {
		r.expandBuffer()
		r.buffering = true
	}
	ctx := &backtrackContext{location: r.CurrentLocation(), position: r.position}
	r.backtrack.push(ctx)
	return newLookahead(
		func() bool { return r.endLookahead(ctx) },
		func() bool { return r.backtrack.popIfTop(ctx) },
	)
}

// CancelBacktrack implements LookaheadReader.
func (r *BufferingReader) CancelBacktrack() {
	r.backtrack.pop()
}

// Buffered returns the number of characters held in the replay buffer.
func (r *BufferingReader) Buffered() int {
	return len(r.buffer)
}

// Buffering reports whether reads are served from the replay buffer.
func (r *BufferingReader) Buffering() bool {
	return r.buffering
}

func (r *BufferingReader) endLookahead(ctx *backtrackContext) bool {
	if !r.backtrack.popIfTop(ctx) {
		return false
	}
	r.position = ctx.position
	r.tracker.SetLocation(ctx.location)
	r.updateCurrent()
	return true
}

// expandBuffer pulls one character from the inner reader into the buffer
// and moves the cursor onto it.
func (r *BufferingReader) expandBuffer() bool {
	ch := r.inner.Read()
	if ch == EOF {
		return false
	}
	r.buffer = append(r.buffer, ch)
	r.position = len(r.buffer) - 1
	return true
}

func (r *BufferingReader) nextCharacter() {
	previous := r.current
	if previous == EOF {
		return
	}

	if r.buffering {
		if r.position >= len(r.buffer)-1 {
			if r.backtrack.empty() {
				r.buffer = r.buffer[:0]
				r.position = 0
				r.buffering = false
			} else if !r.expandBuffer() {
				r.position = len(r.buffer)
			}
		} else {
			r.position++
		}
	} else {
		r.inner.Read()
	}

	r.updateCurrent()

	next := r.current
	if next == EOF {
		next = 0
	}
	r.tracker.Update(previous, next)
}

func (r *BufferingReader) updateCurrent() {
	if r.buffering && r.position < len(r.buffer) {
		r.current = r.buffer[r.position]
		return
	}
	r.current = r.inner.Peek()
}
