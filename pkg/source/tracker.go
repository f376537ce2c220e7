package source

// Tracker advances a Location over consumed text. It owns no buffer; every
// update is pure position arithmetic.
type Tracker struct {
	current Location
	// pendingCR is set when the last character was a bare '\r' whose
	// successor was unknown. A '\n' arriving next completes that newline
	// instead of starting another one.
	pendingCR bool
}

// NewTracker creates a Tracker positioned at start.
func NewTracker(start Location) *Tracker {
	return &Tracker{current: start}
}

// Location returns the tracked location.
func (t *Tracker) Location() Location {
	return t.current
}

// SetLocation moves the tracker without consuming text.
func (t *Tracker) SetLocation(location Location) {
	t.current = location
	t.pendingCR = false
}

// Update consumes ch. next is the character that follows it, or 0 at the
// end of input, and is needed so that "\r\n" counts as a single line break.
func (t *Tracker) Update(ch, next rune) {
	t.current.Absolute++

	if ch == '\n' && t.pendingCR {
		t.pendingCR = false
		return
	}
	t.pendingCR = false

	if isNewLine(ch) && (ch != '\r' || next != '\n') {
		t.current.Line++
		t.current.Character = 0
		t.pendingCR = ch == '\r' && next == 0
		return
	}
	t.current.Character++
}

// UpdateString consumes every character of content.
func (t *Tracker) UpdateString(content string) {
	runes := []rune(content)
	for i, ch := range runes {
		var next rune
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		t.Update(ch, next)
	}
}

// CalculateNewLocation returns the location reached after consuming content
// from start. It never mutates shared state.
func CalculateNewLocation(start Location, content string) Location {
	tracker := NewTracker(start)
	tracker.UpdateString(content)
	return tracker.Location()
}

// isNewLine mirrors text.IsNewLine; source sits below text in the
// dependency order and cannot import it.
func isNewLine(ch rune) bool {
	switch ch {
	case '\r', '\n', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
