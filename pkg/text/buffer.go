package text

import "github.com/yaklabco/razorlex/pkg/source"

// Buffer is an addressable character buffer with a settable cursor.
type Buffer interface {
	// Len is the number of characters in the buffer.
	Len() int
	// Position is the index of the next character Read returns.
	Position() int
	// SetPosition moves the cursor.
	SetPosition(position int)
	// Read returns the character at the cursor and advances, or EOF.
	Read() rune
	// Peek returns the character at the cursor, or EOF.
	Peek() rune
}

// Document is a Buffer that also knows the source location of its cursor.
type Document interface {
	Buffer
	Location() source.Location
}

// StringBuffer is a Buffer over an in-memory string.
type StringBuffer struct {
	runes    []rune
	position int
}

var _ Buffer = (*StringBuffer)(nil)

// NewStringBuffer creates a buffer holding s.
func NewStringBuffer(s string) *StringBuffer {
	return &StringBuffer{runes: []rune(s)}
}

// Len implements Buffer.
func (b *StringBuffer) Len() int { return len(b.runes) }

// Position implements Buffer.
func (b *StringBuffer) Position() int { return b.position }

// SetPosition implements Buffer.
func (b *StringBuffer) SetPosition(position int) { b.position = position }

// Peek implements Buffer.
func (b *StringBuffer) Peek() rune {
	if b.position < 0 || b.position >= len(b.runes) {
		return EOF
	}
	return b.runes[b.position]
}

// Read implements Buffer.
func (b *StringBuffer) Read() rune {
	ch := b.Peek()
	if ch != EOF {
		b.position++
	}
	return ch
}

// String returns the whole buffer.
func (b *StringBuffer) String() string {
	return string(b.runes)
}

// ReadBufferToEnd reads every remaining character of b.
func ReadBufferToEnd(b Buffer) string {
	runes := make([]rune, 0, max(b.Len()-b.Position(), 0))
	for ch := b.Read(); ch != EOF; ch = b.Read() {
		runes = append(runes, ch)
	}
	return string(runes)
}
