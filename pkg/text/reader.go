package text

import "strings"

// Reader is a sequential character source. Peek and Read return EOF at the
// end of input, repeatedly and without error.
type Reader interface {
	// Peek returns the next character without consuming it.
	Peek() rune
	// Read consumes and returns the next character.
	Read() rune
	// Close releases the reader and anything it wraps.
	Close() error
}

// ReadInto reads up to count characters into buf starting at index and
// returns how many were read.
func ReadInto(r Reader, buf []rune, index, count int) int {
	if index < 0 || count < 0 || index+count > len(buf) {
		panic("text: ReadInto range out of bounds")
	}
	n := 0
	for n < count {
		ch := r.Read()
		if ch == EOF {
			break
		}
		buf[index+n] = ch
		n++
	}
	return n
}

// ReadLine reads up to the next line terminator and returns the line
// without it. "\r\n" is consumed as one terminator. ok is false only when
// the reader was already at EOF.
func ReadLine(r Reader) (string, bool) {
	if r.Peek() == EOF {
		return "", false
	}
	var builder strings.Builder
	for {
		ch := r.Read()
		switch ch {
		case EOF:
			return builder.String(), true
		case '\r':
			if r.Peek() == '\n' {
				r.Read()
			}
			return builder.String(), true
		case '\n':
			return builder.String(), true
		}
		builder.WriteRune(ch)
	}
}

// ReadToEnd consumes every remaining character.
func ReadToEnd(r Reader) string {
	var builder strings.Builder
	for ch := r.Read(); ch != EOF; ch = r.Read() {
		builder.WriteRune(ch)
	}
	return builder.String()
}

// StringReader reads the characters of a string.
type StringReader struct {
	runes    []rune
	position int
}

// NewStringReader creates a reader over s.
func NewStringReader(s string) *StringReader {
	return &StringReader{runes: []rune(s)}
}

// Peek implements Reader.
func (r *StringReader) Peek() rune {
	if r.position >= len(r.runes) {
		return EOF
	}
	return r.runes[r.position]
}

// Read implements Reader.
func (r *StringReader) Read() rune {
	ch := r.Peek()
	if ch != EOF {
		r.position++
	}
	return ch
}

// Close implements Reader.
func (r *StringReader) Close() error {
	return nil
}
