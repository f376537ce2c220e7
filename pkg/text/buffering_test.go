package text_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/text"
)

// step is one scripted action against a reader; it appends what it read.
type step func(out *strings.Builder, r text.LookaheadReader)

func readSingle(out *strings.Builder, r text.LookaheadReader) {
	out.WriteRune(r.Read())
}

func readN(n int) step {
	return func(out *strings.Builder, r text.LookaheadReader) {
		for range n {
			readSingle(out, r)
		}
	}
}

func readToEnd(out *strings.Builder, r text.LookaheadReader) {
	out.WriteString(text.ReadToEnd(r))
}

func cancelBacktrack(_ *strings.Builder, r text.LookaheadReader) {
	r.CancelBacktrack()
}

func lookahead(steps ...step) step {
	return func(out *strings.Builder, r text.LookaheadReader) {
		la := r.BeginLookahead()
		defer la.Close()
		for _, s := range steps {
			s(out, r)
		}
	}
}

func runScript(r text.LookaheadReader, steps ...step) string {
	var out strings.Builder
	for _, s := range steps {
		s(&out, r)
	}
	return out.String()
}

func newBuffering(s string) *text.BufferingReader {
	return text.NewBufferingReader(text.NewStringReader(s))
}

func TestBufferingReader_Lookahead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		steps    []step
		expected string
	}{
		{
			name:     "end lookahead returns to previous location",
			steps:    []step{readSingle, lookahead(readSingle, readSingle), readSingle},
			expected: "abcb",
		},
		{
			name: "multiple lookaheads",
			steps: []step{
				readSingle,
				lookahead(readSingle, readSingle),
				readSingle,
				lookahead(readSingle, readSingle),
				readSingle,
			},
			expected: "abcbcdc",
		},
		{
			name: "nested lookaheads",
			steps: []step{
				readSingle,
				lookahead(readSingle, readSingle, readSingle, lookahead(readSingle, readSingle), readSingle),
				readSingle,
				readSingle,
			},
			expected: "abcdefebc",
		},
		{
			name:     "reads continue past end of buffer",
			steps:    []step{readSingle, lookahead(readN(2)), readN(2), readToEnd},
			expected: "abcbcdefg",
		},
		{
			name:     "cancel backtrack stops rollback",
			steps:    []step{lookahead(readN(2), cancelBacktrack), readToEnd},
			expected: "abcdefg",
		},
		{
			name: "cancel backtrack only affects innermost lookahead",
			steps: []step{
				lookahead(readN(2), lookahead(readSingle, cancelBacktrack), readSingle),
				readToEnd,
			},
			expected: "abcdabcdefg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := newBuffering("abcdefg")
			defer reader.Close()
			assert.Equal(t, tt.expected, runScript(reader, tt.steps...))
		})
	}
}

func TestBufferingReader_PeekAndRead(t *testing.T) {
	t.Parallel()

	reader := newBuffering("abc")
	reader.Read()
	reader.Read()

	assert.Equal(t, 'c', reader.Peek())
	assert.Equal(t, 'c', reader.Peek())
	assert.Equal(t, 'c', reader.Read())
	assert.Equal(t, text.EOF, reader.Peek())
	assert.Equal(t, text.EOF, reader.Read())
	assert.Equal(t, text.EOF, reader.Read())
}

func TestBufferingReader_Locations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		reads    int
		expected source.Location
	}{
		{"abcdefg", 0, source.Zero},
		{"abcdefg", 4, source.NewLocation(4, 0, 4)},
		{"f\r\nb", 2, source.NewLocation(2, 0, 2)},
		{"f\r\nb", 3, source.NewLocation(3, 1, 0)},
		{"f\rb", 2, source.NewLocation(2, 1, 0)},
		{"f\nb", 2, source.NewLocation(2, 1, 0)},
	}

	for _, tt := range tests {
		reader := newBuffering(tt.input)
		for range tt.reads {
			reader.Read()
		}
		assert.Equal(t, tt.expected, reader.CurrentLocation(), "%q after %d reads", tt.input, tt.reads)
	}
}

func TestBufferingReader_EndLookaheadRestoresLocation(t *testing.T) {
	t.Parallel()

	reader := newBuffering("abc\r\ndef\r\nghi")
	readN(6)(&strings.Builder{}, reader)
	expected := reader.CurrentLocation()

	lookahead(readN(6))(&strings.Builder{}, reader)

	assert.Equal(t, expected, reader.CurrentLocation())
	assert.Equal(t, 'e', reader.Peek())
}

func TestBufferingReader_ReadIntoSupportsLookahead(t *testing.T) {
	t.Parallel()

	reader := newBuffering("abcdefg")
	reader.Read()

	buf := make([]rune, 4)
	var n int
	var inside source.Location
	func() {
		la := reader.BeginLookahead()
		defer la.Close()
		n = text.ReadInto(reader, buf, 0, 4)
		inside = reader.CurrentLocation()
	}()

	assert.Equal(t, "bcde", string(buf))
	assert.Equal(t, 4, n)
	assert.Equal(t, source.NewLocation(5, 0, 5), inside)
	assert.Equal(t, source.NewLocation(1, 0, 1), reader.CurrentLocation())
	assert.Equal(t, 'b', reader.Peek())
}

func TestBufferingReader_ReadUntilSupportsLookahead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		read     func(text.Reader) string
		expected source.Location
	}{
		{
			name:     "read line",
			read:     func(r text.Reader) string { line, _ := text.ReadLine(r); return line },
			expected: source.NewLocation(8, 2, 0),
		},
		{
			name:     "read to end",
			read:     func(r text.Reader) string { return text.ReadToEnd(r) },
			expected: source.NewLocation(11, 2, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reader := newBuffering("\\r\nbcd\r\nefg")
			reader.Read()
			reader.Read()
			reader.Read()

			var got string
			var inside source.Location
			func() {
				la := reader.BeginLookahead()
				defer la.Close()
				got = tt.read(reader)
				inside = reader.CurrentLocation()
			}()

			assert.Equal(t, source.NewLocation(3, 1, 0), reader.CurrentLocation())
			assert.Equal(t, tt.expected, inside)
			assert.Equal(t, 'b', reader.Peek())
			assert.Equal(t, got, tt.read(reader))
		})
	}
}

func TestBufferingReader_ReadLineLocation(t *testing.T) {
	t.Parallel()

	reader := newBuffering("abc\r\ndef")
	line, ok := text.ReadLine(reader)

	require.True(t, ok)
	assert.Equal(t, "abc", line)
	assert.Equal(t, source.NewLocation(5, 1, 0), reader.CurrentLocation())
}

func TestBufferingReader_AcceptKeepsPosition(t *testing.T) {
	t.Parallel()

	reader := newBuffering("abcdefg")
	func() {
		la := reader.BeginLookahead()
		defer la.Close()
		reader.Read()
		reader.Read()
		la.Accept()
		assert.True(t, la.Accepted())
	}()

	assert.Equal(t, 'c', reader.Peek())
	assert.Equal(t, source.NewLocation(2, 0, 2), reader.CurrentLocation())
}

func TestBufferingReader_OutOfOrderCloseIsNoop(t *testing.T) {
	t.Parallel()

	reader := newBuffering("abcdefg")
	outer := reader.BeginLookahead()
	reader.Read()
	inner := reader.BeginLookahead()
	reader.Read()

	outer.Close()
	assert.Equal(t, 'c', reader.Peek(), "closing a non-innermost lookahead must not move the reader")

	inner.Close()
	assert.Equal(t, 'b', reader.Peek())
}

func TestBufferingReader_OuterCloseRetriedAfterInner(t *testing.T) {
	t.Parallel()

	reader := newBuffering("abcdefg")
	outer := reader.BeginLookahead()
	reader.Read()
	inner := reader.BeginLookahead()
	reader.Read()

	outer.Close()
	assert.False(t, outer.Done())

	inner.Close()
	assert.True(t, inner.Done())

	outer.Close()
	assert.True(t, outer.Done())
	assert.Equal(t, 'a', reader.Peek())

	reader.Read()
	next := reader.BeginLookahead()
	reader.Read()
	reader.CancelBacktrack()
	next.Close()
	assert.Equal(t, 'c', reader.Peek(), "cancelled lookahead must not rewind")
}

func TestBufferingReader_BufferReleased(t *testing.T) {
	t.Parallel()

	reader := newBuffering("abcdefg")
	reader.Read()
	lookahead(readSingle)(&strings.Builder{}, reader)
	reader.Read()

	assert.True(t, reader.Buffering())
	assert.Positive(t, reader.Buffered())

	reader.Read()

	assert.False(t, reader.Buffering())
	assert.Equal(t, 0, reader.Buffered())
	assert.Equal(t, 'd', reader.Peek())
}

func TestBufferingReader_LookaheadAtEOF(t *testing.T) {
	t.Parallel()

	reader := newBuffering("a")
	reader.Read()
	lookahead(readSingle, readSingle)(&strings.Builder{}, reader)

	assert.Equal(t, text.EOF, reader.Read())
	assert.Equal(t, source.NewLocation(1, 0, 1), reader.CurrentLocation())
}

func TestBufferingReader_ReadToEnd(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abcdefg", text.ReadToEnd(newBuffering("abcdefg")))
}
