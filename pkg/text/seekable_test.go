package text_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/text"
)

func TestSeekableReader(t *testing.T) {
	t.Parallel()

	reader := text.NewSeekableReader("ab\ncd")
	assert.Equal(t, 5, reader.Len())
	assert.Equal(t, 'a', reader.Peek())

	reader.SetPosition(3)
	assert.Equal(t, source.NewLocation(3, 1, 0), reader.Location())
	assert.Equal(t, 'c', reader.Read())

	reader.Seek(-2)
	assert.Equal(t, 2, reader.Position())
	assert.Equal(t, '\n', reader.Peek())

	reader.SetPosition(5)
	assert.Equal(t, text.EOF, reader.Read())
	assert.Equal(t, source.NewLocation(5, 1, 2), reader.Location())
}

func TestSeekableReader_Empty(t *testing.T) {
	t.Parallel()

	reader := text.NewSeekableReader("")
	assert.Equal(t, text.EOF, reader.Peek())
	assert.Equal(t, source.Zero, reader.Location())
}

func TestSeekableReader_Lookahead(t *testing.T) {
	t.Parallel()

	reader := text.NewSeekableReader("abcdefg")
	assert.Equal(t, "abcbcdc", runScript(reader,
		readSingle,
		lookahead(readSingle, readSingle),
		readSingle,
		lookahead(readSingle, readSingle),
		readSingle,
	))
	assert.Equal(t, "abcdefg", runScript(text.NewSeekableReader("abcdefg"),
		lookahead(readN(2), cancelBacktrack),
		readToEnd,
	))
}

func TestDocumentReader(t *testing.T) {
	t.Parallel()

	document := text.NewSeekableReader("abc\ndef")
	reader := text.NewDocumentReader(document)

	assert.Equal(t, 7, reader.Len())
	assert.Equal(t, "abcdabcdefg", runScript(text.NewDocumentReader(text.NewSeekableReader("abcdefg")),
		lookahead(readN(2), lookahead(readSingle, cancelBacktrack), readSingle),
		readToEnd,
	))

	reader.Seek(4)
	assert.Equal(t, source.NewLocation(4, 1, 0), reader.CurrentLocation())
	assert.Equal(t, 'd', reader.Read())
	assert.Equal(t, 5, document.Position())
	assert.NoError(t, reader.Close())
}

func TestBufferReader(t *testing.T) {
	t.Parallel()

	buffer := text.NewStringBuffer("f\r\nbar")
	reader := text.NewBufferReader(buffer)

	out := runScript(reader, readN(3), lookahead(readN(2)), readSingle)
	assert.Equal(t, "f\r\nbab", out)
	assert.Equal(t, source.NewLocation(4, 1, 1), reader.CurrentLocation())
	assert.Equal(t, 4, buffer.Position())
	assert.Equal(t, "ar", text.ReadToEnd(reader))
	assert.Equal(t, text.EOF, reader.Peek())
}
