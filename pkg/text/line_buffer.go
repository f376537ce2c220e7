package text

import (
	"fmt"

	"github.com/yaklabco/razorlex/pkg/source"
)

// CharacterReference is a character together with its location.
type CharacterReference struct {
	Character rune
	Location  source.Location
}

// textLine is one line record. content includes the line terminator.
type textLine struct {
	start   int
	index   int
	content []rune
}

func (l *textLine) end() int {
	return l.start + len(l.content)
}

func (l *textLine) contains(position int) bool {
	return position >= l.start && position < l.end()
}

// LineTrackingBuffer is an append-only character buffer that keeps a line
// index so a character's location can be found without rescanning.
type LineTrackingBuffer struct {
	lines       []*textLine
	currentLine *textLine
}

// NewLineTrackingBuffer creates an empty buffer with a single empty line.
func NewLineTrackingBuffer() *LineTrackingBuffer {
	return &LineTrackingBuffer{lines: []*textLine{{}}}
}

func (b *LineTrackingBuffer) endLine() *textLine {
	return b.lines[len(b.lines)-1]
}

// Len returns the number of characters appended so far.
func (b *LineTrackingBuffer) Len() int {
	return b.endLine().end()
}

// LineCount returns the number of line records.
func (b *LineTrackingBuffer) LineCount() int {
	return len(b.lines)
}

// EndLocation is the location just past the last character.
func (b *LineTrackingBuffer) EndLocation() source.Location {
	last := b.endLine()
	return source.NewLocation(b.Len(), len(b.lines)-1, len(last.content))
}

// Append adds content, opening a new line record after every line
// terminator. A '\r' directly followed by '\n' does not end the line.
func (b *LineTrackingBuffer) Append(content string) {
	runes := []rune(content)
	for i, ch := range runes {
		line := b.endLine()
		line.content = append(line.content, ch)

		bareCR := ch == '\r' && (i+1 == len(runes) || runes[i+1] != '\n')
		if bareCR || (ch != '\r' && IsNewLine(ch)) {
			b.pushNewLine()
		}
	}
}

// CharAt returns the character at position with its location. It panics
// when position is outside the buffer.
func (b *LineTrackingBuffer) CharAt(position int) CharacterReference {
	line := b.findLine(position)
	if line == nil {
		panic(fmt.Sprintf("text: position %d out of range [0,%d)", position, b.Len()))
	}
	column := position - line.start
	return CharacterReference{
		Character: line.content[column],
		Location:  source.NewLocation(position, line.index, column),
	}
}

// String returns the full content.
func (b *LineTrackingBuffer) String() string {
	runes := make([]rune, 0, b.Len())
	for _, line := range b.lines {
		runes = append(runes, line.content...)
	}
	return string(runes)
}

func (b *LineTrackingBuffer) findLine(position int) *textLine {
	var selected *textLine

	if b.currentLine != nil {
		switch {
		case b.currentLine.contains(position):
			selected = b.currentLine
		case position >= b.currentLine.end() && b.currentLine.index+1 < len(b.lines):
			selected = b.scanLines(position, b.currentLine.index+1)
		}
	}

	if selected == nil {
		selected = b.scanLines(position, 0)
	}

	if selected != nil {
		b.currentLine = selected
	}
	return selected
}

// scanLines searches every line once, starting at index start and wrapping.
func (b *LineTrackingBuffer) scanLines(position, start int) *textLine {
	for i := range b.lines {
		line := b.lines[(i+start)%len(b.lines)]
		if line.contains(position) {
			return line
		}
	}
	return nil
}

func (b *LineTrackingBuffer) pushNewLine() {
	end := b.endLine()
	b.lines = append(b.lines, &textLine{start: end.end(), index: end.index + 1})
}
