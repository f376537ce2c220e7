package lsp

import (
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Offset converts a protocol position, whose character counts UTF-16 code
// units, into a character offset in content. Characters past the end of a
// line clamp to the line end and lines past the end clamp to the content end.
func Offset(content string, pos protocol.Position) int {
	runes := []rune(content)

	i, line := 0, 0
	for line < int(pos.Line) {
		if i >= len(runes) {
			return len(runes)
		}
		switch runes[i] {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			line++
		case '\n':
			line++
		}
		i++
	}

	units := 0
	for i < len(runes) && !isLineBreak(runes[i]) {
		width := unitLen(runes[i])
		if units+width > int(pos.Character) {
			break
		}
		units += width
		i++
	}
	return i
}

// PositionAt converts a character offset in content into a protocol position.
func PositionAt(content string, offset int) protocol.Position {
	var pos protocol.Position

	runes := []rune(content)
	offset = min(max(offset, 0), len(runes))
	for i := 0; i < offset; i++ {
		switch runes[i] {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}
			pos.Line++
			pos.Character = 0
		case '\n':
			pos.Line++
			pos.Character = 0
		default:
			pos.Character += protocol.UInteger(unitLen(runes[i]))
		}
	}
	return pos
}

func isLineBreak(ch rune) bool {
	return ch == '\n' || ch == '\r'
}

// unitLen is the UTF-16 length of ch; invalid runes count as one unit.
func unitLen(ch rune) int {
	if n := utf16.RuneLen(ch); n > 0 {
		return n
	}
	return 1
}
