package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		pos     protocol.Position
		want    int
	}{
		{"start", "abc", protocol.Position{}, 0},
		{"same line", "abc\ndef", protocol.Position{Line: 0, Character: 2}, 2},
		{"second line", "abc\ndef", protocol.Position{Line: 1, Character: 1}, 5},
		{"past line end clamps", "abc\ndef", protocol.Position{Line: 0, Character: 10}, 3},
		{"past last line clamps", "abc\ndef", protocol.Position{Line: 5, Character: 0}, 7},
		{"crlf is one break", "ab\r\ncd", protocol.Position{Line: 1, Character: 1}, 5},
		{"lone cr breaks", "ab\rcd", protocol.Position{Line: 1, Character: 0}, 3},
		{"surrogate pair counts two units", "\U0001F600x", protocol.Position{Line: 0, Character: 2}, 1},
		{"inside surrogate pair stays before", "\U0001F600x", protocol.Position{Line: 0, Character: 1}, 0},
		{"bmp rune counts one unit", "\u00e9x", protocol.Position{Line: 0, Character: 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Offset(tt.content, tt.pos))
		})
	}
}

func TestPositionAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		offset  int
		want    protocol.Position
	}{
		{"start", "abc", 0, protocol.Position{}},
		{"second line", "abc\ndef", 5, protocol.Position{Line: 1, Character: 1}},
		{"crlf", "ab\r\ncd", 5, protocol.Position{Line: 1, Character: 1}},
		{"between cr and lf", "ab\r\ncd", 3, protocol.Position{Line: 0, Character: 2}},
		{"surrogate pair", "\U0001F600x", 1, protocol.Position{Line: 0, Character: 2}},
		{"clamped", "ab", 10, protocol.Position{Line: 0, Character: 2}},
		{"negative", "ab", -1, protocol.Position{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PositionAt(tt.content, tt.offset))
		})
	}
}

func TestOffset_RoundTrip(t *testing.T) {
	t.Parallel()

	content := "a\u00e9\n\U0001F600b\r\nc"
	for offset := range len([]rune(content)) {
		pos := PositionAt(content, offset)
		got := Offset(content, pos)
		// The LF of a CRLF pair maps back to its CR.
		if offset == 6 {
			assert.Equal(t, 5, got)
			continue
		}
		assert.Equal(t, offset, got, "offset %d", offset)
	}
}
