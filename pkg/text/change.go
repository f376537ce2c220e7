package text

import (
	"fmt"
	"strings"
)

// Change describes one edit: OldLength characters at OldPosition in
// OldBuffer were replaced by NewLength characters at NewPosition in
// NewBuffer.
type Change struct {
	OldPosition int
	OldLength   int
	OldBuffer   Buffer
	NewPosition int
	NewLength   int
	NewBuffer   Buffer
}

// NewChange creates a Change.
func NewChange(oldPosition, oldLength int, oldBuffer Buffer, newPosition, newLength int, newBuffer Buffer) Change {
	return Change{
		OldPosition: oldPosition,
		OldLength:   oldLength,
		OldBuffer:   oldBuffer,
		NewPosition: newPosition,
		NewLength:   newLength,
		NewBuffer:   newBuffer,
	}
}

// NewChangeAt creates a Change whose new text starts where the old text did.
func NewChangeAt(position, oldLength int, oldBuffer Buffer, newLength int, newBuffer Buffer) Change {
	return NewChange(position, oldLength, oldBuffer, position, newLength, newBuffer)
}

// IsInsert reports whether the change only adds text.
func (c Change) IsInsert() bool {
	return c.OldLength == 0 && c.NewLength > 0
}

// IsDelete reports whether the change only removes text.
func (c Change) IsDelete() bool {
	return c.OldLength > 0 && c.NewLength == 0
}

// IsReplace reports whether the change both removes and adds text.
func (c Change) IsReplace() bool {
	return c.OldLength > 0 && c.NewLength > 0
}

// OldText returns the replaced text read from OldBuffer.
func (c Change) OldText() string {
	return TextAt(c.OldBuffer, c.OldPosition, c.OldLength)
}

// NewText returns the inserted text read from NewBuffer.
func (c Change) NewText() string {
	return TextAt(c.NewBuffer, c.NewPosition, c.NewLength)
}

// Apply applies the change to content, where content starts at absolute
// offset contentOffset in the old document.
func (c Change) Apply(content string, contentOffset int) string {
	runes := []rune(content)
	relative := min(max(c.OldPosition-contentOffset, 0), len(runes))
	suffixStart := min(relative+c.OldLength, len(runes))

	var builder strings.Builder
	builder.WriteString(string(runes[:relative]))
	builder.WriteString(c.NewText())
	builder.WriteString(string(runes[suffixStart:]))
	return builder.String()
}

// Normalize rewrites a completion-style replacement, where the new text
// extends the old text in place, into the equivalent pure insertion.
// Other changes are returned unchanged.
func (c Change) Normalize() Change {
	if c.OldBuffer == nil || !c.IsReplace() || c.NewPosition != c.OldPosition || c.NewLength <= c.OldLength {
		return c
	}
	if !strings.HasPrefix(c.NewText(), c.OldText()) {
		return c
	}
	end := c.OldPosition + c.OldLength
	return NewChange(end, 0, c.OldBuffer, end, c.NewLength-c.OldLength, c.NewBuffer)
}

// Equal reports whether both changes have the same positions, lengths and
// buffers. Buffers compare by identity.
func (c Change) Equal(other Change) bool {
	return c.OldPosition == other.OldPosition &&
		c.OldLength == other.OldLength &&
		c.NewPosition == other.NewPosition &&
		c.NewLength == other.NewLength &&
		c.OldBuffer == other.OldBuffer &&
		c.NewBuffer == other.NewBuffer
}

// String renders the change as (pos:len "old") => (pos:len "new").
func (c Change) String() string {
	return fmt.Sprintf("(%d:%d %q) => (%d:%d %q)",
		c.OldPosition, c.OldLength, c.OldText(),
		c.NewPosition, c.NewLength, c.NewText())
}

// TextAt reads length characters from buffer starting at position. The
// buffer cursor is restored afterwards.
func TextAt(buffer Buffer, position, length int) string {
	if length <= 0 || buffer == nil {
		return ""
	}
	saved := buffer.Position()
	defer buffer.SetPosition(saved)

	buffer.SetPosition(position)
	runes := make([]rune, 0, length)
	for range length {
		ch := buffer.Read()
		if ch == EOF {
			break
		}
		runes = append(runes, ch)
	}
	return string(runes)
}
