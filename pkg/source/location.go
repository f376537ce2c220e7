// Package source tracks positions inside a source document and collects the
// lexical errors reported against them.
package source

import (
	"cmp"
	"fmt"
)

// Location is a position in a source document. Absolute is the character
// offset from the start of the document; Line and Character are zero-based.
type Location struct {
	Absolute  int `json:"absolute"`
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Sentinel locations. Neither is ever produced by advancing a real stream.
//
//nolint:gochecknoglobals // Immutable sentinel values.
var (
	// Zero is the beginning of a document.
	Zero = Location{}
	// Undefined marks a location that has not been assigned.
	Undefined = Location{Absolute: -1, Line: -1, Character: -1}
)

// NewLocation creates a Location.
func NewLocation(absolute, line, character int) Location {
	return Location{Absolute: absolute, Line: line, Character: character}
}

// IsUndefined reports whether l is the Undefined sentinel.
func (l Location) IsUndefined() bool {
	return l == Undefined
}

// Add offsets l by a relative location. When rel spans at least one line
// break the resulting column is rel's column, otherwise the columns add up.
func (l Location) Add(rel Location) Location {
	if rel.Line > 0 {
		return Location{
			Absolute:  l.Absolute + rel.Absolute,
			Line:      l.Line + rel.Line,
			Character: rel.Character,
		}
	}
	return Location{
		Absolute:  l.Absolute + rel.Absolute,
		Line:      l.Line + rel.Line,
		Character: l.Character + rel.Character,
	}
}

// Subtract returns l relative to origin. It is the inverse of Add.
func (l Location) Subtract(origin Location) Location {
	character := l.Character
	if l.Line == origin.Line {
		character = l.Character - origin.Character
	}
	return Location{
		Absolute:  l.Absolute - origin.Absolute,
		Line:      l.Line - origin.Line,
		Character: character,
	}
}

// Advance returns the location reached after consuming content from l.
func (l Location) Advance(content string) Location {
	return CalculateNewLocation(l, content)
}

// Compare orders locations by absolute offset.
func (l Location) Compare(other Location) int {
	return cmp.Compare(l.Absolute, other.Absolute)
}

// Before reports whether l sorts strictly before other.
func (l Location) Before(other Location) bool {
	return l.Absolute < other.Absolute
}

// String renders the location as "(absolute:line,character)".
func (l Location) String() string {
	return fmt.Sprintf("(%d:%d,%d)", l.Absolute, l.Line, l.Character)
}
