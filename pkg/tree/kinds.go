package tree

//go:generate stringer -type=SpanKind -trimprefix=Span
//go:generate stringer -type=BlockType -trimprefix=Block

import (
	"strings"

	"github.com/yaklabco/razorlex/pkg/text"
)

// SpanKind is the role of the symbols in a span.
type SpanKind int

// Span kinds.
const (
	SpanTransition SpanKind = iota
	SpanMetaCode
	SpanComment
	SpanCode
	SpanMarkup
)

// BlockType is the semantic role of a block.
type BlockType int

// Block types.
const (
	BlockStatement BlockType = iota
	BlockDirective
	BlockFunctions
	BlockExpression
	BlockHelper
	BlockMarkup
	BlockSection
	BlockTemplate
	BlockComment
	BlockTag
)

// AcceptedCharacters is the set of character classes an edit inside a span
// may introduce without forcing a reparse.
type AcceptedCharacters uint8

// Character class flags.
const (
	AcceptsNone          AcceptedCharacters = 0
	AcceptsNewLine       AcceptedCharacters = 1 << 0
	AcceptsWhiteSpace    AcceptedCharacters = 1 << 1
	AcceptsNonWhiteSpace AcceptedCharacters = 1 << 2

	AcceptsAllWhiteSpace    = AcceptsNewLine | AcceptsWhiteSpace
	AcceptsAny              = AcceptsAllWhiteSpace | AcceptsNonWhiteSpace
	AcceptsAnyExceptNewLine = AcceptsWhiteSpace | AcceptsNonWhiteSpace
)

// Has reports whether every flag in other is set.
func (a AcceptedCharacters) Has(other AcceptedCharacters) bool {
	return a&other == other
}

// Allows reports whether ch belongs to an accepted class.
func (a AcceptedCharacters) Allows(ch rune) bool {
	switch {
	case text.IsNewLine(ch):
		return a.Has(AcceptsNewLine)
	case text.IsWhiteSpace(ch):
		return a.Has(AcceptsWhiteSpace)
	default:
		return a.Has(AcceptsNonWhiteSpace)
	}
}

// AllowsText reports whether every character of s is allowed.
func (a AcceptedCharacters) AllowsText(s string) bool {
	for _, ch := range s {
		if !a.Allows(ch) {
			return false
		}
	}
	return true
}

func (a AcceptedCharacters) String() string {
	switch a {
	case AcceptsNone:
		return "None"
	case AcceptsAny:
		return "Any"
	case AcceptsAllWhiteSpace:
		return "AllWhiteSpace"
	case AcceptsAnyExceptNewLine:
		return "AnyExceptNewLine"
	}

	var parts []string
	if a.Has(AcceptsNewLine) {
		parts = append(parts, "NewLine")
	}
	if a.Has(AcceptsWhiteSpace) {
		parts = append(parts, "WhiteSpace")
	}
	if a.Has(AcceptsNonWhiteSpace) {
		parts = append(parts, "NonWhiteSpace")
	}
	return strings.Join(parts, "|")
}

// Role is the kind of document a parser produces.
type Role int

// Parser roles.
const (
	RoleMarkup Role = iota
	RoleCode
)

func (r Role) String() string {
	switch r {
	case RoleMarkup:
		return "Markup"
	case RoleCode:
		return "Code"
	default:
		return "Unknown"
	}
}
