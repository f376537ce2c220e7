// Package text provides the character-stream layer: sequential readers,
// nested lookahead with rollback, random-access line-tracked buffers and the
// text changes that incremental re-lexing consumes.
package text

import "unicode"

// EOF is returned by Peek and Read at the end of input.
const EOF rune = -1

// IsNewLine reports whether ch terminates a line.
func IsNewLine(ch rune) bool {
	switch ch {
	case '\r', '\n', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// IsWhiteSpace reports whether ch is horizontal white space. Line
// terminators are not white space.
func IsWhiteSpace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\f', '\v', '\u00a0', '\ufeff':
		return true
	}
	return !IsNewLine(ch) && unicode.Is(unicode.Zs, ch)
}

// IsWhiteSpaceOrNewLine reports whether ch is white space or a line terminator.
func IsWhiteSpaceOrNewLine(ch rune) bool {
	return IsWhiteSpace(ch) || IsNewLine(ch)
}

// IsLetter reports whether ch is a Unicode letter.
func IsLetter(ch rune) bool {
	return ch >= 0 && unicode.IsLetter(ch)
}

// IsDecimalDigit reports whether ch is 0-9.
func IsDecimalDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// IsLetterOrDigit reports whether ch is a letter or a decimal digit.
func IsLetterOrDigit(ch rune) bool {
	return IsLetter(ch) || IsDecimalDigit(ch)
}

// IsHexDigit reports whether ch is 0-9, a-f or A-F.
func IsHexDigit(ch rune) bool {
	return IsDecimalDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// IsOctalDigit reports whether ch is 0-7.
func IsOctalDigit(ch rune) bool {
	return ch >= '0' && ch <= '7'
}

// IsBinaryDigit reports whether ch is 0 or 1.
func IsBinaryDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

// IsIdentifierStart reports whether ch may begin a script identifier.
func IsIdentifierStart(ch rune) bool {
	return ch == '_' || ch == '$' || IsLetter(ch)
}

// IsIdentifierPart reports whether ch may continue a script identifier.
func IsIdentifierPart(ch rune) bool {
	return ch == '_' || IsLetterOrDigit(ch)
}
