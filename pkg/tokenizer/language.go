package tokenizer

import (
	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/text"
)

// Language describes one embedded language: how to tokenize it and how its
// symbol types map onto the roles the tree layer cares about.
type Language[K symbol.Kind] interface {
	// Name identifies the language, e.g. "html".
	Name() string
	NewTokenizer(src text.LookaheadReader) Tokenizer[K]
	NewSymbol(start source.Location, content string, typ K, errors ...source.Error) *symbol.Symbol[K]
	// MarkerSymbol is an empty symbol used as a placeholder at location.
	MarkerSymbol(location source.Location) *symbol.Symbol[K]
	// FlipBracket returns the matching bracket type, or the unknown type.
	FlipBracket(bracket K) K
	KnownType(known symbol.KnownType) K
	// Sample returns the fixed text of typ, or "" when its text varies.
	Sample(typ K) string
}

// TokenizeString tokenizes content as if it started at origin.
func TokenizeString[K symbol.Kind](lang Language[K], origin source.Location, content string) []*symbol.Symbol[K] {
	symbols := Tokenize(lang.NewTokenizer(text.NewSeekableReader(content)))
	for _, sym := range symbols {
		sym.OffsetStart(origin)
	}
	return symbols
}

// HTMLLanguage is the markup language.
type HTMLLanguage struct{}

var _ Language[symbol.HTMLType] = HTMLLanguage{}

// Name implements Language.
func (HTMLLanguage) Name() string { return "html" }

// NewTokenizer implements Language.
func (HTMLLanguage) NewTokenizer(src text.LookaheadReader) Tokenizer[symbol.HTMLType] {
	return NewHTML(src)
}

// NewSymbol implements Language.
func (HTMLLanguage) NewSymbol(start source.Location, content string, typ symbol.HTMLType, errors ...source.Error) *symbol.HTML {
	return symbol.New(start, content, typ, errors...)
}

// MarkerSymbol implements Language.
func (HTMLLanguage) MarkerSymbol(location source.Location) *symbol.HTML {
	return symbol.New(location, "", symbol.HTMLUnknown)
}

// FlipBracket implements Language.
func (HTMLLanguage) FlipBracket(bracket symbol.HTMLType) symbol.HTMLType {
	switch bracket {
	case symbol.HTMLLeftBracket:
		return symbol.HTMLRightBracket
	case symbol.HTMLOpenAngle:
		return symbol.HTMLCloseAngle
	case symbol.HTMLRightBracket:
		return symbol.HTMLLeftBracket
	case symbol.HTMLCloseAngle:
		return symbol.HTMLOpenAngle
	default:
		return symbol.HTMLUnknown
	}
}

// KnownType implements Language. Markup has no identifiers or keywords, so
// both map to text.
func (HTMLLanguage) KnownType(known symbol.KnownType) symbol.HTMLType {
	switch known {
	case symbol.KnownCommentStart:
		return symbol.HTMLRazorCommentTransition
	case symbol.KnownCommentStar:
		return symbol.HTMLRazorCommentStar
	case symbol.KnownCommentBody:
		return symbol.HTMLRazorComment
	case symbol.KnownIdentifier, symbol.KnownKeyword:
		return symbol.HTMLText
	case symbol.KnownNewLine:
		return symbol.HTMLNewLine
	case symbol.KnownTransition:
		return symbol.HTMLTransition
	case symbol.KnownWhiteSpace:
		return symbol.HTMLWhiteSpace
	default:
		return symbol.HTMLUnknown
	}
}

// Sample implements Language.
func (HTMLLanguage) Sample(typ symbol.HTMLType) string {
	switch typ {
	case symbol.HTMLOpenAngle:
		return "<"
	case symbol.HTMLBang:
		return "!"
	case symbol.HTMLForwardSlash:
		return "/"
	case symbol.HTMLQuestionMark:
		return "?"
	case symbol.HTMLDoubleHyphen:
		return "--"
	case symbol.HTMLLeftBracket:
		return "["
	case symbol.HTMLCloseAngle:
		return ">"
	case symbol.HTMLRightBracket:
		return "]"
	case symbol.HTMLEquals:
		return "="
	case symbol.HTMLDoubleQuote:
		return `"`
	case symbol.HTMLSingleQuote:
		return "'"
	case symbol.HTMLTransition, symbol.HTMLRazorCommentTransition:
		return "@"
	case symbol.HTMLColon:
		return ":"
	case symbol.HTMLRazorCommentStar:
		return "*"
	default:
		return ""
	}
}

// JSLanguage is the script language.
type JSLanguage struct {
	// ValidateRegex enables regular expression validation in the
	// tokenizers it creates.
	ValidateRegex bool
}

var _ Language[symbol.JSType] = JSLanguage{}

// Name implements Language.
func (JSLanguage) Name() string { return "javascript" }

// NewTokenizer implements Language.
func (l JSLanguage) NewTokenizer(src text.LookaheadReader) Tokenizer[symbol.JSType] {
	return NewJavaScript(src, WithRegexValidation(l.ValidateRegex))
}

// NewSymbol implements Language.
func (JSLanguage) NewSymbol(start source.Location, content string, typ symbol.JSType, errors ...source.Error) *symbol.JS {
	return symbol.New(start, content, typ, errors...)
}

// MarkerSymbol implements Language.
func (JSLanguage) MarkerSymbol(location source.Location) *symbol.JS {
	return symbol.New(location, "", symbol.JSUnknown)
}

// FlipBracket implements Language.
func (JSLanguage) FlipBracket(bracket symbol.JSType) symbol.JSType {
	switch bracket {
	case symbol.JSLeftBracket:
		return symbol.JSRightBracket
	case symbol.JSRightBracket:
		return symbol.JSLeftBracket
	case symbol.JSLeftParen:
		return symbol.JSRightParen
	case symbol.JSRightParen:
		return symbol.JSLeftParen
	case symbol.JSLeftBrace:
		return symbol.JSRightBrace
	case symbol.JSRightBrace:
		return symbol.JSLeftBrace
	default:
		return symbol.JSUnknown
	}
}

// KnownType implements Language.
func (JSLanguage) KnownType(known symbol.KnownType) symbol.JSType {
	switch known {
	case symbol.KnownCommentStart:
		return symbol.JSRazorCommentTransition
	case symbol.KnownCommentStar:
		return symbol.JSRazorCommentStar
	case symbol.KnownCommentBody:
		return symbol.JSRazorComment
	case symbol.KnownIdentifier:
		return symbol.JSIdentifier
	case symbol.KnownKeyword:
		return symbol.JSKeyword
	case symbol.KnownNewLine:
		return symbol.JSNewLine
	case symbol.KnownTransition:
		return symbol.JSTransition
	case symbol.KnownWhiteSpace:
		return symbol.JSWhiteSpace
	default:
		return symbol.JSUnknown
	}
}

// Sample implements Language.
func (JSLanguage) Sample(typ symbol.JSType) string {
	switch typ {
	case symbol.JSTransition, symbol.JSRazorCommentTransition:
		return "@"
	case symbol.JSRazorCommentStar:
		return "*"
	default:
		return typ.Sample()
	}
}
