package symbol

//go:generate stringer -type=HTMLType -trimprefix=HTML

// HTMLType classifies markup symbols.
type HTMLType int

const (
	HTMLUnknown HTMLType = iota
	// HTMLText is any run of characters that is not one of the types below.
	HTMLText
	HTMLWhiteSpace
	HTMLNewLine
	HTMLOpenAngle
	HTMLBang
	HTMLForwardSlash
	HTMLQuestionMark
	HTMLDoubleHyphen
	HTMLLeftBracket
	HTMLCloseAngle
	HTMLRightBracket
	HTMLEquals
	HTMLDoubleQuote
	HTMLSingleQuote
	HTMLTransition
	HTMLColon
	HTMLRazorComment
	HTMLRazorCommentStar
	HTMLRazorCommentTransition
)

// HTML is a markup symbol.
type HTML = Symbol[HTMLType]
