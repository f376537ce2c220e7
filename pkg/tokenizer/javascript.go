package tokenizer

import (
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/text"
)

type jsResult = *StateResult[*symbol.JS]

// operatorHandler finishes an operator whose first character has already
// been taken and returns its type.
type operatorHandler func() symbol.JSType

// JSTokenizer splits script source into identifiers, keywords, literals,
// comments, punctuators and operators.
type JSTokenizer struct {
	Base[symbol.JSType]

	operators     map[rune]operatorHandler
	validateRegex bool
}

var _ Tokenizer[symbol.JSType] = (*JSTokenizer)(nil)

// Option configures a JSTokenizer.
type Option func(*JSTokenizer)

// WithRegexValidation compiles every regular expression literal and
// attaches an error to literals that do not compile.
func WithRegexValidation(enabled bool) Option {
	return func(t *JSTokenizer) {
		t.validateRegex = enabled
	}
}

// NewJavaScript creates a script tokenizer over src.
func NewJavaScript(src text.LookaheadReader, opts ...Option) *JSTokenizer {
	t := &JSTokenizer{
		Base: newBase(src, CommentTypes[symbol.JSType]{
			Transition: symbol.JSRazorCommentTransition,
			Star:       symbol.JSRazorCommentStar,
			Body:       symbol.JSRazorComment,
		}),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.operators = t.operatorTable()
	t.SetStart(t.data)
	return t
}

func (t *JSTokenizer) operatorTable() map[rune]operatorHandler {
	fixed := func(typ symbol.JSType) operatorHandler {
		return func() symbol.JSType { return typ }
	}
	return map[rune]operatorHandler{
		'.':  fixed(symbol.JSDot),
		'[':  fixed(symbol.JSLeftBracket),
		']':  fixed(symbol.JSRightBracket),
		'(':  fixed(symbol.JSLeftParen),
		')':  fixed(symbol.JSRightParen),
		'{':  fixed(symbol.JSLeftBrace),
		'}':  fixed(symbol.JSRightBrace),
		'?':  fixed(symbol.JSQuestionMark),
		':':  fixed(symbol.JSColon),
		',':  fixed(symbol.JSComma),
		'\'': fixed(symbol.JSSingleQuote),
		'"':  fixed(symbol.JSDoubleQuote),
		'\\': fixed(symbol.JSBackslash),
		';':  fixed(symbol.JSSemicolon),
		'~':  fixed(symbol.JSBitwiseNot),

		'+': t.twoChar(symbol.JSPlus, '+', symbol.JSIncrement, '=', symbol.JSAdditionAssignment),
		'-': t.twoChar(symbol.JSMinus, '-', symbol.JSDecrement, '=', symbol.JSSubtractionAssignment),
		'%': t.twoChar(symbol.JSModulo, '=', symbol.JSModuloAssignment, 0, 0),
		'/': t.twoChar(symbol.JSDivide, '=', symbol.JSDivisionAssignment, 0, 0),
		'*': t.twoChar(symbol.JSMultiply, '*', symbol.JSExponentiation, '=', symbol.JSMultiplicationAssignment),
		'&': t.twoChar(symbol.JSBitwiseAnd, '&', symbol.JSLogicalAnd, '=', symbol.JSBitwiseAndAssignment),
		'|': t.twoChar(symbol.JSBitwiseOr, '|', symbol.JSLogicalOr, '=', symbol.JSBitwiseOrAssignment),
		'^': t.twoChar(symbol.JSBitwiseXor, '=', symbol.JSBitwiseXorAssignment, 0, 0),
		'!': t.bang,
		'<': t.lessThan,
		'>': t.greaterThan,
		'=': t.equality,
	}
}

// twoChar builds a handler for an operator that may be followed by one of
// two optional second characters. A zero option is never matched.
func (t *JSTokenizer) twoChar(single symbol.JSType, option1 rune, type1 symbol.JSType, option2 rune, type2 symbol.JSType) operatorHandler {
	return func() symbol.JSType {
		switch ch := t.Current(); {
		case option1 != 0 && ch == option1:
			t.TakeCurrent()
			return type1
		case option2 != 0 && ch == option2:
			t.TakeCurrent()
			return type2
		}
		return single
	}
}

func (t *JSTokenizer) data() jsResult {
	ch := t.Current()
	switch {
	case text.IsNewLine(ch):
		crlf := ch == '\r'
		t.TakeCurrent()
		if crlf && t.Current() == '\n' {
			t.TakeCurrent()
		}
		return t.StayWith(t.EndSymbol(symbol.JSNewLine))
	case text.IsWhiteSpace(ch):
		t.TakeUntil(func(c rune) bool { return !text.IsWhiteSpace(c) })
		return t.StayWith(t.EndSymbol(symbol.JSWhiteSpace))
	case text.IsIdentifierStart(ch):
		return t.identifier()
	case text.IsDecimalDigit(ch):
		return t.numericLiteral()
	}

	switch ch {
	case transitionChar:
		return t.transition()
	case '\'', '"':
		t.TakeCurrent()
		return t.Transition(func() jsResult { return t.quotedLiteral(ch) })
	case '.':
		if text.IsDecimalDigit(t.Peek()) {
			return t.realLiteral()
		}
		return t.StayWith(t.Single(symbol.JSDot))
	case '/':
		return t.solidus()
	default:
		return t.StayWith(t.EndSymbol(t.operator()))
	}
}

func (t *JSTokenizer) transition() jsResult {
	t.TakeCurrent()
	switch t.Current() {
	case '*':
		return t.TransitionWith(t.EndSymbol(symbol.JSRazorCommentTransition), t.AfterCommentTransition)
	case transitionChar:
		return t.TransitionWith(t.EndSymbol(symbol.JSTransition), func() jsResult {
			t.TakeCurrent()
			return t.TransitionWith(t.EndSymbol(symbol.JSTransition), t.data)
		})
	}
	return t.StayWith(t.EndSymbol(symbol.JSTransition))
}

func (t *JSTokenizer) identifier() jsResult {
	t.TakeCurrent()
	t.TakeUntil(func(c rune) bool { return !text.IsIdentifierPart(c) })

	typ := symbol.JSIdentifier
	if _, ok := symbol.LookupKeyword(t.Buffered()); ok {
		typ = symbol.JSKeyword
	}
	return t.StayWith(t.EndSymbol(typ))
}

func (t *JSTokenizer) numericLiteral() jsResult {
	switch {
	case t.TakeAll("0x", true):
		t.TakeUntil(func(c rune) bool { return !text.IsHexDigit(c) })
		return t.StayWith(t.EndSymbol(symbol.JSHexLiteral))
	case t.TakeAll("0b", true):
		t.TakeUntil(func(c rune) bool { return !text.IsBinaryDigit(c) })
		return t.StayWith(t.EndSymbol(symbol.JSBinaryLiteral))
	case t.TakeAll("0o", true):
		t.TakeUntil(func(c rune) bool { return !text.IsOctalDigit(c) })
		return t.StayWith(t.EndSymbol(symbol.JSOctalLiteral))
	}
	return t.decimalLiteral()
}

func (t *JSTokenizer) decimalLiteral() jsResult {
	t.TakeUntil(func(c rune) bool { return !text.IsDecimalDigit(c) })
	switch ch := t.Current(); {
	case ch == '.' && text.IsDecimalDigit(t.Peek()):
		return t.realLiteral()
	case ch == 'e' || ch == 'E':
		return t.realLiteralExponentPart()
	}
	return t.StayWith(t.EndSymbol(symbol.JSIntegerLiteral))
}

// realLiteral takes the '.' and the fraction digits.
func (t *JSTokenizer) realLiteral() jsResult {
	t.TakeCurrent()
	t.TakeUntil(func(c rune) bool { return !text.IsDecimalDigit(c) })
	return t.realLiteralExponentPart()
}

func (t *JSTokenizer) realLiteralExponentPart() jsResult {
	if ch := t.Current(); ch == 'e' || ch == 'E' {
		t.TakeCurrent()
		if ch := t.Current(); ch == '+' || ch == '-' {
			t.TakeCurrent()
		}
		t.TakeUntil(func(c rune) bool { return !text.IsDecimalDigit(c) })
	}
	return t.StayWith(t.EndSymbol(symbol.JSRealLiteral))
}

// quotedLiteral scans a string body after its opening quote. A backslash
// escapes a following quote or backslash; a line break or the end of input
// closes the literal with an error.
func (t *JSTokenizer) quotedLiteral(quote rune) jsResult {
	t.TakeUntil(func(c rune) bool { return c == '\\' || c == quote || text.IsNewLine(c) })

	switch ch := t.Current(); {
	case ch == '\\':
		t.TakeCurrent()
		if next := t.Current(); next == quote || next == '\\' {
			t.TakeCurrent()
		}
		return t.Stay()
	case t.EndOfFile() || text.IsNewLine(ch):
		t.AddError("Unterminated string literal", 1)
	default:
		t.TakeCurrent()
	}
	return t.TransitionWith(t.EndSymbol(symbol.JSStringLiteral), t.data)
}

func (t *JSTokenizer) solidus() jsResult {
	if t.regularExpressionLiteral() {
		return t.StayWith(t.EndSymbol(symbol.JSRegularExpressionLiteral))
	}

	switch t.Peek() {
	case '/':
		t.TakeCurrent()
		t.TakeCurrent()
		t.TakeUntil(text.IsNewLine)
		return t.StayWith(t.EndSymbol(symbol.JSComment))
	case '*':
		t.TakeCurrent()
		t.TakeCurrent()
		return t.Transition(t.blockComment)
	}
	return t.StayWith(t.EndSymbol(t.operator()))
}

func (t *JSTokenizer) blockComment() jsResult {
	t.TakeUntil(func(c rune) bool { return c == '*' })
	if t.EndOfFile() {
		t.AddError("Unterminated block comment", 1)
		return t.TransitionWith(t.EndSymbol(symbol.JSComment), t.data)
	}

	t.TakeCurrent()
	if t.Current() == '/' {
		t.TakeCurrent()
		return t.TransitionWith(t.EndSymbol(symbol.JSComment), t.data)
	}
	return t.Stay()
}

// regularExpressionLiteral speculatively scans /body/flags. Nothing is
// consumed unless a closing slash is found before the end of the line.
func (t *JSTokenizer) regularExpressionLiteral() bool {
	previous := t.Buffered()
	la := t.Source().BeginLookahead()
	defer la.Close()

	t.TakeCurrent()
	if ch := t.Current(); ch == '/' || ch == '*' {
		t.restoreBuffer(previous)
		return false
	}

	inClass := false
	for !t.EndOfFile() && !text.IsNewLine(t.Current()) {
		ch := t.Current()
		t.TakeCurrent()
		switch {
		case ch == '\\':
			if !t.EndOfFile() && !text.IsNewLine(t.Current()) {
				t.TakeCurrent()
			}
		case ch == '[':
			inClass = true
		case ch == ']':
			inClass = false
		}

		if t.Current() == '/' && !inClass {
			t.TakeCurrent()
			t.TakeUntil(func(c rune) bool { return !isRegexFlag(c) })
			if t.validateRegex {
				if err := ValidateRegex(t.Buffered()); err != nil {
					t.AddError(err.Error(), len([]rune(t.Buffered())))
				}
			}
			la.Accept()
			return true
		}
	}

	t.restoreBuffer(previous)
	return false
}

func (t *JSTokenizer) restoreBuffer(content string) {
	t.buffer.Reset()
	t.buffer.WriteString(content)
}

func (t *JSTokenizer) operator() symbol.JSType {
	first := t.Current()
	t.TakeCurrent()
	if handler, ok := t.operators[first]; ok {
		return handler()
	}
	return symbol.JSUnknown
}

func (t *JSTokenizer) bang() symbol.JSType {
	if t.Current() != '=' {
		return symbol.JSLogicalNot
	}
	t.TakeCurrent()
	if t.Current() == '=' {
		t.TakeCurrent()
		return symbol.JSStrictNotEqual
	}
	return symbol.JSNotEqual
}

func (t *JSTokenizer) equality() symbol.JSType {
	if t.Current() != '=' {
		return symbol.JSAssignment
	}
	t.TakeCurrent()
	if t.Current() == '=' {
		t.TakeCurrent()
		return symbol.JSStrictEqual
	}
	return symbol.JSEqual
}

func (t *JSTokenizer) lessThan() symbol.JSType {
	switch t.Current() {
	case '<':
		t.TakeCurrent()
		if t.Current() == '=' {
			t.TakeCurrent()
			return symbol.JSBitwiseLeftShiftAssignment
		}
		return symbol.JSBitwiseLeftShift
	case '=':
		t.TakeCurrent()
		return symbol.JSLessThanEqualTo
	}
	return symbol.JSLessThan
}

func (t *JSTokenizer) greaterThan() symbol.JSType {
	switch t.Current() {
	case '=':
		t.TakeCurrent()
		return symbol.JSGreaterThanEqualTo
	case '>':
		t.TakeCurrent()
		switch t.Current() {
		case '=':
			t.TakeCurrent()
			return symbol.JSBitwiseRightShiftAssignment
		case '>':
			t.TakeCurrent()
			if t.Current() == '=' {
				t.TakeCurrent()
				return symbol.JSBitwiseUnsignedRightShiftAssignment
			}
			return symbol.JSBitwiseUnsignedRightShift
		}
		return symbol.JSBitwiseRightShift
	}
	return symbol.JSGreaterThan
}
