package tokenizer

import (
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/text"
)

const transitionChar = '@'

type htmlResult = *StateResult[*symbol.HTML]

// HTMLTokenizer splits markup into white space, line breaks, structural
// punctuation, transitions and runs of text.
type HTMLTokenizer struct {
	Base[symbol.HTMLType]
}

var _ Tokenizer[symbol.HTMLType] = (*HTMLTokenizer)(nil)

// NewHTML creates a markup tokenizer over src.
func NewHTML(src text.LookaheadReader) *HTMLTokenizer {
	t := &HTMLTokenizer{
		Base: newBase(src, CommentTypes[symbol.HTMLType]{
			Transition: symbol.HTMLRazorCommentTransition,
			Star:       symbol.HTMLRazorCommentStar,
			Body:       symbol.HTMLRazorComment,
		}),
	}
	t.SetStart(t.data)
	return t
}

func (t *HTMLTokenizer) data() htmlResult {
	switch ch := t.Current(); {
	case text.IsWhiteSpace(ch):
		return t.StayWith(t.whiteSpace())
	case text.IsNewLine(ch):
		return t.StayWith(t.newLine())
	case ch == transitionChar:
		return t.transition()
	case t.atSymbol():
		return t.StayWith(t.punctuation())
	default:
		return t.Transition(t.textRun)
	}
}

func (t *HTMLTokenizer) transition() htmlResult {
	t.TakeCurrent()
	switch t.Current() {
	case '*':
		return t.TransitionWith(t.EndSymbol(symbol.HTMLRazorCommentTransition), t.AfterCommentTransition)
	case transitionChar:
		return t.TransitionWith(t.EndSymbol(symbol.HTMLTransition), func() htmlResult {
			t.TakeCurrent()
			return t.TransitionWith(t.EndSymbol(symbol.HTMLTransition), t.data)
		})
	}
	return t.StayWith(t.EndSymbol(symbol.HTMLTransition))
}

func (t *HTMLTokenizer) atSymbol() bool {
	switch t.Current() {
	case '<', '!', '/', '?', '[', '>', ']', '=', '"', '\'', transitionChar:
		return true
	case '-':
		return t.Peek() == '-'
	}
	return false
}

func (t *HTMLTokenizer) newLine() *symbol.HTML {
	crlf := t.Current() == '\r'
	t.TakeCurrent()
	if crlf && t.Current() == '\n' {
		t.TakeCurrent()
	}
	return t.EndSymbol(symbol.HTMLNewLine)
}

func (t *HTMLTokenizer) whiteSpace() *symbol.HTML {
	for text.IsWhiteSpace(t.Current()) {
		t.TakeCurrent()
	}
	return t.EndSymbol(symbol.HTMLWhiteSpace)
}

//nolint:cyclop // One case per structural character.
func (t *HTMLTokenizer) punctuation() *symbol.HTML {
	ch := t.Current()
	t.TakeCurrent()
	switch ch {
	case '<':
		return t.EndSymbol(symbol.HTMLOpenAngle)
	case '!':
		return t.EndSymbol(symbol.HTMLBang)
	case '/':
		return t.EndSymbol(symbol.HTMLForwardSlash)
	case '?':
		return t.EndSymbol(symbol.HTMLQuestionMark)
	case '[':
		return t.EndSymbol(symbol.HTMLLeftBracket)
	case '>':
		return t.EndSymbol(symbol.HTMLCloseAngle)
	case ']':
		return t.EndSymbol(symbol.HTMLRightBracket)
	case '=':
		return t.EndSymbol(symbol.HTMLEquals)
	case '"':
		return t.EndSymbol(symbol.HTMLDoubleQuote)
	case '\'':
		return t.EndSymbol(symbol.HTMLSingleQuote)
	case '-':
		t.TakeCurrent()
		return t.EndSymbol(symbol.HTMLDoubleHyphen)
	default:
		return t.EndSymbol(symbol.HTMLUnknown)
	}
}

// textRun accumulates a run of ordinary characters. An @ between two letters
// or digits, as in an e-mail address, stays part of the run.
func (t *HTMLTokenizer) textRun() htmlResult {
	var prev rune
	for !t.EndOfFile() && !text.IsWhiteSpaceOrNewLine(t.Current()) && !t.atSymbol() {
		prev = t.Current()
		t.TakeCurrent()
	}

	if t.Current() == transitionChar {
		next := t.Peek()
		if text.IsLetterOrDigit(prev) && text.IsLetterOrDigit(next) {
			t.TakeCurrent()
			return t.Stay()
		}
	}
	return t.TransitionWith(t.EndSymbol(symbol.HTMLText), t.data)
}
