// Package tokenizer turns character streams into symbols. A tokenizer is a
// state machine over a text.LookaheadReader; HTMLTokenizer and JSTokenizer
// share the scanning helpers and the embedded comment states of Base.
package tokenizer

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/text"
)

// Tokenizer produces symbols one at a time.
type Tokenizer[K symbol.Kind] interface {
	// NextSymbol returns the next symbol, or nil at the end of input.
	NextSymbol() *symbol.Symbol[K]
	// Reset returns the tokenizer to its start state without moving the
	// source.
	Reset()
	// Source returns the reader being tokenized.
	Source() text.LookaheadReader
}

// CommentTypes are the symbol types a language uses for the three parts of
// an embedded @* ... *@ comment.
type CommentTypes[K symbol.Kind] struct {
	Transition K
	Star       K
	Body       K
}

// Base holds the state shared by every tokenizer: the source, the text of
// the symbol being built, its start and its errors.
type Base[K symbol.Kind] struct {
	Machine[*symbol.Symbol[K]]

	source   text.LookaheadReader
	comments CommentTypes[K]
	fold     cases.Caser

	buffer strings.Builder
	start  source.Location
	errors []source.Error
}

func newBase[K symbol.Kind](src text.LookaheadReader, comments CommentTypes[K]) Base[K] {
	return Base[K]{
		source:   src,
		comments: comments,
		fold:     cases.Fold(),
		start:    src.CurrentLocation(),
	}
}

// Source implements Tokenizer.
func (b *Base[K]) Source() text.LookaheadReader {
	return b.source
}

// SourceDocument returns the source as a Document when it is addressable.
func (b *Base[K]) SourceDocument() (text.Document, bool) {
	doc, ok := b.source.(text.Document)
	return doc, ok
}

// Current returns the next character, or text.EOF.
func (b *Base[K]) Current() rune {
	return b.source.Peek()
}

// CurrentLocation is the location of the next character.
func (b *Base[K]) CurrentLocation() source.Location {
	return b.source.CurrentLocation()
}

// CurrentStart is the start of the symbol being built.
func (b *Base[K]) CurrentStart() source.Location {
	return b.start
}

// EndOfFile reports whether the source is exhausted.
func (b *Base[K]) EndOfFile() bool {
	return b.source.Peek() == text.EOF
}

// HaveContent reports whether the symbol being built has any text.
func (b *Base[K]) HaveContent() bool {
	return b.buffer.Len() > 0
}

// Buffered returns the text of the symbol being built.
func (b *Base[K]) Buffered() string {
	return b.buffer.String()
}

// AddError attaches a lexical error to the symbol being built.
func (b *Base[K]) AddError(message string, length int) {
	b.errors = append(b.errors, source.NewError(message, b.start, length))
}

// NextSymbol implements Tokenizer.
func (b *Base[K]) NextSymbol() *symbol.Symbol[K] {
	b.StartSymbol()
	if b.EndOfFile() {
		return nil
	}
	sym, ok := b.Turn()
	if !ok {
		return nil
	}
	return sym
}

// StartSymbol discards any partial symbol and starts a new one at the
// current location.
func (b *Base[K]) StartSymbol() {
	b.buffer.Reset()
	b.start = b.CurrentLocation()
	b.errors = nil
}

// EndSymbol materializes the buffered text as a symbol of typ and starts
// the next one. It returns nil when nothing was buffered.
func (b *Base[K]) EndSymbol(typ K) *symbol.Symbol[K] {
	return b.EndSymbolAt(b.start, typ)
}

// EndSymbolAt is EndSymbol with an explicit start.
func (b *Base[K]) EndSymbolAt(start source.Location, typ K) *symbol.Symbol[K] {
	var sym *symbol.Symbol[K]
	if b.HaveContent() {
		sym = symbol.New(start, b.buffer.String(), typ, b.errors...)
	}
	b.StartSymbol()
	return sym
}

// ResumeSymbol continues previous, which must end exactly where the current
// symbol starts. Anything already buffered is appended to its content.
func (b *Base[K]) ResumeSymbol(previous *symbol.Symbol[K]) {
	if previous.Start().Absolute+previous.Len() != b.start.Absolute {
		panic(fmt.Sprintf("tokenizer: cannot resume %s: it does not end at %s", previous, b.start))
	}
	pending := b.buffer.String()
	b.start = previous.Start()
	b.buffer.Reset()
	b.buffer.WriteString(previous.Content())
	b.buffer.WriteString(pending)
}

// Single takes the current character as a complete symbol of typ.
func (b *Base[K]) Single(typ K) *symbol.Symbol[K] {
	b.TakeCurrent()
	return b.EndSymbol(typ)
}

// MoveNext advances the source without buffering.
func (b *Base[K]) MoveNext() {
	b.source.Read()
}

// TakeCurrent buffers the current character and advances.
func (b *Base[K]) TakeCurrent() {
	if b.EndOfFile() {
		return
	}
	b.buffer.WriteRune(b.source.Read())
}

// TakeUntil buffers characters until predicate matches. It reports whether
// it stopped before the end of input.
func (b *Base[K]) TakeUntil(predicate func(rune) bool) bool {
	for !b.EndOfFile() && !predicate(b.Current()) {
		b.TakeCurrent()
	}
	return !b.EndOfFile()
}

// TakeString buffers characters while they match input and reports whether
// all of input matched. Matched characters stay taken either way.
func (b *Base[K]) TakeString(input string, caseSensitive bool) bool {
	runes := []rune(input)
	taken := 0
	for taken < len(runes) && !b.EndOfFile() && b.same(b.Current(), runes[taken], caseSensitive) {
		b.TakeCurrent()
		taken++
	}
	return taken == len(runes)
}

// At reports whether the input continues with expected, without consuming.
func (b *Base[K]) At(expected string, caseSensitive bool) bool {
	return b.lookahead(expected, false, caseSensitive)
}

// TakeAll buffers expected if the input continues with all of it, and
// consumes nothing otherwise.
func (b *Base[K]) TakeAll(expected string, caseSensitive bool) bool {
	return b.lookahead(expected, true, caseSensitive)
}

// Peek returns the character after the current one.
func (b *Base[K]) Peek() rune {
	la := b.source.BeginLookahead()
	defer la.Close()
	b.MoveNext()
	return b.Current()
}

// CharOrWhiteSpace matches ch, white space or a line terminator.
func CharOrWhiteSpace(ch rune) func(rune) bool {
	return func(c rune) bool {
		return c == ch || text.IsWhiteSpaceOrNewLine(c)
	}
}

func (b *Base[K]) same(actual, expected rune, caseSensitive bool) bool {
	if actual == expected {
		return true
	}
	if caseSensitive || actual == text.EOF {
		return false
	}
	return b.fold.String(string(actual)) == b.fold.String(string(expected))
}

func (b *Base[K]) lookahead(expected string, takeIfMatch, caseSensitive bool) bool {
	runes := []rune(expected)
	if len(runes) == 0 || !b.same(b.Current(), runes[0], caseSensitive) {
		return false
	}

	previous := b.buffer.String()
	la := b.source.BeginLookahead()
	defer la.Close()

	for _, expectedRune := range runes {
		if !b.same(b.Current(), expectedRune, caseSensitive) {
			if takeIfMatch {
				b.buffer.Reset()
				b.buffer.WriteString(previous)
			}
			return false
		}
		if takeIfMatch {
			b.TakeCurrent()
		} else {
			b.MoveNext()
		}
	}
	if takeIfMatch {
		la.Accept()
	}
	return true
}

// AfterCommentTransition runs after an @ that starts an embedded comment
// has been emitted.
func (b *Base[K]) AfterCommentTransition() *StateResult[*symbol.Symbol[K]] {
	if b.Current() != '*' {
		return b.Transition(b.StartState())
	}
	b.TakeCurrent()
	return b.TransitionWith(b.EndSymbol(b.comments.Star), b.CommentBody)
}

// CommentBody scans the body of an embedded comment up to the closing *@.
// An unterminated body runs to the end of input.
func (b *Base[K]) CommentBody() *StateResult[*symbol.Symbol[K]] {
	b.TakeUntil(func(c rune) bool { return c == '*' })
	if b.Current() != '*' {
		return b.TransitionWith(b.EndSymbol(b.comments.Body), b.StartState())
	}

	starStart := b.CurrentLocation()
	b.MoveNext()
	if b.Current() != '@' {
		b.buffer.WriteRune('*')
		return b.Stay()
	}

	closeStar := func() *StateResult[*symbol.Symbol[K]] {
		b.buffer.WriteRune('*')
		return b.TransitionWith(b.EndSymbolAt(starStart, b.comments.Star), b.closeTransition)
	}
	if b.HaveContent() {
		return b.TransitionWith(b.EndSymbol(b.comments.Body), closeStar)
	}
	return b.Transition(closeStar)
}

func (b *Base[K]) closeTransition() *StateResult[*symbol.Symbol[K]] {
	if b.Current() != '@' {
		return b.Transition(b.StartState())
	}
	b.TakeCurrent()
	return b.TransitionWith(b.EndSymbol(b.comments.Transition), b.StartState())
}

// Tokenize drains tok.
func Tokenize[K symbol.Kind](tok Tokenizer[K]) []*symbol.Symbol[K] {
	var symbols []*symbol.Symbol[K]
	for sym := tok.NextSymbol(); sym != nil; sym = tok.NextSymbol() {
		symbols = append(symbols, sym)
	}
	return symbols
}
