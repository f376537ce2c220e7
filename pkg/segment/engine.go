// Package segment builds syntax trees from token streams and keeps them up
// to date under text edits.
//
// The segmenter recognizes the Razor constructs that need no grammar: @*
// comments become Comment blocks and @ followed by an identifier becomes an
// Expression block. Everything else is grouped into one span per line.
package segment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/text"
	"github.com/yaklabco/razorlex/pkg/tokenizer"
	"github.com/yaklabco/razorlex/pkg/tree"
)

// Language names accepted by ForLanguage.
const (
	LanguageHTML       = "html"
	LanguageJavaScript = "javascript"
)

// ErrUnsupportedLanguage is returned for a language without an engine.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Engine tokenizes and segments one language.
type Engine interface {
	// Language is the language name, e.g. "html".
	Language() string
	// Role is the kind of document the engine builds.
	Role() tree.Role
	// Tokenize returns every symbol of content.
	Tokenize(content string) []symbol.Interface
	// Classify maps a symbol onto the language-independent categories.
	Classify(sym symbol.Interface) symbol.KnownType

	segment(content string) (*tree.Block, *source.ErrorSink)
	respan(owner *tree.Span, content string) (*tree.SpanBuilder, bool)
	endsLine(span *tree.Span) bool
}

// HTML returns the markup engine.
func HTML() Engine {
	return newSegmenter[symbol.HTMLType](tokenizer.HTMLLanguage{}, tree.RoleMarkup, symbol.HTMLText)
}

// JavaScript returns the script engine.
func JavaScript(validateRegex bool) Engine {
	return newSegmenter[symbol.JSType](
		tokenizer.JSLanguage{ValidateRegex: validateRegex}, tree.RoleCode,
		symbol.JSIdentifier, symbol.JSKeyword)
}

// ForLanguage returns the engine for name.
func ForLanguage(name string, validateRegex bool) (Engine, error) {
	switch strings.ToLower(name) {
	case LanguageHTML, "htm", "cshtml", "razor":
		return HTML(), nil
	case LanguageJavaScript, "js":
		return JavaScript(validateRegex), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
}

type segmenter[K symbol.Kind] struct {
	lang tokenizer.Language[K]
	role tree.Role

	transition   K
	commentStart K
	commentStar  K
	commentBody  K
	newLine      K
	// expressionBody are the types that may follow @ in an expression.
	expressionBody []K
}

func newSegmenter[K symbol.Kind](lang tokenizer.Language[K], role tree.Role, expressionBody ...K) *segmenter[K] {
	return &segmenter[K]{
		lang:           lang,
		role:           role,
		transition:     lang.KnownType(symbol.KnownTransition),
		commentStart:   lang.KnownType(symbol.KnownCommentStart),
		commentStar:    lang.KnownType(symbol.KnownCommentStar),
		commentBody:    lang.KnownType(symbol.KnownCommentBody),
		newLine:        lang.KnownType(symbol.KnownNewLine),
		expressionBody: expressionBody,
	}
}

func (s *segmenter[K]) Language() string { return s.lang.Name() }
func (s *segmenter[K]) Role() tree.Role  { return s.role }

func (s *segmenter[K]) Tokenize(content string) []symbol.Interface {
	symbols := tokenizer.Tokenize(s.lang.NewTokenizer(text.NewSeekableReader(content)))
	out := make([]symbol.Interface, 0, len(symbols))
	for _, sym := range symbols {
		out = append(out, sym)
	}
	return out
}

//nolint:gochecknoglobals // Read-only lookup order.
var classifyOrder = []symbol.KnownType{
	symbol.KnownWhiteSpace,
	symbol.KnownNewLine,
	symbol.KnownIdentifier,
	symbol.KnownKeyword,
	symbol.KnownTransition,
	symbol.KnownCommentStart,
	symbol.KnownCommentStar,
	symbol.KnownCommentBody,
}

func (s *segmenter[K]) Classify(sym symbol.Interface) symbol.KnownType {
	typed, ok := sym.(*symbol.Symbol[K])
	if !ok {
		return symbol.KnownUnknown
	}
	for _, known := range classifyOrder {
		if s.lang.KnownType(known) == typed.Type() {
			return known
		}
	}
	return symbol.KnownUnknown
}

func (s *segmenter[K]) rootType() tree.BlockType {
	if s.role == tree.RoleMarkup {
		return tree.BlockMarkup
	}
	return tree.BlockStatement
}

func (s *segmenter[K]) lineKind() tree.SpanKind {
	if s.role == tree.RoleMarkup {
		return tree.SpanMarkup
	}
	return tree.SpanCode
}

func (s *segmenter[K]) isExpressionBody(typ K) bool {
	for _, body := range s.expressionBody {
		if typ == body {
			return true
		}
	}
	return false
}

func (s *segmenter[K]) segment(content string) (*tree.Block, *source.ErrorSink) {
	sink := source.NewErrorSink()
	view := tokenizer.NewView(s.lang.NewTokenizer(text.NewSeekableReader(content)))
	root := tree.NewBlockBuilder(s.rootType())

	line := tree.NewSpanBuilder(s.lineKind())
	flush := func() {
		if !line.Empty() {
			root.Add(line.Build())
		}
	}

	for view.Next() {
		sym := view.Current()
		report(sink, sym)

		switch sym.Type() {
		case s.commentStart:
			flush()
			root.Add(s.comment(view, sym, sink))
		case s.transition:
			if !view.Next() {
				line.Accept(sym)
				break
			}
			next := view.Current()
			switch {
			case s.isExpressionBody(next.Type()):
				report(sink, next)
				flush()
				root.Add(s.expression(sym, next))
			case next.Type() == s.transition:
				// @@ is an escaped @ and stays in the line.
				report(sink, next)
				line.Accept(sym)
				line.Accept(next)
			default:
				view.PutBack(next)
				line.Accept(sym)
			}
		case s.newLine:
			line.Accept(sym)
			flush()
		default:
			line.Accept(sym)
		}
	}
	flush()

	ctx := tree.NewRewritingContext(root.Build(), sink)
	tree.RewriteAll(ctx, tree.WhitespaceMerger{})
	return ctx.Document, sink
}

func (s *segmenter[K]) comment(view *tokenizer.View[K], start *symbol.Symbol[K], sink *source.ErrorSink) *tree.Block {
	block := tree.NewBlockBuilder(tree.BlockComment)
	block.Add(single(tree.SpanTransition, tree.AcceptsNone, start))

	for closed := false; !closed && view.Next(); {
		sym := view.Current()
		var span *tree.Span
		switch sym.Type() {
		case s.commentStar:
			span = single(tree.SpanMetaCode, tree.AcceptsNone, sym)
		case s.commentBody:
			span = single(tree.SpanComment, tree.AcceptsAny, sym)
		case s.commentStart:
			span = single(tree.SpanTransition, tree.AcceptsNone, sym)
			closed = true
		default:
			view.PutBack(sym)
			return block.Build()
		}
		report(sink, sym)
		block.Add(span)
	}
	return block.Build()
}

func (s *segmenter[K]) expression(transition, body *symbol.Symbol[K]) *tree.Block {
	block := tree.NewBlockBuilder(tree.BlockExpression)
	block.Generator = tree.Named("Expression")
	block.Add(single(tree.SpanTransition, tree.AcceptsNone, transition))
	block.Add(single(tree.SpanCode, tree.AcceptsNonWhiteSpace, body))
	return block.Build()
}

func (s *segmenter[K]) endsLine(span *tree.Span) bool {
	symbols := span.Symbols()
	if len(symbols) == 0 {
		return false
	}
	last, ok := symbols[len(symbols)-1].(*symbol.Symbol[K])
	return ok && last.Type() == s.newLine
}

// respan rebuilds owner from content when the result keeps the tree shape
// a full segmentation would produce. It reports false otherwise.
func (s *segmenter[K]) respan(owner *tree.Span, content string) (*tree.SpanBuilder, bool) {
	if content == "" {
		return nil, false
	}

	builder := tree.NewSpanBuilder(owner.Kind())
	builder.Generator = owner.Generator()
	builder.Accepts = owner.Accepts()

	if owner.Kind() == tree.SpanComment {
		if strings.Contains(content, "*@") {
			return nil, false
		}
		builder.Accept(s.lang.NewSymbol(owner.Start(), content, s.commentBody))
		return builder, true
	}

	symbols := tokenizer.TokenizeString(s.lang, owner.Start(), content)
	if len(symbols) == 0 {
		return nil, false
	}
	for i, sym := range symbols {
		if len(sym.Errors()) > 0 {
			return nil, false
		}
		switch sym.Type() {
		case s.transition, s.commentStart:
			return nil, false
		case s.newLine:
			if i != len(symbols)-1 {
				return nil, false
			}
		}
		builder.Accept(sym)
	}

	if parent := owner.Parent(); parent != nil && parent.Type() == tree.BlockExpression {
		return builder, len(symbols) == 1 && s.isExpressionBody(symbols[0].Type())
	}

	endsWithNewLine := symbols[len(symbols)-1].Type() == s.newLine
	if endsWithNewLine != s.endsLine(owner) {
		return nil, false
	}
	if owner.Kind() == tree.SpanMarkup && strings.TrimFunc(content, text.IsWhiteSpaceOrNewLine) == "" {
		return nil, false
	}
	return builder, true
}

func single(kind tree.SpanKind, accepts tree.AcceptedCharacters, sym symbol.Interface) *tree.Span {
	builder := tree.NewSpanBuilder(kind)
	builder.Accepts = accepts
	builder.Accept(sym)
	return builder.Build()
}

func report(sink *source.ErrorSink, sym symbol.Interface) {
	for _, err := range sym.Errors() {
		sink.OnError(err)
	}
}
