package tree

import (
	"strings"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/text"
)

// RewritingContext carries the document through a chain of rewriters.
// A rewriter replaces Document to publish its result.
type RewritingContext struct {
	Document *Block
	Errors   *source.ErrorSink
}

// NewRewritingContext creates a context over document.
func NewRewritingContext(document *Block, errs *source.ErrorSink) *RewritingContext {
	if errs == nil {
		errs = source.NewErrorSink()
	}
	return &RewritingContext{Document: document, Errors: errs}
}

// Rewriter transforms a document after it has been built.
type Rewriter interface {
	Rewrite(ctx *RewritingContext)
}

// RewriterFunc adapts a function to Rewriter.
type RewriterFunc func(ctx *RewritingContext)

// Rewrite implements Rewriter.
func (f RewriterFunc) Rewrite(ctx *RewritingContext) {
	f(ctx)
}

// RewriteAll applies rewriters in order and re-threads the spans of the
// final document.
func RewriteAll(ctx *RewritingContext, rewriters ...Rewriter) {
	for _, rewriter := range rewriters {
		rewriter.Rewrite(ctx)
	}
	if ctx.Document != nil {
		Thread(ctx.Document)
	}
}

// WhitespaceMerger folds every markup span that holds only whitespace into
// the markup span directly before it in the same block. The surviving spans
// are reused; blocks are rebuilt.
type WhitespaceMerger struct{}

// Rewrite implements Rewriter.
func (WhitespaceMerger) Rewrite(ctx *RewritingContext) {
	if ctx.Document == nil {
		return
	}
	ctx.Document = mergeWhitespace(ctx.Document)
}

func mergeWhitespace(block *Block) *Block {
	builder := NewBlockBuilderFrom(block)
	var children []Node
	for _, child := range block.children {
		switch n := child.(type) {
		case *Block:
			children = append(children, mergeWhitespace(n))
		case *Span:
			if prev := precedingMarkup(children); prev != nil && isWhitespaceMarkup(n) {
				prev.Change(func(b *SpanBuilder) {
					for _, sym := range n.symbols {
						b.Accept(sym)
					}
				})
				continue
			}
			children = append(children, n)
		}
	}
	builder.SetChildren(children)
	return builder.Build()
}

func precedingMarkup(children []Node) *Span {
	if len(children) == 0 {
		return nil
	}
	if prev, ok := children[len(children)-1].(*Span); ok && prev.kind == SpanMarkup {
		return prev
	}
	return nil
}

func isWhitespaceMarkup(span *Span) bool {
	return span.kind == SpanMarkup &&
		span.length > 0 &&
		strings.IndexFunc(span.content, func(ch rune) bool { return !text.IsWhiteSpaceOrNewLine(ch) }) < 0
}
