package tree_test

import (
	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/tree"
)

// newSpan builds a span of text symbols laid out one after another from start.
func newSpan(kind tree.SpanKind, start source.Location, parts ...string) *tree.Span {
	builder := tree.NewSpanBuilder(kind)
	location := start
	for _, part := range parts {
		builder.Accept(symbol.New(location, part, symbol.HTMLText))
		location = source.CalculateNewLocation(location, part)
	}
	return builder.Build()
}

// newDocument builds
//
//	Markup
//	  Markup "<p>"
//	  Expression
//	    Transition "@"
//	    Code "name"
//	  Markup "</p>"
//
// starting at origin.
func newDocument(origin source.Location) *tree.Block {
	open := newSpan(tree.SpanMarkup, origin, "<p>")
	transition := newSpan(tree.SpanTransition, open.End(), "@")
	code := newSpan(tree.SpanCode, transition.End(), "name")
	closing := newSpan(tree.SpanMarkup, code.End(), "</p>")

	expression := tree.NewBlockBuilder(tree.BlockExpression)
	expression.Generator = tree.Named("Expression")
	expression.Add(transition)
	expression.Add(code)

	root := tree.NewBlockBuilder(tree.BlockMarkup)
	root.Add(open)
	root.Add(expression.Build())
	root.Add(closing)

	doc := root.Build()
	tree.Thread(doc)
	return doc
}

func contents(spans []*tree.Span) []string {
	out := make([]string, 0, len(spans))
	for _, span := range spans {
		out = append(out, span.Content())
	}
	return out
}
