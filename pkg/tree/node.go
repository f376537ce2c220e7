// Package tree is the syntax tree built over tokenizer output: leaf spans of
// uniformly typed symbols grouped into nested blocks.
//
// Spans and blocks are produced by SpanBuilder and BlockBuilder. A built
// block owns its children and every child points back at it through Parent.
// Spans are additionally threaded in source order through Prev and Next so
// that a change of one span's start can be carried to every later span.
package tree

import "github.com/yaklabco/razorlex/pkg/source"

// Node is either a *Span or a *Block.
type Node interface {
	Start() source.Location
	// Length is the content length in characters.
	Length() int
	IsBlock() bool
	Parent() *Block
	Accept(v Visitor)
	// Equal is strict structural equality including source positions.
	Equal(other Node) bool
	// EquivalentTo compares shape, kinds and content but not positions.
	EquivalentTo(other Node) bool
	String() string

	setParent(parent *Block)
}

// EquivalenceComparer adapts EquivalentTo to a plain equality function.
type EquivalenceComparer struct{}

// Equal reports whether x and y are the same node or equivalent nodes.
func (EquivalenceComparer) Equal(x, y Node) bool {
	if x == y {
		return true
	}
	if isNil(x) || isNil(y) {
		return false
	}
	return x.EquivalentTo(y)
}

func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Span:
		return v == nil
	case *Block:
		return v == nil
	default:
		return false
	}
}
