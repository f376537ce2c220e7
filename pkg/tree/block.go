package tree

import (
	"fmt"
	"slices"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/text"
)

// Block is an interior node grouping spans and nested blocks.
type Block struct {
	typ       BlockType
	children  []Node
	generator Generator
	parent    *Block
}

var _ Node = (*Block)(nil)

// Type returns the block type.
func (b *Block) Type() BlockType { return b.typ }

// Generator returns the block's generator.
func (b *Block) Generator() Generator { return b.generator }

// Parent implements Node.
func (b *Block) Parent() *Block { return b.parent }

// IsBlock implements Node.
func (b *Block) IsBlock() bool { return true }

// Children returns the direct children in source order.
func (b *Block) Children() []Node {
	return slices.Clone(b.children)
}

// Start is the start of the first child, or source.Zero for an empty block.
func (b *Block) Start() source.Location {
	if len(b.children) == 0 {
		return source.Zero
	}
	return b.children[0].Start()
}

// Length is the sum of the children's lengths.
func (b *Block) Length() int {
	total := 0
	for _, child := range b.children {
		total += child.Length()
	}
	return total
}

func (b *Block) setParent(parent *Block) {
	b.parent = parent
}

// Accept implements Node. Children are visited in order between
// VisitStartBlock and VisitEndBlock.
func (b *Block) Accept(v Visitor) {
	v.VisitStartBlock(b)
	for _, child := range b.children {
		child.Accept(v)
	}
	v.VisitEndBlock(b)
}

// Equal implements Node.
func (b *Block) Equal(other Node) bool {
	o, ok := other.(*Block)
	if !ok || o == nil {
		return false
	}
	return b.typ == o.typ &&
		b.generator.Equal(o.generator) &&
		slices.EqualFunc(b.children, o.children, func(x, y Node) bool {
			return x.Equal(y)
		})
}

// EquivalentTo implements Node.
func (b *Block) EquivalentTo(other Node) bool {
	o, ok := other.(*Block)
	if !ok || o == nil {
		return false
	}
	return b.typ == o.typ &&
		slices.EqualFunc(b.children, o.children, func(x, y Node) bool {
			return x.EquivalentTo(y)
		})
}

func (b *Block) String() string {
	return fmt.Sprintf("%s Block at %s::%d (Gen:%s)", b.typ, b.Start(), b.Length(), b.generator)
}

// Flatten returns every span under the block, depth first in source order.
func (b *Block) Flatten() []*Span {
	var spans []*Span
	b.eachSpan(func(s *Span) bool {
		spans = append(spans, s)
		return true
	})
	return spans
}

// FirstSpan returns the first span under the block, or nil.
func (b *Block) FirstSpan() *Span {
	var first *Span
	b.eachSpan(func(s *Span) bool {
		first = s
		return false
	})
	return first
}

// LastSpan returns the last span under the block, or nil.
func (b *Block) LastSpan() *Span {
	var last *Span
	b.eachSpan(func(s *Span) bool {
		last = s
		return true
	})
	return last
}

// LocateOwner returns the span that owns the text at change.OldPosition:
// the last span in source order starting at or before it. A position before
// all content belongs to the first span. It returns nil when the block has
// no spans.
func (b *Block) LocateOwner(change text.Change) *Span {
	var owner *Span
	b.eachSpan(func(s *Span) bool {
		if owner != nil && change.OldPosition < s.start.Absolute {
			return false
		}
		owner = s
		return true
	})
	return owner
}

// eachSpan calls fn for each span in source order until fn returns false.
// It reports whether the walk ran to completion.
func (b *Block) eachSpan(fn func(s *Span) bool) bool {
	for _, child := range b.children {
		switch n := child.(type) {
		case *Span:
			if !fn(n) {
				return false
			}
		case *Block:
			if !n.eachSpan(fn) {
				return false
			}
		}
	}
	return true
}

// Thread links the spans under root to their neighbours in source order and
// returns them.
func Thread(root *Block) []*Span {
	spans := root.Flatten()
	for i, span := range spans {
		span.prev, span.next = nil, nil
		if i > 0 {
			span.prev = spans[i-1]
			spans[i-1].next = span
		}
	}
	return spans
}
