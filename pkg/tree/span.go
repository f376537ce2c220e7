package tree

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/symbol"
)

// Span is a leaf node: a run of consecutive symbols sharing one kind.
// Symbol starts are relative to the span start.
type Span struct {
	kind      SpanKind
	start     source.Location
	symbols   []symbol.Interface
	generator Generator
	accepts   AcceptedCharacters

	content string
	length  int
	grouped string

	parent *Block
	prev   *Span
	next   *Span
}

var _ Node = (*Span)(nil)

func (s *Span) Kind() SpanKind              { return s.kind }
func (s *Span) Start() source.Location      { return s.start }
func (s *Span) Content() string             { return s.content }
func (s *Span) Length() int                 { return s.length }
func (s *Span) IsBlock() bool               { return false }
func (s *Span) Parent() *Block              { return s.parent }
func (s *Span) Generator() Generator        { return s.generator }
func (s *Span) Accepts() AcceptedCharacters { return s.accepts }
func (s *Span) Prev() *Span                 { return s.prev }
func (s *Span) Next() *Span                 { return s.next }

// Symbols returns the span's symbols with span-relative starts.
func (s *Span) Symbols() []symbol.Interface {
	return slices.Clone(s.symbols)
}

// GroupedSymbols summarizes the symbol types as "Type:count;" pairs in
// order of first appearance.
func (s *Span) GroupedSymbols() string {
	return s.grouped
}

// End returns the location just past the span content.
func (s *Span) End() source.Location {
	return source.CalculateNewLocation(s.start, s.content)
}

// Contains reports whether the absolute offset lies inside the span.
func (s *Span) Contains(absolute int) bool {
	return absolute >= s.start.Absolute && absolute < s.start.Absolute+s.length
}

func (s *Span) setParent(parent *Block) {
	s.parent = parent
}

// SetStart moves the span without touching its neighbours.
func (s *Span) SetStart(start source.Location) {
	s.start = start
}

// ChangeStart moves the span to start and re-anchors every following span
// so that each one starts where the previous one ends. Symbol starts stay
// relative to their span.
func (s *Span) ChangeStart(start source.Location) {
	tracker := source.NewTracker(start)
	for current := s; current != nil; current = current.next {
		current.start = tracker.Location()
		tracker.UpdateString(current.content)
	}
}

// Change rebuilds the span from a builder seeded with its current state.
func (s *Span) Change(fn func(b *SpanBuilder)) {
	builder := NewSpanBuilderFrom(s)
	fn(builder)
	s.ReplaceWith(builder)
}

// ReplaceWith discards the span's state, takes the builder's, and resets the
// builder. Tree links are kept.
func (s *Span) ReplaceWith(b *SpanBuilder) {
	s.kind = b.Kind
	s.start = b.start
	s.symbols = b.symbols
	s.generator = generatorOrDefault(b.Generator)
	s.accepts = b.Accepts

	var content strings.Builder
	for _, sym := range s.symbols {
		content.WriteString(sym.Content())
	}
	s.content = content.String()
	s.length = utf8.RuneCountInString(s.content)
	s.grouped = groupSymbols(s.symbols)

	b.Reset()
}

// Accept implements Node.
func (s *Span) Accept(v Visitor) {
	v.VisitSpan(s)
}

// Equal implements Node.
func (s *Span) Equal(other Node) bool {
	o, ok := other.(*Span)
	if !ok || o == nil {
		return false
	}
	return s.kind == o.kind &&
		s.start == o.start &&
		s.content == o.content &&
		s.generator.Equal(o.generator) &&
		slices.EqualFunc(s.symbols, o.symbols, func(a, b symbol.Interface) bool {
			return a.Equal(b)
		})
}

// EquivalentTo implements Node. Spans are equivalent when kind and content
// match.
func (s *Span) EquivalentTo(other Node) bool {
	o, ok := other.(*Span)
	if !ok || o == nil {
		return false
	}
	return s.kind == o.kind && s.content == o.content
}

func (s *Span) String() string {
	return fmt.Sprintf("%s Span at %s::%d - [%s] Gen: <%s> {%s}",
		s.kind, s.start, s.length, s.content, s.generator, s.grouped)
}

func groupSymbols(symbols []symbol.Interface) string {
	var order []string
	counts := make(map[string]int)
	for _, sym := range symbols {
		name := sym.TypeName()
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	var builder strings.Builder
	for _, name := range order {
		fmt.Fprintf(&builder, "%s:%d;", name, counts[name])
	}
	return builder.String()
}
