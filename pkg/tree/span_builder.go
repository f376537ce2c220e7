package tree

import (
	"slices"

	"github.com/yaklabco/razorlex/pkg/source"
	"github.com/yaklabco/razorlex/pkg/symbol"
)

// SpanBuilder collects symbols for a span. The first accepted symbol fixes
// the span start; every accepted symbol is rebased to be relative to it.
type SpanBuilder struct {
	Kind      SpanKind
	Generator Generator
	Accepts   AcceptedCharacters

	start   source.Location
	symbols []symbol.Interface
	tracker *source.Tracker
}

// NewSpanBuilder creates an empty builder for kind.
func NewSpanBuilder(kind SpanKind) *SpanBuilder {
	b := &SpanBuilder{Kind: kind, Accepts: AcceptsAny}
	b.Reset()
	return b
}

// NewSpanBuilderFrom creates a builder holding the state of span, ready to
// accept more symbols after the existing ones.
func NewSpanBuilderFrom(span *Span) *SpanBuilder {
	b := &SpanBuilder{
		Kind:      span.kind,
		Generator: span.generator,
		Accepts:   span.accepts,
		start:     span.start,
		symbols:   slices.Clone(span.symbols),
		tracker:   source.NewTracker(source.Zero),
	}
	for _, sym := range b.symbols {
		b.tracker.UpdateString(sym.Content())
	}
	return b
}

// Start returns the start of the span being built.
func (b *SpanBuilder) Start() source.Location {
	return b.start
}

// SetStart overrides the span start.
func (b *SpanBuilder) SetStart(start source.Location) {
	b.start = start
}

// Symbols returns the accepted symbols.
func (b *SpanBuilder) Symbols() []symbol.Interface {
	return slices.Clone(b.symbols)
}

// Empty reports whether no symbol has been accepted.
func (b *SpanBuilder) Empty() bool {
	return len(b.symbols) == 0
}

// Accept appends sym and rewrites its start relative to the span. Nil
// symbols are ignored.
func (b *SpanBuilder) Accept(sym symbol.Interface) {
	if sym == nil {
		return
	}
	if len(b.symbols) == 0 {
		b.start = sym.Start()
		b.tracker.SetLocation(source.Zero)
	}
	sym.ChangeStart(b.tracker.Location())
	b.symbols = append(b.symbols, sym)
	b.tracker.UpdateString(sym.Content())
}

// Build creates a span from the builder and resets it.
func (b *SpanBuilder) Build() *Span {
	span := &Span{}
	span.ReplaceWith(b)
	return span
}

// ClearSymbols drops the accepted symbols but keeps the start.
func (b *SpanBuilder) ClearSymbols() {
	b.symbols = nil
	b.tracker.SetLocation(source.Zero)
}

// Reset clears symbols, start and generator. Kind and Accepts are kept.
func (b *SpanBuilder) Reset() {
	b.symbols = nil
	b.start = source.Zero
	b.Generator = NoGenerator{}
	b.tracker = source.NewTracker(source.Zero)
}
