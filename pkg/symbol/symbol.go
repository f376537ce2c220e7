// Package symbol defines the typed tokens produced by the tokenizers.
package symbol

import (
	"fmt"
	"slices"

	"github.com/yaklabco/razorlex/pkg/source"
)

// Kind is the type tag of a symbol in one language.
type Kind interface {
	~int
	fmt.Stringer
}

// Interface is the language-independent view of a symbol. Spans hold
// symbols through it.
type Interface interface {
	Start() source.Location
	Content() string
	TypeName() string
	Errors() []source.Error
	// ChangeStart overwrites the start location.
	ChangeStart(start source.Location)
	// OffsetStart adds origin to the start location.
	OffsetStart(origin source.Location)
	Equal(other Interface) bool
	String() string
}

// Symbol is one token: its start, exact content, type and the lexical
// errors found while scanning it. Only the start may change after
// construction.
type Symbol[K Kind] struct {
	start   source.Location
	content string
	typ     K
	errors  []source.Error
}

// New creates a symbol.
func New[K Kind](start source.Location, content string, typ K, errors ...source.Error) *Symbol[K] {
	return &Symbol[K]{
		start:   start,
		content: content,
		typ:     typ,
		errors:  slices.Clone(errors),
	}
}

// Start returns the symbol's start location.
func (s *Symbol[K]) Start() source.Location { return s.start }

// Content returns the exact source text of the symbol.
func (s *Symbol[K]) Content() string { return s.content }

// Type returns the symbol type.
func (s *Symbol[K]) Type() K { return s.typ }

// TypeName returns the name of the symbol type.
func (s *Symbol[K]) TypeName() string { return s.typ.String() }

// Errors returns the lexical errors attached to the symbol.
func (s *Symbol[K]) Errors() []source.Error { return s.errors }

// Len returns the content length in characters.
func (s *Symbol[K]) Len() int { return len([]rune(s.content)) }

// End returns the location just past the symbol.
func (s *Symbol[K]) End() source.Location {
	return source.CalculateNewLocation(s.start, s.content)
}

// ChangeStart implements Interface.
func (s *Symbol[K]) ChangeStart(start source.Location) {
	s.start = start
}

// OffsetStart implements Interface.
func (s *Symbol[K]) OffsetStart(origin source.Location) {
	s.start = origin.Add(s.start)
}

// Equal compares start, content and type. Errors are not compared.
func (s *Symbol[K]) Equal(other Interface) bool {
	o, ok := other.(*Symbol[K])
	if !ok || o == nil {
		return false
	}
	return s.start == o.start && s.content == o.content && s.typ == o.typ
}

// String renders the symbol for debugging.
func (s *Symbol[K]) String() string {
	return fmt.Sprintf("%s %s - %s", s.start, s.typ, s.content)
}

// Split divides sym at character index. The left part takes leftType and no
// errors; the right part keeps the original type and errors and starts where
// the left part ends. right is nil when index is at or past the end.
func Split[K Kind](sym *Symbol[K], index int, leftType K) (left, right *Symbol[K]) {
	runes := []rune(sym.content)
	index = min(max(index, 0), len(runes))

	leftContent := string(runes[:index])
	left = New(sym.start, leftContent, leftType)
	if index < len(runes) {
		right = New(source.CalculateNewLocation(sym.start, leftContent), string(runes[index:]), sym.typ, sym.errors...)
	}
	return left, right
}
