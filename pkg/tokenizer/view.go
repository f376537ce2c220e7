package tokenizer

import (
	"fmt"

	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/text"
)

// View is a cursor over a tokenizer with room to put the last symbol back.
// Putting back requires an addressable source.
type View[K symbol.Kind] struct {
	tokenizer Tokenizer[K]
	current   *symbol.Symbol[K]
	eof       bool
}

// NewView wraps tok.
func NewView[K symbol.Kind](tok Tokenizer[K]) *View[K] {
	return &View[K]{tokenizer: tok}
}

// Tokenizer returns the wrapped tokenizer.
func (v *View[K]) Tokenizer() Tokenizer[K] { return v.tokenizer }

// Current returns the symbol read by the last Next.
func (v *View[K]) Current() *symbol.Symbol[K] { return v.current }

// EndOfFile reports whether the last Next ran out of symbols.
func (v *View[K]) EndOfFile() bool { return v.eof }

// Next advances to the next symbol and reports whether there was one.
func (v *View[K]) Next() bool {
	v.current = v.tokenizer.NextSymbol()
	v.eof = v.current == nil
	return !v.eof
}

// PutBack rewinds the source over sym, which must be the symbol just read.
// It panics when the source is not addressable or sym is not adjacent.
func (v *View[K]) PutBack(sym *symbol.Symbol[K]) {
	doc, ok := v.tokenizer.Source().(text.Document)
	if !ok {
		panic("tokenizer: put back needs an addressable source")
	}
	if doc.Position() != sym.Start().Absolute+sym.Len() {
		panic(fmt.Sprintf("tokenizer: cannot put back %s: the source has moved past it", sym))
	}
	doc.SetPosition(doc.Position() - sym.Len())
	v.current = nil
	v.eof = doc.Position() >= doc.Len()
	v.tokenizer.Reset()
}
