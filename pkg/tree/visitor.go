package tree

import "github.com/yaklabco/razorlex/pkg/source"

// Visitor receives a tree walk driven by Node.Accept or Results.Visit.
type Visitor interface {
	VisitStartBlock(b *Block)
	VisitEndBlock(b *Block)
	VisitSpan(s *Span)
	VisitError(err source.Error)
	OnComplete()
}

// BaseVisitor implements every Visitor method as a no-op. Embed it and
// override what you need.
type BaseVisitor struct{}

func (BaseVisitor) VisitStartBlock(*Block)  {}
func (BaseVisitor) VisitEndBlock(*Block)    {}
func (BaseVisitor) VisitSpan(*Span)         {}
func (BaseVisitor) VisitError(source.Error) {}
func (BaseVisitor) OnComplete()             {}

// Results is the outcome of building a document.
type Results struct {
	Document *Block
	Errors   []source.Error
	// Success is true when no errors were reported.
	Success bool
}

// NewResults captures the sink's errors alongside the document.
func NewResults(document *Block, sink *source.ErrorSink) *Results {
	errs := sink.Errors()
	return &Results{Document: document, Errors: errs, Success: len(errs) == 0}
}

// Visit walks the document, then reports each error, then calls
// OnComplete.
func (r *Results) Visit(v Visitor) {
	if r.Document != nil {
		r.Document.Accept(v)
	}
	for _, err := range r.Errors {
		v.VisitError(err)
	}
	v.OnComplete()
}
