package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/yaklabco/razorlex/pkg/segment"
)

const diagnosticSource = "razorlex"

// Diagnostics converts the lexical errors of doc into protocol diagnostics.
// The result is never nil so that publishing it clears stale diagnostics.
func Diagnostics(doc *segment.Document) []protocol.Diagnostic {
	errs := doc.Errors.Errors()
	diagnostics := make([]protocol.Diagnostic, 0, len(errs))

	for _, err := range errs {
		severity := protocol.DiagnosticSeverityError
		source := diagnosticSource
		start := err.Location.Absolute
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: PositionAt(doc.Content, start),
				End:   PositionAt(doc.Content, start+max(err.Length, 0)),
			},
			Severity: &severity,
			Source:   &source,
			Message:  err.Message,
		})
	}
	return diagnostics
}
