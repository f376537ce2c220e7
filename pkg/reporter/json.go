package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/razorlex/pkg/analysis"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string                     `json:"version"`
	Files     []analysis.FileEntry       `json:"files"`
	Errors    []analysis.ErrorEntry      `json:"errors"`
	ByMessage []analysis.MessageAnalysis `json:"byMessage,omitempty"`
	Summary   analysis.Totals            `json:"summary"`
}

// JSONRenderer formats reports as JSON.
type JSONRenderer struct {
	opts Options
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := JSONOutput{
		Version:   report.Version,
		Files:     report.Files,
		Errors:    report.Errors,
		ByMessage: report.ByMessage,
		Summary:   report.Totals,
	}
	if output.Errors == nil {
		output.Errors = []analysis.ErrorEntry{}
	}

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
