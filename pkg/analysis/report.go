package analysis

import "time"

// Report contains pre-computed views of a run.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Files lists every file with its language and counts.
	Files []FileEntry `json:"files"`

	// Errors is the flat list for detailed output.
	Errors []ErrorEntry `json:"errors,omitempty"`

	// ByFile groups errors by file path. Files without errors are left out.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByMessage groups errors by message.
	ByMessage []MessageAnalysis `json:"byMessage,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// FileEntry describes one processed file.
type FileEntry struct {
	Path     string `json:"path"`
	Language string `json:"language,omitempty"`
	Symbols  int    `json:"symbols"`
	Spans    int    `json:"spans"`
	Errors   int    `json:"errors"`
	Failure  string `json:"failure,omitempty"`
}

// ErrorEntry is one lexical error. Line and column are one-based; Offset is
// the zero-based character offset.
type ErrorEntry struct {
	FilePath string `json:"filePath"`
	Language string `json:"language"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"filesChecked"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesFailed     int `json:"filesFailed"`
	FilesWithErrors int `json:"filesWithErrors"`
	Errors          int `json:"errors"`
	Symbols         int `json:"symbols"`
	Spans           int `json:"spans"`
}

// HasErrors returns true if there are any lexical errors.
func (t Totals) HasErrors() bool {
	return t.Errors > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path     string   `json:"path"`
	Language string   `json:"language"`
	Errors   int      `json:"errors"`
	Messages []string `json:"messages,omitempty"`
}

// MessageAnalysis contains aggregated data for a single error message.
type MessageAnalysis struct {
	Message string   `json:"message"`
	Errors  int      `json:"errors"`
	Files   []string `json:"files,omitempty"`
}
