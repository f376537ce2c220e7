package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by error count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeErrors includes the flat error list.
	IncludeErrors bool

	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeByMessage includes the per-message analysis.
	IncludeByMessage bool

	// SortBy specifies how to sort ByFile and ByMessage.
	SortBy SortField

	// SortDesc sorts counts in descending order (highest first).
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeErrors:    true,
		IncludeByFile:    true,
		IncludeByMessage: true,
		SortBy:           SortByCount,
		SortDesc:         true,
	}
}
