package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/razorlex/internal/ui/pretty"
	"github.com/yaklabco/razorlex/pkg/runner"
)

func TestFormatSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name       string
		stats      runner.Stats
		contains   []string
		notContain []string
	}{
		{
			name: "clean run",
			stats: runner.Stats{
				FilesProcessed: 5,
				SymbolsTotal:   120,
				SpansTotal:     30,
				ByLanguage:     map[string]int{"html": 3, "javascript": 2},
			},
			contains: []string{
				"Summary", "Files checked:     5", "Symbols:           120",
				"Spans:             30", "  html:            3", "All files tokenized cleanly",
			},
			notContain: []string{"Files with errors:", "Files unreadable:"},
		},
		{
			name: "lexical errors",
			stats: runner.Stats{
				FilesProcessed:  4,
				FilesWithErrors: 2,
				ErrorsTotal:     3,
				FilesSkipped:    1,
			},
			contains: []string{"Files with errors: 2", "Lexical errors:    3", "Files skipped:     1", "Lexical errors found"},
		},
		{
			name:     "unreadable files",
			stats:    runner.Stats{FilesErrored: 1},
			contains: []string{"Files unreadable:  1", "Some files could not be read"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := styles.FormatSummary(tt.stats)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.notContain {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "no errors",
			stats: runner.Stats{FilesProcessed: 3},
			want:  "No lexical errors (3 files checked)\n",
		},
		{
			name:  "single file",
			stats: runner.Stats{FilesProcessed: 1, FilesWithErrors: 1, ErrorsTotal: 1},
			want:  "1 error in 1 file (1 file checked)\n",
		},
		{
			name:  "errors and unreadable",
			stats: runner.Stats{FilesProcessed: 4, FilesWithErrors: 2, ErrorsTotal: 5, FilesErrored: 1},
			want:  "5 errors in 2 files (4 files checked), 1 unreadable\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}
