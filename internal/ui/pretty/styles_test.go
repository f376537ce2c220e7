package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/razorlex/internal/ui/pretty"
	"github.com/yaklabco/razorlex/pkg/symbol"
	"github.com/yaklabco/razorlex/pkg/tree"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
	assert.Equal(t, text, styles.ForSymbol(symbol.KnownKeyword).Render(text))
	assert.Equal(t, text, styles.ForSpan(tree.SpanComment).Render(text))
}

func TestStyles_AllFieldsInitialized(t *testing.T) {
	styles := pretty.NewStyles(true)

	for name, style := range map[string]interface{ Render(...string) string }{
		"Error":        styles.Error,
		"FilePath":     styles.FilePath,
		"Location":     styles.Location,
		"Message":      styles.Message,
		"SourceLine":   styles.SourceLine,
		"Caret":        styles.Caret,
		"SummaryTitle": styles.SummaryTitle,
		"Success":      styles.Success,
		"Failure":      styles.Failure,
		"TableHeader":  styles.TableHeader,
		"Keyword":      styles.Keyword,
		"Identifier":   styles.Identifier,
		"Transition":   styles.Transition,
		"Comment":      styles.Comment,
		"BlockName":    styles.BlockName,
		"SpanName":     styles.SpanName,
		"Dim":          styles.Dim,
		"Bold":         styles.Bold,
	} {
		assert.NotEmpty(t, style.Render("x"), name)
	}
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode with non-TTY should return false (auto behavior)")
	assert.False(t, pretty.IsColorEnabled("unknown", &buf), "unknown mode with non-TTY should return false (auto behavior)")
}
