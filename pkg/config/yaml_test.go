package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/razorlex/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies maps and slices", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.Ignore = []string{"dist/**"}
		original.Jobs = 4

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.Extensions[".vue"] = config.LanguageHTML
		clone.Ignore[0] = "changed"
		*clone.ValidateRegex = true

		assert.NotContains(t, original.Extensions, ".vue")
		assert.Equal(t, "dist/**", original.Ignore[0])
		assert.False(t, original.ShouldValidateRegex())
	})
}

func TestConfigToYAML(t *testing.T) {
	t.Parallel()

	var nilConfig *config.Config
	data, err := nilConfig.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)

	cfg := &config.Config{Language: config.LanguageHTML, Jobs: 3}
	data, err = cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "language: html")
	assert.NotContains(t, string(data), "jobs", "CLI-only fields are not written")

	data, err = cfg.ToYAMLWithHeader("# header")
	require.NoError(t, err)
	assert.Equal(t, "# header\n\nlanguage: html\n", string(data))
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(`
language: javascript
validate_regex: true
extensions:
  .es6: javascript
lsp:
  trace: verbose
`))
	require.NoError(t, err)
	assert.Equal(t, config.LanguageJavaScript, cfg.Language)
	assert.True(t, cfg.ShouldValidateRegex())
	assert.Equal(t, config.LanguageJavaScript, cfg.Extensions[".es6"])
	assert.Equal(t, "verbose", cfg.LSP.Trace)

	_, err = config.FromYAML([]byte("language: [unclosed"))
	require.Error(t, err)
}

func TestLanguageFor(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	tests := []struct {
		path string
		want config.Language
		ok   bool
	}{
		{"index.html", config.LanguageHTML, true},
		{"Views/Home.CSHTML", config.LanguageHTML, true},
		{"app.mjs", config.LanguageJavaScript, true},
		{"README.md", "", false},
	}
	for _, tt := range tests {
		lang, ok := cfg.LanguageFor(tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
		assert.Equal(t, tt.want, lang, tt.path)
	}

	cfg.Language = config.LanguageJavaScript
	lang, ok := cfg.LanguageFor("README.md")
	assert.True(t, ok)
	assert.Equal(t, config.LanguageJavaScript, lang)

	assert.Equal(t, []string{".cjs", ".cshtml", ".htm", ".html", ".js", ".mjs", ".razor"},
		config.NewConfig().ExtensionList())
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	minimal, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)
	parsed, err := config.FromYAML(minimal)
	require.NoError(t, err)
	assert.Equal(t, config.LanguageAuto, parsed.Language)

	full, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)
	assert.Contains(t, string(full), "# razorlex configuration")
	assert.Contains(t, string(full), "# Check JavaScript regular expression literals")
	assert.Contains(t, string(full), "validate_regex: false")

	parsed, err = config.FromYAML(full)
	require.NoError(t, err)
	want := config.NewConfig()
	assert.Equal(t, want.Extensions, parsed.Extensions)
	assert.Equal(t, want.Language, parsed.Language)
	assert.False(t, parsed.ShouldValidateRegex())
}
