// Package config defines core configuration types for razorlex.
// These types are pure data structures; loading and merging live in
// internal/configloader.
package config

import (
	"path/filepath"
	"slices"
	"strings"
)

// Language names a tokenizer.
type Language string

const (
	// LanguageAuto picks the tokenizer from the file extension and content.
	LanguageAuto       Language = "auto"
	LanguageHTML       Language = "html"
	LanguageJavaScript Language = "javascript"
)

// OutputFormat specifies the output format for check results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// ColorMode controls terminal colors.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// LSPConfig holds language server settings.
type LSPConfig struct {
	// Trace is the initial protocol trace level: off, messages or verbose.
	Trace string `yaml:"trace,omitempty" validate:"omitempty,oneof=off messages verbose"`

	// LogFile receives the server log when set. The server never logs to
	// stdout, which carries the protocol.
	LogFile string `yaml:"log_file,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	// Language forces a tokenizer for every file; "auto" uses Extensions
	// and content detection.
	Language Language `yaml:"language,omitempty" validate:"omitempty,oneof=auto html javascript"`

	// Extensions maps file extensions (with the leading dot) to languages.
	Extensions map[string]Language `yaml:"extensions,omitempty" validate:"dive,keys,startswith=.,endkeys,oneof=html javascript"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// ValidateRegex checks JavaScript regular expression literals.
	ValidateRegex *bool `yaml:"validate_regex,omitempty"`

	// LSP configures the language server.
	LSP LSPConfig `yaml:"lsp,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" validate:"omitempty,oneof=text table json summary"`

	// Color is the color mode.
	Color ColorMode `yaml:"-" validate:"omitempty,oneof=auto always never"`

	// Jobs specifies the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int `yaml:"-" validate:"gte=0"`
}

// DefaultExtensions returns the built-in extension table.
func DefaultExtensions() map[string]Language {
	return map[string]Language{
		".html":   LanguageHTML,
		".htm":    LanguageHTML,
		".cshtml": LanguageHTML,
		".razor":  LanguageHTML,
		".js":     LanguageJavaScript,
		".mjs":    LanguageJavaScript,
		".cjs":    LanguageJavaScript,
	}
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	validate := false
	return &Config{
		Language:      LanguageAuto,
		Extensions:    DefaultExtensions(),
		ValidateRegex: &validate,
		LSP:           LSPConfig{Trace: "off"},
		Format:        FormatText,
		Color:         ColorAuto,
	}
}

// ShouldValidateRegex reports whether regex literals are checked.
func (c *Config) ShouldValidateRegex() bool {
	return c != nil && c.ValidateRegex != nil && *c.ValidateRegex
}

// LanguageFor returns the language configured for path. It reports false when
// the language is "auto" and the extension is unknown.
func (c *Config) LanguageFor(path string) (Language, bool) {
	if c.Language != "" && c.Language != LanguageAuto {
		return c.Language, true
	}
	lang, ok := c.Extensions[strings.ToLower(filepath.Ext(path))]
	return lang, ok
}

// ExtensionList returns the configured extensions in sorted order.
func (c *Config) ExtensionList() []string {
	exts := make([]string, 0, len(c.Extensions))
	for ext := range c.Extensions {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}
