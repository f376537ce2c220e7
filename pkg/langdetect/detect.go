// Package langdetect picks the tokenizer language for a file.
// It uses go-enry for extension and shebang lookups and falls back to
// content patterns for extensionless input such as stdin.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Detected language names. They match the segment engine names.
const (
	HTML       = "html"
	JavaScript = "javascript"
)

// enryNames maps linguist language names onto tokenizer languages.
//
//nolint:gochecknoglobals // Read-only lookup table.
var enryNames = map[string]string{
	"HTML":       HTML,
	"HTML+Razor": HTML,
	"JavaScript": JavaScript,
}

// Detect returns the language for a file with the given name and content,
// or "" when neither applies.
func Detect(path string, content []byte) string {
	// Strategy 1: the extension, when it names exactly one supported language.
	if path != "" {
		if lang := fromCandidates(enry.GetLanguagesByExtension(path, content, nil)); lang != "" {
			return lang
		}
	}

	// Strategy 2: a shebang such as #!/usr/bin/env node.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		if mapped, ok := enryNames[lang]; ok {
			return mapped
		}
	}

	// Strategy 3: content patterns.
	return detectByPattern(content)
}

// fromCandidates maps the candidates onto one tokenizer language. Candidates
// that map to different languages cancel out.
func fromCandidates(candidates []string) string {
	found := ""
	for _, candidate := range candidates {
		lang, ok := enryNames[candidate]
		if !ok {
			continue
		}
		if found != "" && found != lang {
			return ""
		}
		found = lang
	}
	return found
}

func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return ""
	}
	if lang := detectHTML(trimmed); lang != "" {
		return lang
	}
	return detectJavaScript(string(trimmed))
}

// detectHTML checks for markup and Razor patterns.
func detectHTML(trimmed []byte) string {
	lower := bytes.ToLower(trimmed)
	for _, marker := range [][]byte{
		[]byte("<!doctype html"), []byte("<html"), []byte("<head>"), []byte("<body"),
		[]byte("@model "), []byte("@using "), []byte("@page"),
	} {
		if bytes.Contains(lower, marker) {
			return HTML
		}
	}
	if bytes.HasPrefix(trimmed, []byte("<")) && bytes.Contains(trimmed, []byte("</")) {
		return HTML
	}
	return ""
}

// detectJavaScript checks for script patterns.
func detectJavaScript(contentStr string) string {
	for _, marker := range []string{"=>", "const ", "let ", "var ", "function ", "console.log", "require(", "export "} {
		if strings.Contains(contentStr, marker) {
			return JavaScript
		}
	}
	return ""
}
