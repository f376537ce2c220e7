package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value. A minimal template
	// leaves them commented out.
	Full bool
}

// fieldDocs holds the comment written above each top-level key.
//
//nolint:gochecknoglobals // Read-only lookup table.
var fieldDocs = map[string]string{
	"language":       "Tokenizer for every file: auto, html or javascript",
	"extensions":     "File extension to language mapping used when language is auto",
	"validate_regex": "Check JavaScript regular expression literals",
	"lsp":            "Language server settings (trace: off, messages or verbose)",
}

// DefaultTemplateHeader returns the header for generated configs.
func DefaultTemplateHeader() string {
	return `# razorlex configuration
# See: https://github.com/yaklabco/razorlex`
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if !opts.Full {
		return []byte(DefaultTemplateHeader() + `

# Tokenizer for every file: auto, html or javascript
language: auto

# Check JavaScript regular expression literals
# validate_regex: false

# File extension to language mapping used when language is auto
# extensions:
#   .cshtml: html
#   .js: javascript

# File patterns to ignore (glob patterns)
# ignore:
#   - "node_modules/**"
#   - "dist/**"
`), nil
	}

	var doc yaml.Node
	if err := doc.Encode(NewConfig()); err != nil {
		return nil, fmt.Errorf("encode defaults: %w", err)
	}

	// doc is a mapping of alternating key and value nodes.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		if comment, ok := fieldDocs[key.Value]; ok {
			key.HeadComment = comment
		}
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader() + "\n\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}
