package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// ErrNotRegexLiteral is returned by ValidateRegex for text that is not
// shaped like /body/flags.
var ErrNotRegexLiteral = errors.New("not a regular expression literal")

func isRegexFlag(ch rune) bool {
	switch ch {
	case 'd', 'g', 'i', 'm', 's', 'u', 'v', 'y':
		return true
	}
	return false
}

// ValidateRegex compiles a /body/flags literal with ECMAScript semantics.
// Flags that do not change the syntax of the body are accepted and ignored.
func ValidateRegex(literal string) error {
	end := strings.LastIndexByte(literal, '/')
	if !strings.HasPrefix(literal, "/") || end < 1 {
		return fmt.Errorf("%q: %w", literal, ErrNotRegexLiteral)
	}

	body, flags := literal[1:end], literal[end+1:]
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	for _, flag := range flags {
		switch flag {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 'd', 'g', 's', 'u', 'v', 'y':
		default:
			return fmt.Errorf("invalid regular expression flag %q", flag)
		}
	}

	if _, err := regexp2.Compile(body, opts); err != nil {
		return fmt.Errorf("invalid regular expression: %w", err)
	}
	return nil
}
