package cli

import (
	"errors"

	"github.com/yaklabco/razorlex/pkg/runner"
)

// Exit codes for razorlex.
const (
	// ExitSuccess indicates successful execution with no lexical errors.
	ExitSuccess = 0

	// ExitLexicalErrors indicates the input was read but has lexical errors.
	ExitLexicalErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrLexicalErrors is returned when a command found lexical errors. It only
// selects the exit code and is not logged.
var ErrLexicalErrors = errors.New("lexical errors found")

// exitError attaches an exit code to a command error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCode maps an error returned by the root command onto an exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrLexicalErrors) {
		return ExitLexicalErrors
	}
	var coded *exitError
	if errors.As(err, &coded) {
		return coded.code
	}
	return ExitInternalError
}

// ExitCodeFromResult determines the exit code of a check run. Lexical
// errors take precedence over unreadable files.
func ExitCodeFromResult(result *runner.Result) int {
	switch {
	case result.HasErrors():
		return ExitLexicalErrors
	case result.HasFailures():
		return ExitIOError
	default:
		return ExitSuccess
	}
}
