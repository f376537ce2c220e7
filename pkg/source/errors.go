package source

import (
	"fmt"
	"slices"
)

// Error is a lexical or structural problem found in a document.
type Error struct {
	Message  string   `json:"message"`
	Location Location `json:"location"`
	Length   int      `json:"length"`
}

// NewError creates an Error. A negative length is clamped to 1.
func NewError(message string, location Location, length int) Error {
	if length < 0 {
		length = 1
	}
	return Error{Message: message, Location: location, Length: length}
}

// Error implements the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("%s %s", e.Location, e.Message)
}

// Equal reports whether two errors describe the same problem at the same place.
func (e Error) Equal(other Error) bool {
	return e == other
}

// ErrorSink accumulates errors during a single tokenize or parse pass. It is
// append-only and must not be written from more than one goroutine.
type ErrorSink struct {
	errors []Error
}

// NewErrorSink creates an empty sink.
func NewErrorSink() *ErrorSink {
	return &ErrorSink{}
}

// OnError records err.
func (s *ErrorSink) OnError(err Error) {
	s.errors = append(s.errors, err)
}

// OnErrorAt records an error built from its parts.
func (s *ErrorSink) OnErrorAt(location Location, message string, length int) {
	s.OnError(NewError(message, location, length))
}

// Errors returns a copy of the recorded errors in report order.
func (s *ErrorSink) Errors() []Error {
	return slices.Clone(s.errors)
}

// Len returns the number of recorded errors.
func (s *ErrorSink) Len() int {
	return len(s.errors)
}
