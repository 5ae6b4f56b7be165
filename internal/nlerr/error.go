package nlerr

import (
	"errors"
	"fmt"
)

// The kinds of error. Check them via errors.Is.
var (
	// ErrInvalidArgument is a error for if the command line arguments was wrong.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidEncoding is a error for if the input was not a valid UTF-8 text.
	ErrInvalidEncoding = errors.New("invalid UTF-8 text")

	// ErrRead is a error for if failed to read input.
	ErrRead = errors.New("failed to read")

	// ErrWrite is a error for if failed to write output.
	ErrWrite = errors.New("failed to write")
)

// Error is a error about a file.
//
// errors.Is reports true for both of Kind and Err.
type Error struct {
	Kind error
	Path string
	Err  error
}

// New creates a new Error.
// The path "" and "-" mean stdin or stdout.
func New(kind error, path string, err error) Error {
	return Error{
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

// Newf creates a new Error with a formatted message as a cause.
func Newf(kind error, path string, format string, args ...interface{}) Error {
	return New(kind, path, fmt.Errorf(format, args...))
}

// DisplayName returns the path to show to user.
func DisplayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

// Error implements error interface.
func (e Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", DisplayName(e.Path), e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", DisplayName(e.Path), e.Kind, e.Err)
}

// Unwrap implement for errors.Is and errors.As.
func (e Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
