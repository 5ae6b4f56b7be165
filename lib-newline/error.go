package newline

import (
	"errors"
)

var (
	// ErrUnknownStyle is a error for if the name of newline style was not supported.
	ErrUnknownStyle = errors.New("unknown newline style")
)
