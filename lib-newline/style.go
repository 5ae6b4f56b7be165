// Package newline converts text between newline conventions.
//
// Three newline patterns are recognized in the input: LF ("\n"), CR ("\r") and CRLF ("\r\n").
// The output always uses a single convention, Unix (LF) or DOS (CRLF).
// Every other byte is kept as is, so multi-byte UTF-8 sequences, U+2028 LINE SEPARATOR and U+2029 PARAGRAPH SEPARATOR are never touched.
package newline

import (
	"fmt"
	"strings"
)

const (
	// Unix is the newline convention that uses a bare LF.
	Unix Style = iota

	// DOS is the newline convention that uses CR followed by LF.
	DOS
)

// Style is the target newline convention of conversion.
//
// The zero value is Unix.
// There is no CR-only style, because CR-only text is not a conversion target.
type Style int8

// ParseStyle parses name of newline style.
//
// It accepts "unix", "lf", "dos", "windows" and "crlf" in any case.
func ParseStyle(raw string) (Style, error) {
	switch strings.ToLower(raw) {
	case "unix", "lf":
		return Unix, nil
	case "dos", "windows", "crlf":
		return DOS, nil
	default:
		return Unix, fmt.Errorf("%w: %q", ErrUnknownStyle, raw)
	}
}

// String returns name of the style.
func (s Style) String() string {
	if s == DOS {
		return "dos"
	}
	return "unix"
}

// Newline returns the bytes that the style uses as a newline.
func (s Style) Newline() string {
	if s == DOS {
		return "\r\n"
	}
	return "\n"
}

// MarshalText is marshal Style as text.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText is unmarshal text as Style.
func (s *Style) UnmarshalText(text []byte) error {
	x, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = x
	return nil
}

const (
	// LF is a bare line feed.
	LF Pattern = iota + 1

	// CR is a carriage return that is not followed by a line feed.
	CR

	// CRLF is a carriage return followed by a line feed. It is always treated as a single newline.
	CRLF
)

// Pattern is a newline pattern that can be found in input text.
type Pattern int8

func (p Pattern) String() string {
	switch p {
	case LF:
		return "LF"
	case CR:
		return "CR"
	case CRLF:
		return "CRLF"
	default:
		return "UNKNOWN"
	}
}
