// Package textdecode decodes text files in various encodings into UTF-8.
//
// The newline conversion assumes that the input is a valid UTF-8 text.
// This package makes sure of it before the conversion.
package textdecode

import (
	"fmt"
	"unicode/utf8"
)

// decoder is an interface for text decoding.
// *encoding.Decoder implements it.
type decoder interface {
	Bytes(b []byte) ([]byte, error)
}

// Decode decodes b into UTF-8 text.
//
// The BOM of UTF-8, UTF-16LE and UTF-16BE selects the encoding, and it is removed.
// Text without BOM is decoded as UTF-8 in Unix, or as UTF-8 or the ANSI code page in Windows.
// Invalid bytes are replaced with U+FFFD.
func Decode(b []byte) ([]byte, error) {
	b, dec := bomOverride(b, localeDecoder)
	return dec.Bytes(b)
}

// Validate checks b is a valid UTF-8 text.
// The error reports offset of the first invalid byte.
func Validate(b []byte) error {
	if utf8.Valid(b) {
		return nil
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return fmt.Errorf("invalid byte 0x%02X at offset %d", b[i], i)
		}
		i += size
	}

	return nil
}
