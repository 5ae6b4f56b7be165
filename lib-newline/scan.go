package newline

import (
	"bytes"
	"unsafe"
)

// indexByte is the single byte scanner that every search in this package uses.
// It returns the offset of the first c in b, or -1.
var indexByte = bytes.IndexByte

// scanner finds CR and LF in buf.
//
// It keeps the next position of both bytes, so each byte of buf is searched at most once for each of CR and LF.
type scanner struct {
	buf []byte
	cr  int
	lf  int
}

func newScanner(buf []byte) scanner {
	return scanner{buf: buf, cr: -1, lf: -1}
}

// next returns the offset of the first CR or LF at or after from.
// It returns -1 if there is no more newline byte.
// from must not decrease between calls.
func (s *scanner) next(from int) int {
	if s.cr < from {
		s.cr = s.find(from, '\r')
	}
	if s.lf < from {
		s.lf = s.find(from, '\n')
	}
	if at := min(s.cr, s.lf); at < len(s.buf) {
		return at
	}
	return -1
}

// find returns the offset of the first c at or after from, or len(s.buf) if not found.
func (s *scanner) find(from int, c byte) int {
	if from < len(s.buf) {
		if i := indexByte(s.buf[from:], c); i >= 0 {
			return from + i
		}
	}
	return len(s.buf)
}

// patternAt returns the newline pattern that starts at b[at], and its length in bytes.
// b[at] must be CR or LF.
// This one byte lookahead is the only place that decides between CRLF and lone CR.
func patternAt(b []byte, at int) (Pattern, int) {
	if b[at] == '\n' {
		return LF, 1
	}
	if at+1 < len(b) && b[at+1] == '\n' {
		return CRLF, 2
	}
	return CR, 1
}

// bytesView returns the bytes of s without copy.
// The result must not be modified.
func bytesView(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// stringView returns b as a string without copy.
// b must not be modified after call this.
func stringView(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
