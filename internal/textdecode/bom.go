package textdecode

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// HasBOM reports whether b starts with a BOM of UTF-8, UTF-16BE or UTF-16LE.
func HasBOM(b []byte) bool {
	return bytes.HasPrefix(b, bomUTF8) || bytes.HasPrefix(b, bomUTF16BE) || bytes.HasPrefix(b, bomUTF16LE)
}

// bomOverride checks the text has the BOM, and returns decoder for the encoding.
// If the text has no BOM, this functions returns defaultDecoder.
// The []byte in returns is the text that dropped BOM.
func bomOverride(b []byte, defaultDecoder decoder) ([]byte, decoder) {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return b[len(bomUTF8):], unicode.UTF8.NewDecoder()
	case bytes.HasPrefix(b, bomUTF16BE):
		return b[len(bomUTF16BE):], unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	case bytes.HasPrefix(b, bomUTF16LE):
		return b[len(bomUTF16LE):], unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		return b, defaultDecoder
	}
}
