//go:build windows

package textdecode

import (
	"unicode/utf8"

	"golang.org/x/sys/windows"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var windowsCodePages = map[uint32]encoding.Encoding{
	1200:  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	1201:  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	65001: unicode.UTF8,

	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,

	932:   japanese.ShiftJIS,
	20932: japanese.EUCJP,
	50220: japanese.ISO2022JP,
	50221: japanese.ISO2022JP,
	50222: japanese.ISO2022JP,

	949: korean.EUCKR,
	936: simplifiedchinese.GBK,

	950:   traditionalchinese.Big5,
	54936: simplifiedchinese.GB18030,
}

// localeDecoder in Windows decodes UTF-8 text as is, and other text as the ANSI code page.
var localeDecoder decoder = codePageDecoder(windows.GetACP())

func codePageDecoder(codepage uint32) decoder {
	enc, ok := windowsCodePages[codepage]
	if !ok {
		enc = unicode.UTF8
	}
	return utf8Override{Fallback: enc.NewDecoder()}
}

// utf8Override is a decoder to try to decode as UTF8.
// If the input is invalid as a UTF8 text, it uses Fallback.
type utf8Override struct {
	Fallback decoder
}

func (u utf8Override) Bytes(b []byte) ([]byte, error) {
	if utf8.Valid(b) {
		return b, nil
	}
	return u.Fallback.Bytes(b)
}
