package newline

const (
	// KindNone means the text has no newline.
	KindNone Kind = iota

	// KindLF means the text uses only LF.
	KindLF

	// KindCRLF means the text uses only CRLF.
	KindCRLF

	// KindCR means the text uses only CR.
	KindCR

	// KindMixed means the text uses two or more patterns.
	KindMixed
)

// Kind is the newline patterns that a text uses.
type Kind int8

func (k Kind) String() string {
	switch k {
	case KindLF:
		return "lf"
	case KindCRLF:
		return "crlf"
	case KindCR:
		return "cr"
	case KindMixed:
		return "mixed"
	default:
		return "none"
	}
}

// MarshalText is marshal Kind as text.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Stats is the number of newlines in a text for each pattern.
//
// CRLF is counted as one CRLF, not as a CR and a LF.
type Stats struct {
	LF   int `json:"lf"`
	CR   int `json:"cr"`
	CRLF int `json:"crlf"`
}

// Count counts newlines in input.
func Count(input string) Stats {
	return CountBytes(bytesView(input))
}

// CountBytes is the same as Count but for []byte.
func CountBytes(input []byte) Stats {
	var st Stats

	s := newScanner(input)
	for at := s.next(0); at >= 0; {
		p, width := patternAt(input, at)
		switch p {
		case LF:
			st.LF++
		case CR:
			st.CR++
		case CRLF:
			st.CRLF++
		}
		at = s.next(at + width)
	}

	return st
}

// Total returns the number of newlines.
func (s Stats) Total() int {
	return s.LF + s.CR + s.CRLF
}

// Segments returns the number of lines that split the text by newlines.
// A text without newline has one segment, and a text ends with a newline has an empty segment at the end.
func (s Stats) Segments() int {
	return s.Total() + 1
}

// Kind returns which patterns are used.
func (s Stats) Kind() Kind {
	used := 0
	kind := KindNone
	if s.LF > 0 {
		used++
		kind = KindLF
	}
	if s.CRLF > 0 {
		used++
		kind = KindCRLF
	}
	if s.CR > 0 {
		used++
		kind = KindCR
	}
	if used > 1 {
		return KindMixed
	}
	return kind
}

// Conforms reports whether all newlines already use target.
// Convert returns a borrowed Result if and only if this reports true.
func (s Stats) Conforms(target Style) bool {
	if target == DOS {
		return s.LF == 0 && s.CR == 0
	}
	return s.CR == 0 && s.CRLF == 0
}
