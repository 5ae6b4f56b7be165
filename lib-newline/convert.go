package newline

// Result is a text converted by Convert.
//
// Result may share memory with the input text if the input did not need any change.
// Borrowed reports it.
type Result struct {
	text  string
	owned bool
}

// String returns the converted text.
func (r Result) String() string {
	return r.text
}

// Borrowed reports whether the Result is the input text itself, without any allocation.
func (r Result) Borrowed() bool {
	return !r.owned
}

// Owned reports whether the Result was newly allocated.
func (r Result) Owned() bool {
	return r.owned
}

// Text is a text that can convert its newlines.
type Text string

// ToUnixNewlines converts any mix of CRLF, CR and LF to LF.
//
// It returns the Text itself if there is no CR.
func (t Text) ToUnixNewlines() Result {
	return Convert(string(t), Unix)
}

// ToDOSNewlines converts any mix of CRLF, CR and LF to CRLF.
//
// It returns the Text itself if all newlines are already CRLF.
func (t Text) ToDOSNewlines() Result {
	return Convert(string(t), DOS)
}

// Convert replaces every newline in input with the newline of target.
//
// Each of CRLF, lone CR and lone LF becomes exactly one newline of target.
// A newline is never appended or removed, even at the end of input.
//
// Input must be a valid UTF-8 text, but Convert does not validate it.
// Only the bytes 0x0D and 0x0A are interpreted, and they never appear inside multi-byte sequences.
//
// Convert does not allocate if input already uses target only.
func Convert(input string, target Style) Result {
	out, changed := ConvertBytes(bytesView(input), target)
	if !changed {
		return Result{text: input}
	}
	return Result{text: stringView(out), owned: true}
}

// ToUnix is a shorthand of Convert(input, Unix).
func ToUnix(input string) string {
	return Convert(input, Unix).String()
}

// ToDOS is a shorthand of Convert(input, DOS).
func ToDOS(input string) string {
	return Convert(input, DOS).String()
}

// ConvertBytes is the same as Convert but for []byte.
//
// The input is never modified.
// If changed is false, output is input itself.
// Otherwise output is a newly allocated slice.
//
// A target other than Unix and DOS is treated as Unix.
func ConvertBytes(input []byte, target Style) (output []byte, changed bool) {
	if target == DOS {
		return toDOS(input)
	}
	return toUnix(input)
}

// toUnix rewrites CR and CRLF into LF.
// LF is already Unix style, so it only looks for CR.
func toUnix(src []byte) ([]byte, bool) {
	cr := indexByte(src, '\r')
	if cr < 0 {
		return src, false
	}

	out := make([]byte, 0, len(src))
	pos := 0

	for {
		out = append(out, src[pos:cr]...)
		out = append(out, '\n')

		_, width := patternAt(src, cr)
		pos = cr + width

		i := indexByte(src[pos:], '\r')
		if i < 0 {
			break
		}
		cr = pos + i
	}

	return append(out, src[pos:]...), true
}

// toDOS rewrites CR and LF into CRLF.
//
// The prefix that is already made of CRLF pairs is copied as it is.
func toDOS(src []byte) ([]byte, bool) {
	s := newScanner(src)

	at := s.next(0)
	for at >= 0 {
		p, width := patternAt(src, at)
		if p != CRLF {
			break
		}
		at = s.next(at + width)
	}
	if at < 0 {
		return src, false
	}

	// Lone CR and LF grow by one byte each.
	out := make([]byte, 0, len(src)+len(src)/8+2)
	pos := 0

	for at >= 0 {
		out = append(out, src[pos:at]...)
		out = append(out, '\r', '\n')

		_, width := patternAt(src, at)
		pos = at + width

		at = s.next(pos)
	}

	return append(out, src[pos:]...), true
}
