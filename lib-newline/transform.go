package newline

import (
	"io"

	"golang.org/x/text/transform"
)

type transformer struct {
	newline string
}

// NewTransformer creates a transform.Transformer that converts newlines to target.
//
// The output is the same as Convert, regardless how the input was split into chunks.
// A CR at the end of a chunk is held until the next byte arrives, to recognize CRLF that is split in two chunks.
func NewTransformer(target Style) transform.Transformer {
	return transformer{newline: target.Newline()}
}

// NewReader creates a io.Reader that reads r with converting newlines to target.
func NewReader(r io.Reader, target Style) io.Reader {
	return transform.NewReader(r, NewTransformer(target))
}

// NewWriter creates a io.WriteCloser that writes to w with converting newlines to target.
//
// Close has to be called to flush a CR at the end of the text.
// It does not close w.
func NewWriter(w io.Writer, target Style) io.WriteCloser {
	return transform.NewWriter(w, NewTransformer(target))
}

func (t transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	s := newScanner(src)

	for nSrc < len(src) {
		at := s.next(nSrc)
		if at < 0 {
			at = len(src)
		}

		if at > nSrc {
			n := copy(dst[nDst:], src[nSrc:at])
			nDst += n
			nSrc += n
			if nSrc < at {
				return nDst, nSrc, transform.ErrShortDst
			}
			continue
		}

		if src[at] == '\r' && at+1 == len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		_, width := patternAt(src, at)

		if len(dst)-nDst < len(t.newline) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], t.newline)
		nSrc += width
	}

	return nDst, nSrc, nil
}

func (t transformer) Reset() {}
