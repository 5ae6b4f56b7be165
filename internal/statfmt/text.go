package statfmt

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// ToText writes records in a human readable format.
func ToText(w io.Writer, rs []Record) error {
	for _, r := range rs {
		_, err := fmt.Fprintf(
			w,
			"%s\t%s\t%s\tlf=%d crlf=%d cr=%d\n",
			r.Path,
			humanize.Bytes(uint64(r.Size)),
			r.Kind,
			r.LF,
			r.CRLF,
			r.CR,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
