package statfmt

import (
	"fmt"
	"io"
	"strings"
)

var ltsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// ToLTSV writes records in LTSV, one record per line.
func ToLTSV(w io.Writer, rs []Record) error {
	for _, r := range rs {
		_, err := fmt.Fprintf(
			w,
			"path:%s\tsize:%d\tkind:%s\tsegments:%d\tlf:%d\tcrlf:%d\tcr:%d\n",
			ltsvEscaper.Replace(r.Path),
			r.Size,
			r.Kind,
			r.Segments,
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
