package statfmt

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ToCSV writes records as CSV with a header line.
func ToCSV(w io.Writer, rs []Record) error {
	c := csv.NewWriter(w)

	err := c.Write([]string{"path", "size", "kind", "segments", "lf", "crlf", "cr"})
	if err != nil {
		return err
	}

	for _, r := range rs {
		err := c.Write([]string{
			r.Path,
			strconv.Itoa(r.Size),
			r.Kind.String(),
			strconv.Itoa(r.Segments),
			strconv.Itoa(r.LF),
			strconv.Itoa(r.CRLF),
			strconv.Itoa(r.CR),
		})
		if err != nil {
			return err
		}
	}

	c.Flush()

	return c.Error()
}
