package statfmt

import (
	"io"

	"github.com/goccy/go-json"
)

// ToJSON writes records as an indented JSON array.
func ToJSON(w io.Writer, rs []Record) error {
	if rs == nil {
		rs = []Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rs)
}
