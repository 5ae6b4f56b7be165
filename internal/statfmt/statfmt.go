// Package statfmt writes newline statistics of files in several formats.
package statfmt

import (
	"fmt"
	"io"
	"sort"

	"github.com/macrat/newline/lib-newline"
)

// Record is the newline statistics of a file.
type Record struct {
	Path     string       `json:"path"`
	Size     int          `json:"size"`
	Kind     newline.Kind `json:"kind"`
	Segments int          `json:"segments"`

	newline.Stats
}

// NewRecord makes a Record of text.
func NewRecord(path string, text []byte) Record {
	st := newline.CountBytes(text)

	return Record{
		Path:     path,
		Size:     len(text),
		Kind:     st.Kind(),
		Segments: st.Segments(),
		Stats:    st,
	}
}

// Writer writes records in a format.
type Writer func(w io.Writer, rs []Record) error

var writers = map[string]Writer{
	"text": ToText,
	"json": ToJSON,
	"csv":  ToCSV,
	"ltsv": ToLTSV,
	"xlsx": ToXlsx,
}

// IsBinary reports whether the format writes binary data that should not go to a terminal.
func IsBinary(format string) bool {
	return format == "xlsx"
}

// Lookup returns the Writer for the format name.
func Lookup(format string) (Writer, error) {
	if w, ok := writers[format]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("unsupported format: %q", format)
}

// Formats returns names of supported formats.
func Formats() []string {
	fs := make([]string, 0, len(writers))
	for f := range writers {
		fs = append(fs, f)
	}
	sort.Strings(fs)
	return fs
}
