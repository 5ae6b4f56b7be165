package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/macrat/newline/internal/nlerr"
	"github.com/macrat/newline/internal/textdecode"
	"github.com/macrat/newline/lib-newline"
	"github.com/natefinch/atomic"
)

// load reads a input file, or stdin if path is "-".
// The result is always a valid UTF-8 text.
func (cmd *Command) load(path string) ([]byte, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(cmd.InStream)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, nlerr.New(nlerr.ErrRead, path, err)
	}

	if cmd.DecodeInput {
		raw, err = textdecode.Decode(raw)
		if err != nil {
			return nil, nlerr.New(nlerr.ErrInvalidEncoding, path, err)
		}
		return raw, nil
	}

	if err := textdecode.Validate(raw); err != nil {
		return nil, nlerr.Newf(nlerr.ErrInvalidEncoding, path, "%s (please use -e option to decode it)", err)
	}
	if textdecode.HasBOM(raw) && !cmd.StatMode && !cmd.CheckMode {
		fmt.Fprintf(cmd.ErrStream, "warning: %s: the BOM is kept as is. please use -e option to remove it.\n", nlerr.DisplayName(path))
	}

	return raw, nil
}

func (cmd *Command) RunConvert() int {
	toFile := cmd.OutputPath != "" && cmd.OutputPath != "-"

	var buf bytes.Buffer
	output := cmd.OutStream
	if toFile {
		output = &buf
	}

	exitCode := 0
	for _, path := range cmd.Inputs {
		text, err := cmd.load(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
			exitCode = 1
			continue
		}

		text, _ = newline.ConvertBytes(text, cmd.Target)

		if _, err := output.Write(text); err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: failed to write output: %s\n", err)
			return 1
		}
	}

	// -o may point to one of the inputs, so the output file is written after every input is read.
	if toFile && exitCode == 0 {
		if err := writeFile(cmd.OutputPath, buf.Bytes()); err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
			return 1
		}
	}

	return exitCode
}

func (cmd *Command) RunInPlace() int {
	exitCode := 0

	for _, path := range cmd.Inputs {
		text, err := cmd.load(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
			exitCode = 1
			continue
		}

		converted, changed := newline.ConvertBytes(text, cmd.Target)
		if !changed && !cmd.DecodeInput {
			continue
		}

		if err := writeFile(path, converted); err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
			exitCode = 1
		}
	}

	return exitCode
}

// writeFile replaces the content of path with data atomically.
// The file mode of an existing file is kept, and a new file is made with the default mode.
func writeFile(path string, data []byte) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return nlerr.New(nlerr.ErrWrite, path, err)
		}
		if err := f.Close(); err != nil {
			return nlerr.New(nlerr.ErrWrite, path, err)
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return nlerr.New(nlerr.ErrWrite, path, err)
	}

	return nil
}
