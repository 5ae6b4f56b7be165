package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/macrat/newline/internal/nlerr"
	"github.com/macrat/newline/internal/statfmt"
)

func (cmd *Command) stat(path string) (statfmt.Record, error) {
	text, err := cmd.load(path)
	if err != nil {
		return statfmt.Record{}, err
	}
	return statfmt.NewRecord(nlerr.DisplayName(path), text), nil
}

func (cmd *Command) RunStat() int {
	write, err := statfmt.Lookup(cmd.Format)
	if err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
		return 2
	}

	toFile := cmd.OutputPath != "" && cmd.OutputPath != "-"
	if !toFile && statfmt.IsBinary(cmd.Format) && isTerminal(cmd.OutStream) {
		fmt.Fprintf(cmd.ErrStream, "error: can not write %s format to stdout. please redirect or use -o option.\n", cmd.Format)
		return 2
	}

	exitCode := 0
	rs := make([]statfmt.Record, 0, len(cmd.Inputs))

	for _, path := range cmd.Inputs {
		r, err := cmd.stat(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
			exitCode = 1
			continue
		}
		rs = append(rs, r)
	}

	var buf bytes.Buffer
	var output io.Writer = cmd.OutStream
	if toFile {
		output = &buf
	}

	if err := write(output, rs); err != nil {
		fmt.Fprintf(cmd.ErrStream, "error: failed to write stats: %s\n", err)
		return 1
	}

	if toFile {
		if err := writeFile(cmd.OutputPath, buf.Bytes()); err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
			return 1
		}
	}

	return exitCode
}

func (cmd *Command) RunCheck() int {
	exitCode := 0

	for _, path := range cmd.Inputs {
		r, err := cmd.stat(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrStream, "error: %s\n", err)
			exitCode = 1
			continue
		}

		if !r.Stats.Conforms(cmd.Target) {
			fmt.Fprintf(cmd.OutStream, "%s: uses %s newline, not %s\n", r.Path, r.Kind, cmd.Target)
			exitCode = 1
		}
	}

	return exitCode
}
