package main

import (
	"fmt"
	"io"
	"os"

	"github.com/macrat/newline/internal/meta"
	"github.com/macrat/newline/internal/nlerr"
	"github.com/macrat/newline/internal/statfmt"
	"github.com/macrat/newline/lib-newline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

type Command struct {
	InStream  io.Reader
	OutStream io.Writer
	ErrStream io.Writer

	Target      newline.Style
	OutputPath  string
	InPlace     bool
	CheckMode   bool
	StatMode    bool
	Format      string
	DecodeInput bool
	ShowVersion bool
	ShowHelp    bool

	Inputs []string
}

var defaultCommand = &Command{
	InStream:  os.Stdin,
	OutStream: os.Stdout,
	ErrStream: os.Stderr,
}

const Help = `nlconv -- Convert newlines of text files

Usage: nlconv [OPTIONS...] [FILE...]

Read FILEs, or stdin if no FILE or FILE is -, and write them with converted newlines.
CRLF, CR and LF in input are all recognized as a newline.

Options:
  -u, --unix      Convert to LF. (default)
  -d, --dos       Convert to CRLF.

  -o, --output    Output file of converted text or --stat. (default stdout)
  -w, --in-place  Overwrite FILEs instead of write to stdout.

  -c, --check     Report FILEs that do not use the target newline, and exit with 1 if found.
  -s, --stat      Show count of newlines instead of convert.
  -f, --format    Output format of --stat; text, json, csv, ltsv or xlsx. (default text)

  -e, --decode    Decode input that has BOM or is not UTF-8. The output is always UTF-8.

  -v, --version   Show version and exit.
  -h, --help      Show this help message and exit.
`

func (cmd *Command) usageError(args []string, err error) int {
	fmt.Fprintln(cmd.ErrStream, err)
	fmt.Fprintf(cmd.ErrStream, "\nPlease see `%s -h` for more information.\n", args[0])
	return 2
}

// ParseArgs parses command line arguments.
// It returns non-zero exit code if the arguments is invalid.
func (cmd *Command) ParseArgs(args []string) (exitCode int) {
	flags := pflag.NewFlagSet(args[0], pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	unix := flags.BoolP("unix", "u", false, "Convert to LF")
	dos := flags.BoolP("dos", "d", false, "Convert to CRLF")
	flags.StringVarP(&cmd.OutputPath, "output", "o", "", "Output file")
	flags.BoolVarP(&cmd.InPlace, "in-place", "w", false, "Overwrite input files")
	flags.BoolVarP(&cmd.CheckMode, "check", "c", false, "Report files that do not use the target newline")
	flags.BoolVarP(&cmd.StatMode, "stat", "s", false, "Show count of newlines")
	flags.StringVarP(&cmd.Format, "format", "f", "text", "Output format of stat")
	flags.BoolVarP(&cmd.DecodeInput, "decode", "e", false, "Decode input")
	flags.BoolVarP(&cmd.ShowVersion, "version", "v", false, "Show version")
	flags.BoolVarP(&cmd.ShowHelp, "help", "h", false, "Show help message")

	if err := flags.Parse(args[1:]); err != nil {
		return cmd.usageError(args, err)
	}

	if cmd.ShowVersion || cmd.ShowHelp {
		return 0
	}

	cmd.Inputs = flags.Args()
	if len(cmd.Inputs) == 0 {
		cmd.Inputs = []string{"-"}
	}

	errs := &nlerr.Collector{What: nlerr.ErrInvalidArgument}

	if *unix && *dos {
		errs.Addf("-u and -d can not use in the same time.")
	} else if *dos {
		cmd.Target = newline.DOS
	} else {
		cmd.Target = newline.Unix
	}

	modes := 0
	for _, m := range []bool{cmd.InPlace, cmd.CheckMode, cmd.StatMode} {
		if m {
			modes++
		}
	}
	if modes > 1 {
		errs.Addf("-w, -c and -s can not use in the same time.")
	}

	if flags.Changed("format") {
		if !cmd.StatMode {
			errs.Addf("-f can only use with -s.")
		} else if _, err := statfmt.Lookup(cmd.Format); err != nil {
			errs.Add(err)
		}
	}

	if cmd.OutputPath != "" && cmd.OutputPath != "-" {
		if cmd.InPlace {
			errs.Addf("-o can not use with -w.")
		}
		if cmd.CheckMode {
			errs.Addf("-o can not use with -c.")
		}
		if !cmd.StatMode && len(cmd.Inputs) > 1 {
			errs.Addf("-o can not use with multiple input files.")
		}
	}

	if cmd.InPlace {
		for _, in := range cmd.Inputs {
			if in == "-" {
				errs.Addf("-w needs FILEs, but got stdin.")
				break
			}
		}
	}

	if err := errs.Err(); err != nil {
		return cmd.usageError(args, err)
	}

	if flags.NArg() == 0 && isTerminal(cmd.InStream) {
		fmt.Fprint(cmd.ErrStream, Help)
		return 2
	}

	return 0
}

// isTerminal reports whether s is a terminal.
// It is always false for streams that are not *os.File.
func isTerminal(s any) bool {
	f, ok := s.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cmd *Command) Run(args []string) (exitCode int) {
	if code := cmd.ParseArgs(args); code != 0 {
		return code
	}

	if cmd.ShowVersion {
		fmt.Fprintln(cmd.OutStream, meta.VersionString())
		return 0
	}

	if cmd.ShowHelp {
		fmt.Fprint(cmd.OutStream, Help)
		return 0
	}

	switch {
	case cmd.StatMode:
		return cmd.RunStat()
	case cmd.CheckMode:
		return cmd.RunCheck()
	case cmd.InPlace:
		return cmd.RunInPlace()
	default:
		return cmd.RunConvert()
	}
}

func main() {
	os.Exit(defaultCommand.Run(os.Args))
}
