package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ial-lang/interp/internal/cli"
	"github.com/ial-lang/interp/internal/log"
	"github.com/ial-lang/interp/internal/vm"
)

// Interpret creates the "interpret" sub-command: the interpreter's only
// real job, loading an XML program and running it.
func Interpret() cli.Command {
	return &interpreter{}
}

type interpreter struct {
	source string
	input  string
}

func (interpreter) Description() string {
	return "load and run an IAL (IPPcode23) XML program"
}

func (interpreter) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `interpret --source FILE --input FILE

Runs an IAL program described by an XML document. If --source is omitted,
the XML is read from standard input; if --input is omitted, the input
consumed by READ is read from standard input. At least one of the two
options must be given.`)

	return err
}

func (it *interpreter) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("interpret", flag.ExitOnError)
	fs.StringVar(&it.source, "source", "", "path to the XML source document")
	fs.StringVar(&it.input, "input", "", "path to the input consumed by READ")

	return fs
}

// Run loads and executes the program, returning the process exit status.
func (it *interpreter) Run(ctx context.Context, args []string, out io.Writer, logger *log.Logger) int {
	if it.source == "" && it.input == "" {
		reportDiagnostic(vm.Fault(vm.ErrParameter, "at least one of --source or --input is required"))
		return vm.Code(vm.ErrParameter)
	}

	source, closeSource, err := openOrStdin(it.source)
	if err != nil {
		reportDiagnostic(err)
		return vm.Code(err)
	}
	defer closeSource()

	input, closeInput, err := openOrStdin(it.input)
	if err != nil {
		reportDiagnostic(err)
		return vm.Code(err)
	}
	defer closeInput()

	loader := vm.NewLoader(logger)

	program, err := loader.Load(source)
	if err != nil {
		reportDiagnostic(err)
		return vm.Code(err)
	}

	machine := vm.New(program, input, out, logger)

	code, err := machine.Run(ctx)
	if err != nil {
		reportDiagnostic(err)
	}

	return code
}

// reportDiagnostic writes err to stderr, in red when stderr is a terminal.
// Colorizing is skipped for redirected/piped stderr so log-scraping tools
// don't have to strip ANSI codes.
func reportDiagnostic(err error) {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m\n", err)
		return
	}

	fmt.Fprintln(os.Stderr, err)
}

// openOrStdin opens path, or returns os.Stdin when path is empty. The
// returned closer is always safe to call.
func openOrStdin(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, func() {}, vm.Fault(vm.ErrInputFile, "%s", err)
	}

	return file, func() { _ = file.Close() }, nil
}
