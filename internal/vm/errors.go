package vm

// errors.go maps the closed taxonomy of interpreter faults onto Go
// sentinel errors and a small wrapper that remembers the associated exit
// code.

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per row of the exit-code table. Use errors.Is to test
// for a particular family; use Diagnostic.Code to recover the exit status.
var (
	ErrParameter       = errors.New("bad command-line arguments")
	ErrInputFile       = errors.New("cannot open input")
	ErrOutputFile      = errors.New("write failed")
	ErrXMLFormat       = errors.New("malformed xml")
	ErrXMLStructure    = errors.New("invalid program structure")
	ErrSemantic        = errors.New("semantic error")
	ErrBadType         = errors.New("operand type error")
	ErrVariableMissing = errors.New("variable missing")
	ErrFrameMissing    = errors.New("frame missing")
	ErrValueMissing    = errors.New("value missing")
	ErrOperandValue    = errors.New("operand value error")
	ErrString          = errors.New("string error")
	ErrInternal        = errors.New("internal error")
)

// exitCodes maps each sentinel to its normative exit status.
var exitCodes = map[error]int{
	ErrParameter:       10,
	ErrInputFile:       11,
	ErrOutputFile:      12,
	ErrXMLFormat:       31,
	ErrXMLStructure:    32,
	ErrSemantic:        52,
	ErrBadType:         53,
	ErrVariableMissing: 54,
	ErrFrameMissing:    55,
	ErrValueMissing:    56,
	ErrOperandValue:    57,
	ErrString:          58,
	ErrInternal:        99,
}

// Diagnostic wraps a sentinel error with detail and carries the exit code
// the interpreter must terminate with. Every fault this package raises is a
// *Diagnostic; VM.Run also returns the context's own error when its context
// is cancelled.
type Diagnostic struct {
	kind   error
	detail string
}

// Fault constructs a Diagnostic for the given sentinel error kind. kind must
// be one of the Err* sentinels declared above; any other value is reported
// as an internal error.
func Fault(kind error, format string, args ...any) *Diagnostic {
	if _, ok := exitCodes[kind]; !ok {
		kind = ErrInternal
	}

	return &Diagnostic{kind: kind, detail: fmt.Sprintf(format, args...)}
}

func (d *Diagnostic) Error() string {
	if d.detail == "" {
		return d.kind.Error()
	}

	return fmt.Sprintf("%s: %s", d.kind, d.detail)
}

func (d *Diagnostic) Unwrap() error { return d.kind }

// Code returns the exit status the process must terminate with.
func (d *Diagnostic) Code() int {
	if code, ok := exitCodes[d.kind]; ok {
		return code
	}

	return exitCodes[ErrInternal]
}

// Code returns the exit status for any error produced by this package,
// defaulting to 99 (internal error) for anything unrecognized. A nil error
// yields 0.
func Code(err error) int {
	if err == nil {
		return 0
	}

	var diag *Diagnostic
	if errors.As(err, &diag) {
		return diag.Code()
	}

	for kind, code := range exitCodes {
		if errors.Is(err, kind) {
			return code
		}
	}

	return exitCodes[ErrInternal]
}
