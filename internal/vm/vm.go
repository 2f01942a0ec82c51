package vm

// vm.go assembles the virtual machine from its smaller parts and implements
// the dispatch loop.

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ial-lang/interp/internal/log"
)

// VM is the IAL interpreter: frame store, data and call stacks, the loaded
// program, and the I/O it is wired to.
type VM struct {
	Program *Program
	Frames  *Frames

	PC int

	data []Value // data stack, for PUSHS/POPS
	call []int   // call stack, for CALL/RETURN

	in  *bufio.Scanner // READ's line cursor; monotonic for the whole run
	out io.Writer

	log *log.Logger
}

// New creates a VM ready to run prog, reading READ's input from in and
// writing WRITE's output to out.
func New(prog *Program, in io.Reader, out io.Writer, logger *log.Logger) *VM {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &VM{
		Program: prog,
		Frames:  NewFrames(),
		in:      scanner,
		out:     out,
		log:     logger,
	}
}

// exitSignal is returned by EXIT's handler to unwind the dispatch loop with
// a specific, successful exit status. It is not one of the Err* fault
// sentinels: an EXIT is normal termination, not a diagnosed error.
type exitSignal struct{ code int }

func (e *exitSignal) Error() string { return fmt.Sprintf("exit(%d)", e.code) }

// Run executes instructions until the program counter runs off the end of
// the instruction vector, an EXIT instruction terminates the program, the
// context is cancelled, or an instruction raises a fault. It returns the
// process exit status and, for a fault, the error describing it.
func (vm *VM) Run(ctx context.Context) (int, error) {
	vm.log.Info("start", "instructions", len(vm.Program.Instructions))

	for vm.PC < len(vm.Program.Instructions) {
		select {
		case <-ctx.Done():
			return Code(ctx.Err()), ctx.Err()
		default:
		}

		if err := vm.Step(); err != nil {
			var exit *exitSignal
			if errors.As(err, &exit) {
				vm.log.Info("exit", "code", exit.code)
				return exit.code, nil
			}

			vm.log.Error("fault", "err", err, "pc", vm.PC)

			return Code(err), err
		}
	}

	vm.log.Info("halted", "reason", "end of instruction stream")

	return 0, nil
}

// Step dispatches and executes a single instruction, then advances the
// program counter by one regardless of the opcode -- including jumps, whose
// handlers set PC to the target index directly; the uniform post-increment
// then moves execution to the instruction immediately following the target
// (this is why LABEL is a no-op, and why RETURN resumes immediately after
// CALL rather than at CALL itself).
func (vm *VM) Step() error {
	instr := vm.Program.Instructions[vm.PC]

	handler, ok := dispatch[instr.Opcode]
	if !ok {
		return Fault(ErrInternal, "no handler registered for opcode %s", instr.Opcode)
	}

	if err := handler(vm, instr.Args); err != nil {
		return err
	}

	vm.PC++

	return nil
}

// pushData pushes a value onto the data stack.
func (vm *VM) pushData(v Value) { vm.data = append(vm.data, v) }

// popData pops a value off the data stack, or a value-missing error if it
// is empty.
func (vm *VM) popData() (Value, error) {
	if len(vm.data) == 0 {
		return Value{}, Fault(ErrValueMissing, "POPS: data stack is empty")
	}

	n := len(vm.data) - 1
	v := vm.data[n]
	vm.data = vm.data[:n]

	return v, nil
}

// pushCall pushes a return address onto the call stack.
func (vm *VM) pushCall(pc int) { vm.call = append(vm.call, pc) }

// popCall pops a return address, or a value-missing error if the call
// stack is empty.
func (vm *VM) popCall() (int, error) {
	if len(vm.call) == 0 {
		return 0, Fault(ErrValueMissing, "RETURN: call stack is empty")
	}

	n := len(vm.call) - 1
	pc := vm.call[n]
	vm.call = vm.call[:n]

	return pc, nil
}

// readLine returns the next line from the input stream and whether one was
// available. The cursor never resets; past end-of-stream it always reports
// false.
func (vm *VM) readLine() (string, bool) {
	if !vm.in.Scan() {
		return "", false
	}

	return vm.in.Text(), true
}

// write sends text to the VM's output verbatim; no separators are added
//.
func (vm *VM) write(text string) error {
	if _, err := io.WriteString(vm.out, text); err != nil {
		return Fault(ErrOutputFile, "%s", err)
	}

	return nil
}
