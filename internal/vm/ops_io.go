package vm

// ops_io.go implements READ and WRITE. DPRINT and BREAK are
// registered as no-ops directly in dispatch.go.

import (
	"strings"
)

// execRead implements READ var, type: on end-of-stream or a parse failure
// for the requested type, var becomes Nil; bool parsing never fails.
func execRead(vm *VM, args []Operand) error {
	dst, typ := args[0], args[1].Name

	line, ok := vm.readLine()
	if !ok {
		return assignResult(vm, dst, Nil)
	}

	switch typ {
	case "int":
		v, err := parseLiteral("int", strings.TrimSpace(line))
		if err != nil {
			return assignResult(vm, dst, Nil)
		}

		return assignResult(vm, dst, v)
	case "bool":
		return assignResult(vm, dst, Bool(strings.EqualFold(strings.TrimSpace(line), "true")))
	case "string":
		return assignResult(vm, dst, Str(line))
	default:
		return Fault(ErrInternal, "READ: unsupported type %q", typ)
	}
}

// execWrite implements WRITE s.
func execWrite(vm *VM, args []Operand) error {
	v, err := args[0].Resolve(vm.Frames)
	if err != nil {
		return err
	}

	text, err := v.WriteText()
	if err != nil {
		return err
	}

	return vm.write(text)
}
