package vm

// ops_stack.go implements the data-stack opcodes: PUSHS, POPS.
// The no-op stack-variant opcodes (ADDS, LTS, ...) are registered directly
// in dispatch.go.

// execPushs implements PUSHS s.
func execPushs(vm *VM, args []Operand) error {
	v, err := args[0].Resolve(vm.Frames)
	if err != nil {
		return err
	}

	vm.pushData(v)

	return nil
}

// execPops implements POPS dst: error if the stack is empty.
func execPops(vm *VM, args []Operand) error {
	v, err := vm.popData()
	if err != nil {
		return err
	}

	return assignResult(vm, args[0], v)
}
