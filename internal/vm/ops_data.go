package vm

// ops_data.go implements data movement and frame-lifetime opcodes:
// MOVE, DEFVAR, CREATEFRAME, PUSHFRAME, POPFRAME.

// execMove implements MOVE dst, src: dst must already be declared.
func execMove(vm *VM, args []Operand) error {
	dst, src := args[0], args[1]

	v, err := src.Resolve(vm.Frames)
	if err != nil {
		return err
	}

	return vm.Frames.Set(dst.Var.Frame, dst.Var.Name, v)
}

// execDefvar implements DEFVAR var: declares var in its frame.
func execDefvar(vm *VM, args []Operand) error {
	ref := args[0].Var
	return vm.Frames.Declare(ref.Frame, ref.Name)
}

// execCreateFrame implements CREATEFRAME: unconditionally replace TF.
func execCreateFrame(vm *VM, args []Operand) error {
	vm.Frames.CreateFrame()
	return nil
}

// execPushFrame implements PUSHFRAME: TF must be present.
func execPushFrame(vm *VM, args []Operand) error {
	return vm.Frames.PushFrame()
}

// execPopFrame implements POPFRAME: the local stack must be non-empty.
func execPopFrame(vm *VM, args []Operand) error {
	return vm.Frames.PopFrame()
}
