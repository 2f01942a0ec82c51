package vm

// ops_arith.go implements arithmetic, logic, and comparison opcodes:
// ADD, SUB, MUL, IDIV; AND, OR, NOT; LT, GT, EQ.

// resolveTyped resolves op and checks it has exactly the expected kind,
// reporting a bad-type error otherwise.
func resolveTyped(vm *VM, op Operand, want Kind) (Value, error) {
	v, err := op.Resolve(vm.Frames)
	if err != nil {
		return Value{}, err
	}

	if v.Kind() != want {
		return Value{}, Fault(ErrBadType, "expected %s, got %s", want, v.Kind())
	}

	return v, nil
}

func assignResult(vm *VM, dst Operand, v Value) error {
	return vm.Frames.Set(dst.Var.Frame, dst.Var.Name, v)
}

func execAdd(vm *VM, args []Operand) error { return arith(vm, args, func(a, b int64) int64 { return a + b }) }
func execSub(vm *VM, args []Operand) error { return arith(vm, args, func(a, b int64) int64 { return a - b }) }
func execMul(vm *VM, args []Operand) error { return arith(vm, args, func(a, b int64) int64 { return a * b }) }

func arith(vm *VM, args []Operand, fn func(a, b int64) int64) error {
	dst, o1, o2 := args[0], args[1], args[2]

	a, err := resolveTyped(vm, o1, KindInt)
	if err != nil {
		return err
	}

	b, err := resolveTyped(vm, o2, KindInt)
	if err != nil {
		return err
	}

	return assignResult(vm, dst, Int(fn(a.Int64(), b.Int64())))
}

// execIdiv implements IDIV dst, a, b: integer division; b == 0 is an
// operand-value error regardless of a.
func execIdiv(vm *VM, args []Operand) error {
	dst, o1, o2 := args[0], args[1], args[2]

	a, err := resolveTyped(vm, o1, KindInt)
	if err != nil {
		return err
	}

	b, err := resolveTyped(vm, o2, KindInt)
	if err != nil {
		return err
	}

	if b.Int64() == 0 {
		return Fault(ErrOperandValue, "IDIV: division by zero")
	}

	return assignResult(vm, dst, Int(a.Int64()/b.Int64()))
}

func execAnd(vm *VM, args []Operand) error { return logic(vm, args, func(a, b bool) bool { return a && b }) }
func execOr(vm *VM, args []Operand) error  { return logic(vm, args, func(a, b bool) bool { return a || b }) }

func logic(vm *VM, args []Operand, fn func(a, b bool) bool) error {
	dst, o1, o2 := args[0], args[1], args[2]

	a, err := resolveTyped(vm, o1, KindBool)
	if err != nil {
		return err
	}

	b, err := resolveTyped(vm, o2, KindBool)
	if err != nil {
		return err
	}

	return assignResult(vm, dst, Bool(fn(a.Bool(), b.Bool())))
}

// execNot implements NOT dst, b.
func execNot(vm *VM, args []Operand) error {
	dst, o := args[0], args[1]

	b, err := resolveTyped(vm, o, KindBool)
	if err != nil {
		return err
	}

	return assignResult(vm, dst, Bool(!b.Bool()))
}

// orderedKinds is the set of kinds LT/GT accept; Nil is explicitly excluded
//.
var orderedKinds = map[Kind]bool{KindInt: true, KindString: true, KindBool: true}

// resolveComparable resolves both operands of LT/GT/EQ, decodes string
// escapes for ordering, and checks the type-compatibility rule for the
// given opcode: LT/GT require equal, orderable kinds; EQ
// additionally allows either operand to be Nil.
func resolveComparable(vm *VM, o1, o2 Operand, allowNil bool) (Value, Value, error) {
	a, err := o1.Resolve(vm.Frames)
	if err != nil {
		return Value{}, Value{}, err
	}

	b, err := o2.Resolve(vm.Frames)
	if err != nil {
		return Value{}, Value{}, err
	}

	if allowNil && (a.Kind() == KindNil || b.Kind() == KindNil) {
		return a, b, nil
	}

	if a.Kind() != b.Kind() || !orderedKinds[a.Kind()] {
		return Value{}, Value{}, Fault(ErrBadType, "incomparable operand types %s and %s", a.Kind(), b.Kind())
	}

	if a.Kind() == KindString {
		da, err := DecodeEscapes(a.Text())
		if err != nil {
			return Value{}, Value{}, err
		}

		db, err := DecodeEscapes(b.Text())
		if err != nil {
			return Value{}, Value{}, err
		}

		a, b = Str(da), Str(db)
	}

	return a, b, nil
}

func execLt(vm *VM, args []Operand) error {
	dst := args[0]

	a, b, err := resolveComparable(vm, args[1], args[2], false)
	if err != nil {
		return err
	}

	return assignResult(vm, dst, Bool(a.Less(b)))
}

func execGt(vm *VM, args []Operand) error {
	dst := args[0]

	a, b, err := resolveComparable(vm, args[1], args[2], false)
	if err != nil {
		return err
	}

	return assignResult(vm, dst, Bool(b.Less(a)))
}

func execEq(vm *VM, args []Operand) error {
	dst := args[0]

	a, b, err := resolveComparable(vm, args[1], args[2], true)
	if err != nil {
		return err
	}

	return assignResult(vm, dst, Bool(a.Equal(b)))
}
