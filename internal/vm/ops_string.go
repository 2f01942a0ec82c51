package vm

// ops_string.go implements string manipulation and type inspection.
// Strings are treated as sequences of Unicode codepoints: all indexing
// and length operations work over decoded text, never raw bytes.

// decodedString resolves op, requires it to be a String, and decodes its
// \DDD escapes.
func decodedString(vm *VM, op Operand) (string, error) {
	v, err := resolveTyped(vm, op, KindString)
	if err != nil {
		return "", err
	}

	return DecodeEscapes(v.Text())
}

// execConcat implements CONCAT dst, s1, s2.
func execConcat(vm *VM, args []Operand) error {
	dst := args[0]

	s1, err := decodedString(vm, args[1])
	if err != nil {
		return err
	}

	s2, err := decodedString(vm, args[2])
	if err != nil {
		return err
	}

	return assignResult(vm, dst, Str(s1+s2))
}

// execStrlen implements STRLEN dst, s: codepoint count of decoded s.
func execStrlen(vm *VM, args []Operand) error {
	dst := args[0]

	s, err := decodedString(vm, args[1])
	if err != nil {
		return err
	}

	return assignResult(vm, dst, Int(int64(len([]rune(s)))))
}

// execGetchar implements GETCHAR dst, s, i.
func execGetchar(vm *VM, args []Operand) error {
	dst := args[0]

	s, err := decodedString(vm, args[1])
	if err != nil {
		return err
	}

	idx, err := resolveTyped(vm, args[2], KindInt)
	if err != nil {
		return err
	}

	runes := []rune(s)
	i := idx.Int64()

	if i < 0 || i >= int64(len(runes)) {
		return Fault(ErrString, "GETCHAR: index %d out of range [0,%d)", i, len(runes))
	}

	return assignResult(vm, dst, Str(string(runes[i])))
}

// execSetchar implements SETCHAR dst, i, c: dst is read-modify-written.
func execSetchar(vm *VM, args []Operand) error {
	dstOp, idxOp, charOp := args[0], args[1], args[2]

	cur, setter, err := dstOp.WriteTarget(vm.Frames)
	if err != nil {
		return err
	}

	if cur.Kind() != KindString {
		return Fault(ErrBadType, "SETCHAR: destination is %s, want string", cur.Kind())
	}

	decoded, err := DecodeEscapes(cur.Text())
	if err != nil {
		return err
	}

	idx, err := resolveTyped(vm, idxOp, KindInt)
	if err != nil {
		return err
	}

	c, err := decodedString(vm, charOp)
	if err != nil {
		return err
	}

	runes := []rune(decoded)
	i := idx.Int64()

	if i < 0 || i >= int64(len(runes)) {
		return Fault(ErrString, "SETCHAR: index %d out of range [0,%d)", i, len(runes))
	}

	cRunes := []rune(c)
	if len(cRunes) == 0 {
		return Fault(ErrString, "SETCHAR: replacement string is empty")
	}

	runes[i] = cRunes[0]

	return setter(Str(string(runes)))
}

// execStri2int implements STRI2INT dst, s, i: codepoint ordinal at index i.
func execStri2int(vm *VM, args []Operand) error {
	dst := args[0]

	s, err := decodedString(vm, args[1])
	if err != nil {
		return err
	}

	idx, err := resolveTyped(vm, args[2], KindInt)
	if err != nil {
		return err
	}

	runes := []rune(s)
	i := idx.Int64()

	if i < 0 || i >= int64(len(runes)) {
		return Fault(ErrString, "STRI2INT: index %d out of range [0,%d)", i, len(runes))
	}

	return assignResult(vm, dst, Int(int64(runes[i])))
}

// execInt2char implements INT2CHAR dst, n.
func execInt2char(vm *VM, args []Operand) error {
	dst := args[0]

	n, err := resolveTyped(vm, args[1], KindInt)
	if err != nil {
		return err
	}

	r := rune(n.Int64())
	if n.Int64() < 0 || n.Int64() > 0x10FFFF {
		return Fault(ErrString, "INT2CHAR: %d is not a valid codepoint", n.Int64())
	}

	return assignResult(vm, dst, Str(string(r)))
}

// execType implements TYPE dst, s: never raises value-missing;
// an Unset source yields the empty string.
func execType(vm *VM, args []Operand) error {
	dst, src := args[0], args[1]

	v, err := src.ResolveNonRaising(vm.Frames)
	if err != nil {
		return err
	}

	if v.IsUnset() {
		return assignResult(vm, dst, Str(""))
	}

	return assignResult(vm, dst, Str(v.Kind().String()))
}
