package vm

// instr.go defines the dense, program-counter-indexed instruction
// representation instructions are normalized into by the loader.

import (
	"fmt"
	"strings"
)

// Opcode identifies the instruction to be executed.
type Opcode string

// Instruction is a single dispatchable operation: an opcode and 0-3
// resolved operands. Order is the original XML `order` attribute, retained
// for diagnostics after instructions are sorted and re-indexed.
type Instruction struct {
	Order  int64
	Opcode Opcode
	Args   []Operand
}

func (i Instruction) String() string {
	args := make([]string, len(i.Args))
	for n, a := range i.Args {
		args[n] = fmt.Sprintf("%v", a)
	}

	return fmt.Sprintf("%s(order:%d) %s", i.Opcode, i.Order, strings.Join(args, ", "))
}

// arity is the normative argument count for every opcode.
var arity = map[Opcode]int{
	"CREATEFRAME": 0, "PUSHFRAME": 0, "POPFRAME": 0, "RETURN": 0, "BREAK": 0,
	"CLEARS": 0, "ADDS": 0, "SUBS": 0, "MULS": 0, "IDIVS": 0, "LTS": 0,
	"GTS": 0, "EQS": 0, "ANDS": 0, "ORS": 0, "NOTS": 0, "INT2CHARS": 0,
	"STRI2INTS": 0,

	"DEFVAR": 1, "CALL": 1, "PUSHS": 1, "POPS": 1, "WRITE": 1, "LABEL": 1,
	"JUMP": 1, "EXIT": 1, "DPRINT": 1, "JUMPIFEQS": 1, "JUMPIFNEQS": 1,

	"MOVE": 2, "NOT": 2, "INT2CHAR": 2, "READ": 2, "STRLEN": 2, "TYPE": 2,
	"INT2FLOAT": 2, "FLOAT2INT": 2,

	"ADD": 3, "SUB": 3, "MUL": 3, "IDIV": 3, "LT": 3, "GT": 3, "EQ": 3,
	"AND": 3, "OR": 3, "STRI2INT": 3, "CONCAT": 3, "GETCHAR": 3,
	"SETCHAR": 3, "JUMPIFEQ": 3, "JUMPIFNEQ": 3,
}

// Arity returns the declared argument count for opcode and whether opcode is
// known at all.
func Arity(opcode Opcode) (int, bool) {
	n, ok := arity[Opcode(strings.ToUpper(string(opcode)))]
	return n, ok
}

// stackVariants execute as documented no-ops: their semantics are
// intentionally unspecified, and they are listed explicitly here -- rather
// than falling through a default case -- so dispatch coverage stays
// exhaustive and auditable.
var stackVariants = map[Opcode]bool{
	"CLEARS": true, "ADDS": true, "SUBS": true, "MULS": true, "IDIVS": true,
	"LTS": true, "GTS": true, "EQS": true, "ANDS": true, "ORS": true,
	"NOTS": true, "INT2CHARS": true, "STRI2INTS": true,
	"JUMPIFEQS": true, "JUMPIFNEQS": true,
}

// floatScaffolding opcodes are accepted by the loader but are not given
// arithmetic semantics; they are no-ops that leave their destination
// untouched.
var floatScaffolding = map[Opcode]bool{
	"INT2FLOAT": true, "FLOAT2INT": true,
}
