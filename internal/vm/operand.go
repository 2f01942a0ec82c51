package vm

// operand.go implements the operand resolver: given a parsed
// operand and the current frame store, produce a typed value or a
// diagnosed error.

import (
	"strconv"
)

// OperandKind tags the lexical shape of an Operand, independent of the
// runtime Kind a resolved value may carry.
type OperandKind uint8

const (
	OperandLiteral OperandKind = iota
	OperandVar
	OperandLabel
	OperandType
)

// Operand is a single parsed instruction argument: either a literal value
// (with its lexical type), a variable reference, a label reference, or a
// type-name literal.
type Operand struct {
	Kind OperandKind

	// Set when Kind == OperandLiteral: one of int, string, bool, nil,
	// float, or symb (symb is accepted and treated identically to string).
	LiteralType string
	Text        string // raw, trimmed XML text content

	// Set when Kind == OperandVar.
	Var VarRef

	// Set when Kind == OperandLabel or OperandType.
	Name string
}

// Resolve returns the (kind, value) pair an operand evaluates to,
// dereferencing variables through the frame store. Reading a variable whose
// slot is Unset is a value-missing error -- this is the "raising" resolver.
// TYPE uses ResolveNonRaising instead, and SETCHAR reads its destination
// through WriteTarget.
func (op Operand) Resolve(fr *Frames) (Value, error) {
	v, err := op.resolveRaw(fr)
	if err != nil {
		return Value{}, err
	}

	if v.IsUnset() {
		return Value{}, Fault(ErrValueMissing, "read of unset variable %s", op.Var)
	}

	return v, nil
}

// ResolveNonRaising is like Resolve but passes Unset through instead of
// raising, for TYPE's inspection semantics.
func (op Operand) ResolveNonRaising(fr *Frames) (Value, error) {
	return op.resolveRaw(fr)
}

func (op Operand) resolveRaw(fr *Frames) (Value, error) {
	switch op.Kind {
	case OperandVar:
		return fr.Get(op.Var.Frame, op.Var.Name)
	case OperandLiteral:
		return parseLiteral(op.LiteralType, op.Text)
	case OperandLabel, OperandType:
		return Value{}, Fault(ErrInternal, "operand %v has no value", op)
	default:
		return Value{}, Fault(ErrInternal, "unknown operand kind")
	}
}

// parseLiteral parses literal text according to its lexical type.
func parseLiteral(typ, text string) (Value, error) {
	switch typ {
	case "int":
		sign, body := "", text
		if body != "" && (body[0] == '+' || body[0] == '-') {
			sign, body = body[:1], body[1:]
		}

		base := 10
		if len(body) > 2 && body[0] == '0' {
			switch body[1] {
			case 'x', 'X':
				base, body = 16, body[2:]
			case 'o', 'O':
				base, body = 8, body[2:]
			}
		}

		n, err := strconv.ParseInt(sign+body, base, 64)
		if err != nil {
			return Value{}, Fault(ErrXMLStructure, "invalid int literal %q", text)
		}

		return Int(n), nil
	case "bool":
		switch text {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		default:
			return Value{}, Fault(ErrXMLStructure, "invalid bool literal %q", text)
		}
	case "string", "symb":
		return Str(text), nil
	case "nil":
		if text != "" && text != "nil" {
			return Value{}, Fault(ErrXMLStructure, "invalid nil literal %q", text)
		}

		return Nil, nil
	default:
		return Value{}, Fault(ErrXMLStructure, "unsupported literal type %q", typ)
	}
}

// WriteTarget resolves a var operand for read-modify-write access (used by
// SETCHAR), returning the identifier's current value without raising on
// Unset and a setter to store the result back.
func (op Operand) WriteTarget(fr *Frames) (Value, func(Value) error, error) {
	if op.Kind != OperandVar {
		return Value{}, nil, Fault(ErrInternal, "write target must be a variable")
	}

	v, err := fr.Get(op.Var.Frame, op.Var.Name)
	if err != nil {
		return Value{}, nil, err
	}

	setter := func(nv Value) error {
		return fr.Set(op.Var.Frame, op.Var.Name, nv)
	}

	return v, setter, nil
}
