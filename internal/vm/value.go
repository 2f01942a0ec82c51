package vm

// value.go defines the typed value model: Int, String, Bool, Nil
// and the Unset placeholder for a declared-but-never-assigned variable.

import (
	"fmt"
)

// Kind tags the dynamic type of a Value.
type Kind uint8

const (
	// KindUnset marks a declared variable slot that has never been
	// assigned. It is distinct from KindNil.
	KindUnset Kind = iota
	KindInt
	KindString
	KindBool
	KindNil
)

// String returns the lowercase type name TYPE produces for this kind, or ""
// for KindUnset.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	default:
		return ""
	}
}

// Value is a tagged union over IAL's runtime values.
type Value struct {
	kind Kind
	i    int64
	s    string
	b    bool
}

// Unset is the value of a declared variable that has never been assigned.
var Unset = Value{kind: KindUnset}

// Nil is IAL's singleton nil value.
var Nil = Value{kind: KindNil}

// Int constructs an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Str constructs a string value. s must already have any \DDD escapes
// decoded if the caller needs codepoint semantics; literals are decoded
// lazily by consumers that need it.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Bool constructs a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the value's dynamic type.
func (v Value) Kind() Kind { return v.kind }

// IsUnset reports whether v is the Unset placeholder.
func (v Value) IsUnset() bool { return v.kind == KindUnset }

// Int64 returns the payload of an Int value. Callers must check Kind first.
func (v Value) Int64() int64 { return v.i }

// Text returns the raw payload of a String value (escapes not decoded).
func (v Value) Text() string { return v.s }

// Bool returns the payload of a Bool value.
func (v Value) Bool() bool { return v.b }

// Equal reports whether two values are equal under EQ's semantics: equal
// kinds compare by payload; Nil equals only Nil.
func (v Value) Equal(o Value) bool {
	if v.kind == KindNil || o.kind == KindNil {
		return v.kind == KindNil && o.kind == KindNil
	}

	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindInt:
		return v.i == o.i
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.b == o.b
	default:
		return false
	}
}

// Less reports whether v orders before o under LT semantics: Int
// by numeric order, String by codepoint order of the decoded text, Bool with
// false < true. Both values must already share a kind; callers enforce that
// via resolveComparable before calling Less.
func (v Value) Less(o Value) bool {
	switch v.kind {
	case KindInt:
		return v.i < o.i
	case KindString:
		return v.s < o.s
	case KindBool:
		return !v.b && o.b
	default:
		return false
	}
}

// WriteText renders v the way WRITE prints it: Nil as empty, Bool as
// true/false, String with escapes decoded, Int in base 10.
func (v Value) WriteText() (string, error) {
	switch v.kind {
	case KindNil, KindUnset:
		return "", nil
	case KindBool:
		if v.b {
			return "true", nil
		}

		return "false", nil
	case KindString:
		return DecodeEscapes(v.s)
	case KindInt:
		return fmt.Sprintf("%d", v.i), nil
	default:
		return "", nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindUnset:
		return "<unset>"
	case KindNil:
		return "nil"
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.b)
	case KindString:
		return fmt.Sprintf("string(%q)", v.s)
	case KindInt:
		return fmt.Sprintf("int(%d)", v.i)
	default:
		return "<invalid>"
	}
}
