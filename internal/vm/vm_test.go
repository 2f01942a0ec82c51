package vm

import (
	"context"
	"strings"
	"testing"

	"github.com/ial-lang/interp/internal/log"
)

func TestRunExit(t *testing.T) {
	t.Parallel()

	prog := &Program{
		Instructions: []Instruction{
			{Opcode: "EXIT", Args: []Operand{{Kind: OperandLiteral, LiteralType: "int", Text: "7"}}},
		},
		Labels: map[string]int{},
	}

	machine := New(prog, strings.NewReader(""), new(strings.Builder), log.DefaultLogger())

	code, err := machine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %s", err)
	}

	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

func TestRunExitOutOfRange(t *testing.T) {
	t.Parallel()

	prog := &Program{
		Instructions: []Instruction{
			{Opcode: "EXIT", Args: []Operand{{Kind: OperandLiteral, LiteralType: "int", Text: "50"}}},
		},
		Labels: map[string]int{},
	}

	machine := New(prog, strings.NewReader(""), new(strings.Builder), log.DefaultLogger())

	code, err := machine.Run(context.Background())
	if err == nil {
		t.Fatal("Run: want error, got nil")
	}

	if code != 57 {
		t.Errorf("exit code = %d, want 57", code)
	}
}

func TestRunEndOfStream(t *testing.T) {
	t.Parallel()

	prog := &Program{Instructions: nil, Labels: map[string]int{}}
	machine := New(prog, strings.NewReader(""), new(strings.Builder), log.DefaultLogger())

	code, err := machine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %s", err)
	}

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
}

func TestRunReadAndWrite(t *testing.T) {
	t.Parallel()

	prog := &Program{
		Instructions: []Instruction{
			{Opcode: "DEFVAR", Args: []Operand{{Kind: OperandVar, Var: VarRef{Frame: GF, Name: "x"}}}},
			{Opcode: "READ", Args: []Operand{
				{Kind: OperandVar, Var: VarRef{Frame: GF, Name: "x"}},
				{Kind: OperandType, Name: "int"},
			}},
			{Opcode: "WRITE", Args: []Operand{{Kind: OperandVar, Var: VarRef{Frame: GF, Name: "x"}}}},
		},
		Labels: map[string]int{},
	}

	out := new(strings.Builder)
	machine := New(prog, strings.NewReader("123\n"), out, log.DefaultLogger())

	code, err := machine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %s", err)
	}

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	if out.String() != "123" {
		t.Errorf("output = %q, want %q", out.String(), "123")
	}
}

func TestRunReadPastEOFYieldsNil(t *testing.T) {
	t.Parallel()

	prog := &Program{
		Instructions: []Instruction{
			{Opcode: "DEFVAR", Args: []Operand{{Kind: OperandVar, Var: VarRef{Frame: GF, Name: "x"}}}},
			{Opcode: "READ", Args: []Operand{
				{Kind: OperandVar, Var: VarRef{Frame: GF, Name: "x"}},
				{Kind: OperandType, Name: "string"},
			}},
			{Opcode: "WRITE", Args: []Operand{{Kind: OperandVar, Var: VarRef{Frame: GF, Name: "x"}}}},
		},
		Labels: map[string]int{},
	}

	out := new(strings.Builder)
	machine := New(prog, strings.NewReader(""), out, log.DefaultLogger())

	code, err := machine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %s", err)
	}

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	if out.String() != "" {
		t.Errorf("output = %q, want empty (nil writes as empty text)", out.String())
	}
}
