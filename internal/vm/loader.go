package vm

// loader.go implements the program loader/validator: it
// consumes a parsed XML document and produces a dense instruction vector
// and label table. It never executes guest code and never touches a live
// frame store -- loading is pure.

import (
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ial-lang/interp/internal/log"
)

// Loader validates an XML source document and builds a Program.
type Loader struct {
	log *log.Logger
}

// NewLoader creates a loader that logs to the given logger.
func NewLoader(logger *log.Logger) *Loader {
	return &Loader{log: logger}
}

// xmlProgram, xmlInstruction and xmlArg mirror only the shape the decoder
// needs; attribute-set validation is done by hand afterwards because
// encoding/xml does not reject unknown or missing attributes on its own.
type xmlProgram struct {
	XMLName     xml.Name        `xml:"program"`
	Language    string          `xml:"language,attr"`
	Name        *string         `xml:"name,attr"`
	Description *string         `xml:"description,attr"`
	Attrs       []xml.Attr      `xml:",any,attr"`
	Instrs      []xmlInstruction `xml:"instruction"`
}

type xmlInstruction struct {
	XMLName xml.Name   `xml:"instruction"`
	Order   string     `xml:"order,attr"`
	Opcode  string     `xml:"opcode,attr"`
	Attrs   []xml.Attr `xml:",any,attr"`
	Args    []xmlArg   `xml:",any"`
}

type xmlArg struct {
	XMLName xml.Name
	Type    string     `xml:"type,attr"`
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
}

var validArgTypes = map[string]bool{
	"int": true, "bool": true, "string": true, "nil": true,
	"label": true, "type": true, "var": true, "float": true, "symb": true,
}

// Load parses, validates and normalizes an XML program document. Any
// structural or attribute violation short-circuits loading with the
// corresponding diagnostic.
func (l *Loader) Load(r io.Reader) (*Program, error) {
	var doc xmlProgram

	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, Fault(ErrXMLFormat, "%s", err)
	}

	if err := validateProgramAttrs(doc); err != nil {
		return nil, err
	}

	instrs := make([]Instruction, 0, len(doc.Instrs))
	seenOrder := make(map[int64]bool, len(doc.Instrs))

	for _, xi := range doc.Instrs {
		instr, order, err := l.buildInstruction(xi)
		if err != nil {
			return nil, err
		}

		if seenOrder[order] {
			return nil, Fault(ErrXMLStructure, "duplicate instruction order %d", order)
		}

		seenOrder[order] = true
		instrs = append(instrs, instr)
	}

	sort.Slice(instrs, func(i, j int) bool { return instrs[i].Order < instrs[j].Order })

	labels, err := buildLabelTable(instrs)
	if err != nil {
		return nil, err
	}

	l.log.Debug("loaded program", "instructions", len(instrs), "labels", len(labels))

	return &Program{Instructions: instrs, Labels: labels}, nil
}

// validateProgramAttrs checks the root element's attribute set and its
// required language attribute.
func validateProgramAttrs(doc xmlProgram) error {
	for _, a := range doc.Attrs {
		switch a.Name.Local {
		case "language", "name", "description":
		default:
			return Fault(ErrXMLStructure, "unexpected program attribute %q", a.Name.Local)
		}
	}

	if doc.Language == "" {
		return Fault(ErrXMLStructure, "program: missing language attribute")
	}

	if !strings.EqualFold(doc.Language, "IPPcode23") {
		return Fault(ErrXMLStructure, "unsupported language %q", doc.Language)
	}

	return nil
}

// buildInstruction validates one <instruction> element's attributes,
// opcode and argument list, and returns its normalized Instruction and
// parsed order.
func (l *Loader) buildInstruction(xi xmlInstruction) (Instruction, int64, error) {
	for _, a := range xi.Attrs {
		switch a.Name.Local {
		case "order", "opcode":
		default:
			return Instruction{}, 0, Fault(ErrXMLStructure, "unexpected instruction attribute %q", a.Name.Local)
		}
	}

	order, err := strconv.ParseInt(xi.Order, 10, 64)
	if err != nil || order < 1 {
		return Instruction{}, 0, Fault(ErrXMLStructure, "invalid instruction order %q", xi.Order)
	}

	opcode := Opcode(strings.ToUpper(xi.Opcode))

	declaredArity, known := Arity(opcode)
	if !known {
		return Instruction{}, 0, Fault(ErrXMLStructure, "unknown opcode %q", xi.Opcode)
	}

	args, err := buildArgs(xi.Args, declaredArity)
	if err != nil {
		return Instruction{}, 0, err
	}

	return Instruction{Order: order, Opcode: opcode, Args: args}, order, nil
}

// buildArgs validates the set of argN children against the opcode's
// declared arity and returns them as resolved Operands in arg1..argN order.
func buildArgs(xargs []xmlArg, declaredArity int) ([]Operand, error) {
	seen := make(map[int]xmlArg, len(xargs))

	for _, xa := range xargs {
		n, ok := argIndex(xa.XMLName.Local)
		if !ok {
			return nil, Fault(ErrXMLStructure, "unexpected argument tag %q", xa.XMLName.Local)
		}

		if _, dup := seen[n]; dup {
			return nil, Fault(ErrXMLStructure, "duplicate argument tag %q", xa.XMLName.Local)
		}

		for _, a := range xa.Attrs {
			if a.Name.Local != "type" {
				return nil, Fault(ErrXMLStructure, "unexpected argument attribute %q", a.Name.Local)
			}
		}

		if !validArgTypes[xa.Type] {
			return nil, Fault(ErrXMLStructure, "invalid argument type %q", xa.Type)
		}

		seen[n] = xa
	}

	if len(seen) != declaredArity {
		return nil, Fault(ErrXMLStructure, "expected %d argument(s), got %d", declaredArity, len(seen))
	}

	args := make([]Operand, declaredArity)

	for n := 1; n <= declaredArity; n++ {
		xa, ok := seen[n]
		if !ok {
			return nil, Fault(ErrXMLStructure, "missing arg%d", n)
		}

		op, err := buildOperand(xa)
		if err != nil {
			return nil, err
		}

		args[n-1] = op
	}

	return args, nil
}

func argIndex(tag string) (int, bool) {
	switch tag {
	case "arg1":
		return 1, true
	case "arg2":
		return 2, true
	case "arg3":
		return 3, true
	default:
		return 0, false
	}
}

// buildOperand normalizes one argN element into an Operand.
func buildOperand(xa xmlArg) (Operand, error) {
	text := strings.TrimSpace(xa.Text)

	switch xa.Type {
	case "var":
		ref, err := ParseVarRef(text)
		if err != nil {
			return Operand{}, err
		}

		return Operand{Kind: OperandVar, Var: ref}, nil
	case "label":
		if text == "" {
			return Operand{}, Fault(ErrXMLStructure, "empty label reference")
		}

		return Operand{Kind: OperandLabel, Name: text}, nil
	case "type":
		switch text {
		case "int", "string", "bool", "nil":
		default:
			return Operand{}, Fault(ErrXMLStructure, "invalid type literal %q", text)
		}

		return Operand{Kind: OperandType, Name: text}, nil
	case "nil":
		return Operand{Kind: OperandLiteral, LiteralType: "nil", Text: text}, nil
	default: // int, bool, string, float, symb
		return Operand{Kind: OperandLiteral, LiteralType: xa.Type, Text: text}, nil
	}
}

// buildLabelTable scans the normalized instruction vector for LABEL
// instructions. Duplicate labels are a semantic error.
func buildLabelTable(instrs []Instruction) (map[string]int, error) {
	labels := make(map[string]int)

	for pc, instr := range instrs {
		if instr.Opcode != "LABEL" {
			continue
		}

		name := instr.Args[0].Name

		if _, dup := labels[name]; dup {
			return nil, Fault(ErrSemantic, "duplicate label %q", name)
		}

		labels[name] = pc
	}

	return labels, nil
}
