package vm

// program.go holds the dense, validated instruction stream the loader
// produces and the label table built from it.

// Program is the result of loading and validating an XML source document: a
// dense, 0-indexed instruction vector and a label table mapping label names
// to program-counter indices.
type Program struct {
	Instructions []Instruction
	Labels       map[string]int
}

// Label returns the program-counter index for name, or a semantic error if
// it is undefined.
func (p *Program) Label(name string) (int, error) {
	pc, ok := p.Labels[name]
	if !ok {
		return 0, Fault(ErrSemantic, "undefined label %q", name)
	}

	return pc, nil
}
