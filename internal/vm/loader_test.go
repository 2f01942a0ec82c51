package vm

import (
	"errors"
	"strings"
	"testing"

	"github.com/ial-lang/interp/internal/log"
)

type loaderCase struct {
	name      string
	source    string
	expErr    error
	expCount  int
	expLabels int
}

func TestLoaderLoad(tt *testing.T) {
	tt.Parallel()

	tcs := []loaderCase{{
		name: "ok",
		source: `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR"><arg1 type="var">GF@x</arg1></instruction>
  <instruction order="2" opcode="MOVE">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">42</arg2>
  </instruction>
</program>`,
		expCount: 2,
	}, {
		name: "out of order instructions are sorted",
		source: `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="5" opcode="LABEL"><arg1 type="label">l</arg1></instruction>
  <instruction order="1" opcode="JUMP"><arg1 type="label">l</arg1></instruction>
</program>`,
		expCount:  2,
		expLabels: 1,
	}, {
		name: "missing language",
		source: `<?xml version="1.0" encoding="UTF-8"?>
<program><instruction order="1" opcode="BREAK"></instruction></program>`,
		expErr: ErrXMLStructure,
	}, {
		name: "wrong language",
		source: `<?xml version="1.0" encoding="UTF-8"?>
<program language="python"><instruction order="1" opcode="BREAK"></instruction></program>`,
		expErr: ErrXMLStructure,
	}, {
		name: "unknown opcode",
		source: `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23"><instruction order="1" opcode="FROB"></instruction></program>`,
		expErr: ErrXMLStructure,
	}, {
		name: "wrong arity",
		source: `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23"><instruction order="1" opcode="ADD">
  <arg1 type="int">1</arg1>
  <arg2 type="int">2</arg2>
</instruction></program>`,
		expErr: ErrXMLStructure,
	}, {
		name: "duplicate order",
		source: `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="BREAK"></instruction>
  <instruction order="1" opcode="BREAK"></instruction>
</program>`,
		expErr: ErrXMLStructure,
	}, {
		name: "duplicate label",
		source: `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="LABEL"><arg1 type="label">l</arg1></instruction>
  <instruction order="2" opcode="LABEL"><arg1 type="label">l</arg1></instruction>
</program>`,
		expErr: ErrSemantic,
	}, {
		name: "malformed xml",
		source: `<program language="IPPcode23">`,
		expErr: ErrXMLFormat,
	}}

	for _, tc := range tcs {
		tc := tc

		tt.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			loader := NewLoader(log.DefaultLogger())

			prog, err := loader.Load(strings.NewReader(tc.source))

			switch {
			case tc.expErr == nil && err != nil:
				t.Fatalf("unexpected error: %s", err)
			case tc.expErr != nil && err == nil:
				t.Fatalf("expected error %s, got nil", tc.expErr)
			case tc.expErr != nil && !errors.Is(err, tc.expErr):
				t.Fatalf("unexpected error: want %s, got %s", tc.expErr, err)
			}

			if tc.expErr != nil {
				return
			}

			if len(prog.Instructions) != tc.expCount {
				t.Errorf("instruction count = %d, want %d", len(prog.Instructions), tc.expCount)
			}

			if len(prog.Labels) != tc.expLabels {
				t.Errorf("label count = %d, want %d", len(prog.Labels), tc.expLabels)
			}
		})
	}
}
