package vm

import (
	"errors"
	"testing"
)

func TestFramesDeclareGetSet(t *testing.T) {
	t.Parallel()

	fr := NewFrames()

	if err := fr.Declare(GF, "x"); err != nil {
		t.Fatalf("Declare: %s", err)
	}

	if err := fr.Declare(GF, "x"); !errors.Is(err, ErrSemantic) {
		t.Fatalf("redeclare: want ErrSemantic, got %v", err)
	}

	v, err := fr.Get(GF, "x")
	if err != nil {
		t.Fatalf("Get: %s", err)
	}

	if !v.IsUnset() {
		t.Errorf("freshly declared variable = %v, want Unset", v)
	}

	if err := fr.Set(GF, "x", Int(42)); err != nil {
		t.Fatalf("Set: %s", err)
	}

	v, err = fr.Get(GF, "x")
	if err != nil {
		t.Fatalf("Get: %s", err)
	}

	if v.Kind() != KindInt || v.Int64() != 42 {
		t.Errorf("Get after Set = %v, want int(42)", v)
	}

	if _, err := fr.Get(GF, "y"); !errors.Is(err, ErrVariableMissing) {
		t.Errorf("Get undeclared: want ErrVariableMissing, got %v", err)
	}
}

func TestFramesTemporaryLifecycle(t *testing.T) {
	t.Parallel()

	fr := NewFrames()

	if err := fr.Declare(TF, "x"); !errors.Is(err, ErrFrameMissing) {
		t.Fatalf("Declare with no TF: want ErrFrameMissing, got %v", err)
	}

	fr.CreateFrame()

	if err := fr.Declare(TF, "x"); err != nil {
		t.Fatalf("Declare: %s", err)
	}

	if err := fr.PushFrame(); err != nil {
		t.Fatalf("PushFrame: %s", err)
	}

	if err := fr.PushFrame(); !errors.Is(err, ErrFrameMissing) {
		t.Fatalf("PushFrame with no TF: want ErrFrameMissing, got %v", err)
	}

	if _, err := fr.Get(LF, "x"); err != nil {
		t.Fatalf("Get LF after push: %s", err)
	}

	if err := fr.PopFrame(); err != nil {
		t.Fatalf("PopFrame: %s", err)
	}

	if err := fr.PopFrame(); !errors.Is(err, ErrFrameMissing) {
		t.Fatalf("PopFrame on empty stack: want ErrFrameMissing, got %v", err)
	}

	if _, err := fr.Get(TF, "x"); err != nil {
		t.Fatalf("Get TF after pop: %s", err)
	}
}

func TestParseVarRef(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name    string
		text    string
		want    VarRef
		wantErr error
	}{
		{"global", "GF@x", VarRef{Frame: GF, Name: "x"}, nil},
		{"local", "LF@counter", VarRef{Frame: LF, Name: "counter"}, nil},
		{"temp", "TF@tmp", VarRef{Frame: TF, Name: "tmp"}, nil},
		{"name with at", "GF@a@b", VarRef{Frame: GF, Name: "a@b"}, nil},
		{"bad tag", "XX@x", VarRef{}, ErrXMLStructure},
		{"no at", "GFx", VarRef{}, ErrXMLStructure},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseVarRef(tc.text)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ParseVarRef(%q) error = %v, want %v", tc.text, err, tc.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseVarRef(%q): %s", tc.text, err)
			}

			if got != tc.want {
				t.Errorf("ParseVarRef(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
