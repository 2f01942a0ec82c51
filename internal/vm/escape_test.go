package vm

import (
	"errors"
	"testing"
)

func TestDecodeEscapes(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"no escapes", "hello", "hello", nil},
		{"newline", `a\010b`, "a\nb", nil},
		{"space", `x\032y`, "x y", nil},
		{"backslash literal", `\092`, `\`, nil},
		{"truncated", `a\01`, "", ErrString},
		{"non digit", `a\0Xb`, "", ErrString},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeEscapes(tc.in)

			switch {
			case tc.wantErr == nil && err != nil:
				t.Fatalf("unexpected error: %s", err)
			case tc.wantErr != nil && err == nil:
				t.Fatalf("expected error %s, got nil", tc.wantErr)
			case tc.wantErr != nil && !errors.Is(err, tc.wantErr):
				t.Fatalf("unexpected error: want %s, got %s", tc.wantErr, err)
			}

			if err == nil && got != tc.want {
				t.Errorf("DecodeEscapes(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
