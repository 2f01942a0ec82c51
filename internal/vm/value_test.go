package vm

import "testing"

func TestValueEqual(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints equal", Int(3), Int(3), true},
		{"ints differ", Int(3), Int(4), false},
		{"strings equal", Str("a"), Str("a"), true},
		{"bools equal", Bool(true), Bool(true), true},
		{"nil equals nil", Nil, Nil, true},
		{"nil not equal int", Nil, Int(0), false},
		{"different kinds", Int(1), Str("1"), false},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal(%v, %v) = %t, want %t", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestValueLess(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		a, b Value
		want bool
	}{
		{"ints", Int(1), Int(2), true},
		{"ints reverse", Int(2), Int(1), false},
		{"strings", Str("a"), Str("b"), true},
		{"bools", Bool(false), Bool(true), true},
		{"bools equal", Bool(true), Bool(true), false},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.a.Less(tc.b); got != tc.want {
				t.Errorf("Less(%v, %v) = %t, want %t", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestValueWriteText(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name    string
		v       Value
		want    string
		wantErr bool
	}{
		{"nil", Nil, "", false},
		{"unset", Unset, "", false},
		{"true", Bool(true), "true", false},
		{"false", Bool(false), "false", false},
		{"int", Int(-7), "-7", false},
		{"string escape", Str(`a\010b`), "a\nb", false},
		{"string bad escape", Str(`a\0Xb`), "", true},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.v.WriteText()

			if tc.wantErr != (err != nil) {
				t.Fatalf("WriteText() error = %v, wantErr %t", err, tc.wantErr)
			}

			if err == nil && got != tc.want {
				t.Errorf("WriteText() = %q, want %q", got, tc.want)
			}
		})
	}
}
