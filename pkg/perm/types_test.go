package perm

import (
	"slices"
	"testing"

	perrors "github.com/matzehuels/poscode/pkg/errors"
)

func TestValidateCode(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		wantErr bool
	}{
		{"empty", Code{}, false},
		{"single", Code{0}, false},
		{"max digits", Code{0, 1, 2, 3}, false},
		{"zero code", Code{0, 0, 0, 0}, false},
		{"example", Code{0, 1, 1, 2}, false},

		{"nonzero first digit", Code{1, 0}, true},
		{"digit above bound", Code{0, 1, 3}, true},
		{"negative digit", Code{0, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCode(%v) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if err != nil && !perrors.Is(err, perrors.ErrCodeInvalidEncoding) {
				t.Errorf("error code = %v, want %v", perrors.GetCode(err), perrors.ErrCodeInvalidEncoding)
			}
		})
	}
}

func TestValidatePermutation(t *testing.T) {
	tests := []struct {
		name    string
		perm    Permutation
		wantErr bool
	}{
		{"empty", Permutation{}, false},
		{"identity", Permutation{0, 1, 2}, false},
		{"example", Permutation{0, 3, 1, 2}, false},

		{"duplicate", Permutation{0, 1, 1}, true},
		{"out of range", Permutation{0, 3, 1}, true},
		{"negative", Permutation{0, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePermutation(tt.perm)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePermutation(%v) error = %v, wantErr %v", tt.perm, err, tt.wantErr)
			}
			if err != nil && !perrors.Is(err, perrors.ErrCodeInvalidPermutation) {
				t.Errorf("error code = %v, want %v", perrors.GetCode(err), perrors.ErrCodeInvalidPermutation)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	p := Permutation{0, 3, 1, 2}
	inv := Invert(p)
	if !slices.Equal(inv, Permutation{0, 2, 3, 1}) {
		t.Errorf("Invert(%v) = %v, want [0 2 3 1]", p, inv)
	}
	if !slices.Equal(p, Permutation{0, 3, 1, 2}) {
		t.Error("Invert should not modify its input")
	}
}

func TestInvertInPlace(t *testing.T) {
	for n := 0; n <= 6; n++ {
		for p := range HeapSeq(n) {
			want := Invert(p)
			got := p.Clone()
			InvertInPlace(got)
			if !slices.Equal(got, want) {
				t.Fatalf("InvertInPlace(%v) = %v, want %v", p, got, want)
			}
		}
	}
}

func TestCodeIndexRoundTrip(t *testing.T) {
	for n := 0; n <= 7; n++ {
		for idx := 0; idx < Factorial(n); idx++ {
			c, err := CodeFromIndex(idx, n)
			if err != nil {
				t.Fatalf("CodeFromIndex(%d, %d): %v", idx, n, err)
			}
			if err := ValidateCode(c); err != nil {
				t.Fatalf("CodeFromIndex(%d, %d) = %v: %v", idx, n, c, err)
			}
			if got := c.Index(); got != idx {
				t.Fatalf("CodeFromIndex(%d, %d).Index() = %d", idx, n, got)
			}
		}
	}
}

func TestCodeFromIndex_Errors(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		n    int
		code perrors.Code
	}{
		{"negative index", -1, 4, perrors.ErrCodeInvalidValue},
		{"index past end", 24, 4, perrors.ErrCodeInvalidValue},
		{"negative size", 0, -1, perrors.ErrCodeInvalidInput},
		{"size too large", 0, MaxIndexSize + 1, perrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CodeFromIndex(tt.idx, tt.n)
			if !perrors.Is(err, tt.code) {
				t.Errorf("CodeFromIndex(%d, %d) error = %v, want code %v", tt.idx, tt.n, err, tt.code)
			}
		})
	}
}

func TestCodeIndex_LastDigitFastest(t *testing.T) {
	if got := (Code{0, 0, 0, 1}).Index(); got != 1 {
		t.Errorf("Index([0 0 0 1]) = %d, want 1", got)
	}
	if got := (Code{0, 0, 1, 0}).Index(); got != 4 {
		t.Errorf("Index([0 0 1 0]) = %d, want 4", got)
	}
	if got := (Code{0, 1, 2, 3}).Index(); got != 23 {
		t.Errorf("Index([0 1 2 3]) = %d, want 23", got)
	}
}

func TestParseFamily(t *testing.T) {
	tests := []struct {
		input   string
		want    Family
		wantErr bool
	}{
		{"", Classical, false},
		{"classical", Classical, false},
		{"MR", Classical, false},
		{"fastmap", FastMap, false},
		{"position", FastMap, false},
		{" Streamlined ", Streamlined, false},
		{"heap", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseFamily(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFamily(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseFamily(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	for _, f := range Families {
		got, err := ParseFamily(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFamily(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}
}

func TestStringers(t *testing.T) {
	if got := (Code{0, 1, 1, 2}).Join(","); got != "0,1,1,2" {
		t.Errorf("Code.Join() = %q", got)
	}
	if got := (Permutation{0, 3, 1, 2}).Join(" "); got != "0 3 1 2" {
		t.Errorf("Permutation.Join() = %q", got)
	}
	if got := (Permutation{}).Join(","); got != "" {
		t.Errorf("empty Permutation.Join() = %q", got)
	}
	if got := Family(9).String(); got != "Family(9)" {
		t.Errorf("Family(9).String() = %q", got)
	}
}
