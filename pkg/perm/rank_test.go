package perm

import (
	"slices"
	"testing"

	perrors "github.com/matzehuels/poscode/pkg/errors"
)

// allCodes returns every code of size n in mixed-radix order.
func allCodes(t *testing.T, n int) []Code {
	t.Helper()
	codes := make([]Code, 0, Factorial(n))
	for idx := 0; idx < Factorial(n); idx++ {
		c, err := CodeFromIndex(idx, n)
		if err != nil {
			t.Fatalf("CodeFromIndex(%d, %d): %v", idx, n, err)
		}
		codes = append(codes, c)
	}
	return codes
}

func TestUnrank_ConcreteExample(t *testing.T) {
	c := Code{0, 1, 1, 2}
	want := Permutation{0, 3, 1, 2}

	for _, f := range Families {
		t.Run(f.String(), func(t *testing.T) {
			d, err := Unrank(f, c)
			if err != nil {
				t.Fatalf("Unrank: %v", err)
			}
			if !slices.Equal(d, want) {
				t.Errorf("Unrank(%v) = %v, want %v", c, d, want)
			}

			back, err := Rank(f, d)
			if err != nil {
				t.Fatalf("Rank: %v", err)
			}
			if !slices.Equal(back, c) {
				t.Errorf("Rank(%v) = %v, want %v", d, back, c)
			}
		})
	}
}

func TestUnrank_Boundaries(t *testing.T) {
	for _, f := range Families {
		t.Run(f.String(), func(t *testing.T) {
			d, err := Unrank(f, Code{})
			if err != nil || len(d) != 0 {
				t.Errorf("Unrank(empty) = %v, %v; want empty permutation", d, err)
			}
			c, err := Rank(f, Permutation{})
			if err != nil || len(c) != 0 {
				t.Errorf("Rank(empty) = %v, %v; want empty code", c, err)
			}

			d, err = Unrank(f, Code{0})
			if err != nil || !slices.Equal(d, Permutation{0}) {
				t.Errorf("Unrank([0]) = %v, %v; want [0]", d, err)
			}
			c, err = Rank(f, Permutation{0})
			if err != nil || !slices.Equal(c, Code{0}) {
				t.Errorf("Rank([0]) = %v, %v; want [0]", c, err)
			}
		})
	}
}

func TestRoundTrip_CodeToPermutation(t *testing.T) {
	for _, f := range Families {
		t.Run(f.String(), func(t *testing.T) {
			for n := 1; n <= 8; n++ {
				for _, c := range allCodes(t, n) {
					d, err := Unrank(f, c)
					if err != nil {
						t.Fatalf("Unrank(%v): %v", c, err)
					}
					if err := ValidatePermutation(d); err != nil {
						t.Fatalf("Unrank(%v) = %v is not a permutation: %v", c, d, err)
					}
					back, err := Rank(f, d)
					if err != nil {
						t.Fatalf("Rank(%v): %v", d, err)
					}
					if !slices.Equal(back, c) {
						t.Fatalf("Rank(Unrank(%v)) = %v", c, back)
					}
				}
			}
		})
	}
}

func TestRoundTrip_PermutationToCode(t *testing.T) {
	for _, f := range Families {
		t.Run(f.String(), func(t *testing.T) {
			for n := 1; n <= 8; n++ {
				for p := range HeapSeq(n) {
					c, err := Rank(f, p)
					if err != nil {
						t.Fatalf("Rank(%v): %v", p, err)
					}
					if err := ValidateCode(c); err != nil {
						t.Fatalf("Rank(%v) = %v is not a code: %v", p, c, err)
					}
					d, err := Unrank(f, c)
					if err != nil {
						t.Fatalf("Unrank(%v): %v", c, err)
					}
					if !slices.Equal(d, p) {
						t.Fatalf("Unrank(Rank(%v)) = %v", p, d)
					}
				}
			}
		})
	}
}

func TestFamiliesAgree(t *testing.T) {
	for n := 1; n <= 8; n++ {
		ws := NewWorkspace(n)
		classical := make(Permutation, n)
		fast := make(Permutation, n)
		streamlined := make(Permutation, n)
		rc := make(Code, n)
		rf := make(Code, n)
		rs := make(Code, n)

		for _, c := range allCodes(t, n) {
			UnrankClassical(c, classical)
			if err := ws.UnrankFastMap(c, fast); err != nil {
				t.Fatalf("UnrankFastMap: %v", err)
			}
			UnrankStreamlined(c, streamlined)
			if !slices.Equal(classical, fast) || !slices.Equal(classical, streamlined) {
				t.Fatalf("code %v: classical %v, fastmap %v, streamlined %v", c, classical, fast, streamlined)
			}

			RankClassical(classical, rc)
			if err := ws.RankFastMap(classical, rf); err != nil {
				t.Fatalf("RankFastMap: %v", err)
			}
			RankStreamlined(classical, rs)
			if !slices.Equal(rc, rf) || !slices.Equal(rc, rs) {
				t.Fatalf("perm %v: classical %v, fastmap %v, streamlined %v", classical, rc, rf, rs)
			}
		}
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	p := Permutation{2, 0, 3, 1}
	orig := p.Clone()
	c := make(Code, len(p))

	RankClassical(p, c)
	if err := NewWorkspace(len(p)).RankFastMap(p, c); err != nil {
		t.Fatal(err)
	}
	RankStreamlined(p, c)

	if !slices.Equal(p, orig) {
		t.Errorf("rank modified its input: %v, want %v", p, orig)
	}
}

func TestUnrank_InvalidCode(t *testing.T) {
	for _, f := range Families {
		_, err := Unrank(f, Code{0, 2})
		if !perrors.Is(err, perrors.ErrCodeInvalidEncoding) {
			t.Errorf("%v: Unrank([0 2]) error = %v, want INVALID_ENCODING", f, err)
		}
	}
}

func TestRank_InvalidPermutation(t *testing.T) {
	for _, f := range Families {
		_, err := Rank(f, Permutation{1, 1, 0})
		if !perrors.Is(err, perrors.ErrCodeInvalidPermutation) {
			t.Errorf("%v: Rank([1 1 0]) error = %v, want INVALID_PERMUTATION", f, err)
		}
	}
}

func TestUnknownFamily(t *testing.T) {
	if _, err := Unrank(Family(42), Code{0}); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("Unrank with unknown family: %v", err)
	}
	if _, err := Rank(Family(42), Permutation{0}); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("Rank with unknown family: %v", err)
	}
}
