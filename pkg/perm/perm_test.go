package perm

import (
	"slices"
	"testing"
)

func TestSeq(t *testing.T) {
	if got := Seq(4); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("Seq(4) = %v, want [0 1 2 3]", got)
	}
	if got := Seq(0); len(got) != 0 {
		t.Errorf("Seq(0) = %v, want empty", got)
	}
	if got := Seq(-3); len(got) != 0 {
		t.Errorf("Seq(-3) = %v, want empty", got)
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{4, 24},
		{8, 40320},
		{12, 479001600},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		if got := Factorial(tt.n); got != tt.want {
			t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestGenerate_EdgeCases(t *testing.T) {
	perms := Generate(0, 0)
	if len(perms) != 1 || len(perms[0]) != 0 {
		t.Errorf("Generate(0) = %v, want one empty permutation", perms)
	}

	perms = Generate(1, 0)
	if len(perms) != 1 || !slices.Equal(perms[0], []int{0}) {
		t.Errorf("Generate(1) = %v, want [[0]]", perms)
	}
}

func TestGenerate_Limit(t *testing.T) {
	if perms := Generate(10, 5); len(perms) != 5 {
		t.Errorf("Generate(10, 5) returned %d permutations, want 5", len(perms))
	}
}

func TestGenerate_Distinct(t *testing.T) {
	for n := 1; n <= 7; n++ {
		perms := Generate(n, -1)
		if len(perms) != Factorial(n) {
			t.Errorf("n=%d: got %d permutations, want %d", n, len(perms), Factorial(n))
		}
		seen := make(map[string]bool, len(perms))
		for _, p := range perms {
			if err := ValidatePermutation(p); err != nil {
				t.Fatalf("n=%d: %v", n, err)
			}
			key := Permutation(p).Join(",")
			if seen[key] {
				t.Errorf("n=%d: duplicate permutation %v", n, p)
			}
			seen[key] = true
		}
	}
}

func TestHeapSeq_EarlyStop(t *testing.T) {
	count := 0
	for range HeapSeq(5) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("visited %d permutations, want 3", count)
	}

	for range HeapSeq(-1) {
		t.Fatal("HeapSeq(-1) should yield nothing")
	}
}

func TestHeapChecksum(t *testing.T) {
	// Every value appears once per permutation: n! * n(n-1)/2.
	for n := 0; n <= 7; n++ {
		count, sum := HeapChecksum(n)
		if count != Factorial(n) {
			t.Errorf("n=%d: count = %d, want %d", n, count, Factorial(n))
		}
		want := uint64(Factorial(n) * n * (n - 1) / 2)
		if sum != want {
			t.Errorf("n=%d: checksum = %d, want %d", n, sum, want)
		}
	}
}
