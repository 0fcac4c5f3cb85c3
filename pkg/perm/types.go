package perm

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	perrors "github.com/matzehuels/poscode/pkg/errors"
)

// MaxIndexSize is the largest n for which every code index fits in an int.
// 20! = 2,432,902,008,176,640,000 < 2^63.
const MaxIndexSize = 20

// Permutation is an ordering of the values {0, ..., n-1}, each exactly once.
type Permutation []int

// Code is a position code: Code[0] = 0 and 0 <= Code[i] <= i.
//
// It denotes the permutation obtained by swapping positions i and Code[i]
// of the identity, for i from n-1 down to 1.
type Code []int

// Identity returns the identity permutation of length n.
func Identity(n int) Permutation {
	return Permutation(Seq(n))
}

// ZeroCode returns the all-zero code of length n, the first code in
// mixed-radix order.
func ZeroCode(n int) Code {
	return make(Code, max(n, 0))
}

// Clone returns a copy of p.
func (p Permutation) Clone() Permutation { return slices.Clone(p) }

// Clone returns a copy of c.
func (c Code) Clone() Code { return slices.Clone(c) }

// Join formats p with sep between entries, e.g. "0,3,1,2".
func (p Permutation) Join(sep string) string { return joinInts(p, sep) }

// Join formats c with sep between digits, e.g. "0,1,1,2".
func (c Code) Join(sep string) string { return joinInts(c, sep) }

func joinInts(v []int, sep string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, sep)
}

// ValidateCode reports an INVALID_ENCODING error if any digit of c lies
// outside its positional bound.
func ValidateCode(c Code) error {
	for i, v := range c {
		if v < 0 || v > i {
			return perrors.New(perrors.ErrCodeInvalidEncoding,
				"code digit C[%d] = %d outside [0, %d]", i, v, i)
		}
	}
	return nil
}

// ValidatePermutation reports an INVALID_PERMUTATION error unless p contains
// every value of {0, ..., len(p)-1} exactly once.
func ValidatePermutation(p Permutation) error {
	seen := make([]bool, len(p))
	for i, v := range p {
		if v < 0 || v >= len(p) {
			return perrors.New(perrors.ErrCodeInvalidPermutation,
				"value %d at position %d outside [0, %d)", v, i, len(p))
		}
		if seen[v] {
			return perrors.New(perrors.ErrCodeInvalidPermutation,
				"value %d repeated at position %d", v, i)
		}
		seen[v] = true
	}
	return nil
}

// Invert returns the inverse of p, so that Invert(p)[p[i]] == i.
func Invert(p Permutation) Permutation {
	inv := make(Permutation, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// InvertInPlace replaces p by its inverse without extra memory.
//
// Each cycle is walked once; visited entries are marked by storing the
// bitwise complement of their new value, which is negative for every
// non-negative int, and the marks are cleared in a final pass.
func InvertInPlace(p Permutation) {
	for s := range p {
		if p[s] < 0 {
			continue
		}
		prev, cur := s, p[s]
		for cur != s {
			next := p[cur]
			p[cur] = ^prev
			prev, cur = cur, next
		}
		p[s] = ^prev
	}
	for i := range p {
		p[i] = ^p[i]
	}
}

// Index returns the position of c in mixed-radix order, where C[n-1] is the
// least significant digit with radix n. Codes follow the order in which
// [Enumerator] visits them: Index(ZeroCode(n)) == 0.
//
// Index requires a valid code with len(c) <= MaxIndexSize.
func (c Code) Index() int {
	idx := 0
	for i, v := range c {
		idx = idx*(i+1) + v
	}
	return idx
}

// CodeFromIndex returns the code at position idx in mixed-radix order.
// It is the inverse of [Code.Index].
func CodeFromIndex(idx, n int) (Code, error) {
	if n < 0 || n > MaxIndexSize {
		return nil, perrors.New(perrors.ErrCodeInvalidInput,
			"size %d outside [0, %d]", n, MaxIndexSize)
	}
	if idx < 0 || idx >= Factorial(n) {
		return nil, perrors.New(perrors.ErrCodeInvalidValue,
			"index %d outside [0, %d!)", idx, n)
	}
	c := make(Code, n)
	for i := n - 1; i > 0; i-- {
		c[i] = idx % (i + 1)
		idx /= i + 1
	}
	return c, nil
}

// Family selects one of the rank/unrank implementations.
type Family int

const (
	Classical Family = iota
	FastMap
	Streamlined
)

// Families lists every Family in declaration order.
var Families = []Family{Classical, FastMap, Streamlined}

func (f Family) String() string {
	switch f {
	case Classical:
		return "classical"
	case FastMap:
		return "fastmap"
	case Streamlined:
		return "streamlined"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily parses a family name as printed by [Family.String].
// The empty string selects Classical.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classical", "mr":
		return Classical, nil
	case "fastmap", "fast-map", "position":
		return FastMap, nil
	case "streamlined", "pure":
		return Streamlined, nil
	}
	return 0, perrors.New(perrors.ErrCodeInvalidInput,
		"unknown family %q (want classical, fastmap or streamlined)", s)
}

// Unrank validates c and returns its permutation computed by family f.
func Unrank(f Family, c Code) (Permutation, error) {
	if err := ValidateCode(c); err != nil {
		return nil, err
	}
	d := make(Permutation, len(c))
	switch f {
	case Classical:
		UnrankClassical(c, d)
	case FastMap:
		if err := NewWorkspace(len(c)).UnrankFastMap(c, d); err != nil {
			return nil, err
		}
	case Streamlined:
		UnrankStreamlined(c, d)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "unknown family %v", f)
	}
	return d, nil
}

// Rank validates d and returns its code computed by family f.
// d is not modified.
func Rank(f Family, d Permutation) (Code, error) {
	if err := ValidatePermutation(d); err != nil {
		return nil, err
	}
	c := make(Code, len(d))
	switch f {
	case Classical:
		RankClassical(d, c)
	case FastMap:
		if err := NewWorkspace(len(d)).RankFastMap(d, c); err != nil {
			return nil, err
		}
	case Streamlined:
		RankStreamlined(d, c)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "unknown family %v", f)
	}
	return c, nil
}
