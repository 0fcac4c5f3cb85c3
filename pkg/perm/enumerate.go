package perm

import (
	"iter"

	perrors "github.com/matzehuels/poscode/pkg/errors"
)

// Enumerator visits every permutation of {0, ..., n-1} exactly once.
//
// Codes are visited in mixed-radix order with the last digit varying
// fastest, so the k-th permutation (counting from zero) belongs to the code
// with Index() == k. Digits c[0..n-2] form the stored counter; the last
// digit is handled by rolling value n-1 through every slot of a settled
// prefix. Only the steps beyond the frontier of the last carry are redone,
// and each carry patches the slot its digit had closed off.
//
// The permutation returned by [Enumerator.Permutation] is the inverse view:
// Invert(UnrankClassical(e.Code())).
//
// An Enumerator is not safe for concurrent use.
type Enumerator struct {
	n        int
	c        Code
	d        Permutation
	frontier int // steps [0, frontier) of the forward loop are applied to d
	slot     int // slot holding n-1 in the current emission
	count    int
	sum      uint64
	started  bool
	done     bool
}

// NewEnumerator returns an enumerator positioned before the first
// permutation of size n. It fails with INVALID_INPUT for negative n.
func NewEnumerator(n int) (*Enumerator, error) {
	if n < 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "size cannot be negative: %d", n)
	}
	e := &Enumerator{
		n: n,
		c: make(Code, n),
		d: make(Permutation, n),
	}
	e.Reset()
	return e, nil
}

// Reset rewinds the enumerator to its initial state.
func (e *Enumerator) Reset() {
	clear(e.c)
	for i := range e.d {
		e.d[i] = i
	}
	e.frontier = 0
	e.slot = 0
	e.count = 0
	e.sum = 0
	e.started = false
	e.done = false
}

// Size returns n.
func (e *Enumerator) Size() int { return e.n }

// Next advances to the next permutation. It returns false once all n!
// permutations have been visited.
func (e *Enumerator) Next() bool {
	if e.done {
		return false
	}
	n := e.n
	if n < 2 {
		// The empty permutation and [0] are their own single emission.
		if e.started {
			e.done = true
			return false
		}
		e.started = true
		e.count = 1
		return true
	}

	last := n - 1
	if e.started {
		e.d[e.slot] = e.d[last]
		e.slot++
		if e.slot == n {
			if !e.advance() {
				e.done = true
				return false
			}
			e.slot = 0
		}
	} else {
		e.started = true
	}

	if e.slot == 0 {
		e.settle()
	}
	e.d[last] = e.d[e.slot]
	e.d[e.slot] = last
	e.c[last] = e.slot
	e.sum += uint64(e.d[last])
	e.count++
	return true
}

// settle applies the forward unrank steps from the frontier up to n-2.
func (e *Enumerator) settle() {
	c, d := e.c, e.d
	for i := e.frontier; i < e.n-1; i++ {
		a := c[i]
		d[i] = d[a]
		d[a] = i
	}
	e.frontier = e.n - 1
}

// advance undoes step n-2, increments the counter and propagates carries,
// undoing one more step per carried digit. It reports false when the carry
// reaches c[0], which is fixed at zero.
func (e *Enumerator) advance() bool {
	c, d := e.c, e.d
	i := e.n - 2
	d[c[i]] = d[i]
	c[i]++
	for ; i > 0 && c[i] > i; i-- {
		c[i] = 0
		c[i-1]++
		d[c[i-1]-1] = d[i-1]
	}
	e.frontier = i
	return c[0] < 1
}

// Permutation returns the current permutation. The slice is owned by the
// enumerator and is overwritten by the next call to Next; clone it to keep
// it.
func (e *Enumerator) Permutation() Permutation { return e.d }

// Code returns the code of the current position in mixed-radix order. Like
// Permutation, the slice is borrowed.
func (e *Enumerator) Code() Code { return e.c }

// Count returns how many permutations have been visited so far.
func (e *Enumerator) Count() int { return e.count }

// Checksum returns the sum, over all visited permutations, of the value
// displaced from the slot that received n-1. It is the checksum reported by
// the benchmark harness and is only meaningful for comparing runs.
func (e *Enumerator) Checksum() uint64 { return e.sum }

// All yields the remaining permutations. The yielded slice is borrowed.
func (e *Enumerator) All() iter.Seq[Permutation] {
	return func(yield func(Permutation) bool) {
		for e.Next() {
			if !yield(e.d) {
				return
			}
		}
	}
}

// All yields every permutation of size n in enumeration order. The yielded
// slice is reused between iterations; clone it to keep it. Negative n
// yields nothing.
func All(n int) iter.Seq[Permutation] {
	return func(yield func(Permutation) bool) {
		e, err := NewEnumerator(n)
		if err != nil {
			return
		}
		e.All()(yield)
	}
}

// Collect returns every permutation of size n as separate allocations.
//
// If limit > 0, at most limit permutations are returned.
func Collect(n, limit int) []Permutation {
	var out []Permutation
	if n <= 12 && limit <= 0 {
		out = make([]Permutation, 0, Factorial(max(n, 0)))
	}
	for p := range All(n) {
		out = append(out, p.Clone())
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
