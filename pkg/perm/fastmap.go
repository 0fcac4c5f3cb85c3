package perm

import (
	perrors "github.com/matzehuels/poscode/pkg/errors"
)

// Workspace owns the chase map used by the fast-map family.
//
// The map is re-seeded or fully overwritten at the start of every call, so
// no state carries over between calls. Its size must match the input size;
// use [Workspace.Resize] when switching sizes. A Workspace is not safe for
// concurrent use.
type Workspace struct {
	m []int
}

// NewWorkspace returns a workspace for inputs of length n.
func NewWorkspace(n int) *Workspace {
	return &Workspace{m: make([]int, max(n, 0))}
}

// Size returns the input length the workspace is sized for.
func (w *Workspace) Size() int { return len(w.m) }

// Resize adjusts the workspace to inputs of length n, reusing the backing
// array when it is large enough.
func (w *Workspace) Resize(n int) {
	n = max(n, 0)
	if cap(w.m) >= n {
		w.m = w.m[:n]
		return
	}
	w.m = make([]int, n)
}

func (w *Workspace) check(a, b int) error {
	if a != len(w.m) || b != len(w.m) {
		return perrors.New(perrors.ErrCodeSizeMismatch,
			"workspace sized for %d, got input %d and output %d", len(w.m), a, b)
	}
	return nil
}

// UnrankFastMap writes the permutation of c into d in one forward scan.
//
// The chase map M holds the inverse view of the permutation built so far:
// M[p] is the value that d will eventually map to position p. Step i
// relocates the occupant of slot c[i] to slot i and records the move in d.
// M is seeded with the identity first, so a step with c[i] == i reads a
// defined entry.
//
// The result equals UnrankClassical(c, d). It fails with SIZE_MISMATCH if
// c, d and the workspace disagree in length. c is not validated.
func (w *Workspace) UnrankFastMap(c Code, d Permutation) error {
	if err := w.check(len(c), len(d)); err != nil {
		return err
	}
	m := w.m
	for i := range m {
		m[i] = i
	}
	copy(d, c)
	for i, ci := range c {
		v := m[ci]
		m[i] = v
		m[ci] = i
		d[v] = i
	}
	return nil
}

// RankFastMap writes the code of d into c.
//
// M is first overwritten with the inverse of d. A reverse pass then undoes
// the chain one step at a time, using c itself as the working copy of the
// permutation: c[i] already holds the digit when step i is reached, and only
// the partner slot c[M[i]] and the map entry of the moved value are
// rewritten. d is not modified.
//
// It fails with SIZE_MISMATCH if d, c and the workspace disagree in length.
// d is not validated.
func (w *Workspace) RankFastMap(d Permutation, c Code) error {
	if err := w.check(len(d), len(c)); err != nil {
		return err
	}
	m := w.m
	copy(c, d)
	for i, v := range c {
		m[v] = i
	}
	for i := len(c) - 1; i >= 0; i-- {
		c[m[i]] = c[i]
		m[c[i]] = m[i]
	}
	return nil
}
