package perm

import (
	perrors "github.com/matzehuels/poscode/pkg/errors"
)

// ValueAt returns UnrankClassical(c)[k] without building the permutation.
//
// The permutation maps k to the slot where the forward unrank loop finally
// leaves value k of the inverse view: value k is placed at slot c[k] at step
// k and moves to slot i whenever a later digit c[i] names its current slot.
// Cost is O(n-k).
//
// It fails with INVALID_VALUE unless 0 <= k < len(c). c itself is assumed
// valid.
func ValueAt(c Code, k int) (int, error) {
	if k < 0 || k >= len(c) {
		return 0, perrors.New(perrors.ErrCodeInvalidValue,
			"position %d outside [0, %d)", k, len(c))
	}
	return followForward(c, k), nil
}

// PositionOf returns the index of value x in UnrankClassical(c) without
// building the permutation.
//
// The index is the entry at slot x of the inverse view, which is decided by
// the last step of the forward loop that wrote slot x. Cost is O(n) worst
// case.
//
// It fails with INVALID_VALUE unless 0 <= x < len(c). c itself is assumed
// valid.
func PositionOf(c Code, x int) (int, error) {
	if x < 0 || x >= len(c) {
		return 0, perrors.New(perrors.ErrCodeInvalidValue,
			"value %d outside [0, %d)", x, len(c))
	}
	return traceBackward(c, x), nil
}

// InverseValueAt returns Invert(UnrankClassical(c))[k], the entry at
// position k of the inverse view that the forward unrank loop and
// [Enumerator] produce. It equals PositionOf(c, k).
func InverseValueAt(c Code, k int) (int, error) {
	return PositionOf(c, k)
}

// InversePositionOf returns the index of value x in the inverse view.
// It equals ValueAt(c, x).
func InversePositionOf(c Code, x int) (int, error) {
	return ValueAt(c, x)
}

// followForward starts at digit x and advances to i whenever a later digit
// names the current slot.
func followForward(c Code, x int) int {
	cur := c[x]
	for i := x + 1; i < len(c); i++ {
		if c[i] == cur {
			cur = i
		}
	}
	return cur
}

// traceBackward scans from the last digit down. Above the tracked slot, a
// digit naming the slot means i was the last value moved there. At the slot
// itself, tracking continues from c[i].
func traceBackward(c Code, k int) int {
	target := k
	for i := len(c) - 1; i >= 0; i-- {
		if i > target {
			if c[i] == target {
				return i
			}
		} else if i == target {
			target = c[i]
		}
	}
	return target
}
