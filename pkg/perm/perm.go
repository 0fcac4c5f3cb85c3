package perm

import (
	"iter"
	"slices"
)

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for initializing permutation arrays or creating index sequences.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1.
//
// This is also the size of the code space for permutations of length n.
// Note that factorials grow extremely fast: 21! already overflows int64.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// Generate returns permutations of [0, 1, ..., n-1] using Heap's algorithm.
//
// If limit > 0, Generate returns at most limit permutations.
// If limit <= 0, Generate returns all n! permutations.
//
// Each returned slice is a separate allocation, safe to modify without affecting others.
//
// Generate handles edge cases gracefully:
//   - n = 0: returns [[]] (one empty permutation)
//   - n = 1: returns [[0]] (one single-element permutation)
//
// For n >= 13, the number of permutations exceeds billions. Always use a limit
// when n is large, or your program will exhaust memory.
func Generate(n, limit int) [][]int {
	capacity := limit
	if capacity <= 0 || n <= 12 {
		capacity = Factorial(min(n, 12))
	}
	result := make([][]int, 0, capacity)
	for p := range HeapSeq(n) {
		result = append(result, slices.Clone(p))
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}

// HeapSeq yields every permutation of [0, 1, ..., n-1] in Heap's order.
//
// The yielded slice is reused between iterations; clone it to keep it.
// n = 0 yields one empty permutation, negative n yields nothing.
func HeapSeq(n int) iter.Seq[Permutation] {
	return func(yield func(Permutation) bool) {
		if n < 0 {
			return
		}
		perm := Permutation(Seq(n))
		state := make([]int, n)

		if !yield(perm) {
			return
		}
		for i := 1; i < n; {
			if state[i] < i {
				if i&1 == 0 {
					perm[0], perm[i] = perm[i], perm[0]
				} else {
					perm[state[i]], perm[i] = perm[i], perm[state[i]]
				}
				if !yield(perm) {
					return
				}
				state[i]++
				i = 1
			} else {
				state[i] = 0
				i++
			}
		}
	}
}

// HeapChecksum walks all n! permutations with Heap's algorithm and returns
// the number visited together with the sum of every element of every
// permutation.
func HeapChecksum(n int) (count int, checksum uint64) {
	for p := range HeapSeq(n) {
		count++
		for _, v := range p {
			checksum += uint64(v)
		}
	}
	return count, checksum
}
