// Package perm implements position codes: a bijection between the
// permutations of {0, ..., n-1} and integer vectors C with C[0] = 0 and
// 0 <= C[i] <= i, together with algorithms that enumerate all n!
// permutations by walking the code space.
//
// # Overview
//
// A [Code] denotes the transposition chain (i, C[i]) for i = n-1 down to 1,
// applied to the identity permutation. The code space has
// 1 × 2 × ... × n = n! points, one per [Permutation]:
//
//	C = [0 1 1 2]
//	identity       [0 1 2 3]
//	swap(3, 2)  -> [0 1 3 2]
//	swap(2, 1)  -> [0 3 1 2]
//	swap(1, 1)  -> [0 3 1 2] = D
//
// # Rank and Unrank
//
// Three families convert between a code and its permutation. They share the
// same code domain and produce identical permutations:
//
//   - Classical: [UnrankClassical] and [RankClassical], the reverse-scan
//     transposition chain with an explicit inverse permutation
//   - Fast-map: [Workspace.UnrankFastMap] and [Workspace.RankFastMap], a
//     forward scan that tracks relocations in a reusable chase map owned by
//     a [Workspace]
//   - Streamlined: [UnrankStreamlined] and [RankStreamlined], a single
//     forward pass that uses the output slice itself as chase structure
//
// The two-argument forms write into caller-owned buffers and perform no
// validation. [Unrank] and [Rank] validate their input, allocate the result
// and dispatch on a [Family].
//
// # Lookups
//
// [ValueAt] and [PositionOf] answer a single-entry question about the
// permutation of a code in O(n) without materializing it.
//
// # Enumeration
//
// [Enumerator] visits every code in mixed-radix order (last digit fastest)
// and keeps one permutation array up to date incrementally, so a step costs
// far less than a fresh unrank. Permutations come out in the inverse view:
// for the current [Enumerator.Code] c, [Enumerator.Permutation] equals
// Invert(UnrankClassical(c)). Over a full run that is still every
// permutation exactly once. [All] wraps it as an iter.Seq.
//
// [Generate] and [HeapSeq] implement Heap's algorithm and serve as an
// independent oracle for the enumerator.
//
// # Concurrency
//
// Functions without a [Workspace] are safe for concurrent use on distinct
// buffers. A Workspace must not be shared between goroutines; give each
// goroutine its own.
package perm
