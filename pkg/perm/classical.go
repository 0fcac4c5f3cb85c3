package perm

// UnrankClassical writes the permutation of c into d, which must have the
// same length. d is initialized to the identity and then position i is
// swapped with position c[i] for i from n-1 down to 1.
//
// The input is not validated; see [ValidateCode] and [Unrank].
func UnrankClassical(c Code, d Permutation) {
	n := len(c)
	for i := 0; i < n; i++ {
		d[i] = i
	}
	for i := n - 1; i >= 1; i-- {
		k := c[i]
		d[i], d[k] = d[k], d[i]
	}
}

// RankClassical writes the code of d into c, which must have the same
// length. d is not modified.
//
// The permutation is taken apart in the reverse order UnrankClassical built
// it: for k from n down to 2, the value at position k-1 is recorded as the
// digit and then swapped back to its identity position, keeping an inverse
// permutation in step so that each swap is O(1).
//
// The input is not validated; see [ValidatePermutation] and [Rank].
func RankClassical(d Permutation, c Code) {
	n := len(d)
	if n == 0 {
		return
	}
	pi := d.Clone()
	inv := make([]int, n)
	for i, v := range pi {
		inv[v] = i
	}
	for k := n; k > 1; k-- {
		s := pi[k-1]
		c[k-1] = s
		pi[k-1], pi[inv[k-1]] = pi[inv[k-1]], pi[k-1]
		inv[s], inv[k-1] = inv[k-1], inv[s]
	}
	c[0] = 0
}
