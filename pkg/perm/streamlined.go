package perm

// UnrankStreamlined writes the permutation of c into d using d itself as
// the chase structure.
//
// d is seeded with the identity so that every read in the forward pass
// observes a written slot. The pass d[i] = d[c[i]]; d[c[i]] = i builds the
// inverse view of the permutation, which is then turned around with
// [InvertInPlace]. The result equals UnrankClassical(c, d).
//
// The input is not validated; see [ValidateCode] and [Unrank].
func UnrankStreamlined(c Code, d Permutation) {
	for i := range d {
		d[i] = i
	}
	for i, a := range c {
		d[i] = d[a]
		d[a] = i
	}
	InvertInPlace(d)
}

// RankStreamlined writes the code of d into c. d is not modified.
//
// Two scratch arrays are used: p, the inverse view of d being taken apart,
// and m, its inverse, which starts out as a copy of d. For i from n-1 down
// to 0, the digit is the slot holding value i in p, and one assignment on
// each array undoes step i.
//
// The input is not validated; see [ValidatePermutation] and [Rank].
func RankStreamlined(d Permutation, c Code) {
	m := d.Clone()
	p := make([]int, len(d))
	for i, v := range d {
		p[v] = i
	}
	for i := len(d) - 1; i >= 0; i-- {
		c[i] = m[i]
		p[m[i]] = p[i]
		m[p[i]] = m[i]
	}
}
