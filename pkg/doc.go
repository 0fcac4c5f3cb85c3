// Package pkg provides the libraries behind poscode.
//
// # Overview
//
// poscode converts permutations of {0, ..., n-1} to and from position codes,
// integer vectors C with C[0] = 0 and 0 <= C[i] <= i. The pkg directory is
// organized into a core package and its supporting infrastructure:
//
//  1. [perm] - Codes, the three rank/unrank families, lookups and enumerators
//  2. [bench] - Timed runs over a full code space, reports and self-checks
//  3. [cache] - Report caching (file, Redis, null) and cache key derivation
//  4. [errors] - Structured error codes shared by the library, CLI and API
//  5. [observability] - Hooks for benchmark, cache and HTTP events
//  6. [buildinfo] - Version information stamped into reports
//
// # Architecture
//
// The typical data flow through a benchmark:
//
//	bench.Options
//	     ↓
//	[bench] Runner (cache lookup by build and settings)
//	     ↓
//	[perm] Enumerator / HeapSeq / Unrank + Rank over n! codes
//	     ↓
//	bench.Report → REPORT_START ... REPORT_END text, cached as JSON
//
// # Quick Start
//
// Decode a code and answer lookups without decoding:
//
//	import "github.com/matzehuels/poscode/pkg/perm"
//
//	d, _ := perm.Unrank(perm.Streamlined, perm.Code{0, 1, 1, 2}) // [0 3 1 2]
//	c, _ := perm.Rank(perm.Classical, d)                           // [0 1 1 2]
//	v, _ := perm.ValueAt(c, 1)                                     // 3
//
// Enumerate every permutation of size 4:
//
//	e, _ := perm.NewEnumerator(4)
//	for e.Next() {
//	    fmt.Println(e.Permutation())
//	}
//
// [perm]: github.com/matzehuels/poscode/pkg/perm
// [bench]: github.com/matzehuels/poscode/pkg/bench
// [cache]: github.com/matzehuels/poscode/pkg/cache
// [errors]: github.com/matzehuels/poscode/pkg/errors
// [observability]: github.com/matzehuels/poscode/pkg/observability
// [buildinfo]: github.com/matzehuels/poscode/pkg/buildinfo
package pkg
