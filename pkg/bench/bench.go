// Package bench measures the rank/unrank families, the lookups and the
// enumerators over complete code spaces.
//
// Every algorithm processes all n! permutations once per iteration and folds
// them into a checksum so the work cannot be optimized away. For the unrank
// families and the incremental enumerator the checksum is the sum of the
// value at the last position of every permutation, which is
// (n-1)! * n(n-1)/2; Heap's algorithm sums every element of every
// permutation instead, giving n! * n(n-1)/2.
//
// # Usage
//
//	r := bench.NewRunner(cache.NewNullCache(), nil, logger)
//	report, cached, err := r.Run(ctx, bench.Options{Algorithm: "fastmap", Size: 10})
//	report.WriteText(os.Stdout)
package bench

import (
	"slices"
	"time"

	"github.com/matzehuels/poscode/pkg/errors"
	"github.com/matzehuels/poscode/pkg/perm"
)

// Algorithm names a benchmarked routine.
type Algorithm string

// Available algorithms.
const (
	Enumerate   Algorithm = "enumerate"
	Heap        Algorithm = "heap"
	Classical   Algorithm = "classical"
	FastMap     Algorithm = "fastmap"
	Streamlined Algorithm = "streamlined"
	Lookup      Algorithm = "lookup"
)

// Algorithms lists every algorithm in report order.
var Algorithms = []Algorithm{Enumerate, Heap, Classical, FastMap, Streamlined, Lookup}

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	if !slices.Contains(Algorithms, a) {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown algorithm %q", s)
	}
	return a, nil
}

// NoPin disables CPU pinning in Options.CPU.
const NoPin = -1

// Options configures one benchmark run.
type Options struct {
	Algorithm  Algorithm
	Size       int
	Iterations int
	Seed       int64
	CPU        int  // CPU to pin the measuring thread to, or NoPin
	Refresh    bool // ignore cached reports
}

// ValidateAndSetDefaults fills zero values and checks ranges.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Iterations == 0 {
		o.Iterations = 1
	}
	if o.Seed == 0 {
		o.Seed = 1
	}
	if _, err := ParseAlgorithm(string(o.Algorithm)); err != nil {
		return err
	}
	if err := errors.ValidateSize(o.Size, perm.MaxIndexSize); err != nil {
		return err
	}
	if o.Size < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "size must be positive")
	}
	if o.Iterations < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "iterations cannot be negative: %d", o.Iterations)
	}
	if o.CPU < NoPin {
		return errors.New(errors.ErrCodeInvalidInput, "invalid cpu %d", o.CPU)
	}
	return nil
}

// Report is the outcome of a run.
type Report struct {
	RunID        string        `json:"run_id"`
	Algorithm    Algorithm     `json:"algorithm"`
	Size         int           `json:"size"`
	Iterations   int           `json:"iterations"`
	Permutations int           `json:"permutations"` // per iteration
	Checksum     uint64        `json:"checksum"`     // of the last iteration
	Duration     time.Duration `json:"duration"`     // fastest iteration
	Total        time.Duration `json:"total"`
	CPU          int           `json:"cpu"`
	Pinned       bool          `json:"pinned"`
	StartedAt    time.Time     `json:"started_at"`
	Version      string        `json:"version"`
}

// PerPermutation returns the average cost of one permutation in the fastest
// iteration.
func (r *Report) PerPermutation() time.Duration {
	if r.Permutations == 0 {
		return 0
	}
	return r.Duration / time.Duration(r.Permutations)
}
