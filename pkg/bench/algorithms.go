package bench

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/poscode/pkg/errors"
	"github.com/matzehuels/poscode/pkg/perm"
)

// ctxCheckMask sets how often hot loops poll for cancellation.
const ctxCheckMask = 1<<16 - 1

// runFunc processes every permutation of size n once.
type runFunc func(ctx context.Context, n int, seed int64) (count int, checksum uint64, err error)

func runnerFor(a Algorithm) runFunc {
	switch a {
	case Enumerate:
		return runEnumerate
	case Heap:
		return runHeap
	case Classical:
		return codecRun(classicalCodec)
	case FastMap:
		return codecRun(fastMapCodec)
	case Streamlined:
		return codecRun(streamlinedCodec)
	case Lookup:
		return runLookup
	}
	return nil
}

func runEnumerate(ctx context.Context, n int, _ int64) (int, uint64, error) {
	e, err := perm.NewEnumerator(n)
	if err != nil {
		return 0, 0, err
	}
	for e.Next() {
		if e.Count()&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return 0, 0, err
			}
		}
	}
	return e.Count(), e.Checksum(), nil
}

func runHeap(ctx context.Context, n int, _ int64) (int, uint64, error) {
	var count int
	var sum uint64
	for p := range perm.HeapSeq(n) {
		for _, v := range p {
			sum += uint64(v)
		}
		count++
		if count&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return 0, 0, err
			}
		}
	}
	return count, sum, nil
}

// codec is one rank/unrank family bound to reusable buffers.
type codec struct {
	unrank func(perm.Code, perm.Permutation) error
	rank   func(perm.Permutation, perm.Code) error
}

func classicalCodec(int) codec {
	return codec{
		unrank: func(c perm.Code, d perm.Permutation) error { perm.UnrankClassical(c, d); return nil },
		rank:   func(d perm.Permutation, c perm.Code) error { perm.RankClassical(d, c); return nil },
	}
}

func fastMapCodec(n int) codec {
	ws := perm.NewWorkspace(n)
	return codec{unrank: ws.UnrankFastMap, rank: ws.RankFastMap}
}

func streamlinedCodec(int) codec {
	return codec{
		unrank: func(c perm.Code, d perm.Permutation) error { perm.UnrankStreamlined(c, d); return nil },
		rank:   func(d perm.Permutation, c perm.Code) error { perm.RankStreamlined(d, c); return nil },
	}
}

// codecRun unranks every code in shuffled index order, ranks the result
// back and checks that the round trip is exact.
func codecRun(newCodec func(n int) codec) runFunc {
	return func(ctx context.Context, n int, seed int64) (int, uint64, error) {
		cd := newCodec(n)
		c := make(perm.Code, n)
		back := make(perm.Code, n)
		d := make(perm.Permutation, n)
		w := newIndexWalk(n, seed)

		var sum uint64
		for i := 0; i < w.total; i++ {
			decodeIndex(w.next(), c)
			if err := cd.unrank(c, d); err != nil {
				return 0, 0, err
			}
			if err := cd.rank(d, back); err != nil {
				return 0, 0, err
			}
			if !slices.Equal(c, back) {
				return 0, 0, errors.New(errors.ErrCodeInternal,
					"round trip failed: %v -> %v -> %v", c, d, back)
			}
			sum += uint64(d[n-1])
			if i&ctxCheckMask == 0 {
				if err := ctx.Err(); err != nil {
					return 0, 0, err
				}
			}
		}
		return w.total, sum, nil
	}
}

// runLookup decodes one position per code and locates its value again.
func runLookup(ctx context.Context, n int, seed int64) (int, uint64, error) {
	c := make(perm.Code, n)
	w := newIndexWalk(n, seed)

	var sum uint64
	for i := 0; i < w.total; i++ {
		idx := w.next()
		decodeIndex(idx, c)
		k := idx % n
		v, err := perm.ValueAt(c, k)
		if err != nil {
			return 0, 0, err
		}
		p, err := perm.PositionOf(c, v)
		if err != nil {
			return 0, 0, err
		}
		if p != k {
			return 0, 0, errors.New(errors.ErrCodeInternal,
				"lookup mismatch for %v: value-at(%d) = %d but position-of(%d) = %d", c, k, v, v, p)
		}
		sum += uint64(v)
		if i&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return 0, 0, err
			}
		}
	}
	return w.total, sum, nil
}

// indexWalk visits every code index in [0, n!) exactly once in a
// seed-dependent order: idx_{i+1} = (idx_i + stride) mod n!. Any prime
// stride greater than n is coprime to n!, so the walk is a full cycle.
type indexWalk struct {
	total  int
	stride int
	idx    int
}

func newIndexWalk(n int, seed int64) *indexWalk {
	total := perm.Factorial(n)
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(n)))
	w := &indexWalk{
		total:  total,
		stride: nextPrime(n+1+rng.IntN(64)) % total,
		idx:    rng.IntN(total),
	}
	return w
}

func (w *indexWalk) next() int {
	idx := w.idx
	w.idx += w.stride
	if w.idx >= w.total {
		w.idx -= w.total
	}
	return idx
}

func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	for p := n | 1; ; p += 2 {
		if isPrime(p) {
			return p
		}
	}
}

func isPrime(p int) bool {
	if p < 2 {
		return false
	}
	for q := 2; q*q <= p; q++ {
		if p%q == 0 {
			return false
		}
	}
	return true
}

// decodeIndex writes the code at mixed-radix index idx into c.
func decodeIndex(idx int, c perm.Code) {
	for i := len(c) - 1; i > 0; i-- {
		c[i] = idx % (i + 1)
		idx /= i + 1
	}
	if len(c) > 0 {
		c[0] = 0
	}
}
