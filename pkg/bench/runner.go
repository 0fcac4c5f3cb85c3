package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/poscode/pkg/buildinfo"
	"github.com/matzehuels/poscode/pkg/cache"
	"github.com/matzehuels/poscode/pkg/errors"
	"github.com/matzehuels/poscode/pkg/observability"
)

// Runner executes benchmarks and caches their reports.
// Both the CLI and the HTTP API use it.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can share one Runner. Each run owns its own workspaces.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.DefaultTTL,
	}
}

// Run executes one benchmark, replaying a cached report when one exists for
// identical options and the same build. The second result reports whether
// the report came from the cache.
//
// If pinning is requested but unsupported on this platform, the run
// proceeds unpinned after a warning.
func (r *Runner) Run(ctx context.Context, opts Options) (*Report, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}

	key := r.Keyer.ReportKey(cache.ReportKeyOpts{
		Algorithm:  string(opts.Algorithm),
		Size:       opts.Size,
		Iterations: opts.Iterations,
		Seed:       opts.Seed,
		CPU:        opts.CPU,
		Version:    buildinfo.Fingerprint(),
	})

	if !opts.Refresh {
		if rep, ok := r.cached(ctx, key); ok {
			observability.Cache().OnCacheHit(ctx, "report")
			r.Logger.Debug("replaying cached report", "algorithm", opts.Algorithm, "size", opts.Size, "run_id", rep.RunID)
			return rep, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "report")
	}

	observability.Bench().OnRunStart(ctx, string(opts.Algorithm), opts.Size)
	rep, err := Execute(ctx, opts)
	if errors.Is(err, errors.ErrCodeUnsupported) {
		r.Logger.Warn("cpu pinning unavailable, running unpinned", "cpu", opts.CPU, "err", errors.UserMessage(err))
		opts.CPU = NoPin
		rep, err = Execute(ctx, opts)
	}
	if err != nil {
		observability.Bench().OnRunComplete(ctx, string(opts.Algorithm), opts.Size, 0, 0, err)
		return nil, false, err
	}
	observability.Bench().OnRunComplete(ctx, string(opts.Algorithm), opts.Size, rep.Permutations, rep.Total, nil)

	r.Logger.Info("benchmark complete",
		"algorithm", rep.Algorithm,
		"size", rep.Size,
		"permutations", rep.Permutations,
		"duration", rep.Duration)

	if data, err := json.Marshal(rep); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("failed to cache report", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "report", len(data))
		}
	}
	return rep, false, nil
}

// RunAll runs each algorithm with otherwise identical options, stopping at
// the first error.
func (r *Runner) RunAll(ctx context.Context, algorithms []Algorithm, base Options) ([]*Report, error) {
	reports := make([]*Report, 0, len(algorithms))
	for _, a := range algorithms {
		opts := base
		opts.Algorithm = a
		rep, _, err := r.Run(ctx, opts)
		if err != nil {
			return reports, fmt.Errorf("%s: %w", a, err)
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

func (r *Runner) cached(ctx context.Context, key string) (*Report, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return nil, false
	}
	if !hit {
		return nil, false
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, false
	}
	return &rep, true
}

// Execute runs a benchmark without caching. The measuring goroutine is
// pinned for the whole run when opts.CPU is set.
func Execute(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:      uuid.NewString(),
		Algorithm:  opts.Algorithm,
		Size:       opts.Size,
		Iterations: opts.Iterations,
		CPU:        opts.CPU,
		StartedAt:  time.Now().UTC(),
		Version:    buildinfo.Version,
	}

	if opts.CPU != NoPin {
		release, err := PinCPU(opts.CPU)
		if err != nil {
			return nil, err
		}
		defer release()
		rep.Pinned = true
	}

	run := runnerFor(opts.Algorithm)
	for i := 0; i < opts.Iterations; i++ {
		start := time.Now()
		count, sum, err := run(ctx, opts.Size, opts.Seed)
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}
		rep.Permutations = count
		rep.Checksum = sum
		rep.Total += elapsed
		if i == 0 || elapsed < rep.Duration {
			rep.Duration = elapsed
		}
	}
	return rep, nil
}
