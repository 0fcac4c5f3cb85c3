package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/poscode/internal/config"
	"github.com/matzehuels/poscode/pkg/bench"
	"github.com/matzehuels/poscode/pkg/buildinfo"
	"github.com/matzehuels/poscode/pkg/cache"
	"github.com/matzehuels/poscode/pkg/errors"
	"github.com/matzehuels/poscode/pkg/perm"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "poscode"

	// maxListSize bounds commands that print every permutation.
	maxListSize = 12
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "poscode converts permutations to and from position codes",
		Long: `poscode ranks and unranks permutations through their position codes
(C[0] = 0, 0 <= C[i] <= i), answers single-entry lookups without decoding
the whole permutation, enumerates every permutation of a size, and
benchmarks the three rank/unrank families against Heap's algorithm.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.unrankCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.lookupCommand())
	root.AddCommand(c.enumerateCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a bench runner backed by the cache configured in cfg.
// Reports measured on this machine are scoped by hostname when the backend
// is shared.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) (*bench.Runner, error) {
	store, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if cfg.Cache.Backend == cache.BackendRedis {
		host, _ := os.Hostname()
		keyer = cache.NewScopedKeyer(nil, "host:"+host+":")
	}
	r := bench.NewRunner(store, keyer, c.Logger)
	r.TTL = cfg.Cache.TTL
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil && cfg.Cache.Dir == "" && cfg.Cache.Backend == cache.BackendFile {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	store, err := cache.Open(ctx, cfg.CacheOptions(dir))
	if err != nil && cfg.Cache.Backend == cache.BackendRedis {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "open redis cache at %s", cfg.Cache.RedisAddr)
	}
	return store, err
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/poscode/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Argument Helpers
// =============================================================================

func parseCode(s string) (perm.Code, error) {
	v, err := errors.ParseIntList(s)
	if err != nil {
		return nil, err
	}
	c := perm.Code(v)
	if err := perm.ValidateCode(c); err != nil {
		return nil, err
	}
	return c, nil
}

func parsePermutation(s string) (perm.Permutation, error) {
	v, err := errors.ParseIntList(s)
	if err != nil {
		return nil, err
	}
	p := perm.Permutation(v)
	if err := perm.ValidatePermutation(p); err != nil {
		return nil, err
	}
	return p, nil
}

func parseSize(s string, max int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid size %q", s)
	}
	if err := errors.ValidateSize(n, max); err != nil {
		return 0, err
	}
	return n, nil
}

func parseIndex(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", what, s)
	}
	return n, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns the fallback writer wrapped in nopCloser.
func openOutput(path string, fallback io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{fallback}, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	return os.Create(path)
}
