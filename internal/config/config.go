// Package config loads benchmark harness settings from TOML files.
//
// A typical file:
//
//	size       = 10
//	algorithms = ["enumerate", "fastmap"]
//	iterations = 3
//	cpu        = 0
//	seed       = 42
//
//	[cache]
//	backend = "file"
//	ttl     = "168h"
//
// Flags given on the command line override values read from the file.
package config

import (
	"os"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/poscode/pkg/cache"
	"github.com/matzehuels/poscode/pkg/errors"
)

// Defaults applied by SetDefaults.
const (
	DefaultSize       = 10
	DefaultIterations = 1
	DefaultSeed       = 1

	// NoPin disables CPU affinity pinning.
	NoPin = -1

	// MaxSize keeps n! within the range of an int index.
	MaxSize = 20
)

// Algorithms lists every benchmark algorithm name accepted in a config.
var Algorithms = []string{"enumerate", "heap", "classical", "fastmap", "streamlined", "lookup"}

// Config is the full harness configuration.
type Config struct {
	Size       int      `toml:"size"`
	Algorithms []string `toml:"algorithms"`
	Iterations int      `toml:"iterations"`
	CPU        *int     `toml:"cpu"`
	Seed       int64    `toml:"seed"`
	Cache      Cache    `toml:"cache"`
}

// Cache configures where reports are stored.
type Cache struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"`
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
	TTL           time.Duration `toml:"ttl"`
}

// Load reads and decodes a TOML file, then applies defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML data and applies defaults. It does not validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	cfg.SetDefaults()
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if len(c.Algorithms) == 0 {
		c.Algorithms = slices.Clone(Algorithms)
	}
	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.CPU == nil {
		pin := NoPin
		c.CPU = &pin
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = cache.BackendFile
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = cache.DefaultTTL
	}
}

// PinnedCPU returns the configured CPU, or NoPin.
func (c *Config) PinnedCPU() int {
	if c.CPU == nil {
		return NoPin
	}
	return *c.CPU
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Size < 1 || c.Size > MaxSize {
		return errors.New(errors.ErrCodeInvalidConfig, "size must be in [1, %d], got %d", MaxSize, c.Size)
	}
	if c.Iterations < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "iterations must be positive, got %d", c.Iterations)
	}
	if cpu := c.PinnedCPU(); cpu < NoPin {
		return errors.New(errors.ErrCodeInvalidConfig, "cpu must be >= 0 (or %d to disable pinning), got %d", NoPin, cpu)
	}
	for _, a := range c.Algorithms {
		if !slices.Contains(Algorithms, a) {
			return errors.New(errors.ErrCodeInvalidConfig, "unknown algorithm %q", a)
		}
	}

	switch c.Cache.Backend {
	case cache.BackendNone, cache.BackendFile:
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}
	return nil
}

// CacheOptions converts the cache section for cache.Open.
// defaultDir is used when no directory is configured.
func (c *Config) CacheOptions(defaultDir string) cache.Options {
	dir := c.Cache.Dir
	if dir == "" {
		dir = defaultDir
	}
	return cache.Options{
		Backend: c.Cache.Backend,
		Dir:     dir,
		Redis: cache.RedisConfig{
			Addr:     c.Cache.RedisAddr,
			Password: c.Cache.RedisPassword,
			DB:       c.Cache.RedisDB,
		},
	}
}
