package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "report:x"); err != nil || hit {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "report:x", []byte(`{"n":4}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "report:x")
	if err != nil || !hit {
		t.Fatalf("Get after Set: hit=%v err=%v", hit, err)
	}
	if string(data) != `{"n":4}` {
		t.Errorf("Get = %q", data)
	}

	if err := c.Delete(ctx, "report:x"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "report:x"); hit {
		t.Error("entry should be gone after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "report:missing"); err != nil {
		t.Errorf("Delete missing: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}

	// ttl <= 0 never expires
	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should hit")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, _ := NewFileCache(dir)
	fc := c.(*FileCache)

	path := fc.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	fc := c.(*FileCache)

	_ = c.Set(ctx, "a", []byte("1"), 0)
	_ = c.Set(ctx, "b", []byte("2"), 0)
	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, k := range []string{"a", "b"} {
		if _, hit, _ := c.Get(ctx, k); hit {
			t.Errorf("%s should be cleared", k)
		}
	}
	if _, err := os.Stat(fc.Dir()); err != nil {
		t.Errorf("root should be recreated: %v", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	c, err := Open(ctx, Options{Backend: BackendNone})
	if err != nil {
		t.Fatalf("Open none: %v", err)
	}
	if _, ok := c.(*NullCache); !ok {
		t.Errorf("none backend = %T", c)
	}

	c, err = Open(ctx, Options{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open default: %v", err)
	}
	if _, ok := c.(*FileCache); !ok {
		t.Errorf("default backend = %T", c)
	}

	if _, err := Open(ctx, Options{Backend: BackendFile}); err == nil {
		t.Error("file backend without dir should fail")
	}
	if _, err := Open(ctx, Options{Backend: BackendRedis}); err == nil {
		t.Error("redis backend without address should fail")
	}
	if _, err := Open(ctx, Options{Backend: "memcached"}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("unknown backend error = %v", err)
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("POSCODE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("POSCODE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	key := "poscode:test:" + t.Name()
	if err := c.Set(ctx, key, []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = %q hit=%v err=%v", data, hit, err)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("key should be deleted")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	base := ReportKeyOpts{Algorithm: "fastmap", Size: 10, Iterations: 3, Seed: 1, Version: "dev"}
	rk1 := k.ReportKey(base)
	if !strings.HasPrefix(rk1, "report:") {
		t.Errorf("ReportKey prefix: %s", rk1)
	}
	if rk1 != k.ReportKey(base) {
		t.Error("ReportKey should be deterministic")
	}

	changed := base
	changed.Size = 11
	if rk1 == k.ReportKey(changed) {
		t.Error("Different sizes should produce different keys")
	}
	changed = base
	changed.Algorithm = "classical"
	if rk1 == k.ReportKey(changed) {
		t.Error("Different algorithms should produce different keys")
	}

	if vk := k.VerifyKey(8, "v1.0.0"); vk != "verify:8:v1.0.0" {
		t.Errorf("VerifyKey unexpected: %s", vk)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "host:a:")

	if vk := scoped.VerifyKey(5, "dev"); vk != "host:a:verify:5:dev" {
		t.Errorf("ScopedKeyer VerifyKey unexpected: %s", vk)
	}
	rk := scoped.ReportKey(ReportKeyOpts{Algorithm: "heap", Size: 4})
	if !strings.HasPrefix(rk, "host:a:report:") {
		t.Errorf("ScopedKeyer ReportKey should be prefixed: %s", rk)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	if key := scoped.VerifyKey(3, "x"); key != "prefix:verify:3:x" {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrNetwork)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if err.Error() != ErrNetwork.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if !errors.Is(err, ErrNetwork) {
		t.Error("wrapped error should unwrap to ErrNetwork")
	}

	if IsRetryable(ErrUnknownBackend) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	// Success on first try
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should call once: %d", calls)
	}

	// Non-retryable error stops immediately
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		return ErrUnknownBackend
	})
	if err != ErrUnknownBackend {
		t.Errorf("Should return non-retryable error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Should not retry non-retryable error: %d", calls)
	}

	// Retryable error triggers retries
	calls = 0
	err = RetryWithBackoff(ctx, func() error {
		calls++
		if calls < 2 {
			return Retryable(ErrNetwork)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Should succeed after retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("Should retry once: %d", calls)
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrNetwork)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
