package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Several harness deployments can share one Redis instance this way.
//
// Example usage:
//
//	// Keys for the nightly benchmark host
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "host:bench-01:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ReportKey generates a prefixed key for a benchmark report.
func (k *ScopedKeyer) ReportKey(opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(opts)
}

// VerifyKey generates a prefixed key for a verification report.
func (k *ScopedKeyer) VerifyKey(maxSize int, buildVersion string) string {
	return k.prefix + k.inner.VerifyKey(maxSize, buildVersion)
}
