package cache

import "fmt"

// Keyer generates cache keys for the different report kinds.
type Keyer interface {
	// ReportKey identifies a benchmark report.
	ReportKey(opts ReportKeyOpts) string

	// VerifyKey identifies a property verification report for sizes 1..maxSize.
	VerifyKey(maxSize int, buildVersion string) string
}

// ReportKeyOpts holds every input that affects a benchmark report.
type ReportKeyOpts struct {
	Algorithm  string `json:"algorithm"`
	Size       int    `json:"size"`
	Iterations int    `json:"iterations"`
	Seed       int64  `json:"seed"`
	CPU        int    `json:"cpu"`
	Version    string `json:"version"`
}

// DefaultKeyer produces keys of the form "kind:sha256(parts)".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ReportKey generates a key for a benchmark report.
func (k *DefaultKeyer) ReportKey(opts ReportKeyOpts) string {
	return hashKey("report", opts.Algorithm, opts.Size, opts.Iterations, opts.Seed, opts.CPU, opts.Version)
}

// VerifyKey generates a key for a verification report.
func (k *DefaultKeyer) VerifyKey(maxSize int, buildVersion string) string {
	return fmt.Sprintf("verify:%d:%s", maxSize, buildVersion)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
