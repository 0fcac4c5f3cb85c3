package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"version: " + Version, "commit: " + Commit, "built: " + Date} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestFingerprint(t *testing.T) {
	if got, want := Fingerprint(), Version+"+"+Commit; got != want {
		t.Errorf("Fingerprint() = %q, want %q", got, want)
	}
}
