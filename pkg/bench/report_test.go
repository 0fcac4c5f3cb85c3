package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/poscode/pkg/errors"
)

func TestReport_WriteText(t *testing.T) {
	rep := &Report{
		RunID:        "abc",
		Algorithm:    FastMap,
		Size:         10,
		Iterations:   1,
		Permutations: 3628800,
		Checksum:     16329600,
		Duration:     1500 * time.Millisecond,
		CPU:          2,
		Pinned:       true,
	}
	var buf bytes.Buffer
	if err := rep.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"REPORT_START\n",
		"ALGORITHM: fastmap\n",
		"EXECUTION_TIME: 1.500000\n",
		"CHECKSUM: 16329600\n",
		"CPU: 2\n",
		"REPORT_END\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestParseText_RoundTrip(t *testing.T) {
	rep := &Report{RunID: "r1", Algorithm: Heap, Size: 4, Iterations: 2, Permutations: 24, Checksum: 144, Duration: 250 * time.Millisecond, CPU: NoPin}
	var buf bytes.Buffer
	buf.WriteString("some log line\n")
	_ = rep.WriteText(&buf)

	got, err := ParseText(&buf)
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d reports", len(got))
	}
	g := got[0]
	if g.RunID != "r1" || g.Algorithm != Heap || g.Size != 4 || g.Permutations != 24 || g.Checksum != 144 {
		t.Errorf("parsed = %+v", g)
	}
	if g.Duration != 250*time.Millisecond {
		t.Errorf("Duration = %v", g.Duration)
	}
	if g.Pinned {
		t.Error("unpinned report parsed as pinned")
	}
}

func TestParseText_MinimalBlock(t *testing.T) {
	in := "\nREPORT_START\nALGORITHM: heap_perm\nEXECUTION_TIME: 0.125000\nCHECKSUM: 479001600\nREPORT_END\n"
	got, err := ParseText(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if len(got) != 1 || got[0].Algorithm != "heap_perm" || got[0].Checksum != 479001600 {
		t.Errorf("parsed = %+v", got)
	}
}

func TestParseText_Errors(t *testing.T) {
	tests := map[string]string{
		"missing checksum": "REPORT_START\nALGORITHM: x\nEXECUTION_TIME: 1\nREPORT_END\n",
		"bad number":       "REPORT_START\nALGORITHM: x\nEXECUTION_TIME: 1\nCHECKSUM: lots\nREPORT_END\n",
		"unterminated":     "REPORT_START\nALGORITHM: x\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseText(strings.NewReader(in)); !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("err = %v, want INVALID_FORMAT", err)
			}
		})
	}
}

func TestReport_PerPermutation(t *testing.T) {
	r := &Report{Duration: time.Second, Permutations: 1000}
	if got := r.PerPermutation(); got != time.Millisecond {
		t.Errorf("PerPermutation = %v", got)
	}
	if got := (&Report{}).PerPermutation(); got != 0 {
		t.Errorf("empty PerPermutation = %v", got)
	}
}
