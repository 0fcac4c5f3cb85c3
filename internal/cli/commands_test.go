package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/poscode/pkg/errors"
)

// run executes the root command with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestCommands_Output(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unrank", []string{"unrank", "0,1,1,2"}, "0,3,1,2\n"},
		{"unrank brackets", []string{"unrank", "[0 1 1 2]"}, "0,3,1,2\n"},
		{"unrank fastmap", []string{"unrank", "-f", "fastmap", "0,1,1,2"}, "0,3,1,2\n"},
		{"unrank index", []string{"unrank", "--index", "--size", "4", "18"}, "0,3,1,2\n"},
		{"rank", []string{"rank", "0,3,1,2"}, "0,1,1,2\n"},
		{"rank index", []string{"rank", "--index", "0,3,1,2"}, "18\n"},
		{"value-at", []string{"lookup", "value-at", "0,1,1,2", "1"}, "3\n"},
		{"position-of", []string{"lookup", "position-of", "0,1,1,2", "3"}, "1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"code out of bound", []string{"unrank", "0,2"}, errors.ErrCodeInvalidEncoding},
		{"nonzero first digit", []string{"unrank", "1,0"}, errors.ErrCodeInvalidEncoding},
		{"not a permutation", []string{"rank", "0,0,1"}, errors.ErrCodeInvalidPermutation},
		{"garbage", []string{"unrank", "0,x"}, errors.ErrCodeInvalidInput},
		{"position out of range", []string{"lookup", "value-at", "0,1", "5"}, errors.ErrCodeInvalidValue},
		{"enumerate too large", []string{"enumerate", "30"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("%v error = %v, want %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestEnumerateCommand(t *testing.T) {
	out, err := run(t, "enumerate", "3")
	if err != nil {
		t.Fatal(err)
	}
	got := lines(out)
	if len(got) != 6 {
		t.Fatalf("enumerate 3 printed %d lines, want 6", len(got))
	}
	if got[0] != "2,0,1" || got[5] != "0,1,2" {
		t.Errorf("enumerate 3 first/last = %q/%q", got[0], got[5])
	}

	out, err = run(t, "enumerate", "--limit", "2", "4")
	if err != nil {
		t.Fatal(err)
	}
	if n := len(lines(out)); n != 2 {
		t.Errorf("--limit 2 printed %d lines", n)
	}

	out, err = run(t, "enumerate", "--heap", "3")
	if err != nil {
		t.Fatal(err)
	}
	got = lines(out)
	if len(got) != 6 || got[0] != "0,1,2" {
		t.Errorf("enumerate --heap 3 = %v", got)
	}

	out, err = run(t, "enumerate", "--codes", "--limit", "1", "3")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\t") {
		t.Errorf("--codes output missing code column: %q", out)
	}
}

func TestDotCommand(t *testing.T) {
	out, err := run(t, "dot", "0,1,1,2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "digraph") {
		t.Errorf("dot output is not a graph: %q", out)
	}

	path := filepath.Join(t.TempDir(), "chain.dot")
	if _, err := run(t, "dot", "-o", path, "0,1,1,2"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != out {
		t.Error("file output differs from stdout output")
	}

	if _, err := run(t, "dot", "--format", "png", "0,1"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestBenchAndReportCommands(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	out, err := run(t, "bench", "--no-cache", "--size", "4", "--algorithm", "heap,enumerate")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "REPORT_START"); n != 2 {
		t.Fatalf("bench printed %d reports, want 2:\n%s", n, out)
	}
	// heap sums every element of every permutation: 4! * 6
	if !strings.Contains(out, "CHECKSUM: 144") {
		t.Errorf("heap checksum missing:\n%s", out)
	}

	path := filepath.Join(t.TempDir(), "reports.txt")
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := run(t, "report", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"heap", "enumerate"} {
		if !strings.Contains(table, want) {
			t.Errorf("report table missing %q:\n%s", want, table)
		}
	}

	if _, err := run(t, "bench", "--no-cache", "--algorithm", "bogus"); err == nil {
		t.Error("unknown algorithm should fail")
	}
}

func TestVerifyCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	if _, err := run(t, "verify", "--no-cache", "4"); err != nil {
		t.Fatalf("verify 4: %v", err)
	}
}

func TestCachePathCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", home)

	out, err := run(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != filepath.Join(home, appName) {
		t.Errorf("cache path = %q", out)
	}
}
