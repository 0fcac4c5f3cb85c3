package bench

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/poscode/pkg/errors"
)

// Block delimiters for the plain-text report format. Downstream scripts grep
// for these, so the labels are stable.
const (
	reportStart = "REPORT_START"
	reportEnd   = "REPORT_END"
)

// WriteText writes the report as a delimited key/value block:
//
//	REPORT_START
//	ALGORITHM: fastmap
//	EXECUTION_TIME: 0.412345
//	CHECKSUM: 16329600
//	...
//	REPORT_END
//
// EXECUTION_TIME is the fastest iteration in seconds.
func (r *Report) WriteText(w io.Writer) error {
	lines := []string{
		reportStart,
		"RUN_ID: " + r.RunID,
		"ALGORITHM: " + string(r.Algorithm),
		"SIZE: " + strconv.Itoa(r.Size),
		"ITERATIONS: " + strconv.Itoa(r.Iterations),
		"PERMUTATIONS: " + strconv.Itoa(r.Permutations),
		fmt.Sprintf("EXECUTION_TIME: %f", r.Duration.Seconds()),
		"CHECKSUM: " + strconv.FormatUint(r.Checksum, 10),
		"CPU: " + cpuLabel(r),
		reportEnd,
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func cpuLabel(r *Report) string {
	if !r.Pinned {
		return "unpinned"
	}
	return strconv.Itoa(r.CPU)
}

// ParseText reads every report block from rd. Lines outside blocks are
// ignored, so the input may be a full program log. Unknown keys inside a
// block are skipped; ALGORITHM, EXECUTION_TIME and CHECKSUM are required.
func ParseText(rd io.Reader) ([]*Report, error) {
	var (
		out     []*Report
		cur     *Report
		seen    map[string]bool
		lineNum int
	)
	sc := bufio.NewScanner(rd)
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == reportStart:
			cur = &Report{CPU: NoPin}
			seen = map[string]bool{}
		case line == reportEnd && cur != nil:
			for _, k := range []string{"ALGORITHM", "EXECUTION_TIME", "CHECKSUM"} {
				if !seen[k] {
					return nil, errors.New(errors.ErrCodeInvalidFormat, "line %d: report missing %s", lineNum, k)
				}
			}
			out = append(out, cur)
			cur = nil
		case cur != nil:
			key, val, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			key, val = strings.TrimSpace(key), strings.TrimSpace(val)
			if err := setField(cur, key, val); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d: %s", lineNum, key)
			}
			seen[key] = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unterminated report block")
	}
	return out, nil
}

func setField(r *Report, key, val string) error {
	var err error
	switch key {
	case "RUN_ID":
		r.RunID = val
	case "ALGORITHM":
		r.Algorithm = Algorithm(val)
	case "SIZE":
		r.Size, err = strconv.Atoi(val)
	case "ITERATIONS":
		r.Iterations, err = strconv.Atoi(val)
	case "PERMUTATIONS":
		r.Permutations, err = strconv.Atoi(val)
	case "EXECUTION_TIME":
		var secs float64
		secs, err = strconv.ParseFloat(val, 64)
		r.Duration = time.Duration(secs * float64(time.Second))
	case "CHECKSUM":
		r.Checksum, err = strconv.ParseUint(val, 10, 64)
	case "CPU":
		if val != "unpinned" {
			r.CPU, err = strconv.Atoi(val)
			r.Pinned = err == nil
		}
	}
	return err
}
