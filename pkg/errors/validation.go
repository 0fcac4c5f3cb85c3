package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// MaxListLength bounds the number of entries ParseIntList accepts.
// Codes and permutations beyond this size are never enumerable anyway.
const MaxListLength = 4096

// ParseIntList parses a comma- or space-separated list of non-negative integers,
// such as "0,1,1,2" or "0 3 1 2". Surrounding brackets are tolerated so that
// values printed by fmt ("[0 3 1 2]") can be pasted back.
//
// An empty list ("" or "[]") parses to an empty, non-nil slice.
func ParseIntList(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) > MaxListLength {
		return nil, New(ErrCodeInvalidInput, "list too long (max %d entries)", MaxListLength)
	}

	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, New(ErrCodeInvalidInput, "invalid integer %q at index %d", f, i)
		}
		if v < 0 {
			return nil, New(ErrCodeInvalidInput, "negative integer %d at index %d", v, i)
		}
		out[i] = v
	}
	return out, nil
}

// ValidateSize checks a permutation size against an inclusive upper bound.
// Enumerating surfaces use it to keep n! within reach.
func ValidateSize(n, max int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "size cannot be negative: %d", n)
	}
	if n > max {
		return New(ErrCodeInvalidInput, "size %d exceeds limit %d", n, max)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//
// An empty path is valid and means stdout.
func ValidatePath(path string) error {
	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
