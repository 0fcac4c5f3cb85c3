//go:build !linux

package bench

import "github.com/matzehuels/poscode/pkg/errors"

// PinCPU is only implemented on Linux.
func PinCPU(cpu int) (release func(), err error) {
	return nil, errors.New(errors.ErrCodeUnsupported, "cpu pinning is not supported on this platform")
}
