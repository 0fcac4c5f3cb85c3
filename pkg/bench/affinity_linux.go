//go:build linux

package bench

import (
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/matzehuels/poscode/pkg/errors"
)

// PinCPU locks the calling goroutine to its OS thread and restricts that
// thread to the given CPU. The returned release function restores the
// previous affinity mask and unlocks the thread; it must be called from the
// same goroutine.
func PinCPU(cpu int) (release func(), err error) {
	if cpu < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid cpu %d", cpu)
	}
	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read affinity")
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "pin to cpu %d", cpu)
	}

	return func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}, nil
}
