package sigset

import (
	"os"
	"syscall"

	"github.com/cilium/sigset/internal/unix"
)

// InvalidSignalError is returned when a signal number doesn't fit into a
// [SigSet].
//
// It matches [syscall.EINVAL] and [os.ErrInvalid] when used with
// [errors.Is].
type InvalidSignalError struct{}

func (InvalidSignalError) Error() string {
	return "invalid signal"
}

// Errno converts the error to the errno the C library reports for it.
func (InvalidSignalError) Errno() syscall.Errno {
	return unix.EINVAL
}

// Is reports whether target is the errno or standard library error which
// stands for an invalid argument.
func (InvalidSignalError) Is(target error) bool {
	return target == unix.EINVAL || target == os.ErrInvalid
}
