//go:build linux

package testutils

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cilium/sigset/internal/unix"
)

// WithSigmask runs f on an OS thread whose signal mask is replaced by mask,
// without changing the signal mask of the calling thread. f receives the id
// of the thread it runs on.
//
// The code in f and any code called by f must NOT call [runtime.LockOSThread],
// as this could leave the goroutine created by WithSigmask permanently pinned
// to an OS thread.
func WithSigmask(mask *unix.Sigset_t, f func(tid int) error) error {
	// Start the func in a new goroutine and lock it to an exclusive thread. This
	// ensures that if execution of the goroutine fails unexpectedly before we
	// call UnlockOSThread, the go runtime will ensure the underlying OS thread is
	// disposed of, rather than reused with a foreign signal mask.
	//
	// See also: https://pkg.go.dev/runtime#UnlockOSThread
	var g errgroup.Group
	g.Go(func() error {
		restoreUnlock, err := lockOSThread()
		if err != nil {
			return err
		}

		if err := unix.PthreadSigmask(unix.SIG_SETMASK, mask, nil); err != nil {
			return fmt.Errorf("set sigmask: %w (terminating OS thread)", err)
		}

		ferr := f(unix.Gettid())

		// Any failure to restore the original mask leaves the goroutine locked,
		// making the underlying OS thread terminate when this function returns.
		if err := restoreUnlock(); err != nil {
			return fmt.Errorf("restore original sigmask: %w (terminating OS thread)", err)
		}
		return ferr
	})

	return g.Wait()
}

// CurrentSigmask returns the signal mask of the calling thread. The caller
// must be locked to its OS thread for the result to be meaningful.
func CurrentSigmask() (unix.Sigset_t, error) {
	var mask unix.Sigset_t
	if err := unix.PthreadSigmask(unix.SIG_SETMASK, nil, &mask); err != nil {
		return unix.Sigset_t{}, fmt.Errorf("get sigmask: %w", err)
	}
	return mask, nil
}

func lockOSThread() (func() error, error) {
	runtime.LockOSThread()

	orig, err := CurrentSigmask()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}

	return func() error {
		if err := unix.PthreadSigmask(unix.SIG_SETMASK, &orig, nil); err != nil {
			// Keep the goroutine locked so that the thread terminates with it.
			return err
		}

		// Original mask was restored, release the OS thread back into the
		// schedulable pool.
		runtime.UnlockOSThread()

		return nil
	}, nil
}
