//go:build !linux

// This file is a stub to allow the sigmask helpers to be compiled on non-Linux
// platforms.
package testutils

import (
	"github.com/cilium/sigset/internal"
	"github.com/cilium/sigset/internal/unix"
)

func WithSigmask(mask *unix.Sigset_t, f func(tid int) error) error {
	return internal.ErrNotSupportedOnOS
}

func CurrentSigmask() (unix.Sigset_t, error) {
	return unix.Sigset_t{}, internal.ErrNotSupportedOnOS
}
