package testutils

import (
	"errors"
	"testing"

	"github.com/cilium/sigset/internal"
	"github.com/cilium/sigset/internal/platform"
)

// SkipIfNotSupportedOnOS skips the test if err wraps
// [internal.ErrNotSupportedOnOS] and fails it on any other error.
func SkipIfNotSupportedOnOS(tb testing.TB, err error) {
	tb.Helper()

	if err == nil {
		return
	}

	if errors.Is(err, internal.ErrNotSupportedOnOS) {
		tb.Skip(err)
	}

	tb.Fatal(err)
}

// SkipNonLinux skips the test on platforms other than Linux.
func SkipNonLinux(tb testing.TB) {
	tb.Helper()

	if !platform.IsLinux {
		tb.Skip(internal.ErrNotSupportedOnOS)
	}
}
