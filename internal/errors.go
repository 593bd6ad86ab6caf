package internal

import (
	"runtime"

	"github.com/pkg/errors"
)

// ErrNotSupported indicates that a feature is not supported.
var ErrNotSupported = errors.New("not supported")

// ErrNotSupportedOnOS indicates that a feature is not supported on the current
// operating system.
var ErrNotSupportedOnOS = errors.Wrapf(ErrNotSupported, "%s", runtime.GOOS)
