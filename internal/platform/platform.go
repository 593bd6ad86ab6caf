// Package platform reports the operating system the module was built for.
package platform

import "runtime"

const Linux = "linux"

const IsLinux = runtime.GOOS == Linux
