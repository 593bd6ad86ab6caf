//go:build linux && (mips || mipsle || mips64 || mips64le)

package unix

// NSIG is one more than the highest signal number the kernel accepts.
const NSIG = 128
