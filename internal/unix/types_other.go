//go:build !linux

package unix

import "syscall"

const (
	EINVAL = syscall.EINVAL
	ENOENT = syscall.ENOENT
	ESRCH  = syscall.ESRCH
)

const (
	SIG_BLOCK = iota
	SIG_UNBLOCK
	SIG_SETMASK
)

// Signal numbers follow the generic Linux ABI.
const (
	SIGHUP    Signal = 0x1
	SIGINT    Signal = 0x2
	SIGQUIT   Signal = 0x3
	SIGILL    Signal = 0x4
	SIGTRAP   Signal = 0x5
	SIGABRT   Signal = 0x6
	SIGIOT    Signal = 0x6
	SIGBUS    Signal = 0x7
	SIGFPE    Signal = 0x8
	SIGKILL   Signal = 0x9
	SIGUSR1   Signal = 0xa
	SIGSEGV   Signal = 0xb
	SIGUSR2   Signal = 0xc
	SIGPIPE   Signal = 0xd
	SIGALRM   Signal = 0xe
	SIGTERM   Signal = 0xf
	SIGCHLD   Signal = 0x11
	SIGCONT   Signal = 0x12
	SIGSTOP   Signal = 0x13
	SIGTSTP   Signal = 0x14
	SIGTTIN   Signal = 0x15
	SIGTTOU   Signal = 0x16
	SIGURG    Signal = 0x17
	SIGXCPU   Signal = 0x18
	SIGXFSZ   Signal = 0x19
	SIGVTALRM Signal = 0x1a
	SIGPROF   Signal = 0x1b
	SIGWINCH  Signal = 0x1c
	SIGIO     Signal = 0x1d
	SIGPOLL   Signal = 0x1d
	SIGSYS    Signal = 0x1f
)

// NSIG is one more than the highest signal number the kernel accepts.
const NSIG = 65

type Signal = syscall.Signal

// Sigset_t mirrors the 64-bit Linux layout.
type Sigset_t struct {
	Val [16]uint64
}

func PthreadSigmask(how int, set, oldset *Sigset_t) error {
	return errNonLinux()
}

func Gettid() int {
	return 0
}
