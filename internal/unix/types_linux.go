//go:build linux

package unix

import (
	linux "golang.org/x/sys/unix"
)

const (
	EINVAL = linux.EINVAL
	ENOENT = linux.ENOENT
	ESRCH  = linux.ESRCH
)

const (
	SIG_BLOCK   = linux.SIG_BLOCK
	SIG_UNBLOCK = linux.SIG_UNBLOCK
	SIG_SETMASK = linux.SIG_SETMASK
)

const (
	SIGABRT   = linux.SIGABRT
	SIGALRM   = linux.SIGALRM
	SIGBUS    = linux.SIGBUS
	SIGCHLD   = linux.SIGCHLD
	SIGCONT   = linux.SIGCONT
	SIGFPE    = linux.SIGFPE
	SIGHUP    = linux.SIGHUP
	SIGILL    = linux.SIGILL
	SIGINT    = linux.SIGINT
	SIGIO     = linux.SIGIO
	SIGIOT    = linux.SIGIOT
	SIGKILL   = linux.SIGKILL
	SIGPIPE   = linux.SIGPIPE
	SIGPOLL   = linux.SIGPOLL
	SIGPROF   = linux.SIGPROF
	SIGQUIT   = linux.SIGQUIT
	SIGSEGV   = linux.SIGSEGV
	SIGSTOP   = linux.SIGSTOP
	SIGSYS    = linux.SIGSYS
	SIGTERM   = linux.SIGTERM
	SIGTRAP   = linux.SIGTRAP
	SIGTSTP   = linux.SIGTSTP
	SIGTTIN   = linux.SIGTTIN
	SIGTTOU   = linux.SIGTTOU
	SIGURG    = linux.SIGURG
	SIGUSR1   = linux.SIGUSR1
	SIGUSR2   = linux.SIGUSR2
	SIGVTALRM = linux.SIGVTALRM
	SIGWINCH  = linux.SIGWINCH
	SIGXCPU   = linux.SIGXCPU
	SIGXFSZ   = linux.SIGXFSZ
)

type Signal = linux.Signal
type Sigset_t = linux.Sigset_t

func PthreadSigmask(how int, set, oldset *Sigset_t) error {
	return linux.PthreadSigmask(how, set, oldset)
}

func Gettid() int {
	return linux.Gettid()
}
