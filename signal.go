package sigset

import (
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/cilium/sigset/internal/unix"
)

// Signal is a platform signal number.
type Signal int

// NewSignal wraps a raw signal number.
//
// The number is not validated, since the valid range depends on the set
// representation. Operations on a [SigSet] report out of range numbers.
func NewSignal(sig int) Signal {
	return Signal(sig)
}

// Raw returns the signal number.
func (s Signal) Raw() int {
	return int(s)
}

// Syscall converts s for use with [os/signal] and [os.Process.Signal].
func (s Signal) Syscall() syscall.Signal {
	return syscall.Signal(s)
}

// String returns the canonical name of s, or "signal N" for numbers without a
// name.
func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return "signal " + strconv.Itoa(int(s))
}

// Program error signals.
const (
	SIGFPE  = Signal(unix.SIGFPE)
	SIGILL  = Signal(unix.SIGILL)
	SIGSEGV = Signal(unix.SIGSEGV)
	SIGBUS  = Signal(unix.SIGBUS)
	SIGABRT = Signal(unix.SIGABRT)
	SIGIOT  = Signal(unix.SIGIOT)
	SIGTRAP = Signal(unix.SIGTRAP)
	SIGSYS  = Signal(unix.SIGSYS)
)

// Termination signals.
const (
	SIGTERM = Signal(unix.SIGTERM)
	SIGINT  = Signal(unix.SIGINT)
	SIGQUIT = Signal(unix.SIGQUIT)
	SIGKILL = Signal(unix.SIGKILL)
	SIGHUP  = Signal(unix.SIGHUP)
)

// Alarm signals.
const (
	SIGALRM   = Signal(unix.SIGALRM)
	SIGVTALRM = Signal(unix.SIGVTALRM)
	SIGPROF   = Signal(unix.SIGPROF)
)

// Asynchronous I/O signals.
const (
	SIGIO   = Signal(unix.SIGIO)
	SIGURG  = Signal(unix.SIGURG)
	SIGPOLL = Signal(unix.SIGPOLL)
)

// Job control signals.
const (
	SIGCHLD = Signal(unix.SIGCHLD)
	SIGCONT = Signal(unix.SIGCONT)
	SIGSTOP = Signal(unix.SIGSTOP)
	SIGTSTP = Signal(unix.SIGTSTP)
	SIGTTIN = Signal(unix.SIGTTIN)
	SIGTTOU = Signal(unix.SIGTTOU)
)

// Operation error signals.
const (
	SIGPIPE = Signal(unix.SIGPIPE)
	SIGXCPU = Signal(unix.SIGXCPU)
	SIGXFSZ = Signal(unix.SIGXFSZ)
)

// Miscellaneous signals.
const (
	SIGUSR1  = Signal(unix.SIGUSR1)
	SIGUSR2  = Signal(unix.SIGUSR2)
	SIGWINCH = Signal(unix.SIGWINCH)
)

// signalNames maps each named signal to its canonical name. Aliases are
// skipped so that they print as the signal they alias.
var signalNames = map[Signal]string{
	SIGFPE:    "SIGFPE",
	SIGILL:    "SIGILL",
	SIGSEGV:   "SIGSEGV",
	SIGBUS:    "SIGBUS",
	SIGABRT:   "SIGABRT",
	SIGTRAP:   "SIGTRAP",
	SIGSYS:    "SIGSYS",
	SIGTERM:   "SIGTERM",
	SIGINT:    "SIGINT",
	SIGQUIT:   "SIGQUIT",
	SIGKILL:   "SIGKILL",
	SIGHUP:    "SIGHUP",
	SIGALRM:   "SIGALRM",
	SIGVTALRM: "SIGVTALRM",
	SIGPROF:   "SIGPROF",
	SIGIO:     "SIGIO",
	SIGURG:    "SIGURG",
	SIGCHLD:   "SIGCHLD",
	SIGCONT:   "SIGCONT",
	SIGSTOP:   "SIGSTOP",
	SIGTSTP:   "SIGTSTP",
	SIGTTIN:   "SIGTTIN",
	SIGTTOU:   "SIGTTOU",
	SIGPIPE:   "SIGPIPE",
	SIGXCPU:   "SIGXCPU",
	SIGXFSZ:   "SIGXFSZ",
	SIGUSR1:   "SIGUSR1",
	SIGUSR2:   "SIGUSR2",
	SIGWINCH:  "SIGWINCH",
}

// signalsByName is the inverse of signalNames, including aliases.
var signalsByName = func() map[string]Signal {
	m := map[string]Signal{
		"SIGIOT":  SIGIOT,
		"SIGPOLL": SIGPOLL,
	}
	for sig, name := range signalNames {
		m[name] = sig
	}
	return m
}()

// Signals returns every named signal except aliases, ordered by number.
func Signals() []Signal {
	sigs := make([]Signal, 0, len(signalNames))
	for sig := range signalNames {
		sigs = append(sigs, sig)
	}
	sort.Slice(sigs, func(i, j int) bool { return sigs[i] < sigs[j] })
	return sigs
}

// ErrUnknownSignal is returned by [ParseSignal] for names it doesn't know.
var ErrUnknownSignal = errors.New("unknown signal")

// ParseSignal parses a signal name like "SIGINT", "INT" or "int", or a
// decimal signal number.
//
// Numbers are returned as is, without checking their range.
func ParseSignal(s string) (Signal, error) {
	trimmed := strings.TrimSpace(s)
	if n, err := strconv.Atoi(trimmed); err == nil {
		return NewSignal(n), nil
	}

	name := strings.ToUpper(trimmed)
	if !strings.HasPrefix(name, "SIG") {
		name = "SIG" + name
	}

	if sig, ok := signalsByName[name]; ok {
		return sig, nil
	}

	return 0, errors.Wrapf(ErrUnknownSignal, "parse %q", s)
}
