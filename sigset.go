package sigset

import (
	"unsafe"

	"github.com/cilium/sigset/internal/unix"
)

// Raw is the native signal set representation, golang.org/x/sys/unix.Sigset_t
// on Linux.
type Raw = unix.Sigset_t

// SigSet is a set of signals, stored in the native representation.
//
// The zero value is an empty set.
type SigSet struct {
	set Raw
}

// Empty returns a set without any signals.
func Empty() SigSet {
	var s SigSet
	unix.SigsetEmpty(&s.set)
	return s
}

// All returns a set containing every signal the representation can hold.
func All() SigSet {
	var s SigSet
	unix.SigsetFill(&s.set)
	return s
}

// FromRaw wraps a native signal set.
//
// raw is taken as is. It must have been initialized by the OS or by
// [SigSet.Raw].
func FromRaw(raw Raw) SigSet {
	return SigSet{raw}
}

// Raw returns the native representation of the set, for passing to OS APIs.
func (s *SigSet) Raw() Raw {
	return s.set
}

// Ptr returns a pointer to the native representation of the set.
//
// The pointer is meant to be passed to a single OS call, such as
// unix.PthreadSigmask. The set must not be copied or used by another goroutine
// until the call returns.
func (s *SigSet) Ptr() *Raw {
	return &s.set
}

// UnsafePointer is like [SigSet.Ptr] but for raw system calls.
func (s *SigSet) UnsafePointer() unsafe.Pointer {
	return unsafe.Pointer(&s.set)
}

// Add adds sig to the set. Adding a member again has no effect.
//
// Returns [InvalidSignalError] if sig is out of range.
func (s *SigSet) Add(sig Signal) error {
	if err := unix.SigsetAdd(&s.set, unix.Signal(sig)); err != nil {
		return InvalidSignalError{}
	}
	return nil
}

// Remove removes sig from the set. Removing an absent signal has no effect.
//
// Returns [InvalidSignalError] if sig is out of range.
func (s *SigSet) Remove(sig Signal) error {
	if err := unix.SigsetDel(&s.set, unix.Signal(sig)); err != nil {
		return InvalidSignalError{}
	}
	return nil
}

// Contains reports whether sig is in the set.
//
// Returns [InvalidSignalError] if sig is out of range.
func (s *SigSet) Contains(sig Signal) (bool, error) {
	ok, err := unix.SigsetIsMember(&s.set, unix.Signal(sig))
	if err != nil {
		return false, InvalidSignalError{}
	}
	return ok, nil
}

// Members returns the signals in the set in ascending order.
func (s *SigSet) Members() []Signal {
	var sigs []Signal
	for sig := Signal(1); sig < unix.NSIG; sig++ {
		// Signals below NSIG are always valid, so the error is always nil.
		if ok, _ := unix.SigsetIsMember(&s.set, unix.Signal(sig)); ok {
			sigs = append(sigs, sig)
		}
	}
	return sigs
}
