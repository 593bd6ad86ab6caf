// Package sigset is a typed wrapper around the operating system's signal set.
//
// A signal set is a fixed-size bitmask with one bit per signal number. Process
// control code builds sets to block, unblock or wait for signals, and to
// inspect the masks of other processes. This package only manages the set
// itself: constructing empty and full sets, adding and removing signals and
// querying membership. Installing a set as a signal mask is left to the
// caller, who can hand the native representation to any OS API through
// [SigSet.Ptr] or [SigSet.Raw].
//
// Signal numbers follow Linux. A [Signal] is never validated when it is
// created; set operations reject numbers which don't fit the representation
// with [InvalidSignalError].
//
// SigSet values carry no locks. They may be copied freely, but a single
// value must not be modified concurrently.
package sigset
