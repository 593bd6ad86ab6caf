// Package procfs reads the signal state the Linux kernel publishes in
// /proc/<pid>/status.
//
// The kernel prints each signal set as a hexadecimal mask in which bit n-1
// stands for signal n. ParseMask and FormatMask convert between that format
// and [sigset.SigSet].
package procfs
