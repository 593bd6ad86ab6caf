package unix

import (
	"fmt"
	"unsafe"
)

const (
	wordBytes = int(unsafe.Sizeof(Sigset_t{}.Val[0]))
	wordBits  = wordBytes * 8

	setBytes = int(unsafe.Sizeof(Sigset_t{}))
	setBits  = setBytes * 8
)

// A Sigset_t word with every bit set.
var allOnes = ^Sigset_t{}.Val[0]

// SigsetEmpty clears every bit of set.
func SigsetEmpty(set *Sigset_t) {
	for i := range set.Val {
		set.Val[i] = 0
	}
}

// SigsetFill sets every bit of set, including bits beyond NSIG.
func SigsetFill(set *Sigset_t) {
	for i := range set.Val {
		set.Val[i] = allOnes
	}
}

// SigsetAdd adds signal to set.
func SigsetAdd(set *Sigset_t, signal Signal) error {
	word, shift, err := sigsetBit(signal)
	if err != nil {
		return err
	}

	set.Val[word] |= 1 << shift
	return nil
}

// SigsetDel removes signal from set.
func SigsetDel(set *Sigset_t, signal Signal) error {
	word, shift, err := sigsetBit(signal)
	if err != nil {
		return err
	}

	set.Val[word] &^= 1 << shift
	return nil
}

// SigsetIsMember reports whether signal is in set.
func SigsetIsMember(set *Sigset_t, signal Signal) (bool, error) {
	word, shift, err := sigsetBit(signal)
	if err != nil {
		return false, err
	}

	return set.Val[word]&(1<<shift) != 0, nil
}

// sigsetBit locates signal in a Sigset_t.
//
// For amd64, runtime.sigaddset() performs the following operation:
// set[(signal-1)/32] |= 1 << ((uint32(signal) - 1) & 31)
//
// The same layout holds for any word width: signal n is bit n-1 of the set,
// counted from the lowest bit of the first word.
func sigsetBit(signal Signal) (word int, shift uint, _ error) {
	if signal < 1 {
		return 0, 0, fmt.Errorf("signal %d must be larger than 0: %w", signal, EINVAL)
	}
	if int(signal) >= NSIG || int(signal) > setBits {
		return 0, 0, fmt.Errorf("signal %d does not fit within unix.Sigset_t: %w", signal, EINVAL)
	}

	// Signal is the nth bit in the bitfield.
	bit := int(signal - 1)
	return bit / wordBits, uint(bit % wordBits), nil
}
