package procfs

import (
	"github.com/pkg/errors"

	"github.com/cilium/sigset"
)

// maskDigits is the width of a mask covering the 64 signals most
// architectures support.
const maskDigits = 16

const hexDigits = "0123456789abcdef"

// ParseMask decodes a kernel signal mask such as "0000000000010000".
func ParseMask(mask string) (sigset.SigSet, error) {
	set := sigset.Empty()
	if mask == "" {
		return set, errors.New("empty signal mask")
	}

	for i := 0; i < len(mask); i++ {
		nibble, ok := unhex(mask[len(mask)-1-i])
		if !ok {
			return set, errors.Errorf("signal mask %q: invalid digit %q", mask, mask[len(mask)-1-i])
		}

		for bit := 0; bit < 4; bit++ {
			if nibble&(1<<bit) == 0 {
				continue
			}

			sig := sigset.NewSignal(i*4 + bit + 1)
			if err := set.Add(sig); err != nil {
				return set, errors.Wrapf(err, "signal mask %q: signal %d", mask, sig.Raw())
			}
		}
	}

	return set, nil
}

// FormatMask encodes set the way the kernel does. The result is zero padded
// to 16 digits, or a multiple of that when set has higher members.
func FormatMask(set *sigset.SigSet) string {
	members := set.Members()

	digits := maskDigits
	if n := len(members); n > 0 {
		if need := (members[n-1].Raw() + 3) / 4; need > digits {
			digits = (need + maskDigits - 1) / maskDigits * maskDigits
		}
	}

	nibbles := make([]byte, digits)
	for _, sig := range members {
		bit := sig.Raw() - 1
		nibbles[digits-1-bit/4] |= 1 << (bit % 4)
	}

	for i, n := range nibbles {
		nibbles[i] = hexDigits[n]
	}
	return string(nibbles)
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
