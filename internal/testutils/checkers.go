package testutils

import (
	"fmt"

	"github.com/go-quicktest/qt"
)

// MemberSet is a set of signals which can be queried for membership, like
// *sigset.SigSet.
type MemberSet[S any] interface {
	Contains(S) (bool, error)
}

// IsMember checks that sig is in set. Use with qt.Assert:
//
//	qt.Assert(t, testutils.IsMember(&set, sigset.SIGINT))
func IsMember[S any](set MemberSet[S], sig S) qt.Checker {
	return &memberChecker[S]{set, sig, true}
}

// IsNotMember checks that sig is a valid signal which is absent from set.
func IsNotMember[S any](set MemberSet[S], sig S) qt.Checker {
	return &memberChecker[S]{set, sig, false}
}

type memberChecker[S any] struct {
	set  MemberSet[S]
	sig  S
	want bool
}

func (mc *memberChecker[S]) Check(_ func(key string, value any)) error {
	got, err := mc.set.Contains(mc.sig)
	if err != nil {
		return fmt.Errorf("query %v: %w", mc.sig, err)
	}

	if got == mc.want {
		return nil
	}

	if mc.want {
		return fmt.Errorf("%v is not a member", mc.sig)
	}
	return fmt.Errorf("%v is a member", mc.sig)
}

func (mc *memberChecker[S]) Args() []qt.Arg {
	return []qt.Arg{
		{Name: "set", Value: mc.set},
		{Name: "signal", Value: mc.sig},
	}
}
