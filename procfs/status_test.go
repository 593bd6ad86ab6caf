package procfs

import (
	"os"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/cilium/sigset"
	"github.com/cilium/sigset/internal/testutils"
)

func TestParseStatus(t *testing.T) {
	f, err := os.Open("testdata/status")
	qt.Assert(t, qt.IsNil(err))
	defer f.Close()

	status, err := ParseStatus(f)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.Equals(status.Name, "sleep"))
	qt.Assert(t, qt.Equals(status.Pid, 4242))
	qt.Assert(t, qt.Equals(status.Tgid, 4242))
	qt.Assert(t, qt.Equals(status.QueuedSignals, uint64(2)))
	qt.Assert(t, qt.Equals(status.QueueLimit, uint64(63474)))

	qt.Assert(t, qt.HasLen(status.Pending.Members(), 0))
	qt.Assert(t, qt.DeepEquals(status.SharedPending.Members(), []sigset.Signal{sigset.SIGKILL}))
	qt.Assert(t, testutils.IsMember(&status.Blocked, sigset.SIGCHLD))
	qt.Assert(t, testutils.IsMember(&status.Ignored, sigset.SIGQUIT))
	qt.Assert(t, testutils.IsMember(&status.Caught, sigset.SIGINT))
	qt.Assert(t, testutils.IsNotMember(&status.Caught, sigset.SIGKILL))
}

func TestParseStatusInvalid(t *testing.T) {
	for _, in := range []string{
		"SigBlk:\tnothex\n",
		"SigQ:\t12\n",
		"SigQ:\ta/b\n",
		"Pid:\tnan\n",
	} {
		_, err := ParseStatus(strings.NewReader(in))
		qt.Assert(t, qt.IsNotNil(err), qt.Commentf("input %q", in))
	}
}

func TestReadStatusMissing(t *testing.T) {
	testutils.SkipNonLinux(t)

	_, err := ReadStatus(-1)
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}

func TestReadThreadStatus(t *testing.T) {
	mask := sigset.Empty()
	qt.Assert(t, qt.IsNil(mask.Add(sigset.SIGUSR1)))
	qt.Assert(t, qt.IsNil(mask.Add(sigset.SIGWINCH)))

	err := testutils.WithSigmask(mask.Ptr(), func(tid int) error {
		status, err := ReadThreadStatus(os.Getpid(), tid)
		if err != nil {
			return err
		}

		qt.Check(t, qt.Equals(status.Pid, tid))
		qt.Check(t, qt.DeepEquals(status.Blocked.Members(), mask.Members()))

		tids, err := Threads(os.Getpid())
		if err != nil {
			return err
		}
		qt.Check(t, qt.SliceContains(tids, tid))
		return nil
	})
	testutils.SkipIfNotSupportedOnOS(t, err)
}
