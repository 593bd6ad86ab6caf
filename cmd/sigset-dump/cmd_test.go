package main

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/pkg/errors"

	"github.com/cilium/sigset/internal/unix"
	"github.com/cilium/sigset/procfs"
)

func TestParsePid(t *testing.T) {
	pid, err := parsePid("self")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(pid, os.Getpid()))

	pid, err = parsePid("42")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(pid, 42))

	for _, arg := range []string{"", "0", "-1", "init"} {
		_, err := parsePid(arg)
		qt.Assert(t, qt.IsNotNil(err), qt.Commentf("arg %q", arg))
	}
}

func TestSelectPids(t *testing.T) {
	pids, err := selectPids(context.Background(), false, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(pids, []int{os.Getpid()}))

	pids, err = selectPids(context.Background(), false, []string{"7", "3", "7"})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(pids, []int{3, 7}))

	_, err = selectPids(context.Background(), true, []string{"1"})
	qt.Assert(t, qt.IsNotNil(err))
}

func TestVanished(t *testing.T) {
	qt.Assert(t, qt.IsFalse(vanished(nil)))
	qt.Assert(t, qt.IsTrue(vanished(&fs.PathError{Op: "open", Path: "/proc/1/status", Err: unix.ENOENT})))
	qt.Assert(t, qt.IsTrue(vanished(errors.Wrap(unix.ESRCH, "read status"))))
	qt.Assert(t, qt.IsFalse(vanished(errors.Wrap(unix.EINVAL, "read status"))))
}

func TestReportWrite(t *testing.T) {
	status, err := procfs.ParseStatus(strings.NewReader(strings.Join([]string{
		"Name:\tsleep",
		"Pid:\t4242",
		"SigQ:\t0/100",
		"SigPnd:\t0000000000000000",
		"ShdPnd:\t0000000000000000",
		"SigBlk:\t0000000000010000",
		"SigIgn:\t0000000000000004",
		"SigCgt:\t0000000000000003",
	}, "\n")))
	qt.Assert(t, qt.IsNil(err))

	var buf bytes.Buffer
	r := &report{status: status, threads: []*procfs.Status{status}}
	qt.Assert(t, qt.IsNil(r.write(&buf)))

	want := strings.Join([]string{
		"4242 (sleep) queued 0/100",
		"  pending  0000000000000000 -",
		"  shared   0000000000000000 -",
		"  blocked  0000000000010000 SIGCHLD",
		"  ignored  0000000000000004 SIGQUIT",
		"  caught   0000000000000003 SIGHUP SIGINT",
		"  thread 4242 (sleep)",
		"    pending  0000000000000000 -",
		"    blocked  0000000000010000 SIGCHLD",
		"",
	}, "\n")
	qt.Assert(t, qt.Equals(buf.String(), want))
}
