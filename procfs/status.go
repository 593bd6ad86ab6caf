package procfs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/cilium/sigset"
	"github.com/cilium/sigset/internal"
	"github.com/cilium/sigset/internal/platform"
)

// Root is the mount point of procfs.
var Root = "/proc"

// Status is the signal related part of a status file.
type Status struct {
	Name string
	Pid  int
	Tgid int

	// QueuedSignals is the number of signals queued for the real user ID of
	// the process, QueueLimit the limit on that number.
	QueuedSignals uint64
	QueueLimit    uint64

	// Pending holds signals pending for the thread, SharedPending those
	// pending for the whole process.
	Pending       sigset.SigSet
	SharedPending sigset.SigSet
	Blocked       sigset.SigSet
	Ignored       sigset.SigSet
	Caught        sigset.SigSet
}

// ReadStatus reads /proc/<pid>/status.
func ReadStatus(pid int) (*Status, error) {
	return readStatus(filepath.Join(Root, strconv.Itoa(pid), "status"))
}

// ReadThreadStatus reads /proc/<pid>/task/<tid>/status. Blocked and Pending
// are per thread, the other sets are shared by all threads of a process.
func ReadThreadStatus(pid, tid int) (*Status, error) {
	return readStatus(filepath.Join(Root, strconv.Itoa(pid), "task", strconv.Itoa(tid), "status"))
}

// Threads returns the ids of all threads of pid in ascending order.
func Threads(pid int) ([]int, error) {
	if !platform.IsLinux {
		return nil, internal.ErrNotSupportedOnOS
	}

	dir := filepath.Join(Root, strconv.Itoa(pid), "task")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "list threads")
	}

	tids := make([]int, 0, len(entries))
	for _, entry := range entries {
		tid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		tids = append(tids, tid)
	}
	sort.Ints(tids)
	return tids, nil
}

func readStatus(path string) (*Status, error) {
	if !platform.IsLinux {
		return nil, internal.ErrNotSupportedOnOS
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read status")
	}
	defer f.Close()

	status, err := ParseStatus(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return status, nil
}

// ParseStatus parses the contents of a status file. Keys without signal
// information are ignored.
func ParseStatus(r io.Reader) (*Status, error) {
	var status Status

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		var err error
		switch key {
		case "Name":
			status.Name = value
		case "Pid":
			status.Pid, err = strconv.Atoi(value)
		case "Tgid":
			status.Tgid, err = strconv.Atoi(value)
		case "SigQ":
			status.QueuedSignals, status.QueueLimit, err = parseQueue(value)
		case "SigPnd":
			status.Pending, err = ParseMask(value)
		case "ShdPnd":
			status.SharedPending, err = ParseMask(value)
		case "SigBlk":
			status.Blocked, err = ParseMask(value)
		case "SigIgn":
			status.Ignored, err = ParseMask(value)
		case "SigCgt":
			status.Caught, err = ParseMask(value)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan status")
	}

	return &status, nil
}

// parseQueue parses a "queued/limit" pair.
func parseQueue(value string) (queued, limit uint64, err error) {
	q, l, ok := strings.Cut(value, "/")
	if !ok {
		return 0, 0, errors.Errorf("invalid signal queue %q", value)
	}

	queued, err = strconv.ParseUint(q, 10, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "queued signals")
	}
	limit, err = strconv.ParseUint(l, 10, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "signal queue limit")
	}
	return queued, limit, nil
}
