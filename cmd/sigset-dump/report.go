package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cilium/sigset"
	"github.com/cilium/sigset/internal/unix"
	"github.com/cilium/sigset/procfs"
)

type report struct {
	status  *procfs.Status
	threads []*procfs.Status
}

// collect reads the reports of pids with at most workers reads in flight.
// Processes which exit while being read are skipped.
func collect(ctx context.Context, pids []int, threads bool, workers int) ([]*report, error) {
	reports := make([]*report, len(pids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, pid := range pids {
		i, pid := i, pid
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := readReport(pid, threads)
			if vanished(err) {
				logrus.WithField("pid", pid).WithError(err).Debug("Process exited")
				return nil
			}
			if err != nil {
				return errors.Wrapf(err, "pid %d", pid)
			}

			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := reports[:0]
	for _, r := range reports {
		if r != nil {
			result = append(result, r)
		}
	}
	return result, nil
}

func readReport(pid int, threads bool) (*report, error) {
	status, err := procfs.ReadStatus(pid)
	if err != nil {
		return nil, err
	}

	r := &report{status: status}
	if !threads {
		return r, nil
	}

	tids, err := procfs.Threads(pid)
	if err != nil {
		return nil, err
	}

	for _, tid := range tids {
		ts, err := procfs.ReadThreadStatus(pid, tid)
		if vanished(err) {
			logrus.WithFields(logrus.Fields{"pid": pid, "tid": tid}).Debug("Thread exited")
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "tid %d", tid)
		}
		r.threads = append(r.threads, ts)
	}
	return r, nil
}

// vanished reports whether err means that a process or thread is gone.
func vanished(err error) bool {
	return errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ESRCH)
}

func (r *report) write(w io.Writer) error {
	s := r.status
	_, err := fmt.Fprintf(w, "%d (%s) queued %d/%d\n", s.Pid, s.Name, s.QueuedSignals, s.QueueLimit)
	if err != nil {
		return err
	}

	if err := writeSets(w, "  ", []namedSet{
		{"pending", &s.Pending},
		{"shared", &s.SharedPending},
		{"blocked", &s.Blocked},
		{"ignored", &s.Ignored},
		{"caught", &s.Caught},
	}); err != nil {
		return err
	}

	for _, ts := range r.threads {
		if _, err := fmt.Fprintf(w, "  thread %d (%s)\n", ts.Pid, ts.Name); err != nil {
			return err
		}
		if err := writeSets(w, "    ", []namedSet{
			{"pending", &ts.Pending},
			{"blocked", &ts.Blocked},
		}); err != nil {
			return err
		}
	}
	return nil
}

type namedSet struct {
	name string
	set  *sigset.SigSet
}

func writeSets(w io.Writer, indent string, sets []namedSet) error {
	for _, ns := range sets {
		_, err := fmt.Fprintf(w, "%s%-8s %s %s\n", indent, ns.name, procfs.FormatMask(ns.set), memberNames(ns.set))
		if err != nil {
			return err
		}
	}
	return nil
}

func memberNames(set *sigset.SigSet) string {
	members := set.Members()
	if len(members) == 0 {
		return "-"
	}

	names := make([]string, 0, len(members))
	for _, sig := range members {
		names = append(names, sig.String())
	}
	return strings.Join(names, " ")
}
