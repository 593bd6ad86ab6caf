package main

import (
	"context"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	all      bool
	threads  bool
	workers  int
	logLevel string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "sigset-dump [pid...]",
		Short:         "Print the signal sets of processes",
		Long:          "Print the pending, blocked, ignored and caught signals of processes.\nPids may be numbers or \"self\".",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return errors.Wrap(err, "log level")
			}
			logrus.SetLevel(level)

			if opts.workers < 1 {
				return errors.Errorf("workers must be at least 1, got %d", opts.workers)
			}

			pids, err := selectPids(cmd.Context(), opts.all, args)
			if err != nil {
				return err
			}
			logrus.WithField("count", len(pids)).Debug("Dumping processes")

			reports, err := collect(cmd.Context(), pids, opts.threads, opts.workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range reports {
				if err := r.write(out); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.all, "all", false, "dump every process on the system")
	flags.BoolVar(&opts.threads, "threads", false, "include the per-thread sets of every thread")
	flags.IntVar(&opts.workers, "workers", 8, "number of processes to read concurrently")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

// selectPids turns the command line into a sorted list of unique pids.
func selectPids(ctx context.Context, all bool, args []string) ([]int, error) {
	if all {
		if len(args) > 0 {
			return nil, errors.New("--all doesn't take pids")
		}

		pids32, err := process.PidsWithContext(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "list processes")
		}

		pids := make([]int, 0, len(pids32))
		for _, pid := range pids32 {
			pids = append(pids, int(pid))
		}
		sort.Ints(pids)
		return pids, nil
	}

	if len(args) == 0 {
		return []int{os.Getpid()}, nil
	}

	seen := make(map[int]bool)
	var pids []int
	for _, arg := range args {
		pid, err := parsePid(arg)
		if err != nil {
			return nil, err
		}
		if seen[pid] {
			continue
		}
		seen[pid] = true
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids, nil
}

func parsePid(arg string) (int, error) {
	if arg == "self" {
		return os.Getpid(), nil
	}

	pid, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "pid %q", arg)
	}
	if pid < 1 {
		return 0, errors.Errorf("pid %d must be positive", pid)
	}
	return pid, nil
}
