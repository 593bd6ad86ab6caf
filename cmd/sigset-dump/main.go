// Program sigset-dump prints the pending, blocked, ignored and caught signals
// of processes, as published by the kernel in /proc.
//
//	sigset-dump [pid...] [--all] [--threads]
//
// Without arguments it dumps its own process.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
