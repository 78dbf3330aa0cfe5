package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

type runStats struct {
	elapsed     time.Duration
	cpuUsage    time.Duration // utime+stime
	maxRSSBytes int64
	inputBytes  int64
	lines       int
	groups      int
}

func collectStats(elapsed time.Duration, inputBytes int64, res result) (*runStats, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return nil, fmt.Errorf("error getting resource usage: %s", err)
	}
	return &runStats{
		elapsed:  elapsed,
		cpuUsage: time.Duration(ru.Utime.Nano() + ru.Stime.Nano()),
		// ru_maxrss is in KiB on Linux.
		maxRSSBytes: int64(ru.Maxrss) * 1024,
		inputBytes:  inputBytes,
		lines:       res.lines,
		groups:      res.groups,
	}, nil
}

func (rs *runStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "read %s (%s lines", humanize.Bytes(uint64(rs.inputBytes)), humanize.Comma(int64(rs.lines)))
	if rs.groups > 0 {
		fmt.Fprintf(&b, ", %s groups", humanize.Comma(int64(rs.groups)))
	}
	fmt.Fprintf(&b, ") in %s; cpu: %s, max RSS: %s",
		rs.elapsed.Round(time.Microsecond),
		rs.cpuUsage.Round(time.Millisecond),
		humanize.Bytes(uint64(rs.maxRSSBytes)),
	)
	return b.String()
}
