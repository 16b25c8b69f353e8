//go:build linux

package main

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

type monotonicClock struct{}

func init() {
	processClock = monotonicClock{}
}

func (monotonicClock) Now() (time.Duration, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("read monotonic clock: %w", err)
	}
	return time.Duration(ts.Nano()), nil
}
