//go:build !linux

package main

import "time"

// wallClock measures against a process-start reference; time.Since uses the
// runtime's monotonic reading, so wall clock adjustments do not leak in.
type wallClock struct {
	epoch time.Time
}

func init() {
	processClock = &wallClock{epoch: time.Now()}
}

func (w *wallClock) Now() (time.Duration, error) { return time.Since(w.epoch), nil }
