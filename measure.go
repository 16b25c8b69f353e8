package main

import "time"

// clock returns monotonic readings. Only differences between two readings are meaningful.
type clock interface {
	Now() (time.Duration, error)
}

var processClock clock
