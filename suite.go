package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

type result struct {
	name       string
	iterations int
	elapsed    time.Duration
	seconds    float64
	ops        float64
}

type runner struct {
	out    io.Writer
	clock  clock
	logger *slog.Logger

	// interactive enables the transient status line; width bounds it.
	interactive bool
	width       int
}

func newRunner(out io.Writer, c clock, logger *slog.Logger) *runner {
	return &runner{out: out, clock: c, logger: logger}
}

// runAll prints the full report for probes, executed one after another in order.
// It stops only if the clock cannot be read.
func (r *runner) runAll(probes []probe) error {
	printTitle(r.out)
	printHeader(r.out)
	for _, p := range probes {
		res, err := r.run(p)
		if err != nil {
			return fmt.Errorf("benchmark %q: %w", p.name, err)
		}
		printResult(r.out, res.name, res.ops, res.seconds)
	}
	printFooter(r.out)
	return nil
}

func (r *runner) run(p probe) (result, error) {
	r.logger.Debug("starting benchmark", "name", p.name, "iterations", p.iterations)
	if r.interactive {
		printStatusLine(r.out, p, r.width)
	}

	start, err := r.clock.Now()
	if err != nil {
		return result{}, err
	}
	v := p.body(p.iterations)
	end, err := r.clock.Now()
	if err != nil {
		return result{}, err
	}
	sink = v

	if r.interactive {
		clearCurrentTerminalLine(r.out)
	}

	// A zero elapsed time gives +Inf here; that is reported rather than corrected.
	res := measure(p, end-start)
	r.logger.Debug("finished benchmark", "name", p.name, "elapsed", res.elapsed, "ops", res.ops)
	return res, nil
}

func measure(p probe, elapsed time.Duration) result {
	sec := elapsed.Seconds()
	return result{
		name:       p.name,
		iterations: p.iterations,
		elapsed:    elapsed,
		seconds:    sec,
		ops:        float64(p.iterations) / sec,
	}
}
