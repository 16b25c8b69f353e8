package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	noColor bool
	verbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "primbench",
		Short: "Time primitive operations and report their throughput",
		Long: `primbench runs five fixed micro-benchmarks in order and prints one row
per benchmark with its throughput and elapsed time:

  Integer Add     increment an integer counter
  Double Arith    add 1.1 to a floating point accumulator
  String Concat   append one character to a growing string
  Array Push      append the loop index to a growing slice
  Struct Access   write then read a field on a record`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			r := newRunner(color.Output, processClock, newLogger(verbose))
			// The status line relies on escape codes, so it follows the colour setting.
			if isInteractive(os.Stdout) && !color.NoColor {
				r.interactive = true
				r.width = terminalWidth()
			}
			return r.runAll(defaultProbes)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log benchmark progress to stderr")
	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		newLogger(false).Error("benchmark suite failed", "err", err)
		os.Exit(1)
	}
}
