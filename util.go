package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func clearCurrentTerminalLine(w io.Writer) {
	w.Write([]byte("\r\033[K"))
}

// terminalWidth reports the width of stdout, or 0 when it cannot be determined.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// printStatusLine writes a transient line announcing the probe about to run,
// cut to width when width is positive. It does not end the line.
func printStatusLine(w io.Writer, p probe, width int) {
	line := grouped.Sprintf("Running %s (%d iterations)", p.name, p.iterations)
	if width > 0 && len(line) > width-1 {
		line = line[:width-1]
	}
	fmt.Fprint(w, line)
}
