package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	labelWidth = 15
	opsWidth   = 15
	ruleWidth  = 61
)

var (
	rule    = "  " + strings.Repeat("-", ruleWidth)
	grouped = message.NewPrinter(language.English)
)

func printTitle(w io.Writer) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint(">>> Go Benchmark Suite <<<"))
}

func printHeader(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "  %-*s | %*s | Time\n", labelWidth, "Benchmark", opsWidth, "Performance")
	fmt.Fprintln(w, rule)
}

// printResult writes one report row. Padding is done on the plain text so the
// colour escapes do not disturb column alignment.
func printResult(w io.Writer, name string, ops float64, sec float64) {
	fmt.Fprintf(w, "  %s | %s OPS/sec | %s\n",
		color.CyanString("%-*s", labelWidth, name),
		color.GreenString("%*s", opsWidth, formatOps(ops)),
		color.YellowString("%.4fs", sec))
}

func printFooter(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
}

// formatOps renders a throughput with thousands separators and two decimals.
// Non-finite values come from a zero or negative elapsed time and are printed as is.
func formatOps(ops float64) string {
	if math.IsInf(ops, 0) || math.IsNaN(ops) {
		return strconv.FormatFloat(ops, 'f', 2, 64)
	}
	return grouped.Sprintf("%.2f", ops)
}
