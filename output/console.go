// Package output renders scan results and progress for a terminal.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/sweep-scan/sweep/scan"
)

var (
	openColor   = color.New(color.FgGreen)
	closedColor = color.New(color.FgRed)
	faultColor  = color.New(color.FgYellow)
	headerColor = color.New(color.FgCyan)
)

// Console renders per-result lines, an in-place progress indicator and
// a final summary table to a writer. It is driven from the scanner's
// hooks, which fire from a single goroutine, so it keeps no locks.
type Console struct {
	out     io.Writer
	verbose bool
}

func NewConsole(w io.Writer, verbose bool) *Console {
	return &Console{out: w, verbose: verbose}
}

// Banner announces the start of a scan.
func (c *Console) Banner(target string, total int) {
	headerColor.Fprintf(c.out, "Scanning %s...\n", target)
	fmt.Fprintf(c.out, "Total ports to scan: %d\n", total)
}

// Result prints one line per completed probe. It is a no-op unless the
// console is verbose.
func (c *Console) Result(r scan.Result) {
	if !c.verbose {
		return
	}
	switch r.Status {
	case scan.StatusOpen:
		openColor.Fprintf(c.out, "[+] Port %d: OPEN - %s\n", r.Port, r.Service)
	case scan.StatusClosed:
		closedColor.Fprintf(c.out, "[-] Port %d: CLOSED\n", r.Port)
	case scan.StatusTimeout:
		faultColor.Fprintf(c.out, "[!] Port %d: TIMEOUT\n", r.Port)
	default:
		faultColor.Fprintf(c.out, "[!] Port %d: ERROR\n", r.Port)
	}
}

// Progress redraws the progress line in place.
func (c *Console) Progress(p scan.Progress) {
	pct := float64(p.Completed) / float64(p.Total) * 100
	fmt.Fprintf(c.out, "\rProgress: %.1f%% (%d/%d)", pct, p.Completed, p.Total)
}

// EndProgress terminates the in-place progress line.
func (c *Console) EndProgress() {
	fmt.Fprint(c.out, "\n")
}

// Interrupted notes that the scan was cancelled before finishing.
func (c *Console) Interrupted() {
	faultColor.Fprintln(c.out, "Scan interrupted, partial results follow")
}

// Summary prints the open ports found on target as a table, or a notice
// when none were found.
func (c *Console) Summary(target string, open []scan.Result) {
	if len(open) == 0 {
		faultColor.Fprintf(c.out, "No open ports found on %s\n", target)
		return
	}

	openColor.Fprintf(c.out, "Open ports on %s:\n", target)
	tw := tabwriter.NewWriter(c.out, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "PORT\tSTATE\tSERVICE")
	for _, r := range open {
		fmt.Fprintf(tw, "%d/tcp\t%s\t%s\n", r.Port, r.Status, r.Service)
	}
	tw.Flush()
}
