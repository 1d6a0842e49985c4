// Package output renders benchmark results to the console.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/wesleyorama2/primebench/internal/benchmark/engine"
)

// ColorScheme defines the colors used for different elements in the output.
type ColorScheme struct {
	Header    *color.Color
	Label     *color.Color
	Value     *color.Color
	Success   *color.Color
	Error     *color.Color
	Dim       *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:    color.New(color.FgCyan, color.Bold),
		Label:     color.New(color.FgYellow),
		Value:     color.New(color.FgWhite),
		Success:   color.New(color.FgGreen),
		Error:     color.New(color.FgRed, color.Bold),
		Dim:       color.New(color.Faint),
		Highlight: color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Header.DisableColor()
	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Dim.DisableColor()
	scheme.Highlight.DisableColor()

	return scheme
}

// Console writes benchmark progress and results to a writer.
type Console struct {
	writer  io.Writer
	scheme  *ColorScheme
	quiet   bool
	verbose bool
}

// Config contains configuration for a Console.
type Config struct {
	// Writer defaults to os.Stdout.
	Writer io.Writer

	// NoColor forces colors off even on a TTY.
	NoColor bool

	// Quiet suppresses everything except the final per-strategy lines.
	Quiet bool

	// Verbose adds per-strategy timing distributions and task counts.
	Verbose bool
}

// NewConsole creates a console output handler. Colors are enabled only
// when the writer is a terminal and NoColor is unset.
func NewConsole(cfg Config) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	scheme := NoColorScheme()
	if !cfg.NoColor && isTerminal(cfg.Writer) {
		scheme = DefaultColorScheme()
	}

	return &Console{
		writer:  cfg.Writer,
		scheme:  scheme,
		quiet:   cfg.Quiet,
		verbose: cfg.Verbose,
	}
}

// isTerminal checks if the writer is a terminal.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// PrintHeader prints the run banner: benchmark name, process identifier,
// available parallelism, and the candidate bound.
func (c *Console) PrintHeader(name string, pid, parallelism int, bound int64) {
	if c.quiet {
		return
	}

	c.scheme.Header.Fprintln(c.writer, name)
	fmt.Fprintf(c.writer, "PID         = %d\n", pid)
	fmt.Fprintf(c.writer, "Parallelism = %d\n", parallelism)
	fmt.Fprintf(c.writer, "Bound       = %d\n", bound)
	fmt.Fprintln(c.writer)
}

// PrintStrategyStart announces the strategy about to be measured.
func (c *Console) PrintStrategyStart(name string) {
	if c.quiet {
		return
	}
	c.scheme.Dim.Fprintf(c.writer, "running %s...\n", name)
}

// PrintSummary prints one line per strategy, plus distributions and task
// counts in verbose mode. Failed strategies print a diagnostic instead of
// a duration.
func (c *Console) PrintSummary(result *engine.Result) {
	if result == nil {
		fmt.Fprintln(c.writer, "No results available")
		return
	}

	if !c.quiet {
		fmt.Fprintln(c.writer)
		c.scheme.Header.Fprintln(c.writer, "─── Results "+strings.Repeat("─", 48))
	}

	for _, sr := range result.Strategies {
		label := fmt.Sprintf("%-14s", sr.Strategy)

		switch {
		case sr.Skipped:
			c.scheme.Label.Fprint(c.writer, label)
			c.scheme.Dim.Fprintln(c.writer, "skipped")
		case sr.Error != "":
			c.scheme.Label.Fprint(c.writer, label)
			c.scheme.Error.Fprint(c.writer, "unavailable")
			fmt.Fprintf(c.writer, "  (%s)\n", sr.Error)
		default:
			c.scheme.Label.Fprint(c.writer, label)
			c.scheme.Success.Fprint(c.writer, formatDuration(perRun(sr)))
			if sr.Runs > 1 {
				c.scheme.Dim.Fprintf(c.writer, "  mean of %d runs", sr.Runs)
			}
			fmt.Fprintln(c.writer)

			if c.verbose && sr.Timing != nil {
				fmt.Fprintf(c.writer, "  primes: %d  tasks: %d\n", sr.Primes, sr.Tasks)
				fmt.Fprintf(c.writer, "  min: %s  p50: %s  p95: %s  max: %s  stddev: %s\n",
					formatDuration(sr.Timing.Min),
					formatDuration(sr.Timing.P50),
					formatDuration(sr.Timing.P95),
					formatDuration(sr.Timing.Max),
					formatDuration(sr.Timing.StdDev),
				)
			}
		}
	}

	if !c.quiet {
		fmt.Fprintln(c.writer)
		c.scheme.Dim.Fprintf(c.writer, "total %s\n", formatDuration(result.Duration))
	}
}

// perRun is the mean wall time of the measured runs.
func perRun(sr *engine.StrategyResult) time.Duration {
	if sr.Runs == 0 {
		return 0
	}
	return sr.Elapsed / time.Duration(sr.Runs)
}

// formatDuration rounds a duration to a display-friendly precision.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}
