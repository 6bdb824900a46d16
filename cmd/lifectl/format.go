package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"squarevolution/internal/app"
	"squarevolution/internal/core"
	"squarevolution/internal/survey"
	"squarevolution/internal/ui"
	"squarevolution/pkg/life"
)

const (
	aliveBlock = "██"
	deadBlock  = "  "
)

func printRunReport(w io.Writer, cfg *app.Config, sb *app.Sandbox, elapsed time.Duration) {
	fmt.Fprintf(w, "Pattern %q (seed %d)\n", cfg.Pattern, cfg.Seed)
	fmt.Fprintln(w, strings.Repeat("=", 24))
	for _, line := range ui.StatusLines(sb.Parameters()) {
		fmt.Fprintln(w, line)
	}
	if bounds, ok := sb.Grid().Bounds(); ok {
		fmt.Fprintf(w, "Bounds: %v (%dx%d)\n", bounds, bounds.Width(), bounds.Height())
	} else {
		fmt.Fprintln(w, "Bounds: empty")
	}
	fmt.Fprintf(w, "Elapsed: %s\n", elapsed.Round(time.Microsecond))
}

func printSweepReport(w io.Writer, pattern string, opts sweepOptions, ranked []survey.Result, elapsed time.Duration) {
	extinct := 0
	for _, r := range ranked {
		if r.Extinct {
			extinct++
		}
	}
	fmt.Fprintf(w, "Swept %d seeds of %q for %d generations (elapsed %s)\n",
		len(ranked), pattern, opts.generations, elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "Extinct: %d/%d\n\n", extinct, len(ranked))

	fmt.Fprintf(w, "Top %d results:\n", min(opts.top, len(ranked)))
	fmt.Fprintf(w, "%4s  %8s  %10s  %10s  %6s  %s\n", "#", "seed", "population", "peak", "chunks", "bounds")
	for i := 0; i < len(ranked) && i < opts.top; i++ {
		r := ranked[i]
		bounds := "-"
		if !r.Extinct {
			bounds = r.Bounds.String()
		}
		fmt.Fprintf(w, "%3d)  %8d  %10d  %10d  %6d  %s\n", i+1, r.Seed, r.Population, r.PeakPopulation, r.ActiveChunks, bounds)
	}
}

func printPatterns(w io.Writer) {
	factories := core.Patterns()
	for _, name := range core.PatternNames() {
		p := factories[name](nil)
		fmt.Fprintf(w, "%-12s %s\n", name, p.Description())
	}
}

// renderCells prints r with the highest row first, two columns per cell.
func renderCells(w io.Writer, g *life.Grid, r life.Rect) {
	var sb strings.Builder
	for y := int64(r.Max.Y); y >= int64(r.Min.Y); y-- {
		sb.Reset()
		for x := int64(r.Min.X); x <= int64(r.Max.X); x++ {
			if g.Get(life.C(int32(x), int32(y))) {
				sb.WriteString(aliveBlock)
			} else {
				sb.WriteString(deadBlock)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(sb.String(), " "))
	}
}
