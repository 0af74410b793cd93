package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hancock/internal/config"
	"github.com/san-kum/hancock/internal/optim"
	"github.com/san-kum/hancock/internal/viz"
)

func runSweep(cmd *cobra.Command, args []string) error {
	names := []string{"from_base", "to_base", "N"}
	vals := []int{0, 0, config.DefaultN}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", names[i], a, err)
		}
		vals[i] = v
	}

	bases, err := optim.BaseRange(vals[0], vals[1])
	if err != nil {
		return err
	}
	if vals[2] < 1 {
		return fmt.Errorf("%w: n must be at least 1, got %d", config.ErrInvalid, vals[2])
	}

	s := optim.NewSweep(bases, vals[2], maxIter, workers)
	best, points, err := s.Search(commandContext(cmd), metricName, maximize)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "BASE\tCYCLES\tOTHER\t%s\n", metricName)
	series := make([]float64, len(points))
	cycles := make([]float64, len(points))
	for i, p := range points {
		series[i] = p.Metrics[metricName]
		cycles[i] = float64(p.Cycles)
		fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\n", p.Base, p.Cycles, p.Other, series[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\ncycles %s\n", viz.Sparkline(cycles, len(cycles)))

	if len(series) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(min(80, max(len(series), 20))),
			asciigraph.Caption(fmt.Sprintf("%s by base (%d..%d)", metricName, vals[0], vals[1])),
		))
	}

	goal := "min"
	if maximize {
		goal = "max"
	}
	fmt.Fprintf(out, "\n%s %s: base %d (%.4f)\n", goal, metricName, best.Base, best.Metrics[metricName])
	return nil
}
