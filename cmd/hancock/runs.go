package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/hancock/internal/analysis"
	"github.com/san-kum/hancock/internal/dynamo"
	"github.com/san-kum/hancock/internal/export"
	"github.com/san-kum/hancock/internal/storage"
	"github.com/san-kum/hancock/internal/viz"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBASE\tN\tMAX_ITER\tCYCLES\tTIME")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
			run.ID,
			run.Base,
			run.N,
			run.MaxIter,
			len(run.Order),
			run.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	cls, meta, err := st.LoadClassification(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "base: %d  n: %d  max_iter: %d  spacing: %d\n\n", meta.Base, meta.N, meta.MaxIter, meta.Spacing)

	fmt.Fprint(out, viz.Key(cls))
	fmt.Fprintln(out)
	fmt.Fprint(out, viz.Scatter(cls, plotWidth))
	fmt.Fprintln(out)

	fmt.Fprintln(out, viz.TitleStyle.Render("Basins:"))
	counts := cls.Counts()
	for i, lbl := range cls.UniqueLabels() {
		frac := 0.0
		if meta.N > 0 {
			frac = float64(counts[lbl]) / float64(meta.N)
		}
		fmt.Fprintf(out, "  %6s %s %5d (%.1f%%)\n", lbl, viz.BasinBar(frac, 30, i), counts[lbl], frac*100)
	}

	if len(cls.Metrics) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, viz.TitleStyle.Render("Metrics:"))
		names := make([]string, 0, len(cls.Metrics))
		for name := range cls.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %s%s\n", viz.MetricLabel.Render(name), viz.MetricValue.Render(strconv.FormatFloat(cls.Metrics[name], 'f', 4, 64)))
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cls, _, err := storage.New(dataDir).LoadClassification(args[0])
	if err != nil {
		return err
	}
	return export.WriteJSON(cmd.OutOrStdout(), cls)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cls, _, err := storage.New(dataDir).LoadClassification(args[0])
	if err != nil {
		return err
	}
	return export.WriteCSV(cmd.OutOrStdout(), cls)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cls, meta, err := storage.New(dataDir).LoadClassification(args[0])
	if err != nil {
		return err
	}

	svg := export.ScatterSVG(cls, meta.Spacing)
	if svgOut == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), svg)
		return err
	}
	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Plot saved to %s\n", svgOut)
	return nil
}

func plotTrajectory(cmd *cobra.Command, args []string) error {
	base, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid base %q: %w", args[0], err)
	}
	n, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid n %q: %w", args[1], err)
	}

	m, err := dynamo.NewMap(base)
	if err != nil {
		return err
	}
	det, err := dynamo.NewDetector(m, maxIter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	traj := det.Trajectory(dynamo.Value(n), steps)
	data := make([]float64, len(traj))
	for i, v := range traj {
		data[i] = float64(v)
		fmt.Fprintf(out, "  %3d  %-12d %s\n", i, v, analysis.FormatValue(m, v))
	}
	fmt.Fprintln(out)

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("trajectory of %d (base %d)", n, base)),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)

	orbit, ok := det.Detect(dynamo.Value(n))
	if !ok {
		fmt.Fprintf(out, "no cycle within %d steps (%s)\n", maxIter, analysis.Other)
		return nil
	}
	fmt.Fprintf(out, "cycle: %s\n", analysis.FormatCycle(m, orbit.Cycle))
	fmt.Fprintf(out, "length: %d  transient: %d  steps: %d\n", len(orbit.Cycle), orbit.Transient, orbit.Steps)
	return nil
}
