package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/hancock/internal/config"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string
	maxIter    int
	workers    int
	outFile    string
	svgOut     string
	showPlot   bool
	plotWidth  int
	saveRun    bool
	steps      int
	metricName string
	maximize   bool
)

// main registers the commands and flags and executes the root command,
// exiting with status 1 if it returns an error.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hancock <base> [N] [vertical_spacing]",
		Short: "classify integers by the cycle of their digit-sum-square map",
		Long: `hancock iterates f(x) = (sum of base-b digits of x)² from every integer in 1..N,
groups the integers by the cycle they fall into and prints the pattern key.
A scatter plot of the grouping is written as SVG.`,
		Args:         cobra.RangeArgs(0, 3),
		SilenceUsage: true,
		RunE:         runClassify,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved runs")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	addClassifyFlags(rootCmd)
	rootCmd.Flags().StringVarP(&outFile, "out", "o", config.DefaultOut, "svg output path (empty to skip)")
	rootCmd.Flags().BoolVar(&showPlot, "plot", false, "draw a scatter plot in the terminal")
	rootCmd.Flags().IntVar(&plotWidth, "width", 72, "terminal plot width")
	rootCmd.Flags().BoolVar(&saveRun, "save", false, "save the run to the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().IntVar(&plotWidth, "width", 72, "terminal plot width")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a saved run as an SVG scatter plot",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output path (stdout when empty)")

	trajectoryCmd := &cobra.Command{
		Use:   "trajectory [base] [n]",
		Short: "plot the trajectory of a single integer",
		Args:  cobra.ExactArgs(2),
		RunE:  plotTrajectory,
	}
	trajectoryCmd.Flags().IntVar(&steps, "steps", 30, "map applications to plot")
	trajectoryCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration bound for cycle detection")

	exploreCmd := &cobra.Command{
		Use:   "explore [base] [N]",
		Short: "browse a classification interactively",
		Args:  cobra.RangeArgs(0, 2),
		RunE:  runExplore,
	}
	addClassifyFlags(exploreCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [from_base] [to_base] [N]",
		Short: "classify 1..N in every base of a range and report the extreme of a metric",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&metricName, "metric", "distinct_cycles", "metric to search")
	sweepCmd.Flags().BoolVar(&maximize, "maximize", false, "search for the largest value instead of the smallest")
	sweepCmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration bound per integer")
	sweepCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "goroutines used for cycle detection")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with default values",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(listCmd, showCmd, exportJSONCmd, exportCSVCmd, exportSVGCmd, trajectoryCmd, exploreCmd, sweepCmd, presetsCmd, initConfigCmd)
	return rootCmd
}

func addClassifyFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&maxIter, "max-iter", config.DefaultMaxIter, "iteration bound per integer")
	cmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "goroutines used for cycle detection")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}
