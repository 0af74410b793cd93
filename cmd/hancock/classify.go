package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/hancock/internal/analysis"
	"github.com/san-kum/hancock/internal/config"
	"github.com/san-kum/hancock/internal/export"
	"github.com/san-kum/hancock/internal/metrics"
	"github.com/san-kum/hancock/internal/storage"
	"github.com/san-kum/hancock/internal/viz"
)

var errNoBase = errors.New("base is required (or use --config / --preset)")

// resolveConfig layers defaults, preset, config file, environment, flags and
// positional arguments, in that order. Positional arguments are parsed
// before anything else so malformed input fails fast.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	positional := []string{"base", "N", "vertical_spacing"}
	parsed := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", positional[i], a, err)
		}
		parsed[i] = v
	}

	if len(args) == 0 && preset == "" && configFile == "" && os.Getenv("HANCOCK_BASE") == "" {
		return nil, errNoBase
	}

	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("max-iter") {
		cfg.MaxIter = maxIter
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if f := flags.Lookup("out"); f != nil && f.Changed {
		cfg.Out = outFile
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}

	if len(parsed) > 0 {
		cfg.Base = parsed[0]
	}
	if len(parsed) > 1 {
		cfg.N = parsed[1]
	}
	if len(parsed) > 2 {
		cfg.Spacing = parsed[2]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func classifyConfig(ctx context.Context, cfg *config.Config) (*analysis.Classification, error) {
	slog.Debug("classifying",
		"base", cfg.Base,
		"n", cfg.N,
		"max_iter", cfg.MaxIter,
		"workers", cfg.Workers,
	)
	return analysis.Classify(ctx,
		analysis.Params{N: cfg.N, Base: cfg.Base, MaxIter: cfg.MaxIter},
		analysis.WithWorkers(cfg.Workers),
		analysis.WithLogger(slog.Default()),
		analysis.WithMetrics(metrics.Defaults()...),
	)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	cls, err := classifyConfig(commandContext(cmd), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)
	counts := cls.Counts()
	p.Fprintf(out, "classified %d integers in base %d: %d cycles, %d other\n",
		cfg.N, cfg.Base, cls.Table.Len(), counts[analysis.Other])

	fmt.Fprintln(out)
	fmt.Fprint(out, viz.Key(cls))

	if showPlot {
		fmt.Fprintln(out)
		fmt.Fprint(out, viz.Scatter(cls, plotWidth))
		fmt.Fprintln(out, viz.Legend(cls.UniqueLabels()))
	}

	if cfg.Out != "" {
		if err := os.WriteFile(cfg.Out, []byte(export.ScatterSVG(cls, cfg.Spacing)), 0644); err != nil {
			return fmt.Errorf("failed to write plot: %w", err)
		}
		fmt.Fprintf(out, "\nPlot saved to %s\n", cfg.Out)
	}

	if saveRun {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cls, cfg.Spacing)
		if err != nil {
			return err
		}
		slog.Info("run saved", "id", runID, "dir", cfg.DataDir)
		fmt.Fprintf(out, "run id: %s\n", runID)
	}

	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	cls, err := classifyConfig(commandContext(cmd), cfg)
	if err != nil {
		return err
	}
	return viz.RunExplorer(cls)
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(out, "  %-14s base=%d n=%d spacing=%d max_iter=%d\n", name, p.Base, p.N, p.Spacing, p.MaxIter)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
