package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/hancock/internal/config"
	"github.com/san-kum/hancock/internal/dynamo"
	"github.com/san-kum/hancock/internal/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func runIDFrom(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if id, ok := strings.CutPrefix(line, "run id: "); ok {
			return strings.TrimSpace(id)
		}
	}
	t.Fatalf("no run id in output:\n%s", out)
	return ""
}

func TestClassifyCommand(t *testing.T) {
	dir := t.TempDir()
	svg := filepath.Join(dir, "plot.svg")

	out, err := execute(t, "10", "10", "20", "--out", svg)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	for _, want := range []string{
		"classified 10 integers in base 10: 3 cycles, 0 other",
		"Pattern Key:",
		"1.6.9, 2.5.6",
		"Plot saved to " + svg,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if strings.Count(string(data), "<circle") != 10 {
		t.Error("expected one point per integer in the svg")
	}
}

func TestClassifyCommand_TerminalPlot(t *testing.T) {
	out, err := execute(t, "2", "3", "--out", "", "--plot", "--width", "20")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "1 cycles") {
		t.Errorf("expected a single cycle:\n%s", out)
	}
	if strings.Contains(out, "Plot saved") {
		t.Error("svg should be skipped with an empty --out")
	}
	if !strings.Contains(out, "└") {
		t.Errorf("expected a terminal plot:\n%s", out)
	}
}

func TestClassifyCommand_ZeroIterations(t *testing.T) {
	out, err := execute(t, "10", "25", "--max-iter", "0", "--out", "")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "0 cycles, 25 other") {
		t.Errorf("expected everything other:\n%s", out)
	}
}

func TestClassifyCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
		is   error
	}{
		{"malformed base", []string{"ten"}, "invalid base", nil},
		{"malformed n", []string{"10", "many"}, "invalid N", nil},
		{"malformed spacing", []string{"10", "5", "wide"}, "invalid vertical_spacing", nil},
		{"base too small", []string{"1", "--out", ""}, "", dynamo.ErrBaseTooSmall},
		{"zero n", []string{"10", "0", "--out", ""}, "", config.ErrInvalid},
		{"missing base", nil, "base is required", nil},
		{"unknown preset", []string{"--preset", "nope"}, "unknown preset", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error %v is not %v", err, tt.is)
			}
		})
	}
}

func TestClassifyCommand_Preset(t *testing.T) {
	out, err := execute(t, "--preset", "binary", "--out", "")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "classified 255 integers in base 2") {
		t.Errorf("preset not applied:\n%s", out)
	}
}

func TestClassifyCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hancock.yaml")
	if err := os.WriteFile(path, []byte("base: 16\nn: 1200\nmax_iter: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// positional N overrides the file
	out, err := execute(t, "--config", path, "16", "300", "--out", "")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "classified 300 integers in base 16") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestClassifyCommand_PresetWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hancock.yaml")
	if err := os.WriteFile(path, []byte("n: 50\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// the file only sets n, base comes from the preset
	out, err := execute(t, "--preset", "binary", "--config", path, "--out", "")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "classified 50 integers in base 2:") {
		t.Errorf("preset base not kept under config file:\n%s", out)
	}
}

func TestSavedRunCommands(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "runs")

	out, err := execute(t, "10", "50", "--out", "", "--save", "--data", data)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	runID := runIDFrom(t, out)

	out, err = execute(t, "list", "--data", data)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, runID) {
		t.Errorf("list missing run %s:\n%s", runID, out)
	}

	out, err = execute(t, "show", runID, "--data", data)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"run: " + runID, "Basins:", "convergence_rate"} {
		if !strings.Contains(out, want) {
			t.Errorf("show missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "export-json", runID, "--data", data)
	if err != nil {
		t.Fatalf("export-json: %v", err)
	}
	var exported export.ExportData
	if err := json.Unmarshal([]byte(out), &exported); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if exported.N != 50 || len(exported.Labels) != 50 {
		t.Errorf("unexpected export: n=%d labels=%d", exported.N, len(exported.Labels))
	}

	out, err = execute(t, "export-csv", runID, "--data", data)
	if err != nil {
		t.Fatalf("export-csv: %v", err)
	}
	if !strings.HasPrefix(out, "n,label,cycle\n1,a,1\n") {
		t.Errorf("unexpected csv:\n%s", out)
	}

	svg := filepath.Join(dir, "run.svg")
	if _, err := execute(t, "export-svg", runID, "--data", data, "--out", svg); err != nil {
		t.Fatalf("export-svg: %v", err)
	}
	if _, err := os.Stat(svg); err != nil {
		t.Errorf("svg not written: %v", err)
	}

	if _, err := execute(t, "show", "missing", "--data", data); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestListCommand_Empty(t *testing.T) {
	out, err := execute(t, "list", "--data", filepath.Join(t.TempDir(), "none"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "no runs found") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestTrajectoryCommand(t *testing.T) {
	out, err := execute(t, "trajectory", "10", "7", "--steps", "6")
	if err != nil {
		t.Fatalf("trajectory: %v", err)
	}
	for _, want := range []string{"trajectory of 7 (base 10)", "cycle: 1.6.9, 2.5.6", "transient: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "trajectory", "1", "7"); !errors.Is(err, dynamo.ErrBaseTooSmall) {
		t.Errorf("expected ErrBaseTooSmall, got %v", err)
	}
	if _, err := execute(t, "trajectory", "10", "-3"); err == nil {
		t.Error("expected error for negative n")
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %s", name)
		}
	}
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hancock.yaml")
	if _, err := execute(t, "init-config", path); err != nil {
		t.Fatalf("init-config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("unexpected config %+v", cfg)
	}

	if _, err := execute(t, "init-config", path); err == nil {
		t.Error("expected refusal to overwrite")
	}
}

func TestSweepCommand(t *testing.T) {
	out, err := execute(t, "sweep", "2", "10", "10", "--maximize")
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	for _, want := range []string{"BASE", "distinct_cycles", "max distinct_cycles: base"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := execute(t, "sweep", "10", "2"); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
	if _, err := execute(t, "sweep", "2", "4", "--metric", "nope"); err == nil {
		t.Error("expected error for unknown metric")
	}
}
