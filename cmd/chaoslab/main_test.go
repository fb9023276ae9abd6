package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/chaoslab/internal/analysis"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addRunFlags(cmd)
	return cmd
}

func TestParseSetParams(t *testing.T) {
	setParams = []string{"rho=24", "beta=2.5"}
	defer func() { setParams = nil }()

	params, err := parseSetParams()
	if err != nil {
		t.Fatal(err)
	}
	if params["rho"] != 24 || params["beta"] != 2.5 {
		t.Errorf("parsed %v", params)
	}

	setParams = []string{"rho"}
	if _, err := parseSetParams(); err == nil {
		t.Error("expected error for missing value")
	}

	setParams = []string{"rho=abc"}
	if _, err := parseSetParams(); err == nil {
		t.Error("expected error for non-numeric value")
	}

	setParams = nil
	params, err = parseSetParams()
	if err != nil || params != nil {
		t.Errorf("empty input should give nil map, got %v, %v", params, err)
	}
}

func TestResolveRunConfigFlagBeatsFile(t *testing.T) {
	cmd := newRunCmd()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("dt: 0.02\nintegrator: euler\n"), 0644); err != nil {
		t.Fatal(err)
	}
	configFile = path
	preset = ""
	defer func() { configFile = "" }()

	if err := cmd.Flags().Set("dt", "0.05"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveRunConfig(cmd, "lorenz")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dt != 0.05 {
		t.Errorf("flag should beat file: dt=%f", cfg.Dt)
	}
	if cfg.Integrator != "euler" {
		t.Errorf("file should beat default: integrator=%q", cfg.Integrator)
	}
}

func TestResolveRunConfigPreset(t *testing.T) {
	cmd := newRunCmd()

	configFile = ""
	preset = "stable"
	defer func() { preset = "" }()

	cfg, err := resolveRunConfig(cmd, "lorenz")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params["rho"] != 10 {
		t.Errorf("stable preset rho=%f, want 10", cfg.Params["rho"])
	}
	if cfg.Duration != 80 {
		t.Errorf("preset duration not applied: %f", cfg.Duration)
	}
}

func TestResolveRunConfigFlagBeatsPreset(t *testing.T) {
	cmd := newRunCmd()

	configFile = ""
	preset = "stable"
	defer func() { preset = "" }()

	if err := cmd.Flags().Set("time", "5"); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveRunConfig(cmd, "lorenz")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Duration != 5 {
		t.Errorf("flag should beat preset: duration=%f", cfg.Duration)
	}
}

func TestResolveRunConfigUnknownPreset(t *testing.T) {
	cmd := newRunCmd()

	configFile = ""
	preset = "bogus"
	defer func() { preset = "" }()

	if _, err := resolveRunConfig(cmd, "lorenz"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestSetOverridesBeatPresetParams(t *testing.T) {
	cmd := newRunCmd()

	configFile = ""
	preset = "stable"
	setParams = []string{"rho=24"}
	defer func() {
		preset = ""
		setParams = nil
	}()

	cfg, err := resolveRunConfig(cmd, "lorenz")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params["rho"] != 24 {
		t.Errorf("--set should beat preset params: rho=%f", cfg.Params["rho"])
	}
}

func TestBinFrequency(t *testing.T) {
	// A 2 hz sine sampled at dt=0.01: 1000 samples pad to 1024, and the
	// bin scale must use the padded length, not the record duration.
	dt := 0.01
	data := make([]float64, 1000)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 2 * float64(i) * dt)
	}

	padded := analysis.PadPow2(data)
	if len(padded) != 1024 {
		t.Fatalf("padded length %d, want 1024", len(padded))
	}

	ps := analysis.PowerSpectrum(padded)
	maxIdx := 0
	for i := 1; i < len(ps)/2; i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}

	freq := binFrequency(maxIdx, len(padded), dt)
	if math.Abs(freq-2.0) > 0.1 {
		t.Errorf("dominant frequency %.3f hz, want ~2", freq)
	}

	if binFrequency(3, 0, dt) != 0 || binFrequency(3, 1024, 0) != 0 {
		t.Error("degenerate inputs should map to zero")
	}
}
