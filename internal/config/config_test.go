package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.System != "lorenz" {
		t.Errorf("default system %q", cfg.System)
	}
	if cfg.Integrator != "rk4" {
		t.Errorf("default integrator %q", cfg.Integrator)
	}
	if cfg.Dt != DefaultDt || cfg.Duration != DefaultDuration {
		t.Errorf("unexpected defaults: dt=%f duration=%f", cfg.Dt, cfg.Duration)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.System = "rossler"
	cfg.Dt = 0.005
	cfg.Analysis.ParamName = "c"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.System != "rossler" || loaded.Dt != 0.005 {
		t.Errorf("roundtrip lost fields: %+v", loaded)
	}
	if loaded.Analysis.ParamName != "c" {
		t.Errorf("analysis section lost: %+v", loaded.Analysis)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("system: duffing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.System != "duffing" {
		t.Errorf("system = %q", cfg.System)
	}
	// Unspecified fields keep their defaults.
	if cfg.Dt != DefaultDt {
		t.Errorf("dt = %f, want default", cfg.Dt)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetInitStateDimension(t *testing.T) {
	cfg := DefaultConfig()
	if n := len(cfg.GetInitState()); n != 3 {
		t.Errorf("lorenz init state has %d components", n)
	}

	cfg.System = "duffing"
	if n := len(cfg.GetInitState()); n != 2 {
		t.Errorf("duffing init state has %d components", n)
	}

	cfg.System = "vanderpol"
	if n := len(cfg.GetInitState()); n != 2 {
		t.Errorf("vanderpol init state has %d components", n)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("lorenz", "canonical")
	if p == nil {
		t.Fatal("canonical lorenz preset missing")
	}
	if p.Params["rho"] != 28 {
		t.Errorf("canonical rho = %f", p.Params["rho"])
	}

	if GetPreset("lorenz", "bogus") != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("bogus", "canonical") != nil {
		t.Error("expected nil for unknown system")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("lorenz")
	if len(names) == 0 {
		t.Fatal("no lorenz presets listed")
	}
	found := false
	for _, n := range names {
		if n == "stable" {
			found = true
		}
	}
	if !found {
		t.Error("stable preset not listed")
	}

	if ListPresets("bogus") != nil {
		t.Error("expected nil for unknown system")
	}
}
