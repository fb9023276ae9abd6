package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 0.01
	DefaultDuration  = 50.0
	DefaultTransient = 20.0
)

type Config struct {
	System     string          `yaml:"system"`
	Integrator string          `yaml:"integrator"`
	Dt         float64         `yaml:"dt"`
	Duration   float64         `yaml:"duration"`
	InitState  InitStateConfig `yaml:"init_state"`
	Analysis   AnalysisConfig  `yaml:"analysis"`
}

type InitStateConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type AnalysisConfig struct {
	Transient    float64 `yaml:"transient"`
	Perturbation float64 `yaml:"perturbation"`
	ParamName    string  `yaml:"param_name"`
	ParamMin     float64 `yaml:"param_min"`
	ParamMax     float64 `yaml:"param_max"`
	ParamSteps   int     `yaml:"param_steps"`
}

func DefaultConfig() *Config {
	return &Config{
		System:     "lorenz",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		InitState:  InitStateConfig{X: 1.0, Y: 1.0, Z: 1.0},
		Analysis: AnalysisConfig{
			Transient:    DefaultTransient,
			Perturbation: 1e-8,
			ParamName:    "rho",
			ParamMin:     0.5,
			ParamMax:     45.0,
			ParamSteps:   200,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetInitState returns the initial state sized for the configured system.
func (c *Config) GetInitState() []float64 {
	switch c.System {
	case "duffing", "vanderpol":
		return []float64{c.InitState.X, c.InitState.Y}
	default:
		return []float64{c.InitState.X, c.InitState.Y, c.InitState.Z}
	}
}
