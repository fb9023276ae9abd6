package lab

import (
	"context"
	"fmt"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

// Config describes one run the way the CLI sees it.
type Config struct {
	System     string
	Integrator string
	InitState  []float64
	Dt         float64
	Duration   float64
	Params     map[string]float64
}

// Experiment binds a config to a simulator.
type Experiment struct {
	cfg       Config
	simulator *dynamo.Simulator
}

func NewExperiment(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup applies parameter overrides to the system and builds the simulator.
func (e *Experiment) Setup(sys dynamo.System, stepper dynamo.Stepper, ms []dynamo.Metric) error {
	if len(e.cfg.Params) > 0 {
		tunable, ok := sys.(dynamo.Configurable)
		if !ok {
			return fmt.Errorf("system %s has no tunable parameters", sys.Name())
		}
		for name, v := range e.cfg.Params {
			if err := tunable.SetParam(name, v); err != nil {
				return fmt.Errorf("set %s=%v: %w", name, v, err)
			}
		}
	}

	e.simulator = dynamo.New(sys, stepper)
	for _, m := range ms {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not set up")
	}

	x0 := make(dynamo.State, len(e.cfg.InitState))
	copy(x0, e.cfg.InitState)

	simCfg := dynamo.DefaultConfig()
	simCfg.Dt = e.cfg.Dt
	simCfg.Duration = e.cfg.Duration

	return e.simulator.Run(ctx, x0, simCfg)
}

// Simulator exposes the underlying simulator for attaching observers.
func (e *Experiment) Simulator() *dynamo.Simulator {
	return e.simulator
}
