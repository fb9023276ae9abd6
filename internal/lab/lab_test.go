package lab

import (
	"context"
	"testing"
)

func TestRegistryLookups(t *testing.T) {
	r := NewRegistry()

	sys, err := r.GetSystem("lorenz")
	if err != nil {
		t.Fatal(err)
	}
	if sys.Dim() != 3 {
		t.Errorf("lorenz dim %d", sys.Dim())
	}

	if _, err := r.GetSystem("pendulum"); err == nil {
		t.Error("expected error for unknown system")
	}

	if _, err := r.GetStepper("rk4"); err != nil {
		t.Errorf("rk4 lookup failed: %v", err)
	}
	if _, err := r.GetStepper("verlet"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	m, err := r.GetMap("logistic")
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "logistic" {
		t.Errorf("map name %q", m.Name())
	}
}

func TestRegistryReturnsFreshInstances(t *testing.T) {
	r := NewRegistry()

	a, _ := r.GetSystem("lorenz")
	b, _ := r.GetSystem("lorenz")
	if a == b {
		t.Error("GetSystem should build a new instance per call")
	}
}

func TestStepperFactory(t *testing.T) {
	r := NewRegistry()
	factory, err := r.StepperFactory("rk4")
	if err != nil {
		t.Fatal(err)
	}
	if factory() == factory() {
		t.Error("factory should build distinct steppers")
	}
}

func TestListSorted(t *testing.T) {
	r := NewRegistry()

	systems := r.ListSystems()
	for i := 1; i < len(systems); i++ {
		if systems[i-1] > systems[i] {
			t.Fatalf("systems not sorted: %v", systems)
		}
	}
	if len(r.ListMaps()) != 4 {
		t.Errorf("expected 4 maps, got %v", r.ListMaps())
	}
}

func TestExperimentRun(t *testing.T) {
	r := NewRegistry()
	sys, _ := r.GetSystem("lorenz")
	stepper, _ := r.GetStepper("rk4")

	exp := NewExperiment(Config{
		System:     "lorenz",
		Integrator: "rk4",
		InitState:  []float64{1, 1, 1},
		Dt:         0.01,
		Duration:   1.0,
		Params:     map[string]float64{"rho": 28},
	})
	if err := exp.Setup(sys, stepper, r.DefaultMetrics()); err != nil {
		t.Fatal(err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.StepsTaken == 0 {
		t.Error("no steps taken")
	}
	if _, ok := result.Metrics["max_abs"]; !ok {
		t.Errorf("default metrics missing: %v", result.Metrics)
	}
}

func TestExperimentBadParam(t *testing.T) {
	r := NewRegistry()
	sys, _ := r.GetSystem("lorenz")
	stepper, _ := r.GetStepper("rk4")

	exp := NewExperiment(Config{
		InitState: []float64{1, 1, 1},
		Dt:        0.01, Duration: 1,
		Params: map[string]float64{"zeta": 1},
	})
	if err := exp.Setup(sys, stepper, nil); err == nil {
		t.Error("expected error for unknown parameter")
	}
}

func TestExperimentRunBeforeSetup(t *testing.T) {
	exp := NewExperiment(Config{})
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error when not set up")
	}
}
