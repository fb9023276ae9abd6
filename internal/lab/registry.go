package lab

import (
	"fmt"
	"sort"

	"github.com/san-kum/chaoslab/internal/dynamo"
	"github.com/san-kum/chaoslab/internal/flow"
	"github.com/san-kum/chaoslab/internal/integrators"
	"github.com/san-kum/chaoslab/internal/maps"
	"github.com/san-kum/chaoslab/internal/metrics"
)

// Registry maps names to factories for the systems, integrators and maps
// the CLI exposes.
type Registry struct {
	systems  map[string]func() dynamo.System
	steppers map[string]func() dynamo.Stepper
	maps     map[string]func() maps.Map
}

func NewRegistry() *Registry {
	r := &Registry{
		systems:  make(map[string]func() dynamo.System),
		steppers: make(map[string]func() dynamo.Stepper),
		maps:     make(map[string]func() maps.Map),
	}

	r.systems["lorenz"] = func() dynamo.System { return flow.NewLorenz() }
	r.systems["rossler"] = func() dynamo.System { return flow.NewRossler() }
	r.systems["duffing"] = func() dynamo.System { return flow.NewDuffing() }
	r.systems["vanderpol"] = func() dynamo.System { return flow.NewVanDerPol() }

	r.steppers["euler"] = func() dynamo.Stepper { return integrators.NewEuler() }
	r.steppers["rk4"] = func() dynamo.Stepper { return integrators.NewRK4() }
	r.steppers["dopri45"] = func() dynamo.Stepper { return integrators.NewDopri45() }

	r.maps["logistic"] = func() maps.Map { return maps.NewLogistic() }
	r.maps["sine"] = func() maps.Map { return maps.NewSine() }
	r.maps["tent"] = func() maps.Map { return maps.NewTent() }
	r.maps["cubic"] = func() maps.Map { return maps.NewCubic() }

	return r
}

func (r *Registry) GetSystem(name string) (dynamo.System, error) {
	fn, ok := r.systems[name]
	if !ok {
		return nil, fmt.Errorf("unknown system: %s (have %v)", name, r.ListSystems())
	}
	return fn(), nil
}

func (r *Registry) GetStepper(name string) (dynamo.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

// StepperFactory returns the factory itself, for ensembles that need one
// stepper per goroutine.
func (r *Registry) StepperFactory(name string) (func() dynamo.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn, nil
}

func (r *Registry) GetMap(name string) (maps.Map, error) {
	fn, ok := r.maps[name]
	if !ok {
		return nil, fmt.Errorf("unknown map: %s (have %v)", name, r.ListMaps())
	}
	return fn(), nil
}

func (r *Registry) ListSystems() []string {
	names := make([]string, 0, len(r.systems))
	for name := range r.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListMaps() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics returns the metrics attached to every stored run.
func (r *Registry) DefaultMetrics() []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewExtremes(),
		metrics.NewVariance(0),
		metrics.NewBoundedness(200.0),
	}
}
