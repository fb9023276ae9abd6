package config

// Preset bundles a named configuration plus the parameter overrides that
// put a system into a known regime.
type Preset struct {
	Config *Config
	Params map[string]float64
}

var Presets = map[string]map[string]*Preset{
	"lorenz": {
		// The textbook chaotic attractor at rho=28.
		"canonical": {
			Config: &Config{
				System: "lorenz", Integrator: "rk4", Dt: 0.01, Duration: 50.0,
				InitState: InitStateConfig{X: 1.0, Y: 1.0, Z: 1.0},
			},
			Params: map[string]float64{"sigma": 10, "rho": 28, "beta": 8.0 / 3.0},
		},
		// Below the Hopf threshold: trajectories spiral into C+-.
		"stable": {
			Config: &Config{
				System: "lorenz", Integrator: "rk4", Dt: 0.01, Duration: 80.0,
				InitState: InitStateConfig{X: 1.0, Y: 1.0, Z: 1.0},
			},
			Params: map[string]float64{"sigma": 10, "rho": 10, "beta": 8.0 / 3.0},
		},
		// Transient chaos just below rho_H ~ 24.74.
		"preturbulent": {
			Config: &Config{
				System: "lorenz", Integrator: "rk4", Dt: 0.005, Duration: 120.0,
				InitState: InitStateConfig{X: 1.0, Y: 1.0, Z: 1.0},
			},
			Params: map[string]float64{"sigma": 10, "rho": 24.0, "beta": 8.0 / 3.0},
		},
		// Large-rho periodic window.
		"periodic": {
			Config: &Config{
				System: "lorenz", Integrator: "rk4", Dt: 0.005, Duration: 100.0,
				InitState: InitStateConfig{X: 1.0, Y: 1.0, Z: 1.0},
			},
			Params: map[string]float64{"sigma": 10, "rho": 100.5, "beta": 8.0 / 3.0},
		},
	},
	"rossler": {
		"canonical": {
			Config: &Config{
				System: "rossler", Integrator: "rk4", Dt: 0.01, Duration: 200.0,
				InitState: InitStateConfig{X: 1.0, Y: 1.0, Z: 1.0},
			},
			Params: map[string]float64{"a": 0.2, "b": 0.2, "c": 5.7},
		},
		"period2": {
			Config: &Config{
				System: "rossler", Integrator: "rk4", Dt: 0.01, Duration: 200.0,
				InitState: InitStateConfig{X: 1.0, Y: 1.0, Z: 1.0},
			},
			Params: map[string]float64{"a": 0.2, "b": 0.2, "c": 3.5},
		},
	},
	"duffing": {
		"chaotic": {
			Config: &Config{
				System: "duffing", Integrator: "rk4", Dt: 0.005, Duration: 300.0,
				InitState: InitStateConfig{X: 0.5, Y: 0.0},
			},
			Params: map[string]float64{"delta": 0.3, "alpha": -1, "beta": 1, "gamma": 0.5, "omega": 1.2},
		},
	},
	"logistic": {
		// Sweep through the period-doubling cascade.
		"cascade": {
			Config: &Config{
				System: "logistic",
				Analysis: AnalysisConfig{
					ParamName: "r", ParamMin: 2.5, ParamMax: 4.0, ParamSteps: 400,
				},
			},
		},
		// Fully developed chaos at r=4.
		"chaos": {
			Config: &Config{System: "logistic"},
			Params: map[string]float64{"r": 4.0},
		},
		// The period-3 window past r ~ 3.83.
		"window3": {
			Config: &Config{System: "logistic"},
			Params: map[string]float64{"r": 3.835},
		},
	},
}

func GetPreset(system, preset string) *Preset {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	p, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return p
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}
