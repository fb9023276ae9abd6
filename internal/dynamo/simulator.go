package dynamo

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	sys       System
	stepper   Stepper
	metrics   []Metric
	observers []Observer
}

func New(sys System, stepper Stepper) *Simulator {
	return &Simulator{
		sys:       sys,
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) System() System { return s.sys }

func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.Dim() {
		return nil, fmt.Errorf("%w: state has %d components, %s needs %d",
			ErrDimensionMismatch, len(x0), s.sys.Name(), s.sys.Dim())
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([]State, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0
	dt := cfg.Dt

	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(x, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(x, t)
		}

		var newX State
		var stepErr error
		dtUsed := dt

		if cfg.Adaptive {
			var dtNext float64
			newX, dtUsed, dtNext, stepErr = s.adaptiveStep(x, t, dt, cfg)
			if stepErr != nil {
				result.Errors = append(result.Errors, &StepError{Step: result.StepsTaken, Time: t, Wrapped: stepErr})
				break
			}
			dt = dtNext
		} else {
			newX = s.stepper.Step(s.sys, x, t, dt)
		}

		if cfg.ValidateState && !newX.IsValid() {
			result.Errors = append(result.Errors, &StepError{Step: result.StepsTaken, Time: t, Wrapped: ErrInvalidState})
			break
		}

		x = newX
		t += dtUsed
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, t)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback streams states to the callback instead of recording them.
// Returning false from the callback stops the run.
func (s *Simulator) RunWithCallback(ctx context.Context, x0 State, cfg Config, callback func(State, float64) bool) error {
	if err := s.validateConfig(cfg); err != nil {
		return err
	}

	x := x0.Clone()
	t := 0.0

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !callback(x, t) {
			return nil
		}

		x = s.stepper.Step(s.sys, x, t, cfg.Dt)
		t += cfg.Dt

		if cfg.ValidateState && !x.IsValid() {
			return &StepError{Time: t, Wrapped: ErrInvalidState}
		}
	}

	return nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if cfg.Adaptive && cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive for adaptive stepping")
	}
	return nil
}

// adaptiveStep advances one step and returns the new state, the step size
// actually integrated, and the proposal for the next step.
func (s *Simulator) adaptiveStep(x State, t, dt float64, cfg Config) (State, float64, float64, error) {
	if adaptive, ok := s.stepper.(AdaptiveStepper); ok {
		newX, dtNext, err := adaptive.StepAdaptive(s.sys, x, t, dt, cfg.Tolerance)
		if err != nil {
			return nil, dt, dt, err
		}
		dtNext = math.Min(math.Max(dtNext, cfg.MinDt), cfg.MaxDt)
		return newX, dt, dtNext, nil
	}

	// Step doubling for fixed-step integrators: compare one full step
	// against two half steps.
	x1 := s.stepper.Step(s.sys, x, t, dt)
	xHalf := s.stepper.Step(s.sys, x, t, dt/2)
	x2 := s.stepper.Step(s.sys, xHalf, t+dt/2, dt/2)

	err := x1.Sub(x2).Norm()

	if err > cfg.Tolerance {
		if dt/2 < cfg.MinDt {
			return nil, dt, dt, ErrStepTooSmall
		}
		return s.adaptiveStep(x, t, dt/2, cfg)
	}

	dtNext := dt
	if err < cfg.Tolerance/10 && dt < cfg.MaxDt {
		dtNext = math.Min(dt*2, cfg.MaxDt)
	}

	return x2, dt, dtNext, nil
}
