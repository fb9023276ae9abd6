package maps

import (
	"math"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

// Map is a one-dimensional discrete-time system x_{n+1} = f(x_n).
type Map interface {
	Apply(x float64) float64
	Derivative(x float64) float64
	Name() string
	Params() map[string]float64
	SetParam(name string, value float64) error
	DefaultX0() float64
	Domain() (lo, hi float64)
}

// Logistic is x -> r x (1 - x) on [0, 1].
type Logistic struct{ r float64 }

func NewLogistic() *Logistic { return &Logistic{3.2} }

func (m *Logistic) Name() string                 { return "logistic" }
func (m *Logistic) Apply(x float64) float64      { return m.r * x * (1 - x) }
func (m *Logistic) Derivative(x float64) float64 { return m.r * (1 - 2*x) }
func (m *Logistic) DefaultX0() float64           { return 0.5 }
func (m *Logistic) Domain() (float64, float64)   { return 0, 1 }
func (m *Logistic) Params() map[string]float64   { return map[string]float64{"r": m.r} }
func (m *Logistic) SetParam(n string, v float64) error {
	if n != "r" {
		return dynamo.ErrUnknownParam
	}
	m.r = v
	return nil
}

// Sine is x -> r sin(pi x) on [0, 1]. Same universality class as logistic.
type Sine struct{ r float64 }

func NewSine() *Sine { return &Sine{0.8} }

func (m *Sine) Name() string                 { return "sine" }
func (m *Sine) Apply(x float64) float64      { return m.r * math.Sin(math.Pi*x) }
func (m *Sine) Derivative(x float64) float64 { return m.r * math.Pi * math.Cos(math.Pi*x) }
func (m *Sine) DefaultX0() float64           { return 0.5 }
func (m *Sine) Domain() (float64, float64)   { return 0, 1 }
func (m *Sine) Params() map[string]float64   { return map[string]float64{"r": m.r} }
func (m *Sine) SetParam(n string, v float64) error {
	if n != "r" {
		return dynamo.ErrUnknownParam
	}
	m.r = v
	return nil
}

// Tent is the piecewise-linear map with slope +-mu.
type Tent struct{ mu float64 }

func NewTent() *Tent { return &Tent{1.5} }

func (m *Tent) Name() string { return "tent" }
func (m *Tent) Apply(x float64) float64 {
	if x < 0.5 {
		return m.mu * x
	}
	return m.mu * (1 - x)
}
func (m *Tent) Derivative(x float64) float64 {
	if x < 0.5 {
		return m.mu
	}
	return -m.mu
}
func (m *Tent) DefaultX0() float64         { return 0.3 }
func (m *Tent) Domain() (float64, float64) { return 0, 1 }
func (m *Tent) Params() map[string]float64 { return map[string]float64{"mu": m.mu} }
func (m *Tent) SetParam(n string, v float64) error {
	if n != "mu" {
		return dynamo.ErrUnknownParam
	}
	m.mu = v
	return nil
}

// Cubic is x -> r x (1 - x^2), a bimodal map on [-1, 1].
type Cubic struct{ r float64 }

func NewCubic() *Cubic { return &Cubic{2.0} }

func (m *Cubic) Name() string                 { return "cubic" }
func (m *Cubic) Apply(x float64) float64      { return m.r * x * (1 - x*x) }
func (m *Cubic) Derivative(x float64) float64 { return m.r * (1 - 3*x*x) }
func (m *Cubic) DefaultX0() float64           { return 0.4 }
func (m *Cubic) Domain() (float64, float64)   { return -1, 1 }
func (m *Cubic) Params() map[string]float64   { return map[string]float64{"r": m.r} }
func (m *Cubic) SetParam(n string, v float64) error {
	if n != "r" {
		return dynamo.ErrUnknownParam
	}
	m.r = v
	return nil
}
