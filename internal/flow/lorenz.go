package flow

import "github.com/san-kum/chaoslab/internal/dynamo"

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz() *Lorenz { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }

func NewLorenzWith(sigma, rho, beta float64) *Lorenz { return &Lorenz{sigma, rho, beta} }

func (l *Lorenz) Name() string { return "lorenz" }
func (l *Lorenz) Dim() int     { return 3 }

// Derive calculates the Lorenz convection-model derivatives.
func (l *Lorenz) Derive(s dynamo.State, _ float64) dynamo.State {
	return dynamo.State{
		l.sigma * (s[1] - s[0]),
		s[0]*(l.rho-s[2]) - s[1],
		s[0]*s[1] - l.beta*s[2],
	}
}

func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{1.0, 1.0, 1.0} }

// Jacobian returns the analytic Jacobian at s.
func (l *Lorenz) Jacobian(s dynamo.State) [][]float64 {
	return [][]float64{
		{-l.sigma, l.sigma, 0},
		{l.rho - s[2], -1, -s[0]},
		{s[1], s[0], -l.beta},
	}
}

func (l *Lorenz) Params() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}

func (l *Lorenz) SetParam(n string, v float64) error {
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	default:
		return dynamo.ErrUnknownParam
	}
	return nil
}
