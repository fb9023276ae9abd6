package flow

import (
	"math"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

// Duffing is the periodically forced oscillator
//
//	x'' + delta x' + alpha x + beta x^3 = gamma cos(omega t)
//
// Non-autonomous: the forcing phase makes it the lab's stroboscopic-section
// example.
type Duffing struct{ delta, alpha, beta, gamma, omega float64 }

func NewDuffing() *Duffing { return &Duffing{0.3, -1.0, 1.0, 0.5, 1.2} }

func (d *Duffing) Name() string { return "duffing" }
func (d *Duffing) Dim() int     { return 2 }

func (d *Duffing) Derive(s dynamo.State, t float64) dynamo.State {
	return dynamo.State{
		s[1],
		-d.delta*s[1] - d.alpha*s[0] - d.beta*s[0]*s[0]*s[0] + d.gamma*math.Cos(d.omega*t),
	}
}

func (d *Duffing) DefaultState() dynamo.State { return dynamo.State{0.5, 0.0} }

// ForcingPeriod returns the period of the drive, 2 pi / omega.
func (d *Duffing) ForcingPeriod() float64 { return 2 * math.Pi / d.omega }

func (d *Duffing) Params() map[string]float64 {
	return map[string]float64{
		"delta": d.delta, "alpha": d.alpha, "beta": d.beta,
		"gamma": d.gamma, "omega": d.omega,
	}
}

func (d *Duffing) SetParam(n string, v float64) error {
	switch n {
	case "delta":
		d.delta = v
	case "alpha":
		d.alpha = v
	case "beta":
		d.beta = v
	case "gamma":
		d.gamma = v
	case "omega":
		d.omega = v
	default:
		return dynamo.ErrUnknownParam
	}
	return nil
}
