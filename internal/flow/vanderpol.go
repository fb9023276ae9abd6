package flow

import "github.com/san-kum/chaoslab/internal/dynamo"

type VanDerPol struct{ mu float64 }

func NewVanDerPol() *VanDerPol { return &VanDerPol{1.0} }

func (v *VanDerPol) Name() string { return "vanderpol" }
func (v *VanDerPol) Dim() int     { return 2 }

func (v *VanDerPol) Derive(s dynamo.State, _ float64) dynamo.State {
	return dynamo.State{s[1], v.mu*(1-s[0]*s[0])*s[1] - s[0]}
}

func (v *VanDerPol) DefaultState() dynamo.State { return dynamo.State{0.5, 0.0} }

func (v *VanDerPol) Jacobian(s dynamo.State) [][]float64 {
	return [][]float64{
		{0, 1},
		{-2*v.mu*s[0]*s[1] - 1, v.mu * (1 - s[0]*s[0])},
	}
}

func (v *VanDerPol) Params() map[string]float64 {
	return map[string]float64{"mu": v.mu}
}

func (v *VanDerPol) SetParam(n string, val float64) error {
	if n != "mu" {
		return dynamo.ErrUnknownParam
	}
	v.mu = val
	return nil
}
