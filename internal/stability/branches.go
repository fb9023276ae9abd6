package stability

import (
	"math"

	"github.com/san-kum/chaoslab/internal/dynamo"
	"github.com/san-kum/chaoslab/internal/flow"
)

// BranchPoint is one equilibrium at one parameter value.
type BranchPoint struct {
	Rho    float64
	Value  float64 // the recorded coordinate of the equilibrium
	Stable bool
}

// BranchDiagram sweeps rho for a Lorenz system with the given sigma and
// beta, recording the coord-th coordinate of every equilibrium and whether
// it is stable there. The origin branch loses stability in a pitchfork at
// rho = 1; the C+- branches lose theirs at [HopfRho].
func BranchDiagram(sigma, beta, rhoMin, rhoMax float64, steps, coord int) ([]BranchPoint, error) {
	if steps <= 1 {
		steps = 2
	}
	step := (rhoMax - rhoMin) / float64(steps-1)

	points := make([]BranchPoint, 0, 3*steps)

	for i := 0; i < steps; i++ {
		rho := rhoMin + float64(i)*step
		sys := flow.NewLorenzWith(sigma, rho, beta)

		reports, err := Analyze(sys)
		if err != nil {
			return nil, err
		}

		for _, r := range reports {
			if coord >= len(r.Point) {
				continue
			}
			points = append(points, BranchPoint{
				Rho:    rho,
				Value:  r.Point[coord],
				Stable: r.Stable,
			})
		}
	}

	return points, nil
}

// HopfRho returns the rho at which the Lorenz C+- equilibria lose stability
// through a subcritical Hopf bifurcation:
//
//	rho_H = sigma (sigma + beta + 3) / (sigma - beta - 1)
//
// Only meaningful for sigma > beta + 1. For the canonical sigma=10,
// beta=8/3 this is about 24.74.
func HopfRho(sigma, beta float64) float64 {
	denom := sigma - beta - 1
	if denom <= 0 {
		return math.Inf(1)
	}
	return sigma * (sigma + beta + 3) / denom
}

// SeparationGrowth integrates two trajectories from x0 and x0 + delta and
// returns the log10 separation over time. The straight-line growth phase is
// the visual Lyapunov estimate from the notebook.
func SeparationGrowth(
	sys dynamo.System,
	integ dynamo.Stepper,
	x0 dynamo.State,
	delta float64,
	dt, duration float64,
) (times, logSep []float64) {
	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += delta

	t := 0.0
	for t < duration {
		x = integ.Step(sys, x, t, dt)
		xp = integ.Step(sys, xp, t, dt)
		t += dt

		sep := xp.Sub(x).Norm()
		if sep <= 0 {
			continue
		}
		times = append(times, t)
		logSep = append(logSep, math.Log10(sep))
	}
	return times, logSep
}
