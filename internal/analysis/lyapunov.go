package analysis

import (
	"math"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

// LargestLyapunov estimates the largest Lyapunov exponent using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
//  1. Run two trajectories separated by d0
//  2. Each step, record ln(d/d0) and rescale the pair back to d0
//  3. lambda ~= mean(ln(d/d0)) / dt
func LargestLyapunov(
	sys dynamo.System,
	integ dynamo.Stepper,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 {
		return 0
	}

	x0p := x0.Clone()
	x0p[0] += perturbation

	return lyapunovForPerturbation(sys, integ, x0, x0p, dt, duration, perturbation)
}

// LyapunovSpectrum computes one exponent per state dimension by perturbing
// each dimension independently.
func LyapunovSpectrum(
	sys dynamo.System,
	integ dynamo.Stepper,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) []float64 {
	n := len(x0)
	spectrum := make([]float64, n)

	for i := 0; i < n; i++ {
		xp := x0.Clone()
		xp[i] += perturbation

		spectrum[i] = lyapunovForPerturbation(sys, integ, x0, xp, dt, duration, perturbation)
	}

	return spectrum
}

func lyapunovForPerturbation(
	sys dynamo.System,
	integ dynamo.Stepper,
	x0, x0p dynamo.State,
	dt, duration, d0 float64,
) float64 {
	x := x0.Clone()
	xp := x0p.Clone()

	t := 0.0
	sumLog := 0.0
	count := 0

	for t < duration {
		x = integ.Step(sys, x, t, dt)
		xp = integ.Step(sys, xp, t, dt)
		t += dt

		sep := 0.0
		for i := range x {
			diff := xp[i] - x[i]
			sep += diff * diff
		}
		sep = math.Sqrt(sep)

		if sep > 0 && d0 > 0 {
			sumLog += math.Log(sep / d0)
			count++

			// Rescale the companion back to distance d0 so each step
			// contributes one log growth ratio.
			scale := d0 / sep
			for i := range xp {
				xp[i] = x[i] + (xp[i]-x[i])*scale
			}
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
