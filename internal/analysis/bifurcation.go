package analysis

import "github.com/san-kum/chaoslab/internal/dynamo"

// BifurcationPoint represents the sampled attractor for one parameter value.
type BifurcationPoint struct {
	Param  float64
	Values []float64 // distinct post-transient values found
}

// SweepBifurcation sweeps a parameter of a configurable system and records
// the distinct values one state variable settles onto. Useful for
// visualizing transitions to chaos.
//
// Per parameter value the trajectory is integrated for transient seconds
// before record seconds of sampling. Sampled values are quantized to de-dup.
// The swept parameter is restored afterwards.
func SweepBifurcation(
	sys dynamo.System,
	integ dynamo.Stepper,
	paramName string,
	paramMin, paramMax float64,
	paramSteps int,
	stateIndex int,
	x0 dynamo.State,
	dt, transient, record float64,
) ([]BifurcationPoint, error) {
	tunable, ok := sys.(dynamo.Configurable)
	if !ok {
		return nil, dynamo.ErrUnknownParam
	}
	original, ok := tunable.Params()[paramName]
	if !ok {
		return nil, dynamo.ErrUnknownParam
	}

	if paramSteps <= 1 {
		paramSteps = 2
	}
	paramStep := (paramMax - paramMin) / float64(paramSteps-1)

	results := make([]BifurcationPoint, 0, paramSteps)

	for i := 0; i < paramSteps; i++ {
		param := paramMin + float64(i)*paramStep
		if err := tunable.SetParam(paramName, param); err != nil {
			return nil, err
		}

		x := x0.Clone()
		t := 0.0

		for t < transient {
			x = integ.Step(sys, x, t, dt)
			t += dt
		}

		values := make([]float64, 0, 100)
		seen := make(map[int]bool)

		for t < transient+record {
			x = integ.Step(sys, x, t, dt)
			t += dt

			if stateIndex < len(x) {
				val := x[stateIndex]
				// Quantize to find distinct values
				key := int(val * 1000)
				if !seen[key] {
					seen[key] = true
					values = append(values, val)
				}
			}
		}

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}

	if err := tunable.SetParam(paramName, original); err != nil {
		return nil, err
	}

	return results, nil
}
