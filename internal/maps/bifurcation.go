package maps

import (
	"math"

	"github.com/san-kum/chaoslab/internal/dynamo"
)

// BifurcationPoint holds the sampled attractor of a map at one parameter
// value, plus the Lyapunov exponent there.
type BifurcationPoint struct {
	Param    float64
	Values   []float64
	Lyapunov float64
}

// Bifurcation sweeps paramName over [paramMin, paramMax] and records the
// post-transient orbit at each value. The classic period-doubling cascade
// appears for the logistic map swept over r in [2.5, 4].
//
// The swept parameter is restored before returning.
func Bifurcation(
	m Map,
	paramName string,
	paramMin, paramMax float64,
	paramSteps int,
	transient, samples int,
) ([]BifurcationPoint, error) {
	original, ok := m.Params()[paramName]
	if !ok {
		return nil, dynamo.ErrUnknownParam
	}

	if paramSteps <= 1 {
		paramSteps = 2
	}
	step := (paramMax - paramMin) / float64(paramSteps-1)

	points := make([]BifurcationPoint, 0, paramSteps)

	for i := 0; i < paramSteps; i++ {
		p := paramMin + float64(i)*step
		if err := m.SetParam(paramName, p); err != nil {
			return nil, err
		}

		x0 := m.DefaultX0()
		orbit := Orbit(m, x0, transient, samples)

		// Drop orbits that escaped the domain.
		lo, hi := m.Domain()
		margin := (hi - lo) * 10
		values := make([]float64, 0, len(orbit))
		for _, v := range orbit {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < lo-margin || v > hi+margin {
				continue
			}
			values = append(values, v)
		}

		points = append(points, BifurcationPoint{
			Param:    p,
			Values:   values,
			Lyapunov: Lyapunov(m, x0, transient, samples),
		})
	}

	if err := m.SetParam(paramName, original); err != nil {
		return nil, err
	}

	return points, nil
}

// DistinctValues quantizes and de-duplicates an attractor sample, returning
// the distinct values. Period-2 orbits yield 2 values, chaos yields many.
func DistinctValues(values []float64, tol float64) []float64 {
	if tol <= 0 {
		tol = 1e-3
	}
	seen := make(map[int]bool)
	distinct := make([]float64, 0)
	for _, v := range values {
		key := int(math.Round(v / tol))
		if !seen[key] {
			seen[key] = true
			distinct = append(distinct, v)
		}
	}
	return distinct
}
