package dynamo

import (
	"context"
	"math/rand"
	"sync"
)

// Ensemble runs many simulations from perturbed copies of the same initial
// condition. Nearby trajectories diverging exponentially is the classic
// sensitive-dependence demonstration.
//
// Steppers may carry scratch buffers, so each run gets its own from the
// factory.
type Ensemble struct {
	sys        System
	newStepper func() Stepper
	numRuns    int
	spread     float64
	seed       int64
}

func NewEnsemble(sys System, newStepper func() Stepper, numRuns int, spread float64, seed int64) *Ensemble {
	return &Ensemble{sys: sys, newStepper: newStepper, numRuns: numRuns, spread: spread, seed: seed}
}

func (e *Ensemble) Run(ctx context.Context, x0 State, cfg Config) ([]*Result, error) {
	rng := rand.New(rand.NewSource(e.seed))
	inits := make([]State, e.numRuns)
	for i := range inits {
		xi := x0.Clone()
		if i > 0 {
			for j := range xi {
				xi[j] += e.spread * rng.NormFloat64()
			}
		}
		inits[i] = xi
	}

	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s := New(e.sys, e.newStepper())
			results[idx], errs[idx] = s.Run(ctx, inits[idx], cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
