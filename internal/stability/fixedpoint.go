package stability

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/chaoslab/internal/dynamo"
	"github.com/san-kum/chaoslab/internal/flow"
)

var ErrNoJacobian = errors.New("stability: system does not expose a Jacobian")

// FixedPoints returns the equilibria of sys. The Lorenz family is handled
// analytically; everything else falls back to Newton iteration from a set
// of seeds, which requires the system to implement [dynamo.Jacobian].
func FixedPoints(sys dynamo.System) ([]dynamo.State, error) {
	if l, ok := sys.(*flow.Lorenz); ok {
		return lorenzFixedPoints(l), nil
	}

	jac, ok := sys.(dynamo.Jacobian)
	if !ok {
		return nil, ErrNoJacobian
	}

	seeds := newtonSeeds(sys.Dim())
	found := make([]dynamo.State, 0, 4)

	for _, seed := range seeds {
		x, ok := newton(sys, jac, seed)
		if !ok {
			continue
		}
		if !containsPoint(found, x, 1e-6) {
			found = append(found, x)
		}
	}

	return found, nil
}

// lorenzFixedPoints returns the origin, plus the symmetric pair
// C+- = (+-sqrt(beta(rho-1)), +-sqrt(beta(rho-1)), rho-1) when rho > 1.
func lorenzFixedPoints(l *flow.Lorenz) []dynamo.State {
	p := l.Params()
	rho, beta := p["rho"], p["beta"]

	points := []dynamo.State{{0, 0, 0}}
	if rho > 1 {
		c := math.Sqrt(beta * (rho - 1))
		points = append(points,
			dynamo.State{c, c, rho - 1},
			dynamo.State{-c, -c, rho - 1},
		)
	}
	return points
}

func newtonSeeds(dim int) []dynamo.State {
	offsets := []float64{0, 1, -1, 5, -5}
	seeds := make([]dynamo.State, 0, len(offsets))
	for _, o := range offsets {
		s := make(dynamo.State, dim)
		for i := range s {
			s[i] = o
		}
		seeds = append(seeds, s)
	}
	return seeds
}

// newton runs damped Newton iteration on f(x) = 0 where f is the vector
// field at t=0.
func newton(sys dynamo.System, jac dynamo.Jacobian, seed dynamo.State) (dynamo.State, bool) {
	n := sys.Dim()
	x := seed.Clone()

	for iter := 0; iter < 60; iter++ {
		f := sys.Derive(x, 0)
		if f.Norm() < 1e-10 {
			return x, true
		}

		j := jac.Jacobian(x)
		a := mat.NewDense(n, n, nil)
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				a.Set(i, k, j[i][k])
			}
		}

		b := mat.NewVecDense(n, f)
		var dx mat.VecDense
		if err := dx.SolveVec(a, b); err != nil {
			return nil, false
		}

		// Damped update to keep early steps from flying off.
		alpha := 1.0
		if iter < 5 {
			alpha = 0.5
		}
		for i := 0; i < n; i++ {
			x[i] -= alpha * dx.AtVec(i)
		}

		if !x.IsValid() {
			return nil, false
		}
	}

	f := sys.Derive(x, 0)
	return x, f.Norm() < 1e-8
}

func containsPoint(points []dynamo.State, x dynamo.State, tol float64) bool {
	for _, p := range points {
		if p.Sub(x).Norm() < tol {
			return true
		}
	}
	return false
}
