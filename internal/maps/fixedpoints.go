package maps

import "math"

// Stability of a map fixed point, judged by |f'(x*)|.
type Stability int

const (
	Stable   Stability = iota // |f'| < 1
	Unstable                  // |f'| > 1
	Marginal                  // |f'| == 1 within tolerance
)

func (s Stability) String() string {
	switch s {
	case Stable:
		return "stable"
	case Unstable:
		return "unstable"
	default:
		return "marginal"
	}
}

// FixedPoint is a solution of f(x) = x with its derivative there.
type FixedPoint struct {
	X         float64
	Slope     float64
	Stability Stability
}

const marginalTol = 1e-6

// FixedPoints finds solutions of f(x) = x on the map's domain by scanning
// for sign changes of g(x) = f(x) - x over a fine grid and bisecting each
// bracket.
func FixedPoints(m Map) []FixedPoint {
	lo, hi := m.Domain()
	const grid = 2000

	g := func(x float64) float64 { return m.Apply(x) - x }

	points := make([]FixedPoint, 0, 4)
	step := (hi - lo) / grid

	prevX := lo
	prevG := g(lo)

	if prevG == 0 {
		points = append(points, classifyFixedPoint(m, lo))
	}

	for i := 1; i <= grid; i++ {
		x := lo + float64(i)*step
		gx := g(x)

		if gx == 0 {
			points = append(points, classifyFixedPoint(m, x))
		} else if prevG*gx < 0 {
			root := bisect(g, prevX, x)
			points = append(points, classifyFixedPoint(m, root))
		}

		prevX, prevG = x, gx
	}

	return points
}

func classifyFixedPoint(m Map, x float64) FixedPoint {
	slope := m.Derivative(x)
	fp := FixedPoint{X: x, Slope: slope}
	switch {
	case math.Abs(math.Abs(slope)-1) < marginalTol:
		fp.Stability = Marginal
	case math.Abs(slope) < 1:
		fp.Stability = Stable
	default:
		fp.Stability = Unstable
	}
	return fp
}

func bisect(g func(float64) float64, a, b float64) float64 {
	ga := g(a)
	for i := 0; i < 80; i++ {
		mid := (a + b) / 2
		gm := g(mid)
		if gm == 0 || (b-a)/2 < 1e-12 {
			return mid
		}
		if ga*gm < 0 {
			b = mid
		} else {
			a, ga = mid, gm
		}
	}
	return (a + b) / 2
}
