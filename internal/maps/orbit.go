package maps

import "math"

// Orbit iterates m from x0, discarding transient iterations and recording
// the next n values.
func Orbit(m Map, x0 float64, transient, n int) []float64 {
	x := x0
	for i := 0; i < transient; i++ {
		x = m.Apply(x)
	}

	orbit := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = m.Apply(x)
		orbit = append(orbit, x)
	}
	return orbit
}

// Lyapunov computes the map Lyapunov exponent along an orbit:
//
//	lambda = (1/n) * sum ln|f'(x_i)|
//
// Samples where the derivative vanishes are skipped (the superstable case
// would otherwise contribute -Inf).
func Lyapunov(m Map, x0 float64, transient, n int) float64 {
	x := x0
	for i := 0; i < transient; i++ {
		x = m.Apply(x)
	}

	sum := 0.0
	count := 0
	for i := 0; i < n; i++ {
		d := math.Abs(m.Derivative(x))
		if d > 0 {
			sum += math.Log(d)
			count++
		}
		x = m.Apply(x)
	}

	if count == 0 {
		return math.Inf(-1)
	}
	return sum / float64(count)
}

// CobwebSegment is one leg of a cobweb (staircase) plot.
type CobwebSegment struct {
	X0, Y0, X1, Y1 float64
}

// Cobweb produces the staircase segments of n iterations: vertical moves to
// the curve, horizontal moves to the diagonal.
func Cobweb(m Map, x0 float64, n int) []CobwebSegment {
	segs := make([]CobwebSegment, 0, 2*n)
	x := x0
	y := 0.0

	for i := 0; i < n; i++ {
		fx := m.Apply(x)
		segs = append(segs, CobwebSegment{x, y, x, fx})   // up/down to the curve
		segs = append(segs, CobwebSegment{x, fx, fx, fx}) // across to the diagonal
		x, y = fx, fx
	}
	return segs
}
