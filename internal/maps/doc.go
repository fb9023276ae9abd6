// Package maps provides one-dimensional nonlinear maps and the analyses
// taught with them: orbits, bifurcation diagrams, cobweb plots, fixed points
// and the map Lyapunov exponent.
//
// The logistic map x -> r x (1-x) is the canonical example: its
// period-doubling cascade into chaos is the lab's first bifurcation
// diagram. [Sine], [Tent] and [Cubic] show the same structure from
// different families.
package maps
