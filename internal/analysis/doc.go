// Package analysis provides chaos and dynamics analysis tools.
//
// The package includes tools for characterizing dynamical systems:
//
//   - [LargestLyapunov]: largest Lyapunov exponent via trajectory separation
//   - [LyapunovSpectrum]: per-dimension exponents
//   - [SweepBifurcation]: parameter sweep for bifurcation analysis of flows
//   - [PhasePortrait]: 2D phase space trajectories
//   - [PoincareSection]: plane crossings of a trajectory
//   - [LorenzMap]: successive-maxima return map of a time series
//   - [PowerSpectrum]: radix-2 FFT power spectrum
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LargestLyapunov(sys, integ, x0, dt, duration, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
