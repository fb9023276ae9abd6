// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for numerical
// integration of ordinary differential equations (ODEs):
//
//   - [State]: vector representing system state
//   - [System]: interface for vector fields (dX/dt = f(X, t))
//   - [Stepper]: numerical integrator interface
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	sys := flow.NewLorenz()
//	integ := integrators.NewRK4()
//	sim := dynamo.New(sys, integ)
//	result, _ := sim.Run(ctx, x0, cfg)
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. For parallel runs over perturbed
// initial conditions, use the [Ensemble] type which safely manages multiple
// simulations.
package dynamo
