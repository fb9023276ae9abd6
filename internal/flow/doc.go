// Package flow provides the continuous dynamical systems used by the lab.
//
// Each system implements [dynamo.System], defining the vector field
// governing its evolution:
//
//   - [Lorenz]: the butterfly attractor, a simplified convection model
//   - [Rossler]: single-scroll chaotic attractor
//   - [Duffing]: periodically forced nonlinear oscillator
//   - [VanDerPol]: relaxation oscillator with a stable limit cycle
//
// All systems implement [dynamo.Configurable] for parameter sweeps.
// [Lorenz], [Rossler] and [VanDerPol] additionally implement
// [dynamo.Jacobian] for fixed-point stability analysis; [Duffing] is
// nonautonomous and is analyzed through its stroboscopic section instead.
package flow
