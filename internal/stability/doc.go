// Package stability analyzes equilibria of continuous systems.
//
// Fixed points are located analytically for the Lorenz family and by damped
// Newton iteration for anything exposing a Jacobian. Each equilibrium is
// classified by the eigenvalues of the Jacobian there: all real parts
// negative means asymptotically stable, any positive real part means
// unstable, a saddle mixes signs.
//
// [BranchDiagram] sweeps the Lorenz rho parameter and traces the
// equilibrium branches with their stability, reproducing the pitchfork at
// rho = 1 and the subcritical Hopf loss of stability of the C+- pair at
// rho = sigma (sigma + beta + 3) / (sigma - beta - 1).
package stability
