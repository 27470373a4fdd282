// Package odelab provides fixed-step numerical integration of scalar
// first-order ordinary differential equations dx/dt = f(x, t).
//
// Three explicit single-step methods are provided:
//
//   - [Euler]: first-order, global error O(h)
//   - [RK2]: second-order midpoint method, global error O(h^2)
//   - [RK4]: classical fourth-order method, global error O(h^4)
//
// Each method implements [Method] and can drive the shared [Solve]
// loop; [EulerSolve], [RK2Solve] and [RK4Solve] are shorthands.
//
// # Example
//
//	f := func(x, t float64) float64 { return x + t }
//	xs, err := odelab.RK4Solve(f, 10, 0.0, 0.0, 10.0)
//
// # Thread Safety
//
// Methods hold no state and every solve allocates its own buffers,
// so concurrent calls need no coordination.
package odelab
