package odelab

import "errors"

// Func is the right-hand side of the equation dx/dt = f(x, t).
// It must be a pure function of its arguments; it is never inspected
// or retried, and a panic inside it reaches the caller of the solve.
type Func func(x, t float64) float64

// Method advances the state by a single step of size h.
type Method interface {
	Name() string
	Advance(f Func, x, t, h float64) float64
}

// ErrStepCount indicates a step count too small to define a grid.
var ErrStepCount = errors.New("odelab: step count must be at least 2")

// Solve integrates f over [ti, tf] with n grid points, seeding the
// trajectory with xi and advancing one step of m at a time. The
// returned trajectory has length n and is index-aligned with
// Grid(n, ti, tf); element 0 is xi exactly.
func Solve(f Func, m Method, n int, xi, ti, tf float64) ([]float64, error) {
	grid, err := Grid(n, ti, tf)
	if err != nil {
		return nil, err
	}
	h := StepSize(n, ti, tf)

	xs := make([]float64, n)
	xs[0] = xi
	for i := 0; i < n-1; i++ {
		xs[i+1] = m.Advance(f, xs[i], grid[i], h)
	}
	return xs, nil
}

// EulerSolve integrates f with the first-order Euler method.
func EulerSolve(f Func, n int, xi, ti, tf float64) ([]float64, error) {
	return Solve(f, NewEuler(), n, xi, ti, tf)
}

// RK2Solve integrates f with the second-order midpoint method.
func RK2Solve(f Func, n int, xi, ti, tf float64) ([]float64, error) {
	return Solve(f, NewRK2(), n, xi, ti, tf)
}

// RK4Solve integrates f with the classical fourth-order Runge-Kutta
// method.
func RK4Solve(f Func, n int, xi, ti, tf float64) ([]float64, error) {
	return Solve(f, NewRK4(), n, xi, ti, tf)
}
