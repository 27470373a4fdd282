package problems

// Problem is a named scalar ODE right-hand side dx/dt = f(x, t).
type Problem interface {
	Name() string
	Eval(x, t float64) float64
}

// Analytic is implemented by problems with a closed-form solution,
// used by convergence studies to measure integration error.
type Analytic interface {
	Problem
	Exact(xi, ti, t float64) float64
}
