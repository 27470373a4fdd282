package problems

import "math"

// LinearForced is dx/dt = x + t, the documented reference problem for
// all three methods.
type LinearForced struct{}

func NewLinearForced() *LinearForced {
	return &LinearForced{}
}

func (p *LinearForced) Name() string { return "linear_forced" }

func (p *LinearForced) Eval(x, t float64) float64 {
	return x + t
}

func (p *LinearForced) Exact(xi, ti, t float64) float64 {
	return (xi+ti+1)*math.Exp(t-ti) - t - 1
}
