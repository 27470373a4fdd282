package problems

import "math"

// Exponential is dx/dt = r*x, the standard smooth test equation.
type Exponential struct {
	Rate float64
}

func NewExponential() *Exponential {
	return &Exponential{Rate: 1.0}
}

func (p *Exponential) Name() string { return "exponential" }

func (p *Exponential) Eval(x, t float64) float64 {
	return p.Rate * x
}

func (p *Exponential) Exact(xi, ti, t float64) float64 {
	return xi * math.Exp(p.Rate*(t-ti))
}
