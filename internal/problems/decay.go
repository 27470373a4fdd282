package problems

import "math"

// Decay is dx/dt = -lambda*x, exponential decay toward zero.
type Decay struct {
	Lambda float64
}

func NewDecay() *Decay {
	return &Decay{Lambda: 0.5}
}

func (p *Decay) Name() string { return "decay" }

func (p *Decay) Eval(x, t float64) float64 {
	return -p.Lambda * x
}

func (p *Decay) Exact(xi, ti, t float64) float64 {
	return xi * math.Exp(-p.Lambda*(t-ti))
}
