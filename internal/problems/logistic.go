package problems

import "math"

// Logistic is dx/dt = r*x*(1 - x/K), growth saturating at the
// carrying capacity K.
type Logistic struct {
	Rate     float64
	Capacity float64
}

func NewLogistic() *Logistic {
	return &Logistic{Rate: 1.0, Capacity: 10.0}
}

func (p *Logistic) Name() string { return "logistic" }

func (p *Logistic) Eval(x, t float64) float64 {
	return p.Rate * x * (1 - x/p.Capacity)
}

func (p *Logistic) Exact(xi, ti, t float64) float64 {
	if xi == 0 {
		return 0
	}
	return p.Capacity / (1 + (p.Capacity-xi)/xi*math.Exp(-p.Rate*(t-ti)))
}
