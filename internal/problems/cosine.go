package problems

import "math"

// Cosine is dx/dt = cos(omega*t), a driven problem whose rate depends
// on time only.
type Cosine struct {
	Omega float64
}

func NewCosine() *Cosine {
	return &Cosine{Omega: 1.0}
}

func (p *Cosine) Name() string { return "cosine" }

func (p *Cosine) Eval(x, t float64) float64 {
	return math.Cos(p.Omega * t)
}

func (p *Cosine) Exact(xi, ti, t float64) float64 {
	if p.Omega == 0 {
		return xi + (t - ti)
	}
	return xi + (math.Sin(p.Omega*t)-math.Sin(p.Omega*ti))/p.Omega
}
