package odelab

// Euler is the first-order explicit method: x + h*f(x, t).
// Local truncation error O(h^2), global error O(h). There is no
// stability control; a large h or a stiff f can diverge silently.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Advance(f Func, x, t, h float64) float64 {
	return x + h*f(x, t)
}
