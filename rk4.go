package odelab

// RK4 is the classical fourth-order Runge-Kutta method: four stage
// slopes at offsets (0, h/2, h/2, h) combined with weights
// (1, 2, 2, 1)/6. Local truncation error O(h^5), global error O(h^4).
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Name() string { return "rk4" }

func (r *RK4) Advance(f Func, x, t, h float64) float64 {
	k1 := h * f(x, t)
	k2 := h * f(x+k1/2, t+h/2)
	k3 := h * f(x+k2/2, t+h/2)
	k4 := h * f(x+k3, t+h)
	return x + (k1+2*k2+2*k3+k4)/6
}
