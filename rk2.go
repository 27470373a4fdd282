package odelab

// RK2 is the second-order midpoint method. The slope is re-sampled at
// the interval midpoint and only that correction is applied:
//
//	k1 = h*f(x, t)
//	k2 = h*f(x + k1/2, t + h/2)
//	x' = x + k2
//
// This is the midpoint variant, not the trapezoidal average of k1 and
// k2. Local truncation error O(h^3), global error O(h^2).
type RK2 struct{}

func NewRK2() *RK2 {
	return &RK2{}
}

func (r *RK2) Name() string { return "rk2" }

func (r *RK2) Advance(f Func, x, t, h float64) float64 {
	k1 := h * f(x, t)
	k2 := h * f(x+k1/2, t+h/2)
	return x + k2
}
