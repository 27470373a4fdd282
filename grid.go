package odelab

// Grid returns n evenly spaced time points over the closed interval
// [ti, tf]: grid[0] == ti and grid[n-1] == tf exactly, with n-1 equal
// sub-intervals of size (tf-ti)/(n-1) between them.
func Grid(n int, ti, tf float64) ([]float64, error) {
	if n <= 1 {
		return nil, ErrStepCount
	}
	spacing := (tf - ti) / float64(n-1)
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = ti + float64(i)*spacing
	}
	ts[n-1] = tf
	return ts, nil
}

// StepSize returns the per-step advance size h = (tf-ti)/n.
//
// Note h is not the grid's own sub-interval size (tf-ti)/(n-1); the
// two agree only as n grows. The advance therefore tracks the time
// ti + i*h, which drifts from grid[i]. Callers needing both values
// must compute both.
func StepSize(n int, ti, tf float64) float64 {
	return (tf - ti) / float64(n)
}
