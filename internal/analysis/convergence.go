package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab"
	"github.com/san-kum/odelab/internal/problems"
)

// Sample is one convergence level: a step count, the advance size it
// implies, and the absolute error of the final trajectory sample.
type Sample struct {
	Steps int
	H     float64
	Err   float64
}

// Study is the result of a convergence sweep. Orders[i] is the
// observed order between levels i and i+1, log2(err_i / err_i+1).
type Study struct {
	Problem string
	Method  string
	Samples []Sample
	Orders  []float64
}

// Converge measures the global error of m on p while the step count
// doubles, starting at startSteps for levels levels.
//
// The error is taken at the final sample against the closed form
// evaluated at ti + (n-1)*h, the time the fixed-size advance actually
// accumulates. The grid's own last point sits at tf, which the
// advance only reaches asymptotically; comparing there would fold the
// discretization offset into the error and mask the method order.
func Converge(p problems.Analytic, m odelab.Method, xi, ti, tf float64, startSteps, levels int) (*Study, error) {
	if startSteps <= 1 {
		return nil, odelab.ErrStepCount
	}
	if levels < 2 {
		return nil, fmt.Errorf("analysis: need at least 2 levels, got %d", levels)
	}

	study := &Study{
		Problem: p.Name(),
		Method:  m.Name(),
		Samples: make([]Sample, 0, levels),
	}

	n := startSteps
	for level := 0; level < levels; level++ {
		xs, err := odelab.Solve(p.Eval, m, n, xi, ti, tf)
		if err != nil {
			return nil, err
		}

		h := odelab.StepSize(n, ti, tf)
		reached := ti + float64(n-1)*h
		study.Samples = append(study.Samples, Sample{
			Steps: n,
			H:     h,
			Err:   math.Abs(xs[n-1] - p.Exact(xi, ti, reached)),
		})

		n *= 2
	}

	study.Orders = make([]float64, 0, levels-1)
	for i := 1; i < len(study.Samples); i++ {
		coarse, fine := study.Samples[i-1].Err, study.Samples[i].Err
		if fine == 0 {
			study.Orders = append(study.Orders, math.Inf(1))
			continue
		}
		study.Orders = append(study.Orders, math.Log2(coarse/fine))
	}

	return study, nil
}
