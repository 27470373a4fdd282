package lab

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/odelab"
	"github.com/san-kum/odelab/internal/problems"
)

type Config struct {
	Problem string
	Method  string
	Steps   int
	Xi      float64
	Ti      float64
	Tf      float64
	Params  map[string]float64
}

// Result holds one solve: the time grid, the trajectory aligned with
// it, the advance step size, and summary statistics over the samples.
type Result struct {
	Times   []float64
	Xs      []float64
	H       float64
	MinX    float64
	MaxX    float64
	FinalX  float64
	Elapsed time.Duration
}

type Experiment struct {
	cfg     Config
	problem problems.Problem
	method  odelab.Method
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(p problems.Problem, m odelab.Method) error {
	if p == nil || m == nil {
		return fmt.Errorf("experiment needs a problem and a method")
	}
	e.problem = p
	e.method = m
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.problem == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()

	times, err := odelab.Grid(e.cfg.Steps, e.cfg.Ti, e.cfg.Tf)
	if err != nil {
		return nil, err
	}
	xs, err := odelab.Solve(e.problem.Eval, e.method, e.cfg.Steps, e.cfg.Xi, e.cfg.Ti, e.cfg.Tf)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Times:   times,
		Xs:      xs,
		H:       odelab.StepSize(e.cfg.Steps, e.cfg.Ti, e.cfg.Tf),
		MinX:    math.Inf(1),
		MaxX:    math.Inf(-1),
		FinalX:  xs[len(xs)-1],
		Elapsed: time.Since(start),
	}
	for _, x := range xs {
		res.MinX = math.Min(res.MinX, x)
		res.MaxX = math.Max(res.MaxX, x)
	}

	return res, nil
}
