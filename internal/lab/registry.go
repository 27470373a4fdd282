package lab

import (
	"fmt"
	"sort"

	"github.com/san-kum/odelab"
	"github.com/san-kum/odelab/internal/problems"
)

// Registry maps CLI names to problem and method constructors.
type Registry struct {
	problems map[string]func(params map[string]float64) problems.Problem
	methods  map[string]func() odelab.Method
}

func NewRegistry() *Registry {
	r := &Registry{
		problems: make(map[string]func(map[string]float64) problems.Problem),
		methods:  make(map[string]func() odelab.Method),
	}

	r.problems["exponential"] = func(params map[string]float64) problems.Problem {
		p := problems.NewExponential()
		p.Rate = param(params, "rate", p.Rate)
		return p
	}
	r.problems["linear_forced"] = func(params map[string]float64) problems.Problem {
		return problems.NewLinearForced()
	}
	r.problems["decay"] = func(params map[string]float64) problems.Problem {
		p := problems.NewDecay()
		p.Lambda = param(params, "lambda", p.Lambda)
		return p
	}
	r.problems["logistic"] = func(params map[string]float64) problems.Problem {
		p := problems.NewLogistic()
		p.Rate = param(params, "rate", p.Rate)
		p.Capacity = param(params, "capacity", p.Capacity)
		return p
	}
	r.problems["cosine"] = func(params map[string]float64) problems.Problem {
		p := problems.NewCosine()
		p.Omega = param(params, "omega", p.Omega)
		return p
	}

	r.methods["euler"] = func() odelab.Method { return odelab.NewEuler() }
	r.methods["rk2"] = func() odelab.Method { return odelab.NewRK2() }
	r.methods["rk4"] = func() odelab.Method { return odelab.NewRK4() }

	return r
}

func param(params map[string]float64, name string, fallback float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return fallback
}

func (r *Registry) GetProblem(name string, params map[string]float64) (problems.Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(params), nil
}

func (r *Registry) GetMethod(name string) (odelab.Method, error) {
	fn, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListProblems() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListMethods() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
