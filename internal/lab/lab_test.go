package lab

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/problems"
)

func TestRegistryGetProblem(t *testing.T) {
	r := NewRegistry()

	p, err := r.GetProblem("exponential", map[string]float64{"rate": 2.0})
	if err != nil {
		t.Fatalf("get problem failed: %v", err)
	}

	exp, ok := p.(*problems.Exponential)
	if !ok {
		t.Fatalf("expected *Exponential, got %T", p)
	}
	if exp.Rate != 2.0 {
		t.Errorf("expected rate 2.0, got %f", exp.Rate)
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry()

	p, err := r.GetProblem("logistic", nil)
	if err != nil {
		t.Fatalf("get problem failed: %v", err)
	}

	log := p.(*problems.Logistic)
	if log.Rate != 1.0 || log.Capacity != 10.0 {
		t.Errorf("expected defaults 1.0/10.0, got %f/%f", log.Rate, log.Capacity)
	}
}

func TestRegistryUnknown(t *testing.T) {
	r := NewRegistry()

	if _, err := r.GetProblem("vanishing", nil); err == nil {
		t.Error("expected error for unknown problem")
	}
	if _, err := r.GetMethod("rk45"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestRegistryLists(t *testing.T) {
	r := NewRegistry()

	if got := len(r.ListProblems()); got != 5 {
		t.Errorf("expected 5 problems, got %d", got)
	}

	methods := r.ListMethods()
	want := []string{"euler", "rk2", "rk4"}
	if len(methods) != len(want) {
		t.Fatalf("expected %d methods, got %d", len(want), len(methods))
	}
	for i := range want {
		if methods[i] != want[i] {
			t.Errorf("method %d: expected %s, got %s", i, want[i], methods[i])
		}
	}
}

func TestExperimentRun(t *testing.T) {
	r := NewRegistry()
	cfg := Config{Problem: "linear_forced", Method: "rk4", Steps: 10, Xi: 0, Ti: 0, Tf: 10}

	p, err := r.GetProblem(cfg.Problem, nil)
	if err != nil {
		t.Fatal(err)
	}
	m, err := r.GetMethod(cfg.Method)
	if err != nil {
		t.Fatal(err)
	}

	exp := New(cfg)
	if err := exp.Setup(p, m); err != nil {
		t.Fatal(err)
	}

	res, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(res.Xs) != 10 || len(res.Times) != 10 {
		t.Fatalf("expected 10 samples, got %d/%d", len(res.Xs), len(res.Times))
	}
	if res.H != 1.0 {
		t.Errorf("expected h=1, got %f", res.H)
	}
	if math.Abs(res.FinalX-8338.91079)/8338.91079 > 1e-5 {
		t.Errorf("expected final ~8338.91, got %f", res.FinalX)
	}
	if res.MinX != 0 {
		t.Errorf("expected min 0, got %f", res.MinX)
	}
	if res.MaxX != res.FinalX {
		t.Errorf("expected max at final sample, got %f", res.MaxX)
	}
}

func TestExperimentNotSetup(t *testing.T) {
	exp := New(Config{Steps: 10})
	if _, err := exp.Run(context.Background()); err == nil {
		t.Error("expected error for experiment without setup")
	}
}

func TestExperimentCanceled(t *testing.T) {
	r := NewRegistry()
	p, _ := r.GetProblem("decay", nil)
	m, _ := r.GetMethod("euler")

	exp := New(Config{Steps: 10, Tf: 1})
	if err := exp.Setup(p, m); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := exp.Run(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}
