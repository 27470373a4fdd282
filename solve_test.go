package odelab

import (
	"errors"
	"math"
	"testing"
)

// linearForced is the reference equation dx/dt = x + t.
func linearForced(x, t float64) float64 { return x + t }

type solveFunc func(f Func, n int, xi, ti, tf float64) ([]float64, error)

var solvers = []struct {
	name  string
	solve solveFunc
}{
	{"euler", EulerSolve},
	{"rk2", RK2Solve},
	{"rk4", RK4Solve},
}

func TestSolveShape(t *testing.T) {
	for _, s := range solvers {
		for _, n := range []int{2, 10, 137} {
			xs, err := s.solve(linearForced, n, 0.0, 0.0, 10.0)
			if err != nil {
				t.Fatalf("%s n=%d: %v", s.name, n, err)
			}
			if len(xs) != n {
				t.Errorf("%s n=%d: expected %d samples, got %d", s.name, n, n, len(xs))
			}
		}
	}
}

func TestSolveSeed(t *testing.T) {
	xi := 0.1 + 0.2 // not exactly representable; must be carried bitwise
	for _, s := range solvers {
		xs, err := s.solve(linearForced, 10, xi, 0.0, 10.0)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if xs[0] != xi {
			t.Errorf("%s: seed not exact: got %v, want %v", s.name, xs[0], xi)
		}
	}
}

func TestSolveStepCount(t *testing.T) {
	for _, s := range solvers {
		for _, n := range []int{0, 1} {
			if _, err := s.solve(linearForced, n, 0.0, 0.0, 1.0); !errors.Is(err, ErrStepCount) {
				t.Errorf("%s n=%d: expected ErrStepCount, got %v", s.name, n, err)
			}
		}
	}
}

func TestSolveDeterminism(t *testing.T) {
	for _, s := range solvers {
		a, err := s.solve(linearForced, 50, 0.3, 0.0, 5.0)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		b, _ := s.solve(linearForced, 50, 0.3, 0.0, 5.0)
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s: sample %d differs between runs: %v vs %v", s.name, i, a[i], b[i])
			}
		}
	}
}

func TestSolveDegenerateInterval(t *testing.T) {
	for _, s := range solvers {
		xs, err := s.solve(linearForced, 10, 1.5, 2.0, 2.0)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		for i, v := range xs {
			if v != 1.5 {
				t.Errorf("%s: sample %d: expected constant 1.5, got %v", s.name, i, v)
			}
		}
	}
}

func TestSolvePanicPropagates(t *testing.T) {
	bad := func(x, t float64) float64 { panic("derivative blew up") }

	for _, s := range solvers {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic from derivative to propagate", s.name)
				}
			}()
			s.solve(bad, 10, 0.0, 0.0, 1.0)
		}()
	}
}

// Reference trajectories for dx/dt = x + t with N=10, xi=0 over [0, 10].
func TestEulerReference(t *testing.T) {
	xs, err := EulerSolve(linearForced, 10, 0.0, 0.0, 10.0)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{
		0, 0, 1.11111111, 4.44444444, 12.22222222,
		28.88888889, 63.33333333, 133.33333333, 274.44444444, 557.77777778,
	}
	for i := range want {
		if !closeRel(xs[i], want[i], 1e-8) {
			t.Errorf("sample %d: got %.8f, want %.8f", i, xs[i], want[i])
		}
	}
}

func TestRK2Reference(t *testing.T) {
	xs, err := RK2Solve(linearForced, 10, 0.0, 0.0, 10.0)
	if err != nil {
		t.Fatal(err)
	}

	if !closeRel(xs[9], 4086.19335938, 1e-5) {
		t.Errorf("final sample: got %.8f, want 4086.19335938", xs[9])
	}
}

func TestRK4Reference(t *testing.T) {
	xs, err := RK4Solve(linearForced, 10, 0.0, 0.0, 10.0)
	if err != nil {
		t.Fatal(err)
	}

	if !closeRel(xs[1], 0.70833333, 1e-6) {
		t.Errorf("sample 1: got %.8f, want 0.70833333", xs[1])
	}
	if !closeRel(xs[9], 8338.91079, 1e-5) {
		t.Errorf("final sample: got %.8f, want 8338.91079", xs[9])
	}
}

func TestMethodNames(t *testing.T) {
	if NewEuler().Name() != "euler" {
		t.Error("unexpected euler name")
	}
	if NewRK2().Name() != "rk2" {
		t.Error("unexpected rk2 name")
	}
	if NewRK4().Name() != "rk4" {
		t.Error("unexpected rk4 name")
	}
}

// Accuracy against dx/dt = x, compared to the closed form at the time
// the advance actually accumulates, ti + i*h.
func TestAccuracy(t *testing.T) {
	f := func(x, t float64) float64 { return x }

	tests := []struct {
		method Method
		n      int
		tol    float64
	}{
		{NewEuler(), 1000, 2e-3},
		{NewRK2(), 1000, 1e-6},
		{NewRK4(), 100, 1e-9},
	}

	for _, tc := range tests {
		xs, err := Solve(f, tc.method, tc.n, 1.0, 0.0, 1.0)
		if err != nil {
			t.Fatalf("%s: %v", tc.method.Name(), err)
		}
		h := StepSize(tc.n, 0.0, 1.0)
		reached := float64(tc.n-1) * h
		want := math.Exp(reached)
		got := xs[tc.n-1]
		if math.Abs(got-want) > tc.tol {
			t.Errorf("%s: final error %.3e exceeds %.1e", tc.method.Name(), math.Abs(got-want), tc.tol)
		}
	}
}

func closeRel(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want)/math.Abs(want) <= tol
}
