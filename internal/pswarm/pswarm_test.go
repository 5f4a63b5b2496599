package pswarm

import (
	"math"
	"testing"
)

func sphere(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return s
}

func TestSphereConverges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIter = 200
	cfg.Seed = 1
	cfg.MinStep = 0 // run the full budget
	cfg.MinFunc = 0
	s := New(cfg, nil)
	res, err := s.Minimize(sphere, []float64{-5, -5, -5}, []float64{5, 5, 5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.F > 0.05 {
		t.Fatalf("sphere minimum not found: f=%v at %v", res.F, res.X)
	}
}

func TestDeterministicForFixedSeed(t *testing.T) {
	lb, ub := []float64{-2, -2}, []float64{2, 2}
	run := func() Result {
		cfg := DefaultConfig()
		cfg.Seed = 42
		res, err := New(cfg, nil).Minimize(sphere, lb, ub, nil)
		if err != nil {
			t.Fatal(err)
		}
		return res
	}
	a, b := run(), run()
	if a.F != b.F {
		t.Fatalf("same seed, different optimum: %v vs %v", a.F, b.F)
	}
	for i := range a.X {
		if a.X[i] != b.X[i] {
			t.Fatalf("same seed, different argmin: %v vs %v", a.X, b.X)
		}
	}
}

func TestBoundsRespected(t *testing.T) {
	lb, ub := []float64{1, 1}, []float64{3, 3}
	// Minimum of the sphere over the box sits on the lower corner.
	res, err := New(DefaultConfig(), nil).Minimize(sphere, lb, ub, nil)
	if err != nil {
		t.Fatal(err)
	}
	for d, v := range res.X {
		if v < lb[d]-1e-12 || v > ub[d]+1e-12 {
			t.Fatalf("dimension %d left the box: %v", d, v)
		}
	}
	if math.Abs(res.F-2) > 0.2 {
		t.Fatalf("corner minimum missed: f=%v", res.F)
	}
}

func TestSeedNeverWorsensResult(t *testing.T) {
	// An adversarial objective with a needle the random swarm cannot find.
	needle := []float64{0.123456, -0.654321}
	obj := func(x []float64) float64 {
		d := sphere([]float64{x[0] - needle[0], x[1] - needle[1]})
		if d < 1e-8 {
			return -1000
		}
		return d + 100
	}
	cfg := DefaultConfig()
	cfg.MaxIter = 5
	res, err := New(cfg, nil).Minimize(obj, []float64{-1, -1}, []float64{1, 1}, [][]float64{needle})
	if err != nil {
		t.Fatal(err)
	}
	if res.F > obj(needle) {
		t.Fatalf("result %v is worse than the seed objective %v", res.F, obj(needle))
	}
}

func TestInvalidBounds(t *testing.T) {
	s := New(DefaultConfig(), nil)
	if _, err := s.Minimize(sphere, []float64{1}, []float64{1}, nil); err == nil {
		t.Fatal("expected an error for an empty box")
	}
	if _, err := s.Minimize(sphere, nil, nil, nil); err == nil {
		t.Fatal("expected an error for empty bounds")
	}
}
