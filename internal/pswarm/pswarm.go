// Package pswarm implements bound-constrained particle swarm optimization.
// The update rule and termination criteria follow the classic global-best
// formulation; seeding lets a caller inject known-good starting points so the
// returned optimum is never worse than the best seed.
package pswarm

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
)

// Objective maps a candidate vector to a cost. Lower is better. Constraint
// violations are expected to be folded in as penalties by the caller.
type Objective func(x []float64) float64

type Config struct {
	SwarmSize int
	MaxIter   int

	Omega float64 // inertia
	PhiP  float64 // cognitive weight
	PhiG  float64 // social weight

	MinStep float64 // swarm-best step below which the search stops
	MinFunc float64 // objective improvement below which the search stops

	Seed int64
}

func DefaultConfig() Config {
	return Config{
		SwarmSize: 50,
		MaxIter:   50,
		Omega:     0.5,
		PhiP:      0.5,
		PhiG:      0.5,
		MinStep:   1e-6,
		MinFunc:   1e-6,
	}
}

type Result struct {
	X          []float64
	F          float64
	Iterations int
	Converged  bool
}

type Swarm struct {
	cfg Config
	rng *rand.Rand
	log *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Swarm {
	if cfg.SwarmSize <= 0 {
		cfg.SwarmSize = DefaultConfig().SwarmSize
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = DefaultConfig().MaxIter
	}
	if log == nil {
		log = slog.Default()
	}
	return &Swarm{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed)), log: log}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Minimize searches the box [lb, ub]. Seed vectors replace the first
// particles of the random swarm, clamped into bounds, so the result can only
// improve on them.
func (s *Swarm) Minimize(obj Objective, lb, ub []float64, seeds [][]float64) (Result, error) {
	n := len(lb)
	if n == 0 || len(ub) != n {
		return Result{}, fmt.Errorf("bounds must be non-empty and of equal length")
	}
	for i := range lb {
		if lb[i] >= ub[i] {
			return Result{}, fmt.Errorf("lower bound %v not below upper bound %v at dimension %d", lb[i], ub[i], i)
		}
	}
	if len(seeds) > s.cfg.SwarmSize {
		seeds = seeds[:s.cfg.SwarmSize]
	}

	size := s.cfg.SwarmSize
	x := make([][]float64, size)
	v := make([][]float64, size)
	px := make([][]float64, size) // personal bests
	pf := make([]float64, size)

	gx := make([]float64, n)
	gf := math.Inf(1)

	for i := 0; i < size; i++ {
		x[i] = make([]float64, n)
		v[i] = make([]float64, n)
		px[i] = make([]float64, n)
		for d := 0; d < n; d++ {
			span := ub[d] - lb[d]
			if i < len(seeds) {
				x[i][d] = clamp(seeds[i][d], lb[d], ub[d])
			} else {
				x[i][d] = lb[d] + s.rng.Float64()*span
			}
			v[i][d] = (2*s.rng.Float64() - 1) * span
		}
		copy(px[i], x[i])
		pf[i] = obj(x[i])
		if pf[i] < gf {
			gf = pf[i]
			copy(gx, x[i])
		}
	}

	res := Result{X: gx, F: gf}
	for it := 1; it <= s.cfg.MaxIter; it++ {
		res.Iterations = it
		for i := 0; i < size; i++ {
			for d := 0; d < n; d++ {
				rp := s.rng.Float64()
				rg := s.rng.Float64()
				v[i][d] = s.cfg.Omega*v[i][d] +
					s.cfg.PhiP*rp*(px[i][d]-x[i][d]) +
					s.cfg.PhiG*rg*(gx[d]-x[i][d])
				x[i][d] = clamp(x[i][d]+v[i][d], lb[d], ub[d])
			}
			f := obj(x[i])
			if f < pf[i] {
				pf[i] = f
				copy(px[i], x[i])
			}
			if f < gf {
				var step float64
				for d := 0; d < n; d++ {
					dd := x[i][d] - gx[d]
					step += dd * dd
				}
				step = math.Sqrt(step)
				improvement := gf - f
				gf = f
				copy(gx, x[i])
				if improvement <= s.cfg.MinFunc || step <= s.cfg.MinStep {
					res.F = gf
					res.Converged = true
					s.log.Debug("swarm converged", "iter", it, "best", gf)
					return res, nil
				}
			}
		}
	}
	res.F = gf
	return res, nil
}
