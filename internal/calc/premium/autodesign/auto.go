package autodesign

import (
	"fmt"
	"log/slog"
	"math"

	girder "Plateworks/internal/calc/girder"
	"Plateworks/internal/pswarm"
)

const steelDensity = 7.85e-6 // kg/mm^3

type GirderAutoInput struct {
	Grade     string  `json:"grade"`
	SpanM     float64 `json:"span_m"`
	MomentKNM float64 `json:"moment_knm"`
	ShearKN   float64 `json:"shear_kn"`

	Support       string  `json:"support"`
	WebPhilosophy string  `json:"web_philosophy"`
	ShearMethod   string  `json:"shear_method"`
	LoadCase      string  `json:"load_case"`
	Torsion       string  `json:"torsion_restraint"`
	Warping       string  `json:"warping_restraint"`
	Destabilizing bool    `json:"destabilizing_load"`
	LengthFactor  float64 `json:"effective_length_factor"`

	BearingLengthMM float64 `json:"bearing_length_mm"`
	DeflectionLimit float64 `json:"deflection_limit"`
	Symmetric       bool    `json:"symmetric_flanges"`

	SwarmSize int   `json:"swarm_size"`
	MaxIter   int   `json:"max_iter"`
	Seed      int64 `json:"seed"`
}

type GirderAutoResult struct {
	girder.Result

	DepthMM        float64 `json:"depth_mm"`
	TopFlangeWMM   float64 `json:"top_flange_width_mm"`
	TopFlangeThkMM float64 `json:"top_flange_thk_mm"`
	BotFlangeWMM   float64 `json:"bottom_flange_width_mm"`
	BotFlangeThkMM float64 `json:"bottom_flange_thk_mm"`
	WebThkMM       float64 `json:"web_thk_mm"`
	SpacingMM      float64 `json:"spacing_mm"`
	StiffThkMM     float64 `json:"stiffener_thk_mm"`

	MassKG     float64 `json:"mass_kg"`
	Iterations int     `json:"iterations"`
	Converged  bool    `json:"converged"`
}

// layout maps design variables onto candidate-vector indices. The unsymmetric
// layouts append the bottom flange pair; the thin-web layouts append panel
// spacing and stiffener thickness. -1 means "not a free variable".
type layout struct {
	tfTop, bfTop  int
	tfBot, bfBot  int
	tw, depth     int
	spacing, tStf int
	n             int
}

func layoutFor(symmetric, thinWeb bool) layout {
	l := layout{tfTop: 0, bfTop: 1, tfBot: -1, bfBot: -1, tw: 2, depth: 3, spacing: -1, tStf: -1, n: 4}
	if !symmetric {
		l = layout{tfTop: 0, bfTop: 1, tfBot: 2, bfBot: 3, tw: 4, depth: 5, spacing: -1, tStf: -1, n: 6}
	}
	if thinWeb {
		l.spacing = l.n
		l.tStf = l.n + 1
		l.n += 2
	}
	return l
}

func (l layout) bounds() (lb, ub []float64) {
	lb = make([]float64, l.n)
	ub = make([]float64, l.n)
	set := func(i int, lo, hi float64) {
		if i >= 0 {
			lb[i], ub[i] = lo, hi
		}
	}
	set(l.tfTop, 6, 100)
	set(l.bfTop, 100, 1000)
	set(l.tfBot, 6, 100)
	set(l.bfBot, 100, 1000)
	set(l.tw, 6, 40)
	set(l.depth, 200, 3000)
	set(l.spacing, 200, 3000)
	set(l.tStf, 8, 40)
	return lb, ub
}

// toInput maps a candidate vector onto a full check input. Symmetric layouts
// mirror the top flange onto the bottom.
func (in GirderAutoInput) toInput(l layout, x []float64) girder.Input {
	gi := girder.Input{
		Grade: in.Grade, SpanM: in.SpanM, MomentKNM: in.MomentKNM, ShearKN: in.ShearKN,
		Support: in.Support, WebPhilosophy: in.WebPhilosophy, ShearMethod: in.ShearMethod,
		LoadCase: in.LoadCase, Torsion: in.Torsion, Warping: in.Warping,
		Destabilizing: in.Destabilizing, LengthFactor: in.LengthFactor,
		BearingLengthMM: in.BearingLengthMM, DeflectionLimit: in.DeflectionLimit,

		DepthMM:        x[l.depth],
		TopFlangeThkMM: x[l.tfTop],
		TopFlangeWMM:   x[l.bfTop],
		BotFlangeThkMM: x[l.tfTop],
		BotFlangeWMM:   x[l.bfTop],
		WebThkMM:       x[l.tw],
	}
	if l.tfBot >= 0 {
		gi.BotFlangeThkMM = x[l.tfBot]
		gi.BotFlangeWMM = x[l.bfBot]
	}
	if l.spacing >= 0 {
		gi.StiffSpacingMM = x[l.spacing]
		gi.IntStiffThkMM = x[l.tStf]
	}
	return gi
}

// mass is the optimization objective: flange and web volume over the span,
// plus the transverse stiffener pairs distributed along a stiffened web.
func mass(gi girder.Input) float64 {
	g := girder.Geometry{
		D: gi.DepthMM, TopFlangeW: gi.TopFlangeWMM, TopFlangeThk: gi.TopFlangeThkMM,
		BotFlangeW: gi.BotFlangeWMM, BotFlangeThk: gi.BotFlangeThkMM, WebThk: gi.WebThkMM,
	}
	spanMM := gi.SpanM * 1e3
	m := girder.SectionArea(g) * spanMM * steelDensity
	if gi.StiffSpacingMM > 0 && gi.IntStiffThkMM > 0 {
		n := math.Floor(spanMM/gi.StiffSpacingMM) - 1
		width := math.Max(math.Min(g.TopFlangeW, g.BotFlangeW)-g.WebThk/2-10, 0)
		if n > 0 && width > 0 {
			m += n * 2 * width * gi.IntStiffThkMM * g.EffDepth() * steelDensity
		}
	}
	return m
}

// seedCandidate builds the deterministic first particle from span and
// moment driven proportions, so the swarm starts from a sane girder instead
// of noise.
func (in GirderAutoInput) seedCandidate(l layout, mat girder.Material) []float64 {
	eps := mat.Epsilon()
	spanMM := in.SpanM * 1e3
	momentNmm := in.MomentKNM * 1e6

	d := math.Max(spanMM/25, math.Cbrt(momentNmm*67/mat.Fy))
	d = math.Min(math.Max(d, 200), 3000)
	bf := math.Min(math.Max(0.3*d, 100), 1000)
	tf := math.Max(bf/24, bf/(2*8.4*eps))
	tf = math.Min(math.Max(tf, 6), 100)

	var tw float64
	if in.WebPhilosophy == girder.ThinWeb {
		tw = math.Max(d/200, 8)
	} else {
		tw = math.Max(d/(67*eps), 8)
	}
	tw = math.Min(tw, 40)

	x := make([]float64, l.n)
	x[l.tfTop] = tf
	x[l.bfTop] = bf
	x[l.tw] = tw
	x[l.depth] = d
	if l.tfBot >= 0 {
		x[l.tfBot] = tf
		x[l.bfBot] = bf
	}
	if l.spacing >= 0 {
		x[l.spacing] = math.Min(math.Max(d, 200), 3000)
		x[l.tStf] = 8
	}
	return x
}

// heavyCandidate is an intentionally overbuilt particle. It anchors the swarm
// with a design that satisfies the checks for any reasonable loading, so the
// search always has a feasible region to descend from.
func (in GirderAutoInput) heavyCandidate(l layout, mat girder.Material) []float64 {
	eps := mat.Epsilon()
	spanMM := in.SpanM * 1e3

	d := math.Min(math.Max(spanMM/12, 400), 3000)
	bf := math.Min(math.Max(0.35*d, 100), 1000)
	tf := math.Min(bf/8, 100)
	tw := math.Min(math.Max(d/(67*eps), 10), 40)
	if in.WebPhilosophy == girder.ThinWeb {
		tw = math.Min(math.Max(d/150, 10), 40)
	}

	x := make([]float64, l.n)
	x[l.tfTop] = tf
	x[l.bfTop] = bf
	x[l.tw] = tw
	x[l.depth] = d
	if l.tfBot >= 0 {
		x[l.tfBot] = tf
		x[l.bfBot] = bf
	}
	if l.spacing >= 0 {
		x[l.spacing] = math.Min(math.Max(0.8*d, 200), 3000)
		x[l.tStf] = 12
	}
	return x
}

// roundCandidate snaps a raw optimum onto plate catalogs and rolling moduli.
// Every value rounds up, spacing included; the authoritative re-check after
// rounding catches a panel that the slightly wider spacing tips over.
func roundCandidate(l layout, x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	out[l.tfTop] = girder.NextPlate(x[l.tfTop])
	out[l.bfTop] = girder.RoundUpWidth(x[l.bfTop])
	out[l.tw] = girder.NextPlate(x[l.tw])
	out[l.depth] = girder.RoundUpDepth(x[l.depth])
	if l.tfBot >= 0 {
		out[l.tfBot] = girder.NextPlate(x[l.tfBot])
		out[l.bfBot] = girder.RoundUpWidth(x[l.bfBot])
	}
	if l.spacing >= 0 {
		out[l.spacing] = girder.RoundUpSpacing(x[l.spacing])
		out[l.tStf] = girder.NextStiffener(x[l.tStf])
	}
	return out
}

// Girder searches for the lightest cross-section satisfying every check.
func Girder(in GirderAutoInput) (GirderAutoResult, error) {
	mat, err := girder.MaterialByGrade(in.Grade)
	if err != nil {
		return GirderAutoResult{}, err
	}
	if in.SpanM <= 0 || in.MomentKNM <= 0 || in.ShearKN <= 0 {
		return GirderAutoResult{}, fmt.Errorf("span, moment and shear must be positive")
	}
	if in.WebPhilosophy == "" {
		in.WebPhilosophy = girder.ThickWeb
	}

	l := layoutFor(in.Symmetric, in.WebPhilosophy == girder.ThinWeb)
	lb, ub := l.bounds()

	objective := func(x []float64) float64 {
		gi := in.toInput(l, x)
		res, err := girder.CalculateSilent(gi)
		if err != nil {
			return 1e9
		}
		m := mass(gi)
		worst := res.UtilizationRatio
		if worst >= 9999 {
			return m + 1e9
		}
		if !res.OK || worst > 1 {
			return m + 1e6*worst
		}
		return m
	}

	cfg := pswarm.DefaultConfig()
	if in.SwarmSize > 0 {
		cfg.SwarmSize = in.SwarmSize
	}
	if in.MaxIter > 0 {
		cfg.MaxIter = in.MaxIter
	}
	cfg.Seed = in.Seed

	seeds := [][]float64{in.seedCandidate(l, mat), in.heavyCandidate(l, mat)}
	best, err := pswarm.New(cfg, slog.Default()).Minimize(objective, lb, ub, seeds)
	if err != nil {
		return GirderAutoResult{}, err
	}

	rounded := roundCandidate(l, best.X)
	final := in.toInput(l, rounded)
	res, err := girder.Calculate(final)
	if err != nil {
		return GirderAutoResult{}, err
	}
	// Rounding can push a web sitting exactly on its slenderness limit over
	// the edge; one catalog step on the web restores it.
	for tries := 0; !res.OK && tries < 2 && rounded[l.tw] < 40; tries++ {
		rounded[l.tw] = girder.NextPlate(rounded[l.tw] + 0.5)
		final = in.toInput(l, rounded)
		res, err = girder.Calculate(final)
		if err != nil {
			return GirderAutoResult{}, err
		}
	}
	if !res.OK {
		slog.Warn("optimizer could not reach a safe design", "notes", res.Notes)
	}

	return GirderAutoResult{
		Result:         res,
		DepthMM:        final.DepthMM,
		TopFlangeWMM:   final.TopFlangeWMM,
		TopFlangeThkMM: final.TopFlangeThkMM,
		BotFlangeWMM:   final.BotFlangeWMM,
		BotFlangeThkMM: final.BotFlangeThkMM,
		WebThkMM:       final.WebThkMM,
		SpacingMM:      final.StiffSpacingMM,
		StiffThkMM:     final.IntStiffThkMM,
		MassKG:         mass(final),
		Iterations:     best.Iterations,
		Converged:      best.Converged,
	}, nil
}
