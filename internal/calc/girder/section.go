package girder

import (
	"fmt"
	"math"
)

// All internal calculations run in N, mm and MPa. Handlers convert from
// kN / kNm / m at the boundary.

type Geometry struct {
	D            float64 // overall depth
	TopFlangeW   float64
	TopFlangeThk float64
	BotFlangeW   float64
	BotFlangeThk float64
	WebThk       float64

	// Intermediate stiffener spacing. <= 0 means "NA" (unstiffened web).
	StiffSpacing float64

	IntStiffThk   float64
	IntStiffWidth float64
	LongStiffThk  float64
	LongStiffW    float64
	EndStiffWidth float64
}

// EffDepth is the clear web depth between flanges. Zero or negative means
// the geometry is non-physical and every check must fail, not panic.
func (g Geometry) EffDepth() float64 {
	return g.D - g.TopFlangeThk - g.BotFlangeThk
}

func (g Geometry) Valid() bool {
	return g.D > 0 && g.WebThk > 0 && g.TopFlangeW > 0 && g.BotFlangeW > 0 &&
		g.TopFlangeThk > 0 && g.BotFlangeThk > 0 && g.EffDepth() > 0
}

func (g Geometry) Symmetric() bool {
	return g.TopFlangeW == g.BotFlangeW && g.TopFlangeThk == g.BotFlangeThk
}

type Material struct {
	Grade string
	Fy    float64 // MPa
	Fu    float64 // MPa
	E     float64 // MPa
}

func (m Material) Epsilon() float64 {
	if m.Fy <= 0 {
		return 1.0
	}
	return math.Sqrt(250.0 / m.Fy)
}

// IS 2062 structural steel grades.
var grades = map[string]Material{
	"E250": {Grade: "E250", Fy: 250, Fu: 410, E: 2.0e5},
	"E300": {Grade: "E300", Fy: 300, Fu: 440, E: 2.0e5},
	"E350": {Grade: "E350", Fy: 350, Fu: 490, E: 2.0e5},
	"E410": {Grade: "E410", Fy: 410, Fu: 540, E: 2.0e5},
	"E450": {Grade: "E450", Fy: 450, Fu: 570, E: 2.0e5},
}

func MaterialByGrade(grade string) (Material, error) {
	m, ok := grades[grade]
	if !ok {
		return Material{}, fmt.Errorf("unknown material grade %q", grade)
	}
	return m, nil
}

type Load struct {
	Moment float64 // N·mm
	Shear  float64 // N
}

// Standard rolled plate thicknesses, ascending.
var PlateThicknesses = []float64{6, 8, 10, 12, 14, 16, 18, 20, 22, 25, 28, 32, 36, 40, 45, 50, 56, 63, 75, 80, 90, 100}

// Stiffener plate catalog, ascending.
var StiffenerThicknesses = []float64{8, 10, 12, 14, 16, 18, 20, 22, 25, 28, 32, 36, 40, 45, 50, 56, 63, 75, 80, 90, 100, 110, 120}

// Rounding moduli for optimized dimensions.
const (
	WidthModulus   = 10.0
	DepthModulus   = 25.0
	SpacingModulus = 10.0
)

// Partial safety factors per IS 800:2007 Table 5.
const (
	GammaM0 = 1.10
	GammaM1 = 1.25
	GammaMw = 1.25 // shop fillet welds
)

// FailRatio is the sentinel written for a check that could not produce a
// physical capacity. Any skipped or short-circuited check reads as failing.
var FailRatio = math.Inf(1)

// EvaluationState is the scratch space for one full check pass over a single
// geometry. Every ratio starts at the failing sentinel so that a branch that
// never runs can never read as safe.
type EvaluationState struct {
	Class SectionClass
	ZpReq float64

	Zp, Ze float64
	BetaB  float64

	Vd  float64
	Vcr float64
	Vtf float64

	Mcr float64
	Md  float64
	It  float64
	Iw  float64

	EffectiveLength float64

	MomentRatio      float64
	ShearRatio       float64
	WebBucklingRatio float64
	EndShearRatio    float64
	DeflectionRatio  float64

	EndStiffThk   float64
	EndStiffWidth float64
	StiffBuckling float64 // buckling resistance of the governing stiffener strut

	LongStiffPos1 float64
	LongStiffPos2 float64
	LongStiffOK   bool

	WeldTopLeg   float64
	WeldBotLeg   float64
	WeldStiffLeg float64
}

func newEvaluationState() *EvaluationState {
	return &EvaluationState{
		MomentRatio:      FailRatio,
		ShearRatio:       FailRatio,
		WebBucklingRatio: FailRatio,
		EndShearRatio:    FailRatio,
		DeflectionRatio:  FailRatio,
	}
}

// noteShear folds a ratio into the running worst shear utilization. The
// sentinel means "nothing computed yet" and is replaced, not compared.
func (st *EvaluationState) noteShear(ratio float64) {
	if math.IsInf(st.ShearRatio, 1) {
		st.ShearRatio = ratio
		return
	}
	st.ShearRatio = math.Max(st.ShearRatio, ratio)
}

// WorstRatio is the governing utilization across all completed checks.
func (st *EvaluationState) WorstRatio() float64 {
	worst := 0.0
	for _, r := range []float64{st.MomentRatio, st.ShearRatio, st.DeflectionRatio} {
		if math.IsInf(r, 1) {
			return FailRatio
		}
		worst = math.Max(worst, r)
	}
	return worst
}
