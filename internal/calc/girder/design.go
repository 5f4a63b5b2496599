package girder

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
)

const (
	LaterallySupported   = "Laterally Supported"
	LaterallyUnsupported = "Laterally Unsupported"

	ThickWeb = "Thick Web without ITS"
	ThinWeb  = "Thin Web with ITS"

	SimplePostCritical = "Simple Post Critical"
	TensionField       = "Tension Field"
)

type Input struct {
	Grade     string  `json:"grade"`
	SpanM     float64 `json:"span_m"`
	MomentKNM float64 `json:"moment_knm"`
	ShearKN   float64 `json:"shear_kn"`

	DepthMM         float64 `json:"depth_mm"`
	TopFlangeWMM    float64 `json:"top_flange_width_mm"`
	TopFlangeThkMM  float64 `json:"top_flange_thk_mm"`
	BotFlangeWMM    float64 `json:"bottom_flange_width_mm"`
	BotFlangeThkMM  float64 `json:"bottom_flange_thk_mm"`
	WebThkMM        float64 `json:"web_thk_mm"`
	BearingLengthMM float64 `json:"bearing_length_mm"`

	Support       string  `json:"support"`        // Laterally Supported / Unsupported
	WebPhilosophy string  `json:"web_philosophy"` // Thick Web without ITS / Thin Web with ITS
	ShearMethod   string  `json:"shear_method"`   // Simple Post Critical / Tension Field
	LoadCase      string  `json:"load_case"`
	Torsion       string  `json:"torsion_restraint"`
	Warping       string  `json:"warping_restraint"`
	Destabilizing bool    `json:"destabilizing_load"`
	LengthFactor  float64 `json:"effective_length_factor"` // 0 uses the code table

	DeflectionLimit float64 `json:"deflection_limit"` // span ratio, <= 0 means NA

	StiffSpacingMM  float64   `json:"stiffener_spacing_mm"` // <= 0 means NA
	IntStiffThkMM   float64   `json:"int_stiffener_thk_mm"`
	LongStiffeners  int       `json:"longitudinal_stiffeners"`
	LongStiffThkMM  float64   `json:"long_stiffener_thk_mm"`
	StiffenerThkCat []float64 `json:"-"`
}

type Result struct {
	OK          bool   `json:"ok"`
	Designation string `json:"designation"`
	Class       string `json:"section_class"`

	UtilizationRatio float64 `json:"utilization_ratio"`
	MomentRatio      float64 `json:"moment_ratio"`
	ShearRatio       float64 `json:"shear_ratio"`
	DeflectionRatio  float64 `json:"deflection_ratio"`
	WebBucklingRatio float64 `json:"web_buckling_ratio"`
	EndShearRatio    float64 `json:"end_shear_ratio"`

	MomentCapacityKNM  float64 `json:"moment_capacity_knm"`
	ShearCapacityKN    float64 `json:"shear_capacity_kn"`
	CriticalMomentKNM  float64 `json:"critical_moment_knm"`
	TorsionConstantCM4 float64 `json:"torsion_constant_cm4"`
	WarpingConstantCM6 float64 `json:"warping_constant_cm6"`
	EffectiveAreaCM2   float64 `json:"effective_area_cm2"`

	EndStiffThkMM   float64 `json:"end_stiffener_thk_mm"`
	EndStiffWidthMM float64 `json:"end_stiffener_width_mm"`
	IntStiffThkMM   float64 `json:"int_stiffener_thk_mm"`
	StiffSpacingMM  float64 `json:"stiffener_spacing_mm"`
	LongStiffeners  int     `json:"longitudinal_stiffeners"`
	LongStiffOK     bool    `json:"longitudinal_stiffeners_ok"`
	LongStiffPos1MM float64 `json:"long_stiffener_pos1_mm"`
	LongStiffPos2MM float64 `json:"long_stiffener_pos2_mm"`

	WeldWebFlangeMM float64 `json:"weld_web_flange_mm"`
	WeldStiffenerMM float64 `json:"weld_stiffener_mm"`

	Notes string `json:"notes"`
}

// Engine evaluates one geometry against the full check suite. It implements
// Checker; the Evaluate orchestrator consumes it through that interface.
type Engine struct {
	Geom *Geometry
	Mat  Material
	Load Load

	Length float64 // span, mm

	Support       string
	Philosophy    string
	ShearMethod   string
	LoadCase      string
	Torsion       string
	Warping       string
	Destabilizing bool
	LengthFactor  float64

	BearingLength   float64
	DeflectionLimit float64
	LongStiffCount  int

	StiffCatalog []float64

	Log *slog.Logger

	reasons []string
}

// Checker is the capability surface the orchestrator sequences.
type Checker interface {
	Classify(*EvaluationState) SectionClass
	CheckMoment(*EvaluationState) bool
	CheckShear(*EvaluationState) bool
	CheckStiffeners(*EvaluationState) bool
	CheckDeflection(*EvaluationState) bool
}

func (e *Engine) fail(reason string) bool {
	e.reasons = append(e.reasons, reason)
	return false
}

// CheckShear runs the philosophy-appropriate shear chain. Gate failures
// (slender section on an unstiffened web, missing spacing, thin web) leave
// the shear ratio at the fail sentinel.
func (e *Engine) CheckShear(st *EvaluationState) bool {
	g := e.Geom
	if g.EffDepth() <= 0 {
		return e.fail("invalid geometry: flange thicknesses consume the depth")
	}
	eps := e.Mat.Epsilon()

	if e.Philosophy == ThickWeb {
		if st.Class == Slender {
			return e.fail("slender section not allowed for thick-web design")
		}
		if !minWebThicknessOK(g.EffDepth(), g.WebThk, eps, webUnstiffened, 0) {
			return e.fail("web thickness insufficient for an unstiffened web")
		}
		ok1 := e.checkShearThickWeb(st)
		ok2 := e.checkWebBuckling(st)
		ok3 := e.checkWebCrippling(st)
		return ok1 && ok2 && ok3
	}

	// Thin web with intermediate transverse stiffeners. The support reaction
	// enters through the end stiffeners, so the bare-web bearing checks do
	// not apply.
	st.WebBucklingRatio = 0
	if g.StiffSpacing <= 0 {
		return e.fail("stiffener spacing required for thin-web design")
	}
	arrangement := webTransverseOnly
	switch e.LongStiffCount {
	case 1:
		arrangement = webOneLongitudinal
	case 2:
		arrangement = webTwoLongitudinal
	}
	if e.LongStiffCount > 0 {
		st.LongStiffOK = e.checkLongitudinalStiffeners(st, e.LongStiffCount == 2)
		if !st.LongStiffOK {
			e.Log.Warn("longitudinal stiffener rigidity check failed")
		}
	}
	if !minWebThicknessOK(g.EffDepth(), g.WebThk, eps, arrangement, g.StiffSpacing) {
		return e.fail("web thickness insufficient for the stiffened web")
	}

	var ok1 bool
	if e.ShearMethod == TensionField {
		ok1 = e.checkShearTensionField(st)
	} else {
		ok1 = e.checkShearSimplePostCritical(st)
	}
	ok2 := e.checkIntermediateStiffener(st)
	return ok1 && ok2
}

// CheckStiffeners runs the end-panel stiffener search; its failure is a
// shear failure regardless of the earlier chain.
func (e *Engine) CheckStiffeners(st *EvaluationState) bool {
	return e.checkEndPanelStiffener(st)
}

// Evaluate sequences one full check pass: classification, shear chain,
// moment, end-panel stiffener (which can demote the shear verdict) and
// deflection. It never returns early, so a failing design still carries its
// complete ratio breakdown.
func Evaluate(c Checker, st *EvaluationState) bool {
	c.Classify(st)
	shearOK := c.CheckShear(st)
	momentOK := c.CheckMoment(st)
	if !c.CheckStiffeners(st) {
		shearOK = false
	}
	deflOK := c.CheckDeflection(st)
	return momentOK && shearOK && deflOK
}

// Calculate runs the orchestrator for a fixed ("customized") geometry.
func Calculate(in Input) (Result, error) {
	return calculate(in, slog.Default())
}

// CalculateSilent is the optimizer entry point: no log output, same verdict.
func CalculateSilent(in Input) (Result, error) {
	return calculate(in, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func calculate(in Input, log *slog.Logger) (Result, error) {
	e, err := NewEngine(in, log)
	if err != nil {
		return Result{}, err
	}
	st := newEvaluationState()
	ok := Evaluate(e, st)
	return e.format(st, ok), nil
}

// NewEngine validates the input record and converts it into internal units.
// Programmer-error conditions (unknown grade, non-positive load or span)
// surface here, before any evaluation begins.
func NewEngine(in Input, log *slog.Logger) (*Engine, error) {
	mat, err := MaterialByGrade(in.Grade)
	if err != nil {
		return nil, err
	}
	if in.SpanM <= 0 || in.MomentKNM <= 0 || in.ShearKN <= 0 {
		return nil, fmt.Errorf("span, moment and shear must be positive")
	}
	if log == nil {
		log = slog.Default()
	}
	catalog := in.StiffenerThkCat
	if catalog == nil {
		catalog = StiffenerThicknesses
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("stiffener thickness catalog is empty")
	}

	g := &Geometry{
		D:            in.DepthMM,
		TopFlangeW:   in.TopFlangeWMM,
		TopFlangeThk: in.TopFlangeThkMM,
		BotFlangeW:   in.BotFlangeWMM,
		BotFlangeThk: in.BotFlangeThkMM,
		WebThk:       in.WebThkMM,
		StiffSpacing: in.StiffSpacingMM,
		IntStiffThk:  in.IntStiffThkMM,
		LongStiffThk: in.LongStiffThkMM,
	}
	minFlange := math.Min(g.TopFlangeW, g.BotFlangeW)
	g.IntStiffWidth = math.Max(minFlange-g.WebThk/2-10, 0)
	g.LongStiffW = g.IntStiffWidth
	g.EndStiffWidth = minFlange/2 - g.WebThk/2 - 10
	if g.EndStiffWidth <= 0 {
		g.EndStiffWidth = 50
	}
	if g.IntStiffThk <= 0 {
		g.IntStiffThk = catalog[0]
	}
	if g.LongStiffThk <= 0 {
		g.LongStiffThk = catalog[0]
	}

	support := in.Support
	if support == "" {
		support = LaterallySupported
	}
	philosophy := in.WebPhilosophy
	if philosophy == "" {
		philosophy = ThickWeb
	}
	method := in.ShearMethod
	if method == "" {
		method = SimplePostCritical
	}
	loadCase := in.LoadCase
	if loadCase == "" {
		loadCase = CaseUDLPinPin
	}

	return &Engine{
		Geom:            g,
		Mat:             mat,
		Load:            Load{Moment: in.MomentKNM * 1e6, Shear: in.ShearKN * 1e3},
		Length:          in.SpanM * 1e3,
		Support:         support,
		Philosophy:      philosophy,
		ShearMethod:     method,
		LoadCase:        loadCase,
		Torsion:         in.Torsion,
		Warping:         in.Warping,
		Destabilizing:   in.Destabilizing,
		LengthFactor:    in.LengthFactor,
		BearingLength:   in.BearingLengthMM,
		DeflectionLimit: in.DeflectionLimit,
		LongStiffCount:  in.LongStiffeners,
		StiffCatalog:    catalog,
		Log:             log,
	}, nil
}

// jsonRatio caps the infinite fail sentinel to a finite value that still
// reads as a gross failure and survives JSON encoding.
func jsonRatio(r float64) float64 {
	if math.IsInf(r, 1) || math.IsNaN(r) {
		return 9999
	}
	return r
}

func (e *Engine) format(st *EvaluationState, ok bool) Result {
	g := e.Geom
	e.designWebFlangeWelds(st)
	e.endStiffenerWeld(st)

	// Governing shear capacity: post-critical or tension-field resistance for
	// a stiffened thin web, plastic capacity otherwise.
	shearCap := st.Vd
	if e.Philosophy == ThinWeb {
		shearCap = st.Vcr
		if e.ShearMethod == TensionField && st.Vtf > 0 {
			shearCap = st.Vtf
		}
	}

	res := Result{
		OK: ok,
		Designation: fmt.Sprintf("%d x %d x %d x %d x %d x %d",
			int(g.D), int(g.WebThk), int(g.BotFlangeW), int(g.BotFlangeThk), int(g.TopFlangeW), int(g.TopFlangeThk)),
		Class: st.Class.String(),

		UtilizationRatio: jsonRatio(st.WorstRatio()),
		MomentRatio:      jsonRatio(st.MomentRatio),
		ShearRatio:       jsonRatio(st.ShearRatio),
		DeflectionRatio:  jsonRatio(st.DeflectionRatio),
		WebBucklingRatio: jsonRatio(st.WebBucklingRatio),
		EndShearRatio:    jsonRatio(st.EndShearRatio),

		MomentCapacityKNM: st.Md / 1e6,
		ShearCapacityKN:   shearCap / 1e3,
		EffectiveAreaCM2:  SectionArea(*g) / 100,
		EndStiffThkMM:     st.EndStiffThk,
		EndStiffWidthMM:   st.EndStiffWidth,
		IntStiffThkMM:     g.IntStiffThk,
		StiffSpacingMM:    g.StiffSpacing,
		LongStiffeners:    e.LongStiffCount,
		LongStiffOK:       st.LongStiffOK,
		LongStiffPos1MM:   st.LongStiffPos1,
		LongStiffPos2MM:   st.LongStiffPos2,
		WeldWebFlangeMM:   math.Max(st.WeldTopLeg, st.WeldBotLeg),
		WeldStiffenerMM:   st.WeldStiffLeg,
		Notes:             strings.Join(e.reasons, "; "),
	}
	if e.Support == LaterallyUnsupported {
		res.CriticalMomentKNM = st.Mcr / 1e6
		res.TorsionConstantCM4 = st.It / 1e4
		res.WarpingConstantCM6 = st.Iw / 1e6
	}
	if ok {
		e.Log.Info("design is safe", "designation", res.Designation, "utilization", res.UtilizationRatio)
	} else {
		e.Log.Warn("design failed", "designation", res.Designation, "notes", res.Notes)
	}
	return res
}
