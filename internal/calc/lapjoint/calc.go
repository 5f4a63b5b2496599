// Package lapjoint sizes a bolted lap splice between two plates: bolt
// diameter and class sweep, grid layout on the available width, and the
// member-side yielding, rupture and block shear checks.
package lapjoint

import (
	"fmt"
	"math"
)

const (
	gammaM0 = 1.10
	gammaM1 = 1.25
	gammaMb = 1.25
)

// Property classes swept during selection, weakest first.
var boltClasses = []struct {
	Class string
	Fub   float64 // MPa
}{
	{"4.6", 400},
	{"5.6", 500},
	{"8.8", 800},
	{"10.9", 1040},
}

// Bolt diameters swept during selection, smallest first.
var boltDiameters = []float64{12, 16, 20, 24, 30, 36}

// Table 19: standard clearance hole.
func holeDiameter(d float64) float64 {
	switch {
	case d <= 14:
		return d + 1
	case d <= 24:
		return d + 2
	default:
		return d + 3
	}
}

type Input struct {
	LoadKN float64 `json:"load_kn"`

	Plate1ThkMM float64 `json:"plate1_thk_mm"`
	Plate2ThkMM float64 `json:"plate2_thk_mm"`
	WidthMM     float64 `json:"width_mm"`

	FyMPa float64 `json:"fy_mpa"`
	FuMPa float64 `json:"fu_mpa"`

	// Optional: pin the sweep to one diameter or class.
	BoltDiaMM float64 `json:"bolt_dia_mm"`
	BoltClass string  `json:"bolt_class"`
}

type Result struct {
	OK bool `json:"ok"`

	BoltDiaMM float64 `json:"bolt_dia_mm"`
	BoltClass string  `json:"bolt_class"`
	Bolts     int     `json:"bolts"`
	Rows      int     `json:"rows"`
	Columns   int     `json:"columns"`

	PitchMM  float64 `json:"pitch_mm"`
	GaugeMM  float64 `json:"gauge_mm"`
	EndMM    float64 `json:"end_mm"`
	EdgeMM   float64 `json:"edge_mm"`
	LengthMM float64 `json:"joint_length_mm"`

	BoltCapacityKN   float64 `json:"bolt_capacity_kn"`
	ShearCapacityKN  float64 `json:"shear_capacity_kn"`
	BearingKN        float64 `json:"bearing_capacity_kn"`
	YieldKN          float64 `json:"yield_capacity_kn"`
	RuptureKN        float64 `json:"rupture_capacity_kn"`
	BlockShearKN     float64 `json:"block_shear_capacity_kn"`
	UtilizationRatio float64 `json:"utilization_ratio"`

	Notes string `json:"notes"`
}

// singleBoltCapacity returns the design capacity of one bolt in single shear
// plus bearing on the thinner plate, with the large-grip and long-joint
// reductions of cl 10.3.3.
func singleBoltCapacity(d, fub, fu, tThin, grip, jointLen float64) float64 {
	anb := 0.78 * math.Pi / 4 * d * d
	vdsb := fub / math.Sqrt(3) * anb / gammaMb

	if grip > 5*d {
		vdsb *= 8 / (3 + grip/d)
	}
	if jointLen > 15*d {
		beta := 1.075 - jointLen/(200*d)
		vdsb *= math.Min(math.Max(beta, 0.75), 1.0)
	}

	d0 := holeDiameter(d)
	e := math.Ceil(1.5 * d0)
	p := math.Ceil(2.5 * d)
	kb := math.Min(math.Min(e/(3*d0), p/(3*d0)-0.25), math.Min(fub/fu, 1.0))
	vdpb := 2.5 * kb * d * tThin * fu / gammaMb

	return math.Min(vdsb, vdpb)
}

// memberCapacities returns gross yielding, net rupture and block shear of the
// thinner plate for a given bolt grid, all in N.
func memberCapacities(in Input, d float64, rows, cols int) (yield, rupture, block float64) {
	t := math.Min(in.Plate1ThkMM, in.Plate2ThkMM)
	d0 := holeDiameter(d)
	e := math.Ceil(1.5 * d0)
	p := math.Ceil(2.5 * d)

	ag := in.WidthMM * t
	an := (in.WidthMM - float64(rows)*d0) * t
	yield = ag * in.FyMPa / gammaM0
	rupture = 0.9 * an * in.FuMPa / gammaM1

	// Block shear on the bolt group perimeter.
	lv := e + float64(cols-1)*p
	lt := float64(rows-1) * p
	avg := 2 * lv * t
	avn := 2 * (lv - (float64(cols)-0.5)*d0) * t
	atg := lt * t
	atn := (lt - float64(rows-1)*d0) * t
	if atg <= 0 {
		// Single row: the tension face runs to the edge.
		atg = e * t
		atn = (e - 0.5*d0) * t
	}
	tdb1 := avg*in.FyMPa/(math.Sqrt(3)*gammaM0) + 0.9*atn*in.FuMPa/gammaM1
	tdb2 := 0.9*avn*in.FuMPa/(math.Sqrt(3)*gammaM1) + atg*in.FyMPa/gammaM0
	block = math.Min(tdb1, tdb2)
	return yield, rupture, block
}

func Calculate(in Input) (Result, error) {
	if in.LoadKN <= 0 || in.Plate1ThkMM <= 0 || in.Plate2ThkMM <= 0 || in.WidthMM <= 0 {
		return Result{}, fmt.Errorf("load, thicknesses and width must be positive")
	}
	if in.FyMPa <= 0 {
		in.FyMPa = 250
	}
	if in.FuMPa <= 0 {
		in.FuMPa = 410
	}

	load := in.LoadKN * 1e3
	tThin := math.Min(in.Plate1ThkMM, in.Plate2ThkMM)
	grip := in.Plate1ThkMM + in.Plate2ThkMM

	diameters := boltDiameters
	if in.BoltDiaMM > 0 {
		diameters = []float64{in.BoltDiaMM}
	}
	classes := boltClasses
	if in.BoltClass != "" {
		classes = nil
		for _, c := range boltClasses {
			if c.Class == in.BoltClass {
				classes = append(classes, c)
				break
			}
		}
		if len(classes) == 0 {
			return Result{}, fmt.Errorf("unknown bolt class %q", in.BoltClass)
		}
	}

	var fallback Result
	for _, cl := range classes {
		for _, d := range diameters {
			if grip > 8*d {
				continue // grip beyond cl 10.3.3.2
			}
			res, ok := layoutFor(in, d, cl.Fub, cl.Class, load, tThin, grip)
			if ok {
				return res, nil
			}
			if res.Bolts > 0 {
				fallback = res
			}
		}
	}
	if fallback.Bolts == 0 {
		return Result{}, fmt.Errorf("no bolt arrangement fits the plates")
	}
	fallback.Notes = "no arrangement satisfies every check; largest swept bolt shown"
	return fallback, nil
}

// layoutFor sizes the grid for one bolt choice. The joint length feeds back
// into the long-joint reduction, so the count is iterated to a fixed point
// with a bounded retry budget instead of recursing.
func layoutFor(in Input, d, fub float64, class string, load, tThin, grip float64) (Result, bool) {
	d0 := holeDiameter(d)
	e := math.Ceil(1.5 * d0)
	p := math.Ceil(2.5 * d)

	rows := int((in.WidthMM-2*e)/p) + 1
	if rows < 1 {
		return Result{}, false
	}
	if rows > 4 {
		rows = 4
	}

	jointLen := 0.0
	cols := 0
	capEach := 0.0
	n := 0
	for try := 0; try < 10; try++ {
		capEach = singleBoltCapacity(d, fub, in.FuMPa, tThin, grip, jointLen)
		if capEach <= 0 {
			return Result{}, false
		}
		need := int(math.Ceil(load / capEach))
		if need < 2 {
			need = 2 // splices never hang on one bolt
		}
		cols = (need + rows - 1) / rows
		n = cols * rows
		newLen := float64(cols-1) * p
		if newLen == jointLen {
			break
		}
		jointLen = newLen
	}
	if cols > 12 {
		return Result{}, false
	}

	yieldN, ruptureN, blockN := memberCapacities(in, d, rows, cols)
	groupN := float64(n) * capEach

	worst := load / math.Min(math.Min(groupN, yieldN), math.Min(ruptureN, blockN))
	res := Result{
		OK:               worst <= 1.0,
		BoltDiaMM:        d,
		BoltClass:        class,
		Bolts:            n,
		Rows:             rows,
		Columns:          cols,
		PitchMM:          p,
		GaugeMM:          p,
		EndMM:            e,
		EdgeMM:           e,
		LengthMM:         2*e + float64(cols-1)*p,
		BoltCapacityKN:   capEach / 1e3,
		ShearCapacityKN:  groupN / 1e3,
		BearingKN:        capEach / 1e3,
		YieldKN:          yieldN / 1e3,
		RuptureKN:        ruptureN / 1e3,
		BlockShearKN:     blockN / 1e3,
		UtilizationRatio: worst,
	}
	return res, res.OK
}
