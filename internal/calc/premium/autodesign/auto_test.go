package autodesign

import (
	"math"
	"testing"

	girder "Plateworks/internal/calc/girder"
)

func baseInput() GirderAutoInput {
	return GirderAutoInput{
		Grade: "E250", SpanM: 10, MomentKNM: 800, ShearKN: 300,
		Support:         girder.LaterallySupported,
		WebPhilosophy:   girder.ThickWeb,
		BearingLengthMM: 250,
		Symmetric:       true,
		SwarmSize:       40, MaxIter: 30, Seed: 7,
	}
}

func onCatalog(catalog []float64, v float64) bool {
	for _, c := range catalog {
		if c == v {
			return true
		}
	}
	return false
}

func TestOptimizerFindsSafeDesign(t *testing.T) {
	res, err := Girder(baseInput())
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK {
		t.Fatalf("optimized design failed its own checks: %q", res.Notes)
	}
	if res.MassKG <= 0 {
		t.Fatalf("non-physical mass %v", res.MassKG)
	}
	if res.UtilizationRatio > 1.0 {
		t.Fatalf("utilization %v on a passing design", res.UtilizationRatio)
	}
	// Symmetric search must return mirrored flanges.
	if res.TopFlangeWMM != res.BotFlangeWMM || res.TopFlangeThkMM != res.BotFlangeThkMM {
		t.Fatal("symmetric request produced unequal flanges")
	}
}

func TestOptimizedDimensionsAreRolled(t *testing.T) {
	res, err := Girder(baseInput())
	if err != nil {
		t.Fatal(err)
	}
	if !onCatalog(girder.PlateThicknesses, res.TopFlangeThkMM) {
		t.Errorf("flange thickness %v not on the plate catalog", res.TopFlangeThkMM)
	}
	if !onCatalog(girder.PlateThicknesses, res.WebThkMM) {
		t.Errorf("web thickness %v not on the plate catalog", res.WebThkMM)
	}
	if math.Mod(res.TopFlangeWMM, girder.WidthModulus) != 0 {
		t.Errorf("flange width %v not on the %v modulus", res.TopFlangeWMM, girder.WidthModulus)
	}
	if math.Mod(res.DepthMM, girder.DepthModulus) != 0 {
		t.Errorf("depth %v not on the %v modulus", res.DepthMM, girder.DepthModulus)
	}
}

func TestOptimizerDeterministicForSeed(t *testing.T) {
	a, err := Girder(baseInput())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Girder(baseInput())
	if err != nil {
		t.Fatal(err)
	}
	if a.MassKG != b.MassKG || a.DepthMM != b.DepthMM {
		t.Fatalf("same seed, different designs: %v kg vs %v kg", a.MassKG, b.MassKG)
	}
}

func TestRoundingNeverShrinksDimensions(t *testing.T) {
	l := layoutFor(true, true)
	raw := []float64{13.2, 221, 8.9, 738, 707, 9.5}
	rounded := roundCandidate(l, raw)
	for _, i := range []int{l.tfTop, l.bfTop, l.tw, l.depth, l.spacing, l.tStf} {
		if rounded[i] < raw[i] {
			t.Errorf("index %d shrank: %v -> %v", i, raw[i], rounded[i])
		}
	}
	if rounded[l.spacing] != 710 {
		t.Errorf("spacing %v should snap up to 710", rounded[l.spacing])
	}
	if math.Mod(rounded[l.spacing], girder.SpacingModulus) != 0 {
		t.Errorf("spacing %v not on the %v modulus", rounded[l.spacing], girder.SpacingModulus)
	}
}

func TestMassGrowsWithStiffening(t *testing.T) {
	gi := girder.Input{
		Grade: "E250", SpanM: 10, MomentKNM: 2500, ShearKN: 600,
		DepthMM: 1250, TopFlangeWMM: 420, TopFlangeThkMM: 32,
		BotFlangeWMM: 420, BotFlangeThkMM: 32, WebThkMM: 10,
	}
	bare := mass(gi)

	light := gi
	light.StiffSpacingMM = 3000
	light.IntStiffThkMM = 8

	heavy := gi
	heavy.StiffSpacingMM = 600
	heavy.IntStiffThkMM = 40

	if mass(light) <= bare {
		t.Fatalf("stiffened web must weigh more than bare: %v <= %v", mass(light), bare)
	}
	if mass(heavy) <= mass(light) {
		t.Fatalf("tighter and thicker stiffening must cost mass: %v <= %v", mass(heavy), mass(light))
	}
}

func TestThinWebOptimization(t *testing.T) {
	in := baseInput()
	in.WebPhilosophy = girder.ThinWeb
	in.ShearMethod = girder.SimplePostCritical
	res, err := Girder(in)
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK {
		t.Fatalf("thin-web optimum failed its checks: %q", res.Notes)
	}
	if res.SpacingMM <= 0 {
		t.Fatal("thin-web optimum must carry a stiffener spacing")
	}
	if !onCatalog(girder.StiffenerThicknesses, res.StiffThkMM) {
		t.Errorf("stiffener thickness %v not on the catalog", res.StiffThkMM)
	}
}

func TestOptimizerRejectsBadInput(t *testing.T) {
	in := baseInput()
	in.Grade = "mild"
	if _, err := Girder(in); err == nil {
		t.Fatal("expected an error for an unknown grade")
	}
	in = baseInput()
	in.SpanM = 0
	if _, err := Girder(in); err == nil {
		t.Fatal("expected an error for a zero span")
	}
}
