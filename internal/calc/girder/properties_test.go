package girder

import (
	"io"
	"log/slog"
	"math"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// 1000 deep, 400x25 flanges, 16 web: hand-checked values.
func symmetricGeometry() Geometry {
	return Geometry{
		D: 1000, TopFlangeW: 400, TopFlangeThk: 25,
		BotFlangeW: 400, BotFlangeThk: 25, WebThk: 16,
	}
}

func TestSymmetricSectionProperties(t *testing.T) {
	g := symmetricGeometry()

	almost(t, SectionArea(g), 2*400*25+950*16, 1e-6)
	almost(t, CentroidFromTop(g), 500, 1e-9)

	// Iz: flanges (area * 487.5^2 + own) + web about its own centroid.
	wantIz := 2*(400*25.0*487.5*487.5+400*math.Pow(25, 3)/12) + 16*math.Pow(950, 3)/12
	almost(t, MomentOfInertiaZ(g), wantIz, 1)
	almost(t, ElasticModulusZ(g), wantIz/500, 1)

	// Zp: flanges at 487.5 from the equal-area axis, web halves at d/4.
	wantZp := 2*400*25.0*487.5 + 16*950*950/4.0
	almost(t, PlasticModulusZ(g), wantZp, 1)

	wantIt := (2*400*math.Pow(25, 3) + 950*math.Pow(16, 3)) / 3
	almost(t, TorsionConstant(g), wantIt, 1)

	// Symmetric: Iw = Ify/4 * h^2 with h between flange centroids.
	ify := 25 * math.Pow(400, 3) / 12
	almost(t, WarpingConstant(g), ify/2*975*975, 1e6)
	if MonosymmetryOffset(g) != 0 {
		t.Fatal("symmetric section must have zero monosymmetry offset")
	}
}

func TestUnsymmetricCentroid(t *testing.T) {
	g := symmetricGeometry()
	g.BotFlangeW = 250
	yna := CentroidFromTop(g)
	if yna >= 500 {
		t.Fatalf("smaller bottom flange must pull the centroid up, got %v", yna)
	}
	if ze := ElasticModulusZ(g); ze <= 0 {
		t.Fatalf("elastic modulus must stay positive, got %v", ze)
	}
	if zp := PlasticModulusZ(g); zp <= ElasticModulusZ(g) {
		t.Fatalf("plastic modulus should exceed elastic, got Zp=%v Ze=%v", zp, ElasticModulusZ(g))
	}
	if MonosymmetryOffset(g) == 0 {
		t.Fatal("unsymmetric section must have a nonzero monosymmetry offset")
	}
}

func TestDegenerateGeometryProperties(t *testing.T) {
	g := Geometry{D: 50, TopFlangeThk: 30, BotFlangeThk: 30, TopFlangeW: 200, BotFlangeW: 200, WebThk: 10}
	if g.EffDepth() >= 0 {
		t.Fatal("fixture should have negative effective depth")
	}
	for name, v := range map[string]float64{
		"area": SectionArea(g),
		"iz":   MomentOfInertiaZ(g),
		"iy":   MomentOfInertiaY(g),
		"ze":   ElasticModulusZ(g),
		"zp":   PlasticModulusZ(g),
		"it":   TorsionConstant(g),
	} {
		if v != 0 {
			t.Errorf("%s should be 0 for degenerate geometry, got %v", name, v)
		}
	}
}
