package girder

import (
	"math"
	"testing"
)

func almost(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestClassifyOutstand(t *testing.T) {
	cases := []struct {
		b, tf float64
		want  SectionClass
	}{
		{100, 12.5, Plastic},     // b/tf = 8.0
		{100, 11, Compact},       // 9.09
		{100, 8, SemiCompact},    // 12.5
		{100, 7, Slender},        // 14.3
		{100, 0, Slender},        // degenerate
	}
	for _, c := range cases {
		if got := classifyOutstand(c.b, c.tf, 250); got != c.want {
			t.Errorf("outstand %v/%v: got %v, want %v", c.b, c.tf, got, c.want)
		}
	}
}

func TestClassifyWebMonotonic(t *testing.T) {
	// Thinning the web must never improve the class.
	prev := Plastic
	for tw := 40.0; tw >= 6; tw -= 2 {
		got := classifyWeb(1000, tw, 250)
		if got < prev {
			t.Fatalf("class improved from %v to %v at tw=%v", prev, got, tw)
		}
		prev = got
	}
	if prev != Slender {
		t.Fatalf("thinnest web should be Slender, got %v", prev)
	}
}

func TestHigherGradeTightensLimits(t *testing.T) {
	// A web that is Compact at fy=250 must not be more ductile at fy=450.
	low := classifyWeb(1000, 10, 250)
	high := classifyWeb(1000, 10, 450)
	if high < low {
		t.Fatalf("class improved with grade: %v -> %v", low, high)
	}
}

func TestShearBucklingCoeff(t *testing.T) {
	almost(t, shearBucklingCoeff(0, 1000), 5.35, 1e-9)
	almost(t, shearBucklingCoeff(2000, 1000), 5.35+4.0/4.0, 1e-9)
	almost(t, shearBucklingCoeff(500, 1000), 4+5.35/0.25, 1e-9)
}

func TestShearBucklingStressBands(t *testing.T) {
	fyw := 250.0 / math.Sqrt(3)
	almost(t, shearBucklingStress(0.5, 250), fyw, 1e-9)
	almost(t, shearBucklingStress(1.0, 250), (1-0.8*0.2)*fyw, 1e-9)
	almost(t, shearBucklingStress(2.0, 250), fyw/4, 1e-9)
	if got := shearBucklingStress(math.Inf(1), 250); got != 0 {
		t.Fatalf("infinite slenderness should give zero stress, got %v", got)
	}
}

func TestDesignCompressiveStressBounds(t *testing.T) {
	fcd := designCompressiveStress(250, GammaM0, 50, 2e5)
	if fcd <= 0 || fcd > 250/GammaM0 {
		t.Fatalf("fcd out of range: %v", fcd)
	}
	// Slender struts carry less.
	if fcd2 := designCompressiveStress(250, GammaM0, 200, 2e5); fcd2 >= fcd {
		t.Fatalf("fcd should drop with slenderness: %v >= %v", fcd2, fcd)
	}
	if got := designCompressiveStress(250, GammaM0, math.Inf(1), 2e5); got != 0 {
		t.Fatalf("infinite slenderness should give zero, got %v", got)
	}
}

func TestWeldSizeLimits(t *testing.T) {
	almost(t, minWeldSize(8, 10), 3, 0)
	almost(t, minWeldSize(16, 10), 5, 0)
	almost(t, minWeldSize(25, 10), 6, 0)
	almost(t, minWeldSize(40, 10), 8, 0)
	almost(t, maxWeldSize(25, 10), 8.5, 1e-9)
}

func TestCatalogRounding(t *testing.T) {
	almost(t, nextCatalogValue(PlateThicknesses, 13), 14, 0)
	almost(t, nextCatalogValue(PlateThicknesses, 14), 14, 0)
	almost(t, nextCatalogValue(PlateThicknesses, 1000), 100, 0)
	almost(t, roundUpTo(101, WidthModulus), 110, 0)
	almost(t, roundUpTo(101, DepthModulus), 125, 0)
	almost(t, roundUpTo(100, WidthModulus), 100, 0)
}

func TestEffectiveLengthTable(t *testing.T) {
	log := discardLogger()
	le := effectiveLength(TorsionFullyRestrained, WarpingBothRestrained, 10000, 1000, false, log)
	almost(t, le, 7000, 1e-9)
	le = effectiveLength(TorsionFullyRestrained, WarpingNotRestrained, 10000, 1000, true, log)
	almost(t, le, 12000, 1e-9)
	le = effectiveLength(TorsionPartiallyRestrained, "", 10000, 1000, false, log)
	almost(t, le, 12000, 1e-9)
}
