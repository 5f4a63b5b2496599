package lapjoint

import "testing"

func TestModestLoadUsesSmallBolts(t *testing.T) {
	res, err := Calculate(Input{
		LoadKN: 50, Plate1ThkMM: 10, Plate2ThkMM: 12, WidthMM: 200,
		FyMPa: 250, FuMPa: 410,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK {
		t.Fatalf("modest splice should work, got %+v", res)
	}
	if res.BoltClass != "4.6" {
		t.Errorf("weakest class should suffice, got %s", res.BoltClass)
	}
	if res.Bolts < 2 {
		t.Errorf("a splice needs at least two bolts, got %d", res.Bolts)
	}
	if res.UtilizationRatio > 1 {
		t.Errorf("utilization %v on a passing joint", res.UtilizationRatio)
	}
}

func TestHeavierLoadNeedsMoreBolts(t *testing.T) {
	small, err := Calculate(Input{LoadKN: 50, Plate1ThkMM: 10, Plate2ThkMM: 12, WidthMM: 200})
	if err != nil {
		t.Fatal(err)
	}
	big, err := Calculate(Input{LoadKN: 250, Plate1ThkMM: 10, Plate2ThkMM: 12, WidthMM: 200})
	if err != nil {
		t.Fatal(err)
	}
	smallCap := float64(small.Bolts) * small.BoltCapacityKN
	bigCap := float64(big.Bolts) * big.BoltCapacityKN
	if bigCap <= smallCap {
		t.Fatalf("group capacity should grow with load: %v <= %v", bigCap, smallCap)
	}
}

func TestPinnedDiameterRespected(t *testing.T) {
	res, err := Calculate(Input{
		LoadKN: 100, Plate1ThkMM: 10, Plate2ThkMM: 12, WidthMM: 200,
		BoltDiaMM: 20,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.BoltDiaMM != 20 {
		t.Fatalf("pinned diameter ignored: got %v", res.BoltDiaMM)
	}
}

func TestGripLimitSkipsSmallBolts(t *testing.T) {
	// 60+60 grip rules out everything below d = 15.
	res, err := Calculate(Input{
		LoadKN: 100, Plate1ThkMM: 60, Plate2ThkMM: 60, WidthMM: 300,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.BoltDiaMM < 15 {
		t.Fatalf("grip limit violated with d=%v", res.BoltDiaMM)
	}
}

func TestUnknownBoltClassRejected(t *testing.T) {
	_, err := Calculate(Input{
		LoadKN: 50, Plate1ThkMM: 10, Plate2ThkMM: 12, WidthMM: 200,
		BoltClass: "9.9",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown class")
	}
}

func TestInvalidGeometryRejected(t *testing.T) {
	if _, err := Calculate(Input{LoadKN: 50}); err == nil {
		t.Fatal("expected an error for missing plate data")
	}
}
