package recommend

import (
	"fmt"
	"math"
)

type WeldRecommendInput struct {
	ShearKN      float64 `json:"shear_kn"`
	WeldLengthMM float64 `json:"weld_length_mm"`
	FuMPa        float64 `json:"fu_mpa"`
	GammaMw      float64 `json:"gamma_mw"`
}

type WeldRecommendResult struct {
	RequiredSizeMM float64 `json:"required_size_mm"`
	Notes          string  `json:"notes"`
}

// WeldSize recommends a fillet leg for a shear-loaded weld line from the
// parent metal ultimate strength, cl 10.5.7.1.1.
func WeldSize(in WeldRecommendInput) (WeldRecommendResult, error) {
	if in.ShearKN <= 0 || in.WeldLengthMM <= 0 {
		return WeldRecommendResult{}, fmt.Errorf("invalid input")
	}
	if in.FuMPa <= 0 {
		in.FuMPa = 410
	}
	if in.GammaMw <= 0 {
		in.GammaMw = 1.25
	}
	fwd := in.FuMPa / (math.Sqrt(3) * in.GammaMw)
	// V = 0.7*s*L*fwd
	s := (in.ShearKN * 1000.0) / (0.7 * in.WeldLengthMM * fwd)
	if s < 3 {
		s = 3
	}
	return WeldRecommendResult{
		RequiredSizeMM: s,
		Notes:          "Recommended fillet weld size for shear.",
	}, nil
}
