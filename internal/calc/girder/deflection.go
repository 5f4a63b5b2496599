package girder

import "math"

// Deflection coefficients expressing midspan deflection as k·M·L²/(E·Iz) for
// the maximum moment M of each load/support case.
var deflectionCoeff = map[string]float64{
	CaseUDLPinPin:   5.0 / 48.0,
	CaseUDLFixFix:   1.0 / 32.0,
	CasePointPinPin: 1.0 / 12.0,
	CasePointFixFix: 1.0 / 24.0,
}

func (e *Engine) deflection(iz float64) float64 {
	if e.Mat.E <= 0 || iz <= 0 {
		return math.Inf(1)
	}
	k, ok := deflectionCoeff[e.LoadCase]
	if !ok {
		e.Log.Warn("unknown deflection case, defaulting to UDL pin-pin", "case", e.LoadCase)
		k = deflectionCoeff[CaseUDLPinPin]
	}
	return k * e.Load.Moment * e.Length * e.Length / (e.Mat.E * iz)
}

// CheckDeflection compares the computed deflection against span/limit. A
// non-positive limit means the serviceability criterion does not apply and
// the check passes with a zero ratio.
func (e *Engine) CheckDeflection(st *EvaluationState) bool {
	iz := MomentOfInertiaZ(*e.Geom)
	if iz <= 0 {
		st.DeflectionRatio = FailRatio
		return false
	}
	if e.DeflectionLimit <= 0 {
		st.DeflectionRatio = 0
		return true
	}
	delta := e.deflection(iz)
	allowable := e.Length / e.DeflectionLimit
	if allowable <= 0 {
		st.DeflectionRatio = FailRatio
		return false
	}
	st.DeflectionRatio = delta / allowable
	return delta <= allowable
}
