package girder

import "math"

// Weld sizing for the web-to-flange junctions and the end stiffener, cl 10.5.

// shearFlow returns the longitudinal shear flow (N/mm) at the top and bottom
// web-to-flange junctions of the built-up section.
func shearFlow(g Geometry, shear float64) (qTop, qBot float64) {
	hw := g.EffDepth()
	if hw <= 0 {
		return 0, 0
	}
	at := g.TopFlangeW * g.TopFlangeThk
	ab := g.BotFlangeW * g.BotFlangeThk
	iz := MomentOfInertiaZ(g)
	if iz <= 0 {
		return 0, 0
	}
	yna := CentroidFromTop(g)
	yTop := g.TopFlangeThk / 2
	yBot := g.D - g.BotFlangeThk/2

	qTopFlow := at * math.Abs(yna-yTop)
	qBotFlow := ab * math.Abs(yBot-yna)
	return shear * qTopFlow / iz, shear * qBotFlow / iz
}

// weldLegFromFlow converts a shear flow into the fillet leg whose throat
// carries it at the design stress.
func weldLegFromFlow(q, fu float64) float64 {
	fwd := weldDesignStress(fu)
	if fwd <= 0 {
		return 0
	}
	throat := q / fwd
	return throat * math.Sqrt2
}

// designWebFlangeWelds sizes the top and bottom junction welds, rounded up to
// whole millimetres between the code minimum and maximum.
func (e *Engine) designWebFlangeWelds(st *EvaluationState) {
	g := e.Geom
	qTop, qBot := shearFlow(*g, e.Load.Shear)

	top := math.Max(weldLegFromFlow(qTop, e.Mat.Fu), minWeldSize(g.TopFlangeThk, g.WebThk))
	bot := math.Max(weldLegFromFlow(qBot, e.Mat.Fu), minWeldSize(g.BotFlangeThk, g.WebThk))

	st.WeldTopLeg = math.Min(roundUpTo(top, 1), maxWeldSize(g.TopFlangeThk, g.WebThk))
	st.WeldBotLeg = math.Min(roundUpTo(bot, 1), maxWeldSize(g.BotFlangeThk, g.WebThk))
}

// endStiffenerWeld sizes the stiffener-to-web weld from the axial anchorage
// term tw²/(5·bs) plus the shear in excess of the unstiffened web capacity,
// shared over the two weld lines.
func (e *Engine) endStiffenerWeld(st *EvaluationState) {
	g := e.Geom
	if st.EndStiffThk <= 0 || st.EndStiffWidth <= 0 {
		st.WeldStiffLeg = 0
		return
	}
	lw := g.EffDepth()
	if lw <= 0 {
		st.WeldStiffLeg = 0
		return
	}
	q1 := g.WebThk * g.WebThk / (5 * st.EndStiffWidth)
	q2 := math.Max(e.Load.Shear-st.Vd, 0) / lw
	qEach := (q1 + q2) / 2

	leg := math.Max(weldLegFromFlow(qEach, e.Mat.Fu), minWeldSize(st.EndStiffThk, g.WebThk))
	st.WeldStiffLeg = math.Min(roundUpTo(leg, 1), maxWeldSize(st.EndStiffThk, g.WebThk))
}
