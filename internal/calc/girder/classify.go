package girder

// Classify assigns the ductility class of the welded cross-section: each
// flange outstand and the web are classified independently and combined by
// the weakest-link rule. Slender anywhere makes the whole section Slender;
// otherwise the least ductile of the three governs.
func (e *Engine) Classify(st *EvaluationState) SectionClass {
	g := e.Geom
	fy := e.Mat.Fy

	top := classifyOutstand(g.TopFlangeW/2, g.TopFlangeThk, fy)
	bot := classifyOutstand(g.BotFlangeW/2, g.BotFlangeThk, fy)
	web := classifyWeb(g.EffDepth(), g.WebThk, fy)

	class := top
	if web > class {
		class = web
	}
	if bot > class {
		class = bot
	}
	if top == Slender || bot == Slender || web == Slender {
		class = Slender
	}
	st.Class = class

	// Required plastic modulus for the applied moment; an efficiency figure,
	// not a hard gate.
	if fy > 0 {
		st.ZpReq = e.Load.Moment * GammaM0 / fy
	}

	st.Zp = PlasticModulusZ(*g)
	st.Ze = ElasticModulusZ(*g)
	st.BetaB = 1.0
	if class != Plastic && class != Compact && st.Zp > 0 {
		st.BetaB = st.Ze / st.Zp
	}

	// The restraint table only matters for lateral-torsional buckling; a
	// supported beam keeps the plain span and skips the enum lookup.
	st.EffectiveLength = e.Length
	if e.Support == LaterallyUnsupported {
		st.EffectiveLength = e.effLength()
	}
	return class
}

func (e *Engine) effLength() float64 {
	if e.LengthFactor > 0 {
		return e.LengthFactor * e.Length
	}
	return effectiveLength(e.Torsion, e.Warping, e.Length, e.Geom.D, e.Destabilizing, e.Log)
}
