package girder

import "math"

// Built-up unsymmetric I-section properties. Dimensions in mm, with the top
// flange in compression. Each function returns 0 for non-physical geometry
// so callers can convert it into a failing ratio.

type rect struct {
	w    float64 // width
	yTop float64 // distance of upper edge from the section top
	yBot float64 // distance of lower edge from the section top
}

func (g Geometry) rects() [3]rect {
	return [3]rect{
		{w: g.TopFlangeW, yTop: 0, yBot: g.TopFlangeThk},
		{w: g.WebThk, yTop: g.TopFlangeThk, yBot: g.D - g.BotFlangeThk},
		{w: g.BotFlangeW, yTop: g.D - g.BotFlangeThk, yBot: g.D},
	}
}

func SectionArea(g Geometry) float64 {
	if g.EffDepth() <= 0 {
		return 0
	}
	return g.TopFlangeW*g.TopFlangeThk + g.BotFlangeW*g.BotFlangeThk + g.WebThk*g.EffDepth()
}

// CentroidFromTop locates the elastic neutral axis from the compression flange.
func CentroidFromTop(g Geometry) float64 {
	a := SectionArea(g)
	if a <= 0 {
		return 0
	}
	var s float64
	for _, r := range g.rects() {
		h := r.yBot - r.yTop
		s += r.w * h * (r.yTop + h/2)
	}
	return s / a
}

// MomentOfInertiaZ is the second moment of area about the major (bending) axis.
func MomentOfInertiaZ(g Geometry) float64 {
	if g.EffDepth() <= 0 {
		return 0
	}
	yna := CentroidFromTop(g)
	var iz float64
	for _, r := range g.rects() {
		h := r.yBot - r.yTop
		yc := r.yTop + h/2
		iz += r.w*h*h*h/12 + r.w*h*(yc-yna)*(yc-yna)
	}
	return iz
}

func MomentOfInertiaY(g Geometry) float64 {
	if g.EffDepth() <= 0 {
		return 0
	}
	return g.TopFlangeThk*math.Pow(g.TopFlangeW, 3)/12 +
		g.BotFlangeThk*math.Pow(g.BotFlangeW, 3)/12 +
		g.EffDepth()*math.Pow(g.WebThk, 3)/12
}

// ElasticModulusZ is Iz over the distance to the extreme fibre.
func ElasticModulusZ(g Geometry) float64 {
	iz := MomentOfInertiaZ(g)
	if iz <= 0 {
		return 0
	}
	yna := CentroidFromTop(g)
	ymax := math.Max(yna, g.D-yna)
	if ymax <= 0 {
		return 0
	}
	return iz / ymax
}

// PlasticModulusZ sums first moments about the equal-area axis.
func PlasticModulusZ(g Geometry) float64 {
	a := SectionArea(g)
	if a <= 0 {
		return 0
	}
	// Locate the equal-area axis from the top.
	half := a / 2
	y0 := 0.0
	acc := 0.0
	for _, r := range g.rects() {
		h := r.yBot - r.yTop
		ar := r.w * h
		if acc+ar >= half {
			y0 = r.yTop + (half-acc)/r.w
			break
		}
		acc += ar
	}
	var zp float64
	for _, r := range g.rects() {
		// Portion above the axis.
		if r.yTop < y0 {
			hb := math.Min(r.yBot, y0)
			h := hb - r.yTop
			zp += r.w * h * (y0 - (r.yTop + h/2))
		}
		// Portion below the axis.
		if r.yBot > y0 {
			ht := math.Max(r.yTop, y0)
			h := r.yBot - ht
			zp += r.w * h * ((ht + h/2) - y0)
		}
	}
	return zp
}

// TorsionConstant is the St. Venant constant for an open thin-walled section.
func TorsionConstant(g Geometry) float64 {
	if g.EffDepth() <= 0 {
		return 0
	}
	return (g.TopFlangeW*math.Pow(g.TopFlangeThk, 3) +
		g.BotFlangeW*math.Pow(g.BotFlangeThk, 3) +
		g.EffDepth()*math.Pow(g.WebThk, 3)) / 3
}

// WarpingConstant for a monosymmetric I-section: the two flange lateral
// inertias acting in series over the flange centroid distance.
func WarpingConstant(g Geometry) float64 {
	h := g.D - g.TopFlangeThk/2 - g.BotFlangeThk/2
	if h <= 0 {
		return 0
	}
	ift := g.TopFlangeThk * math.Pow(g.TopFlangeW, 3) / 12
	ifb := g.BotFlangeThk * math.Pow(g.BotFlangeW, 3) / 12
	if ift+ifb == 0 {
		return 0
	}
	return ift * ifb * h * h / (ift + ifb)
}

// MonosymmetryOffset is the yj term entering the unsymmetric Mcr closed form.
// Zero for doubly symmetric sections.
func MonosymmetryOffset(g Geometry) float64 {
	if g.Symmetric() {
		return 0
	}
	h := g.EffDepth()
	if h <= 0 {
		return 0
	}
	ift := g.TopFlangeW * math.Pow(g.TopFlangeThk, 3) / 12
	ifc := g.BotFlangeW * math.Pow(g.BotFlangeThk, 3) / 12
	if ift+ifc == 0 {
		return 0
	}
	betaF := ifc / (ifc + ift)
	alpha := 1.0
	if betaF > 0.5 {
		alpha = 0.8
	}
	return alpha * (2*betaF - 1) * h / 2
}
