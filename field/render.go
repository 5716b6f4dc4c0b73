package field

import (
	"github.com/lixenwraith/particlefield/parameter/visual"
	"github.com/lixenwraith/particlefield/render"
	"github.com/lixenwraith/particlefield/vmath"
)

// Render draws the current state onto s without mutating the field
// Layers back to front: force fields, vortices, orbital bodies, field lines, particles
func (f *Field) Render(s render.Surface) {
	s.Clear()
	f.renderForceFields(s)
	f.renderVortices(s)
	f.renderBodies(s)
	f.renderFieldLines(s)
	f.renderParticles(s)
}

func (f *Field) renderForceFields(s render.Surface) {
	for _, ff := range f.fields.All() {
		rgb := visual.RgbAttract
		if ff.Polarity == Repel {
			rgb = visual.RgbRepel
		}
		alpha := ff.Life * visual.ForceFieldAlpha
		s.FillCircle(ff.X, ff.Y, ff.Radius, rgb.Alpha(alpha*visual.ForceFieldFillAlpha))
		s.StrokeCircle(ff.X, ff.Y, ff.Radius, visual.ForceFieldLineWidth, rgb.Alpha(alpha*visual.ForceFieldStrokeAlpha))
	}
}

func (f *Field) renderVortices(s render.Surface) {
	for _, v := range f.vortices.All() {
		c := visual.RgbVortex.Alpha(v.Life * visual.VortexAlpha * visual.VortexStrokeAlpha)
		for ring := 1; ring <= visual.VortexRings; ring++ {
			r := v.Radius * float64(ring) / visual.VortexRings
			s.StrokeCircle(v.X, v.Y, r, visual.VortexLineWidth, c)
		}
	}
}

func (f *Field) renderBodies(s render.Surface) {
	for i := range f.bodies {
		b := &f.bodies[i]
		c := visual.RgbOrbitalBody.Alpha(visual.OrbitalBodyAlpha)
		if b.Central {
			c = visual.RgbCentralBody.Alpha(visual.CentralBodyAlpha)
		}
		s.Glow(b.X, b.Y, b.Radius, c)
	}
}

// renderFieldLines connects charged pairs inside the line band, fading with distance
func (f *Field) renderFieldLines(s render.Surface) {
	for i, a := range f.particles.All() {
		if a.Charge == 0 {
			continue
		}
		for _, b := range f.particles.After(i) {
			if b.Charge == 0 {
				continue
			}
			_, _, dist := vmath.Distance(a.X, a.Y, b.X, b.Y)
			if dist <= visual.FieldLineMinDist || dist >= visual.FieldLineMaxDist {
				continue
			}
			opacity := (visual.FieldLineMaxDist - dist) / visual.FieldLineMaxDist * visual.FieldLineMaxOpacity
			s.Line(a.X, a.Y, b.X, b.Y, visual.FieldLineWidth, visual.RgbFieldLine.Alpha(opacity))
		}
	}
}

func (f *Field) renderParticles(s render.Surface) {
	for _, p := range f.particles.All() {
		s.Glow(p.X, p.Y, p.Size, p.Color.Alpha(p.Life))
		switch {
		case p.Charge > 0:
			s.StrokeCircle(p.X, p.Y, p.Size+visual.ChargeRingOffset, visual.ChargeRingWidth, visual.RgbChargePositive.Alpha(p.Life))
		case p.Charge < 0:
			s.StrokeCircle(p.X, p.Y, p.Size+visual.ChargeRingOffset, visual.ChargeRingWidth, visual.RgbChargeNegative.Alpha(p.Life))
		}
	}
}
