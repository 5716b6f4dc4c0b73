package field

import (
	"math"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/physics"
	"github.com/lixenwraith/particlefield/vmath"
)

// Step advances the simulation by one frame
// Order: field/vortex decay, orbital bodies, weather draw, then every live particle in reverse slot order
// Particles spawned here join the pool after the particle loop
func (f *Field) Step(in Input) {
	f.events = f.events[:0]

	f.decayFields()
	f.advanceBodies(in)
	f.emitWeather(in)

	windX, windY := vmath.FromAngle(f.params.WindDirection, f.params.WindForce)

	for i, p := range f.particles.Backward() {
		k := &p.Kinetic

		physics.ApplyImpulse(k, 0, f.params.Gravity*k.Mass)
		physics.ApplyImpulse(k, windX, windY)

		f.applyPointer(k, in)
		f.applyForceFields(k)
		f.applyVortices(k)
		f.applyOrbital(k)
		f.applyMagnetic(i, p)
		f.collide(i, p)

		physics.Integrate(k)
		physics.Damp(k, f.params.Friction)

		f.bounce(k, in)

		p.Life *= p.Decay
		if p.Life < parameter.PruneLife {
			f.particles.Remove(i)
		}
	}

	f.particles.Compact()
	f.flush()
	f.steps++
}

// decayFields ages force fields and vortices and prunes the faded ones
func (f *Field) decayFields() {
	for i, ff := range f.fields.All() {
		ff.Life *= parameter.ForceFieldDecay
		if ff.Life < parameter.PruneLife {
			f.fields.Remove(i)
		}
	}
	f.fields.Compact()

	for i, v := range f.vortices.All() {
		v.Life *= parameter.VortexDecay
		if v.Life < parameter.PruneLife {
			f.vortices.Remove(i)
		}
	}
	f.vortices.Compact()
}

// advanceBodies moves free bodies by their velocity and pins the central body to the pointer
func (f *Field) advanceBodies(in Input) {
	for i := range f.bodies {
		b := &f.bodies[i]
		physics.Integrate(&b.Kinetic)
		if b.Central {
			b.X, b.Y = in.PointerX, in.PointerY
		}
	}
}

// applyPointer pulls toward the pointer with linear falloff, never pushes
func (f *Field) applyPointer(k *physics.Kinetic, in Input) {
	dx, dy, dist := vmath.Distance(k.X, k.Y, in.PointerX, in.PointerY)
	if dist <= 0 || dist >= f.params.PointerRadius {
		return
	}
	force := physics.LinearFalloff(f.params.PointerRadius, dist) * f.params.PointerForce
	ix, iy := physics.RadialImpulse(dx, dy, dist, force)
	physics.ApplyImpulse(k, ix, iy)
}

func (f *Field) applyForceFields(k *physics.Kinetic) {
	for _, ff := range f.fields.All() {
		dx, dy, dist := vmath.Distance(k.X, k.Y, ff.X, ff.Y)
		if dist <= 0 || dist >= ff.Radius {
			continue
		}
		force := physics.LinearFalloff(ff.Radius, dist) * ff.Strength * ff.Life
		if ff.Polarity == Repel {
			force = -force
		}
		ix, iy := physics.RadialImpulse(dx, dy, dist, force)
		physics.ApplyImpulse(k, ix, iy)
	}
}

func (f *Field) applyVortices(k *physics.Kinetic) {
	for _, v := range f.vortices.All() {
		dx, dy, dist := vmath.Distance(k.X, k.Y, v.X, v.Y)
		if dist <= 0 || dist >= v.Radius {
			continue
		}
		force := physics.LinearFalloff(v.Radius, dist) * v.Strength * v.Life
		ix, iy := physics.TangentialImpulse(dx, dy, dist, force)
		physics.ApplyImpulse(k, ix, iy)
	}
}

func (f *Field) applyOrbital(k *physics.Kinetic) {
	for i := range f.bodies {
		b := &f.bodies[i]
		dx, dy, dist := vmath.Distance(k.X, k.Y, b.X, b.Y)
		ix, iy := physics.OrbitalAttraction(dx, dy, dist, f.params.GravitationalConstant, b.Mass, f.params.OrbitalRange)
		physics.ApplyImpulse(k, ix, iy)
	}
}

// applyMagnetic sums pair forces from every other live particle in range
// Like charges repel, opposite charges attract, neutral particles are skipped
func (f *Field) applyMagnetic(i int, p *Particle) {
	if p.Charge == 0 {
		return
	}
	for j, other := range f.particles.All() {
		if j == i || other.Charge == 0 {
			continue
		}
		dx, dy, dist := vmath.Distance(p.X, p.Y, other.X, other.Y)
		if dist <= 0 || dist >= f.params.MagneticRange {
			continue
		}
		force := physics.MagneticForce(f.params.MagneticForce, p.Charge, other.Charge, dist)
		if math.Abs(force) < f.params.MagneticThreshold {
			continue
		}
		// Positive force is repulsion, push away from the partner
		ix, iy := physics.RadialImpulse(dx, dy, dist, -force)
		physics.ApplyImpulse(&p.Kinetic, ix, iy)
	}
}

// collide resolves contacts against live particles with a higher slot index
func (f *Field) collide(i int, p *Particle) {
	for _, other := range f.particles.After(i) {
		_, _, dist := vmath.Distance(p.X, p.Y, other.X, other.Y)
		if dist >= f.params.CollisionRadius {
			continue
		}
		// Separating and coincident pairs keep their velocities but still burst
		res := physics.ResolveElastic(&p.Kinetic, &other.Kinetic, f.params.Restitution, f.params.CollisionRadius)
		f.collisions++

		mx := (p.X + other.X) / 2
		my := (p.Y + other.Y) / 2
		f.events = append(f.events, Event{Kind: EventCollision, X: mx, Y: my, Strength: math.Max(0, -res.Before)})
		f.effectBurst(mx, my, parameter.EffectCountParticle)

		if f.chance(parameter.ChainChance) {
			f.events = append(f.events, Event{Kind: EventChain, X: p.X, Y: p.Y})
			f.chainBurst(p.X, p.Y)
		}
	}
}

// bounce reflects off the side walls and the ground, each contact emits a small burst
func (f *Field) bounce(k *physics.Kinetic, in Input) {
	speedX := math.Abs(k.VX)
	if physics.ReflectBoundsX(k, 0, in.Width, f.params.Bounce) {
		f.events = append(f.events, Event{Kind: EventWall, X: k.X, Y: k.Y, Strength: speedX})
		f.effectBurst(k.X, k.Y, parameter.EffectCountBoundary)
	}
	speedY := math.Abs(k.VY)
	if physics.ReflectGround(k, in.Height, f.params.Bounce) {
		f.events = append(f.events, Event{Kind: EventGround, X: k.X, Y: k.Y, Strength: speedY})
		f.effectBurst(k.X, k.Y, parameter.EffectCountBoundary)
	}
}
