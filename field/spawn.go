package field

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/parameter/visual"
	"github.com/lixenwraith/particlefield/physics"
	"github.com/lixenwraith/particlefield/render"
	"github.com/lixenwraith/particlefield/vmath"
)

// queue stages a new particle, counted against the cap together with live particles
func (f *Field) queue(x, y, vx, vy, mass float64, kind Kind) bool {
	if f.particles.Len()+len(f.pending) >= f.params.MaxParticles {
		f.dropped++
		return false
	}
	f.pending = append(f.pending, f.newParticle(x, y, vx, vy, mass, kind))
	return true
}

// flush appends staged particles to the pool
func (f *Field) flush() {
	for i := range f.pending {
		f.particles.Add(f.pending[i])
	}
	clear(f.pending)
	f.pending = f.pending[:0]
}

// newParticle resolves kind, charge and color
// Floating particles draw a random polarity kind, RandomCharge applies that draw to every kind
func (f *Field) newParticle(x, y, vx, vy, mass float64, kind Kind) Particle {
	if kind == KindFloating || f.params.RandomCharge {
		kind = polarityKinds[f.pick(len(polarityKinds))]
	}
	size := f.between(parameter.ParticleSizeMin, parameter.ParticleSizeMax)
	return Particle{
		Kinetic: physics.Kinetic{X: x, Y: y, VX: vx, VY: vy, Mass: mass},
		Charge:  kind.Charge(),
		Size:    size,
		Life:    1,
		Decay:   parameter.ParticleDecay,
		Color:   f.kindColor(kind),
		Kind:    kind,
	}
}

// kindColor returns the HSL-derived color of a particle kind
func (f *Field) kindColor(kind Kind) render.RGB {
	var c colorful.Color
	switch kind {
	case KindPositive:
		c = colorful.Hsl(f.hue(visual.HuePositiveBase, visual.HuePositiveSpread),
			visual.SaturationCharged, visual.LightnessParticle)
	case KindNegative:
		c = colorful.Hsl(f.hue(visual.HueNegativeBase, visual.HueNegativeSpread),
			visual.SaturationCharged, visual.LightnessParticle)
	case KindNeutral:
		c = colorful.Hsl(f.hue(visual.HueNeutralBase, visual.HueNeutralSpread),
			visual.SaturationNeutral, visual.LightnessParticle)
	case KindRain:
		c = colorful.Hsl(visual.HueRain, visual.SaturationCharged, visual.LightnessRain)
	case KindSnow:
		c = colorful.Hsl(0, 0, visual.LightnessSnow)
	default:
		c = colorful.Hsl(f.hue(visual.HueDefaultBase, visual.HueDefaultSpread),
			visual.SaturationNeutral, visual.LightnessParticle)
	}
	r, g, b := c.Clamped().RGB255()
	return render.RGB{R: r, G: g, B: b}
}

// hue returns base plus a uniform draw over spread, in degrees
func (f *Field) hue(base, spread float64) float64 {
	return base + f.rng.Float64()*spread
}

// chance performs one Bernoulli draw
func (f *Field) chance(p float64) bool {
	return f.rng.Float64() < p
}

// between returns a uniform draw in [lo, hi)
func (f *Field) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

// pick returns a uniform index in [0, n)
func (f *Field) pick(n int) int {
	i := int(f.rng.Float64() * float64(n))
	return min(i, n-1)
}

// effectBurst stages count particles evenly spread around (x, y)
func (f *Field) effectBurst(x, y float64, count int) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := f.between(parameter.EffectSpeedMin, parameter.EffectSpeedMax)
		ox, oy := vmath.FromAngle(angle, parameter.EffectOffset)
		vx, vy := vmath.FromAngle(angle, speed)
		f.queue(x+ox, y+oy, vx, vy, parameter.EffectMass, KindEffect)
	}
}

// chainBurst stages a small burst at random angles
func (f *Field) chainBurst(x, y float64) {
	count := parameter.ChainCountMin + f.pick(parameter.ChainCountSpread)
	for i := 0; i < count; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		speed := f.between(parameter.ChainSpeedMin, parameter.ChainSpeedMax)
		ox, oy := vmath.FromAngle(angle, parameter.ChainOffset)
		vx, vy := vmath.FromAngle(angle, speed)
		f.queue(x+ox, y+oy, vx, vy, parameter.ChainMass, KindChain)
	}
}

// emitWeather runs the per-step weather draw
func (f *Field) emitWeather(in Input) {
	switch f.weather {
	case WeatherRain:
		if f.chance(parameter.RainSpawnChance) {
			x := f.rng.Float64() * in.Width
			vx := (f.rng.Float64() - 0.5) * parameter.RainSpeedX
			vy := f.between(parameter.RainSpeedYMin, parameter.RainSpeedYMax)
			f.queue(x, parameter.SpawnHeight, vx, vy, parameter.RainMass, KindRain)
		}
	case WeatherSnow:
		if f.chance(parameter.SnowSpawnChance) {
			x := f.rng.Float64() * in.Width
			vx := (f.rng.Float64() - 0.5) * parameter.SnowSpeedX
			vy := f.between(parameter.SnowSpeedYMin, parameter.SnowSpeedYMax)
			f.queue(x, parameter.SpawnHeight, vx, vy, parameter.SnowMass, KindSnow)
		}
	}
}

// Emit runs the ambient draws: a floating particle, a force field and a vortex, each independently
// Tick calls it after rendering; hosts that split step and render call it themselves
func (f *Field) Emit(in Input) {
	if f.chance(parameter.AmbientSpawnChance) {
		x := f.rng.Float64() * in.Width
		vx := (f.rng.Float64() - 0.5) * parameter.AmbientSpeedX
		mass := f.between(parameter.AmbientMassMin, parameter.AmbientMassMax)
		f.queue(x, parameter.SpawnHeight, vx, 0, mass, KindFloating)
	}

	if f.chance(parameter.ForceFieldSpawnChance) {
		x := f.rng.Float64() * in.Width
		y := f.rng.Float64() * in.Height
		radius := f.between(parameter.ForceFieldRadiusMin, parameter.ForceFieldRadiusMax)
		strength := f.between(parameter.ForceFieldStrengthMin, parameter.ForceFieldStrengthMax)
		polarity := Attract
		if f.rng.Float64() >= 0.5 {
			polarity = Repel
		}
		f.AddForceField(x, y, radius, strength, polarity)
	}

	if f.chance(parameter.VortexSpawnChance) {
		x := f.rng.Float64() * in.Width
		y := f.rng.Float64() * in.Height
		radius := f.between(parameter.VortexRadiusMin, parameter.VortexRadiusMax)
		strength := f.between(parameter.VortexStrengthMin, parameter.VortexStrengthMax)
		f.AddVortex(x, y, radius, strength)
	}

	f.flush()
}
