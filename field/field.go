// Package field implements the particle simulation: entity ownership, the per-frame step,
// emission, and read-only rendering onto a render.Surface
package field

import (
	"iter"
	"time"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/physics"
	"github.com/lixenwraith/particlefield/render"
	"github.com/lixenwraith/particlefield/vmath"
)

// Rand is the random source consumed by emission and particle creation
// Float64 returns values in [0, 1)
type Rand interface {
	Float64() float64
}

// Stats is a snapshot of field counters
type Stats struct {
	Steps         uint64 `json:"steps"`
	Particles     int    `json:"particles"`
	ForceFields   int    `json:"force_fields"`
	Vortices      int    `json:"vortices"`
	OrbitalBodies int    `json:"orbital_bodies"`
	Collisions    uint64 `json:"collisions"`
	Dropped       uint64 `json:"dropped"`
	Weather       string `json:"weather"`
	Running       bool   `json:"running"`
}

// Field owns all simulated entities
// It is not safe for concurrent use, hosts drive it from a single goroutine
type Field struct {
	params  Params
	weather WeatherMode
	rng     Rand

	particles Pool[Particle]
	fields    Pool[ForceField]
	vortices  Pool[Vortex]
	bodies    []OrbitalBody

	// Spawns requested while stepping, appended after the particle loop
	pending []Particle
	events  []Event

	running bool
	started bool

	steps      uint64
	collisions uint64
	dropped    uint64
}

// New creates an empty field with default params
// A nil rng falls back to a time-seeded FastRand
func New(rng Rand) *Field {
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	return &Field{
		params:  DefaultParams(),
		rng:     rng,
		pending: make([]Particle, 0, 32),
		events:  make([]Event, 0, 32),
	}
}

// Params returns the current tuning
func (f *Field) Params() Params {
	return f.params
}

// SetParams replaces the tuning as a whole
func (f *Field) SetParams(p Params) {
	f.params = p
}

// Weather returns the active weather mode
func (f *Field) Weather() WeatherMode {
	return f.weather
}

// SetWeatherMode switches the gravity/wind preset and the step emission
// Unknown modes behave as none; nothing is spawned here
func (f *Field) SetWeatherMode(mode WeatherMode) {
	if mode > WeatherSnow {
		mode = WeatherNone
	}
	f.weather = mode
	f.params = f.params.WithWeather(mode)
}

// Start sets the running flag, the first start pins a central body at the pointer
func (f *Field) Start(in Input) {
	if f.running {
		return
	}
	f.running = true
	if !f.started {
		f.started = true
		f.AddOrbitalBody(in.PointerX, in.PointerY, parameter.CentralBodyMass, true)
	}
}

// Stop clears the running flag, state is kept for a later Start
func (f *Field) Stop() {
	f.running = false
}

// Running reports whether Tick advances the simulation
func (f *Field) Running() bool {
	return f.running
}

// Tick runs one frame: step, render, then ambient emission
// It is a no-op while stopped
func (f *Field) Tick(in Input, s render.Surface) {
	if !f.running {
		return
	}
	f.Step(in)
	if s != nil {
		f.Render(s)
	}
	f.Emit(in)
}

// AddParticle creates a particle, returning false when the population cap is reached
func (f *Field) AddParticle(x, y, vx, vy, mass float64, kind Kind) bool {
	if !f.queue(x, y, vx, vy, mass, kind) {
		return false
	}
	f.flush()
	return true
}

// AddForceField creates a force field with full life
func (f *Field) AddForceField(x, y, radius, strength float64, polarity Polarity) {
	f.fields.Add(ForceField{X: x, Y: y, Radius: radius, Strength: strength, Polarity: polarity, Life: 1})
}

// AddVortex creates a vortex with full life
func (f *Field) AddVortex(x, y, radius, strength float64) {
	f.vortices.Add(Vortex{X: x, Y: y, Radius: radius, Strength: strength, Life: 1})
}

// AddOrbitalBody creates a body at rest, a new central body demotes the previous one
func (f *Field) AddOrbitalBody(x, y, mass float64, central bool) {
	if central {
		for i := range f.bodies {
			f.bodies[i].Central = false
		}
	}
	f.bodies = append(f.bodies, OrbitalBody{
		Kinetic: physics.Kinetic{X: x, Y: y, Mass: mass},
		Radius:  mass * parameter.OrbitalRadiusPerMass,
		Central: central,
	})
}

// Particles yields live particles in creation order
func (f *Field) Particles() iter.Seq2[int, *Particle] {
	return f.particles.All()
}

// ForceFields yields live force fields
func (f *Field) ForceFields() iter.Seq2[int, *ForceField] {
	return f.fields.All()
}

// Vortices yields live vortices
func (f *Field) Vortices() iter.Seq2[int, *Vortex] {
	return f.vortices.All()
}

// OrbitalBodies yields all orbital bodies
func (f *Field) OrbitalBodies() iter.Seq2[int, *OrbitalBody] {
	return func(yield func(int, *OrbitalBody) bool) {
		for i := range f.bodies {
			if !yield(i, &f.bodies[i]) {
				return
			}
		}
	}
}

// ParticleCount returns the live particle population
func (f *Field) ParticleCount() int {
	return f.particles.Len()
}

// Events returns the notifications of the last step
// The slice is reused by the next step
func (f *Field) Events() []Event {
	return f.events
}

// Stats returns a snapshot of field counters
func (f *Field) Stats() Stats {
	return Stats{
		Steps:         f.steps,
		Particles:     f.particles.Len(),
		ForceFields:   f.fields.Len(),
		Vortices:      f.vortices.Len(),
		OrbitalBodies: len(f.bodies),
		Collisions:    f.collisions,
		Dropped:       f.dropped,
		Weather:       f.weather.String(),
		Running:       f.running,
	}
}

// Reset removes every entity, clears counters and stops the field
// Params and weather are kept; the next Start pins a fresh central body
func (f *Field) Reset() {
	f.particles.Reset()
	f.fields.Reset()
	f.vortices.Reset()
	f.bodies = f.bodies[:0]
	f.pending = f.pending[:0]
	f.events = f.events[:0]
	f.running, f.started = false, false
	f.steps, f.collisions, f.dropped = 0, 0, 0
}
