package field

import (
	"github.com/lixenwraith/particlefield/physics"
	"github.com/lixenwraith/particlefield/render"
)

// Kind tags a particle with its origin and charge class
type Kind uint8

const (
	KindFloating Kind = iota
	KindPositive
	KindNegative
	KindNeutral
	KindRain
	KindSnow
	KindEffect
	KindChain
)

var kindNames = [...]string{"floating", "positive", "negative", "neutral", "rain", "snow", "effect", "chain"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Charge returns the magnetic charge carried by particles of this kind
func (k Kind) Charge() float64 {
	switch k {
	case KindPositive:
		return 1
	case KindNegative:
		return -1
	default:
		return 0
	}
}

// polarityKinds is the draw set for random charge assignment
var polarityKinds = [...]Kind{KindPositive, KindNegative, KindNeutral}

// Particle is a simulated point mass
type Particle struct {
	physics.Kinetic
	Charge float64
	Size   float64
	Life   float64
	Decay  float64
	Color  render.RGB
	Kind   Kind
}

// Polarity is the direction of a force field
type Polarity uint8

const (
	Attract Polarity = iota
	Repel
)

func (p Polarity) String() string {
	if p == Repel {
		return "repel"
	}
	return "attract"
}

// ForceField is a transient radial attractor or repulsor
type ForceField struct {
	X, Y     float64
	Radius   float64
	Strength float64
	Polarity Polarity
	Life     float64
}

// Vortex is a transient rotational region
type Vortex struct {
	X, Y     float64
	Radius   float64
	Strength float64
	Life     float64
}

// OrbitalBody attracts particles within orbital range, particles do not pull back
type OrbitalBody struct {
	physics.Kinetic
	Radius  float64
	Central bool
}

// Input is the host-supplied frame state
type Input struct {
	PointerX, PointerY float64
	Width, Height      float64
}

// EventKind classifies a step notification
type EventKind uint8

const (
	EventCollision EventKind = iota
	EventWall
	EventGround
	EventChain
)

var eventNames = [...]string{"collision", "wall", "ground", "chain"}

func (e EventKind) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Event reports a contact or burst that happened during the last step
// Strength is the closing speed for collisions and the impact speed for bounces
type Event struct {
	Kind     EventKind
	X, Y     float64
	Strength float64
}
