package parameter

// Simulation defaults in world units (canvas pixels) per step
// Hosts scale their native coordinates into this space so the tuning holds across surfaces
const (
	// Gravity is the downward velocity added per step, scaled by particle mass
	Gravity = 0.5
	// Friction is the multiplicative velocity retention applied after integration
	Friction = 0.98
	// Bounce is restitution on viewport walls and ground
	Bounce = 0.7

	// WindForce is the per-step wind impulse magnitude
	WindForce = 0.1
	// WindDirection is the wind angle in radians, 0 blows toward +X
	WindDirection = 0.0

	// PointerRadius is the reach of pointer attraction
	PointerRadius = 150.0
	// PointerForce is the pull at the pointer itself, falling off linearly to 0 at PointerRadius
	PointerForce = 0.8

	// MagneticForce is the Coulomb-like coefficient for charged pairs
	MagneticForce = 0.3
	// MagneticRange is the exclusive distance cutoff for pair forces
	MagneticRange = 100.0
	// MagneticThreshold skips negligible pair forces
	MagneticThreshold = 0.001

	// GravitationalConstant scales orbital body attraction
	GravitationalConstant = 0.5
	// OrbitalRange is the exclusive distance cutoff for orbital attraction
	OrbitalRange = 200.0

	// CollisionRadius is the contact distance between particle centers
	CollisionRadius = 8.0
	// Restitution is the elastic coefficient for particle-particle contact
	Restitution = 0.8

	// MaxParticles caps the live population, spawn requests above it are dropped
	MaxParticles = 200
)

// Entity lifecycle
const (
	// PruneLife is the life threshold below which particles, fields and vortices are removed
	PruneLife = 0.1

	// ParticleDecay is the per-step life retention of particles
	ParticleDecay = 0.99
	// ForceFieldDecay is the per-step life retention of force fields
	ForceFieldDecay = 0.995
	// VortexDecay is the per-step life retention of vortices
	VortexDecay = 0.998

	// OrbitalRadiusPerMass derives drawn body radius from mass
	OrbitalRadiusPerMass = 5.0
	// CentralBodyMass is the mass of the pointer-pinned body added on start
	CentralBodyMass = 10.0
)
