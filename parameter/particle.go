package parameter

// Particle shape
const (
	// ParticleSizeMin/Max bound the random radius assigned at creation
	ParticleSizeMin = 2.0
	ParticleSizeMax = 6.0

	// SpawnHeight is the Y coordinate above the viewport used by falling spawns
	SpawnHeight = -10.0
)

// Ambient emission, evaluated once per tick after rendering
const (
	AmbientSpawnChance = 0.15
	// AmbientSpeedX is the full horizontal spread, velocity is (rand-0.5)*AmbientSpeedX
	AmbientSpeedX  = 2.0
	AmbientMassMin = 0.5
	AmbientMassMax = 1.0

	ForceFieldSpawnChance = 0.01
	ForceFieldRadiusMin   = 100.0
	ForceFieldRadiusMax   = 200.0
	ForceFieldStrengthMin = 0.5
	ForceFieldStrengthMax = 1.0

	VortexSpawnChance = 0.005
	VortexRadiusMin   = 80.0
	VortexRadiusMax   = 200.0
	VortexStrengthMin = 0.3
	VortexStrengthMax = 0.7
)

// Collision effects
const (
	// EffectCountParticle is the burst size at a particle-particle contact
	EffectCountParticle = 8
	// EffectCountBoundary is the burst size at wall and ground bounces
	EffectCountBoundary = 4
	EffectOffset        = 5.0
	EffectSpeedMin      = 1.0
	EffectSpeedMax      = 4.0
	EffectMass          = 0.3

	// ChainChance is the probability of a chain reaction per contact
	ChainChance   = 0.3
	ChainCountMin = 2
	// ChainCountSpread is the number of extra sizes above ChainCountMin, count is min + rand*spread
	ChainCountSpread = 3
	ChainOffset      = 10.0
	ChainSpeedMin    = 1.0
	ChainSpeedMax    = 3.0
	ChainMass        = 0.5
)
