package visual

import "github.com/lixenwraith/particlefield/render"

// Field overlay colors
var (
	RgbAttract        = render.RGB{R: 0, G: 255, B: 0}
	RgbRepel          = render.RGB{R: 255, G: 0, B: 0}
	RgbVortex         = render.RGB{R: 255, G: 165, B: 0}
	RgbCentralBody    = render.RGB{R: 255, G: 255, B: 0}
	RgbOrbitalBody    = render.RGB{R: 255, G: 255, B: 255}
	RgbFieldLine      = render.RGB{R: 0, G: 229, B: 255}
	RgbChargePositive = render.RGB{R: 255, G: 68, B: 68}
	RgbChargeNegative = render.RGB{R: 68, G: 68, B: 255}

	RgbBackground = render.RGB{R: 26, G: 27, B: 38} // Tokyo Night background

	RgbStatusBar  = render.RGB{R: 36, G: 40, B: 59}
	RgbStatusText = render.RGB{R: 192, G: 202, B: 245}
)

// Force fields: life * ForceFieldAlpha scales the per-style base alpha
const (
	ForceFieldAlpha       = 0.3
	ForceFieldStrokeAlpha = 0.5
	ForceFieldFillAlpha   = 0.1
	ForceFieldLineWidth   = 2.0
)

// Vortices: concentric rings at radius*(i+1)/VortexRings
const (
	VortexAlpha       = 0.4
	VortexStrokeAlpha = 0.6
	VortexLineWidth   = 3.0
	VortexRings       = 3
)

// Orbital bodies
const (
	CentralBodyAlpha = 0.8
	OrbitalBodyAlpha = 0.6
)

// Magnetic field lines between charged pairs inside (FieldLineMinDist, FieldLineMaxDist)
const (
	FieldLineMinDist    = 20.0
	FieldLineMaxDist    = 150.0
	FieldLineMaxOpacity = 0.3
	FieldLineWidth      = 1.0
)

// Particle charge rings
const (
	ChargeRingOffset = 3.0
	ChargeRingWidth  = 2.0
)

// HSL hue bands per particle kind (degrees), hue = base + rand*spread
const (
	HuePositiveBase   = 0.0
	HuePositiveSpread = 30.0
	HueNegativeBase   = 180.0
	HueNegativeSpread = 60.0
	HueNeutralBase    = 120.0
	HueNeutralSpread  = 60.0
	HueDefaultBase    = 180.0
	HueDefaultSpread  = 60.0
	HueRain           = 210.0

	SaturationCharged = 0.8
	SaturationNeutral = 0.7
	LightnessParticle = 0.6
	LightnessRain     = 0.7
	LightnessSnow     = 0.95
)
