package parameter

// Weather presets rewrite gravity and wind together
const (
	WeatherNoneGravity   = Gravity
	WeatherNoneWindForce = WindForce

	WeatherRainGravity   = 1.2
	WeatherRainWindForce = 0.05

	WeatherSnowGravity   = 0.3
	WeatherSnowWindForce = 0.08
)

// Weather emission, evaluated once per step
const (
	RainSpawnChance = 0.3
	// RainSpeedX is the full horizontal spread, velocity is (rand-0.5)*RainSpeedX
	RainSpeedX    = 1.0
	RainSpeedYMin = 2.0
	RainSpeedYMax = 5.0
	RainMass      = 0.8

	SnowSpawnChance = 0.2
	SnowSpeedX      = 0.5
	SnowSpeedYMin   = 0.5
	SnowSpeedYMax   = 1.5
	SnowMass        = 0.3
)
