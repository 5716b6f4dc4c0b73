package field

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/particlefield/parameter"
)

// WeatherMode selects a gravity/wind preset and the matching step emission
type WeatherMode uint8

const (
	WeatherNone WeatherMode = iota
	WeatherRain
	WeatherSnow
)

var weatherNames = [...]string{"none", "rain", "snow"}

func (w WeatherMode) String() string {
	if int(w) < len(weatherNames) {
		return weatherNames[w]
	}
	return weatherNames[WeatherNone]
}

// ParseWeatherMode converts a host or config name into a mode
func ParseWeatherMode(s string) (WeatherMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return WeatherNone, nil
	case "rain":
		return WeatherRain, nil
	case "snow":
		return WeatherSnow, nil
	}
	return WeatherNone, fmt.Errorf("unknown weather mode %q", s)
}

// Params is the simulation tuning owned by a field
// It is replaced as a whole value, never mutated piecemeal through the field
type Params struct {
	Gravity       float64
	Friction      float64
	Bounce        float64
	WindForce     float64
	WindDirection float64

	PointerRadius float64
	PointerForce  float64

	MagneticForce     float64
	MagneticRange     float64
	MagneticThreshold float64

	GravitationalConstant float64
	OrbitalRange          float64

	CollisionRadius float64
	Restitution     float64

	MaxParticles int

	// RandomCharge ignores the requested kind and draws a random polarity for every particle
	RandomCharge bool
}

// DefaultParams returns the stock tuning with weather none
func DefaultParams() Params {
	return Params{
		Gravity:               parameter.Gravity,
		Friction:              parameter.Friction,
		Bounce:                parameter.Bounce,
		WindForce:             parameter.WindForce,
		WindDirection:         parameter.WindDirection,
		PointerRadius:         parameter.PointerRadius,
		PointerForce:          parameter.PointerForce,
		MagneticForce:         parameter.MagneticForce,
		MagneticRange:         parameter.MagneticRange,
		MagneticThreshold:     parameter.MagneticThreshold,
		GravitationalConstant: parameter.GravitationalConstant,
		OrbitalRange:          parameter.OrbitalRange,
		CollisionRadius:       parameter.CollisionRadius,
		Restitution:           parameter.Restitution,
		MaxParticles:          parameter.MaxParticles,
	}
}

// WithWeather returns a copy of p with the gravity and wind preset of mode
// Unknown modes fall back to none
func (p Params) WithWeather(mode WeatherMode) Params {
	switch mode {
	case WeatherRain:
		p.Gravity = parameter.WeatherRainGravity
		p.WindForce = parameter.WeatherRainWindForce
	case WeatherSnow:
		p.Gravity = parameter.WeatherSnowGravity
		p.WindForce = parameter.WeatherSnowWindForce
	default:
		p.Gravity = parameter.WeatherNoneGravity
		p.WindForce = parameter.WeatherNoneWindForce
	}
	return p
}
