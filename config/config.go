// Package config loads runtime settings from TOML or YAML files
// Missing keys keep their compile-time defaults from the parameter package
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
)

// Config is the settings file layout
type Config struct {
	Simulation Simulation `toml:"simulation" yaml:"simulation"`
	Display    Display    `toml:"display" yaml:"display"`
	Audio      Audio      `toml:"audio" yaml:"audio"`
}

// Simulation mirrors field.Params plus the startup weather and seed
type Simulation struct {
	Weather string `toml:"weather" yaml:"weather" validate:"oneof=none rain snow"`
	Seed    uint64 `toml:"seed" yaml:"seed"`

	Gravity       float64 `toml:"gravity" yaml:"gravity" validate:"gte=0,lte=10"`
	Friction      float64 `toml:"friction" yaml:"friction" validate:"gt=0,lte=1"`
	Bounce        float64 `toml:"bounce" yaml:"bounce" validate:"gte=0,lte=1"`
	WindForce     float64 `toml:"wind_force" yaml:"wind_force" validate:"gte=0,lte=5"`
	WindDirection float64 `toml:"wind_direction" yaml:"wind_direction" validate:"gte=-6.2832,lte=6.2832"`

	PointerRadius float64 `toml:"pointer_radius" yaml:"pointer_radius" validate:"gt=0"`
	PointerForce  float64 `toml:"pointer_force" yaml:"pointer_force" validate:"gte=0,lte=10"`

	MagneticForce     float64 `toml:"magnetic_force" yaml:"magnetic_force" validate:"gte=0,lte=10"`
	MagneticRange     float64 `toml:"magnetic_range" yaml:"magnetic_range" validate:"gt=0"`
	MagneticThreshold float64 `toml:"magnetic_threshold" yaml:"magnetic_threshold" validate:"gte=0"`

	GravitationalConstant float64 `toml:"gravitational_constant" yaml:"gravitational_constant" validate:"gte=0,lte=10"`
	OrbitalRange          float64 `toml:"orbital_range" yaml:"orbital_range" validate:"gt=0"`

	CollisionRadius float64 `toml:"collision_radius" yaml:"collision_radius" validate:"gt=0"`
	Restitution     float64 `toml:"restitution" yaml:"restitution" validate:"gte=0,lte=1"`

	MaxParticles int  `toml:"max_particles" yaml:"max_particles" validate:"gte=1,lte=10000"`
	RandomCharge bool `toml:"random_charge" yaml:"random_charge"`
}

// Display holds host settings
type Display struct {
	FPS        int     `toml:"fps" yaml:"fps" validate:"gte=1,lte=240"`
	CellScaleX float64 `toml:"cell_scale_x" yaml:"cell_scale_x" validate:"gt=0,lte=64"`
	CellScaleY float64 `toml:"cell_scale_y" yaml:"cell_scale_y" validate:"gt=0,lte=64"`
	StatusLine bool    `toml:"status_line" yaml:"status_line"`
}

// Audio holds cue player settings
type Audio struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume" validate:"gte=0,lte=1"`
}

// Default returns the compile-time settings
func Default() *Config {
	p := field.DefaultParams()
	return &Config{
		Simulation: Simulation{
			Weather:               field.WeatherNone.String(),
			Gravity:               p.Gravity,
			Friction:              p.Friction,
			Bounce:                p.Bounce,
			WindForce:             p.WindForce,
			WindDirection:         p.WindDirection,
			PointerRadius:         p.PointerRadius,
			PointerForce:          p.PointerForce,
			MagneticForce:         p.MagneticForce,
			MagneticRange:         p.MagneticRange,
			MagneticThreshold:     p.MagneticThreshold,
			GravitationalConstant: p.GravitationalConstant,
			OrbitalRange:          p.OrbitalRange,
			CollisionRadius:       p.CollisionRadius,
			Restitution:           p.Restitution,
			MaxParticles:          p.MaxParticles,
			RandomCharge:          p.RandomCharge,
		},
		Display: Display{
			FPS:        parameter.DefaultFPS,
			CellScaleX: parameter.CellScaleX,
			CellScaleY: parameter.CellScaleY,
			StatusLine: true,
		},
		Audio: Audio{
			Enabled: false,
			Volume:  parameter.AudioMasterVolume,
		},
	}
}

// Format is a settings file encoding
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatFor picks the encoding from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
}

// Load reads, decodes and validates a settings file over the defaults
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data over the defaults and validates the result
// Unknown keys are rejected so typos don't silently fall back to defaults
func Decode(data []byte, format Format) (*Config, error) {
	cfg := Default()

	if len(bytes.TrimSpace(data)) > 0 {
		switch format {
		case FormatTOML:
			dec := toml.NewDecoder(bytes.NewReader(data))
			dec.DisallowUnknownFields()
			if err := dec.Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to decode toml: %w", err)
			}
		case FormatYAML:
			dec := yaml.NewDecoder(bytes.NewReader(data))
			dec.KnownFields(true)
			if err := dec.Decode(cfg); err != nil {
				return nil, fmt.Errorf("failed to decode yaml: %w", err)
			}
		default:
			return nil, fmt.Errorf("unknown config format %d", format)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode serializes cfg in the given format
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("unknown config format %d", format)
}

// Save writes cfg to path, the extension picks the encoding
func Save(path string, cfg *Config) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	data, err := Encode(cfg, format)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// validate is shared, validator caches struct metadata
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks value ranges, the error unwraps to validator.ValidationErrors
// Known weather names are normalized first so files match the -weather flag
func (c *Config) Validate() error {
	if mode, err := field.ParseWeatherMode(c.Simulation.Weather); err == nil {
		c.Simulation.Weather = mode.String()
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// WeatherMode returns the startup weather, Validate guarantees a known name
func (c *Config) WeatherMode() field.WeatherMode {
	mode, err := field.ParseWeatherMode(c.Simulation.Weather)
	if err != nil {
		return field.WeatherNone
	}
	return mode
}

// Params converts the simulation section into field tuning
func (c *Config) Params() field.Params {
	s := c.Simulation
	return field.Params{
		Gravity:               s.Gravity,
		Friction:              s.Friction,
		Bounce:                s.Bounce,
		WindForce:             s.WindForce,
		WindDirection:         s.WindDirection,
		PointerRadius:         s.PointerRadius,
		PointerForce:          s.PointerForce,
		MagneticForce:         s.MagneticForce,
		MagneticRange:         s.MagneticRange,
		MagneticThreshold:     s.MagneticThreshold,
		GravitationalConstant: s.GravitationalConstant,
		OrbitalRange:          s.OrbitalRange,
		CollisionRadius:       s.CollisionRadius,
		Restitution:           s.Restitution,
		MaxParticles:          s.MaxParticles,
		RandomCharge:          s.RandomCharge,
	}
}

// Apply configures f: params first, then a non-none weather preset
// A rain or snow preset overrides the configured gravity and wind force
func (c *Config) Apply(f *field.Field) {
	f.SetParams(c.Params())
	if mode := c.WeatherMode(); mode != field.WeatherNone {
		f.SetWeatherMode(mode)
	}
}
