package audio

import (
	"errors"
	"time"

	"github.com/lixenwraith/particlefield/parameter"
)

// Cue represents a sound triggered by a field event
type Cue int

const (
	CueCollision Cue = iota // Particle contact ping
	CueBounce               // Wall or ground thud
	CueChain                // Chain reaction chime
	cueCount
)

var cueNames = [...]string{"collision", "bounce", "chain"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// AudioConfig holds cue player settings
type AudioConfig struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	CueVolumes   [cueCount]float64
	MinGap       time.Duration
	MaxActive    int
}

// DefaultAudioConfig returns the stock settings, audio disabled
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolume,
		CueVolumes: [cueCount]float64{
			CueCollision: parameter.CollisionVolume,
			CueBounce:    parameter.BounceVolume,
			CueChain:     parameter.ChainVolume,
		},
		MinGap:    parameter.MinCueGap,
		MaxActive: parameter.MaxActiveCues,
	}
}

// Sentinel errors
var (
	ErrDisabled = errors.New("audio disabled")
)
