package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default output gain in [0, 1]
	AudioMasterVolume = 0.5

	// MinCueGap throttles repeats of the same cue, collisions arrive in bursts
	MinCueGap = 60 * time.Millisecond

	// MaxActiveCues bounds concurrently mixed cues
	MaxActiveCues = 8
)

// Collision cue: short sine ping, pitch rises with closing speed
const (
	CollisionSoundDuration = 90 * time.Millisecond
	CollisionSoundAttack   = 3 * time.Millisecond
	CollisionSoundRelease  = 60 * time.Millisecond
	CollisionBaseFreq      = 520.0
	CollisionFreqPerSpeed  = 90.0
	CollisionMaxFreq       = 1400.0
)

// Bounce cue: low square thud for walls and ground
const (
	BounceSoundDuration = 70 * time.Millisecond
	BounceSoundAttack   = 2 * time.Millisecond
	BounceSoundRelease  = 50 * time.Millisecond
	BounceFreq          = 140.0
)

// Chain cue: rising two-note chime
const (
	ChainSoundNoteDuration = 70 * time.Millisecond
	ChainSoundAttack       = 3 * time.Millisecond
	ChainSoundRelease      = 40 * time.Millisecond
	ChainNoteGap           = 15 * time.Millisecond
	ChainNote1Freq         = 659.25 // E5
	ChainNote2Freq         = 987.77 // B5
)

// Default per-cue volumes, scaled by master volume
const (
	CollisionVolume = 0.4
	BounceVolume    = 0.3
	ChainVolume     = 0.5
)
