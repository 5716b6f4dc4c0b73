package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; e.releaseSamples > 0 && remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain, math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// collisionFreq maps closing speed to ping pitch
func collisionFreq(strength float64) float64 {
	return math.Min(parameter.CollisionBaseFreq+strength*parameter.CollisionFreqPerSpeed, parameter.CollisionMaxFreq)
}

// CreateCollisionSound generates a short ping, faster impacts ring higher
func CreateCollisionSound(cfg *AudioConfig, strength float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(collisionFreq(strength), parameter.CollisionSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.CollisionSoundDuration, parameter.CollisionSoundAttack, parameter.CollisionSoundRelease, rate)

	return newVolume(shaped, cfg.CueVolumes[CueCollision]*cfg.MasterVolume)
}

// CreateBounceSound generates a low thud with a little noise on top
func CreateBounceSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(parameter.BounceFreq, parameter.BounceSoundDuration, WaveSquare, rate)
	bodyShaped := NewEnvelope(body, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)

	noise := NewOscillator(0, parameter.BounceSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.6),
		newVolume(noiseShaped, 0.2),
	)
	return newVolume(mixed, cfg.CueVolumes[CueBounce]*cfg.MasterVolume)
}

// CreateChainSound generates a rising two-note chime with a short gap
func CreateChainSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ChainSoundNoteDuration

	n1 := NewOscillator(parameter.ChainNote1Freq, d, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, d, parameter.ChainSoundAttack, parameter.ChainSoundRelease, rate)

	n2 := NewOscillator(parameter.ChainNote2Freq, d, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, d, parameter.ChainSoundAttack, parameter.ChainSoundRelease, rate)

	gap := generators.Silence(rate.N(parameter.ChainNoteGap))

	return newVolume(beep.Seq(n1Shaped, gap, n2Shaped), cfg.CueVolumes[CueChain]*cfg.MasterVolume)
}

// GetCueSound returns the streamer for a cue, nil for unknown cues
func GetCueSound(cue Cue, cfg *AudioConfig, strength float64) beep.Streamer {
	switch cue {
	case CueCollision:
		return CreateCollisionSound(cfg, strength)
	case CueBounce:
		return CreateBounceSound(cfg)
	case CueChain:
		return CreateChainSound(cfg)
	default:
		return nil
	}
}
