package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
)

// CuePlayer turns field events into short sounds on the speaker
// Cues of the same kind are throttled, a step's events collapse into one cue per kind
type CuePlayer struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	now    func() time.Time
	last   [cueCount]time.Time
	played [cueCount]uint64
}

// NewCuePlayer creates a player, nil cfg uses defaults
func NewCuePlayer(cfg *AudioConfig) *CuePlayer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &CuePlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize sets up the speaker, calling it twice is a no-op
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences all cues, the speaker stays open for a later Initialize
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	p.initialized = false
}

// Play triggers cues for the events of one step
// Only the strongest event per cue kind is voiced
func (p *CuePlayer) Play(events []field.Event) {
	var (
		strength [cueCount]float64
		seen     [cueCount]bool
	)
	for _, e := range events {
		cue, ok := cueFor(e.Kind)
		if !ok {
			continue
		}
		if !seen[cue] || e.Strength > strength[cue] {
			strength[cue] = e.Strength
		}
		seen[cue] = true
	}

	for cue := Cue(0); cue < cueCount; cue++ {
		if seen[cue] {
			p.Trigger(cue, strength[cue])
		}
	}
}

// Trigger voices a single cue, returns false if throttled or not initialized
func (p *CuePlayer) Trigger(cue Cue, strength float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || cue < 0 || cue >= cueCount {
		return false
	}
	if !p.admit(cue) {
		return false
	}

	s := GetCueSound(cue, p.cfg, strength)
	if s == nil {
		return false
	}

	speaker.Lock()
	full := p.cfg.MaxActive > 0 && p.mixer.Len() >= p.cfg.MaxActive
	if !full {
		p.mixer.Add(s)
	}
	speaker.Unlock()

	if full {
		return false
	}
	p.played[cue]++
	return true
}

// admit applies the per-cue minimum gap, caller holds mu
func (p *CuePlayer) admit(cue Cue) bool {
	now := p.now()
	if last := p.last[cue]; !last.IsZero() && now.Sub(last) < p.cfg.MinGap {
		return false
	}
	p.last[cue] = now
	return true
}

// Played returns how many times cue was voiced
func (p *CuePlayer) Played(cue Cue) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return p.played[cue]
}

// Active returns the number of cues still sounding
func (p *CuePlayer) Active() int {
	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// cueFor maps a field event to its cue
func cueFor(kind field.EventKind) (Cue, bool) {
	switch kind {
	case field.EventCollision:
		return CueCollision, true
	case field.EventWall, field.EventGround:
		return CueBounce, true
	case field.EventChain:
		return CueChain, true
	}
	return 0, false
}
