// Package engine schedules host frames for the particle field
package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particlefield/parameter"
)

// FrameFunc runs one frame, returning false ends the loop
type FrameFunc func(frame uint64) bool

// Loop calls a frame function at a fixed rate from a single goroutine
// A Loop runs once: after it exits it cannot be restarted
type Loop struct {
	interval time.Duration
	frame    FrameFunc

	frames atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
	running  atomic.Bool
	started  atomic.Bool
}

// NewLoop creates a loop at fps frames per second, out-of-range rates use the default
func NewLoop(fps int, frame FrameFunc) *Loop {
	if fps < parameter.MinFPS || fps > parameter.MaxFPS {
		fps = parameter.DefaultFPS
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		frame:    frame,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Interval returns the frame period
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Start begins the frame loop, the first frame runs immediately
func (l *Loop) Start() {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	l.running.Store(true)
	l.wg.Add(1)
	Go(l.run)
}

// Stop halts the loop after the current frame and waits for it to exit
// Must not be called from inside the frame function
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
	l.wg.Wait()
}

// Done is closed when the loop goroutine exits
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Running reports whether the loop goroutine is active
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Frames returns the number of frames started
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// run is the loop body, stop is checked before every frame
func (l *Loop) run() {
	defer l.wg.Done()
	defer close(l.done)
	defer l.running.Store(false)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		default:
		}

		if !l.frame(l.frames.Add(1)) {
			return
		}

		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
		}
	}
}
