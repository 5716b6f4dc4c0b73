package terminal

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particlefield/engine"
	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/parameter/visual"
	"github.com/lixenwraith/particlefield/render"
)

// CueSink receives the events of each stepped frame
type CueSink interface {
	Play(events []field.Event)
}

// Options configures a Host
type Options struct {
	ScaleX, ScaleY float64
	Background     render.RGB
	StatusLine     bool
}

// DefaultOptions returns the stock cell scale and palette
func DefaultOptions() Options {
	return Options{
		ScaleX:     parameter.CellScaleX,
		ScaleY:     parameter.CellScaleY,
		Background: visual.RgbBackground,
		StatusLine: true,
	}
}

// Host drives a field on a tcell screen
type Host struct {
	screen tcell.Screen
	field  *field.Field
	buf    *render.CellBuffer
	opts   Options
	cues   CueSink

	commands chan Command
	done     chan struct{}
	doneOnce sync.Once
	finiOnce sync.Once

	pointerX, pointerY float64
	paused             bool
}

// NewHost wires a field to a screen, Init must be called before use
func NewHost(screen tcell.Screen, f *field.Field, opts Options) *Host {
	if opts.ScaleX <= 0 || opts.ScaleY <= 0 {
		opts.ScaleX, opts.ScaleY = parameter.CellScaleX, parameter.CellScaleY
	}
	return &Host{
		screen:   screen,
		field:    f,
		opts:     opts,
		buf:      render.NewCellBuffer(0, 0, opts.ScaleX, opts.ScaleY, opts.Background),
		commands: make(chan Command, parameter.InputQueueSize),
		done:     make(chan struct{}),
	}
}

// SetCues attaches an event sink, nil detaches
func (h *Host) SetCues(c CueSink) {
	h.cues = c
}

// Init prepares the screen, centers the pointer and starts the field
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	engine.SetCrashCleanup(h.crashCleanup)

	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.HideCursor()
	h.screen.SetStyle(tcell.StyleDefault.Background(render.RGBToTcell(h.opts.Background)))

	w, ht := h.screen.Size()
	h.buf.Resize(w, ht)
	ww, wh := h.buf.WorldSize()
	h.pointerX, h.pointerY = ww/2, wh/2

	h.field.Start(h.Input())
	log.Printf("terminal host: %dx%d cells, world %.0fx%.0f", w, ht, ww, wh)
	return nil
}

// Fini restores the screen, PollInput returns afterwards
func (h *Host) Fini() {
	h.finiOnce.Do(func() {
		h.finish()
		engine.SetCrashCleanup(nil)
		h.screen.Fini()
	})
}

// finish marks the frame side as gone, pending sends give up
func (h *Host) finish() {
	h.doneOnce.Do(func() { close(h.done) })
}

// crashCleanup restores the tty from a panicking goroutine
func (h *Host) crashCleanup() {
	h.screen.Fini()
	EmergencyReset(os.Stdout)
}

// PollInput decodes screen events until the screen is finalized
// Runs on its own goroutine; commands are dropped when the queue is full
// A quit waits for room until the frame side stops
func (h *Host) PollInput() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		cmd, ok := Translate(ev)
		if !ok {
			continue
		}
		select {
		case h.commands <- cmd:
		default:
			if cmd.Action == ActionQuit {
				// Quit must not be lost to a burst of mouse motion
				select {
				case h.commands <- cmd:
				case <-h.done:
					return
				}
			}
		}
	}
}

// Post queues a command as if it came from the screen, no-op once the host is done
func (h *Host) Post(cmd Command) {
	select {
	case h.commands <- cmd:
	case <-h.done:
	}
}

// Input returns the frame input in world units
func (h *Host) Input() field.Input {
	w, ht := h.buf.WorldSize()
	return field.Input{PointerX: h.pointerX, PointerY: h.pointerY, Width: w, Height: ht}
}

// Paused reports whether the simulation is frozen by the user
func (h *Host) Paused() bool {
	return h.paused
}

// Buffer exposes the composed frame
func (h *Host) Buffer() *render.CellBuffer {
	return h.buf
}

// Frame applies queued input, advances the field and shows the result
// Returns false once quit was requested; matches engine.FrameFunc
func (h *Host) Frame(frame uint64) bool {
	if !h.drain() {
		h.finish()
		return false
	}

	if h.field.Running() {
		h.field.Tick(h.Input(), h.buf)
		if h.cues != nil {
			h.cues.Play(h.field.Events())
		}
	} else {
		// Frozen frame still follows resizes
		h.field.Render(h.buf)
	}

	h.buf.Flush(h.screen)
	if h.opts.StatusLine {
		h.drawStatus()
	}
	h.screen.Show()
	return true
}

// drain applies every queued command, false on quit
func (h *Host) drain() bool {
	for {
		select {
		case cmd := <-h.commands:
			if !h.apply(cmd) {
				return false
			}
		default:
			return true
		}
	}
}

func (h *Host) apply(cmd Command) bool {
	switch cmd.Action {
	case ActionQuit:
		log.Printf("terminal host: quit")
		return false

	case ActionPointer:
		h.pointerX, h.pointerY = h.buf.CellToWorld(cmd.Col, cmd.Row)

	case ActionResize:
		h.buf.Resize(cmd.Col, cmd.Row)
		h.screen.Sync()

	case ActionWeather:
		h.field.SetWeatherMode(cmd.Weather)
		log.Printf("terminal host: weather %s", cmd.Weather)

	case ActionTogglePause:
		h.paused = !h.paused
		if h.paused {
			h.field.Stop()
		} else {
			h.field.Start(h.Input())
		}
	}
	return true
}

// drawStatus writes a one-line summary over the bottom row
func (h *Host) drawStatus() {
	w, ht := h.buf.Bounds()
	if w == 0 || ht == 0 {
		return
	}
	st := h.field.Stats()
	text := fmt.Sprintf(" %s  %d/%d  r:rain s:snow n:none space:pause q:quit ",
		st.Weather, st.Particles, h.field.Params().MaxParticles)
	if h.paused {
		text = " PAUSED" + text
	}

	style := tcell.StyleDefault.
		Foreground(render.RGBToTcell(visual.RgbStatusText)).
		Background(render.RGBToTcell(visual.RgbStatusBar))
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		h.screen.SetContent(x, ht-1, r, nil, style)
		x++
	}
}
