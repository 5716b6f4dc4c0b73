package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/render/window"
	"github.com/lixenwraith/particlefield/terminal"
)

// keyBindings mirrors the terminal host controls
var keyBindings = []struct {
	key ebiten.Key
	cmd terminal.Command
}{
	{ebiten.KeyR, terminal.Command{Action: terminal.ActionWeather, Weather: field.WeatherRain}},
	{ebiten.KeyS, terminal.Command{Action: terminal.ActionWeather, Weather: field.WeatherSnow}},
	{ebiten.KeyN, terminal.Command{Action: terminal.ActionWeather, Weather: field.WeatherNone}},
	{ebiten.KeySpace, terminal.Command{Action: terminal.ActionTogglePause}},
	{ebiten.KeyQ, terminal.Command{Action: terminal.ActionQuit}},
	{ebiten.KeyEscape, terminal.Command{Action: terminal.ActionQuit}},
}

// Game hosts a field in an ebiten window
type Game struct {
	field   *field.Field
	surface *window.Surface
	cues    terminal.CueSink

	width, height int
	pointerX      float64
	pointerY      float64
	paused        bool
	status        bool
}

// NewGame creates a game for a window of the given size
func NewGame(f *field.Field, surface *window.Surface, width, height int) *Game {
	return &Game{
		field:    f,
		surface:  surface,
		width:    width,
		height:   height,
		pointerX: float64(width) / 2,
		pointerY: float64(height) / 2,
		status:   true,
	}
}

// Input returns the frame input in window pixels
func (g *Game) Input() field.Input {
	return field.Input{
		PointerX: g.pointerX,
		PointerY: g.pointerY,
		Width:    float64(g.width),
		Height:   float64(g.height),
	}
}

func (g *Game) Update() error {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) && !g.apply(b.cmd) {
			return ebiten.Termination
		}
	}

	mx, my := ebiten.CursorPosition()
	if mx >= 0 && my >= 0 && mx < g.width && my < g.height {
		g.pointerX, g.pointerY = float64(mx), float64(my)
	}

	g.advance()
	return nil
}

// advance steps and emits, rendering happens in Draw
func (g *Game) advance() {
	if !g.field.Running() {
		return
	}
	in := g.Input()
	g.field.Step(in)
	g.field.Emit(in)
	if g.cues != nil {
		g.cues.Play(g.field.Events())
	}
}

// apply handles a control command, false on quit
func (g *Game) apply(cmd terminal.Command) bool {
	switch cmd.Action {
	case terminal.ActionQuit:
		return false
	case terminal.ActionWeather:
		g.field.SetWeatherMode(cmd.Weather)
		log.Printf("window host: weather %s", cmd.Weather)
	case terminal.ActionTogglePause:
		g.paused = !g.paused
		if g.paused {
			g.field.Stop()
		} else {
			g.field.Start(g.Input())
		}
	}
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.field.Render(g.surface)

	if g.status {
		st := g.field.Stats()
		msg := fmt.Sprintf("weather: %s  particles: %d/%d  fps: %.0f\nr/s/n weather  space pause  q quit",
			st.Weather, st.Particles, g.field.Params().MaxParticles, ebiten.ActualFPS())
		if g.paused {
			msg = "PAUSED\n" + msg
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout follows the window so the viewport tracks resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
