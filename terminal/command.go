package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particlefield/field"
)

// Action is a host-level intent decoded from a terminal event
type Action uint8

const (
	ActionNone Action = iota
	ActionPointer
	ActionResize
	ActionWeather
	ActionTogglePause
	ActionQuit
)

var actionNames = [...]string{"none", "pointer", "resize", "weather", "pause", "quit"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// Command carries a decoded event from the poll goroutine to the frame loop
// Col/Row hold the mouse cell for pointer commands and the screen size for resize
type Command struct {
	Action  Action
	Col     int
	Row     int
	Weather field.WeatherMode
}

// Translate maps a tcell event to a command, false for events the host ignores
func Translate(ev tcell.Event) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		return Command{Action: ActionPointer, Col: x, Row: y}, true

	case *tcell.EventResize:
		w, h := ev.Size()
		return Command{Action: ActionResize, Col: w, Row: h}, true
	}
	return Command{}, false
}

func translateKey(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}, true
	case tcell.KeyRune:
	default:
		return Command{}, false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return Command{Action: ActionQuit}, true
	case ' ':
		return Command{Action: ActionTogglePause}, true
	case 'r', 'R':
		return Command{Action: ActionWeather, Weather: field.WeatherRain}, true
	case 's', 'S':
		return Command{Action: ActionWeather, Weather: field.WeatherSnow}, true
	case 'n', 'N':
		return Command{Action: ActionWeather, Weather: field.WeatherNone}, true
	}
	return Command{}, false
}
