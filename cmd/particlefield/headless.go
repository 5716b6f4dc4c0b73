package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/render"
	"github.com/lixenwraith/particlefield/vmath"
)

// headlessPointerOrbit is the radius of the scripted pointer path
const headlessPointerOrbit = 150.0

// headlessPointerSpeed is the pointer angle advanced per frame in radians
const headlessPointerSpeed = 0.02

// statsLine is one JSON record of a headless run
type statsLine struct {
	Frame int `json:"frame"`
	field.Stats
	DrawCalls int `json:"draw_calls"`
}

// runHeadless ticks f against a draw-call recorder and writes a stats line every interval
// The pointer circles the viewport center so attraction is exercised
func runHeadless(w io.Writer, f *field.Field, frames int) error {
	if frames <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", frames)
	}

	rec := render.NewRecorder()
	enc := json.NewEncoder(w)

	in := field.Input{
		PointerX: parameter.HeadlessWidth / 2,
		PointerY: parameter.HeadlessHeight / 2,
		Width:    parameter.HeadlessWidth,
		Height:   parameter.HeadlessHeight,
	}
	f.Start(in)

	for i := 1; i <= frames; i++ {
		ox, oy := vmath.FromAngle(float64(i)*headlessPointerSpeed, headlessPointerOrbit)
		in.PointerX = parameter.HeadlessWidth/2 + ox
		in.PointerY = parameter.HeadlessHeight/2 + oy

		f.Tick(in, rec)

		if i%parameter.StatsInterval == 0 || i == frames {
			line := statsLine{Frame: i, Stats: f.Stats(), DrawCalls: len(rec.Calls)}
			if err := enc.Encode(line); err != nil {
				return fmt.Errorf("failed to write stats: %w", err)
			}
		}
	}
	return nil
}
