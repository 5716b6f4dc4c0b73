package main

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/goccy/go-json"

	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/vmath"
)

func TestRunHeadless(t *testing.T) {
	var out bytes.Buffer
	f := field.New(vmath.NewFastRand(3))

	if err := runHeadless(&out, f, 150); err != nil {
		t.Fatalf("runHeadless failed: %v", err)
	}

	var lines []statsLine
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var line statsLine
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			t.Fatalf("bad stats line %q: %v", sc.Text(), err)
		}
		lines = append(lines, line)
	}

	// Every 60 frames plus the final frame
	wantFrames := []int{60, 120, 150}
	if len(lines) != len(wantFrames) {
		t.Fatalf("got %d stats lines, want %d", len(lines), len(wantFrames))
	}
	for i, line := range lines {
		if line.Frame != wantFrames[i] {
			t.Errorf("line %d frame = %d, want %d", i, line.Frame, wantFrames[i])
		}
		if line.Steps != uint64(line.Frame) {
			t.Errorf("line %d steps = %d, want %d", i, line.Steps, line.Frame)
		}
		if !line.Running || line.OrbitalBodies != 1 {
			t.Errorf("line %d = %+v, want running with one central body", i, line)
		}
		if line.Particles > f.Params().MaxParticles {
			t.Errorf("line %d particles %d above cap", i, line.Particles)
		}
		if line.DrawCalls == 0 {
			t.Errorf("line %d recorded no draw calls", i)
		}
	}
}

func TestRunHeadlessRejectsZeroFrames(t *testing.T) {
	var out bytes.Buffer
	if err := runHeadless(&out, field.New(nil), 0); err == nil {
		t.Error("zero frames accepted")
	}
	if out.Len() != 0 {
		t.Error("output written for rejected run")
	}
}

func TestStatsLineJSON(t *testing.T) {
	data, err := json.Marshal(statsLine{Frame: 7, Stats: field.Stats{Steps: 7, Weather: "rain"}, DrawCalls: 3})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{"frame", "steps", "weather", "draw_calls", "particles", "dropped"} {
		if _, ok := generic[key]; !ok {
			t.Errorf("key %q missing from %s", key, data)
		}
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	defer func(w string, s uint64, fps int, sound bool) {
		*weatherFlag, *seedFlag, *fpsFlag, *soundFlag = w, s, fps, sound
	}(*weatherFlag, *seedFlag, *fpsFlag, *soundFlag)

	*weatherFlag, *seedFlag, *fpsFlag, *soundFlag = "snow", 9, 30, true
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.WeatherMode() != field.WeatherSnow || cfg.Simulation.Seed != 9 || cfg.Display.FPS != 30 || !cfg.Audio.Enabled {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	*weatherFlag = "hail"
	if _, err := loadConfig(); err == nil {
		t.Error("unknown weather flag accepted")
	}

	*weatherFlag, *fpsFlag = "", 1000
	if _, err := loadConfig(); err == nil {
		t.Error("out-of-range fps accepted")
	}
}

func TestNewRand(t *testing.T) {
	if newRand(0) != nil {
		t.Error("seed 0 should defer to the field's clock seed")
	}
	if newRand(5) == nil {
		t.Error("nonzero seed returned nil")
	}
}
