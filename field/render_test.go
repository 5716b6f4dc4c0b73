package field

import (
	"reflect"
	"testing"

	"github.com/lixenwraith/particlefield/parameter/visual"
	"github.com/lixenwraith/particlefield/render"
)

// populated builds a field with one entity of every type
func populated() *Field {
	f := New(quiet)
	f.AddForceField(100, 100, 120, 1, Attract)
	f.AddForceField(300, 100, 120, 1, Repel)
	f.AddVortex(500, 500, 90, 0.5)
	f.AddOrbitalBody(200, 200, 10, true)
	f.AddOrbitalBody(400, 400, 2, false)
	f.AddParticle(600, 600, 0, 0, 1, KindPositive)
	f.AddParticle(650, 600, 0, 0, 1, KindNegative)
	f.AddParticle(700, 700, 0, 0, 1, KindNeutral)
	return f
}

func TestRenderLayerOrder(t *testing.T) {
	f := populated()
	rec := render.NewRecorder()
	f.Render(rec)

	want := []render.DrawOp{
		render.OpClear,
		render.OpFillCircle, render.OpStrokeCircle, // attract field
		render.OpFillCircle, render.OpStrokeCircle, // repel field
		render.OpStrokeCircle, render.OpStrokeCircle, render.OpStrokeCircle, // vortex rings
		render.OpGlow, render.OpGlow, // orbital bodies
		render.OpLine,                         // charged pair at distance 50
		render.OpGlow, render.OpStrokeCircle, // positive
		render.OpGlow, render.OpStrokeCircle, // negative
		render.OpGlow, // neutral, no ring
	}
	if len(rec.Calls) != len(want) {
		t.Fatalf("calls = %d, want %d: %+v", len(rec.Calls), len(want), rec.Calls)
	}
	for i, op := range want {
		if rec.Calls[i].Op != op {
			t.Errorf("call %d = %v, want %v", i, rec.Calls[i].Op, op)
		}
	}
}

func TestRenderStyling(t *testing.T) {
	f := populated()
	rec := render.NewRecorder()
	f.Render(rec)
	c := rec.Calls

	// Force fields at full life
	if got := c[1].Color; got.RGB != visual.RgbAttract || !near(got.A, 0.3*0.1, 1e-12) {
		t.Errorf("attract fill = %+v", got)
	}
	if got := c[2].Color; !near(got.A, 0.3*0.5, 1e-12) || c[2].Width != visual.ForceFieldLineWidth {
		t.Errorf("attract stroke = %+v width %v", got, c[2].Width)
	}
	if c[3].Color.RGB != visual.RgbRepel {
		t.Errorf("repel fill color = %+v", c[3].Color.RGB)
	}

	// Vortex rings at R/3, 2R/3, R
	for i, r := range []float64{30, 60, 90} {
		call := c[5+i]
		if !near(call.Radius, r, 1e-9) {
			t.Errorf("vortex ring %d radius = %v, want %v", i, call.Radius, r)
		}
		if call.Color.RGB != visual.RgbVortex || !near(call.Color.A, 0.4*0.6, 1e-12) {
			t.Errorf("vortex ring %d color = %+v", i, call.Color)
		}
	}

	// Central body first, radius from mass
	if c[8].Color.RGB != visual.RgbCentralBody || c[8].Color.A != visual.CentralBodyAlpha || c[8].Radius != 50 {
		t.Errorf("central body = %+v", c[8])
	}
	if c[9].Color.RGB != visual.RgbOrbitalBody || c[9].Color.A != visual.OrbitalBodyAlpha {
		t.Errorf("orbital body = %+v", c[9])
	}

	// Field line opacity (150-50)/150*0.3
	if line := c[10]; !near(line.Color.A, 0.2, 1e-12) || line.Color.RGB != visual.RgbFieldLine {
		t.Errorf("field line = %+v", line)
	}

	// Charge rings
	if ring := c[12]; ring.Color.RGB != visual.RgbChargePositive || ring.Radius != particlesSize(f, 0)+visual.ChargeRingOffset {
		t.Errorf("positive ring = %+v", ring)
	}
	if ring := c[14]; ring.Color.RGB != visual.RgbChargeNegative {
		t.Errorf("negative ring = %+v", ring)
	}
}

func particlesSize(f *Field, idx int) float64 {
	for i, p := range f.Particles() {
		if i == idx {
			return p.Size
		}
	}
	return 0
}

func TestFieldLineBand(t *testing.T) {
	tests := []struct {
		name  string
		dist  float64
		kinds [2]Kind
		lines int
	}{
		{"too close", 15, [2]Kind{KindPositive, KindNegative}, 0},
		{"inside band", 100, [2]Kind{KindPositive, KindPositive}, 1},
		{"too far", 160, [2]Kind{KindNegative, KindNegative}, 0},
		{"neutral partner", 50, [2]Kind{KindPositive, KindNeutral}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(quiet)
			f.AddParticle(100, 100, 0, 0, 1, tt.kinds[0])
			f.AddParticle(100+tt.dist, 100, 0, 0, 1, tt.kinds[1])
			rec := render.NewRecorder()
			f.Render(rec)
			if got := rec.Count(render.OpLine); got != tt.lines {
				t.Errorf("lines = %d, want %d", got, tt.lines)
			}
		})
	}
}

func TestRenderAlphaFollowsLife(t *testing.T) {
	f := newStill(quiet)
	f.AddParticle(500, 500, 0, 0, 1, KindNeutral)
	for i := 0; i < 10; i++ {
		f.Step(testInput)
	}
	rec := render.NewRecorder()
	f.Render(rec)

	glow := rec.Filter(render.OpGlow)
	if len(glow) != 1 {
		t.Fatalf("glow calls = %d, want 1", len(glow))
	}
	life := particles(f)[0].Life
	if glow[0].Color.A != life {
		t.Errorf("particle alpha = %v, want life %v", glow[0].Color.A, life)
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	f := populated()
	f.Step(testInput)

	before := snapshot(f)
	stats := f.Stats()
	var fields []ForceField
	for _, ff := range f.ForceFields() {
		fields = append(fields, *ff)
	}

	f.Render(render.NewRecorder())
	f.Render(render.NewCellBuffer(40, 20, 25, 50, visual.RgbBackground))

	if !reflect.DeepEqual(before, snapshot(f)) {
		t.Error("render mutated particles")
	}
	if f.Stats() != stats {
		t.Errorf("render changed stats: %+v -> %+v", stats, f.Stats())
	}
	var after []ForceField
	for _, ff := range f.ForceFields() {
		after = append(after, *ff)
	}
	if !reflect.DeepEqual(fields, after) {
		t.Error("render mutated force fields")
	}
}
