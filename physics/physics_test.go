package physics

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// TestResolveElasticRestitutionLaw verifies vn' = -e * vn for equal masses
func TestResolveElasticRestitutionLaw(t *testing.T) {
	a := &Kinetic{X: 0, Y: 0, VX: 2, VY: 0, Mass: 1}
	b := &Kinetic{X: 5, Y: 0, VX: -2, VY: 0, Mass: 1}

	res := ResolveElastic(a, b, 0.8, 8)
	if !res.Resolved {
		t.Fatal("Expected approaching pair to be resolved")
	}

	if !almostEqual(res.Before, -4) {
		t.Errorf("Expected pre-collision normal velocity -4, got %f", res.Before)
	}
	if !almostEqual(res.After, 3.2) {
		t.Errorf("Expected post-collision normal velocity 3.2, got %f", res.After)
	}

	// Momentum along normal is conserved for equal masses
	if !almostEqual(a.VX+b.VX, 0) {
		t.Errorf("Expected zero net momentum, got %f", a.VX+b.VX)
	}
}

func TestResolveElasticSeparation(t *testing.T) {
	a := &Kinetic{X: 0, Y: 0, VX: 1, Mass: 1}
	b := &Kinetic{X: 5, Y: 0, VX: -1, Mass: 1}

	ResolveElastic(a, b, 0.8, 8)

	// Overlap 3, each pushed 1.5 along the normal
	if !almostEqual(a.X, -1.5) || !almostEqual(b.X, 6.5) {
		t.Errorf("Expected positions -1.5 and 6.5, got %f and %f", a.X, b.X)
	}
	if d := b.X - a.X; !almostEqual(d, 8) {
		t.Errorf("Expected separation to contact distance 8, got %f", d)
	}
}

func TestResolveElasticSkipsSeparating(t *testing.T) {
	a := &Kinetic{X: 0, Y: 0, VX: -1, Mass: 1}
	b := &Kinetic{X: 5, Y: 0, VX: 1, Mass: 1}

	res := ResolveElastic(a, b, 0.8, 8)
	if res.Resolved {
		t.Error("Separating pair should not be resolved")
	}
	if a.VX != -1 || b.VX != 1 || a.X != 0 || b.X != 5 {
		t.Error("Separating pair state should be unchanged")
	}
}

func TestResolveElasticCoincident(t *testing.T) {
	a := &Kinetic{X: 3, Y: 3, VX: 1, Mass: 1}
	b := &Kinetic{X: 3, Y: 3, VX: -1, Mass: 1}

	if res := ResolveElastic(a, b, 0.8, 8); res.Resolved {
		t.Error("Coincident pair has no normal and must be skipped")
	}
}

func TestResolveElasticMassWeighted(t *testing.T) {
	light := &Kinetic{X: 0, Y: 0, VX: 1, Mass: 0.5}
	heavy := &Kinetic{X: 4, Y: 0, VX: 0, Mass: 2}

	res := ResolveElastic(light, heavy, 0.8, 8)

	if !almostEqual(res.After, -0.8*res.Before) {
		t.Errorf("Restitution law violated: before %f after %f", res.Before, res.After)
	}

	pBefore := 0.5*1 + 2*0.0
	pAfter := light.Mass*light.VX + heavy.Mass*heavy.VX
	if !almostEqual(pBefore, pAfter) {
		t.Errorf("Momentum not conserved: %f -> %f", pBefore, pAfter)
	}
}

func TestReflectBoundsX(t *testing.T) {
	tests := []struct {
		name     string
		x, vx    float64
		wantX    float64
		wantVX   float64
		reflects bool
	}{
		{"left wall", -3, -5, 0, 3.5, true},
		{"right wall", 105, 5, 100, -3.5, true},
		{"inside", 50, 5, 50, 5, false},
		{"on edge", 100, 5, 100, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &Kinetic{X: tt.x, VX: tt.vx}
			got := ReflectBoundsX(k, 0, 100, 0.7)
			if got != tt.reflects {
				t.Errorf("Expected reflect=%v, got %v", tt.reflects, got)
			}
			if !almostEqual(k.X, tt.wantX) || !almostEqual(k.VX, tt.wantVX) {
				t.Errorf("Expected x=%f vx=%f, got x=%f vx=%f", tt.wantX, tt.wantVX, k.X, k.VX)
			}
		})
	}
}

func TestReflectGround(t *testing.T) {
	k := &Kinetic{Y: 110, VY: 4}
	if !ReflectGround(k, 100, 0.7) {
		t.Fatal("Expected ground reflection")
	}
	if k.Y != 100 || !almostEqual(k.VY, -2.8) {
		t.Errorf("Expected y=100 vy=-2.8, got y=%f vy=%f", k.Y, k.VY)
	}

	// No ceiling
	k = &Kinetic{Y: -50, VY: -4}
	if ReflectGround(k, 100, 0.7) {
		t.Error("Upper bound should not reflect")
	}
}

func TestLinearFalloff(t *testing.T) {
	if f := LinearFalloff(100, 0); f != 1 {
		t.Errorf("Expected 1 at center, got %f", f)
	}
	if f := LinearFalloff(100, 75); !almostEqual(f, 0.25) {
		t.Errorf("Expected 0.25, got %f", f)
	}
	if f := LinearFalloff(100, 100); f != 0 {
		t.Errorf("Expected 0 at radius, got %f", f)
	}
	if f := LinearFalloff(0, 0); f != 0 {
		t.Errorf("Expected 0 for zero radius, got %f", f)
	}
}

func TestTangentialImpulseIsPerpendicular(t *testing.T) {
	dx, dy := 3.0, 4.0
	ix, iy := TangentialImpulse(dx, dy, 5, 2)
	if !almostEqual(ix*dx+iy*dy, 0) {
		t.Errorf("Tangential impulse has radial component: (%f, %f)", ix, iy)
	}
	if !almostEqual(math.Hypot(ix, iy), 2) {
		t.Errorf("Expected magnitude 2, got %f", math.Hypot(ix, iy))
	}
}

func TestMagneticForceSign(t *testing.T) {
	if f := MagneticForce(0.3, 1, 1, 10); f <= 0 {
		t.Errorf("Like charges should produce positive (repulsive) force, got %f", f)
	}
	if f := MagneticForce(0.3, 1, -1, 10); f >= 0 {
		t.Errorf("Opposite charges should produce negative (attractive) force, got %f", f)
	}
	for _, q := range []float64{-1, 0, 1} {
		if f := MagneticForce(0.3, 0, q, 1); f != 0 {
			t.Errorf("Neutral charge should produce zero force, got %f", f)
		}
	}
}

func TestOrbitalAttraction(t *testing.T) {
	ix, iy := OrbitalAttraction(10, 0, 10, 0.5, 10, 200)
	if !almostEqual(ix, 0.05) || iy != 0 {
		t.Errorf("Expected (0.05, 0), got (%f, %f)", ix, iy)
	}

	ix, iy = OrbitalAttraction(250, 0, 250, 0.5, 10, 200)
	if ix != 0 || iy != 0 {
		t.Error("Expected no attraction outside range")
	}

	ix, iy = OrbitalAttraction(0, 0, 0, 0.5, 10, 200)
	if ix != 0 || iy != 0 {
		t.Error("Expected no attraction at zero distance")
	}
}

func TestIntegrateAndDamp(t *testing.T) {
	k := &Kinetic{X: 1, Y: 2, VX: 3, VY: -4}
	Integrate(k)
	Damp(k, 0.5)
	if k.X != 4 || k.Y != -2 {
		t.Errorf("Expected position (4, -2), got (%f, %f)", k.X, k.Y)
	}
	if k.VX != 1.5 || k.VY != -2 {
		t.Errorf("Expected velocity (1.5, -2), got (%f, %f)", k.VX, k.VY)
	}
}
