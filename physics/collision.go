package physics

import "math"

// CollisionResult reports what ResolveElastic did to a pair
type CollisionResult struct {
	Resolved bool    // impulse applied and bodies separated
	NormalX  float64 // contact normal from a to b
	NormalY  float64
	Before   float64 // relative normal velocity (b - a)·n before resolution
	After    float64 // relative normal velocity after resolution
}

// ResolveElastic applies an impulse-based collision response to two overlapping bodies
// contactDist is the distance at which bodies touch; each body is pushed out by half the penetration
// Pairs already separating along the normal, coincident pairs and massless pairs are left untouched
func ResolveElastic(a, b *Kinetic, restitution, contactDist float64) CollisionResult {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return CollisionResult{}
	}

	nx := dx / dist
	ny := dy / dist

	// Relative velocity along normal
	vn := (b.VX-a.VX)*nx + (b.VY-a.VY)*ny
	res := CollisionResult{NormalX: nx, NormalY: ny, Before: vn, After: vn}

	// Already separating
	if vn > 0 {
		return res
	}

	invA := inverseMass(a.Mass)
	invB := inverseMass(b.Mass)
	invSum := invA + invB
	if invSum == 0 {
		return res
	}

	// Impulse scalar: j = -(1 + e) * vn / (1/mA + 1/mB)
	j := -(1 + restitution) * vn / invSum

	a.VX -= j * invA * nx
	a.VY -= j * invA * ny
	b.VX += j * invB * nx
	b.VY += j * invB * ny

	// Positional correction, half the penetration each
	if overlap := contactDist - dist; overlap > 0 {
		sx := nx * overlap * 0.5
		sy := ny * overlap * 0.5
		a.X -= sx
		a.Y -= sy
		b.X += sx
		b.Y += sy
	}

	res.Resolved = true
	res.After = (b.VX-a.VX)*nx + (b.VY-a.VY)*ny
	return res
}

func inverseMass(m float64) float64 {
	if m <= 0 {
		return 0
	}
	return 1 / m
}
