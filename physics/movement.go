package physics

// Force helpers return velocity impulses for a body at distance dist from a source
// dx, dy point from the body to the source; all callers guard dist > 0

// LinearFalloff returns 1 at the center fading to 0 at radius, 0 outside
func LinearFalloff(radius, dist float64) float64 {
	if radius <= 0 || dist >= radius {
		return 0
	}
	return (radius - dist) / radius
}

// RadialImpulse returns impulse of magnitude force along (dx, dy)
// Positive force pulls toward the source, negative pushes away
func RadialImpulse(dx, dy, dist, force float64) (ix, iy float64) {
	if dist <= 0 {
		return 0, 0
	}
	return dx / dist * force, dy / dist * force
}

// TangentialImpulse returns impulse perpendicular to the radius vector (rotation, no attraction)
func TangentialImpulse(dx, dy, dist, force float64) (ix, iy float64) {
	if dist <= 0 {
		return 0, 0
	}
	return -dy / dist * force, dx / dist * force
}

// InverseSquare returns coefficient / dist², zero at dist 0
func InverseSquare(coefficient, dist float64) float64 {
	if dist <= 0 {
		return 0
	}
	return coefficient / (dist * dist)
}

// MagneticForce returns signed pair force k*q1*q2/dist²
// Positive result means like charges (repulsion), negative means attraction
func MagneticForce(k, q1, q2, dist float64) float64 {
	return InverseSquare(k*q1*q2, dist)
}
