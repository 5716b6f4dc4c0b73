package physics

// OrbitalAttraction returns the impulse pulling a body toward an attractor of given mass
// dx, dy: attractor position relative to the body
// g: gravitational constant; maxRange: interaction cutoff (exclusive)
// Inverse-square falloff, zero outside range or at the singularity
func OrbitalAttraction(dx, dy, dist, g, mass, maxRange float64) (ix, iy float64) {
	if dist <= 0 || dist >= maxRange {
		return 0, 0
	}
	force := InverseSquare(g*mass, dist)
	return RadialImpulse(dx, dy, dist, force)
}
