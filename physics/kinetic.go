package physics

// Kinetic holds the integrable state of a point mass in world units
// Velocity is expressed in units per step, the host frame is the time base
type Kinetic struct {
	X, Y   float64
	VX, VY float64
	Mass   float64
}

// Integrate advances position by one step of velocity
func Integrate(k *Kinetic) {
	k.X += k.VX
	k.Y += k.VY
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *Kinetic, vx, vy float64) {
	k.VX += vx
	k.VY += vy
}

// Damp scales velocity by friction factor, 1 = no loss
func Damp(k *Kinetic, friction float64) {
	k.VX *= friction
	k.VY *= friction
}

// ReflectBoundsX handles horizontal boundary collision, returns true if reflection occurred
// Velocity is negated and scaled by restitution, position clamped into [minX, maxX]
func ReflectBoundsX(k *Kinetic, minX, maxX, restitution float64) bool {
	if k.X >= minX && k.X <= maxX {
		return false
	}
	k.VX *= -restitution
	if k.X < minX {
		k.X = minX
	} else {
		k.X = maxX
	}
	return true
}

// ReflectGround handles lower boundary collision, there is no ceiling
func ReflectGround(k *Kinetic, maxY, restitution float64) bool {
	if k.Y <= maxY {
		return false
	}
	k.VY *= -restitution
	k.Y = maxY
	return true
}
