package vmath

import "math"

// Float helpers for world-space (canvas unit) math. The simulation is decorative,
// so plain float64 replaces the fixed-point domain used by grid-bound games

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the delta from (ax, ay) to (bx, by) and its length
func Distance(ax, ay, bx, by float64) (dx, dy, dist float64) {
	dx = bx - ax
	dy = by - ay
	return dx, dy, math.Sqrt(dx*dx + dy*dy)
}

// FromAngle returns the vector of given length pointing at angle (radians)
func FromAngle(angle, length float64) (x, y float64) {
	return math.Cos(angle) * length, math.Sin(angle) * length
}

// --- Randomness ---

// FastRand is a xorshift64 generator, seedable for deterministic runs
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
