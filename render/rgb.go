package render

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBA is a color with straight (non-premultiplied) alpha in [0, 1]
type RGBA struct {
	RGB
	A float64
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Alpha attaches an opacity to the color
func (c RGB) Alpha(a float64) RGBA {
	return RGBA{RGB: c, A: a}
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Scale returns the color with alpha multiplied by factor
func (c RGBA) Scale(factor float64) RGBA {
	c.A *= factor
	return c
}

// clamp converts float to uint8 efficiently
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	// Pre-calculate invariant
	inv := 1.0 - alpha

	return RGB{
		R: clamp(float64(src.R)*alpha + float64(c.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(c.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Add performs additive blend scaled by alpha, clamped per channel
// Used for glow halos so overlapping particles brighten instead of occluding
func Add(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	if alpha > 1.0 {
		alpha = 1.0
	}
	return RGB{
		R: clamp(float64(c.R) + float64(src.R)*alpha),
		G: clamp(float64(c.G) + float64(src.G)*alpha),
		B: clamp(float64(c.B) + float64(src.B)*alpha),
	}
}
