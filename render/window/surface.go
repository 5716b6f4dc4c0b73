// Package window draws frames into an ebiten image for the desktop host
package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/particlefield/render"
)

// Glow halo shape
const (
	haloRings = 4
	haloScale = 3.0
	haloAlpha = 0.12
)

// Surface adapts an ebiten image to render.Surface
// The target image is swapped every frame via SetTarget
type Surface struct {
	target *ebiten.Image
	bg     render.RGB
}

// NewSurface creates a surface that clears to bg
func NewSurface(bg render.RGB) *Surface {
	return &Surface{bg: bg}
}

// SetTarget sets the image that subsequent draw calls write into
func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

func (s *Surface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(color.NRGBA{s.bg.R, s.bg.G, s.bg.B, 255})
}

func (s *Surface) FillCircle(x, y, radius float64, c render.RGBA) {
	if s.target == nil || c.A <= 0 || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.target, float32(x), float32(y), float32(radius), toNRGBA(c), true)
}

func (s *Surface) StrokeCircle(x, y, radius, width float64, c render.RGBA) {
	if s.target == nil || c.A <= 0 || radius <= 0 {
		return
	}
	vector.StrokeCircle(s.target, float32(x), float32(y), float32(radius), float32(width), toNRGBA(c), true)
}

func (s *Surface) Line(x0, y0, x1, y1, width float64, c render.RGBA) {
	if s.target == nil || c.A <= 0 {
		return
	}
	vector.StrokeLine(s.target, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), toNRGBA(c), true)
}

// Glow stacks translucent discs out to haloScale times the radius, then the solid core
func (s *Surface) Glow(x, y, radius float64, c render.RGBA) {
	if s.target == nil || c.A <= 0 || radius <= 0 {
		return
	}
	for i := haloRings; i > 0; i-- {
		r := radius + (radius*haloScale-radius)*float64(i)/haloRings
		s.FillCircle(x, y, r, c.Scale(haloAlpha))
	}
	s.FillCircle(x, y, radius, c)
}

// toNRGBA converts straight alpha in [0, 1] to an 8-bit non-premultiplied color
func toNRGBA(c render.RGBA) color.NRGBA {
	a := math.Round(math.Max(0, math.Min(1, c.A)) * 255)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)}
}
