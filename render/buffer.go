package render

import "math"

// Glyphs used by the cell rasterizer
const (
	GlyphEmpty    = ' '
	GlyphParticle = '●'
	GlyphRing     = '·'
)

// glowHaloScale is the halo radius relative to the core radius
const glowHaloScale = 3.0

// glowHaloAlpha is the additive strength at the halo center
const glowHaloAlpha = 0.35

// Cell is one terminal character of the composed frame
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// CellBuffer rasterizes world-space draw calls into a character grid
// Each cell covers scaleX by scaleY world units; cell centers are the sample points
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
	scaleX float64
	scaleY float64
	bg     RGB
}

// NewCellBuffer creates a buffer with the specified dimensions and world scale
func NewCellBuffer(width, height int, scaleX, scaleY float64, bg RGB) *CellBuffer {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	b := &CellBuffer{
		scaleX: scaleX,
		scaleY: scaleY,
		bg:     bg,
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Bounds returns buffer dimensions in cells
func (b *CellBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// WorldSize returns the world-space extent covered by the buffer
func (b *CellBuffer) WorldSize() (float64, float64) {
	return float64(b.width) * b.scaleX, float64(b.height) * b.scaleY
}

// CellToWorld returns the world coordinates of a cell center
func (b *CellBuffer) CellToWorld(cx, cy int) (x, y float64) {
	return (float64(cx) + 0.5) * b.scaleX, (float64(cy) + 0.5) * b.scaleY
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Clear resets all cells to empty using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: GlyphEmpty, Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// FillCircle blends every cell whose center lies inside the disc
// Discs smaller than a cell tint the cell containing their center
func (b *CellBuffer) FillCircle(x, y, radius float64, c RGBA) {
	if c.A <= 0 {
		return
	}
	hit := false
	b.forCells(x, y, radius, func(cell *Cell, d float64) {
		if d <= radius {
			cell.Bg = Blend(cell.Bg, c.RGB, c.A)
			hit = true
		}
	})
	if !hit {
		if cell := b.cellAt(x, y); cell != nil {
			cell.Bg = Blend(cell.Bg, c.RGB, c.A)
		}
	}
}

// StrokeCircle plots ring glyphs on cells whose center lies within the stroke band
func (b *CellBuffer) StrokeCircle(x, y, radius, width float64, c RGBA) {
	if c.A <= 0 || radius <= 0 {
		return
	}
	tol := math.Max(width/2, math.Min(b.scaleX, b.scaleY)/2)
	b.forCells(x, y, radius+tol, func(cell *Cell, d float64) {
		if math.Abs(d-radius) <= tol {
			plotGlyph(cell, GlyphRing, c)
		}
	})
}

// Line walks the segment in half-cell steps and plots slope glyphs
func (b *CellBuffer) Line(x0, y0, x1, y1, width float64, c RGBA) {
	if c.A <= 0 {
		return
	}
	glyph := slopeGlyph((x1-x0)/b.scaleX, (y1-y0)/b.scaleY)

	step := math.Min(b.scaleX, b.scaleY) / 2
	length := math.Hypot(x1-x0, y1-y0)
	n := int(length/step) + 1

	lastX, lastY := -1, -1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		cx, cy := b.toCell(x0+(x1-x0)*t, y0+(y1-y0)*t)
		if cx == lastX && cy == lastY {
			continue
		}
		lastX, lastY = cx, cy
		if b.inBounds(cx, cy) {
			plotGlyph(&b.cells[cy*b.width+cx], glyph, c)
		}
	}
}

// Glow draws an additive halo then the solid core with a particle glyph at the center
func (b *CellBuffer) Glow(x, y, radius float64, c RGBA) {
	if c.A <= 0 {
		return
	}
	halo := math.Max(radius*glowHaloScale, math.Min(b.scaleX, b.scaleY))
	b.forCells(x, y, halo, func(cell *Cell, d float64) {
		if d < halo {
			cell.Bg = Add(cell.Bg, c.RGB, c.A*glowHaloAlpha*(1-d/halo))
		}
	})

	b.FillCircle(x, y, radius, c)

	if cell := b.cellAt(x, y); cell != nil {
		cell.Rune = GlyphParticle
		cell.Fg = Blend(cell.Bg, c.RGB, math.Max(c.A, 0.5))
	}
}

// inBounds returns true if in buffer bounds
func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// toCell maps world coordinates to the containing cell
func (b *CellBuffer) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / b.scaleX)), int(math.Floor(y / b.scaleY))
}

// cellAt returns the cell containing the world point, nil when clipped
func (b *CellBuffer) cellAt(x, y float64) *Cell {
	cx, cy := b.toCell(x, y)
	if !b.inBounds(cx, cy) {
		return nil
	}
	return &b.cells[cy*b.width+cx]
}

// forCells visits in-bounds cells overlapping the square around (x, y) with their center distance
func (b *CellBuffer) forCells(x, y, reach float64, fn func(cell *Cell, d float64)) {
	minX, minY := b.toCell(x-reach, y-reach)
	maxX, maxY := b.toCell(x+reach, y+reach)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, b.width-1), min(maxY, b.height-1)

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			wx, wy := b.CellToWorld(cx, cy)
			fn(&b.cells[cy*b.width+cx], math.Hypot(wx-x, wy-y))
		}
	}
}

// plotGlyph writes a glyph, blending its foreground over what is already visible in the cell
func plotGlyph(cell *Cell, glyph rune, c RGBA) {
	base := cell.Bg
	if cell.Rune != GlyphEmpty && cell.Rune != 0 {
		base = cell.Fg
	}
	cell.Rune = glyph
	cell.Fg = Blend(base, c.RGB, c.A)
}

// slopeGlyph picks a line character for a direction in cell space
func slopeGlyph(dx, dy float64) rune {
	if dx == 0 && dy == 0 {
		return GlyphRing
	}
	angle := math.Atan2(-dy, dx) // screen Y grows downward
	if angle < 0 {
		angle += math.Pi
	}
	switch {
	case angle < math.Pi/8 || angle >= 7*math.Pi/8:
		return '─'
	case angle < 3*math.Pi/8:
		return '╱'
	case angle < 5*math.Pi/8:
		return '│'
	default:
		return '╲'
	}
}
