package render

// Surface is a 2D canvas-style drawing target in world coordinates
// Alpha travels with each color, there is no persistent composite state
type Surface interface {
	// Clear resets the frame to the background
	Clear()
	// FillCircle draws a solid disc
	FillCircle(x, y, radius float64, c RGBA)
	// StrokeCircle draws a ring of given line width
	StrokeCircle(x, y, radius, width float64, c RGBA)
	// Line draws a straight segment
	Line(x0, y0, x1, y1, width float64, c RGBA)
	// Glow draws a filled disc with a soft additive halo around it
	Glow(x, y, radius float64, c RGBA)
}
