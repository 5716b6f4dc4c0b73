package render

// DrawOp identifies a recorded Surface call
type DrawOp uint8

const (
	OpClear DrawOp = iota
	OpFillCircle
	OpStrokeCircle
	OpLine
	OpGlow
)

var drawOpNames = [...]string{"clear", "fill", "stroke", "line", "glow"}

func (o DrawOp) String() string {
	if int(o) < len(drawOpNames) {
		return drawOpNames[o]
	}
	return "unknown"
}

// DrawCall is one recorded Surface call
// Circles use X, Y, Radius; lines use X, Y, X1, Y1
type DrawCall struct {
	Op     DrawOp
	X, Y   float64
	X1, Y1 float64
	Radius float64
	Width  float64
	Color  RGBA
}

// Recorder is a Surface that keeps the draw calls of the current frame
// Used by headless runs and tests
type Recorder struct {
	Calls  []DrawCall
	frames uint64
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{Calls: make([]DrawCall, 0, 256)}
}

func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.frames++
	r.Calls = append(r.Calls, DrawCall{Op: OpClear})
}

func (r *Recorder) FillCircle(x, y, radius float64, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpFillCircle, X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) StrokeCircle(x, y, radius, width float64, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpStrokeCircle, X: x, Y: y, Radius: radius, Width: width, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

func (r *Recorder) Glow(x, y, radius float64, c RGBA) {
	r.Calls = append(r.Calls, DrawCall{Op: OpGlow, X: x, Y: y, Radius: radius, Color: c})
}

// Frames returns how many frames were cleared so far
func (r *Recorder) Frames() uint64 {
	return r.frames
}

// Count returns the number of recorded calls of op in the current frame
func (r *Recorder) Count(op DrawOp) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns recorded calls of op in draw order
func (r *Recorder) Filter(op DrawOp) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
