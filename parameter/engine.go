package parameter

import "time"

// Frame loop timing
const (
	// DefaultFPS is the host frame rate, the per-step tuning assumes ~60 steps per second
	DefaultFPS = 60

	// MinFPS and MaxFPS bound configured frame rates
	MinFPS = 1
	MaxFPS = 240

	// FrameUpdateInterval is the frame interval at DefaultFPS
	FrameUpdateInterval = time.Second / DefaultFPS
)

// Terminal host settings
const (
	// CellScaleX and CellScaleY are world units per terminal cell
	// Cells are roughly twice as tall as wide, 8x16 keeps pixel tuning intact
	CellScaleX = 8.0
	CellScaleY = 16.0

	// InputQueueSize buffers host input between the event goroutine and the loop
	InputQueueSize = 64

	// StatsInterval is the number of frames between headless stats lines
	StatsInterval = 60

	// DefaultHeadlessFrames is the run length of headless mode
	DefaultHeadlessFrames = 600

	// HeadlessWidth and HeadlessHeight are the viewport used without a screen
	HeadlessWidth  = 800.0
	HeadlessHeight = 600.0
)

// Window host settings
const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "particlefield"
)
