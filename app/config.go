package app

import (
	"math"
	"time"

	"github.com/gogpu/pix"
)

// Default geometry and timing, matching the classic scaffold: a 640x480
// window over a 320x240 surface, updated every 15 ms.
const (
	DefaultWindowWidth   = 640
	DefaultWindowHeight  = 480
	DefaultSurfaceWidth  = 320
	DefaultSurfaceHeight = 240
	DefaultTickInterval  = 15 * time.Millisecond
)

// Key repeat synthesis for held keys.
const (
	keyRepeatDelay    = 500 * time.Millisecond
	keyRepeatInterval = 50 * time.Millisecond
)

// Config describes the window and loop. Build one with DefaultConfig and
// the With* methods:
//
//	cfg := app.DefaultConfig().WithTitle("demo").WithTickInterval(10 * time.Millisecond)
type Config struct {
	// Title is the window title.
	Title string

	// WindowWidth and WindowHeight are the initial logical window size.
	WindowWidth  int
	WindowHeight int

	// SurfaceWidth and SurfaceHeight are the fixed logical resolution of
	// the pixel surface. They are also the window's minimum size floor:
	// the window cannot shrink below the surface.
	SurfaceWidth  int
	SurfaceHeight int

	// TickInterval is the fixed update interval.
	TickInterval time.Duration

	// Resizable allows resizing the window above the surface floor.
	Resizable bool

	// Observer receives diagnostic events. Nil means pix.NopObserver.
	Observer pix.Observer

	// ClearColor fills the letterbox region around the scaled surface.
	ClearColor pix.RGBA
}

// DefaultConfig returns the scaffold defaults.
func DefaultConfig() Config {
	return Config{
		Title:         "pix",
		WindowWidth:   DefaultWindowWidth,
		WindowHeight:  DefaultWindowHeight,
		SurfaceWidth:  DefaultSurfaceWidth,
		SurfaceHeight: DefaultSurfaceHeight,
		TickInterval:  DefaultTickInterval,
		Resizable:     true,
		ClearColor:    pix.RGBA{R: 0.1, G: 0.1, B: 0.15, A: 1.0},
	}
}

// WithTitle sets the window title.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithWindowSize sets the initial logical window size.
func (c Config) WithWindowSize(width, height int) Config {
	c.WindowWidth = width
	c.WindowHeight = height
	return c
}

// WithSurfaceSize sets the logical resolution of the pixel surface.
func (c Config) WithSurfaceSize(width, height int) Config {
	c.SurfaceWidth = width
	c.SurfaceHeight = height
	return c
}

// WithTickInterval sets the fixed update interval.
func (c Config) WithTickInterval(d time.Duration) Config {
	c.TickInterval = d
	return c
}

// WithResizable enables or disables window resizing.
func (c Config) WithResizable(resizable bool) Config {
	c.Resizable = resizable
	return c
}

// WithObserver sets the diagnostic observer.
func (c Config) WithObserver(o pix.Observer) Config {
	c.Observer = o
	return c
}

// WithClearColor sets the letterbox clear color.
func (c Config) WithClearColor(col pix.RGBA) Config {
	c.ClearColor = col
	return c
}

// validate reports configuration errors before any window is opened.
func (c Config) validate() error {
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		return pix.ErrInvalidDimensions
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return pix.ErrInvalidDimensions
	}
	if c.TickInterval <= 0 {
		return errInvalidTickInterval
	}
	return nil
}

// tps converts the tick interval to whole ticks per second, clamped to
// at least 1.
func (c Config) tps() int {
	return tpsFor(c.TickInterval)
}

// tpsFor converts a tick interval to ticks per second.
func tpsFor(d time.Duration) int {
	if d <= 0 {
		return 1
	}
	tps := int(math.Round(float64(time.Second) / float64(d)))
	if tps < 1 {
		return 1
	}
	return tps
}

// ticksFor converts a duration to a whole number of ticks of the given
// interval, clamped to at least floor.
func ticksFor(d, tick time.Duration, floor int) int {
	if tick <= 0 {
		return floor
	}
	n := int(math.Round(float64(d) / float64(tick)))
	if n < floor {
		return floor
	}
	return n
}
