package pix

import "log/slog"

// Observer receives diagnostic notifications from the run loop. It
// decouples diagnostics from event dispatch: the loop reports what
// happened, the observer decides whether and where to print it.
//
// Observers are called on the loop thread and must not block.
type Observer interface {
	// Click is called on every mouse button press.
	Click(ev ClickEvent)

	// Key is called on every key press, release, and synthesized
	// repeat.
	Key(ev KeyEvent)

	// Resize is called when the window size changes, with the new
	// physical dimensions.
	Resize(ev ResizeEvent)
}

// NopObserver discards all notifications. It is the default.
type NopObserver struct{}

func (NopObserver) Click(ClickEvent)   {}
func (NopObserver) Key(KeyEvent)       {}
func (NopObserver) Resize(ResizeEvent) {}

// LogObserver writes notifications to a slog.Logger at info level.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an observer logging to l. A nil l uses the
// package logger (see SetLogger).
func NewLogObserver(l *slog.Logger) *LogObserver {
	return &LogObserver{logger: l}
}

func (o *LogObserver) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

// Click logs the physical cursor position and, when the click landed in
// the mapped surface region, the surface pixel coordinate. Clicks in the
// letterbox region are reported as not within the surface.
func (o *LogObserver) Click(ev ClickEvent) {
	if ev.Inside {
		o.log().Info("mouse clicked",
			"button", ev.Button.String(),
			"physical_x", ev.Physical.X,
			"physical_y", ev.Physical.Y,
			"pixel_x", ev.Pixel.X,
			"pixel_y", ev.Pixel.Y,
		)
		return
	}
	o.log().Info("mouse clicked, not within surface",
		"button", ev.Button.String(),
		"physical_x", ev.Physical.X,
		"physical_y", ev.Physical.Y,
	)
}

// Key logs the key identity, press/release state, and repeat flag.
func (o *LogObserver) Key(ev KeyEvent) {
	state := "released"
	if ev.Pressed {
		state = "pressed"
	}
	o.log().Info("key "+state,
		"key", ev.Name,
		"repeat", ev.Repeat,
	)
}

// Resize logs the new physical window dimensions.
func (o *LogObserver) Resize(ev ResizeEvent) {
	o.log().Info("resized",
		"width", ev.Width,
		"height", ev.Height,
	)
}

// Observers fans notifications out to each observer in order.
type Observers []Observer

func (os Observers) Click(ev ClickEvent) {
	for _, o := range os {
		o.Click(ev)
	}
}

func (os Observers) Key(ev KeyEvent) {
	for _, o := range os {
		o.Key(ev)
	}
}

func (os Observers) Resize(ev ResizeEvent) {
	for _, o := range os {
		o.Resize(ev)
	}
}
