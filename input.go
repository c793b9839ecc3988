package pix

import "image"

// MouseButton identifies a mouse button in events.
type MouseButton int

// Mouse buttons.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ClickEvent describes a mouse button press.
//
// Window is the cursor position in window space and Physical the same
// position in device pixels. When the cursor is inside the mapped surface
// region, Inside is true and Pixel holds the surface coordinate;
// otherwise Pixel is meaningless.
type ClickEvent struct {
	Button   MouseButton
	Window   Point
	Physical Point
	Pixel    image.Point
	Inside   bool
}

// KeyEvent describes a key press or release.
//
// Name is the key identity (e.g. "Escape", "A"). Repeat is true for
// synthesized repeats of a held key; a repeat is always a press.
type KeyEvent struct {
	Name    string
	Pressed bool
	Repeat  bool
}

// ResizeEvent describes a window resize, in physical (device pixel)
// dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

// InputState is the input snapshot handed to Sim.Update once per tick.
//
// The run loop rebuilds the snapshot at the start of every tick, so
// Update always sees a consistent view of the input: the cursor position
// and all press/release edges that arrived since the previous tick, in
// arrival order. The pointer passed to Update is only valid for the
// duration of the call; copy the struct to retain it.
type InputState struct {
	// Tick counts update ticks since the run loop started.
	Tick uint64

	// Cursor is the current cursor position in window space.
	Cursor Point

	// Pixel is the surface coordinate under the cursor when Inside.
	Pixel image.Point

	// Inside reports whether the cursor is within the mapped surface
	// region.
	Inside bool

	// Clicks holds the button presses of this tick.
	Clicks []ClickEvent

	// Keys holds the key edges of this tick, including synthesized
	// repeats.
	Keys []KeyEvent

	// Resize is non-nil when the window size changed since the
	// previous tick.
	Resize *ResizeEvent
}

// KeyPressed reports whether a press edge (including repeats) for the
// named key is in this snapshot.
func (in *InputState) KeyPressed(name string) bool {
	for _, k := range in.Keys {
		if k.Name == name && k.Pressed {
			return true
		}
	}
	return false
}

// KeyReleased reports whether a release edge for the named key is in
// this snapshot.
func (in *InputState) KeyReleased(name string) bool {
	for _, k := range in.Keys {
		if k.Name == name && !k.Pressed {
			return true
		}
	}
	return false
}

// Clicked reports whether the given button was pressed this tick and, if
// so, returns the event.
func (in *InputState) Clicked(b MouseButton) (ClickEvent, bool) {
	for _, c := range in.Clicks {
		if c.Button == b {
			return c, true
		}
	}
	return ClickEvent{}, false
}
