// Package demo is the scaffold sim: a static rectangle, an update hook
// that does nothing, and optional cursor diagnostics drawn into the
// frame.
package demo

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pix"
)

// The rectangle the draw hook paints: exclusive bounds on both ends,
// solid pale yellow.
const (
	rectMin = 50
	rectMax = 100
)

var rectColor = [4]uint8{0xff, 0xff, 0x50, 0xff}

// Thing is the scaffold simulation. Draw paints a fixed rectangle and
// deliberately leaves every other pixel untouched, so previous-frame
// contents persist outside it. Update records the input snapshot and
// otherwise does nothing; Escape quits.
type Thing struct {
	width   int
	height  int
	overlay bool
	last    pix.InputState
}

// Option configures a Thing.
type Option func(*Thing)

// WithOverlay enables drawing the cursor's surface coordinate into the
// top-left corner of the frame.
func WithOverlay(enabled bool) Option {
	return func(t *Thing) {
		t.overlay = enabled
	}
}

// New creates the scaffold sim for a surface of the given logical
// dimensions.
func New(width, height int, opts ...Option) *Thing {
	t := &Thing{width: width, height: height}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Update stores the snapshot for the overlay. Escape ends the run.
func (t *Thing) Update(in *pix.InputState) error {
	t.last = *in
	if in.KeyPressed("Escape") {
		return pix.ErrQuit
	}
	return nil
}

// Draw paints the rectangle. The frame is not cleared first, and no
// pixel outside the rectangle (and the optional overlay) is written.
func (t *Thing) Draw(frame []uint8) {
	for i := 0; i+3 < len(frame); i += 4 {
		x := (i / 4) % t.width
		y := (i / 4) / t.width
		if x > rectMin && x < rectMax && y > rectMin && y < rectMax {
			frame[i+0] = rectColor[0]
			frame[i+1] = rectColor[1]
			frame[i+2] = rectColor[2]
			frame[i+3] = rectColor[3]
		}
	}
	if t.overlay {
		t.drawOverlay(frame)
	}
}

// drawOverlay rasterizes the cursor position into the frame with the
// basicfont bitmap face.
func (t *Thing) drawOverlay(frame []uint8) {
	text := "outside"
	if t.last.Inside {
		text = fmt.Sprintf("%d,%d", t.last.Pixel.X, t.last.Pixel.Y)
	}

	dst := &image.RGBA{
		Pix:    frame,
		Stride: 4 * t.width,
		Rect:   image.Rect(0, 0, t.width, t.height),
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		// The dot is the baseline; one glyph height down keeps the
		// text fully inside the frame.
		Dot: fixed.P(2, basicfont.Face7x13.Height),
	}
	d.DrawString(text)
}
