package app

import (
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/pix"
)

// mouseButtons maps ebiten buttons to pix buttons, in poll order.
var mouseButtons = []struct {
	eb ebiten.MouseButton
	pb pix.MouseButton
}{
	{ebiten.MouseButtonLeft, pix.MouseLeft},
	{ebiten.MouseButtonRight, pix.MouseRight},
	{ebiten.MouseButtonMiddle, pix.MouseMiddle},
}

// game adapts a pix.Sim to the ebiten run loop.
type game struct {
	sim      pix.Sim
	surface  *pix.Surface
	observer pix.Observer

	// img mirrors the surface frame on the GPU for presenting.
	img *ebiten.Image

	// winW and winH are the current logical window size, tracked by
	// Layout.
	winW, winH int

	// lastW and lastH detect resizes between ticks.
	lastW, lastH int

	// Key repeat synthesis, in ticks.
	repeatDelay    int
	repeatInterval int

	tick uint64
	in   pix.InputState

	// Scratch buffers reused across ticks to avoid per-tick allocation.
	keyBuf []ebiten.Key
	pm     []uint8
}

// Update runs one fixed-interval tick: snapshot input, notify the
// observer, then advance the sim.
func (g *game) Update() error {
	g.tick++
	scale := ebiten.Monitor().DeviceScaleFactor()
	vp := pix.Fit(g.surface.Width(), g.surface.Height(), g.winW, g.winH)

	cx, cy := ebiten.CursorPosition()
	cursor := pix.Pt(float64(cx), float64(cy))

	in := pix.InputState{
		Tick:   g.tick,
		Cursor: cursor,
	}
	if p, err := vp.WindowToSurface(cursor); err == nil {
		in.Pixel = p
		in.Inside = true
	}

	// Resize detection. The first tick reports the initial size, like
	// the initial resize event a platform window delivers.
	if g.winW != g.lastW || g.winH != g.lastH {
		g.lastW, g.lastH = g.winW, g.winH
		ev := pix.ResizeEvent{
			Width:  int(math.Round(float64(g.winW) * scale)),
			Height: int(math.Round(float64(g.winH) * scale)),
		}
		in.Resize = &ev
		g.observer.Resize(ev)
	}

	for _, b := range mouseButtons {
		if !inpututil.IsMouseButtonJustPressed(b.eb) {
			continue
		}
		ev := pix.ClickEvent{
			Button:   b.pb,
			Window:   cursor,
			Physical: cursor.Mul(scale),
			Pixel:    in.Pixel,
			Inside:   in.Inside,
		}
		in.Clicks = append(in.Clicks, ev)
		g.observer.Click(ev)
	}

	// Press edges first, then synthesized repeats, then releases.
	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		ev := pix.KeyEvent{Name: k.String(), Pressed: true}
		in.Keys = append(in.Keys, ev)
		g.observer.Key(ev)
	}
	g.keyBuf = inpututil.AppendPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		if !repeatFires(inpututil.KeyPressDuration(k), g.repeatDelay, g.repeatInterval) {
			continue
		}
		ev := pix.KeyEvent{Name: k.String(), Pressed: true, Repeat: true}
		in.Keys = append(in.Keys, ev)
		g.observer.Key(ev)
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		ev := pix.KeyEvent{Name: k.String(), Pressed: false}
		in.Keys = append(in.Keys, ev)
		g.observer.Key(ev)
	}

	g.in = in
	if err := g.sim.Update(&g.in); err != nil {
		if errors.Is(err, pix.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw calls the sim's draw hook on the raw frame and presents the
// surface scaled into the window, letterboxed with the clear color.
// The frame is not cleared first; see pix.Sim.
func (g *game) Draw(screen *ebiten.Image) {
	g.sim.Draw(g.surface.Frame())
	// The frame is straight-alpha RGBA; the GPU texture wants
	// premultiplied.
	g.pm = premultiply(g.pm, g.surface.Frame())
	g.img.WritePixels(g.pm)

	screen.Fill(g.surface.ClearColor().Color())

	b := screen.Bounds()
	vp := pix.Fit(g.surface.Width(), g.surface.Height(), b.Dx(), b.Dy())
	if vp.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(vp.Scale(), vp.Scale())
	origin := vp.SurfaceToWindow(0, 0)
	op.GeoM.Translate(origin.X, origin.Y)
	screen.DrawImage(g.img, op)
}

// Layout tracks the logical window size and uses it as the render
// canvas, so cursor coordinates and the presented frame share one
// coordinate space.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.winW, g.winH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// premultiply converts straight-alpha RGBA bytes into premultiplied
// form, reusing dst when it is large enough, and returns the converted
// slice. Opaque pixels copy through unchanged.
func premultiply(dst, src []uint8) []uint8 {
	if cap(dst) < len(src) {
		dst = make([]uint8, len(src))
	}
	dst = dst[:len(src)]
	for i := 0; i+3 < len(src); i += 4 {
		a := uint32(src[i+3])
		if a == 0xff {
			copy(dst[i:i+4], src[i:i+4])
			continue
		}
		dst[i+0] = uint8(uint32(src[i+0]) * a / 0xff)
		dst[i+1] = uint8(uint32(src[i+1]) * a / 0xff)
		dst[i+2] = uint8(uint32(src[i+2]) * a / 0xff)
		dst[i+3] = src[i+3]
	}
	return dst
}

// repeatFires reports whether a key held for d ticks fires a synthesized
// repeat this tick. The initial press (d == 1) is an edge, not a repeat.
func repeatFires(d, delay, interval int) bool {
	if interval <= 0 {
		return false
	}
	return d > delay && (d-delay)%interval == 0
}
