package pix

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Surface is a pixel buffer at a fixed logical resolution, independent of
// the size of the window it is eventually presented into.
//
// The buffer is raw non-premultiplied RGBA, 4 bytes per pixel, row-major:
// len(Frame()) == Width()*Height()*4. The buffer is never cleared
// implicitly; contents persist across frames until overwritten.
type Surface struct {
	width  int
	height int
	frame  []uint8
	clear  RGBA
}

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithClearColor sets the letterbox clear color used when the surface is
// presented into a destination with a different aspect ratio. It does not
// affect the buffer contents. The default is a dark blue-gray
// (0.1, 0.1, 0.15, 1.0).
func WithClearColor(c RGBA) SurfaceOption {
	return func(s *Surface) {
		s.clear = c
	}
}

// NewSurface creates a surface with the given logical dimensions.
// Returns ErrInvalidDimensions if width or height is not positive.
func NewSurface(width, height int, opts ...SurfaceOption) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	s := &Surface{
		width:  width,
		height: height,
		frame:  make([]uint8, width*height*4),
		clear:  RGBA{R: 0.1, G: 0.1, B: 0.15, A: 1.0},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Width returns the logical width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the logical height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Frame returns the raw pixel buffer (RGBA format). Draw hooks write
// into this slice directly; mutations are visible on the next present.
func (s *Surface) Frame() []uint8 {
	return s.frame
}

// ClearColor returns the letterbox clear color.
func (s *Surface) ClearColor() RGBA {
	return s.clear
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.frame[i+0], s.frame[i+1], s.frame[i+2], s.frame[i+3] = c.Bytes()
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (s *Surface) GetPixel(x, y int) RGBA {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return RGBA{
		R: float64(s.frame[i+0]) / 255,
		G: float64(s.frame[i+1]) / 255,
		B: float64(s.frame[i+2]) / 255,
		A: float64(s.frame[i+3]) / 255,
	}
}

// Fill overwrites the entire buffer with a color. This is the explicit
// clear operation; nothing clears the buffer automatically.
func (s *Surface) Fill(c RGBA) {
	r, g, b, a := c.Bytes()
	for i := 0; i < len(s.frame); i += 4 {
		s.frame[i+0] = r
		s.frame[i+1] = g
		s.frame[i+2] = b
		s.frame[i+3] = a
	}
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface, so text rasterizers and other
// stdlib drawing code can target the surface directly.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage copies the buffer into a new image.RGBA.
func (s *Surface) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.frame)
	return img
}

// SavePNG saves the current frame to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, s.ToImage())
}
