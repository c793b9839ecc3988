package pix

import (
	"image"
	"math"
)

// Viewport maps between window space and surface space.
//
// A viewport describes where a surface of a given logical size lands
// inside a destination of a given size: the largest aspect-preserving
// scaled rectangle, centered. The strip of destination outside that
// rectangle is the letterbox region and maps to no surface pixel.
type Viewport struct {
	srcW, srcH int
	dstW, dstH int
	scale      float64
	offX, offY float64
}

// Fit computes the viewport for a srcW x srcH surface presented into a
// dstW x dstH destination. A degenerate source or destination (zero or
// negative in either dimension) yields an empty viewport for which every
// point is outside the surface.
func Fit(srcW, srcH, dstW, dstH int) Viewport {
	vp := Viewport{srcW: srcW, srcH: srcH, dstW: dstW, dstH: dstH}
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return vp
	}
	vp.scale = math.Min(
		float64(dstW)/float64(srcW),
		float64(dstH)/float64(srcH),
	)
	vp.offX = (float64(dstW) - float64(srcW)*vp.scale) / 2
	vp.offY = (float64(dstH) - float64(srcH)*vp.scale) / 2
	return vp
}

// Scale returns the window-pixels-per-surface-pixel factor.
// Zero for an empty viewport.
func (v Viewport) Scale() float64 {
	return v.scale
}

// Empty reports whether the viewport maps no surface pixels.
func (v Viewport) Empty() bool {
	return v.scale <= 0
}

// Rect returns the mapped surface region in window space, rounded to
// whole pixels. Empty viewports return the zero rectangle.
func (v Viewport) Rect() image.Rectangle {
	if v.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Round(v.offX)),
		int(math.Round(v.offY)),
		int(math.Round(v.offX+float64(v.srcW)*v.scale)),
		int(math.Round(v.offY+float64(v.srcH)*v.scale)),
	)
}

// WindowToSurface maps a window-space point to the surface pixel it
// covers. Returns ErrOutsideSurface when the point falls in the letterbox
// region, outside the destination, or the viewport is empty.
func (v Viewport) WindowToSurface(p Point) (image.Point, error) {
	if v.Empty() {
		return image.Point{}, ErrOutsideSurface
	}
	x := int(math.Floor((p.X - v.offX) / v.scale))
	y := int(math.Floor((p.Y - v.offY) / v.scale))
	if x < 0 || x >= v.srcW || y < 0 || y >= v.srcH {
		return image.Point{}, ErrOutsideSurface
	}
	return image.Pt(x, y), nil
}

// SurfaceToWindow returns the window-space position of the top-left
// corner of a surface pixel. It is the inverse of WindowToSurface up to
// the flooring that WindowToSurface performs.
func (v Viewport) SurfaceToWindow(x, y int) Point {
	return Point{
		X: v.offX + float64(x)*v.scale,
		Y: v.offY + float64(y)*v.scale,
	}
}
