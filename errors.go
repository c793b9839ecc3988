package pix

import "errors"

// Package errors.
var (
	// ErrInvalidDimensions is returned when a surface width or height
	// is zero or negative.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrOutsideSurface is returned by Viewport.WindowToSurface when a
	// window coordinate does not fall within the mapped surface region.
	ErrOutsideSurface = errors.New("pix: not within surface")

	// ErrQuit signals an orderly shutdown when returned from Sim.Update.
	// The run loop treats it as a clean exit, not a failure.
	ErrQuit = errors.New("pix: quit")
)
