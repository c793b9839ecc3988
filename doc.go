// Package pix provides a fixed-resolution RGBA pixel surface that is
// presented into a resizable window.
//
// # Overview
//
// pix is the scaffolding for real-time pixel-buffer applications: an
// application draws directly into a raw RGBA byte buffer at a fixed
// logical resolution, and pix scales that buffer up to whatever size the
// window currently has, preserving aspect ratio and letterboxing the
// remainder with a configurable clear color.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pix"
//	    "github.com/gogpu/pix/app"
//	)
//
//	type MySim struct{}
//
//	func (s *MySim) Update(in *pix.InputState) error { return nil }
//
//	func (s *MySim) Draw(frame []uint8) {
//	    // frame is WxHx4 bytes of RGBA
//	}
//
//	func main() {
//	    cfg := app.DefaultConfig().WithTitle("my app")
//	    if err := app.Run(&MySim{}, cfg); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Surface, Viewport, InputState, Observer, Sim
//   - app: the windowed run loop (window, fixed-interval tick, input)
//   - config: persisted configuration for demo binaries
//
// The root package is windowing-agnostic and contains only buffer and
// coordinate logic; everything that talks to the platform lives in app.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Window space is the logical window coordinate system (pre-HiDPI
// scaling). Surface space is the fixed logical resolution of the pixel
// buffer. Physical coordinates are window coordinates multiplied by the
// display's device scale factor. Viewport converts between window and
// surface space.
//
// # Frame Persistence
//
// The surface buffer is never cleared between frames. A Draw hook that
// paints only part of the buffer leaves the previous frame's contents in
// the rest, which allows trail and overlay effects. Call Surface.Fill to
// clear explicitly.
package pix
