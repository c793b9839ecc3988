// Package app runs a pix surface in a desktop window.
//
// It owns everything platform-facing: the window, the single-threaded
// event loop, the fixed-interval update tick, input polling, and
// presenting the surface scaled into the window. The root pix package
// stays windowing-agnostic; app adapts it to ebiten.
//
//	cfg := app.DefaultConfig().
//	    WithTitle("the thing").
//	    WithSurfaceSize(320, 240)
//	if err := app.Run(sim, cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// The loop is cooperative and strictly ordered: each tick builds one
// input snapshot, notifies the observer of click/key/resize events in
// arrival order, calls Sim.Update, and the following draw calls Sim.Draw
// and presents the frame. Nothing here is safe for concurrent use; all
// callbacks run on the loop thread.
package app
