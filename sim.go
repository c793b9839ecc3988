package pix

// Sim is the application hook pair driven by the run loop.
//
// The loop is single-threaded: Update and Draw are never called
// concurrently, and the Sim owns its state exclusively between calls.
type Sim interface {
	// Update advances the simulation by one fixed-interval tick. The
	// snapshot holds all input since the previous tick. Returning
	// ErrQuit ends the run loop cleanly; any other error aborts it.
	Update(in *InputState) error

	// Draw paints into the raw RGBA frame of the surface. The frame is
	// not cleared beforehand: pixels left untouched keep their
	// previous-frame contents.
	Draw(frame []uint8)
}
