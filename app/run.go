package app

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/pix"
)

// Package errors.
var (
	// ErrNilSim is returned by Run when the sim is nil.
	ErrNilSim = errors.New("app: nil sim")

	errInvalidTickInterval = errors.New("app: tick interval must be positive")
)

// Run opens the window and drives the sim until the window is closed or
// the sim returns pix.ErrQuit. It must be called from the main
// goroutine and does not return until the loop ends.
//
// Window creation and surface creation failures are returned before the
// loop starts; a clean quit returns nil.
func Run(sim pix.Sim, cfg Config) error {
	if sim == nil {
		return ErrNilSim
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	surface, err := pix.NewSurface(
		cfg.SurfaceWidth, cfg.SurfaceHeight,
		pix.WithClearColor(cfg.ClearColor),
	)
	if err != nil {
		return err
	}

	observer := cfg.Observer
	if observer == nil {
		observer = pix.NopObserver{}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	// The surface's logical size is the window floor: shrinking below it
	// would leave no room for even a 1x present.
	ebiten.SetWindowSizeLimits(cfg.SurfaceWidth, cfg.SurfaceHeight, -1, -1)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	ebiten.SetTPS(cfg.tps())

	g := &game{
		sim:            sim,
		surface:        surface,
		observer:       observer,
		img:            ebiten.NewImage(cfg.SurfaceWidth, cfg.SurfaceHeight),
		repeatDelay:    ticksFor(keyRepeatDelay, cfg.TickInterval, 2),
		repeatInterval: ticksFor(keyRepeatInterval, cfg.TickInterval, 1),
	}

	pix.Logger().Info("window opened",
		"title", cfg.Title,
		"window", [2]int{cfg.WindowWidth, cfg.WindowHeight},
		"surface", [2]int{cfg.SurfaceWidth, cfg.SurfaceHeight},
		"tps", cfg.tps(),
	)

	// RunGame returns nil both on window close and on ebiten.Termination
	// (which game.Update returns for pix.ErrQuit).
	return ebiten.RunGame(g)
}
