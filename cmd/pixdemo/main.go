// Command pixdemo runs the pix scaffold: a fixed 320x240 surface in a
// resizable window, painting a static rectangle and reporting clicks,
// keys, and resizes on the console.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/app"
	"github.com/gogpu/pix/config"
	"github.com/gogpu/pix/internal/demo"
)

func main() {
	def := config.NewDefault()
	var (
		configPath = flag.String("config", "", "path to JSON config file")
		title      = flag.String("title", def.Title, "window title")
		width      = flag.Int("width", def.WindowWidth, "logical window width")
		height     = flag.Int("height", def.WindowHeight, "logical window height")
		surfW      = flag.Int("surface-width", def.SurfaceWidth, "surface width in pixels")
		surfH      = flag.Int("surface-height", def.SurfaceHeight, "surface height in pixels")
		tick       = flag.Int("tick", def.TickMillis, "update interval in milliseconds")
		overlay    = flag.Bool("overlay", false, "draw cursor diagnostics into the frame")
		verbose    = flag.Bool("v", false, "enable library logging")
	)
	flag.Parse()

	cfg := def
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg.Title = *title
		case "width":
			cfg.WindowWidth = *width
		case "height":
			cfg.WindowHeight = *height
		case "surface-width":
			cfg.SurfaceWidth = *surfW
		case "surface-height":
			cfg.SurfaceHeight = *surfH
		case "tick":
			cfg.TickMillis = *tick
		case "overlay":
			cfg.Overlay = *overlay
		case "v":
			cfg.Verbose = *verbose
		}
	})

	if cfg.Verbose {
		pix.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Click/key/resize diagnostics go to stdout, like the scaffold's
	// original println output.
	diag := pix.NewLogObserver(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	sim := demo.New(cfg.SurfaceWidth, cfg.SurfaceHeight, demo.WithOverlay(cfg.Overlay))

	runCfg := app.DefaultConfig().
		WithTitle(cfg.Title).
		WithWindowSize(cfg.WindowWidth, cfg.WindowHeight).
		WithSurfaceSize(cfg.SurfaceWidth, cfg.SurfaceHeight).
		WithTickInterval(cfg.TickInterval()).
		WithObserver(diag)

	if err := app.Run(sim, runCfg); err != nil {
		log.Fatalf("Failed to run: %v", err)
	}
}
