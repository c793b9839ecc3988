package app

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/pix"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 {
		t.Errorf("window size: got %dx%d, want 640x480", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.SurfaceWidth != 320 || cfg.SurfaceHeight != 240 {
		t.Errorf("surface size: got %dx%d, want 320x240", cfg.SurfaceWidth, cfg.SurfaceHeight)
	}
	if cfg.TickInterval != 15*time.Millisecond {
		t.Errorf("tick interval: got %v, want 15ms", cfg.TickInterval)
	}
	if !cfg.Resizable {
		t.Error("default config should be resizable")
	}
	want := pix.RGBA{R: 0.1, G: 0.1, B: 0.15, A: 1.0}
	if cfg.ClearColor != want {
		t.Errorf("clear color: got %v, want %v", cfg.ClearColor, want)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Builders(t *testing.T) {
	o := pix.NopObserver{}
	cfg := DefaultConfig().
		WithTitle("t").
		WithWindowSize(800, 600).
		WithSurfaceSize(400, 300).
		WithTickInterval(10 * time.Millisecond).
		WithResizable(false).
		WithObserver(o).
		WithClearColor(pix.Black)

	if cfg.Title != "t" {
		t.Errorf("Title = %q", cfg.Title)
	}
	if cfg.WindowWidth != 800 || cfg.WindowHeight != 600 {
		t.Errorf("window size = %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.SurfaceWidth != 400 || cfg.SurfaceHeight != 300 {
		t.Errorf("surface size = %dx%d", cfg.SurfaceWidth, cfg.SurfaceHeight)
	}
	if cfg.TickInterval != 10*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.TickInterval)
	}
	if cfg.Resizable {
		t.Error("Resizable = true, want false")
	}
	if cfg.Observer != o {
		t.Error("Observer not set")
	}
	if cfg.ClearColor != pix.Black {
		t.Errorf("ClearColor = %v", cfg.ClearColor)
	}

	// Builders must not mutate the receiver.
	if d := DefaultConfig(); d.Title != "pix" {
		t.Errorf("DefaultConfig mutated: Title = %q", d.Title)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(Config) Config
		wantErr error
	}{
		{"zero surface width", func(c Config) Config { return c.WithSurfaceSize(0, 240) }, pix.ErrInvalidDimensions},
		{"negative surface height", func(c Config) Config { return c.WithSurfaceSize(320, -1) }, pix.ErrInvalidDimensions},
		{"zero window", func(c Config) Config { return c.WithWindowSize(0, 0) }, pix.ErrInvalidDimensions},
		{"zero tick", func(c Config) Config { return c.WithTickInterval(0) }, errInvalidTickInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.mutate(DefaultConfig())
			if err := cfg.validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTpsFor(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{15 * time.Millisecond, 67}, // 66.67 rounds to 67
		{16 * time.Millisecond, 63}, // 62.5 rounds to 63
		{time.Second, 1},
		{10 * time.Millisecond, 100},
		{2 * time.Second, 1}, // clamped to at least 1
		{0, 1},
		{-time.Second, 1},
	}
	for _, tt := range tests {
		if got := tpsFor(tt.d); got != tt.want {
			t.Errorf("tpsFor(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		d, tick time.Duration
		min     int
		want    int
	}{
		{500 * time.Millisecond, 15 * time.Millisecond, 2, 33},
		{50 * time.Millisecond, 15 * time.Millisecond, 1, 3},
		{10 * time.Millisecond, 15 * time.Millisecond, 2, 2}, // clamped to min
		{100 * time.Millisecond, 0, 4, 4},                    // degenerate tick
	}
	for _, tt := range tests {
		if got := ticksFor(tt.d, tt.tick, tt.min); got != tt.want {
			t.Errorf("ticksFor(%v, %v, %d) = %d, want %d", tt.d, tt.tick, tt.min, got, tt.want)
		}
	}
}
