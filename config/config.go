// Package config loads and saves the demo binary's settings.
//
// The pix library itself takes no configuration files; this package only
// serves executables that want persisted settings. A missing or
// unreadable file yields the defaults rather than an error, so a demo
// always starts.
package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config mirrors the JSON config file.
type Config struct {
	Title         string `json:"title"`
	WindowWidth   int    `json:"window_width"`
	WindowHeight  int    `json:"window_height"`
	SurfaceWidth  int    `json:"surface_width"`
	SurfaceHeight int    `json:"surface_height"`
	TickMillis    int    `json:"tick_millis"`
	Overlay       bool   `json:"overlay"`
	Verbose       bool   `json:"verbose"`
}

// NewDefault returns the default configuration, matching the scaffold
// geometry (640x480 window, 320x240 surface, 15 ms tick).
func NewDefault() *Config {
	return &Config{
		Title:         "the thing",
		WindowWidth:   640,
		WindowHeight:  480,
		SurfaceWidth:  320,
		SurfaceHeight: 240,
		TickMillis:    15,
	}
}

// TickInterval returns the tick setting as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Load reads a config file. A missing file or malformed JSON returns the
// defaults, not an error; only I/O failures on an existing file are
// reported.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return NewDefault(), nil
		}
		return nil, err
	}
	defer file.Close()

	cfg := NewDefault()
	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return NewDefault(), nil
	}
	return cfg, nil
}

// Save writes the config as indented JSON.
func Save(cfg *Config, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}
