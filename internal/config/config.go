// Package config holds the tunables of the demo. The defaults are the demo itself:
// an 800x600 "Playground" window with a 50x50 light-blue square moving at 300 units/s.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Window Window `yaml:"window"`
	Player Player `yaml:"player"`

	// Background is the clear color behind the sprites.
	Background Color `yaml:"background"`

	// HUD prints the player position in the top-left corner.
	HUD bool `yaml:"hud"`

	Log Log `yaml:"log"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type Player struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Color Color   `yaml:"color"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Color is an sRGB color with channels in [0, 1].
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// RGBA converts to 8-bit channels, rounding to nearest.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xFF}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func Default() Config {
	return Config{
		Window: Window{
			Title:  "Playground",
			Width:  800,
			Height: 600,
			TPS:    60,
		},
		Player: Player{
			Size:  50,
			Speed: 300,
			Color: Color{R: 0.5, G: 0.5, B: 1.0},
		},
		Background: Color{R: 43.0 / 255, G: 44.0 / 255, B: 47.0 / 255},
		Log:        Log{Level: "info"},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
// An empty document yields the defaults.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Window.TPS)
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player size %g", ErrInvalid, c.Player.Size)
	case c.Player.Speed < 0 || math.IsNaN(c.Player.Speed) || math.IsInf(c.Player.Speed, 0):
		return fmt.Errorf("%w: player speed %g", ErrInvalid, c.Player.Speed)
	}
	return nil
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
