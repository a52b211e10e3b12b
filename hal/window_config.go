package hal

import "time"

// WindowConfig controls the windowed runner.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int

	// MaxFrameStep caps the delta handed to the app in one frame.
	MaxFrameStep time.Duration
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "Playground"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 600
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.MaxFrameStep < 0 {
		c.MaxFrameStep = 0
	}
	return c
}
