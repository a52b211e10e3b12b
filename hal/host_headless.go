package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Width   int
	Height  int

	// Hold lists keys that stay pressed for the whole run.
	Hold []KeyCode
}

// RunHeadless drives the app from a ticker without opening a window.
// Every tick advances the app by exactly 1/Hz, so runs are reproducible.
func RunHeadless(ctx context.Context, newApp func(HAL) App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}

	h := newHostHAL(cfg.Width, cfg.Height, NewKeySet(cfg.Hold...))
	app := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if app != nil {
				if err := app.Update(d); err != nil {
					return err
				}
				app.Draw()
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// ParseKeys converts key names to codes, rejecting unknown names.
func ParseKeys(names []string) ([]KeyCode, error) {
	out := make([]KeyCode, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		code, ok := ParseKey(n)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", n)
		}
		out = append(out, code)
	}
	return out, nil
}
