package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"playground/hal"
	"playground/internal/config"
	"playground/internal/vmath"
)

// maxFrameStep bounds one frame's delta in window mode.
const maxFrameStep = 250 * time.Millisecond

// WindowConfig maps the demo config onto the window runner.
func WindowConfig(cfg config.Config) hal.WindowConfig {
	return hal.WindowConfig{
		Title:        cfg.Window.Title,
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		TPS:          cfg.Window.TPS,
		MaxFrameStep: maxFrameStep,
	}
}

// Run opens the window and blocks until it closes. Native and browser builds both end up here.
func Run(cfg config.Config, logger *zap.Logger) error {
	wc := WindowConfig(cfg)
	logger.Info("window",
		zap.String("title", wc.Title),
		zap.Int("width", wc.Width),
		zap.Int("height", wc.Height),
		zap.Int("tps", wc.TPS),
	)
	return hal.RunWindow(wc, func(h hal.HAL) hal.App {
		return NewStarted(h, cfg, logger)
	})
}

// RunHeadless ticks the game without a window and returns the player's final position.
func RunHeadless(ctx context.Context, cfg config.Config, hc hal.HeadlessConfig, logger *zap.Logger) (vmath.Vec3, error) {
	if hc.Width <= 0 {
		hc.Width = cfg.Window.Width
	}
	if hc.Height <= 0 {
		hc.Height = cfg.Window.Height
	}
	if hc.Hz <= 0 {
		hc.Hz = cfg.Window.TPS
	}

	var g *Game
	err := hal.RunHeadless(ctx, func(h hal.HAL) hal.App {
		g = NewStarted(h, cfg, logger)
		return g
	}, hc)
	if g == nil {
		return vmath.Vec3{}, err
	}
	pos := g.Position()
	logger.Info("headless run finished",
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Error(err),
	)
	return pos, err
}
