package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"playground/hal"
	"playground/internal/config"
	"playground/internal/vmath"
	"playground/internal/world"
)

const frame = time.Second / 60

func newGame(t *testing.T, held ...hal.KeyCode) (*Game, *hal.KeySet, hal.Framebuffer) {
	t.Helper()
	keys := hal.NewKeySet(held...)
	h := hal.New(800, 600, keys)
	return New(h, config.Default(), zaptest.NewLogger(t)), keys, h.Display().Framebuffer()
}

func TestStartupSpawnsPlayerAtOrigin(t *testing.T) {
	g, _, _ := newGame(t)
	g.Startup()

	require.True(t, g.Player().Valid())
	assert.Equal(t, vmath.Vec3{}, g.Position())

	w := g.World()
	player, err := world.Single(w.Movables)
	require.NoError(t, err)
	assert.Equal(t, g.Player(), player)

	sp, ok := w.Sprites.Get(player)
	require.True(t, ok)
	assert.Equal(t, vmath.Vec2{X: 50, Y: 50}, sp.Size)
	assert.Equal(t, uint8(128), sp.Color.R)
	assert.Equal(t, uint8(255), sp.Color.B)

	_, err = world.Single(w.Cameras)
	assert.NoError(t, err)
}

func TestStartupRunsOnce(t *testing.T) {
	g, _, _ := newGame(t)
	g.Startup()
	player := g.Player()
	g.Startup()

	assert.Equal(t, player, g.Player())
	assert.Equal(t, 1, g.World().Movables.Len())
	assert.Equal(t, 2, g.World().Sprites.Len()+g.World().Cameras.Len())
}

func TestUpdateBeforeStartup(t *testing.T) {
	g, _, _ := newGame(t)
	assert.Error(t, g.Update(frame))
}

func TestUpdateMovesPlayer(t *testing.T) {
	tests := []struct {
		name string
		held []hal.KeyCode
		want vmath.Vec3
	}{
		{"idle", nil, vmath.Vec3{}},
		{"right arrow", []hal.KeyCode{hal.KeyArrowRight}, vmath.Vec3{X: 5}},
		{"d", []hal.KeyCode{hal.KeyD}, vmath.Vec3{X: 5}},
		{"up", []hal.KeyCode{hal.KeyW}, vmath.Vec3{Y: 5}},
		{"down", []hal.KeyCode{hal.KeyArrowDown}, vmath.Vec3{Y: -5}},
		{"left", []hal.KeyCode{hal.KeyA}, vmath.Vec3{X: -5}},
		{"up and down cancel", []hal.KeyCode{hal.KeyArrowUp, hal.KeyS}, vmath.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := newGame(t, tt.held...)
			g.Startup()
			require.NoError(t, g.Update(frame))

			got := g.Position()
			assert.InDelta(t, tt.want.X, got.X, 1e-6)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-6)
			assert.Equal(t, 0.0, got.Z)
		})
	}
}

func TestDiagonalIsNotFaster(t *testing.T) {
	g, _, _ := newGame(t, hal.KeyArrowUp, hal.KeyArrowRight)
	g.Startup()
	require.NoError(t, g.Update(time.Second))

	got := g.Position()
	assert.InDelta(t, 300, got.Length(), 1e-6)
	assert.InDelta(t, got.X, got.Y, 1e-9)
}

func TestZeroDeltaDoesNotMove(t *testing.T) {
	g, _, _ := newGame(t, hal.KeyArrowRight, hal.KeyArrowUp)
	g.Startup()
	require.NoError(t, g.Update(0))
	assert.Equal(t, vmath.Vec3{}, g.Position())
}

func TestOneSecondOfFrames(t *testing.T) {
	g, keys, fb := newGame(t, hal.KeyArrowRight)
	g.Startup()
	for i := 0; i < 60; i++ {
		require.NoError(t, g.Update(frame))
	}
	assert.InDelta(t, 300, g.Position().X, 1e-3)

	keys.Reset()
	require.NoError(t, g.Update(frame))
	assert.InDelta(t, 300, g.Position().X, 1e-3)

	g.Draw()
	blue := config.Default().Player.Color.RGBA()
	p, ok := hal.PixelAt(fb, 700, 300)
	require.True(t, ok)
	assert.Equal(t, hal.RGB565(blue.R, blue.G, blue.B), p)
	p, _ = hal.PixelAt(fb, 400, 300)
	assert.NotEqual(t, hal.RGB565(blue.R, blue.G, blue.B), p)
}

func TestUpdateWithoutTransformLogsOnce(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	h := hal.New(800, 600, hal.NewKeySet(hal.KeyArrowRight))
	g := NewStarted(h, config.Default(), zap.New(core))

	g.World().Transforms.Remove(g.Player())
	require.NoError(t, g.Update(frame))
	require.NoError(t, g.Update(frame))

	assert.Equal(t, 1, logs.FilterMessage("player has no transform, skipping movement").Len())
}

func TestDrawWithHUD(t *testing.T) {
	cfg := config.Default()
	cfg.HUD = true
	h := hal.New(800, 600, nil)
	g := NewStarted(h, cfg, zap.NewNop())
	g.Draw()

	fb := h.Display().Framebuffer()
	white := hal.RGB565(255, 255, 255)
	lit := false
	for y := 0; y < 20 && !lit; y++ {
		for x := 0; x < 100; x++ {
			if p, _ := hal.PixelAt(fb, x, y); p == white {
				lit = true
				break
			}
		}
	}
	assert.True(t, lit, "expected HUD text in the top-left corner")
}

func TestRunHeadless(t *testing.T) {
	cfg := config.Default()
	pos, err := RunHeadless(context.Background(), cfg, hal.HeadlessConfig{
		Hz:    1000,
		Ticks: 10,
		Hold:  []hal.KeyCode{hal.KeyArrowLeft},
	}, zap.NewNop())
	require.NoError(t, err)
	assert.InDelta(t, -3.0, pos.X, 1e-6)
	assert.Equal(t, 0.0, pos.Y)
}

func TestWindowConfig(t *testing.T) {
	wc := WindowConfig(config.Default())
	assert.Equal(t, "Playground", wc.Title)
	assert.Equal(t, 800, wc.Width)
	assert.Equal(t, 600, wc.Height)
	assert.Equal(t, 60, wc.TPS)
}
