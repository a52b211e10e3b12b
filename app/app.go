package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"go.uber.org/zap"

	"playground/hal"
	"playground/internal/config"
	"playground/internal/movement"
	"playground/internal/render"
	"playground/internal/vmath"
	"playground/internal/world"
)

var hudColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Game is the demo: one camera, one movable square.
type Game struct {
	cfg config.Config
	log *zap.Logger

	kbd hal.Keyboard
	r   *render.Renderer
	w   *world.World

	started bool
	camera  world.Entity
	player  world.Entity

	missingLogged bool
}

// New wires the game to the HAL. Startup must run before the first Update; the runners
// get a Game from NewStarted.
func New(h hal.HAL, cfg config.Config, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		cfg: cfg,
		log: logger,
		w:   world.New(),
	}
	if in := h.Input(); in != nil {
		g.kbd = in.Keyboard()
	}
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			g.r = render.New(fb, cfg.Background.RGBA())
		}
	}
	return g
}

// NewStarted is New followed by Startup.
func NewStarted(h hal.HAL, cfg config.Config, logger *zap.Logger) *Game {
	g := New(h, cfg, logger)
	g.Startup()
	return g
}

// Startup spawns the camera and the player at the origin. Only the first call has an effect.
func (g *Game) Startup() {
	if g.started {
		return
	}
	g.started = true

	g.camera = g.w.Spawn()
	g.w.Cameras.Set(g.camera, world.Camera2D{})
	g.w.Transforms.Set(g.camera, world.Transform{})

	size := g.cfg.Player.Size
	g.player = g.w.Spawn()
	g.w.Movables.Set(g.player, world.Movable{})
	g.w.Sprites.Set(g.player, world.Sprite{
		Size:  vmath.Vec2{X: size, Y: size},
		Color: g.cfg.Player.Color.RGBA(),
	})
	g.w.Transforms.Set(g.player, world.Transform{})

	if _, err := world.Single(g.w.Movables); err != nil {
		g.log.Error("movable entity check failed", zap.Error(err))
	}
	g.log.Info("startup",
		zap.Uint64("camera", uint64(g.camera)),
		zap.Uint64("player", uint64(g.player)),
		zap.Float64("speed", g.cfg.Player.Speed),
	)
}

// Update moves the player by the held keys over dt.
func (g *Game) Update(dt time.Duration) error {
	if !g.started {
		return errors.New("app: update before startup")
	}
	dir := movement.Direction(movement.ReadKeys(g.kbd))
	delta := movement.Displacement(dir, g.cfg.Player.Speed, dt)
	if delta.IsZero() {
		return nil
	}

	ok := g.w.Transforms.Update(g.player, func(tr *world.Transform) {
		tr.Translation = tr.Translation.Add(delta)
	})
	if !ok && !g.missingLogged {
		g.missingLogged = true
		g.log.Warn("player has no transform, skipping movement", zap.Uint64("player", uint64(g.player)))
	}
	return nil
}

// Draw renders the world and, if enabled, the position HUD.
func (g *Game) Draw() {
	if g.r == nil {
		return
	}
	g.r.Draw(g.w)
	if g.cfg.HUD {
		p := g.Position()
		g.r.DrawText(4, 4, fmt.Sprintf("x=%.0f y=%.0f", p.X, p.Y), hudColor)
	}
	if err := g.r.Present(); err != nil {
		g.log.Warn("present failed", zap.Error(err))
	}
}

// Position is the player's current translation (zero before Startup).
func (g *Game) Position() vmath.Vec3 {
	tr, _ := g.w.Transforms.Get(g.player)
	return tr.Translation
}

// Player is the handle of the movable entity (invalid before Startup).
func (g *Game) Player() world.Entity { return g.player }

// World exposes the entity store.
func (g *Game) World() *world.World { return g.w }
