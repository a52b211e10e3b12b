//go:build cgo || js

package hal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a window that displays the framebuffer and samples the keyboard.
// It blocks until the window closes or the app returns an error.
func RunWindow(cfg WindowConfig, newApp func(HAL) App) error {
	cfg = cfg.withDefaults()

	kbd := newHostKeyboard()
	h := newHostHAL(cfg.Width, cfg.Height, kbd)
	app := newApp(h)

	g := &hostGame{
		h:     h,
		kbd:   kbd,
		app:   app,
		clock: newFrameClock(nil, cfg.MaxFrameStep),
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	kbd   *hostKeyboard
	app   App
	clock *frameClock

	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	dt := g.clock.step()
	if g.app != nil {
		if err := g.app.Update(dt); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.app != nil {
		g.app.Draw()
	}

	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGBA(g.img.Pix)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}

