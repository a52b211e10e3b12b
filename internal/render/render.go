// Package render rasterizes the world into an RGB565 framebuffer.
package render

import (
	"image/color"
	"math"

	"playground/hal"
	"playground/internal/vmath"
	"playground/internal/world"
)

type Renderer struct {
	fb hal.Framebuffer
	bg color.RGBA
}

func New(fb hal.Framebuffer, background color.RGBA) *Renderer {
	return &Renderer{fb: fb, bg: background}
}

// Draw clears the frame and paints every sprite that has a transform, in spawn order.
// The view is centered on the camera entity; without exactly one camera it is centered on the origin.
func (r *Renderer) Draw(w *world.World) {
	if r.fb == nil || r.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	r.fb.ClearRGB(r.bg.R, r.bg.G, r.bg.B)

	var cam vmath.Vec3
	if e, err := world.Single(w.Cameras); err == nil {
		if tr, ok := w.Transforms.Get(e); ok {
			cam = tr.Translation
		}
	}

	for _, e := range w.Sprites.Entities() {
		sp, ok := w.Sprites.Get(e)
		if !ok {
			continue
		}
		tr, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		sx, sy := r.project(tr.Translation, cam)
		x0 := round(sx - sp.Size.X/2)
		y0 := round(sy - sp.Size.Y/2)
		x1 := round(sx + sp.Size.X/2)
		y1 := round(sy + sp.Size.Y/2)
		r.fillRect(x0, y0, x1, y1, sp.Color)
	}
}

// Present hands the finished frame to the display.
func (r *Renderer) Present() error {
	if r.fb == nil {
		return nil
	}
	return r.fb.Present()
}

// ScreenPos maps a world position to framebuffer coordinates for a camera at cam.
func (r *Renderer) ScreenPos(p, cam vmath.Vec3) (int, int) {
	sx, sy := r.project(p, cam)
	return round(sx), round(sy)
}

func (r *Renderer) project(p, cam vmath.Vec3) (float64, float64) {
	cx := float64(r.fb.Width()) / 2
	cy := float64(r.fb.Height()) / 2
	d := p.Sub(cam)
	return cx + d.X, cy - d.Y
}

// fillRect paints [x0,x1)×[y0,y1), clipped to the framebuffer.
func (r *Renderer) fillRect(x0, y0, x1, y1 int, c color.RGBA) {
	w, h := r.fb.Width(), r.fb.Height()
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > w {
		x1 = w
	}
	if y1 > h {
		y1 = h
	}
	if x0 >= x1 || y0 >= y1 {
		return
	}

	buf := r.fb.Buffer()
	stride := r.fb.StrideBytes()
	pixel := hal.RGB565(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	for y := y0; y < y1; y++ {
		row := y * stride
		for x := x0; x < x1; x++ {
			off := row + x*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
