//go:build cgo || js

package hal

import "github.com/hajimehoshi/ebiten/v2"

var ebitenKeys = [keyCount]ebiten.Key{
	KeyArrowUp:    ebiten.KeyArrowUp,
	KeyArrowDown:  ebiten.KeyArrowDown,
	KeyArrowLeft:  ebiten.KeyArrowLeft,
	KeyArrowRight: ebiten.KeyArrowRight,
	KeyW:          ebiten.KeyW,
	KeyA:          ebiten.KeyA,
	KeyS:          ebiten.KeyS,
	KeyD:          ebiten.KeyD,
}

type hostKeyboard struct {
	state KeySet
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

func (k *hostKeyboard) Pressed(code KeyCode) bool { return k.state.Pressed(code) }

// poll samples ebiten once per tick so every read within a frame sees the same state.
func (k *hostKeyboard) poll() {
	for code := KeyArrowUp; code < keyCount; code++ {
		if ebiten.IsKeyPressed(ebitenKeys[code]) {
			k.state.Press(code)
		} else {
			k.state.Release(code)
		}
	}
}
