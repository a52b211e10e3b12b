//go:build !cgo && !js

package hal

type hostKeyboard struct {
	state KeySet
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{}
}

func (k *hostKeyboard) Pressed(code KeyCode) bool { return k.state.Pressed(code) }

func (k *hostKeyboard) poll() {
	// No keyboard support without the window backend.
}
