package hal

import "time"

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode identifies one of the keys the demo reads.
type KeyCode uint8

const (
	KeyUnknown KeyCode = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:    "unknown",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyW:          "w",
	KeyA:          "a",
	KeyS:          "s",
	KeyD:          "d",
}

func (k KeyCode) String() string {
	if k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// ParseKey maps a key name ("up", "w", ...) to its code.
func ParseKey(name string) (KeyCode, bool) {
	for i := KeyArrowUp; i < keyCount; i++ {
		if keyNames[i] == name {
			return i, true
		}
	}
	return KeyUnknown, false
}

// Keyboard reports the instantaneous pressed state of a key for the current frame.
type Keyboard interface {
	Pressed(code KeyCode) bool
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// HAL provides the only contact point between the demo and the outside world.
type HAL interface {
	Display() Display
	Input() Input
}

// App is driven by a runner: Update once per frame with the elapsed time, then Draw.
type App interface {
	Update(dt time.Duration) error
	Draw()
}
