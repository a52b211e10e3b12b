// Package movement turns held keys into player displacement.
package movement

import (
	"time"

	"playground/hal"
	"playground/internal/vmath"
)

// Speed is the player speed in world units per second.
const Speed = 300.0

// Keys is the per-axis input after arrow keys and WASD are merged.
type Keys struct {
	Up, Down, Left, Right bool
}

// ReadKeys samples the eight movement keys. Arrow and letter keys are interchangeable.
func ReadKeys(kb hal.Keyboard) Keys {
	if kb == nil {
		return Keys{}
	}
	return Keys{
		Up:    kb.Pressed(hal.KeyArrowUp) || kb.Pressed(hal.KeyW),
		Down:  kb.Pressed(hal.KeyArrowDown) || kb.Pressed(hal.KeyS),
		Left:  kb.Pressed(hal.KeyArrowLeft) || kb.Pressed(hal.KeyA),
		Right: kb.Pressed(hal.KeyArrowRight) || kb.Pressed(hal.KeyD),
	}
}

// Direction returns a unit vector (or zero) for the held keys.
// Opposite keys on one axis cancel; diagonals are normalized.
func Direction(k Keys) vmath.Vec2 {
	var dir vmath.Vec2
	if k.Up {
		dir.Y += 1
	}
	if k.Down {
		dir.Y -= 1
	}
	if k.Right {
		dir.X += 1
	}
	if k.Left {
		dir.X -= 1
	}
	if dir.IsZero() {
		return dir
	}
	return dir.Normalize()
}

// Displacement is dir × speed × dt. Negative dt counts as zero.
func Displacement(dir vmath.Vec2, speed float64, dt time.Duration) vmath.Vec3 {
	if dt <= 0 {
		return vmath.Vec3{}
	}
	return dir.Scale(speed * dt.Seconds()).Extend(0)
}
