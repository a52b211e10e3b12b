// Package world stores the demo's entities and their components.
package world

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	"playground/internal/vmath"
)

var (
	ErrNoMatch         = errors.New("world: no entity matches")
	ErrMultipleMatches = errors.New("world: more than one entity matches")
)

// Entity is an opaque handle. The zero value is never allocated.
type Entity uint64

func (e Entity) Valid() bool { return e != 0 }

// Transform places an entity in world space: +X right, +Y up.
type Transform struct {
	Translation vmath.Vec3
}

// Sprite is a solid axis-aligned rectangle centered on the entity's transform.
type Sprite struct {
	Size  vmath.Vec2
	Color color.RGBA
}

// Movable marks the player-controlled entity.
type Movable struct{}

// Camera2D marks the entity whose transform is the center of the view.
type Camera2D struct{}

type World struct {
	mu     sync.Mutex
	nextID Entity

	Transforms *Store[Transform]
	Sprites    *Store[Sprite]
	Movables   *Store[Movable]
	Cameras    *Store[Camera2D]
}

func New() *World {
	return &World{
		nextID:     1,
		Transforms: NewStore[Transform](),
		Sprites:    NewStore[Sprite](),
		Movables:   NewStore[Movable](),
		Cameras:    NewStore[Camera2D](),
	}
}

// Spawn allocates a new entity with no components.
func (w *World) Spawn() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	return id
}

// Despawn removes every component of e.
func (w *World) Despawn(e Entity) {
	w.Transforms.Remove(e)
	w.Sprites.Remove(e)
	w.Movables.Remove(e)
	w.Cameras.Remove(e)
}

// Single returns the only entity in s, or ErrNoMatch / ErrMultipleMatches.
func Single[T any](s *Store[T]) (Entity, error) {
	entities := s.Entities()
	switch len(entities) {
	case 0:
		return 0, ErrNoMatch
	case 1:
		return entities[0], nil
	default:
		return 0, fmt.Errorf("%w: %d entities", ErrMultipleMatches, len(entities))
	}
}
