package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playground/internal/vmath"
)

func TestSpawnAllocatesDistinctHandles(t *testing.T) {
	w := New()
	a := w.Spawn()
	b := w.Spawn()

	assert.True(t, a.Valid())
	assert.True(t, b.Valid())
	assert.NotEqual(t, a, b)
	assert.False(t, Entity(0).Valid())
}

func TestStoreSetGetUpdate(t *testing.T) {
	w := New()
	e := w.Spawn()

	_, ok := w.Transforms.Get(e)
	require.False(t, ok)

	w.Transforms.Set(e, Transform{})
	ok = w.Transforms.Update(e, func(tr *Transform) {
		tr.Translation = tr.Translation.Add(vmath.Vec3{X: 5, Y: -2})
	})
	require.True(t, ok)

	tr, ok := w.Transforms.Get(e)
	require.True(t, ok)
	assert.Equal(t, vmath.Vec3{X: 5, Y: -2}, tr.Translation)

	assert.False(t, w.Transforms.Update(w.Spawn(), func(*Transform) {}))
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	s := NewStore[int]()
	s.Set(3, 30)
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(1, 11)
	assert.Equal(t, []Entity{3, 1, 2}, s.Entities())

	s.Remove(1)
	assert.Equal(t, []Entity{3, 2}, s.Entities())
	assert.Equal(t, 2, s.Len())
	s.Remove(42)
	assert.Equal(t, 2, s.Len())
}

func TestSingle(t *testing.T) {
	w := New()

	_, err := Single(w.Movables)
	assert.ErrorIs(t, err, ErrNoMatch)

	player := w.Spawn()
	w.Movables.Set(player, Movable{})
	got, err := Single(w.Movables)
	require.NoError(t, err)
	assert.Equal(t, player, got)

	w.Movables.Set(w.Spawn(), Movable{})
	_, err = Single(w.Movables)
	assert.ErrorIs(t, err, ErrMultipleMatches)
}

func TestDespawn(t *testing.T) {
	w := New()
	e := w.Spawn()
	w.Transforms.Set(e, Transform{})
	w.Sprites.Set(e, Sprite{})
	w.Movables.Set(e, Movable{})

	w.Despawn(e)
	assert.False(t, w.Transforms.Has(e))
	assert.False(t, w.Sprites.Has(e))
	assert.False(t, w.Movables.Has(e))
}
