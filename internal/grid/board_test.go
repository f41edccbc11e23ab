package grid

import (
	"testing"

	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(objs ...*domain.PlacedObject) *Board {
	b := NewBoard()
	for _, o := range objs {
		b.Insert(o)
	}
	return b
}

func TestBoard_FindAt(t *testing.T) {
	trap := domain.NewPlacedObject(domain.ObjectStronghold, 5, 5)
	city := domain.NewPlacedObject(domain.ObjectSettlement, 8, 8)
	b := boardWith(trap, city)

	assert.Same(t, trap, b.FindAt(5, 5))
	assert.Same(t, trap, b.FindAt(7, 7))
	assert.Same(t, city, b.FindAt(9, 9))
	assert.Nil(t, b.FindAt(4, 5))
	assert.Nil(t, b.FindAt(10, 10))
}

func TestBoard_FindAt_FirstInsertionWins(t *testing.T) {
	// Overlapping objects can only exist if Insert is called directly; the
	// lookup still resolves to the earliest one.
	first := domain.NewPlacedObject(domain.ObjectStronghold, 0, 0)
	second := domain.NewPlacedObject(domain.ObjectBanner, 1, 1)
	b := boardWith(first, second)

	assert.Same(t, first, b.FindAt(1, 1))
}

func TestBoard_FindMatching(t *testing.T) {
	banner := domain.NewPlacedObject(domain.ObjectBanner, 2, 2)
	b := boardWith(banner)

	assert.Nil(t, b.FindMatching(2, 2, Renamable))
	assert.Same(t, banner, b.FindMatching(2, 2, Draggable))
}

func TestBoard_RemoveAt(t *testing.T) {
	trap := domain.NewPlacedObject(domain.ObjectStronghold, 0, 0)
	train := domain.NewPlacedObject(domain.ObjectConvoy, 10, 10)
	city := domain.NewPlacedObject(domain.ObjectSettlement, 20, 20)
	b := boardWith(trap, train, city)

	t.Run("filter rejects type", func(t *testing.T) {
		got := b.RemoveAt(10, 10, Excluding(domain.ObjectConvoy))
		assert.Nil(t, got)
		assert.Equal(t, 3, b.Len())
	})

	t.Run("empty cell is a no-op", func(t *testing.T) {
		assert.Nil(t, b.RemoveAt(15, 15, AnyType))
		assert.Equal(t, 3, b.Len())
	})

	t.Run("removes and preserves order", func(t *testing.T) {
		got := b.RemoveAt(10, 10, AnyType)
		require.Same(t, train, got)

		all := b.All()
		require.Len(t, all, 2)
		assert.Equal(t, trap.ID, all[0].ID)
		assert.Equal(t, city.ID, all[1].ID)
	})
}

func TestBoard_AllIsSnapshot(t *testing.T) {
	city := domain.NewPlacedObject(domain.ObjectSettlement, 1, 1)
	b := boardWith(city)

	all := b.All()
	all[0].Label = "changed"
	all[0].Row = 9

	assert.Equal(t, "City", b.FindAt(1, 1).Label)
	assert.Equal(t, 1, b.FindAt(1, 1).Row)
}

func TestExcluding(t *testing.T) {
	f := Excluding(domain.ObjectBanner, domain.ObjectConvoy)
	assert.True(t, f(domain.ObjectStronghold))
	assert.True(t, f(domain.ObjectSettlement))
	assert.False(t, f(domain.ObjectBanner))
	assert.False(t, f(domain.ObjectConvoy))
}
