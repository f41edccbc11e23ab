package placement

import (
	"math"
	"testing"

	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/grid"
	"github.com/alexanderramin/trapgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeFor(t *testing.T) {
	assert.Equal(t, 3, SizeFor(domain.ObjectStronghold))
	assert.Equal(t, 2, SizeFor(domain.ObjectSettlement))
	assert.Equal(t, 1, SizeFor(domain.ObjectBanner))
	assert.Equal(t, 1, SizeFor(domain.ObjectConvoy))
}

func TestDefaultLabelFor(t *testing.T) {
	assert.Equal(t, "Bear", DefaultLabelFor(domain.ObjectStronghold))
	assert.Equal(t, "City", DefaultLabelFor(domain.ObjectSettlement))
	assert.Empty(t, DefaultLabelFor(domain.ObjectBanner))
	assert.Empty(t, DefaultLabelFor(domain.ObjectConvoy))
}

func TestCanPlace(t *testing.T) {
	b := grid.NewBoard()
	_, ok := Place(5, 5, domain.ObjectStronghold, b)
	require.True(t, ok)

	cases := []struct {
		name     string
		row, col int
		size     int
		want     bool
	}{
		{"inside footprint", 6, 6, 1, false},
		{"corner overlap from above-left", 4, 4, 2, false},
		{"touching right edge", 5, 8, 2, true},
		{"touching bottom edge", 8, 5, 3, true},
		{"large block covering it", 0, 0, 10, false},
		{"negative coordinates", -3, -3, 2, true},
		{"outside grid", 40, 40, 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanPlace(tc.row, tc.col, tc.size, b))
		})
	}
}

func TestPlace_RejectionIsIdempotent(t *testing.T) {
	b := grid.NewBoard()
	trap, ok := Place(5, 5, domain.ObjectStronghold, b)
	require.True(t, ok)
	before := b.All()

	for i := 0; i < 3; i++ {
		obj, ok := Place(6, 6, domain.ObjectSettlement, b)
		assert.False(t, ok)
		assert.Nil(t, obj)
	}

	assert.Equal(t, before, b.All())
	assert.Same(t, trap, b.FindAt(7, 7))
}

func TestPlace_SetsDerivedFields(t *testing.T) {
	b := grid.NewBoard()
	city, ok := Place(8, 8, domain.ObjectSettlement, b)
	require.True(t, ok)

	assert.Equal(t, 2, city.Size())
	assert.Equal(t, "City", city.Label)
	assert.Equal(t, 1, b.Len())
}

func TestPlace_NeverOverlaps(t *testing.T) {
	b := grid.NewBoard()
	types := domain.ObjectTypes
	// Sweep a dense pattern of placements; many are rejected.
	for i := 0; i < 200; i++ {
		row := (i * 7) % 13
		col := (i * 5) % 11
		Place(row, col, types[i%len(types)], b)
	}

	all := b.All()
	require.NotEmpty(t, all)
	seen := make(map[domain.Cell]string)
	for _, o := range all {
		for _, c := range o.Footprint().Cells() {
			owner, taken := seen[c]
			assert.False(t, taken, "cell %v claimed by %s and %s", c, owner, o.ID)
			seen[c] = o.ID
		}
	}
}

func TestCanPlace_BoardWithOverlappingOccupants(t *testing.T) {
	// Drops are not checked, so a board may already hold overlapping markers.
	b := testutil.NewTestBoard(
		testutil.NewTestObject(domain.ObjectStronghold, 0, 0),
		testutil.NewTestObject(domain.ObjectSettlement, 1, 1),
		testutil.NewTestObject(domain.ObjectConvoy, 29, 29),
	)

	assert.False(t, CanPlace(2, 2, 1, b))
	assert.False(t, CanPlace(28, 28, 2, b))
	assert.True(t, CanPlace(3, 3, 3, b))

	obj, ok := Place(3, 0, domain.ObjectBanner, b)
	require.True(t, ok)
	assert.Equal(t, 4, b.Len())
	assert.Empty(t, obj.Label)
}

func TestPlace_RejectsOverlapAtIntRangeEdge(t *testing.T) {
	b := grid.NewBoard()

	_, first := Place(math.MaxInt-1, 0, domain.ObjectStronghold, b)
	_, second := Place(math.MaxInt-1, 0, domain.ObjectStronghold, b)
	_, third := Place(math.MaxInt, 2, domain.ObjectBanner, b)

	assert.True(t, first)
	assert.False(t, second)
	assert.False(t, third)
	assert.Equal(t, 1, b.Len())
}
