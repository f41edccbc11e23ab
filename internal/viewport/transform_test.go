package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelToCell(t *testing.T) {
	tr := New(20)

	col, row := tr.PixelToCell(45, 23, Point{})
	assert.Equal(t, 2, col)
	assert.Equal(t, 1, row)

	tr.SetScale(2)
	col, row = tr.PixelToCell(45, 23, Point{})
	assert.Equal(t, 1, col)
	assert.Equal(t, 0, row)
}

func TestPixelToCell_Origin(t *testing.T) {
	tr := New(20)

	col, row := tr.PixelToCell(45, 23, Point{X: 10, Y: 40})
	assert.Equal(t, 1, col)
	assert.Equal(t, -1, row, "pixels above the origin floor to negative rows")
}

func TestZoom_Unbounded(t *testing.T) {
	tr := New(DefaultCellSize)

	tr.Zoom(ZoomIn)
	assert.InDelta(t, 1.1, tr.Scale(), 1e-9)
	tr.Zoom(ZoomOut)
	assert.InDelta(t, 1.0, tr.Scale(), 1e-9)

	for i := 0; i < 100; i++ {
		tr.Zoom(ZoomOut)
	}
	assert.Greater(t, tr.Scale(), 0.0)
	assert.Less(t, tr.Scale(), 0.001)
}

func TestZoom_PivotsOnOrigin(t *testing.T) {
	tr := New(20)
	tr.Zoom(ZoomIn)

	col, row := tr.PixelToCell(0, 0, Point{})
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
}

func TestCellToPixel_RoundTrip(t *testing.T) {
	tr := New(20)
	tr.SetScale(1.5)
	origin := Point{X: 7, Y: 3}

	for _, c := range [][2]int{{0, 0}, {4, 9}, {29, 1}, {-2, 3}} {
		x, y := tr.CellToPixel(c[0], c[1], origin)
		col, row := tr.PixelToCell(x+1, y+1, origin)
		assert.Equal(t, c[0], row)
		assert.Equal(t, c[1], col)
	}
}

func TestNew_DefaultsCellSize(t *testing.T) {
	assert.Equal(t, DefaultCellSize, New(0).CellSize())
	tr := New(20)
	tr.SetScale(-1)
	assert.Equal(t, 1.0, tr.Scale())
}
