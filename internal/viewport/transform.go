// Package viewport converts between pointer pixels and grid cells.
package viewport

import "math"

const (
	// DefaultCellSize is the side length of one cell in pixels at scale 1.
	DefaultCellSize = 20.0

	// ZoomFactor is applied once per wheel step.
	ZoomFactor = 1.1
)

// ZoomDirection is the sense of a wheel step.
type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota
	ZoomOut
)

func (d ZoomDirection) String() string {
	if d == ZoomIn {
		return "in"
	}
	return "out"
}

// Point is a pixel position.
type Point struct {
	X float64
	Y float64
}

// Transform maps pixels to cells at the current zoom scale. Zoom always
// pivots on the canvas origin, never on the pointer.
type Transform struct {
	cellSize float64
	scale    float64
}

// New returns a Transform at scale 1. A non-positive cellSize falls back
// to DefaultCellSize.
func New(cellSize float64) *Transform {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Transform{cellSize: cellSize, scale: 1}
}

func (t *Transform) Scale() float64    { return t.scale }
func (t *Transform) CellSize() float64 { return t.cellSize }

// SetScale overrides the zoom scale. Non-positive values are ignored.
func (t *Transform) SetScale(s float64) {
	if s > 0 {
		t.scale = s
	}
}

// Zoom applies one wheel step. The scale is not clamped.
func (t *Transform) Zoom(dir ZoomDirection) {
	switch dir {
	case ZoomIn:
		t.scale *= ZoomFactor
	case ZoomOut:
		t.scale /= ZoomFactor
	}
}

// PixelToCell returns the cell under pixel (px, py), where origin is the
// pixel position of the grid's top-left corner.
func (t *Transform) PixelToCell(px, py float64, origin Point) (col, row int) {
	col = int(math.Floor(((px - origin.X) / t.scale) / t.cellSize))
	row = int(math.Floor(((py - origin.Y) / t.scale) / t.cellSize))
	return col, row
}

// CellToPixel returns the pixel position of the top-left corner of cell
// (row, col).
func (t *Transform) CellToPixel(row, col int, origin Point) (x, y float64) {
	x = float64(col)*t.cellSize*t.scale + origin.X
	y = float64(row)*t.cellSize*t.scale + origin.Y
	return x, y
}
