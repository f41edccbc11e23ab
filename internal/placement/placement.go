// Package placement decides where markers may be put on a board.
package placement

import (
	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/grid"
)

// SizeFor returns the footprint side length for t.
func SizeFor(t domain.ObjectType) int {
	return t.Size()
}

// DefaultLabelFor returns the label a new marker of type t starts with.
func DefaultLabelFor(t domain.ObjectType) string {
	return t.DefaultLabel()
}

// CanPlace reports whether a size×size footprint at (row, col) is disjoint
// from every object on board. Footprints are not checked against the grid
// extent.
func CanPlace(row, col, size int, board *grid.Board) bool {
	candidate := domain.Rect{Row: row, Col: col, Rows: size, Cols: size}
	cells := candidate.Cells()

	free := true
	board.Each(func(o domain.PlacedObject) {
		if !free {
			return
		}
		fp := o.Footprint()
		for _, c := range cells {
			if fp.Contains(c.Row, c.Col) {
				free = false
				return
			}
		}
	})
	return free
}

// Place creates a marker of type t at (row, col) and inserts it when the
// footprint is free. An overlapping placement is silently rejected: the
// board is untouched and Place returns (nil, false).
func Place(row, col int, t domain.ObjectType, board *grid.Board) (*domain.PlacedObject, bool) {
	if !CanPlace(row, col, SizeFor(t), board) {
		return nil, false
	}
	obj := domain.NewPlacedObject(t, row, col)
	board.Insert(obj)
	return obj, true
}
