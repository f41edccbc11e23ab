package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Cell addresses one grid square.
type Cell struct {
	Row int
	Col int
}

// Rect is an axis-aligned block of cells with its top-left at (Row, Col).
type Rect struct {
	Row  int
	Col  int
	Rows int
	Cols int
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Rows <= 0 || r.Cols <= 0
}

// Contains reports whether (row, col) lies inside r.
func (r Rect) Contains(row, col int) bool {
	return within(row, r.Row, r.Rows) && within(col, r.Col, r.Cols)
}

// within reports start <= v < start+n without computing start+n, which
// overflows for footprints at the edge of the int range.
func within(v, start, n int) bool {
	return n > 0 && v >= start && uint(v)-uint(start) < uint(n)
}

// Cells enumerates r row by row.
func (r Rect) Cells() []Cell {
	if r.Empty() {
		return nil
	}
	cells := make([]Cell, 0, r.Rows*r.Cols)
	for dr := 0; dr < r.Rows; dr++ {
		for dc := 0; dc < r.Cols; dc++ {
			cells = append(cells, Cell{Row: r.Row + dr, Col: r.Col + dc})
		}
	}
	return cells
}

// PlacedObject is a marker on the board. Its size is fixed at creation.
type PlacedObject struct {
	ID    string
	Type  ObjectType
	Row   int
	Col   int
	Label string
	size  int
}

// NewPlacedObject creates a marker of type t at (row, col) with the type's
// footprint size and default label.
func NewPlacedObject(t ObjectType, row, col int) *PlacedObject {
	return &PlacedObject{
		ID:    uuid.New().String(),
		Type:  t,
		Row:   row,
		Col:   col,
		Label: t.DefaultLabel(),
		size:  t.Size(),
	}
}

// Size returns the footprint side length.
func (o *PlacedObject) Size() int { return o.size }

// Footprint returns the block of cells the object occupies.
func (o *PlacedObject) Footprint() Rect {
	return Rect{Row: o.Row, Col: o.Col, Rows: o.size, Cols: o.size}
}

// Contains reports whether the footprint covers (row, col).
func (o *PlacedObject) Contains(row, col int) bool {
	return o.Footprint().Contains(row, col)
}

// MoveTo relocates the object's top-left corner.
func (o *PlacedObject) MoveTo(row, col int) {
	o.Row = row
	o.Col = col
}

// ShortID returns the first 8 characters of ID for display.
func (o *PlacedObject) ShortID() string {
	if len(o.ID) >= 8 {
		return o.ID[:8]
	}
	return o.ID
}

func (o *PlacedObject) String() string {
	return fmt.Sprintf("%s@(%d,%d)", o.Type, o.Row, o.Col)
}
