// Package render turns board contents into an ordered draw list.
//
// The draw list is backend-agnostic: coordinates are in cells, and a
// renderer scales them with a viewport.Transform.
package render

import "github.com/alexanderramin/trapgrid/internal/domain"

// AreaRadius is how far a banner's area of effect reaches from its cell.
const AreaRadius = 3

// Line is a grid line segment in cell units.
type Line struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// Item is one object fill with its optional label.
type Item struct {
	ObjectID string
	Type     domain.ObjectType
	Rect     domain.Rect
	Fill     Fill
	Label    string
}

// DrawList is everything a renderer needs for one redraw, in paint order:
// grid lines, banner areas, then object fills.
type DrawList struct {
	GridSize  int
	GridLines []Line
	Areas     []domain.Rect
	Items     []Item
}

// ItemAt returns the topmost item covering (row, col), the one painted
// last.
func (d DrawList) ItemAt(row, col int) (Item, bool) {
	for i := len(d.Items) - 1; i >= 0; i-- {
		if it := d.Items[i]; it.Rect.Contains(row, col) {
			return it, true
		}
	}
	return Item{}, false
}

// InArea reports whether any banner area covers (row, col).
func (d DrawList) InArea(row, col int) bool {
	for _, a := range d.Areas {
		if a.Contains(row, col) {
			return true
		}
	}
	return false
}

// AreaOfEffect returns the 7×7 block centred on a banner, clipped to
// [0, gridSize) in both axes. ok is false when nothing remains after
// clipping.
func AreaOfEffect(banner domain.PlacedObject, gridSize int) (domain.Rect, bool) {
	top := max(banner.Row-AreaRadius, 0)
	left := max(banner.Col-AreaRadius, 0)
	bottom := min(banner.Row+AreaRadius, gridSize-1)
	right := min(banner.Col+AreaRadius, gridSize-1)

	r := domain.Rect{Row: top, Col: left, Rows: bottom - top + 1, Cols: right - left + 1}
	if r.Empty() {
		return domain.Rect{}, false
	}
	return r, true
}

// GridLines returns the gridSize+1 horizontal and vertical lines of the board.
func GridLines(gridSize int) []Line {
	lines := make([]Line, 0, 2*(gridSize+1))
	for i := 0; i <= gridSize; i++ {
		lines = append(lines,
			Line{FromRow: 0, FromCol: i, ToRow: gridSize, ToCol: i},
			Line{FromRow: i, FromCol: 0, ToRow: i, ToCol: gridSize},
		)
	}
	return lines
}

// Plan builds the draw list for objects on a gridSize×gridSize board.
func Plan(objects []domain.PlacedObject, gridSize int) DrawList {
	dl := DrawList{
		GridSize:  gridSize,
		GridLines: GridLines(gridSize),
		Items:     make([]Item, 0, len(objects)),
	}
	for _, o := range objects {
		if o.Type == domain.ObjectBanner {
			if area, ok := AreaOfEffect(o, gridSize); ok {
				dl.Areas = append(dl.Areas, area)
			}
		}
		dl.Items = append(dl.Items, Item{
			ObjectID: o.ID,
			Type:     o.Type,
			Rect:     o.Footprint(),
			Fill:     FillFor(o.Type),
			Label:    o.Label,
		})
	}
	return dl
}
