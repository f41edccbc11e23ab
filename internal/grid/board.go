// Package grid holds the collection of placed markers.
//
// Board keeps objects in insertion order and answers cell queries by
// scanning footprints. It does not validate overlap on Insert; callers go
// through the placement package, which does.
package grid

import "github.com/alexanderramin/trapgrid/internal/domain"

// Filter selects which object types a lookup may return.
// A nil Filter accepts every type.
type Filter func(domain.ObjectType) bool

// AnyType accepts every object type.
var AnyType Filter

// Excluding returns a Filter that rejects the given types.
func Excluding(types ...domain.ObjectType) Filter {
	return func(t domain.ObjectType) bool {
		for _, x := range types {
			if t == x {
				return false
			}
		}
		return true
	}
}

// Draggable accepts the types that can be picked up by the drag tool.
func Draggable(t domain.ObjectType) bool { return t.Draggable() }

// Renamable accepts the types whose label can be edited.
func Renamable(t domain.ObjectType) bool { return t.Renamable() }

func (f Filter) accepts(t domain.ObjectType) bool {
	return f == nil || f(t)
}

// Board is the ordered collection of markers on the grid.
type Board struct {
	objects []*domain.PlacedObject
}

func NewBoard() *Board {
	return &Board{}
}

// Len returns the number of objects on the board.
func (b *Board) Len() int { return len(b.objects) }

// FindAt returns the first object, in insertion order, whose footprint
// contains (row, col), or nil.
func (b *Board) FindAt(row, col int) *domain.PlacedObject {
	return b.FindMatching(row, col, AnyType)
}

// FindMatching is FindAt restricted to types accepted by filter.
func (b *Board) FindMatching(row, col int, filter Filter) *domain.PlacedObject {
	if i := b.indexAt(row, col, filter); i >= 0 {
		return b.objects[i]
	}
	return nil
}

// Insert appends obj. The caller must already have checked for overlap.
func (b *Board) Insert(obj *domain.PlacedObject) {
	b.objects = append(b.objects, obj)
}

// RemoveAt detaches and returns the first object at (row, col) accepted by
// filter. It returns nil and leaves the board unchanged when nothing matches.
func (b *Board) RemoveAt(row, col int, filter Filter) *domain.PlacedObject {
	i := b.indexAt(row, col, filter)
	if i < 0 {
		return nil
	}
	obj := b.objects[i]
	b.objects = append(b.objects[:i], b.objects[i+1:]...)
	return obj
}

// All returns a snapshot of the objects in insertion order. Mutating the
// returned values does not affect the board.
func (b *Board) All() []domain.PlacedObject {
	out := make([]domain.PlacedObject, len(b.objects))
	for i, o := range b.objects {
		out[i] = *o
	}
	return out
}

// Each calls fn for every object in insertion order.
func (b *Board) Each(fn func(domain.PlacedObject)) {
	for _, o := range b.objects {
		fn(*o)
	}
}

func (b *Board) indexAt(row, col int, filter Filter) int {
	for i, o := range b.objects {
		if o.Contains(row, col) && filter.accepts(o.Type) {
			return i
		}
	}
	return -1
}
