// Package testutil builds boards and markers for tests.
package testutil

import (
	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/grid"
)

// ObjectOption customizes a test marker.
type ObjectOption func(*domain.PlacedObject)

func WithLabel(label string) ObjectOption {
	return func(o *domain.PlacedObject) {
		o.Label = label
	}
}

// NewTestObject returns a marker of type t anchored at (row, col) with the
// type's default label.
func NewTestObject(t domain.ObjectType, row, col int, opts ...ObjectOption) *domain.PlacedObject {
	o := domain.NewPlacedObject(t, row, col)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewTestBoard returns a board holding objs in order. No overlap check is
// made, so tests can build states the editor would reject.
func NewTestBoard(objs ...*domain.PlacedObject) *grid.Board {
	b := grid.NewBoard()
	for _, o := range objs {
		b.Insert(o)
	}
	return b
}
