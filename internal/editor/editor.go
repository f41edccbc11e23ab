// Package editor is the interaction state machine of the grid editor.
//
// An Editor owns the board, the current tool mode, the zoom transform and
// the drag slot. Every input method handles its event to completion and
// then requests a full redraw. Invalid actions (placing over an occupied
// cell, erasing an empty cell, dropping with nothing held) are silent
// no-ops.
//
// An Editor is not safe for concurrent use.
package editor

import (
	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/grid"
	"github.com/alexanderramin/trapgrid/internal/placement"
	"github.com/alexanderramin/trapgrid/internal/render"
	"github.com/alexanderramin/trapgrid/internal/viewport"
)

// Renderer receives the draw list after every handled input.
type Renderer interface {
	Redraw(render.DrawList)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(render.DrawList)

func (f RendererFunc) Redraw(dl render.DrawList) { f(dl) }

type noopRenderer struct{}

func (noopRenderer) Redraw(render.DrawList) {}

// held is an object detached from the board by the drag tool. The editor
// owns it exclusively until it is dropped or the drag is cancelled.
type held struct {
	obj              *domain.PlacedObject
	fromRow, fromCol int
}

// Editor is the single owner of all editing state.
type Editor struct {
	board    *grid.Board
	view     *viewport.Transform
	origin   viewport.Point
	gridSize int
	mode     domain.Mode
	drag     *held

	renderer Renderer
	observer Observer
}

// Option configures an Editor during construction.
type Option func(*Editor)

func WithRenderer(r Renderer) Option {
	return func(e *Editor) { e.renderer = r }
}

func WithObserver(o Observer) Option {
	return func(e *Editor) {
		if o != nil {
			e.observer = o
		}
	}
}

// WithTransform replaces the default 20px-cell transform.
func WithTransform(t *viewport.Transform) Option {
	return func(e *Editor) { e.view = t }
}

// WithOrigin sets the pixel position of the grid's top-left corner.
func WithOrigin(p viewport.Point) Option {
	return func(e *Editor) { e.origin = p }
}

// WithBoard starts the editor on an existing board.
func WithBoard(b *grid.Board) Option {
	return func(e *Editor) { e.board = b }
}

// New creates an Editor in the default mode with an empty board.
func New(opts ...Option) *Editor {
	e := &Editor{
		board:    grid.NewBoard(),
		view:     viewport.New(viewport.DefaultCellSize),
		gridSize: domain.GridSize,
		mode:     domain.DefaultMode,
		renderer: noopRenderer{},
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ── state accessors ──────────────────────────────────────────────────────────

func (e *Editor) Mode() domain.Mode              { return e.mode }
func (e *Editor) Board() *grid.Board             { return e.board }
func (e *Editor) Transform() *viewport.Transform { return e.view }
func (e *Editor) Origin() viewport.Point         { return e.origin }
func (e *Editor) GridSize() int                  { return e.gridSize }

// SetOrigin moves the grid's top-left corner, e.g. after a layout change.
func (e *Editor) SetOrigin(p viewport.Point) { e.origin = p }

// Held returns a copy of the object currently being dragged.
func (e *Editor) Held() (domain.PlacedObject, bool) {
	if e.drag == nil {
		return domain.PlacedObject{}, false
	}
	return *e.drag.obj, true
}

// Dragging reports whether an object is detached by the drag tool.
func (e *Editor) Dragging() bool { return e.drag != nil }

// Plan returns the current draw list.
func (e *Editor) Plan() render.DrawList {
	return render.Plan(e.board.All(), e.gridSize)
}

// CellAt converts a pixel to a cell with the current transform.
func (e *Editor) CellAt(px, py float64) (row, col int) {
	col, row = e.view.PixelToCell(px, py, e.origin)
	return row, col
}

// ── inputs ───────────────────────────────────────────────────────────────────

// HandleKey selects the mode bound to key. It reports false, without a
// redraw, for keys that are not mode keys.
func (e *Editor) HandleKey(key string) bool {
	m, ok := domain.ModeForKey(key)
	if !ok {
		return false
	}
	e.SelectMode(m)
	return true
}

// SelectMode switches the current tool. Leaving the drag tool while an
// object is held returns it to the cell it was picked up from.
func (e *Editor) SelectMode(m domain.Mode) {
	if e.drag != nil && m != domain.ModeDrag {
		ev := e.restoreHeld()
		ev.Mode, ev.Scale = e.mode, e.view.Scale()
		e.observer.OnEvent(ev)
	}
	e.mode = m
	e.finish(Event{Kind: EventModeSelected})
}

// Press handles a primary press at (row, col) according to the mode.
func (e *Editor) Press(row, col int) {
	switch e.mode {
	case domain.ModeErase:
		if obj := e.board.RemoveAt(row, col, grid.AnyType); obj != nil {
			e.finish(objectEvent(EventErased, obj, row, col))
			return
		}

	case domain.ModeDrag:
		if e.drag != nil {
			break
		}
		if obj := e.board.RemoveAt(row, col, grid.Draggable); obj != nil {
			e.drag = &held{obj: obj, fromRow: obj.Row, fromCol: obj.Col}
			e.finish(objectEvent(EventPickedUp, obj, row, col))
			return
		}

	default:
		t, ok := e.mode.ObjectType()
		if !ok {
			break
		}
		if obj, placed := placement.Place(row, col, t, e.board); placed {
			e.finish(objectEvent(EventPlaced, obj, row, col))
		} else {
			e.finish(Event{Kind: EventPlaceRejected, Type: t, Row: row, Col: col})
		}
		return
	}
	e.finish(Event{Kind: EventIgnored, Row: row, Col: col})
}

// Release drops the held object at (row, col). The drop is unconditional:
// it is not checked against current occupants. Without an active drag in
// drag mode it does nothing.
func (e *Editor) Release(row, col int) {
	if e.drag == nil || e.mode != domain.ModeDrag {
		e.finish(Event{Kind: EventIgnored, Row: row, Col: col})
		return
	}
	obj := e.drag.obj
	e.drag = nil
	obj.MoveTo(row, col)
	e.board.Insert(obj)
	e.finish(objectEvent(EventDropped, obj, row, col))
}

// CancelDrag returns a held object to where it was picked up.
func (e *Editor) CancelDrag() {
	if e.drag == nil {
		e.finish(Event{Kind: EventIgnored})
		return
	}
	e.finish(e.restoreHeld())
}

// RenameTarget returns the object a rename at (row, col) would edit.
func (e *Editor) RenameTarget(row, col int) (domain.PlacedObject, bool) {
	obj := e.board.FindMatching(row, col, grid.Renamable)
	if obj == nil {
		return domain.PlacedObject{}, false
	}
	return *obj, true
}

// Rename asks p for a new label for the object at (row, col). Banners and
// trains cannot be renamed. A cancelled prompt leaves the label unchanged.
func (e *Editor) Rename(row, col int, p LabelPrompter) {
	obj := e.board.FindMatching(row, col, grid.Renamable)
	if obj == nil {
		e.finish(Event{Kind: EventIgnored, Row: row, Col: col})
		return
	}
	label, ok := p.PromptLabel(obj.Label)
	if !ok {
		e.finish(objectEvent(EventRenameCancelled, obj, row, col))
		return
	}
	obj.Label = label
	e.finish(objectEvent(EventRenamed, obj, row, col))
}

// Wheel applies one zoom step.
func (e *Editor) Wheel(dir viewport.ZoomDirection) {
	e.view.Zoom(dir)
	e.finish(Event{Kind: EventZoomed})
}

// PressAt is Press at the cell under pixel (px, py).
func (e *Editor) PressAt(px, py float64) {
	e.Press(e.CellAt(px, py))
}

// ReleaseAt is Release at the cell under pixel (px, py).
func (e *Editor) ReleaseAt(px, py float64) {
	e.Release(e.CellAt(px, py))
}

// RenameAt is Rename at the cell under pixel (px, py).
func (e *Editor) RenameAt(px, py float64, p LabelPrompter) {
	row, col := e.CellAt(px, py)
	e.Rename(row, col, p)
}

// ── internals ────────────────────────────────────────────────────────────────

// restoreHeld puts the held object back at its pickup cell. While an
// object is held in drag mode no other input can modify the board, so
// the cells are still free.
func (e *Editor) restoreHeld() Event {
	h := e.drag
	e.drag = nil
	h.obj.MoveTo(h.fromRow, h.fromCol)
	e.board.Insert(h.obj)
	return objectEvent(EventDragCancelled, h.obj, h.fromRow, h.fromCol)
}

func (e *Editor) finish(ev Event) {
	ev.Mode = e.mode
	ev.Scale = e.view.Scale()
	e.observer.OnEvent(ev)
	e.renderer.Redraw(e.Plan())
}

func objectEvent(kind EventKind, obj *domain.PlacedObject, row, col int) Event {
	return Event{
		Kind:     kind,
		Type:     obj.Type,
		ObjectID: obj.ID,
		Row:      row,
		Col:      col,
		Label:    obj.Label,
	}
}
