package editor

import (
	"io"

	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/rs/zerolog"
)

// EventKind names what an input did to the editor.
type EventKind string

const (
	EventModeSelected    EventKind = "mode_selected"
	EventPlaced          EventKind = "placed"
	EventPlaceRejected   EventKind = "place_rejected"
	EventErased          EventKind = "erased"
	EventPickedUp        EventKind = "picked_up"
	EventDropped         EventKind = "dropped"
	EventDragCancelled   EventKind = "drag_cancelled"
	EventRenamed         EventKind = "renamed"
	EventRenameCancelled EventKind = "rename_cancelled"
	EventZoomed          EventKind = "zoomed"
	EventIgnored         EventKind = "ignored"
)

// Event records one handled input.
type Event struct {
	Kind     EventKind
	Mode     domain.Mode
	Type     domain.ObjectType
	ObjectID string
	Row      int
	Col      int
	Label    string
	Scale    float64
}

// Observer receives an Event for every input the editor handles.
type Observer interface {
	OnEvent(Event)
}

// LogObserver writes editor events as structured log lines.
type LogObserver struct {
	log zerolog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{log: zerolog.New(w).With().Timestamp().Logger()}
}

func (o *LogObserver) OnEvent(ev Event) {
	e := o.log.Info()
	if ev.Kind == EventIgnored || ev.Kind == EventPlaceRejected {
		e = o.log.Debug()
	}
	e = e.Str("event", string(ev.Kind)).Str("mode", string(ev.Mode))
	switch ev.Kind {
	case EventZoomed:
		e = e.Float64("scale", ev.Scale)
	case EventModeSelected, EventDragCancelled:
	default:
		e = e.Int("row", ev.Row).Int("col", ev.Col)
	}
	if ev.Type != "" {
		e = e.Str("type", string(ev.Type))
	}
	if ev.ObjectID != "" {
		e = e.Str("object", ev.ObjectID)
	}
	if ev.Kind == EventRenamed {
		e = e.Str("label", ev.Label)
	}
	e.Msg("editor")
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnEvent(Event) {}
