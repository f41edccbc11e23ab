package cli

import (
	"math"

	"github.com/alexanderramin/trapgrid/internal/config"
	"github.com/alexanderramin/trapgrid/internal/editor"
	"github.com/alexanderramin/trapgrid/internal/render"
	"github.com/alexanderramin/trapgrid/internal/viewport"
)

// headerLines is the height of the header above the board (title + separator).
const headerLines = 2

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	Config config.Config
	Editor *editor.Editor

	// Plan is the draw list from the editor's most recent redraw request.
	Plan render.DrawList

	// Terminal dimensions
	Width  int
	Height int
}

// newSharedState builds the editor for cfg. Extra options are applied
// after the defaults.
func newSharedState(cfg config.Config, observer editor.Observer, opts ...editor.Option) *SharedState {
	s := &SharedState{Config: cfg}
	base := []editor.Option{
		editor.WithTransform(viewport.New(cfg.CellPx)),
		editor.WithOrigin(viewport.Point{X: 0, Y: headerLines * cfg.CharHeightPx}),
		editor.WithObserver(observer),
		editor.WithRenderer(editor.RendererFunc(func(dl render.DrawList) {
			s.Plan = dl
		})),
	}
	s.Editor = editor.New(append(base, opts...)...)
	s.Plan = s.Editor.Plan()
	return s
}

// PixelAt converts a terminal position to canvas pixels.
func (s *SharedState) PixelAt(x, y int) (px, py float64) {
	return float64(x) * s.Config.CharWidthPx, float64(y) * s.Config.CharHeightPx
}

// ScreenPos returns the first terminal position whose sample pixel falls
// inside cell (row, col) at the current zoom.
func (s *SharedState) ScreenPos(row, col int) (x, y int) {
	px, py := s.Editor.Transform().CellToPixel(row, col, s.Editor.Origin())
	return int(math.Ceil(px / s.Config.CharWidthPx)), int(math.Ceil(py / s.Config.CharHeightPx))
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
