package cli

import (
	"strings"

	"github.com/alexanderramin/trapgrid/internal/cli/formatter"
	"github.com/alexanderramin/trapgrid/internal/domain"
	"github.com/alexanderramin/trapgrid/internal/render"
	"github.com/charmbracelet/lipgloss"
)

// glyphKind classifies one terminal character of the board.
type glyphKind int

const (
	glyphOffGrid glyphKind = iota
	glyphEmpty
	glyphArea
	glyphObject
)

// glyph is one rendered terminal character.
type glyph struct {
	kind glyphKind
	typ  domain.ObjectType
	r    rune
}

// boardCanvas samples the draw list at terminal resolution. Every terminal
// character is mapped to a pixel and then to a cell through the editor's
// transform, so zoom changes how many characters a cell spans.
type boardCanvas struct {
	rows []int // cell row under each screen line
	cols []int // cell column under each screen character
	dl   render.DrawList
}

func newBoardCanvas(s *SharedState, width, height int) boardCanvas {
	c := boardCanvas{
		rows: make([]int, height),
		cols: make([]int, width),
		dl:   s.Plan,
	}
	for x := range c.cols {
		px, py := s.PixelAt(x, headerLines)
		_, c.cols[x] = s.Editor.CellAt(px, py)
	}
	for y := range c.rows {
		px, py := s.PixelAt(0, y+headerLines)
		c.rows[y], _ = s.Editor.CellAt(px, py)
	}
	return c
}

func (c boardCanvas) inGrid(row, col int) bool {
	return row >= 0 && row < c.dl.GridSize && col >= 0 && col < c.dl.GridSize
}

// cellStart reports whether screen character x is the leftmost one of its cell.
func (c boardCanvas) cellStart(x int) bool {
	return x == 0 || c.cols[x-1] != c.cols[x]
}

// rowStart reports whether screen line y is the topmost one of its cell row.
func (c boardCanvas) rowStart(y int) bool {
	return y == 0 || c.rows[y-1] != c.rows[y]
}

// line builds the glyphs for screen line y.
func (c boardCanvas) line(y int) []glyph {
	row := c.rows[y]
	out := make([]glyph, len(c.cols))
	for x, col := range c.cols {
		switch {
		case !c.inGrid(row, col):
			out[x] = glyph{kind: glyphOffGrid, r: ' '}
		default:
			if it, ok := c.dl.ItemAt(row, col); ok {
				out[x] = glyph{kind: glyphObject, typ: it.Type, r: ' '}
			} else if c.dl.InArea(row, col) {
				out[x] = glyph{kind: glyphArea, r: ' '}
			} else if c.cellStart(x) {
				out[x] = glyph{kind: glyphEmpty, r: '·'}
			} else {
				out[x] = glyph{kind: glyphEmpty, r: ' '}
			}
		}
	}
	if c.rowStart(y) {
		c.writeLabels(row, out)
	}
	return out
}

// writeLabels draws each object's label (or type glyph when unlabeled)
// from its top-left cell, clipped to the footprint width.
func (c boardCanvas) writeLabels(row int, out []glyph) {
	for _, it := range c.dl.Items {
		if it.Rect.Row != row {
			continue
		}
		text := []rune(it.Label)
		if len(text) == 0 {
			text = []rune{formatter.Glyph(it.Type)}
		}
		for x := range c.cols {
			if c.cols[x] != it.Rect.Col || !c.cellStart(x) {
				continue
			}
			for i := 0; i < len(text) && x+i < len(out); i++ {
				g := &out[x+i]
				if g.kind != glyphObject || !it.Rect.Contains(row, c.cols[x+i]) {
					break
				}
				g.r = text[i]
			}
			break
		}
	}
}

func glyphStyle(g glyph) lipgloss.Style {
	switch g.kind {
	case glyphObject:
		return formatter.ObjectStyle(g.typ)
	case glyphArea:
		return formatter.AreaStyle()
	case glyphEmpty:
		return formatter.GridStyle()
	}
	return lipgloss.NewStyle()
}

// render draws the canvas, styling runs of same-styled characters together.
func (c boardCanvas) render() string {
	lines := make([]string, len(c.rows))
	for y := range c.rows {
		var b strings.Builder
		glyphs := c.line(y)
		start := 0
		for x := 1; x <= len(glyphs); x++ {
			if x < len(glyphs) && glyphs[x].kind == glyphs[start].kind && glyphs[x].typ == glyphs[start].typ {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, g := range glyphs[start:x] {
				run = append(run, g.r)
			}
			b.WriteString(glyphStyle(glyphs[start]).Render(string(run)))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}
